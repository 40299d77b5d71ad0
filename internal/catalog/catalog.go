package catalog

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrEmpty is returned when a registry would contain no symbols.
var ErrEmpty = errors.New("token catalog is empty")

var defaultSymbols = []string{
	"ETH", "BTC", "USDC", "XRP", "FLR",
	"SOL", "ADA", "AVAX", "DOT", "MATIC",
	"LINK", "UNI", "AAVE", "ATOM", "DOGE",
	"SHIB", "LTC", "BCH", "XLM", "ALGO",
}

var defaultRegistry = mustNew(defaultSymbols...)

// Registry is the ordered, immutable set of token symbols accepted by the
// selector fields. It is never mutated after construction so concurrent reads
// need no locking.
type Registry struct {
	symbols []string
	index   map[string]struct{}
}

// New builds a registry from the supplied symbols. Surrounding whitespace is
// trimmed and duplicates are dropped, keeping the first occurrence.
func New(symbols ...string) (*Registry, error) {
	trimmed := lo.Map(symbols, func(s string, _ int) string { return strings.TrimSpace(s) })
	for i, s := range trimmed {
		if s == "" {
			return nil, errors.Errorf("token %d is blank", i+1)
		}
	}
	unique := lo.Uniq(trimmed)
	if len(unique) == 0 {
		return nil, ErrEmpty
	}
	index := make(map[string]struct{}, len(unique))
	for _, s := range unique {
		index[s] = struct{}{}
	}
	return &Registry{symbols: unique, index: index}, nil
}

// Default returns the reference catalog.
func Default() *Registry {
	return defaultRegistry
}

// Symbols returns the catalog in display order.
func (r *Registry) Symbols() []string {
	return append([]string(nil), r.symbols...)
}

// Len reports the number of symbols in the catalog.
func (r *Registry) Len() int {
	return len(r.symbols)
}

// Contains reports whether symbol is a catalog member. Matching is exact and
// case-sensitive.
func (r *Registry) Contains(symbol string) bool {
	_, ok := r.index[symbol]
	return ok
}

// Filter returns the symbols containing text, ignoring case, in catalog order.
// Blank text matches everything.
func (r *Registry) Filter(text string) []string {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return r.Symbols()
	}
	return lo.Filter(r.symbols, func(s string, _ int) bool {
		return strings.Contains(strings.ToLower(s), needle)
	})
}

// Suggest returns the symbol closest to text for a "did you mean" hint. A
// candidate must fuzzily contain text or be contained by it, ignoring case;
// ties go to the earlier symbol.
func (r *Registry) Suggest(text string) (string, bool) {
	needle := strings.TrimSpace(text)
	if needle == "" {
		return "", false
	}
	candidates := lo.Filter(r.symbols, func(s string, _ int) bool {
		return fuzzy.MatchNormalizedFold(needle, s) || fuzzy.MatchNormalizedFold(s, needle)
	})
	if len(candidates) == 0 {
		return "", false
	}
	lower := strings.ToLower(needle)
	distance := func(s string) int {
		return fuzzy.LevenshteinDistance(lower, strings.ToLower(s))
	}
	return lo.MinBy(candidates, func(a, b string) bool {
		return distance(a) < distance(b)
	}), true
}

func mustNew(symbols ...string) *Registry {
	r, err := New(symbols...)
	if err != nil {
		panic(err)
	}
	return r
}
