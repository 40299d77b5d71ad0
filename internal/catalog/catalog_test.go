package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultCatalogOrder(t *testing.T) {
	reg := Default()
	if reg.Len() != 20 {
		t.Fatalf("expected 20 symbols, got %d", reg.Len())
	}
	symbols := reg.Symbols()
	if symbols[0] != "ETH" || symbols[len(symbols)-1] != "ALGO" {
		t.Fatalf("unexpected catalog bounds %v", symbols)
	}
	symbols[0] = "mutated"
	if reg.Symbols()[0] != "ETH" {
		t.Fatalf("expected Symbols to return a copy")
	}
}

func TestNewDeduplicatesKeepingFirst(t *testing.T) {
	reg, err := New(" BTC", "ETH", "BTC ", "SOL", "ETH")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"BTC", "ETH", "SOL"}
	if got := reg.Symbols(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNewRejectsBlankAndEmpty(t *testing.T) {
	if _, err := New(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if _, err := New("ETH", "  "); err == nil {
		t.Fatalf("expected error for blank symbol")
	}
}

func TestContainsIsCaseSensitive(t *testing.T) {
	reg := Default()
	if !reg.Contains("ETH") {
		t.Fatalf("expected ETH to be a member")
	}
	for _, s := range []string{"eth", "Eth", "", "XYZ", "ETH "} {
		if reg.Contains(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	reg := Default()
	got := reg.Filter("et")
	if len(got) == 0 || got[0] != "ETH" {
		t.Fatalf("expected ETH in results, got %v", got)
	}
	got = reg.Filter("o")
	want := []string{"SOL", "DOT", "ATOM", "DOGE", "ALGO"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if len(reg.Filter("  ")) != reg.Len() {
		t.Fatalf("expected blank filter to return the whole catalog")
	}
	if len(reg.Filter("zzz")) != 0 {
		t.Fatalf("expected no matches for zzz")
	}
}

func TestSuggest(t *testing.T) {
	reg := Default()
	cases := map[string]string{
		"eth":  "ETH",
		"usc":  "USDC",
		"ETHH": "ETH",
		"dog":  "DOGE",
		"btcc": "BTC",
	}
	for input, want := range cases {
		got, ok := reg.Suggest(input)
		if !ok || got != want {
			t.Fatalf("expected %q to suggest %s, got %q (%v)", input, want, got, ok)
		}
	}
	for _, input := range []string{"", "  ", "qqq"} {
		if got, ok := reg.Suggest(input); ok {
			t.Fatalf("expected no suggestion for %q, got %q", input, got)
		}
	}
}
