package swap

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// ErrorKind classifies a field validation failure.
type ErrorKind int

const (
	EmptySelection ErrorKind = iota + 1
	InvalidSelection
	NonPositiveAmount
)

func (k ErrorKind) String() string {
	switch k {
	case EmptySelection:
		return "EmptySelection"
	case InvalidSelection:
		return "InvalidSelection"
	case NonPositiveAmount:
		return "NonPositiveAmount"
	default:
		return "Unknown"
	}
}

// FieldError is a named validation failure attached to one form field.
// Suggestion names the closest catalog symbol for an InvalidSelection, when
// one exists.
type FieldError struct {
	Field      Field
	Kind       ErrorKind
	Message    string
	Suggestion string
}

func (e FieldError) Error() string {
	return e.Message
}

// Hint renders the suggestion as a "did you mean" note, or "" without one.
func (e FieldError) Hint() string {
	if e.Suggestion == "" {
		return ""
	}
	return "did you mean " + e.Suggestion + "?"
}

// FieldErrors maps each invalid field to its failure. A nil or empty map
// means the record is valid.
type FieldErrors map[Field]FieldError

// Has reports whether field failed validation.
func (fe FieldErrors) Has(field Field) bool {
	_, ok := fe[field]
	return ok
}

// Get returns the failure recorded for field, if any.
func (fe FieldErrors) Get(field Field) (FieldError, bool) {
	err, ok := fe[field]
	return err, ok
}

// Fields lists the failing fields in form order.
func (fe FieldErrors) Fields() []Field {
	fields := lo.Keys(fe)
	sort.Slice(fields, func(i, j int) bool { return fields[i].order() < fields[j].order() })
	return fields
}

// Kinds lists the failure kinds in form order.
func (fe FieldErrors) Kinds() []ErrorKind {
	return lo.Map(fe.Fields(), func(f Field, _ int) ErrorKind { return fe[f].Kind })
}

func (fe FieldErrors) Error() string {
	parts := lo.Map(fe.Fields(), func(f Field, _ int) string {
		return string(f) + ": " + fe[f].Message
	})
	return strings.Join(parts, "; ")
}
