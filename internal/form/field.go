package form

import "github.com/atomicstack/swap-form/internal/swap"

// Status is the validation lifecycle position of a field.
type Status int

const (
	Pristine Status = iota
	Touched
	Valid
	Invalid
)

func (s Status) String() string {
	switch s {
	case Pristine:
		return "pristine"
	case Touched:
		return "touched"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// FieldState tracks one field's value, interaction flags, and latest
// validation outcome.
type FieldState struct {
	Name    swap.Field
	Value   string
	Touched bool
	Dirty   bool
	Status  Status
	Error   *swap.FieldError
}

// HasError reports whether the last validation pass rejected the field.
func (f FieldState) HasError() bool {
	return f.Error != nil
}

// Message returns the current error message or "".
func (f FieldState) Message() string {
	if f.Error == nil {
		return ""
	}
	return f.Error.Message
}

func newFieldState(name swap.Field, initial string) *FieldState {
	return &FieldState{Name: name, Value: initial, Status: Pristine}
}

func (f *FieldState) edit(value, initial string) {
	f.Value = value
	f.Touched = true
	f.Dirty = value != initial
	f.Status = Touched
	f.Error = nil
}

func (f *FieldState) apply(err *swap.FieldError) {
	if err != nil {
		copied := *err
		f.Error = &copied
		f.Status = Invalid
		return
	}
	f.Error = nil
	f.Status = Valid
}
