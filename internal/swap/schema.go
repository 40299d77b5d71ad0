package swap

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/atomicstack/swap-form/internal/catalog"
	"github.com/shopspring/decimal"
)

// Field names a form field. The values double as JSON keys.
type Field string

const (
	SendToken    Field = "sendToken"
	Amount       Field = "amount"
	ReceiveToken Field = "receiveToken"
)

// Fields lists every form field in display order.
var Fields = []Field{SendToken, Amount, ReceiveToken}

func (f Field) order() int {
	switch f {
	case SendToken:
		return 0
	case Amount:
		return 1
	case ReceiveToken:
		return 2
	default:
		return 3
	}
}

// Description is the help text shown beneath the field's control.
func (f Field) Description() string {
	switch f {
	case SendToken:
		return "Select the token you want to send"
	case Amount:
		return "Enter the amount you want to swap"
	case ReceiveToken:
		return "Select the token you want to receive"
	default:
		return ""
	}
}

// Label is the human-facing title of the field.
func (f Field) Label() string {
	switch f {
	case SendToken:
		return "Token to Send"
	case Amount:
		return "Amount"
	case ReceiveToken:
		return "Token to Receive"
	default:
		return string(f)
	}
}

const (
	msgSelectSend    = "Please select a token to swap"
	msgSelectReceive = "Please select a token to receive"
	msgInvalidToken  = "Please select a valid token"
	msgAmount        = "Amount must be greater than 0"
)

// Candidate is the raw record as the fields hold it, prior to validation.
type Candidate struct {
	SendToken    string
	Amount       string
	ReceiveToken string
}

// Get returns the raw value of field.
func (c Candidate) Get(field Field) string {
	switch field {
	case SendToken:
		return c.SendToken
	case Amount:
		return c.Amount
	case ReceiveToken:
		return c.ReceiveToken
	default:
		return ""
	}
}

// With returns a copy of c with field set to value.
func (c Candidate) With(field Field, value string) Candidate {
	switch field {
	case SendToken:
		c.SendToken = value
	case Amount:
		c.Amount = value
	case ReceiveToken:
		c.ReceiveToken = value
	}
	return c
}

// FormValues is a validated swap request.
type FormValues struct {
	SendToken    string
	Amount       decimal.Decimal
	ReceiveToken string
}

// MarshalJSON encodes the amount as a bare JSON number.
func (v FormValues) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		SendToken    string      `json:"sendToken"`
		Amount       json.Number `json:"amount"`
		ReceiveToken string      `json:"receiveToken"`
	}{
		SendToken:    v.SendToken,
		Amount:       json.Number(v.Amount.String()),
		ReceiveToken: v.ReceiveToken,
	})
}

// Equal reports whether two validated records are the same request.
func (v FormValues) Equal(other FormValues) bool {
	return v.SendToken == other.SendToken &&
		v.ReceiveToken == other.ReceiveToken &&
		v.Amount.Equal(other.Amount)
}

// Schema holds the declarative rules for the three swap fields. It is
// stateless apart from the read-only catalog it checks membership against.
type Schema struct {
	registry *catalog.Registry
}

// NewSchema returns a schema that validates token fields against registry.
// A nil registry selects the reference catalog.
func NewSchema(registry *catalog.Registry) *Schema {
	if registry == nil {
		registry = catalog.Default()
	}
	return &Schema{registry: registry}
}

// ValidateField checks a single raw value. It returns nil when the value is
// acceptable.
func (s *Schema) ValidateField(field Field, value string) *FieldError {
	switch field {
	case SendToken, ReceiveToken:
		return s.validateToken(field, value)
	case Amount:
		if _, ok := ParseAmount(value); !ok {
			return &FieldError{Field: Amount, Kind: NonPositiveAmount, Message: msgAmount}
		}
	}
	return nil
}

func (s *Schema) validateToken(field Field, value string) *FieldError {
	if len(value) == 0 {
		msg := msgSelectSend
		if field == ReceiveToken {
			msg = msgSelectReceive
		}
		return &FieldError{Field: field, Kind: EmptySelection, Message: msg}
	}
	if !s.registry.Contains(value) {
		suggestion, _ := s.registry.Suggest(value)
		return &FieldError{Field: field, Kind: InvalidSelection, Message: msgInvalidToken, Suggestion: suggestion}
	}
	return nil
}

// Validate checks every field and reports all failures at once. The returned
// FieldErrors is nil when the candidate is valid.
func (s *Schema) Validate(c Candidate) (FormValues, FieldErrors) {
	var errs FieldErrors
	for _, field := range Fields {
		if err := s.ValidateField(field, c.Get(field)); err != nil {
			if errs == nil {
				errs = make(FieldErrors, len(Fields))
			}
			errs[field] = *err
		}
	}
	if errs != nil {
		return FormValues{}, errs
	}
	amount, _ := ParseAmount(c.Amount)
	return FormValues{
		SendToken:    c.SendToken,
		Amount:       amount,
		ReceiveToken: c.ReceiveToken,
	}, nil
}

// Decimal orders of magnitude a float64 can hold without overflowing or
// rounding to zero.
const (
	maxAmountMagnitude = 309
	minAmountMagnitude = -323
)

// ParseAmount parses text as a strictly positive decimal. Text that is not a
// finite number (including NaN and Inf) is rejected, as is anything <= 0 and
// anything outside the float64 range.
func ParseAmount(text string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, false
	}
	if !d.IsPositive() {
		return decimal.Zero, false
	}
	// checked before converting so a huge exponent is never expanded
	magnitude := len(d.Coefficient().Text(10)) + int(d.Exponent())
	if magnitude > maxAmountMagnitude || magnitude < minAmountMagnitude {
		return decimal.Zero, false
	}
	if f := d.InexactFloat64(); f == 0 || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return d, true
}
