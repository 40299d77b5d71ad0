package swap

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/atomicstack/swap-form/internal/catalog"
)

func TestAmountRejectsNonPositive(t *testing.T) {
	schema := NewSchema(nil)
	for _, input := range []string{"-1", "0", "0.0", "-0", "NaN", "nan", "Inf", "-Inf", "", "   ", "abc", "1,5", "0x10"} {
		err := schema.ValidateField(Amount, input)
		if err == nil {
			t.Fatalf("expected %q to be rejected", input)
		}
		if err.Kind != NonPositiveAmount {
			t.Fatalf("expected NonPositiveAmount for %q, got %s", input, err.Kind)
		}
		if err.Message != "Amount must be greater than 0" {
			t.Fatalf("unexpected message %q", err.Message)
		}
	}
}

func TestAmountAcceptsPositive(t *testing.T) {
	schema := NewSchema(nil)
	for _, input := range []string{"0.5", "1", " 42 ", "1e-18", "0.000000000000000001", "1000000000000"} {
		if err := schema.ValidateField(Amount, input); err != nil {
			t.Fatalf("expected %q to be accepted, got %v", input, err)
		}
	}
}

func TestAmountRejectsOutOfRangeExponents(t *testing.T) {
	schema := NewSchema(nil)
	for _, input := range []string{"1e400", "1e-400", "1e100000000", "1e-100000000", "2e308"} {
		err := schema.ValidateField(Amount, input)
		if err == nil || err.Kind != NonPositiveAmount {
			t.Fatalf("expected %q to be rejected, got %v", input, err)
		}
	}
	for _, input := range []string{"1e300", "1e-300"} {
		if err := schema.ValidateField(Amount, input); err != nil {
			t.Fatalf("expected %q to be accepted, got %v", input, err)
		}
	}
}

func TestParseAmountKeepsTinyValues(t *testing.T) {
	d, ok := ParseAmount("1e-18")
	if !ok {
		t.Fatalf("expected 1e-18 to parse")
	}
	if !d.IsPositive() {
		t.Fatalf("expected positive amount, got %s", d)
	}
	if d.String() != "0.000000000000000001" {
		t.Fatalf("expected exact decimal, got %s", d.String())
	}
}

func TestTokenRules(t *testing.T) {
	schema := NewSchema(nil)
	for _, field := range []Field{SendToken, ReceiveToken} {
		for _, symbol := range catalog.Default().Symbols() {
			if err := schema.ValidateField(field, symbol); err != nil {
				t.Fatalf("expected %s=%q accepted, got %v", field, symbol, err)
			}
		}
		for _, symbol := range []string{"XYZ", "eth", " ETH", "ETH\n"} {
			err := schema.ValidateField(field, symbol)
			if err == nil || err.Kind != InvalidSelection {
				t.Fatalf("expected InvalidSelection for %s=%q, got %v", field, symbol, err)
			}
			if err.Message != "Please select a valid token" {
				t.Fatalf("unexpected message %q", err.Message)
			}
		}
		err := schema.ValidateField(field, "")
		if err == nil || err.Kind != EmptySelection {
			t.Fatalf("expected EmptySelection for empty %s, got %v", field, err)
		}
	}
	if err := schema.ValidateField(SendToken, ""); err.Message != "Please select a token to swap" {
		t.Fatalf("unexpected send message %q", err.Message)
	}
	if err := schema.ValidateField(ReceiveToken, ""); err.Message != "Please select a token to receive" {
		t.Fatalf("unexpected receive message %q", err.Message)
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	schema := NewSchema(nil)
	_, errs := schema.Validate(Candidate{})
	if len(errs) != 3 {
		t.Fatalf("expected three field errors, got %v", errs)
	}
	want := []ErrorKind{EmptySelection, NonPositiveAmount, EmptySelection}
	if got := errs.Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected kinds %v, got %v", want, got)
	}

	_, errs = schema.Validate(Candidate{SendToken: "", Amount: "-3", ReceiveToken: "XYZ"})
	want = []ErrorKind{EmptySelection, NonPositiveAmount, InvalidSelection}
	if got := errs.Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected kinds %v, got %v", want, got)
	}
	if !errs.Has(ReceiveToken) {
		t.Fatalf("expected receiveToken error")
	}
	if errs.Error() == "" {
		t.Fatalf("expected combined message")
	}
}

func TestInvalidSelectionSuggestsClosestSymbol(t *testing.T) {
	schema := NewSchema(nil)
	e := schema.ValidateField(ReceiveToken, "usdc")
	if e == nil || e.Kind != InvalidSelection || e.Suggestion != "USDC" {
		t.Fatalf("expected USDC suggestion, got %#v", e)
	}
	if e.Message != "Please select a valid token" || e.Hint() != "did you mean USDC?" {
		t.Fatalf("unexpected message %q / hint %q", e.Message, e.Hint())
	}
	if e := schema.ValidateField(ReceiveToken, "XYZ"); e == nil || e.Suggestion != "" || e.Hint() != "" {
		t.Fatalf("expected no suggestion for XYZ, got %#v", e)
	}
}

func TestValidateSuccessPayload(t *testing.T) {
	schema := NewSchema(nil)
	values, errs := schema.Validate(Candidate{SendToken: "ETH", Amount: "0.5", ReceiveToken: "USDC"})
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	data, err := json.Marshal(values)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"sendToken":"ETH","amount":0.5,"receiveToken":"USDC"}`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}
}

func TestValidateAllowsSameTokenOnBothSides(t *testing.T) {
	schema := NewSchema(nil)
	if _, errs := schema.Validate(Candidate{SendToken: "BTC", Amount: "1", ReceiveToken: "BTC"}); errs != nil {
		t.Fatalf("expected same-token swap to validate, got %v", errs)
	}
}

func TestSchemaUsesCustomRegistry(t *testing.T) {
	reg, err := catalog.New("FOO", "BAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	schema := NewSchema(reg)
	if e := schema.ValidateField(SendToken, "ETH"); e == nil || e.Kind != InvalidSelection {
		t.Fatalf("expected ETH rejected by custom catalog, got %v", e)
	}
	if e := schema.ValidateField(SendToken, "FOO"); e != nil {
		t.Fatalf("expected FOO accepted, got %v", e)
	}
}

func TestCandidateWith(t *testing.T) {
	c := Candidate{}.With(SendToken, "ETH").With(Amount, "2").With(ReceiveToken, "BTC")
	if c.Get(SendToken) != "ETH" || c.Get(Amount) != "2" || c.Get(ReceiveToken) != "BTC" {
		t.Fatalf("unexpected candidate %#v", c)
	}
}
