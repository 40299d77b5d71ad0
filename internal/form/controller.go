package form

import (
	"encoding/json"

	"github.com/atomicstack/swap-form/internal/logging"
	"github.com/atomicstack/swap-form/internal/logging/events"
	"github.com/atomicstack/swap-form/internal/swap"
)

// NotificationTitle heads every successful submission notice.
const NotificationTitle = "Swap Details:"

// Notifier delivers the outcome of a successful submit. Delivery is fire and
// forget; the controller never inspects a result.
type Notifier interface {
	Notify(title, body string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(title, body string)

func (f NotifierFunc) Notify(title, body string) {
	f(title, body)
}

// Result is the outcome of Submit.
type Result struct {
	Values swap.FormValues
	Errors swap.FieldErrors
	OK     bool
}

// Option customises a Controller.
type Option func(*Controller)

// WithValidateOnChange re-validates a field after every edit.
func WithValidateOnChange(enabled bool) Option {
	return func(c *Controller) { c.validateOnChange = enabled }
}

// WithValidateOnBlur validates touched fields when they lose focus.
func WithValidateOnBlur(enabled bool) Option {
	return func(c *Controller) { c.validateOnBlur = enabled }
}

// WithInitial sets the values fields start from and return to on Reset.
func WithInitial(initial swap.Candidate) Option {
	return func(c *Controller) { c.initial = initial }
}

// Controller owns the three field states and runs the schema over them.
// All methods run synchronously on the caller's goroutine; it is not safe for
// concurrent use.
type Controller struct {
	schema           *swap.Schema
	notifier         Notifier
	initial          swap.Candidate
	fields           map[swap.Field]*FieldState
	validateOnChange bool
	validateOnBlur   bool
	submissions      int
}

// NewController builds a controller with every field pristine. A nil schema
// validates against the reference catalog; a nil notifier discards notices.
func NewController(schema *swap.Schema, notifier Notifier, opts ...Option) *Controller {
	if schema == nil {
		schema = swap.NewSchema(nil)
	}
	c := &Controller{
		schema:         schema,
		notifier:       notifier,
		validateOnBlur: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.resetFields()
	return c
}

func (c *Controller) resetFields() {
	c.fields = make(map[swap.Field]*FieldState, len(swap.Fields))
	for _, name := range swap.Fields {
		c.fields[name] = newFieldState(name, c.initial.Get(name))
	}
}

// Field returns a snapshot of the named field.
func (c *Controller) Field(name swap.Field) FieldState {
	if f, ok := c.fields[name]; ok {
		return *f
	}
	return FieldState{Name: name}
}

// Values returns the current raw record.
func (c *Controller) Values() swap.Candidate {
	var cand swap.Candidate
	for _, name := range swap.Fields {
		cand = cand.With(name, c.fields[name].Value)
	}
	return cand
}

// Errors returns the errors currently attached to fields.
func (c *Controller) Errors() swap.FieldErrors {
	var errs swap.FieldErrors
	for _, name := range swap.Fields {
		if f := c.fields[name]; f.Error != nil {
			if errs == nil {
				errs = make(swap.FieldErrors)
			}
			errs[name] = *f.Error
		}
	}
	return errs
}

// Submissions counts successful submits since construction.
func (c *Controller) Submissions() int {
	return c.submissions
}

// SetValue records a user edit. The field becomes touched and any previous
// classification is discarded until the next validation pass.
func (c *Controller) SetValue(name swap.Field, value string) {
	f, ok := c.fields[name]
	if !ok {
		return
	}
	f.edit(value, c.initial.Get(name))
	events.Form.Change(string(name), value)
	if c.validateOnChange {
		c.ValidateField(name)
	}
}

// Blur signals the field lost focus.
func (c *Controller) Blur(name swap.Field) {
	f, ok := c.fields[name]
	if !ok || !c.validateOnBlur || !f.Touched {
		return
	}
	c.ValidateField(name)
}

// ValidateField runs the schema for one field and records the outcome.
func (c *Controller) ValidateField(name swap.Field) *swap.FieldError {
	f, ok := c.fields[name]
	if !ok {
		return nil
	}
	err := c.schema.ValidateField(name, f.Value)
	f.apply(err)
	return err
}

// Validate runs the schema over every field and records each outcome.
func (c *Controller) Validate() (swap.FormValues, swap.FieldErrors) {
	values, errs := c.schema.Validate(c.Values())
	for _, name := range swap.Fields {
		if fe, failed := errs.Get(name); failed {
			c.fields[name].apply(&fe)
		} else {
			c.fields[name].apply(nil)
		}
	}
	return values, errs
}

// Submit validates the whole record. Success notifies with the JSON payload;
// failure leaves per-field messages and never notifies.
func (c *Controller) Submit() Result {
	values, errs := c.Validate()
	if len(errs) > 0 {
		events.Form.Invalid(errs.Error())
		return Result{Errors: errs}
	}
	c.submissions++
	events.Form.Submit(values)
	if c.notifier != nil {
		c.notifier.Notify(NotificationTitle, RenderPayload(values))
	}
	return Result{Values: values, OK: true}
}

// Reset restores the initial values and pristine state.
func (c *Controller) Reset() {
	c.resetFields()
	events.Form.Reset()
}

// RenderPayload formats validated values as indented JSON.
func RenderPayload(values swap.FormValues) string {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		logging.Error(err)
		return ""
	}
	return string(data)
}
