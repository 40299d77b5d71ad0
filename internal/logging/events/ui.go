package events

import "github.com/atomicstack/swap-form/internal/logging"

type FormTracer struct{}

type FocusTracer struct{}

type PopoverTracer struct{}

type FilterTracer struct{}

type ToastTracer struct{}

var (
	Form    = FormTracer{}
	Focus   = FocusTracer{}
	Popover = PopoverTracer{}
	Filter  = FilterTracer{}
	Toast   = ToastTracer{}
)

func (FormTracer) Change(field, value string) {
	logging.Trace("form.change", map[string]interface{}{"field": field, "value": value})
}

func (FormTracer) Submit(payload interface{}) {
	logging.Trace("form.submit", map[string]interface{}{"values": payload})
}

func (FormTracer) Invalid(summary string) {
	logging.Trace("form.invalid", map[string]interface{}{"errors": summary})
}

func (FormTracer) Reset() {
	logging.Trace("form.reset", nil)
}

func (FocusTracer) Move(from, to string) {
	logging.Trace("focus.move", map[string]interface{}{"from": from, "to": to})
}

func (PopoverTracer) Open(id, filter string) {
	logging.Trace("popover.open", map[string]interface{}{"popover": id, "filter": filter})
}

func (PopoverTracer) Close(id string) {
	logging.Trace("popover.close", map[string]interface{}{"popover": id})
}

func (PopoverTracer) Select(id, symbol string) {
	logging.Trace("popover.select", map[string]interface{}{"popover": id, "symbol": symbol})
}

func (PopoverTracer) Cursor(id string, cursor int) {
	logging.Trace("popover.cursor", map[string]interface{}{"popover": id, "cursor": cursor})
}

func (FilterTracer) Cleared(id string) {
	logging.Trace("filter.clear", map[string]interface{}{"popover": id})
}

func (FilterTracer) WordBackspace(id, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"popover": id, "filter": filter})
}

func (FilterTracer) Cursor(id string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"popover": id, "cursor": pos})
}

func (FilterTracer) CursorWord(id string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"popover": id, "cursor": pos})
}

func (FilterTracer) Append(id, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"popover": id, "filter": filter})
}

func (FilterTracer) Backspace(id, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"popover": id, "filter": filter})
}

func (ToastTracer) Show(title string) {
	logging.Trace("toast.show", map[string]interface{}{"title": title})
}
