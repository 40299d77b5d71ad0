package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/swap-form/internal/catalog"
	"github.com/atomicstack/swap-form/internal/form"
	"github.com/atomicstack/swap-form/internal/logging/events"
	"github.com/atomicstack/swap-form/internal/swap"
	"github.com/atomicstack/swap-form/internal/theme"
	uistate "github.com/atomicstack/swap-form/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type popover = uistate.Popover

// Variant selects how token fields are edited.
type Variant string

const (
	// VariantSearch edits tokens through searchable dropdowns.
	VariantSearch Variant = "search"
	// VariantPlain edits tokens as free text validated on submit.
	VariantPlain Variant = "plain"
)

// ParseVariant maps a configuration string to a Variant.
func ParseVariant(s string) (Variant, bool) {
	switch Variant(s) {
	case VariantSearch, "":
		return VariantSearch, true
	case VariantPlain:
		return VariantPlain, true
	default:
		return "", false
	}
}

type focusTarget int

const (
	focusSend focusTarget = iota
	focusAmount
	focusReceive
	focusSubmit
	focusCount
)

func (f focusTarget) field() (swap.Field, bool) {
	switch f {
	case focusSend:
		return swap.SendToken, true
	case focusAmount:
		return swap.Amount, true
	case focusReceive:
		return swap.ReceiveToken, true
	default:
		return "", false
	}
}

func (f focusTarget) String() string {
	if field, ok := f.field(); ok {
		return string(field)
	}
	return "submit"
}

func focusFor(field swap.Field) focusTarget {
	switch field {
	case swap.SendToken:
		return focusSend
	case swap.Amount:
		return focusAmount
	default:
		return focusReceive
	}
}

const (
	toastDuration   = 5 * time.Second
	popoverMaxRows  = 8
	defaultTitle    = "Swap"
	selectorEmpty   = "Select token..."
	popoverNotFound = "No token found."
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Registry         *catalog.Registry
	Variant          Variant
	Width            int
	Height           int
	// TerminalWidth and TerminalHeight bound the first render until the
	// first resize arrives. Fixed dimensions win over them.
	TerminalWidth    int
	TerminalHeight   int
	ShowFooter       bool
	ValidateOnChange bool
	StaticCursor     bool
}

type toast struct {
	title  string
	body   string
	expire time.Time
}

// Model implements the Bubble Tea model for the swap form.
type Model struct {
	form     *form.Controller
	registry *catalog.Registry
	variant  Variant
	focus    focusTarget
	popovers map[swap.Field]*popover
	inputs   map[swap.Field]*textinput.Model
	keys     keyMap

	filterCursor cursor.Model
	staticCursor bool

	toast       toast
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	now         func() time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the form with every field pristine and focus on the send
// token.
func NewModel(opts Options) *Model {
	registry := opts.Registry
	if registry == nil {
		registry = catalog.Default()
	}
	variant, ok := ParseVariant(string(opts.Variant))
	if !ok {
		variant = VariantSearch
	}
	m := &Model{
		registry:     registry,
		variant:      variant,
		popovers:     map[swap.Field]*popover{},
		inputs:       map[swap.Field]*textinput.Model{},
		keys:         defaultKeyMap(),
		showFooter:   opts.ShowFooter,
		staticCursor: opts.StaticCursor,
		now:          time.Now,
	}
	m.form = form.NewController(
		swap.NewSchema(registry),
		form.NotifierFunc(m.showToast),
		form.WithValidateOnChange(opts.ValidateOnChange),
	)

	m.inputs[swap.Amount] = m.newInput("0.1", 40)
	for _, field := range []swap.Field{swap.SendToken, swap.ReceiveToken} {
		field := field
		if variant == VariantPlain {
			m.inputs[field] = m.newInput("ETH", 16)
			continue
		}
		m.popovers[field] = uistate.NewPopover(string(field), registry, func(symbol string) {
			m.form.SetValue(field, symbol)
		})
	}

	m.width, m.height = opts.TerminalWidth, opts.TerminalHeight
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	if m.staticCursor {
		c.SetMode(cursor.CursorStatic)
		c.Focus()
	}
	m.filterCursor = c

	m.focusField(focusSend)
	m.registerHandlers()
	return m
}

func (m *Model) newInput(placeholder string, limit int) *textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = "› "
	if m.staticCursor {
		ti.Cursor.SetMode(cursor.CursorStatic)
	}
	return &ti
}

// Form exposes the underlying controller.
func (m *Model) Form() *form.Controller {
	return m.form
}

// Variant reports how token fields are edited.
func (m *Model) Variant() Variant {
	return m.variant
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 3)
	if cmd := m.updateCursors(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// updateCursors forwards blink messages to the filter cursor and every text
// input so their cursors keep animating.
func (m *Model) updateCursors(msg tea.Msg) tea.Cmd {
	if _, isKey := msg.(tea.KeyMsg); isKey {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.inputs)+1)
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	cmds = append(cmds, cmd)
	for _, ti := range m.inputs {
		var c tea.Cmd
		*ti, c = ti.Update(msg)
		cmds = append(cmds, c)
	}
	return tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// showToast is the form's notifier: the payload is shown under the form until
// it expires.
func (m *Model) showToast(title, body string) {
	m.toast = toast{title: title, body: body, expire: m.now().Add(toastDuration)}
	events.Toast.Show(title)
}

func (m *Model) currentToast() (toast, bool) {
	if m.toast.title == "" {
		return toast{}, false
	}
	if !m.toast.expire.IsZero() && m.now().After(m.toast.expire) {
		m.toast = toast{}
		return toast{}, false
	}
	return m.toast, true
}

func (m *Model) clearToast() {
	m.toast = toast{}
}
