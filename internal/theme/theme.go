package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header            *lipgloss.Style
	Footer            *lipgloss.Style
	FieldLabel        *lipgloss.Style
	FieldDescription  *lipgloss.Style
	FocusedLabel      *lipgloss.Style
	FieldError        *lipgloss.Style
	Selector          *lipgloss.Style
	FocusedSelector   *lipgloss.Style
	Placeholder       *lipgloss.Style
	Button            *lipgloss.Style
	FocusedButton     *lipgloss.Style
	Item              *lipgloss.Style
	SelectedItem      *lipgloss.Style
	Checkmark         *lipgloss.Style
	Empty             *lipgloss.Style
	ToastTitle        *lipgloss.Style
	ToastBody         *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FieldLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FieldDescription: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
	),
	FocusedLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	FieldError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	Selector: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	FocusedSelector: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FocusedButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Checkmark: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	ToastTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	ToastBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
