// Package ui contains the Bubble Tea program that renders the swap request
// form. Model focuses on message orchestration while dedicated helpers own
// navigation, filter input, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Blink messages
//     are forwarded to the text inputs and the filter cursor, then the message
//     is routed through a typed handler registry keyed by message type.
//   - Key presses go to navigation.go: with a popover open, keys edit its
//     filter (input.go) or move its highlight; otherwise they move focus,
//     submit, reset, or edit the focused text field.
//
// State ownership:
//   - Field values, touched flags, and validation errors live in
//     internal/form.Controller. The UI only reads them when rendering.
//   - Each token selector owns an internal/ui/state.Popover. Popovers share
//     the read-only catalog and nothing else.
//   - A successful submit notifies through the controller; the model shows
//     the payload as a toast until it expires.
package ui
