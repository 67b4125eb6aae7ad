// Package dialog defines the modal prompt contract between the mutation
// layer and whatever presentation layer is active. A prompter shows a
// dialog, invokes at most one button's callback with the submitted values,
// waits for that callback, then closes.
package dialog

import (
	"context"
	"strings"
)

// Field is one input in a dialog. Multiline fields render as a textarea.
type Field struct {
	Name      string
	Label     string
	Value     string
	Multiline bool
	Optional  bool

	// Validate rejects a submitted value before any callback runs.
	// Prompters keep the dialog open and show the error instead of
	// discarding what was typed. Blank optional fields skip validation.
	Validate func(value string) error
}

// Values holds submitted field values keyed by field name.
type Values map[string]string

// Get returns the trimmed value for a field name.
func (v Values) Get(name string) string {
	return strings.TrimSpace(v[name])
}

// Callback runs when its button is pressed. It completes before the
// dialog resolves.
type Callback func(ctx context.Context, values Values) error

// Button is a named dialog action.
type Button struct {
	Name    string
	Label   string
	OnPress Callback
}

// Dialog is a modal prompt: a title, input fields, and named buttons.
type Dialog struct {
	Title   string
	Message string
	Fields  []Field
	Buttons []Button
}

// Prompter presents dialogs. Show returns the name of the pressed button
// after its callback (if any) has completed. Dismissing the dialog without
// pressing a button returns an empty name and no error.
type Prompter interface {
	Show(ctx context.Context, d Dialog) (string, error)
}

// ConfirmFunc answers a yes/no question. The mutation layer uses it to gate
// destructive operations.
type ConfirmFunc func(ctx context.Context, title, message string) (bool, error)

// Incomplete reports whether any required field is blank or whitespace-only.
// Prompters use it to keep the dialog open instead of submitting.
func (d Dialog) Incomplete(values Values) bool {
	for _, f := range d.Fields {
		if !f.Optional && values.Get(f.Name) == "" {
			return true
		}
	}
	return false
}

// Validate returns the first field validation failure, or nil when every
// field accepts its value.
func (d Dialog) Validate(values Values) error {
	for _, f := range d.Fields {
		if f.Validate == nil {
			continue
		}
		v := values.Get(f.Name)
		if v == "" && f.Optional {
			continue
		}
		if err := f.Validate(v); err != nil {
			return err
		}
	}
	return nil
}
