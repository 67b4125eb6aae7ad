package dialog

import "context"

// EditText builds the single-textarea value editor variant.
func EditText(title, label, initial string, onSave Callback) Dialog {
	return Dialog{
		Title:  title,
		Fields: []Field{{Name: "text", Label: label, Value: initial, Multiline: true}},
		Buttons: []Button{
			{Name: "save", Label: "Save", OnPress: onSave},
			{Name: "cancel", Label: "Cancel"},
		},
	}
}

// EditForm builds the multi-field structured editor variant.
func EditForm(title string, fields []Field, onSave Callback) Dialog {
	return Dialog{
		Title:  title,
		Fields: fields,
		Buttons: []Button{
			{Name: "save", Label: "Save", OnPress: onSave},
			{Name: "cancel", Label: "Cancel"},
		},
	}
}

// Confirm builds the yes/no variant.
func Confirm(title, message string, onYes Callback) Dialog {
	return Dialog{
		Title:   title,
		Message: message,
		Buttons: []Button{
			{Name: "yes", Label: "Yes", OnPress: onYes},
			{Name: "no", Label: "No"},
		},
	}
}

// ConfirmWith adapts a Prompter into a ConfirmFunc.
func ConfirmWith(p Prompter) ConfirmFunc {
	return func(ctx context.Context, title, message string) (bool, error) {
		confirmed := false
		pressed, err := p.Show(ctx, Confirm(title, message, func(context.Context, Values) error {
			confirmed = true
			return nil
		}))
		if err != nil {
			return false, err
		}
		return confirmed && pressed == "yes", nil
	}
}

// AlwaysConfirm approves every confirmation. Used by non-interactive
// commands running with --yes.
func AlwaysConfirm(context.Context, string, string) (bool, error) { return true, nil }

// NeverConfirm declines every confirmation.
func NeverConfirm(context.Context, string, string) (bool, error) { return false, nil }
