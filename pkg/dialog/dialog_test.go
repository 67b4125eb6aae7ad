package dialog

import (
	"context"
	"errors"
	"testing"
)

// scripted presses a fixed button with fixed values, honoring the
// incomplete-submission rule the real prompters follow.
type scripted struct {
	press  string
	values Values
}

func (s scripted) Show(ctx context.Context, d Dialog) (string, error) {
	for _, b := range d.Buttons {
		if b.Name != s.press {
			continue
		}
		if b.OnPress == nil {
			return b.Name, nil
		}
		if b.Name != "no" && b.Name != "cancel" && d.Incomplete(s.values) {
			// dialog stays open on empty submit; callers see a dismissal
			return "", nil
		}
		if err := b.OnPress(ctx, s.values); err != nil {
			return "", err
		}
		return b.Name, nil
	}
	return "", nil
}

func TestEditTextInvokesSaveCallback(t *testing.T) {
	var got string
	d := EditText("Edit stake", "Stake", "old", func(_ context.Context, v Values) error {
		got = v.Get("text")
		return nil
	})

	pressed, err := scripted{press: "save", values: Values{"text": " new stake "}}.Show(context.Background(), d)
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	if pressed != "save" || got != "new stake" {
		t.Fatalf("pressed=%q got=%q", pressed, got)
	}
}

func TestEditTextRejectsBlankSubmit(t *testing.T) {
	called := false
	d := EditText("Edit stake", "Stake", "old", func(context.Context, Values) error {
		called = true
		return nil
	})

	pressed, err := scripted{press: "save", values: Values{"text": "   "}}.Show(context.Background(), d)
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	if pressed != "" || called {
		t.Fatalf("blank submit must not invoke the callback (pressed=%q called=%v)", pressed, called)
	}
}

func TestEditFormOptionalFieldsMayBeBlank(t *testing.T) {
	d := EditForm("New danger", []Field{
		{Name: "name", Label: "Name"},
		{Name: "impulse", Label: "Impulse", Optional: true},
	}, func(context.Context, Values) error { return nil })

	if d.Incomplete(Values{"name": "Cult of Ash"}) {
		t.Fatalf("optional blank field should not block submission")
	}
	if !d.Incomplete(Values{"impulse": "to spread corruption"}) {
		t.Fatalf("required blank field should block submission")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	noDigits := func(v string) error {
		for _, r := range v {
			if r >= '0' && r <= '9' {
				return errors.New("digits are not allowed")
			}
		}
		return nil
	}
	d := Dialog{Fields: []Field{
		{Name: "name", Label: "Name", Validate: noDigits},
		{Name: "note", Label: "Note", Optional: true, Validate: noDigits},
	}}

	if err := d.Validate(Values{"name": "Cult of Ash"}); err != nil {
		t.Fatalf("valid values rejected: %v", err)
	}
	if err := d.Validate(Values{"name": "Cult 9"}); err == nil {
		t.Fatalf("invalid required field should be rejected")
	}
	if err := d.Validate(Values{"name": "Cult of Ash", "note": ""}); err != nil {
		t.Fatalf("blank optional field must skip validation: %v", err)
	}
	if err := d.Validate(Values{"name": "Cult of Ash", "note": "room 12"}); err == nil {
		t.Fatalf("non-blank optional field should still validate")
	}
}

func TestConfirmWith(t *testing.T) {
	yes := ConfirmWith(scripted{press: "yes"})
	ok, err := yes(context.Background(), "Delete danger", "Really delete Cult of Ash?")
	if err != nil || !ok {
		t.Fatalf("expected confirmation, got %v %v", ok, err)
	}

	no := ConfirmWith(scripted{press: "no"})
	ok, err = no(context.Background(), "Delete danger", "Really delete Cult of Ash?")
	if err != nil || ok {
		t.Fatalf("expected decline, got %v %v", ok, err)
	}
}

func TestAtMostOneButtonRuns(t *testing.T) {
	runs := 0
	cb := func(context.Context, Values) error { runs++; return nil }
	d := Dialog{Buttons: []Button{
		{Name: "yes", OnPress: cb},
		{Name: "also", OnPress: cb},
	}}

	if _, err := (scripted{press: "yes"}).Show(context.Background(), d); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if runs != 1 {
		t.Fatalf("expected exactly one callback run, got %d", runs)
	}
}
