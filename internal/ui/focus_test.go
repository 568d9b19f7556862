package ui

import (
	"testing"

	"cuenta/internal/form"
)

func TestFocusManager_Wraps(t *testing.T) {
	f := NewFocusManager(form.FieldEmail, form.FieldPassword)
	if f.Current != form.FieldEmail {
		t.Fatalf("expected email focused first, got %q", f.Current)
	}
	if got := f.Next(); got != form.FieldPassword {
		t.Errorf("Next: got %q", got)
	}
	if !f.Last() {
		t.Error("expected password to be last")
	}
	if got := f.Next(); got != form.FieldEmail {
		t.Errorf("Next should wrap, got %q", got)
	}
	if got := f.Prev(); got != form.FieldPassword {
		t.Errorf("Prev should wrap, got %q", got)
	}
}

func TestFocusManager_OnChange(t *testing.T) {
	f := NewFocusManager(form.FieldEmail, form.FieldPassword)
	var changes [][2]form.Field
	f.OnChange = func(from, to form.Field) {
		changes = append(changes, [2]form.Field{from, to})
	}

	f.SetFocus(form.FieldEmail) // no-op
	f.SetFocus(form.FieldPassword)
	if f.SetFocus("phone") {
		t.Error("unknown field should not be focusable")
	}

	if len(changes) != 1 || changes[0] != [2]form.Field{form.FieldEmail, form.FieldPassword} {
		t.Errorf("unexpected changes: %v", changes)
	}
}

func TestFocusManager_Empty(t *testing.T) {
	f := NewFocusManager()
	if f.Next() != "" || f.Prev() != "" || f.Last() {
		t.Error("empty manager should have nothing to focus")
	}
}
