package ui

import "testing"

func TestBase_ListHeight(t *testing.T) {
	var b Base
	b.SetSize(40, 10)

	if got := b.ListHeight(PanelOverhead); got != 6 {
		t.Errorf("ListHeight() = %d, want 6", got)
	}
	if got := b.ListHeight(20); got != 0 {
		t.Errorf("ListHeight(20) = %d, want 0", got)
	}
}

func TestBase_Focus(t *testing.T) {
	var b Base
	if b.IsFocused() {
		t.Fatal("zero Base should not be focused")
	}
	b.SetFocused(true)
	if !b.IsFocused() {
		t.Error("SetFocused(true) not applied")
	}
}
