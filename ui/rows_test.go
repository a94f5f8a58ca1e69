package ui_test

import (
	"testing"

	"github.com/glint/glint/ui"
)

func TestRows(t *testing.T) {
	got := ui.Rows("a", "", "b")
	if want := "a\nb"; got != want {
		t.Errorf("Rows() = %q, want %q", got, want)
	}
}

func TestCols(t *testing.T) {
	got := ui.Cols("", "⡇", "55%")
	if want := "⡇ 55%"; got != want {
		t.Errorf("Cols() = %q, want %q", got, want)
	}
}
