package errors

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty string", got)
	}

	err := fmt.Errorf("store unavailable")
	if got := Format(err); got != "Error: store unavailable" {
		t.Errorf("Format() = %q", got)
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("invalid date: %s", "2025-13-40")
	want := "Error: invalid date: 2025-13-40"
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}
