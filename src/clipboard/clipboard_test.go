package clipboard

import (
	"testing"

	"golang.design/x/clipboard"
)

func TestWrite(t *testing.T) {
	if err := Init(); err != nil {
		t.Skipf("clipboard not available: %v", err)
	}

	text := "Left: 1, Top: 2, Right: 3, Bottom: 4"
	if err := Write(text); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := string(clipboard.Read(clipboard.FmtText)); got != text {
		t.Errorf("clipboard contains %q, want %q", got, text)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	first := Init()
	if second := Init(); second != first {
		t.Errorf("Init() returned %v then %v", first, second)
	}
}
