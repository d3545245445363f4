package notification

import (
	"os"
	"testing"

	"screen-edge-offsets/src/edges"
)

func TestResultText(t *testing.T) {
	got := resultText(edges.Distances{Left: 12, Top: 34, Right: 56, Bottom: 78})
	want := "Left:\t  12\nTop:\t  34\nRight:\t  56\nBottom:\t  78"
	if got != want {
		t.Errorf("resultText() = %q, want %q", got, want)
	}
}

func TestShowResult(t *testing.T) {
	if os.Getenv("EDGE_OFFSETS_INTERACTIVE_TESTS") != "1" {
		t.Skip("set EDGE_OFFSETS_INTERACTIVE_TESTS=1 to run interactive dialog test")
	}
	if err := ShowResult(edges.Distances{Left: 1, Top: 2, Right: 3, Bottom: 4}); err != nil {
		t.Errorf("ShowResult failed: %v", err)
	}
}
