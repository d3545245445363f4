package overlay

import (
	"context"
	"errors"
	"os"
	"runtime"
	"testing"

	"screen-edge-offsets/src/session"
)

func TestTimerInterval(t *testing.T) {
	tests := []struct {
		hz   int
		want uint32
	}{
		{0, 16},
		{1, 16},
		{60, 16},
		{144, 6},
		{5000, 1},
	}
	for _, tt := range tests {
		if got := timerInterval(tt.hz); got != tt.want {
			t.Errorf("timerInterval(%d) = %d, want %d", tt.hz, got, tt.want)
		}
	}
}

func TestSelectUnsupported(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("overlay is implemented on Windows")
	}
	_, cancelled, err := NewSelector(Options{}).Select(context.Background())
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("expected ErrUnsupportedPlatform, got %v", err)
	}
	if cancelled {
		t.Error("unsupported platform must not report a cancel")
	}
}

func TestSelectInteractive(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("interactive overlay test is Windows-only")
	}
	if os.Getenv("EDGE_OFFSETS_INTERACTIVE_TESTS") != "1" {
		t.Skip("set EDGE_OFFSETS_INTERACTIVE_TESTS=1 to run interactive overlay test")
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	d, cancelled, err := NewSelector(Options{Mode: session.RedrawOnChange}).Select(context.Background())
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if cancelled {
		t.Skip("selection cancelled by the user")
	}
	t.Logf("selected: %s", d)
}
