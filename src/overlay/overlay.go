package overlay

import (
	"context"
	"errors"

	"screen-edge-offsets/src/edges"
	"screen-edge-offsets/src/session"
)

var ErrUnsupportedPlatform = errors.New("overlay selection is not supported on this platform")

// Selector defines a synchronous selection API owned by the calling goroutine.
// The call is blocking and MUST be invoked from the thread that owns the
// window (main locks it). Returns (distances, cancelled, error). If cancelled
// is true, distances are undefined and err is nil.
type Selector interface {
	Select(ctx context.Context) (edges.Distances, bool, error)
}

type Options struct {
	Mode session.RedrawMode
	// RefreshHz overrides the detected monitor refresh rate for the redraw
	// timer. Zero means detect.
	RefreshHz int
}

// NewSelector returns the platform implementation.
func NewSelector(opts Options) Selector {
	return newPlatformSelector(opts)
}

const fallbackRefreshHz = 60

// timerInterval converts a refresh rate to a timer period in milliseconds.
// Rates of 0 or 1 are what drivers report for "hardware default".
func timerInterval(hz int) uint32 {
	if hz <= 1 {
		hz = fallbackRefreshHz
	}
	ms := 1000 / hz
	if ms < 1 {
		ms = 1
	}
	return uint32(ms)
}
