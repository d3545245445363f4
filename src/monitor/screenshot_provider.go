package monitor

import (
	"image"
	"log"

	"github.com/kbinani/screenshot"
)

// ScreenshotProvider resolves displays through the screenshot package's
// display enumeration. It has no notion of a work area, so the full display
// bounds are reported.
type ScreenshotProvider struct {
	// Cursor returns the pointer position in absolute coordinates. When nil,
	// or when the point is outside every display, display 0 is used.
	Cursor func() image.Point
}

// DisplayFor ignores the window handle and picks the display under the cursor.
func (p ScreenshotProvider) DisplayFor(Handle) (Display, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return Display{}, ErrNoDisplay
	}

	idx := 0
	if p.Cursor != nil {
		pt := p.Cursor()
		for i := 0; i < n; i++ {
			if pt.In(screenshot.GetDisplayBounds(i)) {
				idx = i
				break
			}
		}
	}

	return Display{ID: uintptr(idx) + 1, Work: rectFromImage(screenshot.GetDisplayBounds(idx))}, nil
}

func rectFromImage(b image.Rectangle) Rect {
	return Rect{Left: b.Min.X, Top: b.Min.Y, Right: b.Max.X, Bottom: b.Max.Y}
}

// LogDisplays writes the active display configuration to the debug log.
func LogDisplays() {
	n := screenshot.NumActiveDisplays()
	log.Printf("MONITOR: Detected %d displays", n)
	if n == 0 {
		return
	}
	union := screenshot.GetDisplayBounds(0)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		union = union.Union(b)
		log.Printf("MONITOR: Display %d - x:%d y:%d w:%d h:%d", i, b.Min.X, b.Min.Y, b.Dx(), b.Dy())
	}
	log.Printf("MONITOR: Virtual screen - x:%d y:%d w:%d h:%d", union.Min.X, union.Min.Y, union.Dx(), union.Dy())
}
