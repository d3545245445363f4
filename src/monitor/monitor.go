package monitor

import (
	"errors"
	"fmt"
)

// Handle is an opaque platform window reference (an HWND on Windows).
type Handle uintptr

// Rect is an absolute rectangle in virtual-screen coordinates.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// WorkArea returns the size of the rectangle.
func (r Rect) WorkArea() WorkArea {
	return WorkArea{Width: r.Right - r.Left, Height: r.Bottom - r.Top}
}

// Contains reports whether the absolute point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// WorkArea is the usable size of a monitor: the screen minus the taskbar and
// other reserved regions.
type WorkArea struct {
	Width  int
	Height int
}

func (w WorkArea) String() string { return fmt.Sprintf("%dx%d", w.Width, w.Height) }

// Display is a provider's answer for the monitor currently in use.
type Display struct {
	// ID distinguishes monitors; the tracker only updates when it changes.
	ID   uintptr
	Work Rect
}

// ErrNoDisplay is returned by providers that cannot see any active display.
var ErrNoDisplay = errors.New("no active displays found")

// Provider reports the display that currently hosts a window.
type Provider interface {
	DisplayFor(h Handle) (Display, error)
}

// StaticProvider always reports the same display.
type StaticProvider struct {
	Display Display
}

func (p StaticProvider) DisplayFor(Handle) (Display, error) {
	if p.Display.Work.WorkArea().Width <= 0 || p.Display.Work.WorkArea().Height <= 0 {
		return Display{}, ErrNoDisplay
	}
	return p.Display, nil
}
