package monitor

import (
	"fmt"
	"log"
)

// DragLock reports whether a drag is in progress. While it is, the tracker
// refuses to change the work area.
type DragLock interface {
	Dragging() bool
}

// Tracker owns the active display's work area.
type Tracker struct {
	provider Provider
	lock     DragLock
	display  Display
}

// NewTracker creates a tracker. lock may be nil when no drag can be in progress.
func NewTracker(p Provider, lock DragLock) *Tracker {
	return &Tracker{provider: p, lock: lock}
}

// Init records the display hosting h. There is no last-known geometry yet, so
// a failure here is returned to the caller.
func (t *Tracker) Init(h Handle) error {
	d, err := t.provider.DisplayFor(h)
	if err != nil {
		return fmt.Errorf("failed to query monitor info: %w", err)
	}
	if wa := d.Work.WorkArea(); wa.Width <= 0 || wa.Height <= 0 {
		return fmt.Errorf("monitor reported empty work area %s", wa)
	}
	t.display = d
	log.Printf("MONITOR: Work area %s at (%d,%d)", d.Work.WorkArea(), d.Work.Left, d.Work.Top)
	return nil
}

// Refresh re-queries the display hosting h and reports whether it changed.
// It does nothing while a drag is in progress. Provider failures keep the
// previous work area and are only logged.
func (t *Tracker) Refresh(h Handle) bool {
	if t.lock != nil && t.lock.Dragging() {
		return false
	}
	d, err := t.provider.DisplayFor(h)
	if err != nil {
		log.Printf("MONITOR: Failed to update the monitor stats, keeping %s: %v", t.WorkArea(), err)
		return false
	}
	if d.ID == t.display.ID {
		return false
	}
	if wa := d.Work.WorkArea(); wa.Width <= 0 || wa.Height <= 0 {
		log.Printf("MONITOR: Ignoring monitor %#x with empty work area %s", d.ID, wa)
		return false
	}
	t.display = d
	log.Printf("MONITOR: Moved to monitor %#x, work area %s", d.ID, d.Work.WorkArea())
	return true
}

// WorkArea returns the size of the current display's work area.
func (t *Tracker) WorkArea() WorkArea { return t.display.Work.WorkArea() }

// Bounds returns the current display's work-area rectangle in absolute coordinates.
func (t *Tracker) Bounds() Rect { return t.display.Work }

// DisplayID returns the identifier of the current display.
func (t *Tracker) DisplayID() uintptr { return t.display.ID }
