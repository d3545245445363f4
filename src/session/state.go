package session

import (
	"log"
	"strings"

	"screen-edge-offsets/src/edges"
	"screen-edge-offsets/src/messages"
	"screen-edge-offsets/src/monitor"
	"screen-edge-offsets/src/selection"
)

// RedrawMode selects how the overlay decides to repaint.
type RedrawMode int

const (
	// RedrawOnChange repaints only when the selection actually changed.
	RedrawOnChange RedrawMode = iota
	// RedrawTimer repaints on every Tick and ignores drag changes.
	RedrawTimer
)

func (m RedrawMode) String() string {
	if m == RedrawTimer {
		return "timer"
	}
	return "change"
}

// ParseRedrawMode maps "timer" to RedrawTimer and anything else to RedrawOnChange.
func ParseRedrawMode(value string) RedrawMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "timer", "vsync":
		return RedrawTimer
	default:
		return RedrawOnChange
	}
}

// Outcome tells the platform layer what to do after an event was handled.
type Outcome struct {
	// Redraw requests a repaint of the overlay.
	Redraw bool
	// TrackLeave asks the caller to (re)arm pointer-leave notifications.
	TrackLeave bool
	// Reposition means the display changed and the overlay must cover Bounds()
	// before further input is processed.
	Reposition bool
	// Done is set once the interaction reached a terminal state.
	Done      bool
	Cancelled bool
	// Result is only meaningful when HasResult is set.
	Result    edges.Distances
	HasResult bool
}

// State is everything one selection run owns: the selection machine, the
// monitor tracker and the pointer-leave observation flag.
type State struct {
	machine *selection.Machine
	tracker *monitor.Tracker
	window  monitor.Handle
	mode    RedrawMode

	// observingLeave is true while a pointer-leave notification is armed. The
	// platform delivers one leave per arm, so it is re-armed on the next move.
	observingLeave bool

	result    edges.Distances
	hasResult bool
}

// New creates the state for one run. The tracker is locked by the machine's
// drag state so the work area cannot change mid-drag.
func New(p monitor.Provider, window monitor.Handle, mode RedrawMode) *State {
	m := selection.New()
	return &State{
		machine: m,
		tracker: monitor.NewTracker(p, m),
		window:  window,
		mode:    mode,
	}
}

// Init queries the initial display.
func (s *State) Init() error {
	return s.tracker.Init(s.window)
}

// Snapshot returns a read-only copy of the selection state.
func (s *State) Snapshot() selection.Snapshot { return s.machine.Snapshot() }

// WorkArea returns the work area currently used for distances.
func (s *State) WorkArea() monitor.WorkArea { return s.tracker.WorkArea() }

// Bounds returns the absolute work-area rectangle the overlay should cover.
func (s *State) Bounds() monitor.Rect { return s.tracker.Bounds() }

// Mode returns the redraw mode of this run.
func (s *State) Mode() RedrawMode { return s.mode }

// ObservingLeave reports whether a pointer-leave notification is armed.
func (s *State) ObservingLeave() bool { return s.observingLeave }

// Handle applies one input event. After a terminal state is reached every
// further event is ignored and the terminal outcome is returned again.
func (s *State) Handle(ev messages.Event) Outcome {
	if s.machine.Terminal() {
		return s.terminal()
	}

	switch e := ev.(type) {
	case messages.PointerDown:
		p := s.clamp(e.Point)
		if e.Button == messages.ButtonPrimary && s.machine.BeginDrag(p) {
			log.Printf("SESSION: Drag started at (%d, %d)", p.X, p.Y)
			return Outcome{Redraw: true}
		}

	case messages.PointerMove:
		var out Outcome
		if !s.observingLeave {
			s.observingLeave = true
			out.TrackLeave = true
		}
		if s.machine.UpdateDrag(s.clamp(e.Point)) && s.mode == RedrawOnChange {
			out.Redraw = true
		}
		return out

	case messages.PointerUp:
		switch e.Button {
		case messages.ButtonSecondary:
			return s.cancel("right button released")
		case messages.ButtonPrimary:
			return s.release(s.clamp(e.Point))
		}

	case messages.KeyDown:
		if !e.Repeat && isCancelKey(e.Key, e.Alt) {
			return s.cancel(e.Key.String() + " pressed")
		}

	case messages.KeyUp:
		if isCancelKey(e.Key, e.Alt) {
			return s.cancel(e.Key.String() + " released")
		}

	case messages.Close:
		return s.cancel("window closed")

	case messages.DisplayChangeCheck:
		s.observingLeave = false
		if s.tracker.Refresh(s.window) {
			return Outcome{Redraw: true, Reposition: true}
		}

	case messages.Tick:
		if s.mode == RedrawTimer {
			return Outcome{Redraw: true}
		}
	}

	return Outcome{}
}

// clamp keeps a point inside [0,W]x[0,H] of the current work area. Captured
// pointer input keeps arriving once the cursor leaves the overlay.
func (s *State) clamp(p selection.Point) selection.Point {
	wa := s.tracker.WorkArea()
	p.X = min(max(p.X, 0), wa.Width)
	p.Y = min(max(p.Y, 0), wa.Height)
	return p
}

func isCancelKey(k messages.Key, alt bool) bool {
	return k == messages.KeyEscape || (k == messages.KeyF4 && alt)
}

func (s *State) release(p selection.Point) Outcome {
	c, ok := s.machine.EndDrag(p)
	if !ok {
		return Outcome{}
	}
	if !c.Valid {
		log.Printf("SESSION: Selection is invalid (%dx%d), waiting for a new drag", c.Region.Width(), c.Region.Height())
		return Outcome{Redraw: true}
	}

	wa := s.tracker.WorkArea()
	s.result = edges.Compute(c.Region, wa)
	s.hasResult = true
	log.Printf("SESSION: Selection is valid in work area %s: %s", wa, s.result)
	return s.terminal()
}

func (s *State) cancel(reason string) Outcome {
	if s.machine.Cancel() {
		log.Printf("SESSION: Cancelled (%s)", reason)
	}
	return s.terminal()
}

func (s *State) terminal() Outcome {
	return Outcome{
		Done:      true,
		Cancelled: s.machine.Kind() == selection.Cancelled,
		Result:    s.result,
		HasResult: s.hasResult,
	}
}
