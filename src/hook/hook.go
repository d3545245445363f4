// Package hook runs a selection from global mouse and keyboard hooks. There is
// no overlay window: the selection is made directly on the desktop.
package hook

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"

	gohook "github.com/robotn/gohook"

	"screen-edge-offsets/src/edges"
	"screen-edge-offsets/src/messages"
	"screen-edge-offsets/src/monitor"
	"screen-edge-offsets/src/selection"
	"screen-edge-offsets/src/session"
)

var ErrHookStopped = errors.New("input hook stopped")

// libuiohook virtual key codes; unlike Rawcode they are the same on every platform.
const (
	vcEscape = 0x0001
	vcF4     = 0x003E
	vcAltL   = 0x0038
	vcAltR   = 0x0E38
)

// libuiohook button numbers.
const (
	buttonLeft  = 1
	buttonRight = 2
)

type Selector struct {
	mode session.RedrawMode
}

func NewSelector(mode session.RedrawMode) *Selector {
	return &Selector{mode: mode}
}

// Select blocks until the selection finishes, the hook stops, or ctx is done.
func (s *Selector) Select(ctx context.Context) (edges.Distances, bool, error) {
	f := newFeeder()
	st := session.New(monitor.ScreenshotProvider{Cursor: f.cursorPos}, 0, s.mode)
	if err := st.Init(); err != nil {
		return edges.Distances{}, false, fmt.Errorf("failed to query display: %w", err)
	}
	log.Printf("HOOK: Selecting on work area %s", st.WorkArea())

	evChan := gohook.Start()
	if evChan == nil {
		return edges.Distances{}, false, errors.New("gohook.Start() returned nil channel")
	}
	defer gohook.End()

	for {
		select {
		case <-ctx.Done():
			st.Handle(messages.Close{})
			return edges.Distances{}, false, ctx.Err()
		case ev, ok := <-evChan:
			if !ok {
				return edges.Distances{}, false, ErrHookStopped
			}
			out := f.feed(st, ev)
			if out.Done {
				return out.Result, out.Cancelled, nil
			}
		}
	}
}

// feeder converts hook events into session events. Hook coordinates are
// absolute; the session wants them relative to the current work area.
type feeder struct {
	cursor  image.Point
	pressed map[uint16]bool
}

func newFeeder() *feeder {
	return &feeder{pressed: make(map[uint16]bool)}
}

func (f *feeder) cursorPos() image.Point { return f.cursor }

func (f *feeder) altDown() bool {
	return f.pressed[vcAltL] || f.pressed[vcAltR]
}

func (f *feeder) feed(st *session.State, ev gohook.Event) session.Outcome {
	switch ev.Kind {
	case gohook.MouseMove, gohook.MouseDrag:
		f.cursor = image.Pt(int(ev.X), int(ev.Y))
		var out session.Outcome
		if !st.Bounds().Contains(f.cursor.X, f.cursor.Y) {
			// Same as the overlay's pointer-leave: only acts while idle.
			out = merge(out, st.Handle(messages.DisplayChangeCheck{}))
		}
		return merge(out, st.Handle(messages.PointerMove{Point: f.relative(st)}))

	case gohook.MouseHold:
		f.cursor = image.Pt(int(ev.X), int(ev.Y))
		return st.Handle(messages.PointerDown{Point: f.relative(st), Button: button(ev.Button)})

	case gohook.MouseDown:
		f.cursor = image.Pt(int(ev.X), int(ev.Y))
		return st.Handle(messages.PointerUp{Point: f.relative(st), Button: button(ev.Button)})

	case gohook.KeyDown, gohook.KeyHold:
		repeat := f.pressed[ev.Keycode]
		f.pressed[ev.Keycode] = true
		return st.Handle(messages.KeyDown{Key: key(ev.Keycode), Alt: f.altDown(), Repeat: repeat})

	case gohook.KeyUp:
		alt := f.altDown()
		delete(f.pressed, ev.Keycode)
		return st.Handle(messages.KeyUp{Key: key(ev.Keycode), Alt: alt})
	}
	return session.Outcome{}
}

func (f *feeder) relative(st *session.State) selection.Point {
	b := st.Bounds()
	return selection.Point{X: f.cursor.X - b.Left, Y: f.cursor.Y - b.Top}
}

func button(b uint16) messages.Button {
	switch b {
	case buttonLeft:
		return messages.ButtonPrimary
	case buttonRight:
		return messages.ButtonSecondary
	default:
		return messages.ButtonOther
	}
}

func key(code uint16) messages.Key {
	switch code {
	case vcEscape:
		return messages.KeyEscape
	case vcF4:
		return messages.KeyF4
	default:
		return messages.KeyOther
	}
}

func merge(a, b session.Outcome) session.Outcome {
	b.Redraw = b.Redraw || a.Redraw
	b.TrackLeave = b.TrackLeave || a.TrackLeave
	b.Reposition = b.Reposition || a.Reposition
	return b
}
