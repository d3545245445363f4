package render

import (
	"fmt"
	"image"
	"image/color"

	"screen-edge-offsets/src/edges"
	"screen-edge-offsets/src/monitor"
	"screen-edge-offsets/src/selection"
)

// Layout constants in pixels.
const (
	LabelWidth       = 116
	LabelHeight      = 32
	LinePadding      = 8
	HintBottomMargin = 80
	OutlineWidth     = 3
	// WindowAlpha is the overlay opacity out of 255.
	WindowAlpha = 128
)

var (
	Background    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	SelectionFill = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	ValidColor    = color.RGBA{R: 79, G: 223, B: 78, A: 255}
	InvalidColor  = color.RGBA{R: 223, G: 78, B: 79, A: 255}
	HintColor     = color.RGBA{R: 236, G: 206, B: 91, A: 255}
	TextColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var (
	StartHint   = "Click and drag to draw a selection, or press [Escape] or [Right Mouse Button] to cancel"
	InvalidHint = fmt.Sprintf("Invalid Rectangle! Must be larger than %d x %d pixels", selection.MinSize, selection.MinSize)
	RetryHint   = fmt.Sprintf("Selection too small, drag again (at least %d x %d pixels) or press [Escape] to cancel", selection.MinSize, selection.MinSize)
)

// Frame is what a renderer receives for one paint.
type Frame struct {
	Selection selection.Snapshot
	Work      monitor.WorkArea
}

// Segment is a straight dashed leader line.
type Segment struct {
	From image.Point
	To   image.Point
}

// Label is one edge-distance caption, centred in Box.
type Label struct {
	Edge    string
	Value   int
	Text    string
	Box     image.Rectangle
	Leaders []Segment
}

// Hint is a bottom-centred line of text inside Box.
type Hint struct {
	Text  string
	Box   image.Rectangle
	Color color.RGBA
}

// Scene is everything a painter needs; it never refers back to live state.
type Scene struct {
	Size       image.Point
	Background color.RGBA

	HasSelection bool
	Selection    image.Rectangle
	Fill         color.RGBA
	Outline      color.RGBA

	Labels []Label
	Hint   *Hint
}

// Compose builds the scene for a frame.
func Compose(f Frame) Scene {
	s := Scene{
		Size:       image.Pt(f.Work.Width, f.Work.Height),
		Background: Background,
	}

	snap := f.Selection
	switch snap.Kind {
	case selection.Idle:
		if snap.Rejected {
			s.Hint = hint(f.Work, RetryHint, InvalidColor)
		} else {
			s.Hint = hint(f.Work, StartHint, HintColor)
		}
		return s
	case selection.Cancelled:
		return s
	}

	lo, hi := snap.Region.Normalized()
	s.HasSelection = true
	s.Selection = image.Rect(lo.X, lo.Y, hi.X, hi.Y)
	s.Fill = SelectionFill
	s.Outline = InvalidColor
	if snap.Valid {
		s.Outline = ValidColor
	}

	if snap.Kind != selection.Dragging {
		return s
	}
	if !snap.Valid {
		s.Hint = hint(f.Work, InvalidHint, InvalidColor)
		return s
	}

	s.Labels = labels(lo, hi, edges.Compute(snap.Region, f.Work), f.Work)
	return s
}

func hint(wa monitor.WorkArea, text string, c color.RGBA) *Hint {
	return &Hint{Text: text, Box: image.Rect(0, 0, wa.Width, max(wa.Height-HintBottomMargin, 0)), Color: c}
}

func labels(lo, hi selection.Point, d edges.Distances, wa monitor.WorkArea) []Label {
	midX := lo.X + (hi.X-lo.X)/2
	midY := lo.Y + (hi.Y-lo.Y)/2

	left := image.Pt(lo.X/2, midY)
	right := image.Pt(hi.X+d.Right/2, midY)
	top := image.Pt(midX, lo.Y/2)
	bottom := image.Pt(midX, hi.Y+d.Bottom/2)

	return []Label{
		newLabel("left", d.Left, left, horizontal(0, lo.X, left)),
		newLabel("top", d.Top, top, vertical(0, lo.Y, top)),
		newLabel("right", d.Right, right, horizontal(hi.X, wa.Width, right)),
		newLabel("bottom", d.Bottom, bottom, vertical(hi.Y, wa.Height, bottom)),
	}
}

func newLabel(edge string, value int, c image.Point, leaders []Segment) Label {
	return Label{
		Edge:    edge,
		Value:   value,
		Text:    fmt.Sprintf("%d px", value),
		Box:     image.Rect(c.X-LabelWidth/2, c.Y-LabelHeight/2, c.X+LabelWidth/2, c.Y+LabelHeight/2),
		Leaders: leaders,
	}
}

// horizontal returns the leaders between x0 and x1 on either side of a label centred at c.
func horizontal(x0, x1 int, c image.Point) []Segment {
	var out []Segment
	if a, b := x0+LinePadding, c.X-LabelWidth/2-LinePadding; b > a {
		out = append(out, Segment{From: image.Pt(a, c.Y), To: image.Pt(b, c.Y)})
	}
	if a, b := c.X+LabelWidth/2+LinePadding, x1-LinePadding; b > a {
		out = append(out, Segment{From: image.Pt(a, c.Y), To: image.Pt(b, c.Y)})
	}
	return out
}

func vertical(y0, y1 int, c image.Point) []Segment {
	var out []Segment
	if a, b := y0+LinePadding, c.Y-LabelHeight/2-LinePadding; b > a {
		out = append(out, Segment{From: image.Pt(c.X, a), To: image.Pt(c.X, b)})
	}
	if a, b := c.Y+LabelHeight/2+LinePadding, y1-LinePadding; b > a {
		out = append(out, Segment{From: image.Pt(c.X, a), To: image.Pt(c.X, b)})
	}
	return out
}
