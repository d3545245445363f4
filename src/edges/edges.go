package edges

import (
	"fmt"

	"screen-edge-offsets/src/monitor"
	"screen-edge-offsets/src/selection"
)

// Distances are the pixel gaps between a selection and each work-area edge.
type Distances struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Compute converts a selection into edge distances for the given work area.
// The direction of the drag does not matter.
func Compute(r selection.Region, wa monitor.WorkArea) Distances {
	lo, hi := r.Normalized()
	return Distances{
		Left:   lo.X,
		Top:    lo.Y,
		Right:  wa.Width - hi.X,
		Bottom: wa.Height - hi.Y,
	}
}

func (d Distances) String() string {
	return fmt.Sprintf("Left: %d, Top: %d, Right: %d, Bottom: %d", d.Left, d.Top, d.Right, d.Bottom)
}

// Message formats the distances one per line, in Left, Top, Right, Bottom order.
func (d Distances) Message() string {
	return fmt.Sprintf("Left:\t  %d\nTop:\t  %d\nRight:\t  %d\nBottom:\t  %d", d.Left, d.Top, d.Right, d.Bottom)
}
