package edges

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"screen-edge-offsets/src/monitor"
	"screen-edge-offsets/src/selection"
)

var fullHD = monitor.WorkArea{Width: 1920, Height: 1080}

func region(x1, y1, x2, y2 int) selection.Region {
	return selection.Region{Start: selection.Point{X: x1, Y: y1}, End: selection.Point{X: x2, Y: y2}}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		r    selection.Region
		wa   monitor.WorkArea
		want Distances
	}{
		{"centered", region(100, 100, 1820, 980), fullHD, Distances{Left: 100, Top: 100, Right: 100, Bottom: 100}},
		{"reversed", region(1820, 980, 100, 100), fullHD, Distances{Left: 100, Top: 100, Right: 100, Bottom: 100}},
		{"mixed corners", region(1820, 100, 100, 980), fullHD, Distances{Left: 100, Top: 100, Right: 100, Bottom: 100}},
		{"full area", region(0, 0, 1920, 1080), fullHD, Distances{}},
		{"bottom right", region(1600, 900, 1888, 1040), fullHD, Distances{Left: 1600, Top: 900, Right: 32, Bottom: 40}},
		{"taskbar work area", region(10, 20, 110, 120), monitor.WorkArea{Width: 1280, Height: 680}, Distances{Left: 10, Top: 20, Right: 1170, Bottom: 560}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compute(tc.r, tc.wa))
		})
	}
}

func TestComputeSumsToWorkArea(t *testing.T) {
	wa := monitor.WorkArea{Width: 2560, Height: 1400}
	for x1 := 0; x1 <= wa.Width; x1 += 317 {
		for x2 := 0; x2 <= wa.Width; x2 += 401 {
			for y := 0; y <= wa.Height; y += 233 {
				r := region(x1, y, x2, wa.Height-y)
				d := Compute(r, wa)
				lo, hi := r.Normalized()
				assert.Equal(t, wa.Width, d.Left+d.Right+(hi.X-lo.X))
				assert.Equal(t, wa.Height, d.Top+d.Bottom+(hi.Y-lo.Y))
			}
		}
	}
}

func TestFormatting(t *testing.T) {
	d := Distances{Left: 1, Top: 2, Right: 3, Bottom: 4}
	assert.Equal(t, "Left: 1, Top: 2, Right: 3, Bottom: 4", d.String())
	assert.Equal(t, "Left:\t  1\nTop:\t  2\nRight:\t  3\nBottom:\t  4", d.Message())
}
