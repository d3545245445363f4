package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screen-edge-offsets/src/monitor"
	"screen-edge-offsets/src/selection"
)

var fullHD = monitor.WorkArea{Width: 1920, Height: 1080}

func dragging(x1, y1, x2, y2 int) selection.Snapshot {
	r := selection.Region{Start: selection.Point{X: x1, Y: y1}, End: selection.Point{X: x2, Y: y2}}
	return selection.Snapshot{Kind: selection.Dragging, Region: r, Valid: r.Valid()}
}

func TestComposeIdle(t *testing.T) {
	s := Compose(Frame{Selection: selection.Snapshot{Kind: selection.Idle}, Work: fullHD})
	assert.False(t, s.HasSelection)
	assert.Empty(t, s.Labels)
	require.NotNil(t, s.Hint)
	assert.Equal(t, StartHint, s.Hint.Text)
	assert.Equal(t, HintColor, s.Hint.Color)
	assert.Equal(t, image.Rect(0, 0, 1920, 1000), s.Hint.Box)
	assert.Equal(t, image.Pt(1920, 1080), s.Size)
}

func TestComposeRejected(t *testing.T) {
	s := Compose(Frame{Selection: selection.Snapshot{Kind: selection.Idle, Rejected: true}, Work: fullHD})
	require.NotNil(t, s.Hint)
	assert.Equal(t, RetryHint, s.Hint.Text)
	assert.Equal(t, InvalidColor, s.Hint.Color)
}

func TestComposeInvalidDrag(t *testing.T) {
	s := Compose(Frame{Selection: dragging(40, 40, 10, 10), Work: fullHD})
	assert.True(t, s.HasSelection)
	assert.Equal(t, image.Rect(10, 10, 40, 40), s.Selection)
	assert.Equal(t, InvalidColor, s.Outline)
	assert.Empty(t, s.Labels)
	require.NotNil(t, s.Hint)
	assert.Equal(t, "Invalid Rectangle! Must be larger than 32 x 32 pixels", s.Hint.Text)
}

func TestComposeValidDragLabels(t *testing.T) {
	for _, snap := range []selection.Snapshot{dragging(100, 100, 1820, 980), dragging(1820, 980, 100, 100)} {
		s := Compose(Frame{Selection: snap, Work: fullHD})
		assert.Equal(t, image.Rect(100, 100, 1820, 980), s.Selection)
		assert.Equal(t, ValidColor, s.Outline)
		assert.Nil(t, s.Hint)
		require.Len(t, s.Labels, 4)

		byEdge := map[string]Label{}
		for _, l := range s.Labels {
			assert.Equal(t, 100, l.Value)
			assert.Equal(t, "100 px", l.Text)
			byEdge[l.Edge] = l
		}

		assert.Equal(t, image.Rect(50-58, 540-16, 50+58, 540+16), byEdge["left"].Box)
		assert.Equal(t, image.Rect(1870-58, 540-16, 1870+58, 540+16), byEdge["right"].Box)
		assert.Equal(t, image.Rect(960-58, 50-16, 960+58, 50+16), byEdge["top"].Box)
		assert.Equal(t, image.Rect(960-58, 1030-16, 960+58, 1030+16), byEdge["bottom"].Box)

		// A 100px horizontal gap is narrower than the label, so no leaders fit.
		assert.Empty(t, byEdge["left"].Leaders)
		assert.Empty(t, byEdge["right"].Leaders)

		assert.Equal(t, []Segment{
			{From: image.Pt(960, 8), To: image.Pt(960, 26)},
			{From: image.Pt(960, 74), To: image.Pt(960, 92)},
		}, byEdge["top"].Leaders)
		assert.Equal(t, []Segment{
			{From: image.Pt(960, 988), To: image.Pt(960, 1006)},
			{From: image.Pt(960, 1054), To: image.Pt(960, 1072)},
		}, byEdge["bottom"].Leaders)
	}
}

func TestComposeWideGapLeaders(t *testing.T) {
	s := Compose(Frame{Selection: dragging(800, 400, 1000, 600), Work: fullHD})
	require.Len(t, s.Labels, 4)
	left := s.Labels[0]
	assert.Equal(t, "left", left.Edge)
	assert.Equal(t, []Segment{
		{From: image.Pt(8, 500), To: image.Pt(334, 500)},
		{From: image.Pt(466, 500), To: image.Pt(792, 500)},
	}, left.Leaders)
}

func TestComposeTerminalStates(t *testing.T) {
	committed := dragging(100, 100, 500, 500)
	committed.Kind = selection.Committed
	s := Compose(Frame{Selection: committed, Work: fullHD})
	assert.True(t, s.HasSelection)
	assert.Empty(t, s.Labels)
	assert.Nil(t, s.Hint)

	s = Compose(Frame{Selection: selection.Snapshot{Kind: selection.Cancelled}, Work: fullHD})
	assert.False(t, s.HasSelection)
	assert.Nil(t, s.Hint)
}
