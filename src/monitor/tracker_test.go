package monitor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	display Display
	err     error
	calls   int
}

func (f *fakeProvider) DisplayFor(Handle) (Display, error) {
	f.calls++
	return f.display, f.err
}

type fakeLock bool

func (l *fakeLock) Dragging() bool { return bool(*l) }

var (
	primary   = Display{ID: 1, Work: Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1040}}
	secondary = Display{ID: 2, Work: Rect{Left: 1920, Top: 0, Right: 4480, Bottom: 1400}}
)

func newTestTracker(t *testing.T) (*Tracker, *fakeProvider, *fakeLock) {
	t.Helper()
	p := &fakeProvider{display: primary}
	lock := new(fakeLock)
	tr := NewTracker(p, lock)
	require.NoError(t, tr.Init(0))
	return tr, p, lock
}

func TestInit(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	assert.Equal(t, WorkArea{Width: 1920, Height: 1040}, tr.WorkArea())
	assert.Equal(t, primary.Work, tr.Bounds())
	assert.Equal(t, uintptr(1), tr.DisplayID())
}

func TestInitFailure(t *testing.T) {
	tr := NewTracker(&fakeProvider{err: errors.New("boom")}, nil)
	assert.Error(t, tr.Init(0))

	tr = NewTracker(&fakeProvider{display: Display{ID: 3}}, nil)
	assert.Error(t, tr.Init(0), "empty work area must be rejected")
}

func TestRefreshSameDisplay(t *testing.T) {
	tr, p, _ := newTestTracker(t)
	assert.False(t, tr.Refresh(0))
	assert.Equal(t, 2, p.calls)
	assert.Equal(t, primary.Work, tr.Bounds())
}

func TestRefreshDisplayChanged(t *testing.T) {
	tr, p, _ := newTestTracker(t)
	p.display = secondary
	assert.True(t, tr.Refresh(0))
	assert.Equal(t, WorkArea{Width: 2560, Height: 1400}, tr.WorkArea())
	assert.Equal(t, secondary.Work, tr.Bounds())
	assert.False(t, tr.Refresh(0))
}

func TestRefreshLockedWhileDragging(t *testing.T) {
	tr, p, lock := newTestTracker(t)
	*lock = true
	p.display = secondary
	for i := 0; i < 3; i++ {
		assert.False(t, tr.Refresh(0))
		assert.Equal(t, primary.Work, tr.Bounds())
	}
	assert.Equal(t, 1, p.calls, "provider must not be queried during a drag")

	*lock = false
	assert.True(t, tr.Refresh(0))
}

func TestRefreshSoftFailureKeepsWorkArea(t *testing.T) {
	tr, p, _ := newTestTracker(t)
	p.display = secondary
	p.err = errors.New("GetMonitorInfo failed")
	assert.False(t, tr.Refresh(0))
	assert.Equal(t, WorkArea{Width: 1920, Height: 1040}, tr.WorkArea())

	p.err = nil
	p.display = Display{ID: 9}
	assert.False(t, tr.Refresh(0), "zero-size geometry must not replace the work area")
	assert.Equal(t, primary.Work, tr.Bounds())
}

func TestStaticProvider(t *testing.T) {
	d, err := StaticProvider{Display: primary}.DisplayFor(0)
	require.NoError(t, err)
	assert.Equal(t, primary, d)

	_, err = StaticProvider{}.DisplayFor(0)
	assert.ErrorIs(t, err, ErrNoDisplay)
}

func TestRectContains(t *testing.T) {
	assert.True(t, secondary.Work.Contains(1920, 0))
	assert.False(t, secondary.Work.Contains(1919, 0))
	assert.False(t, secondary.Work.Contains(4480, 10))
}
