package selection

// Kind identifies the interaction state of a Machine.
type Kind int

const (
	Idle Kind = iota
	Dragging
	Committed
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Committed:
		return "committed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Commit is the frozen outcome of a released drag.
type Commit struct {
	Region Region
	Valid  bool
}

// Snapshot is a read-only copy of the machine for renderers.
type Snapshot struct {
	Kind   Kind
	Region Region
	Valid  bool
	// Rejected is set after a release below MinSize and cleared when the next drag begins.
	Rejected bool
}

// Machine tracks one selection interaction from the first press to a terminal state.
// It is not safe for concurrent use; all calls come from the event-handling goroutine.
type Machine struct {
	kind     Kind
	region   Region
	valid    bool
	rejected bool
}

// New returns a machine in the Idle state with both corners at the origin.
func New() *Machine {
	return &Machine{kind: Idle}
}

// Kind returns the current state.
func (m *Machine) Kind() Kind { return m.kind }

// Dragging reports whether a drag is in progress.
func (m *Machine) Dragging() bool { return m.kind == Dragging }

// Terminal reports whether the machine has finished: a valid commit or a cancellation.
func (m *Machine) Terminal() bool {
	return m.kind == Cancelled || (m.kind == Committed && m.valid)
}

// Snapshot copies the current state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{Kind: m.kind, Region: m.region, Valid: m.valid, Rejected: m.rejected}
}

// BeginDrag starts a drag at p. Only legal from Idle.
func (m *Machine) BeginDrag(p Point) bool {
	if m.kind != Idle {
		return false
	}
	m.kind = Dragging
	m.region = Region{Start: p, End: p}
	m.valid = m.region.Valid()
	m.rejected = false
	return true
}

// UpdateDrag moves the free corner to p and reports whether the rectangle changed.
// Only legal while Dragging.
func (m *Machine) UpdateDrag(p Point) bool {
	if m.kind != Dragging {
		return false
	}
	if m.region.End == p {
		return false
	}
	m.region.End = p
	m.valid = m.region.Valid()
	return true
}

// EndDrag releases the drag at p. A valid rectangle leaves the machine in the
// terminal Committed state; an invalid one is returned once and the machine
// falls back to Idle with both corners reset so the user can draw again.
func (m *Machine) EndDrag(p Point) (Commit, bool) {
	if m.kind != Dragging {
		return Commit{}, false
	}
	m.region.End = p
	m.valid = m.region.Valid()
	c := Commit{Region: m.region, Valid: m.valid}
	if c.Valid {
		m.kind = Committed
		return c, true
	}
	m.kind = Idle
	m.region = Region{}
	m.valid = false
	m.rejected = true
	return c, true
}

// Cancel aborts the interaction from any non-terminal state. Calling it again is a no-op.
func (m *Machine) Cancel() bool {
	if m.Terminal() {
		return false
	}
	m.kind = Cancelled
	return true
}
