package history

import "errors"

var (
	// ErrEmptyHistory reports an undo with nothing to undo.
	ErrEmptyHistory = errors.New("history is empty")

	// ErrEmptyRedo reports a redo with nothing to redo.
	ErrEmptyRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries bounds history growth when no limit is configured.
const DefaultMaxEntries = 100

// Manager owns the ordered calculation history and the redo buffer.
// Oldest entries are evicted once the configured maximum is reached.
// Manager is not safe for concurrent use; the calculator runs a single
// thread of control.
type Manager struct {
	entries    []Calculation
	redo       []Calculation
	maxEntries int
}

// NewManager creates a history manager holding at most maxEntries
// calculations. Values <= 0 fall back to DefaultMaxEntries.
func NewManager(maxEntries int) *Manager {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Manager{maxEntries: maxEntries}
}

// Append adds c to the end of the history, evicting the oldest entry
// when the maximum size would be exceeded. Pending redo entries are
// discarded: once a new calculation lands, the undone branch is stale.
func (m *Manager) Append(c Calculation) {
	m.entries = append(m.entries, c)
	if len(m.entries) > m.maxEntries {
		m.entries = m.entries[1:]
	}
	m.redo = nil
}

// Clear empties both the history and the redo buffer.
func (m *Manager) Clear() {
	m.entries = nil
	m.redo = nil
}

// Undo removes and returns the most recent calculation, pushing it
// onto the redo buffer.
func (m *Manager) Undo() (Calculation, error) {
	if len(m.entries) == 0 {
		return Calculation{}, ErrEmptyHistory
	}
	last := m.entries[len(m.entries)-1]
	m.entries = m.entries[:len(m.entries)-1]
	m.redo = append(m.redo, last)
	return last, nil
}

// Redo removes the most recent undone calculation from the redo buffer
// and re-appends it to the history. The redo buffer is left intact
// apart from the popped entry; this is the restorative path.
func (m *Manager) Redo() (Calculation, error) {
	if len(m.redo) == 0 {
		return Calculation{}, ErrEmptyRedo
	}
	last := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.entries = append(m.entries, last)
	return last, nil
}

// List returns a copy of the history in insertion order.
func (m *Manager) List() []Calculation {
	out := make([]Calculation, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of recorded calculations.
func (m *Manager) Len() int {
	return len(m.entries)
}

// RedoLen returns the number of calculations eligible for redo.
func (m *Manager) RedoLen() int {
	return len(m.redo)
}
