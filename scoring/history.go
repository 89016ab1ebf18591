// scoring/history.go
package scoring

// DefaultHistoryLimit bounds the undo stack. A padel match rarely exceeds a
// few hundred points; past the ceiling the oldest snapshots are evicted, so
// undo reaches at most this many points back.
const DefaultHistoryLimit = 256

// History is the bounded stack of deep-copied match-state snapshots backing
// undo. Snapshots are ordered most-recent-last. One History instance belongs
// to exactly one scoring session; it is cleared when a match is abandoned or
// a new match starts.
type History struct {
	snapshots []MatchState
	limit     int
}

// NewHistory creates a History holding at most limit snapshots. A
// non-positive limit selects DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Push records a deep copy of state. At the ceiling the oldest snapshot is
// evicted first. AddPoint callers push the pre-mutation state on every
// successful forward transition.
func (h *History) Push(state MatchState) {
	if len(h.snapshots) >= h.limit {
		h.snapshots = h.snapshots[1:]
	}
	h.snapshots = append(h.snapshots, state.Clone())
}

// Pop removes and returns the most recent snapshot exactly as it was pushed.
// ok is false when the stack is empty.
func (h *History) Pop() (MatchState, bool) {
	if len(h.snapshots) == 0 {
		return MatchState{}, false
	}
	last := len(h.snapshots) - 1
	snapshot := h.snapshots[last]
	h.snapshots = h.snapshots[:last]
	return snapshot, true
}

// Len reports the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Clear drops every snapshot.
func (h *History) Clear() {
	h.snapshots = nil
}
