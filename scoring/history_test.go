// scoring/history_test.go
package scoring

import (
	"reflect"
	"testing"
)

func TestHistoryPushPopOrder(t *testing.T) {
	hist := NewHistory(0)
	first := NewMatch("A", "B", 3)
	second := AddPoint(first, TeamA)

	hist.Push(first)
	hist.Push(second)

	got, ok := hist.Pop()
	if !ok || !reflect.DeepEqual(got, second) {
		t.Fatal("Pop must return the most recent snapshot first")
	}
	got, ok = hist.Pop()
	if !ok || !reflect.DeepEqual(got, first) {
		t.Fatal("second Pop must return the older snapshot")
	}
	if _, ok := hist.Pop(); ok {
		t.Fatal("Pop on empty history must report !ok")
	}
}

func TestHistorySnapshotsAreDeepCopies(t *testing.T) {
	hist := NewHistory(0)
	state := NewMatch("A", "B", 3)
	state.SetHistory = append(state.SetHistory, SetRecord{SetNumber: 1, TeamAGames: 6})

	hist.Push(state)

	// Mutations made after the push must not leak into the snapshot.
	state.SetHistory[0].TeamAGames = 0
	state.TeamA.Points = PointForty

	snapshot, _ := hist.Pop()
	if snapshot.SetHistory[0].TeamAGames != 6 {
		t.Error("snapshot shares SetHistory backing array with live state")
	}
	if snapshot.TeamA.Points != PointLove {
		t.Error("snapshot points mutated after push")
	}
}

func TestHistoryEvictsOldestAtCeiling(t *testing.T) {
	hist := NewHistory(3)
	states := make([]MatchState, 5)
	state := NewMatch("A", "B", 3)
	for i := range states {
		states[i] = state
		hist.Push(state)
		state = AddPoint(state, TeamA)
	}

	if hist.Len() != 3 {
		t.Fatalf("Len = %d, want ceiling 3", hist.Len())
	}
	// The three most recent snapshots survive, newest popped first.
	for i := 4; i >= 2; i-- {
		got, ok := hist.Pop()
		if !ok || !reflect.DeepEqual(got, states[i]) {
			t.Fatalf("expected snapshot %d to survive eviction", i)
		}
	}
}

func TestHistoryClear(t *testing.T) {
	hist := NewHistory(0)
	hist.Push(NewMatch("A", "B", 3))
	hist.Clear()
	if hist.Len() != 0 {
		t.Error("Clear must drop all snapshots")
	}
}
