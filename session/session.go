// session/session.go
//
// The scoring session controller owns the active match: its state, its undo
// history, and the storage collaborator. Exactly one session drives a match
// at a time; screens hold a *Session instead of reaching for globals.
package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/trystan2k/padelbuddy-sub002/scoring"
	"github.com/trystan2k/padelbuddy-sub002/storage"
)

// ErrMatchFinished is returned by Tap once the match is over; undo is still
// allowed and can bring the match back to active.
var ErrMatchFinished = errors.New("session: match is finished")

// ErrNoMatch is returned by Tap and Undo when no match is in progress.
var ErrNoMatch = errors.New("session: no active match")

// Session drives one match from first point to archive entry.
type Session struct {
	store   storage.Store
	archive *storage.MatchArchive

	state   *scoring.MatchState
	history *scoring.History
}

// New creates a session over the given store and resumes a previously saved
// match if one is persisted. Corrupt saved state reads as no saved match.
func New(store storage.Store) *Session {
	s := &Session{
		store:   store,
		archive: storage.NewMatchArchive(store),
		history: scoring.NewHistory(0),
	}
	if data, err := store.Load(storage.KeyMatchState); err == nil {
		s.state = scoring.DecodeState(data)
	}
	return s
}

// NewMatch starts a fresh match, clearing any previous state and history.
func (s *Session) NewMatch(teamA, teamB string, bestOf int) scoring.MatchState {
	state := scoring.NewMatch(teamA, teamB, bestOf)
	s.state = &state
	s.history.Clear()
	s.persist()
	return state
}

// Active reports whether a match is loaded (finished matches stay loaded
// until abandoned, so their result remains on screen and undoable).
func (s *Session) Active() bool {
	return s.state != nil
}

// State returns a copy of the current match state.
func (s *Session) State() (scoring.MatchState, bool) {
	if s.state == nil {
		return scoring.MatchState{}, false
	}
	return s.state.Clone(), true
}

// CanUndo reports whether at least one snapshot is available.
func (s *Session) CanUndo() bool {
	return s.history.Len() > 0
}

// Tap awards one point to team: the pre-mutation state is pushed onto the
// history, the transition applied, the result persisted, and — when the
// point finishes the match — an archive entry recorded.
func (s *Session) Tap(team scoring.Team) error {
	if s.state == nil {
		return ErrNoMatch
	}
	if s.state.Status == scoring.StatusFinished {
		return ErrMatchFinished
	}

	s.history.Push(*s.state)
	next := scoring.AddPoint(*s.state, team)
	s.state = &next
	s.persist()

	if next.Status == scoring.StatusFinished {
		if err := s.archive.Append(storage.NewArchiveEntry(next)); err != nil {
			return fmt.Errorf("archiving finished match: %w", err)
		}
	}
	return nil
}

// Undo restores the most recent snapshot, which may move a just-finished
// match back to active. With an empty history it is a silent no-op.
func (s *Session) Undo() error {
	if s.state == nil {
		return ErrNoMatch
	}
	restored := scoring.RemovePoint(*s.state, s.history)
	s.state = &restored
	s.persist()
	return nil
}

// Abandon drops the current match and its history without archiving.
func (s *Session) Abandon() error {
	s.state = nil
	s.history.Clear()
	return s.store.Clear(storage.KeyMatchState)
}

// Archive exposes the finished-match archive for the history screen.
func (s *Session) Archive() *storage.MatchArchive {
	return s.archive
}

// persist saves the current state; persistence failures are logged, not
// surfaced, so a full disk never blocks scoring.
func (s *Session) persist() {
	if s.state == nil {
		return
	}
	data, err := scoring.EncodeState(*s.state)
	if err != nil {
		log.Printf("Warn session: encoding match state: %v", err)
		return
	}
	if err := s.store.Save(storage.KeyMatchState, data); err != nil {
		log.Printf("Warn session: saving match state: %v", err)
	}
}
