// storage/archive.go
package storage

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/trystan2k/padelbuddy-sub002/scoring"
)

// MaxArchiveEntries bounds the persisted match history: the list is FIFO and
// the oldest entry is evicted first once full.
const MaxArchiveEntries = 50

// ArchiveSchemaVersion is stamped into every entry so future readers can
// migrate old records.
const ArchiveSchemaVersion = 1

// MatchHistoryEntry is the read-only summary persisted once per finished
// match. It is distinct from the in-memory undo History.
type MatchHistoryEntry struct {
	ID            string              `json:"id"`
	CompletedAt   int64               `json:"completedAt"`
	TeamALabel    string              `json:"teamALabel"`
	TeamBLabel    string              `json:"teamBLabel"`
	SetsWonTeamA  int                 `json:"setsWonTeamA"`
	SetsWonTeamB  int                 `json:"setsWonTeamB"`
	SetHistory    []scoring.SetRecord `json:"setHistory"`
	WinnerTeam    scoring.Team        `json:"winnerTeam"`
	SchemaVersion int                 `json:"schemaVersion"`
}

// NewArchiveEntry summarizes a finished match. Call it only once Status is
// finished; the winner is whichever team holds the larger set count.
func NewArchiveEntry(state scoring.MatchState) MatchHistoryEntry {
	winner := scoring.TeamA
	if state.SetsWon.TeamB > state.SetsWon.TeamA {
		winner = scoring.TeamB
	}
	sets := make([]scoring.SetRecord, len(state.SetHistory))
	copy(sets, state.SetHistory)
	return MatchHistoryEntry{
		ID:            uuid.NewString(),
		CompletedAt:   time.Now().UnixMilli(),
		TeamALabel:    state.Teams.TeamA,
		TeamBLabel:    state.Teams.TeamB,
		SetsWonTeamA:  state.SetsWon.TeamA,
		SetsWonTeamB:  state.SetsWon.TeamB,
		SetHistory:    sets,
		WinnerTeam:    winner,
		SchemaVersion: ArchiveSchemaVersion,
	}
}

// MatchArchive is the persisted FIFO list of finished matches. Entries are
// created at match completion, read-only afterwards, and deleted only by
// bulk clear.
type MatchArchive struct {
	store Store
}

// NewMatchArchive wraps a Store with the archive contract.
func NewMatchArchive(store Store) *MatchArchive {
	return &MatchArchive{store: store}
}

// Entries returns the archived matches, oldest first. Missing or corrupt
// persisted data reads as an empty archive.
func (a *MatchArchive) Entries() []MatchHistoryEntry {
	data, err := a.store.Load(KeyMatchHistory)
	if err != nil {
		return nil
	}
	var entries []MatchHistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("Warn MatchArchive: discarding corrupt match history: %v", err)
		return nil
	}
	return entries
}

// Append stores a new entry, evicting the oldest once the archive holds
// MaxArchiveEntries.
func (a *MatchArchive) Append(entry MatchHistoryEntry) error {
	entries := append(a.Entries(), entry)
	if len(entries) > MaxArchiveEntries {
		entries = entries[len(entries)-MaxArchiveEntries:]
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return a.store.Save(KeyMatchHistory, data)
}

// Clear removes every archived match.
func (a *MatchArchive) Clear() error {
	return a.store.Clear(KeyMatchHistory)
}
