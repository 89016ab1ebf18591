// scoring/types.go
package scoring

import (
	"encoding/json"
	"log"
	"time"
)

// Point is one step of the tennis/padel point progression.
type Point string

const (
	PointLove      Point = "0"
	PointFifteen   Point = "15"
	PointThirty    Point = "30"
	PointForty     Point = "40"
	PointAdvantage Point = "Ad"
	PointGame      Point = "Game"
)

// pointOrder is the fixed progression a scoring team advances through.
// PointGame is transient: reaching it fires the game-won transition and both
// teams reset to PointLove before the new state is returned.
var pointOrder = []Point{PointLove, PointFifteen, PointThirty, PointForty, PointAdvantage, PointGame}

// Team identifies one side of the match.
type Team string

const (
	TeamA Team = "teamA"
	TeamB Team = "teamB"
)

// Status is the match lifecycle state. The only forward transition is
// active -> finished; undo may move a match back to active.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Scoring thresholds.
const (
	gamesToWinSet      = 6
	setWinMargin       = 2
	tieBreakTrigger    = 6 // games-all count that switches to tie-break scoring
	tieBreakTarget     = 7 // tie-break points to win...
	tieBreakMargin     = 2 // ...with this margin
	DefaultBestOf      = 3
	StateSchemaVersion = 1
)

// TeamScore is one team's standing within the current game and set.
type TeamScore struct {
	Points Point `json:"points"`
	Games  int   `json:"games"`
}

// Labels carries the display names for both teams.
type Labels struct {
	TeamA string `json:"teamA"`
	TeamB string `json:"teamB"`
}

// SetStatus mirrors the games of the set in progress.
type SetStatus struct {
	Number     int `json:"number"`
	TeamAGames int `json:"teamAGames"`
	TeamBGames int `json:"teamBGames"`
}

// SetRecord is one completed set in the match's set history.
type SetRecord struct {
	SetNumber  int `json:"setNumber"`
	TeamAGames int `json:"teamAGames"`
	TeamBGames int `json:"teamBGames"`
}

// SetsWon counts completed sets per team.
type SetsWon struct {
	TeamA int `json:"teamA"`
	TeamB int `json:"teamB"`
}

// TieBreakStatus holds the distinct point counters used while a 6-6 set is
// decided by tie-break. Nil outside a tie-break.
type TieBreakStatus struct {
	TeamAPoints int `json:"teamAPoints"`
	TeamBPoints int `json:"teamBPoints"`
}

// MatchState is the full scoring state of one match. Transition functions
// treat it as immutable: they clone, mutate the clone, and return it.
type MatchState struct {
	Teams            Labels      `json:"teams"`
	TeamA            TeamScore   `json:"teamA"`
	TeamB            TeamScore   `json:"teamB"`
	CurrentSetStatus SetStatus   `json:"currentSetStatus"`
	CurrentSet       int         `json:"currentSet"`
	Status           Status      `json:"status"`
	SetsWon          SetsWon     `json:"setsWon"`
	SetHistory       []SetRecord `json:"setHistory"`

	TieBreak *TieBreakStatus `json:"tieBreak,omitempty"`
	BestOf   int             `json:"bestOf"`

	UpdatedAt int64 `json:"updatedAt"`
}

// NewMatch returns the initial state for a best-of-N match. A non-positive
// or even bestOf falls back to the default best-of-3.
func NewMatch(teamA, teamB string, bestOf int) MatchState {
	if bestOf <= 0 || bestOf%2 == 0 {
		bestOf = DefaultBestOf
	}
	return MatchState{
		Teams:            Labels{TeamA: teamA, TeamB: teamB},
		TeamA:            TeamScore{Points: PointLove},
		TeamB:            TeamScore{Points: PointLove},
		CurrentSetStatus: SetStatus{Number: 1},
		CurrentSet:       1,
		Status:           StatusActive,
		SetHistory:       []SetRecord{},
		BestOf:           bestOf,
		UpdatedAt:        time.Now().UnixMilli(),
	}
}

// SetsToWin is the set count a team needs to finish the match.
func (s MatchState) SetsToWin() int {
	bestOf := s.BestOf
	if bestOf <= 0 {
		bestOf = DefaultBestOf
	}
	return bestOf/2 + 1
}

// Clone returns a structural deep copy. History snapshots rely on this:
// sharing SetHistory or TieBreak between snapshots would let later mutations
// leak into already-taken snapshots.
func (s MatchState) Clone() MatchState {
	out := s
	out.SetHistory = make([]SetRecord, len(s.SetHistory))
	copy(out.SetHistory, s.SetHistory)
	if s.TieBreak != nil {
		tb := *s.TieBreak
		out.TieBreak = &tb
	}
	return out
}

// score returns the mutable scores for team and its opponent.
func (s *MatchState) score(team Team) (mine, theirs *TeamScore) {
	if team == TeamB {
		return &s.TeamB, &s.TeamA
	}
	return &s.TeamA, &s.TeamB
}

// EncodeState serializes a match state for the persistence collaborator.
func EncodeState(s MatchState) ([]byte, error) {
	return json.Marshal(s)
}

// DecodeState parses a persisted match state blob. Corrupt or shape-invalid
// data is treated as "no saved match" and returns nil rather than an error,
// so a bad blob can never crash session startup.
func DecodeState(data []byte) *MatchState {
	if len(data) == 0 {
		return nil
	}
	var s MatchState
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("Warn DecodeState: discarding corrupt match state: %v", err)
		return nil
	}
	if !validState(&s) {
		log.Printf("Warn DecodeState: discarding shape-invalid match state")
		return nil
	}
	if s.SetHistory == nil {
		s.SetHistory = []SetRecord{}
	}
	return &s
}

func validState(s *MatchState) bool {
	if s.Status != StatusActive && s.Status != StatusFinished {
		return false
	}
	if !validPoint(s.TeamA.Points) || !validPoint(s.TeamB.Points) {
		return false
	}
	if s.TeamA.Games < 0 || s.TeamB.Games < 0 || s.CurrentSet < 1 {
		return false
	}
	// Both teams holding advantage at once is unreachable by any transition.
	if s.TeamA.Points == PointAdvantage && s.TeamB.Points == PointAdvantage {
		return false
	}
	return true
}

func validPoint(p Point) bool {
	for _, candidate := range pointOrder {
		if p == candidate {
			return true
		}
	}
	return false
}
