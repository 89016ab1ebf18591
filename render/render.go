// render/render.go
//
// Presentation seam between the scoring core and whatever paints the screen.
// The core hands a ViewModel plus the resolved layout geometry to a Painter;
// concrete painters (device widgets, the terminal simulator) live behind the
// interface so the core never touches a drawing API.
package render

import (
	"fmt"

	"github.com/trystan2k/padelbuddy-sub002/layout"
	"github.com/trystan2k/padelbuddy-sub002/scoring"
)

// TeamView is one team's display strings.
type TeamView struct {
	Label  string
	Points string
	Games  int
	Sets   int
}

// ViewModel is everything a scoreboard screen shows, derived from one
// MatchState. It is rebuilt from scratch after every transition.
type ViewModel struct {
	TeamA      TeamView
	TeamB      TeamView
	SetNumber  int
	SetSummary string
	InTieBreak bool
	Finished   bool
	Winner     string
}

// Painter is implemented by widget/render collaborators. Paint receives the
// resolved geometry for the current screen and the view-model to place in it.
type Painter interface {
	Paint(frame layout.Result, vm ViewModel) error
}

// BuildViewModel derives the presentation view-model for a match state.
func BuildViewModel(state scoring.MatchState) ViewModel {
	vm := ViewModel{
		TeamA: TeamView{
			Label:  state.Teams.TeamA,
			Points: pointLabel(state, scoring.TeamA),
			Games:  state.TeamA.Games,
			Sets:   state.SetsWon.TeamA,
		},
		TeamB: TeamView{
			Label:  state.Teams.TeamB,
			Points: pointLabel(state, scoring.TeamB),
			Games:  state.TeamB.Games,
			Sets:   state.SetsWon.TeamB,
		},
		SetNumber:  state.CurrentSet,
		SetSummary: setSummary(state),
		InTieBreak: state.TieBreak != nil,
		Finished:   state.Status == scoring.StatusFinished,
	}
	if vm.Finished {
		vm.Winner = state.Teams.TeamA
		if state.SetsWon.TeamB > state.SetsWon.TeamA {
			vm.Winner = state.Teams.TeamB
		}
	}
	return vm
}

// pointLabel is the string shown in a team's point panel; during a tie-break
// the raw tie-break counter replaces the tennis progression label.
func pointLabel(state scoring.MatchState, team scoring.Team) string {
	if tb := state.TieBreak; tb != nil {
		if team == scoring.TeamB {
			return fmt.Sprintf("%d", tb.TeamBPoints)
		}
		return fmt.Sprintf("%d", tb.TeamAPoints)
	}
	if team == scoring.TeamB {
		return string(state.TeamB.Points)
	}
	return string(state.TeamA.Points)
}

// setSummary renders completed sets as "6-4 7-6" style text, oldest first.
func setSummary(state scoring.MatchState) string {
	out := ""
	for i, set := range state.SetHistory {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%d-%d", set.TeamAGames, set.TeamBGames)
	}
	return out
}
