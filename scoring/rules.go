// scoring/rules.go
//
// Pure state-transition functions for padel/tennis scoring. Every function
// takes a MatchState by value and returns a fresh one; callers own
// persistence and history management.
package scoring

import "time"

// AddPoint awards one point to team and returns the resulting state. It
// handles deuce/advantage, game and set completion, the 6-6 tie-break mode,
// and match finish. Callers must check Status before invoking: scoring a
// finished match is a caller precondition violation and returns the state
// unchanged.
func AddPoint(state MatchState, team Team) MatchState {
	if state.Status != StatusActive {
		return state
	}
	next := state.Clone()
	next.UpdatedAt = time.Now().UnixMilli()

	if next.TieBreak != nil {
		addTieBreakPoint(&next, team)
		return next
	}

	mine, theirs := next.score(team)
	switch {
	case mine.Points == PointForty && theirs.Points == PointForty:
		mine.Points = PointAdvantage
	case theirs.Points == PointAdvantage:
		// Scoring against advantage restores deuce; Ad is cleared, not passed.
		theirs.Points = PointForty
	case mine.Points == PointAdvantage || mine.Points == PointForty:
		mine.Points = PointGame
	default:
		mine.Points = advance(mine.Points)
	}

	if IsGameWon(mine.Points) {
		winGame(&next, team)
	}
	return next
}

// RemovePoint is the undo transition. Reversing a point algebraically is
// ambiguous across game and set boundaries, so undo pops the most recent
// snapshot off hist and returns it verbatim. With an empty history it is a
// no-op returning state unchanged: undo never rewinds past the match start.
func RemovePoint(state MatchState, hist *History) MatchState {
	if hist == nil {
		return state
	}
	if snapshot, ok := hist.Pop(); ok {
		return snapshot
	}
	return state
}

// IsGameWon reports whether a points value marks a completed game. PointGame
// only ever appears transiently inside AddPoint.
func IsGameWon(p Point) bool {
	return p == PointGame
}

// IsSetWon reports whether games/opponentGames is a completed set: six games
// with a two-game margin, or seven (the tie-break winner's seventh game).
func IsSetWon(games, opponentGames int) bool {
	if games >= gamesToWinSet+1 {
		return true
	}
	return games >= gamesToWinSet && games-opponentGames >= setWinMargin
}

// IsMatchFinished reports whether either team has the sets required by the
// configured best-of length.
func IsMatchFinished(state MatchState) bool {
	need := state.SetsToWin()
	return state.SetsWon.TeamA >= need || state.SetsWon.TeamB >= need
}

// advance moves one step along the point progression.
func advance(p Point) Point {
	for i, candidate := range pointOrder {
		if candidate == p && i+1 < len(pointOrder) {
			return pointOrder[i+1]
		}
	}
	return p
}

// addTieBreakPoint applies the distinct tie-break point-counting mode: first
// to seven, win by two; the winner is awarded the set's seventh game.
func addTieBreakPoint(state *MatchState, team Team) {
	tb := state.TieBreak
	if team == TeamB {
		tb.TeamBPoints++
	} else {
		tb.TeamAPoints++
	}

	mine, theirs := tb.TeamAPoints, tb.TeamBPoints
	if team == TeamB {
		mine, theirs = theirs, mine
	}
	if mine >= tieBreakTarget && mine-theirs >= tieBreakMargin {
		score, _ := state.score(team)
		score.Games++
		state.TieBreak = nil
		syncSetStatus(state)
		completeSet(state, team)
	}
}

// winGame credits the game to team, resets points, and runs the set checks.
func winGame(state *MatchState, team Team) {
	mine, theirs := state.score(team)
	mine.Games++
	mine.Points = PointLove
	theirs.Points = PointLove
	syncSetStatus(state)

	switch {
	case mine.Games == tieBreakTrigger && theirs.Games == tieBreakTrigger:
		state.TieBreak = &TieBreakStatus{}
	case IsSetWon(mine.Games, theirs.Games):
		completeSet(state, team)
	}
}

// completeSet records the finished set, resets for the next one, and marks
// the match finished once the winner has enough sets.
func completeSet(state *MatchState, team Team) {
	state.SetHistory = append(state.SetHistory, SetRecord{
		SetNumber:  state.CurrentSet,
		TeamAGames: state.TeamA.Games,
		TeamBGames: state.TeamB.Games,
	})
	if team == TeamB {
		state.SetsWon.TeamB++
	} else {
		state.SetsWon.TeamA++
	}

	state.TeamA = TeamScore{Points: PointLove}
	state.TeamB = TeamScore{Points: PointLove}
	state.CurrentSet++
	state.CurrentSetStatus = SetStatus{Number: state.CurrentSet}

	if IsMatchFinished(*state) {
		state.Status = StatusFinished
	}
}

// syncSetStatus mirrors the per-team game counters into CurrentSetStatus.
func syncSetStatus(state *MatchState) {
	state.CurrentSetStatus.Number = state.CurrentSet
	state.CurrentSetStatus.TeamAGames = state.TeamA.Games
	state.CurrentSetStatus.TeamBGames = state.TeamB.Games
}
