package liquipedia

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// OngoingWindow is the recency heuristic for calling a tournament
// "ongoing": the API has no ground-truth status field, so a tournament
// whose latest match is within this window counts as in progress.
const OngoingWindow = 14 * 24 * time.Hour

const MaxRecentResults = 5

type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomeDraw
)

// Standings summarizes one team's run in a single tournament.
type Standings struct {
	Tournament string
	Matches    []Match
	LatestDate time.Time
	Wins       int
	Losses     int
	Ongoing    bool
}

func (s Standings) Played() int {
	return s.Wins + s.Losses
}

func (s Standings) WinRate() string {
	if s.Played() == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(s.Wins)/float64(s.Played())*100)
}

// opponentSlot finds which side the team occupies, requiring a
// case-insensitive exact name match. Returns -1 when the team is on
// neither side or the match does not have exactly two opponents.
func opponentSlot(m Match, team string) int {
	if len(m.Opponents) != 2 {
		return -1
	}
	for i, opponent := range m.Opponents {
		if strings.EqualFold(opponent.Name, team) {
			return i
		}
	}
	return -1
}

// MatchOutcome resolves a finished match from the team's point of view.
// The explicit winner slot takes precedence; score comparison is only the
// fallback when no winner was recorded. Equal fallback scores resolve to
// OutcomeDraw, which tallies as neither a win nor a loss.
func MatchOutcome(m Match, team string) Outcome {
	slot := opponentSlot(m, team)
	if slot < 0 || !bool(m.Finished) {
		return OutcomeUnknown
	}

	if m.Winner != 0 {
		if int(m.Winner) == slot+1 {
			return OutcomeWin
		}
		return OutcomeLoss
	}

	us, them := m.Opponents[slot], m.Opponents[1-slot]
	if !us.HasScore() || !them.HasScore() {
		return OutcomeUnknown
	}
	switch {
	case us.ScoreValue() > them.ScoreValue():
		return OutcomeWin
	case us.ScoreValue() < them.ScoreValue():
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// GroupByTournament buckets a team's matches by tournament, selects the
// tournament with the most recent match, and tallies the team's record in
// it. The boolean result is false when no match involves the team.
func GroupByTournament(matches []Match, team string, now time.Time) (Standings, bool) {
	type group struct {
		name    string
		matches []Match
		latest  time.Time
	}

	var groups []*group
	byName := make(map[string]*group)

	for _, match := range matches {
		if opponentSlot(match, team) < 0 {
			continue
		}

		name := match.Tournament
		if name == "" {
			name = match.PageName
		}

		g, ok := byName[name]
		if !ok {
			g = &group{name: name}
			byName[name] = g
			groups = append(groups, g)
		}
		g.matches = append(g.matches, match)
		if match.Date.After(g.latest) {
			g.latest = match.Date.Time
		}
	}

	if len(groups) == 0 {
		return Standings{}, false
	}

	// latest group wins; on equal dates the first-seen group is kept
	selected := groups[0]
	for _, g := range groups[1:] {
		if g.latest.After(selected.latest) {
			selected = g
		}
	}

	standings := Standings{
		Tournament: selected.name,
		Matches:    selected.matches,
		LatestDate: selected.latest,
		Ongoing:    now.Sub(selected.latest) <= OngoingWindow,
	}
	for _, match := range selected.matches {
		switch MatchOutcome(match, team) {
		case OutcomeWin:
			standings.Wins++
		case OutcomeLoss:
			standings.Losses++
		}
	}
	return standings, true
}

// RecentResults renders the lines for the team's most recent finished
// matches, newest first, capped at MaxRecentResults.
func RecentResults(matches []Match, team string) []string {
	var finished []Match
	for _, match := range matches {
		if bool(match.Finished) && opponentSlot(match, team) >= 0 {
			finished = append(finished, match)
		}
	}
	sort.SliceStable(finished, func(i, j int) bool {
		return finished[i].Date.After(finished[j].Date.Time)
	})
	if len(finished) > MaxRecentResults {
		finished = finished[:MaxRecentResults]
	}

	var lines []string
	for _, match := range finished {
		slot := opponentSlot(match, team)
		us, them := match.Opponents[slot], match.Opponents[1-slot]

		indicator := "➖"
		switch MatchOutcome(match, team) {
		case OutcomeWin:
			indicator = "✅"
		case OutcomeLoss:
			indicator = "❌"
		}
		lines = append(lines, fmt.Sprintf("%s vs **%s** (%d - %d)", indicator, them.Name, us.ScoreValue(), them.ScoreValue()))
	}
	return lines
}
