package liquipedia

import (
	"sort"
	"strings"
	"time"
)

// Alias groups for the major Valorant circuits. A query containing any
// alias of a group expands to every alias in that group, so "na" also
// matches records written as "vct americas".
var aliasGroups = [][]string{
	{"vct"},
	{"vct americas", "vct am", "na", "vct na"},
	{"vct cn", "china", "vct china"},
	{"vct pacific", "vct apac", "apac", "australia", "aussie", "vct australia"},
	{"vct emea", "emea", "europe", "vct europe"},
	{"valorant challengers leagues", "challengers leagues", "challengers"},
	{"valorant masters", "masters"},
	{"valorant champions", "champions", "worlds"},
}

// BuildSearchTokens expands user input into the token set used for
// scoring. The raw query always comes first; matched alias groups are
// appended in table order so results are deterministic.
func BuildSearchTokens(input string) []string {
	query := strings.ToLower(strings.TrimSpace(input))
	if query == "" {
		return nil
	}

	tokens := []string{query}
	seen := map[string]bool{query: true}

	for _, group := range aliasGroups {
		matched := false
		for _, alias := range group {
			if strings.Contains(query, alias) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, alias := range group {
			if !seen[alias] {
				seen[alias] = true
				tokens = append(tokens, alias)
			}
		}
	}
	return tokens
}

// ScoreFields counts the tokens contained as a substring in at least one
// of the case-folded fields. Each token is worth one flat point.
func ScoreFields(fields []string, tokens []string) int {
	folded := make([]string, 0, len(fields))
	for _, field := range fields {
		if field != "" {
			folded = append(folded, strings.ToLower(field))
		}
	}

	score := 0
	for _, token := range tokens {
		for _, field := range folded {
			if strings.Contains(field, token) {
				score++
				break
			}
		}
	}
	return score
}

func (m Match) searchFields() []string {
	return []string{m.TickerName, m.ShortName, m.Tournament, m.Series, m.Parent}
}

func (t Tournament) searchFields() []string {
	return []string{t.Name, t.ShortName, t.TickerName, t.Series, t.Parent}
}

func rankMatches(matches []Match, tokens []string) []Match {
	type scored struct {
		match Match
		score int
	}

	var results []scored
	for _, match := range matches {
		if score := ScoreFields(match.searchFields(), tokens); score > 0 {
			results = append(results, scored{match: match, score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	ranked := make([]Match, 0, len(results))
	for _, result := range results {
		ranked = append(ranked, result.match)
	}
	return ranked
}

// FilterUpcomingMatches ranks matches dated after now against a tournament
// query. Zero-score matches are excluded.
func FilterUpcomingMatches(matches []Match, query string, now time.Time) []Match {
	tokens := BuildSearchTokens(query)

	var upcoming []Match
	for _, match := range matches {
		if match.Date.After(now) {
			upcoming = append(upcoming, match)
		}
	}
	return rankMatches(upcoming, tokens)
}

// FilterPastMatches ranks matches dated at or before now against a
// tournament query.
func FilterPastMatches(matches []Match, query string, now time.Time) []Match {
	tokens := BuildSearchTokens(query)

	var past []Match
	for _, match := range matches {
		if !match.Date.After(now) {
			past = append(past, match)
		}
	}
	return rankMatches(past, tokens)
}

// BestTournament picks the highest-scoring tournament for the query, or
// reports that nothing matched.
func BestTournament(tournaments []Tournament, query string) (Tournament, bool) {
	tokens := BuildSearchTokens(query)

	best := Tournament{}
	bestScore := 0
	for _, tournament := range tournaments {
		if score := ScoreFields(tournament.searchFields(), tokens); score > bestScore {
			best = tournament
			bestScore = score
		}
	}
	return best, bestScore > 0
}
