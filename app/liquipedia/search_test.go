package liquipedia

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchTokens(t *testing.T) {
	type Test struct {
		input       string
		expContains []string
	}
	tests := []Test{
		{
			input:       "na",
			expContains: []string{"na", "vct americas", "vct am", "vct na"},
		},
		{
			input:       "masters",
			expContains: []string{"masters", "valorant masters"},
		},
		{
			input:       "worlds",
			expContains: []string{"worlds", "valorant champions", "champions"},
		},
		{
			input:       "  EMEA ",
			expContains: []string{"emea", "vct emea", "europe", "vct europe"},
		},
		{
			input:       "game changers",
			expContains: []string{"game changers"},
		},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			tokens := BuildSearchTokens(test.input)
			for _, token := range test.expContains {
				assert.Contains(t, tokens, token)
			}
		})
	}
}

func TestBuildSearchTokensEmpty(t *testing.T) {
	assert.Empty(t, BuildSearchTokens(""))
	assert.Empty(t, BuildSearchTokens("   "))
}

func TestScoreFields(t *testing.T) {
	type Test struct {
		fields   []string
		tokens   []string
		expScore int
	}
	tests := []Test{
		{
			fields:   []string{"", "", "VCT 2025: Americas Stage 2", "", ""},
			tokens:   []string{"vct americas"},
			expScore: 0,
		},
		{
			fields:   []string{"VCT AM S2", "", "VCT 2025: Americas Stage 2", "Valorant Champions Tour", ""},
			tokens:   []string{"na", "vct americas", "vct am", "vct na"},
			expScore: 1, // only "vct am" appears in a field
		},
		{
			fields:   []string{"Valorant Masters Toronto"},
			tokens:   []string{"masters"},
			expScore: 1,
		},
		{
			fields:   []string{"Champions Tour EMEA"},
			tokens:   []string{"na"},
			expScore: 0,
		},
		{
			fields:   nil,
			tokens:   []string{"masters"},
			expScore: 0,
		},
		{
			fields:   []string{"Valorant Masters"},
			tokens:   nil,
			expScore: 0,
		},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assert.Equal(t, test.expScore, ScoreFields(test.fields, test.tokens))
		})
	}
}

func TestBestTournament(t *testing.T) {
	candidates := []Tournament{
		{Name: "Champions Tour 2025: EMEA Stage 1"},
		{Name: "Valorant Masters Toronto 2025", ShortName: "Masters Toronto"},
		{Name: "Challengers League 2025 North Europe"},
	}

	best, ok := BestTournament(candidates, "masters")
	assert.True(t, ok)
	assert.Equal(t, "Valorant Masters Toronto 2025", best.Name)
}

func TestBestTournamentParentField(t *testing.T) {
	candidates := []Tournament{
		{Name: "Champions Tour 2025: EMEA Stage 1"},
		{Name: "Stage 2: Playoffs", Parent: "Valorant Masters/Toronto"},
	}

	best, ok := BestTournament(candidates, "masters")
	assert.True(t, ok)
	assert.Equal(t, "Stage 2: Playoffs", best.Name)
}

func TestBestTournamentNoMatch(t *testing.T) {
	candidates := []Tournament{
		{Name: "Champions Tour 2025: EMEA Stage 1"},
		{Name: "Challengers League 2025 North Europe"},
	}

	_, ok := BestTournament(candidates, "gamers8")
	assert.False(t, ok)

	_, ok = BestTournament(nil, "masters")
	assert.False(t, ok)
}

func TestFilterMatchesSplitsByTime(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	past := Match{Tournament: "Valorant Masters Toronto", Date: Timestamp{now.Add(-time.Hour * 48)}}
	future := Match{Tournament: "Valorant Masters Toronto", Date: Timestamp{now.Add(time.Hour * 48)}}
	matches := []Match{past, future}

	upcoming := FilterUpcomingMatches(matches, "masters", now)
	if assert.Len(t, upcoming, 1) {
		assert.Equal(t, future.Date, upcoming[0].Date)
	}

	finished := FilterPastMatches(matches, "masters", now)
	if assert.Len(t, finished, 1) {
		assert.Equal(t, past.Date, finished[0].Date)
	}
}

func TestFilterMatchesRanksByScore(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	date := Timestamp{now.Add(-time.Hour)}

	matches := []Match{
		{Tournament: "Challengers League France", Date: date},
		{Tournament: "Valorant Masters Toronto", TickerName: "Masters Toronto", Series: "Valorant Masters", Date: date},
		{Tournament: "VCT 2025: Pacific Stage 2", Date: date},
	}

	ranked := FilterPastMatches(matches, "valorant masters", now)
	if assert.Len(t, ranked, 1) {
		assert.Equal(t, "Valorant Masters Toronto", ranked[0].Tournament)
	}

	assert.Empty(t, FilterPastMatches(matches, "", now))
}
