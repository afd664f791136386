package liquipedia

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConditions(t *testing.T) {
	type Test struct {
		conds  []Condition
		expStr string
	}
	tests := []Test{
		{
			conds:  []Condition{{Field: "name", Value: "Sentinels"}},
			expStr: "[[name::Sentinels]]",
		},
		{
			conds: []Condition{
				{Field: "date", Op: "::>", Value: "2025-03-01"},
				{Field: "finished", Value: "1"},
			},
			expStr: "[[date::>2025-03-01]] AND [[finished::1]]",
		},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assert.Equal(t, test.expStr, Conditions(test.conds...))
		})
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-key")
	client.BaseURL = server.URL
	client.WikiURL = server.URL
	return client
}

func TestTeamByName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Apikey test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "valorant", r.URL.Query().Get("wiki"))
		assert.Equal(t, "[[name::Sentinels]]", r.URL.Query().Get("conditions"))

		fmt.Fprint(w, `{"result": [{"name": "Sentinels", "pagename": "Sentinels", "region": "North America", "status": "active"}]}`)
	})

	team, err := client.TeamByName(context.Background(), "Sentinels")
	assert.NoError(t, err)
	assert.Equal(t, "Sentinels", team.Name)
	assert.Equal(t, "North America", team.Region)
}

func TestTeamByNameNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result": []}`)
	})

	_, err := client.TeamByName(context.Background(), "Nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetResultUpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Matches(context.Background())
	assert.ErrorContains(t, err, "status 500")
}

func TestGetResultMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>not json</html>`)
	})

	_, err := client.Matches(context.Background())
	assert.ErrorContains(t, err, "decode")
}

func TestMatchDecoding(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result": [{
			"pagename": "VCT/2025/Americas",
			"tournament": "VCT 2025: Americas Stage 2",
			"date": "2025-06-01 18:00:00",
			"finished": 1,
			"winner": "2",
			"match2opponents": [
				{"name": "Sentinels", "score": 1},
				{"name": "G2 Esports", "score": "2"}
			]
		}]}`)
	})

	matches, err := client.Matches(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, matches, 1) {
		match := matches[0]
		assert.Equal(t, time.Date(2025, time.June, 1, 18, 0, 0, 0, time.UTC), match.Date.Time)
		assert.True(t, bool(match.Finished))
		assert.Equal(t, Slot(2), match.Winner)
		if assert.Len(t, match.Opponents, 2) {
			assert.Equal(t, 1, match.Opponents[0].ScoreValue())
			assert.Equal(t, 2, match.Opponents[1].ScoreValue())
		}
	}
}

func TestFinishedMatchesSinceQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "[[date::>2025-03-01]] AND [[finished::1]]", r.URL.Query().Get("conditions"))
		assert.Equal(t, "200", r.URL.Query().Get("limit"))
		assert.Equal(t, "date DESC", r.URL.Query().Get("order"))
		fmt.Fprint(w, `{"result": []}`)
	})

	since := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	matches, err := client.FinishedMatchesSince(context.Background(), since, 200)
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestPageImageURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "parse", r.URL.Query().Get("action"))
		fmt.Fprint(w, `{"parse": {"wikitext": {"*": "{{Infobox player\n|id = TenZ\n|image = TenZ at Masters.jpg\n}}"}}}`)
	})

	imageURL, err := client.PageImageURL(context.Background(), "TenZ")
	assert.NoError(t, err)
	assert.Contains(t, imageURL, "Special:FilePath/")
	assert.Contains(t, imageURL, "TenZ%20at%20Masters.jpg")
}

func TestPageImageURLNoImage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"parse": {"wikitext": {"*": "{{Infobox player\n|id = TenZ\n}}"}}}`)
	})

	imageURL, err := client.PageImageURL(context.Background(), "TenZ")
	assert.NoError(t, err)
	assert.Empty(t, imageURL)
}
