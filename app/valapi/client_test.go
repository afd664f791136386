package valapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient()
	client.BaseURL = server.URL
	return client
}

func TestAgents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/agents", r.URL.Path)
		fmt.Fprint(w, `{"status": 200, "data": [
			{"uuid": "a1", "displayName": "Jett", "isPlayableCharacter": true,
			 "abilities": [{"slot": "Ability1", "displayName": "Updraft"}]},
			{"uuid": "a2", "displayName": "Jett NPC", "isPlayableCharacter": false}
		]}`)
	})

	agents, err := client.Agents(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, agents, 2) {
		assert.Equal(t, "Jett", agents[0].DisplayName)
		assert.True(t, agents[0].IsPlayableCharacter)
		assert.Equal(t, "Updraft", agents[0].Abilities[0].DisplayName)
	}
}

func TestGetDataErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Weapons(context.Background())
	assert.ErrorContains(t, err, "status 502")
}

func TestGetDataMalformed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": 200, "data": {"not": "a list"}}`)
	})

	_, err := client.Weapons(context.Background())
	assert.ErrorContains(t, err, "decode")
}

func TestReward(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sprays/s1":
			fmt.Fprint(w, `{"status": 200, "data": {"displayName": "Nice to Zap You", "fullTransparentIcon": "https://img/spray.png"}}`)
		case "/playercards/p1":
			fmt.Fprint(w, `{"status": 200, "data": {"displayName": "Ion Card", "largeArt": "https://img/large.png", "displayIcon": "https://img/icon.png"}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"status": 404, "error": "not found"}`)
		}
	})

	type Test struct {
		kind      string
		uuid      string
		expReward Reward
	}
	tests := []Test{
		{kind: "Spray", uuid: "s1", expReward: Reward{Name: "Nice to Zap You", Image: "https://img/spray.png"}},
		{kind: "PlayerCard", uuid: "p1", expReward: Reward{Name: "Ion Card", Image: "https://img/large.png"}},
		{kind: "Totem", uuid: "t1", expReward: Reward{Name: "Totem"}},
		{kind: "Mystery", uuid: "m1", expReward: Reward{Name: "Unknown"}},
		{kind: "Spray", uuid: "missing", expReward: Reward{Name: "Unknown"}},
		{kind: "", uuid: "", expReward: Reward{Name: "Unknown"}},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			reward, err := client.Reward(context.Background(), test.kind, test.uuid)
			assert.NoError(t, err)
			assert.Equal(t, test.expReward, reward)
		})
	}
}
