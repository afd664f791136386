package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestPagerSession_Turn(t *testing.T) {
	type Test struct {
		totalPages int
		startPage  int
		delta      int
		expPage    int
	}

	tests := []Test{
		{totalPages: 3, startPage: 0, delta: 1, expPage: 1},
		{totalPages: 3, startPage: 2, delta: 1, expPage: 2},
		{totalPages: 3, startPage: 0, delta: -1, expPage: 0},
		{totalPages: 3, startPage: 2, delta: -1, expPage: 1},
		{totalPages: 1, startPage: 0, delta: 1, expPage: 0},
		{totalPages: 5, startPage: 2, delta: 10, expPage: 4},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			session := &PagerSession{TotalPages: test.totalPages}
			session.SetPage(test.startPage)

			page := session.Turn(test.delta)

			assert.Equal(t, test.expPage, page)
			assert.Equal(t, test.expPage, session.Page())
		})
	}
}

func TestParseCustomID(t *testing.T) {
	type Test struct {
		customID  string
		expCond   string
		expKey    string
		expChoice string
	}

	tests := []Test{
		{customID: "pager-next+abc", expCond: "pager-next", expKey: "abc"},
		{customID: "pager-pick+abc+3", expCond: "pager-pick", expKey: "abc", expChoice: "3"},
		{customID: "pager-pick+abc+ability:2:1", expCond: "pager-pick", expKey: "abc", expChoice: "ability:2:1"},
		{customID: "pager-prev", expCond: "pager-prev"},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			cond, key, choice := parseCustomID(test.customID)
			assert.Equal(t, test.expCond, cond)
			assert.Equal(t, test.expKey, key)
			assert.Equal(t, test.expChoice, choice)
		})
	}
}

func TestPagerNavRow(t *testing.T) {
	row := pagerNavRow("key", 0, 3).(discordgo.ActionsRow)

	prev := row.Components[0].(discordgo.Button)
	next := row.Components[1].(discordgo.Button)

	assert.True(t, prev.Disabled)
	assert.False(t, next.Disabled)
	assert.Equal(t, "pager-prev+key", prev.CustomID)
	assert.Equal(t, "pager-next+key", next.CustomID)
}

func TestResolvePagerClick_RejectsNonOwner(t *testing.T) {
	session := &PagerSession{Owner: "owner", TotalPages: 3}
	session.Render = func(page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
		return &discordgo.MessageEmbed{}, nil
	}

	for i, user := range []*discordgo.User{{ID: "intruder"}, nil} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			resp := resolvePagerClick(session, user, PagerNextKey)

			assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
			assert.Equal(t, NotYourButtonsMsg, resp.Data.Content)
			assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
		})
	}
	assert.Equal(t, 0, session.Page())
}

func TestResolvePagerClick_TurnsPage(t *testing.T) {
	session := &PagerSession{Owner: "owner", TotalPages: 3}
	session.Render = func(page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
		return &discordgo.MessageEmbed{Title: fmt.Sprintf("page %d", page)}, nil
	}

	resp := resolvePagerClick(session, &discordgo.User{ID: "owner"}, PagerNextKey)

	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
	assert.Equal(t, "page 1", resp.Data.Embeds[0].Title)
	assert.Equal(t, 1, session.Page())
}

func TestResolvePagerClick_ClosedSession(t *testing.T) {
	session := &PagerSession{Owner: "owner", TotalPages: 3}
	session.Render = func(page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
		return &discordgo.MessageEmbed{}, nil
	}
	session.Closed.Store(true)

	resp := resolvePagerClick(session, &discordgo.User{ID: "owner"}, PagerNextKey)

	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
	assert.Nil(t, resp.Data)
	assert.Equal(t, 0, session.Page())
}

func TestResolvePagerClick_RoutesPick(t *testing.T) {
	session := &PagerSession{Owner: "owner"}
	session.Pick = func(_ context.Context, _ *State, _ *discordgo.InteractionCreate, _ *PagerSession, _ string) {}

	assert.Nil(t, resolvePagerClick(session, &discordgo.User{ID: "owner"}, PagerPickKey))

	session.Pick = nil
	resp := resolvePagerClick(session, &discordgo.User{ID: "owner"}, PagerPickKey)
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
	assert.Nil(t, resp.Data)
}

func TestPickButton_TruncatesLabel(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "abcd"
	}

	button := pickButton("key", "7", long)

	assert.Len(t, button.Label, 80)
	assert.Equal(t, "pager-pick+key+7", button.CustomID)
}
