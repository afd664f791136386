package app

import (
	"context"
	"fmt"
	"time"

	"github.com/RasmusDWN/valorant-bot/app/liquipedia"
	"github.com/bwmarrin/discordgo"
)

const UpcomingTournamentCount = 5

func HandleUpcomingTournaments(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	cacheKey := "upcoming-tournaments"
	if embeds, ok := state.Replies.Get(cacheKey); ok {
		editEmbeds(state, ic, embeds, nil)
		return
	}

	tournaments, err := state.Liqui.Tournaments(ctx)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "An error occurred while fetching upcoming tournaments. Please try again later.")
		return
	}

	now := time.Now()
	var upcoming []liquipedia.Tournament
	for _, tournament := range tournaments {
		if !tournament.EndDate.IsZero() && !tournament.EndDate.Before(now) {
			upcoming = append(upcoming, tournament)
		}
	}
	if len(upcoming) == 0 {
		editText(state, ic, "No upcoming tournaments found.")
		return
	}
	if len(upcoming) > UpcomingTournamentCount {
		upcoming = upcoming[:UpcomingTournamentCount]
	}

	embed := &discordgo.MessageEmbed{
		Title:  "Upcoming Valorant Tournaments",
		Color:  ValorantRed,
		Footer: liquipediaFooter(),
	}
	for _, tournament := range upcoming {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: tournament.Name,
			Value: fmt.Sprintf("Start: %s\n[View on Liquipedia](%s)",
				tournament.StartDate.Format("02/01/2006"), liquipediaPageURL(tournament.PageName)),
		})
	}

	embeds := []*discordgo.MessageEmbed{embed}
	state.Replies.SetTTL(cacheKey, embeds, TournamentsCacheTTL)
	editEmbeds(state, ic, embeds, nil)
}
