package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/RasmusDWN/valorant-bot/app/liquipedia"
	"github.com/bwmarrin/discordgo"
)

func HandlePlayer(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	ign, err := getStringOpt(ic.ApplicationCommandData().Options, "ign")
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "")
		return
	}

	player, err := state.Liqui.PlayerByName(ctx, ign)
	if errors.Is(err, liquipedia.ErrNotFound) {
		editText(state, ic, fmt.Sprintf("Player %q not found. Please check the name and try again.", ign))
		return
	}
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching the player data. Please try again later.")
		return
	}

	// best effort; a player page without an infobox image still renders
	imageURL, err := state.Liqui.PageImageURL(ctx, player.PageName)
	if err != nil {
		slog.Warn("failed to fetch player image", "player", player.PageName, "err", err)
	}

	team, status, nationality := player.TeamPage, player.Status, player.Nationality
	if team == "" {
		team = "None"
	}
	if status == "" {
		status = "Unknown"
	}
	if nationality == "" {
		nationality = "Unknown"
	}

	embed := &discordgo.MessageEmbed{
		Title:  player.PageName,
		URL:    liquipediaPageURL(player.PageName),
		Color:  ValorantRed,
		Footer: liquipediaFooter(),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Team", Value: team, Inline: true},
			{Name: "Status", Value: status, Inline: true},
			{Name: "Nationality", Value: nationality, Inline: true},
			{Name: "Est. Earnings", Value: fmt.Sprintf("$%d", int(player.Earnings)), Inline: true},
		},
	}
	if imageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: imageURL}
	}
	editEmbeds(state, ic, []*discordgo.MessageEmbed{embed}, nil)
}
