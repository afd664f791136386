package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const TransferLimit = 5

func HandleTransfers(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	cacheKey := "latest-transfers"
	if embeds, ok := state.Replies.Get(cacheKey); ok {
		editEmbeds(state, ic, embeds, nil)
		return
	}

	transfers, err := state.Liqui.LatestTransfers(ctx, TransferLimit)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching transfer data. Please try again later.")
		return
	}
	if len(transfers) == 0 {
		editText(state, ic, "No recent transfers found.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:  "Latest Valorant Transfers",
		Color:  ValorantRed,
		Footer: liquipediaFooter(),
	}
	for _, transfer := range transfers {
		player := transfer.Player
		if player == "" {
			player = "Unknown"
		}

		var direction string
		switch {
		case transfer.FromTeam == "":
			direction = fmt.Sprintf("➡️ Joined **%s**", transfer.ToTeam)
		case transfer.ToTeam == "":
			direction = fmt.Sprintf("⬅️ Left **%s**", transfer.FromTeam)
		default:
			direction = fmt.Sprintf("**%s** ➡️ **%s**", transfer.FromTeam, transfer.ToTeam)
		}

		lines := []string{direction}
		if transfer.Role != "" {
			lines = append(lines, fmt.Sprintf("**Role:** %s", transfer.Role))
		}
		date := "Unknown"
		if !transfer.Date.IsZero() {
			date = transfer.Date.Format("02/01/2006")
		}
		lines = append(lines, fmt.Sprintf("**Date:** %s", date))

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  player,
			Value: strings.Join(lines, "\n"),
		})
	}

	embeds := []*discordgo.MessageEmbed{embed}
	state.Replies.SetTTL(cacheKey, embeds, TransfersCacheTTL)
	editEmbeds(state, ic, embeds, nil)
}
