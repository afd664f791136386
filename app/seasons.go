package app

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
)

const displayTimeLayout = "02/01/2006 15:04"

func HandleCurrentSeason(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	seasons, err := state.Val.Seasons(ctx)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching the current season data. Please try again later.")
		return
	}

	now := time.Now()
	for _, season := range seasons {
		if !season.IsActive(now) {
			continue
		}
		embed := &discordgo.MessageEmbed{
			Title: season.DisplayName,
			Color: ValorantRed,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Start Time", Value: season.StartTime.Format(displayTimeLayout), Inline: true},
				{Name: "End Time", Value: season.EndTime.Format(displayTimeLayout), Inline: true},
			},
		}
		if season.DisplayIcon != "" {
			embed.Image = &discordgo.MessageEmbedImage{URL: season.DisplayIcon}
		}
		editEmbeds(state, ic, []*discordgo.MessageEmbed{embed}, nil)
		return
	}
	editText(state, ic, "There is currently no active season in Valorant.")
}

func HandleCurrentEvent(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	events, err := state.Val.Events(ctx)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching the current event data. Please try again later.")
		return
	}

	now := time.Now()
	for _, event := range events {
		if !event.IsActive(now) {
			continue
		}
		description := event.ShortDisplayName
		if description == "" {
			description = "No description available."
		}
		embed := &discordgo.MessageEmbed{
			Title:       event.DisplayName,
			Description: description,
			Color:       ValorantRed,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Start Time", Value: event.StartTime.Format(displayTimeLayout), Inline: true},
				{Name: "End Time", Value: event.EndTime.Format(displayTimeLayout), Inline: true},
			},
		}
		editEmbeds(state, ic, []*discordgo.MessageEmbed{embed}, nil)
		return
	}
	editText(state, ic, "There is currently no active event in Valorant.")
}
