package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

func HandleMap(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	name, err := getStringOpt(ic.ApplicationCommandData().Options, "name")
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "")
		return
	}

	maps, err := state.Val.Maps(ctx)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching the map data. Please try again later.")
		return
	}

	for _, gameMap := range maps {
		if !strings.EqualFold(gameMap.DisplayName, name) {
			continue
		}

		coordinates := gameMap.Coordinates
		if coordinates == "" {
			coordinates = "Unknown"
		}
		embed := &discordgo.MessageEmbed{
			Title: gameMap.DisplayName,
			Color: ValorantRed,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Coordinates", Value: coordinates, Inline: true},
			},
		}
		if gameMap.TacticalDescription != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Sites", Value: gameMap.TacticalDescription})
		}
		if thumb := firstNonEmpty(gameMap.Splash, gameMap.ListViewIconTall); thumb != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: thumb}
		}
		if gameMap.DisplayIcon != "" {
			embed.Image = &discordgo.MessageEmbedImage{URL: gameMap.DisplayIcon}
		}
		editEmbeds(state, ic, []*discordgo.MessageEmbed{embed}, nil)
		return
	}
	editText(state, ic, fmt.Sprintf("Map %q not found. Please check the name and try again.", name))
}
