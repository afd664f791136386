package app

import (
	"fmt"
	"strings"

	"github.com/RasmusDWN/valorant-bot/app/liquipedia"
	"github.com/RasmusDWN/valorant-bot/app/valapi"
	"github.com/bwmarrin/discordgo"
)

const ValorantRed = 0xff4655

const (
	LiquipediaFooterText = "Data source: Liquipedia"
	LiquipediaFooterIcon = "https://liquipedia.net/commons/images/2/2c/Liquipedia_logo.png"
)

func createStringEdit(msg string) *discordgo.WebhookEdit {
	return &discordgo.WebhookEdit{Content: &msg}
}

var empty = ""

func createEmbedsEdit(embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) *discordgo.WebhookEdit {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	return &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
		Content:    &empty,
	}
}

func createUpdateResponse(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) *discordgo.InteractionResponse {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	}
}

func createEphemeralResponse(msg string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}

func createEphemeralEmbedResponse(embed *discordgo.MessageEmbed) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	}
}

func liquipediaFooter() *discordgo.MessageEmbedFooter {
	return &discordgo.MessageEmbedFooter{Text: LiquipediaFooterText, IconURL: LiquipediaFooterIcon}
}

func liquipediaPageURL(pageName string) string {
	return fmt.Sprintf("%s/%s", liquipedia.WikiURL, strings.ReplaceAll(pageName, " ", "_"))
}

func createAgentEmbed(agent valapi.Agent) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       agent.DisplayName,
		Description: agent.Description,
		Color:       ValorantRed,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Released on: %s", agent.ReleaseDate.Format("02/01/2006"))},
	}
	if portrait := firstNonEmpty(agent.FullPortrait, agent.DisplayIcon); portrait != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: portrait}
	}
	return embed
}

func createAgentDetailEmbed(agent valapi.Agent) *discordgo.MessageEmbed {
	embed := createAgentEmbed(agent)
	for _, ability := range agent.Abilities {
		if ability.DisplayName == "" {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   ability.DisplayName,
			Value:  ability.Description,
			Inline: true,
		})
	}
	return embed
}

func createAbilityEmbed(ability valapi.Ability, agentName string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s - %s", ability.DisplayName, agentName),
		Description: ability.Description,
		Color:       ValorantRed,
	}
	if ability.DisplayIcon != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: ability.DisplayIcon}
	}
	return embed
}

func createSkinEmbed(skin valapi.Skin, weapon *valapi.Weapon, tiers valapi.TierBook) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: skin.DisplayName,
		Color: ValorantRed,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Price", Value: tiers.Price(skin.ContentTierUUID), Inline: true},
			{Name: "Tier", Value: tiers.Name(skin.ContentTierUUID), Inline: true},
			{Name: "Chromas", Value: fmt.Sprintf("%d", len(skin.Chromas)), Inline: true},
		},
	}
	if weapon != nil && weapon.DisplayIcon != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: weapon.DisplayIcon}
	}
	if render := firstNonEmpty(skin.FullRender, skin.DisplayIcon); render != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: render}
	}
	return embed
}

func createBundleEmbed(bundle valapi.Bundle, skins []valapi.Skin) *discordgo.MessageEmbed {
	desc := "No skins found for this bundle."
	if len(skins) > 0 {
		var sb strings.Builder
		sb.WriteString("Skins in this bundle:\n")
		for _, skin := range skins {
			fmt.Fprintf(&sb, "- %s\n", skin.DisplayName)
		}
		desc = strings.TrimRight(sb.String(), "\n")
	}

	embed := &discordgo.MessageEmbed{
		Title:       bundle.DisplayName,
		Description: desc,
		Color:       ValorantRed,
	}
	if bundle.DisplayIcon != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: bundle.DisplayIcon}
	}
	return embed
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
