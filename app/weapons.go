package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

func HandleWeapon(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	name, err := getStringOpt(ic.ApplicationCommandData().Options, "name")
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "")
		return
	}

	weapons, err := state.FetchWeapons(ctx)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching the weapon data. Please try again later.")
		return
	}

	for _, weapon := range weapons {
		if !strings.EqualFold(weapon.DisplayName, name) {
			continue
		}

		category, cost := "Unknown", "Unknown"
		if weapon.ShopData != nil {
			if weapon.ShopData.CategoryText != "" {
				category = weapon.ShopData.CategoryText
			}
			cost = fmt.Sprintf("%d Credits", weapon.ShopData.Cost)
		}
		fireRate, magazine, reload, wallPen := "Unknown", "Unknown", "Unknown", "Unknown"
		if stats := weapon.WeaponStats; stats != nil {
			fireRate = fmt.Sprintf("%g", stats.FireRate)
			magazine = fmt.Sprintf("%d", stats.MagazineSize)
			reload = fmt.Sprintf("%g seconds", stats.ReloadTimeSeconds)
			if stats.WallPenetration != "" {
				wallPen = strings.TrimPrefix(stats.WallPenetration, "EWallPenetrationDisplayType::")
			}
		}

		embed := &discordgo.MessageEmbed{
			Title: weapon.DisplayName,
			Color: ValorantRed,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Category", Value: category, Inline: true},
				{Name: "Cost", Value: cost, Inline: true},
				{Name: "Fire Rate", Value: fireRate, Inline: true},
				{Name: "Magazine Size", Value: magazine, Inline: true},
				{Name: "Reload Time", Value: reload, Inline: true},
				{Name: "Wall Penetration", Value: wallPen, Inline: true},
			},
		}
		if weapon.DisplayIcon != "" {
			embed.Image = &discordgo.MessageEmbedImage{URL: weapon.DisplayIcon}
		}
		editEmbeds(state, ic, []*discordgo.MessageEmbed{embed}, nil)
		return
	}
	editText(state, ic, fmt.Sprintf("Weapon %q not found. Please check the name and try again.", name))
}
