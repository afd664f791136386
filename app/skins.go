package app

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/RasmusDWN/valorant-bot/app/valapi"
	"github.com/bwmarrin/discordgo"
)

const SkinsPerPage = 5

func HandleSkin(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	name, err := getStringOpt(ic.ApplicationCommandData().Options, "name")
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "")
		return
	}

	skin, ok, err := state.FetchSkinByName(ctx, name)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching the skin data. Please try again later.")
		return
	}
	if !ok {
		editText(state, ic, fmt.Sprintf("Skin %q not found. Please check the name and try again.", name))
		return
	}

	embed, err := state.buildSkinEmbed(ctx, skin)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching the skin data. Please try again later.")
		return
	}
	editEmbeds(state, ic, []*discordgo.MessageEmbed{embed}, nil)
}

func HandleRandomSkin(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	weapons, err := state.FetchWeapons(ctx)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching the random skin. Please try again later.")
		return
	}

	var withSkins []valapi.Weapon
	for _, weapon := range weapons {
		if len(weapon.Skins) > 0 {
			withSkins = append(withSkins, weapon)
		}
	}
	if len(withSkins) == 0 {
		editText(state, ic, "There was an error while fetching the random skin. Please try again later.")
		return
	}

	weapon := withSkins[rand.Intn(len(withSkins))]
	skin := weapon.Skins[rand.Intn(len(weapon.Skins))]

	book, err := state.FetchTierBook(ctx)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching the random skin. Please try again later.")
		return
	}
	editEmbeds(state, ic, []*discordgo.MessageEmbed{createSkinEmbed(skin, &weapon, book)}, nil)
}

// HandleSkins pages through a weapon's skins, five per page, with a pick
// button per skin that shows its tier, price and render ephemerally.
func HandleSkins(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	weaponName, err := getStringOpt(ic.ApplicationCommandData().Options, "weapon")
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "")
		return
	}

	weapons, err := state.FetchWeapons(ctx)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching the skins data. Please try again later.")
		return
	}

	var weapon *valapi.Weapon
	for i := range weapons {
		if strings.EqualFold(weapons[i].DisplayName, weaponName) {
			weapon = &weapons[i]
			break
		}
	}
	if weapon == nil || len(weapon.Skins) == 0 {
		editText(state, ic, fmt.Sprintf("No skins found for weapon %q. Please check the name and try again.", weaponName))
		return
	}

	book, err := state.FetchTierBook(ctx)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching the skins data. Please try again later.")
		return
	}

	skins := make([]valapi.Skin, len(weapon.Skins))
	copy(skins, weapon.Skins)
	sort.SliceStable(skins, func(i, j int) bool {
		return skins[i].DisplayName < skins[j].DisplayName
	})

	totalPages := (len(skins) + SkinsPerPage - 1) / SkinsPerPage

	key := newPagerKey()
	session := &PagerSession{
		Owner:      interactionUser(ic).ID,
		TotalPages: totalPages,
		Pick: func(ctx context.Context, state *State, ic *discordgo.InteractionCreate, session *PagerSession, choice string) {
			idx, err := strconv.Atoi(choice)
			if err != nil || idx < 0 || idx >= len(skins) {
				return
			}
			interactionRespond(state.Dg, ic.Interaction, createEphemeralEmbedResponse(createSkinEmbed(skins[idx], weapon, book)))
		},
	}
	session.Render = func(page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
		start := page * SkinsPerPage
		end := min(start+SkinsPerPage, len(skins))
		slice := skins[start:end]

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("%s Skins (Page %d/%d)", weapon.DisplayName, page+1, totalPages),
			Color: ValorantRed,
		}
		var picks []discordgo.MessageComponent
		for i, skin := range slice {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  skin.DisplayName,
				Value: fmt.Sprintf("Tier: %s", book.Name(skin.ContentTierUUID)),
			})
			picks = append(picks, pickButton(key, strconv.Itoa(start+i), skin.DisplayName))
		}

		components := []discordgo.MessageComponent{
			pagerNavRow(key, page, totalPages),
			discordgo.ActionsRow{Components: picks},
		}
		return embed, components
	}
	state.CreatePager(key, ic, session, DefaultPagerTTL)

	embed, components := session.Render(0)
	editEmbeds(state, ic, []*discordgo.MessageEmbed{embed}, components)
}

func (state *State) buildSkinEmbed(ctx context.Context, skin valapi.Skin) (*discordgo.MessageEmbed, error) {
	book, err := state.FetchTierBook(ctx)
	if err != nil {
		return nil, err
	}
	weapon, err := state.FetchWeaponOfSkin(ctx, skin)
	if err != nil {
		return nil, err
	}
	return createSkinEmbed(skin, weapon, book), nil
}
