package app

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/RasmusDWN/valorant-bot/app/valapi"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"
)

const BundlesPerPage = 5

func HandleBundle(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	name, err := getStringOpt(ic.ApplicationCommandData().Options, "name")
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "")
		return
	}

	bundles, err := state.Val.Bundles(ctx)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "An error occurred while fetching bundle data. Please try again later.")
		return
	}

	for _, bundle := range bundles {
		if strings.Contains(strings.ToLower(bundle.DisplayName), strings.ToLower(name)) {
			embed := &discordgo.MessageEmbed{
				Title: bundle.DisplayName,
				Color: ValorantRed,
			}
			if bundle.DisplayIcon != "" {
				embed.Image = &discordgo.MessageEmbedImage{URL: bundle.DisplayIcon}
			}
			editEmbeds(state, ic, []*discordgo.MessageEmbed{embed}, nil)
			return
		}
	}
	editText(state, ic, fmt.Sprintf("No bundle found with name containing %q. Please check the name and try again.", name))
}

func HandleBundles(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	bundles, err := state.Val.Bundles(ctx)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error fetching the bundles. Please try again later.")
		return
	}
	if len(bundles) == 0 {
		editText(state, ic, "No bundles were found. Please try again later.")
		return
	}

	totalPages := (len(bundles) + BundlesPerPage - 1) / BundlesPerPage

	key := newPagerKey()
	session := &PagerSession{
		Owner:      interactionUser(ic).ID,
		TotalPages: totalPages,
	}
	session.Render = func(page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
		start := page * BundlesPerPage
		end := min(start+BundlesPerPage, len(bundles))

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("Valorant Bundles (Page %d/%d)", page+1, totalPages),
			Color: ValorantRed,
		}
		for _, bundle := range bundles[start:end] {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  bundle.DisplayName,
				Value: fmt.Sprintf("[View Bundle](%s)", bundle.DisplayIcon),
			})
		}
		return embed, []discordgo.MessageComponent{pagerNavRow(key, page, totalPages)}
	}
	state.CreatePager(key, ic, session, DefaultPagerTTL)

	embed, components := session.Render(0)
	editEmbeds(state, ic, []*discordgo.MessageEmbed{embed}, components)
}

// HandleCurrentBundle discovers the rotating store bundle by scraping the
// store page for its name, then matches that name against the bundle and
// theme tables to list the bundle's skins with pick buttons.
func HandleCurrentBundle(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	failMsg := "An error occurred while fetching the current Valorant bundle. Please try again later."

	bundleName, err := state.Store.CurrentBundleName(ctx)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "Unable to fetch the current bundle information. Please try again later.")
		return
	}

	var (
		bundles []valapi.Bundle
		skins   []valapi.Skin
		themes  []valapi.Theme
		book    valapi.TierBook
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		bundles, err = state.Val.Bundles(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		skins, err = state.FetchSkins(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		themes, err = state.Val.Themes(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		book, err = state.FetchTierBook(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		handleInteractionError(ctx, state, ic, err, failMsg)
		return
	}

	bundle, ok := matchBundleName(bundles, bundleName)
	if !ok {
		editText(state, ic, "Unable to match the current bundle with our database. Please try again later.")
		return
	}

	theme, ok := matchThemeName(themes, bundle.DisplayName)
	if !ok {
		editText(state, ic, fmt.Sprintf("No skins were found for the current bundle %q", bundle.DisplayName))
		return
	}

	var inBundle []valapi.Skin
	for _, skin := range skins {
		if skin.ThemeUUID == theme.UUID {
			inBundle = append(inBundle, skin)
		}
	}
	if len(inBundle) == 0 {
		editText(state, ic, fmt.Sprintf("No skins were found for the current bundle %q", bundle.DisplayName))
		return
	}
	sort.SliceStable(inBundle, func(i, j int) bool {
		return inBundle[i].DisplayName < inBundle[j].DisplayName
	})

	key := newPagerKey()
	session := &PagerSession{
		Owner:      interactionUser(ic).ID,
		TotalPages: 1,
		Pick: func(ctx context.Context, state *State, ic *discordgo.InteractionCreate, session *PagerSession, choice string) {
			idx, err := strconv.Atoi(choice)
			if err != nil || idx < 0 || idx >= len(inBundle) {
				return
			}
			skin := inBundle[idx]
			weapon, err := state.FetchWeaponOfSkin(ctx, skin)
			if err != nil {
				interactionRespond(state.Dg, ic.Interaction, createEphemeralResponse("Something went wrong while showing this skin. Please try again later."))
				return
			}
			interactionRespond(state.Dg, ic.Interaction, createEphemeralEmbedResponse(createSkinEmbed(skin, weapon, book)))
		},
	}
	state.CreatePager(key, ic, session, DefaultPagerTTL)

	var components []discordgo.MessageComponent
	for start := 0; start < len(inBundle); start += 5 {
		end := min(start+5, len(inBundle))
		var row []discordgo.MessageComponent
		for i := start; i < end; i++ {
			row = append(row, pickButton(key, strconv.Itoa(i), inBundle[i].DisplayName))
		}
		components = append(components, discordgo.ActionsRow{Components: row})
	}

	editEmbeds(state, ic, []*discordgo.MessageEmbed{createBundleEmbed(bundle, inBundle)}, components)
}

// normalizeName strips everything but letters and digits so the scraped
// bundle name survives punctuation and spacing differences.
func normalizeName(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func matchBundleName(bundles []valapi.Bundle, name string) (valapi.Bundle, bool) {
	target := normalizeName(name)
	for _, bundle := range bundles {
		candidate := normalizeName(bundle.DisplayName)
		if candidate == "" {
			continue
		}
		if strings.Contains(target, candidate) || strings.Contains(candidate, target) {
			return bundle, true
		}
	}
	return valapi.Bundle{}, false
}

func matchThemeName(themes []valapi.Theme, bundleName string) (valapi.Theme, bool) {
	target := normalizeName(bundleName)
	for _, theme := range themes {
		candidate := normalizeName(theme.DisplayName)
		if candidate == "" {
			continue
		}
		if strings.Contains(target, candidate) || strings.Contains(candidate, target) {
			return theme, true
		}
	}
	return valapi.Theme{}, false
}
