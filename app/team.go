package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/RasmusDWN/valorant-bot/app/liquipedia"
	"github.com/bwmarrin/discordgo"
)

const TeamMatchLimit = 100

func HandleTeam(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	name, err := getStringOpt(ic.ApplicationCommandData().Options, "name")
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "")
		return
	}

	cacheKey := "team-" + strings.ToLower(name)
	if embeds, ok := state.Replies.Get(cacheKey); ok {
		editEmbeds(state, ic, embeds, nil)
		return
	}

	team, err := state.Liqui.TeamByName(ctx, name)
	if errors.Is(err, liquipedia.ErrNotFound) {
		editText(state, ic, fmt.Sprintf("Team %q not found. Please check the name and try again.", name))
		return
	}
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching the team data. Please try again later.")
		return
	}

	roster := "None"
	players, err := state.Liqui.TeamRoster(ctx, team.PageName)
	if err != nil {
		slog.Warn("failed to fetch team roster", "team", team.PageName, "err", err)
	} else if len(players) > 0 {
		var names []string
		for _, player := range players {
			if player.PageName != "" {
				names = append(names, player.PageName)
			}
		}
		if len(names) > 0 {
			roster = strings.Join(names, ", ")
		}
	}

	status, region := team.Status, team.Region
	if status == "" {
		status = "Unknown"
	}
	if region == "" {
		region = "Unknown"
	}

	embed := &discordgo.MessageEmbed{
		Title:       team.Name,
		Description: fmt.Sprintf("[View on Liquipedia](%s)", liquipediaPageURL(team.PageName)),
		Color:       ValorantRed,
		Footer:      liquipediaFooter(),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Status", Value: status, Inline: true},
			{Name: "Region", Value: region, Inline: true},
			{Name: "Active Roster", Value: roster, Inline: true},
		},
	}
	if logo := firstNonEmpty(team.LogoURL, team.LogoDark); logo != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: logo}
	}

	embeds := []*discordgo.MessageEmbed{embed}
	state.Replies.SetTTL(cacheKey, embeds, TeamCacheTTL)
	editEmbeds(state, ic, embeds, nil)
}

// HandleTeamStandings tallies a team's record in its current or most
// recent tournament.
func HandleTeamStandings(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	name, err := getStringOpt(ic.ApplicationCommandData().Options, "team")
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "")
		return
	}

	cacheKey := "team-standings-" + strings.ToLower(name)
	if embeds, ok := state.Replies.Get(cacheKey); ok {
		editEmbeds(state, ic, embeds, nil)
		return
	}

	team, err := state.Liqui.TeamByName(ctx, name)
	if errors.Is(err, liquipedia.ErrNotFound) {
		editText(state, ic, fmt.Sprintf("Team %q not found. Please check the name and try again.", name))
		return
	}
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching team standings. Please try again later.")
		return
	}

	matches, err := state.Liqui.TeamMatches(ctx, team.Name, TeamMatchLimit)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching team standings. Please try again later.")
		return
	}
	if len(matches) == 0 {
		editText(state, ic, fmt.Sprintf("No recent tournament matches found for %q.", team.Name))
		return
	}

	standings, ok := liquipedia.GroupByTournament(matches, team.Name, time.Now())
	if !ok {
		editText(state, ic, fmt.Sprintf("No tournament data found for %q.", team.Name))
		return
	}

	status := "most recent tournament"
	if standings.Ongoing {
		status = "currently ongoing"
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s - Tournament Standings", team.Name),
		Description: fmt.Sprintf("**%s** (%s)", standings.Tournament, status),
		Color:       ValorantRed,
		Footer:      liquipediaFooter(),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Record (W-L)", Value: fmt.Sprintf("**%d** - **%d**", standings.Wins, standings.Losses), Inline: true},
			{Name: "Win Rate", Value: standings.WinRate(), Inline: true},
			{Name: "Matches Played", Value: fmt.Sprintf("%d", standings.Played()), Inline: true},
		},
	}
	if results := liquipedia.RecentResults(standings.Matches, team.Name); len(results) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Recent Results",
			Value: strings.Join(results, "\n"),
		})
	}
	if logo := firstNonEmpty(team.LogoURL, team.LogoDark); logo != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: logo}
	}

	embeds := []*discordgo.MessageEmbed{embed}
	state.Replies.SetTTL(cacheKey, embeds, StandingsCacheTTL)
	editEmbeds(state, ic, embeds, nil)
}
