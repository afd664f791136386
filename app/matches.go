package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/RasmusDWN/valorant-bot/app/liquipedia"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"
)

const (
	UpcomingMatchCount   = 5
	ResultsLookback      = 90 * 24 * time.Hour
	ResultsFetchLimit    = 200
	TournamentResultsCap = 10
)

// HandleUpcomingMatches shows the next scheduled matches, optionally
// narrowed to a tournament query through the alias matcher.
func HandleUpcomingMatches(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	query := getOptionalStringOpt(ic.ApplicationCommandData().Options, "tournament")

	cacheKey := "upcoming-matches"
	if query != "" {
		cacheKey += "-" + strings.ToLower(query)
	}
	if embeds, ok := state.Replies.Get(cacheKey); ok {
		editEmbeds(state, ic, embeds, nil)
		return
	}

	matches, err := state.Liqui.Matches(ctx)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching upcoming matches. Please try again later.")
		return
	}

	now := time.Now()
	var upcoming []liquipedia.Match
	if query != "" {
		upcoming = liquipedia.FilterUpcomingMatches(matches, query, now)
	} else {
		for _, match := range matches {
			if match.Date.After(now) {
				upcoming = append(upcoming, match)
			}
		}
	}
	if len(upcoming) == 0 {
		editText(state, ic, "No upcoming matches found.")
		return
	}
	if len(upcoming) > UpcomingMatchCount {
		upcoming = upcoming[:UpcomingMatchCount]
	}

	embed := &discordgo.MessageEmbed{
		Title:  "Upcoming Valorant Matches",
		Color:  ValorantRed,
		Footer: liquipediaFooter(),
	}
	for _, match := range upcoming {
		if len(match.Opponents) != 2 {
			continue
		}
		stream := "N/A"
		if len(match.Streams) > 0 && match.Streams[0].URL != "" {
			stream = match.Streams[0].URL
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%s vs %s", match.Opponents[0].Name, match.Opponents[1].Name),
			Value: fmt.Sprintf("Tournament: %s\nStart: %s UTC\n[Stream](%s)",
				match.Tournament, match.Date.UTC().Format("02/01/2006 15:04"), stream),
		})
	}

	embeds := []*discordgo.MessageEmbed{embed}
	state.Replies.SetTTL(cacheKey, embeds, MatchesCacheTTL)
	editEmbeds(state, ic, embeds, nil)
}

// HandleTournamentResults ranks the last three months of finished matches
// against the tournament query and lists the best tournament's results.
func HandleTournamentResults(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	query, err := getStringOpt(ic.ApplicationCommandData().Options, "tournament")
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "")
		return
	}

	cacheKey := "tournament-results-" + strings.ToLower(query)
	if embeds, ok := state.Replies.Get(cacheKey); ok {
		editEmbeds(state, ic, embeds, nil)
		return
	}

	var (
		matches     []liquipedia.Match
		tournaments []liquipedia.Tournament
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		since := time.Now().Add(-ResultsLookback)
		matches, err = state.Liqui.FinishedMatchesSince(groupCtx, since, ResultsFetchLimit)
		return err
	})
	group.Go(func() (err error) {
		tournaments, err = state.Liqui.RecentTournaments(groupCtx, ResultsFetchLimit)
		return err
	})
	if err := group.Wait(); err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching tournament results. Please try again later.")
		return
	}
	if len(matches) == 0 {
		editText(state, ic, fmt.Sprintf("No recent matches found for tournament %q.", query))
		return
	}

	filtered := liquipedia.FilterPastMatches(matches, query, time.Now())
	if len(filtered) == 0 {
		editText(state, ic, fmt.Sprintf("No recent matches found for tournament %q.", query))
		return
	}

	// prefer the canonical tournament record for the title and icon,
	// falling back to whatever the best-ranked match carries
	title, page := query, "S-Tier_Tournaments"
	logo := firstNonEmpty(filtered[0].IconDark, filtered[0].IconURL)
	if tournament, ok := liquipedia.BestTournament(tournaments, query); ok {
		title = tournament.Name
		page = tournament.PageName
		logo = firstNonEmpty(tournament.IconDark, tournament.IconURL, logo)
	}

	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("Recent Results - %s", title),
		Color:  ValorantRed,
		Footer: liquipediaFooter(),
	}
	if logo != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: logo}
	}

	results := formatTournamentResults(filtered)
	embed.Description = fmt.Sprintf("[View on Liquipedia](%s)\n\n%s", liquipediaPageURL(page), results)

	embeds := []*discordgo.MessageEmbed{embed}
	state.Replies.SetTTL(cacheKey, embeds, StandingsCacheTTL)
	editEmbeds(state, ic, embeds, nil)
}

func formatTournamentResults(matches []liquipedia.Match) string {
	if len(matches) > TournamentResultsCap {
		matches = matches[:TournamentResultsCap]
	}

	var lines []string
	for _, match := range matches {
		if len(match.Opponents) != 2 {
			continue
		}
		a, b := match.Opponents[0], match.Opponents[1]
		lines = append(lines, fmt.Sprintf("**%s** %d - %d **%s** (%s)",
			a.Name, a.ScoreValue(), b.ScoreValue(), b.Name, match.Date.Format("02/01/2006")))
	}
	if len(lines) == 0 {
		return "No results found."
	}
	return strings.Join(lines, "\n")
}
