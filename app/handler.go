package app

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

func (state *State) HandleInteractionCreate(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	trace := uuid.NewString()
	ctx := context.WithValue(context.Background(), TraceKey, trace)

	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		cmd := ic.ApplicationCommandData()
		slog.Info("received a command", "trace", trace, "name", cmd.Name, "options", formatOptions(cmd.Options))

		// every handler performs at least one upstream fetch, so
		// acknowledge first and edit the reply when the data arrives
		deferResponse(state.Dg, ic)

		switch cmd.Name {
		case "agent":
			HandleAgent(ctx, state, ic)
		case "agents":
			HandleAgents(ctx, state, ic)
		case "newestagent":
			HandleNewestAgent(ctx, state, ic)
		case "skin":
			HandleSkin(ctx, state, ic)
		case "skins":
			HandleSkins(ctx, state, ic)
		case "randomskin":
			HandleRandomSkin(ctx, state, ic)
		case "bundle":
			HandleBundle(ctx, state, ic)
		case "bundles":
			HandleBundles(ctx, state, ic)
		case "currentbundle":
			HandleCurrentBundle(ctx, state, ic)
		case "battlepass":
			HandleBattlepass(ctx, state, ic)
		case "currentseason":
			HandleCurrentSeason(ctx, state, ic)
		case "currentevent":
			HandleCurrentEvent(ctx, state, ic)
		case "currentpatchnotes":
			HandlePatchNotes(ctx, state, ic)
		case "map":
			HandleMap(ctx, state, ic)
		case "weapon":
			HandleWeapon(ctx, state, ic)
		case "team":
			HandleTeam(ctx, state, ic)
		case "team-standings":
			HandleTeamStandings(ctx, state, ic)
		case "player":
			HandlePlayer(ctx, state, ic)
		case "transfers":
			HandleTransfers(ctx, state, ic)
		case "upcomingmatches":
			HandleUpcomingMatches(ctx, state, ic)
		case "upcomingtournaments":
			HandleUpcomingTournaments(ctx, state, ic)
		case "tournament-results":
			HandleTournamentResults(ctx, state, ic)
		default:
			slog.Warn("unknown command", "trace", trace, "name", cmd.Name)
		}
	case discordgo.InteractionMessageComponent:
		msg := ic.MessageComponentData()
		slog.Info("received a message component", "trace", trace, "name", msg.CustomID)

		cond, key, choice := parseCustomID(msg.CustomID)
		switch cond {
		case PagerPrevKey, PagerNextKey, PagerPickKey:
			state.HandlePagerComponent(ctx, ic, cond, key, choice)
		default:
			slog.Warn("unknown message component condition", "name", msg.CustomID, "cond", cond)
		}
	}
}

func deferResponse(dg *discordgo.Session, ic *discordgo.InteractionCreate) {
	resp := &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredChannelMessageWithSource}
	if err := dg.InteractionRespond(ic.Interaction, resp); err != nil {
		slog.Error("failed to defer interaction response", "err", err)
	}
}

func interactionRespond(dg *discordgo.Session, i *discordgo.Interaction, r *discordgo.InteractionResponse) {
	if err := dg.InteractionRespond(i, r); err != nil {
		slog.Error("failed to send interaction response", "err", err)
	}
}

func interactionResponseEdit(dg *discordgo.Session, i *discordgo.Interaction, e *discordgo.WebhookEdit) {
	if _, err := dg.InteractionResponseEdit(i, e); err != nil {
		slog.Error("failed to send interaction response edit", "err", err)
	}
}

func editText(state *State, ic *discordgo.InteractionCreate, msg string) {
	interactionResponseEdit(state.Dg, ic.Interaction, createStringEdit(msg))
}

func editEmbeds(state *State, ic *discordgo.InteractionCreate, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	interactionResponseEdit(state.Dg, ic.Interaction, createEmbedsEdit(embeds, components))
}

const InternalServerErrorMsg = "An unexpected error occurred"

// handleInteractionError terminates every failed handler: log the cause
// with the trace, tell the user something specific enough to act on, and
// never let the fault escape.
func handleInteractionError(ctx context.Context, state *State, ic *discordgo.InteractionCreate, err error, userMsg string) {
	trace := ctx.Value(TraceKey)
	slog.Error("error when handling command", "trace", trace, "err", err)

	if userMsg == "" {
		userMsg = InternalServerErrorMsg
	}
	switch err.(type) {
	case OptionError:
		userMsg = err.Error()
	}
	editText(state, ic, userMsg)
}
