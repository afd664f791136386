package app

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/RasmusDWN/valorant-bot/app/valapi"
	"github.com/bwmarrin/discordgo"
)

const AgentsPerPage = 5

func fetchPlayableAgents(ctx context.Context, state *State) ([]valapi.Agent, error) {
	agents, err := state.Val.Agents(ctx)
	if err != nil {
		return nil, err
	}
	playable := make([]valapi.Agent, 0, len(agents))
	for _, agent := range agents {
		if agent.IsPlayableCharacter {
			playable = append(playable, agent)
		}
	}
	return playable, nil
}

func HandleAgent(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	name, err := getStringOpt(ic.ApplicationCommandData().Options, "name")
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "")
		return
	}

	agents, err := fetchPlayableAgents(ctx, state)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "Sorry, the agents must be sleeping... Please try again later.")
		return
	}

	for _, agent := range agents {
		if strings.EqualFold(agent.DisplayName, name) {
			editEmbeds(state, ic, []*discordgo.MessageEmbed{createAgentDetailEmbed(agent)}, nil)
			return
		}
	}
	editText(state, ic, fmt.Sprintf("Agent %q not found. Please check the name and try again.", name))
}

func HandleNewestAgent(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	agents, err := fetchPlayableAgents(ctx, state)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "There was an error while fetching the agent data. Please try again later.")
		return
	}
	if len(agents) == 0 {
		editText(state, ic, "No agents were found. Please try again later.")
		return
	}

	sort.SliceStable(agents, func(i, j int) bool {
		return agents[i].ReleaseDate.After(agents[j].ReleaseDate)
	})
	newest := agents[0]

	embed := createAgentEmbed(newest)
	embed.Title = fmt.Sprintf("Newest Agent: %s", newest.DisplayName)
	if newest.Role != nil {
		embed.Title += fmt.Sprintf(" | %s", newest.Role.DisplayName)
	}

	key := newPagerKey()
	session := &PagerSession{
		Owner:      interactionUser(ic).ID,
		TotalPages: 1,
		Pick:       pickAgentAbility([]valapi.Agent{newest}),
	}
	state.CreatePager(key, ic, session, DefaultPagerTTL)

	editEmbeds(state, ic, []*discordgo.MessageEmbed{embed}, []discordgo.MessageComponent{abilityRow(key, 0, newest)})
}

// HandleAgents lists every playable agent five per page, with a pick
// button per listed agent that drills into their details and abilities.
func HandleAgents(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	agents, err := fetchPlayableAgents(ctx, state)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "Sorry, the agents must be sleeping... Please try again later.")
		return
	}
	if len(agents) == 0 {
		editText(state, ic, "No agents were found. Please try again later.")
		return
	}
	sort.SliceStable(agents, func(i, j int) bool {
		return agents[i].DisplayName < agents[j].DisplayName
	})

	totalPages := (len(agents) + AgentsPerPage - 1) / AgentsPerPage

	key := newPagerKey()
	session := &PagerSession{
		Owner:      interactionUser(ic).ID,
		TotalPages: totalPages,
		Pick:       pickAgentAbility(agents),
	}
	session.Render = func(page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
		start := page * AgentsPerPage
		end := min(start+AgentsPerPage, len(agents))
		slice := agents[start:end]

		var sb strings.Builder
		for _, agent := range slice {
			sb.WriteString(agent.DisplayName)
			sb.WriteRune('\n')
		}
		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Valorant Agents (Page %d/%d)", page+1, totalPages),
			Description: strings.TrimRight(sb.String(), "\n"),
			Color:       ValorantRed,
		}

		var picks []discordgo.MessageComponent
		for i, agent := range slice {
			picks = append(picks, pickButton(key, fmt.Sprintf("agent:%d", start+i), agent.DisplayName))
		}
		components := []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: picks},
			pagerNavRow(key, page, totalPages),
		}
		return embed, components
	}
	state.CreatePager(key, ic, session, DefaultPagerTTL)

	embed, components := session.Render(0)
	editEmbeds(state, ic, []*discordgo.MessageEmbed{embed}, components)
}

// pickAgentAbility routes the two drill-down choices of the agent list:
// "agent:<idx>" swaps the message to that agent's details, and
// "ability:<idx>:<slot>" replies with an ephemeral ability embed.
func pickAgentAbility(agents []valapi.Agent) func(ctx context.Context, state *State, ic *discordgo.InteractionCreate, session *PagerSession, choice string) {
	return func(ctx context.Context, state *State, ic *discordgo.InteractionCreate, session *PagerSession, choice string) {
		kind, rest, _ := strings.Cut(choice, ":")
		switch kind {
		case "agent":
			idx, err := strconv.Atoi(rest)
			if err != nil || idx < 0 || idx >= len(agents) {
				return
			}
			agent := agents[idx]
			key := pagerSessionKey(ic)
			// the detail view replaces the list message, so the session no
			// longer drives it and expiry must leave its buttons alone
			session.Closed.Store(true)
			components := []discordgo.MessageComponent{abilityRow(key, idx, agent)}
			interactionRespond(state.Dg, ic.Interaction, createUpdateResponse(createAgentDetailEmbed(agent), components))
		case "ability":
			agentPart, slotPart, _ := strings.Cut(rest, ":")
			idx, err1 := strconv.Atoi(agentPart)
			slot, err2 := strconv.Atoi(slotPart)
			if err1 != nil || err2 != nil || idx < 0 || idx >= len(agents) {
				return
			}
			agent := agents[idx]
			if slot < 0 || slot >= len(agent.Abilities) {
				return
			}
			embed := createAbilityEmbed(agent.Abilities[slot], agent.DisplayName)
			interactionRespond(state.Dg, ic.Interaction, createEphemeralEmbedResponse(embed))
		}
	}
}

func abilityRow(key string, agentIdx int, agent valapi.Agent) discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent
	for i, ability := range agent.Abilities {
		if ability.DisplayName == "" {
			continue
		}
		label := fmt.Sprintf("%s: %s", ability.Slot, ability.DisplayName)
		buttons = append(buttons, pickButton(key, fmt.Sprintf("ability:%d:%d", agentIdx, i), label))
	}
	return discordgo.ActionsRow{Components: buttons}
}

// pagerSessionKey recovers the session key from the clicked component's
// custom ID.
func pagerSessionKey(ic *discordgo.InteractionCreate) string {
	_, key, _ := parseCustomID(ic.MessageComponentData().CustomID)
	return key
}
