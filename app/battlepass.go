package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/RasmusDWN/valorant-bot/app/valapi"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"
)

const BattlepassPagerTTL = time.Second * 120

// battlepassLevel is one flattened page of the battle pass: levels are
// numbered through the whole contract while the chapter bounds let the
// pager jump a chapter at a time.
type battlepassLevel struct {
	chapter      int
	levelInChap  int
	chapterStart int
	chapterEnd   int
	level        valapi.ChapterLevel
}

func flattenChapters(chapters []valapi.Chapter) []battlepassLevel {
	var flat []battlepassLevel
	for c, chapter := range chapters {
		start := len(flat)
		for l, level := range chapter.Levels {
			flat = append(flat, battlepassLevel{chapter: c, levelInChap: l, chapterStart: start, level: level})
		}
		for i := start; i < len(flat); i++ {
			flat[i].chapterEnd = len(flat)
		}
	}
	return flat
}

// HandleBattlepass shows the active battle pass contract one level per
// page. Level buttons step through levels; chapter buttons jump to the
// first level of the adjacent chapter.
func HandleBattlepass(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	failMsg := "An error occurred while fetching the battlepass data."

	var (
		contracts []valapi.Contract
		events    []valapi.Event
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		contracts, err = state.Val.Contracts(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		events, err = state.Val.Events(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		handleInteractionError(ctx, state, ic, err, failMsg)
		return
	}

	contract, ok := activeContract(contracts, events, time.Now())
	if !ok {
		editText(state, ic, "No active battlepass found.")
		return
	}

	flat := flattenChapters(contract.Content.Chapters)
	if len(flat) == 0 {
		editText(state, ic, "No active battlepass found.")
		return
	}
	totalChapters := len(contract.Content.Chapters)

	key := newPagerKey()
	session := &PagerSession{
		Owner:      interactionUser(ic).ID,
		TotalPages: len(flat),
	}
	session.Pick = func(ctx context.Context, state *State, ic *discordgo.InteractionCreate, session *PagerSession, choice string) {
		current := flat[session.Page()]
		switch choice {
		case "chapter-prev":
			if current.chapter > 0 {
				session.SetPage(flat[current.chapterStart-1].chapterStart)
			}
		case "chapter-next":
			if current.chapterEnd < len(flat) {
				session.SetPage(current.chapterEnd)
			}
		default:
			return
		}
		embed, components := session.Render(session.Page())
		interactionRespond(state.Dg, ic.Interaction, createUpdateResponse(embed, components))
	}
	session.Render = func(page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
		entry := flat[page]

		reward := valapi.Reward{Name: "Unknown"}
		if entry.level.Reward != nil {
			fetched, err := state.Val.Reward(ctx, entry.level.Reward.Type, entry.level.Reward.UUID)
			if err != nil {
				slog.Error("failed to resolve battlepass reward", "err", err)
			} else {
				reward = fetched
			}
		}

		chapterLevels := entry.chapterEnd - entry.chapterStart
		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("Contract: %s", contract.DisplayName),
			Color: ValorantRed,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:  fmt.Sprintf("Level %d - %s", entry.levelInChap+1, reward.Name),
					Value: fmt.Sprintf("XP Required: %d", entry.level.XP),
				},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Chapter %d/%d • Page %d/%d", entry.chapter+1, totalChapters, entry.levelInChap+1, chapterLevels),
			},
		}
		if contract.DisplayIcon != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: contract.DisplayIcon}
		}
		if reward.Image != "" {
			embed.Image = &discordgo.MessageEmbedImage{URL: reward.Image}
		}

		levelRow := pagerNavRow(key, page, len(flat))
		chapterRow := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			disableButton(pickButton(key, "chapter-prev", "Previous Chapter"), entry.chapter == 0),
			disableButton(pickButton(key, "chapter-next", "Next Chapter"), entry.chapter >= totalChapters-1),
		}}
		return embed, []discordgo.MessageComponent{levelRow, chapterRow}
	}
	state.CreatePager(key, ic, session, BattlepassPagerTTL)

	embed, components := session.Render(0)
	editEmbeds(state, ic, []*discordgo.MessageEmbed{embed}, components)
}

func disableButton(b discordgo.Button, disabled bool) discordgo.Button {
	b.Disabled = disabled
	return b
}

// activeContract finds the contract whose related event is currently
// running.
func activeContract(contracts []valapi.Contract, events []valapi.Event, now time.Time) (valapi.Contract, bool) {
	eventsByUUID := make(map[string]valapi.Event, len(events))
	for _, event := range events {
		eventsByUUID[event.UUID] = event
	}
	for _, contract := range contracts {
		if contract.Content == nil {
			continue
		}
		event, ok := eventsByUUID[contract.Content.RelationUUID]
		if ok && event.IsActive(now) {
			return contract, true
		}
	}
	return valapi.Contract{}, false
}
