package app

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/atomic"
)

// Component custom ID conditions. Custom IDs are "cond+sessionKey" with
// an optional "+choice" segment for pick buttons.
const (
	PagerPrevKey = "pager-prev"
	PagerNextKey = "pager-next"
	PagerPickKey = "pager-pick"
)

const DefaultPagerTTL = time.Second * 60

// PagerSession is the state behind one interactive message: who owns the
// buttons, which page is showing, and how to render a page. It lives in
// the session cache until its TTL runs out, after which the message's
// controls are removed and late clicks are acknowledged without effect.
type PagerSession struct {
	Owner       string
	Interaction *discordgo.Interaction

	// Render builds the embed and component rows for a page.
	Render func(page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent)
	// Pick handles a detail button press; nil when a session has no pick
	// buttons.
	Pick func(ctx context.Context, state *State, ic *discordgo.InteractionCreate, session *PagerSession, choice string)

	TotalPages int
	Closed     atomic.Bool

	mu   sync.Mutex
	page int
}

func (s *PagerSession) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Turn moves the page by delta, clamped to [0, TotalPages-1], and returns
// the new page.
func (s *PagerSession) Turn(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.page += delta
	if s.page < 0 {
		s.page = 0
	}
	if s.page > s.TotalPages-1 {
		s.page = s.TotalPages - 1
	}
	return s.page
}

func (s *PagerSession) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = page
}

type PagerCache = *ttlcache.Cache[string, *PagerSession]

// MakePagerCache builds the session store. Evicted sessions get their
// message components stripped so users do not keep clicking dead buttons.
func MakePagerCache(dg *discordgo.Session) PagerCache {
	sessions := ttlcache.New[string, *PagerSession]()
	sessions.OnEviction(func(_ context.Context, _ ttlcache.EvictionReason, item *ttlcache.Item[string, *PagerSession]) {
		session := item.Value()
		if session.Interaction == nil || session.Closed.Load() {
			return
		}
		slog.Info("expiring pager session", "key", item.Key())
		interactionResponseEdit(dg, session.Interaction, &discordgo.WebhookEdit{Components: &[]discordgo.MessageComponent{}})
	})
	return sessions
}

// newPagerKey mints the session key embedded in component custom IDs.
func newPagerKey() string {
	return uuid.NewString()
}

// CreatePager stores a fully built session under key. Callers mint the
// key first so Render and Pick closures can embed it in custom IDs, and
// store the session only once those closures are in place.
func (state *State) CreatePager(key string, ic *discordgo.InteractionCreate, session *PagerSession, ttl time.Duration) {
	session.Interaction = ic.Interaction
	state.Sessions.Set(key, session, ttl)
}

// parseCustomID splits "cond+key" or "cond+key+choice" component IDs.
func parseCustomID(customID string) (cond, key, choice string) {
	parts := strings.SplitN(customID, "+", 3)
	cond = parts[0]
	if len(parts) > 1 {
		key = parts[1]
	}
	if len(parts) > 2 {
		choice = parts[2]
	}
	return cond, key, choice
}

func pagerNavRow(key string, page, totalPages int) discordgo.MessageComponent {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			CustomID: PagerPrevKey + "+" + key,
			Label:    "⬅️ Previous",
			Style:    discordgo.PrimaryButton,
			Disabled: page == 0,
		},
		discordgo.Button{
			CustomID: PagerNextKey + "+" + key,
			Label:    "Next ➡️",
			Style:    discordgo.SecondaryButton,
			Disabled: page >= totalPages-1,
		},
	}}
}

func pickButton(key, choice, label string) discordgo.Button {
	return discordgo.Button{
		CustomID: PagerPickKey + "+" + key + "+" + choice,
		Label:    truncate(label, 80),
		Style:    discordgo.SecondaryButton,
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

const NotYourButtonsMsg = "These buttons aren't for you!"

// createAckResponse acknowledges a component click without changing the
// message.
func createAckResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{Type: discordgo.InteractionResponseUpdateMessage}
}

// resolvePagerClick decides how a session answers a component click. It
// returns nil when the click is a pick that the caller must route to the
// session's Pick callback.
func resolvePagerClick(session *PagerSession, user *discordgo.User, cond string) *discordgo.InteractionResponse {
	if user == nil || user.ID != session.Owner {
		return createEphemeralResponse(NotYourButtonsMsg)
	}

	switch cond {
	case PagerPrevKey, PagerNextKey:
		if session.Closed.Load() || session.Render == nil {
			return createAckResponse()
		}
		delta := 1
		if cond == PagerPrevKey {
			delta = -1
		}
		page := session.Turn(delta)
		embed, components := session.Render(page)
		return createUpdateResponse(embed, components)
	case PagerPickKey:
		if session.Pick == nil {
			return createAckResponse()
		}
		return nil
	default:
		slog.Warn("unknown pager condition", "cond", cond)
		return createAckResponse()
	}
}

func (state *State) HandlePagerComponent(ctx context.Context, ic *discordgo.InteractionCreate, cond, key, choice string) {
	item := state.Sessions.Get(key)
	if item == nil {
		interactionRespond(state.Dg, ic.Interaction, createAckResponse())
		return
	}
	session := item.Value()

	if resp := resolvePagerClick(session, interactionUser(ic), cond); resp != nil {
		interactionRespond(state.Dg, ic.Interaction, resp)
		return
	}
	session.Pick(ctx, state, ic, session, choice)
}

func interactionUser(ic *discordgo.InteractionCreate) *discordgo.User {
	if ic.Member != nil {
		return ic.Member.User
	}
	return ic.User
}
