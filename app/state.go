package app

import (
	"log"
	"time"

	"github.com/RasmusDWN/valorant-bot/app/cache"
	"github.com/RasmusDWN/valorant-bot/app/liquipedia"
	"github.com/RasmusDWN/valorant-bot/app/valapi"
	"github.com/bwmarrin/discordgo"
)

type ctxKey string

const TraceKey ctxKey = "trace"

// Reply payload TTLs, per upstream volatility.
const (
	TeamCacheTTL        = time.Hour
	StandingsCacheTTL   = time.Minute * 15
	TransfersCacheTTL   = time.Minute * 30
	MatchesCacheTTL     = time.Minute * 10
	TournamentsCacheTTL = time.Hour
	SkinsCacheTTL       = time.Minute * 10
	TiersCacheTTL       = time.Hour
)

type State struct {
	Dg       *discordgo.Session
	Val      *valapi.Client
	Liqui    *liquipedia.Client
	Store    *Storefront
	Patches  *PatchNotes
	Replies  *cache.Cache[[]*discordgo.MessageEmbed]
	Skins    *cache.Cache[[]valapi.Skin]
	Weapons  *cache.Cache[[]valapi.Weapon]
	Tiers    *cache.Cache[valapi.TierBook]
	Sessions PagerCache
}

func MakeState(dg *discordgo.Session, liquipediaKey string) *State {
	if dg == nil {
		log.Fatalf("discord session must be non nil")
	}
	return &State{
		Dg:       dg,
		Val:      valapi.NewClient(),
		Liqui:    liquipedia.NewClient(liquipediaKey),
		Store:    NewStorefront(),
		Patches:  NewPatchNotes(),
		Replies:  cache.New[[]*discordgo.MessageEmbed](),
		Skins:    cache.NewWithTTL[[]valapi.Skin](SkinsCacheTTL),
		Weapons:  cache.NewWithTTL[[]valapi.Weapon](SkinsCacheTTL),
		Tiers:    cache.NewWithTTL[valapi.TierBook](TiersCacheTTL),
		Sessions: MakePagerCache(dg),
	}
}
