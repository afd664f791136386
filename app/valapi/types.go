// Package valapi is a thin typed client for the public valorant-api.com
// game-data API. Responses are decoded at this boundary so the handlers
// never touch raw JSON.
package valapi

import "time"

type Agent struct {
	UUID                string    `json:"uuid"`
	DisplayName         string    `json:"displayName"`
	Description         string    `json:"description"`
	ReleaseDate         time.Time `json:"releaseDate"`
	IsPlayableCharacter bool      `json:"isPlayableCharacter"`
	DisplayIcon         string    `json:"displayIcon"`
	FullPortrait        string    `json:"fullPortrait"`
	Role                *Role     `json:"role"`
	Abilities           []Ability `json:"abilities"`
}

type Role struct {
	DisplayName string `json:"displayName"`
}

type Ability struct {
	Slot        string `json:"slot"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	DisplayIcon string `json:"displayIcon"`
}

type Weapon struct {
	UUID        string       `json:"uuid"`
	DisplayName string       `json:"displayName"`
	DisplayIcon string       `json:"displayIcon"`
	Skins       []Skin       `json:"skins"`
	ShopData    *ShopData    `json:"shopData"`
	WeaponStats *WeaponStats `json:"weaponStats"`
}

type ShopData struct {
	Cost         int    `json:"cost"`
	CategoryText string `json:"categoryText"`
}

type WeaponStats struct {
	FireRate          float64 `json:"fireRate"`
	MagazineSize      int     `json:"magazineSize"`
	ReloadTimeSeconds float64 `json:"reloadTimeSeconds"`
	WallPenetration   string  `json:"wallPenetration"`
}

type Skin struct {
	UUID            string   `json:"uuid"`
	DisplayName     string   `json:"displayName"`
	ThemeUUID       string   `json:"themeUuid"`
	ContentTierUUID string   `json:"contentTierUuid"`
	DisplayIcon     string   `json:"displayIcon"`
	FullRender      string   `json:"fullRender"`
	Chromas         []Chroma `json:"chromas"`
}

type Chroma struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"displayName"`
}

type Bundle struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	DisplayIcon string `json:"displayIcon"`
}

type Theme struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"displayName"`
}

type ContentTier struct {
	UUID        string `json:"uuid"`
	DevName     string `json:"devName"`
	DisplayName string `json:"displayName"`
	Rank        int    `json:"rank"`
	DisplayIcon string `json:"displayIcon"`
}

type GameMap struct {
	UUID                string `json:"uuid"`
	DisplayName         string `json:"displayName"`
	Coordinates         string `json:"coordinates"`
	TacticalDescription string `json:"tacticalDescription"`
	Splash              string `json:"splash"`
	ListViewIconTall    string `json:"listViewIconTall"`
	DisplayIcon         string `json:"displayIcon"`
}

type Season struct {
	UUID        string    `json:"uuid"`
	DisplayName string    `json:"displayName"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	DisplayIcon string    `json:"displayIcon"`
}

type Event struct {
	UUID             string    `json:"uuid"`
	DisplayName      string    `json:"displayName"`
	ShortDisplayName string    `json:"shortDisplayName"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
}

type Contract struct {
	UUID        string           `json:"uuid"`
	DisplayName string           `json:"displayName"`
	DisplayIcon string           `json:"displayIcon"`
	Content     *ContractContent `json:"content"`
}

type ContractContent struct {
	RelationUUID string    `json:"relationUuid"`
	Chapters     []Chapter `json:"chapters"`
}

type Chapter struct {
	Levels []ChapterLevel `json:"levels"`
}

type ChapterLevel struct {
	XP     int           `json:"xp"`
	Reward *RewardHandle `json:"reward"`
}

type RewardHandle struct {
	Type string `json:"type"`
	UUID string `json:"uuid"`
}

// Reward is the resolved display form of a battle pass level reward.
type Reward struct {
	Name  string
	Image string
}

// IsActive reports whether now falls inside the season's time window.
func (s Season) IsActive(now time.Time) bool {
	return !now.Before(s.StartTime) && !now.After(s.EndTime)
}

func (e Event) IsActive(now time.Time) bool {
	return !now.Before(e.StartTime) && !now.After(e.EndTime)
}
