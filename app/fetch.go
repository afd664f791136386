package app

import (
	"context"
	"strings"

	"github.com/RasmusDWN/valorant-bot/app/valapi"
)

// Cache keys for the whole-table payloads shared across handlers.
const (
	skinsKey   = "skins"
	weaponsKey = "weapons"
	tiersKey   = "tiers"
)

// FetchTierBook returns the content tier lookup table, hitting upstream at
// most once per TTL window.
func (state *State) FetchTierBook(ctx context.Context) (valapi.TierBook, error) {
	if book, ok := state.Tiers.Get(tiersKey); ok {
		return book, nil
	}
	tiers, err := state.Val.ContentTiers(ctx)
	if err != nil {
		return valapi.TierBook{}, err
	}
	book := valapi.MakeTierBook(tiers)
	state.Tiers.Set(tiersKey, book)
	return book, nil
}

func (state *State) FetchSkins(ctx context.Context) ([]valapi.Skin, error) {
	if skins, ok := state.Skins.Get(skinsKey); ok {
		return skins, nil
	}
	skins, err := state.Val.Skins(ctx)
	if err != nil {
		return nil, err
	}
	state.Skins.Set(skinsKey, skins)
	return skins, nil
}

func (state *State) FetchWeapons(ctx context.Context) ([]valapi.Weapon, error) {
	if weapons, ok := state.Weapons.Get(weaponsKey); ok {
		return weapons, nil
	}
	weapons, err := state.Val.Weapons(ctx)
	if err != nil {
		return nil, err
	}
	state.Weapons.Set(weaponsKey, weapons)
	return weapons, nil
}

// FetchSkinByName resolves a skin by exact case-insensitive display name.
func (state *State) FetchSkinByName(ctx context.Context, name string) (valapi.Skin, bool, error) {
	skins, err := state.FetchSkins(ctx)
	if err != nil {
		return valapi.Skin{}, false, err
	}
	for _, skin := range skins {
		if strings.EqualFold(skin.DisplayName, name) {
			return skin, true, nil
		}
	}
	return valapi.Skin{}, false, nil
}

// FetchWeaponOfSkin finds the weapon a skin belongs to, or nil when no
// weapon lists it.
func (state *State) FetchWeaponOfSkin(ctx context.Context, skin valapi.Skin) (*valapi.Weapon, error) {
	weapons, err := state.FetchWeapons(ctx)
	if err != nil {
		return nil, err
	}
	for i := range weapons {
		for _, s := range weapons[i].Skins {
			if s.UUID == skin.UUID {
				return &weapons[i], nil
			}
		}
	}
	return nil, nil
}
