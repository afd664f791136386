package valapi

// VP price per tier class. Tier UUIDs are looked up live from the
// contenttiers endpoint; only these per-class price points are static,
// since the API does not expose store prices.
var tierPrices = map[string]string{
	"Select":    "875 VP",
	"Deluxe":    "1,275 VP",
	"Premium":   "1,775 VP",
	"Exclusive": "2,175 VP",
	"Ultra":     "2,475 VP",
}

// devName -> display name, for tiers whose displayName upstream is the
// internal "...EquippableTier" string.
var tierDisplayNames = map[string]string{
	"Base":       "Select",
	"Midrange":   "Deluxe",
	"BattlePass": "Premium",
	"Exclusive":  "Exclusive",
	"Ultra":      "Ultra",
}

const UnknownTier = "Unknown"

// TierBook indexes the live content tier table by UUID. Built once per
// fetch and cached by the caller; lookups never hit the network.
type TierBook struct {
	byUUID map[string]ContentTier
}

func MakeTierBook(tiers []ContentTier) TierBook {
	byUUID := make(map[string]ContentTier, len(tiers))
	for _, tier := range tiers {
		if tier.UUID != "" {
			byUUID[tier.UUID] = tier
		}
	}
	return TierBook{byUUID: byUUID}
}

// Name returns the display name for a tier UUID, or "Unknown".
func (b TierBook) Name(uuid string) string {
	tier, ok := b.byUUID[uuid]
	if !ok {
		return UnknownTier
	}
	if name, ok := tierDisplayNames[tier.DevName]; ok {
		return name
	}
	if tier.DisplayName != "" {
		return tier.DisplayName
	}
	return UnknownTier
}

// Price returns the VP price label for a tier UUID, or "Unknown".
func (b TierBook) Price(uuid string) string {
	if price, ok := tierPrices[b.Name(uuid)]; ok {
		return price
	}
	return UnknownTier
}
