package valapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const BaseURL = "https://valorant-api.com/v1"

var ErrNotFound = errors.New("no matching record")

type Client struct {
	Http    *http.Client
	BaseURL string
}

func NewClient() *Client {
	return &Client{
		Http:    &http.Client{Timeout: time.Second * 10},
		BaseURL: BaseURL,
	}
}

type dataEnvelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func getData[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return zero, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("valorant api %s request failed with status %d", path, resp.StatusCode)
	}

	var envelope dataEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return zero, fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	if envelope.Status != 0 && envelope.Status != http.StatusOK {
		return zero, fmt.Errorf("valorant api %s returned status %d: %s", path, envelope.Status, envelope.Error)
	}

	var out T
	if err := json.Unmarshal(envelope.Data, &out); err != nil {
		return zero, fmt.Errorf("failed to decode %s data: %w", path, err)
	}
	return out, nil
}

func (c *Client) Agents(ctx context.Context) ([]Agent, error) {
	return getData[[]Agent](ctx, c, "/agents")
}

func (c *Client) Weapons(ctx context.Context) ([]Weapon, error) {
	return getData[[]Weapon](ctx, c, "/weapons")
}

func (c *Client) Skins(ctx context.Context) ([]Skin, error) {
	return getData[[]Skin](ctx, c, "/weapons/skins")
}

func (c *Client) Bundles(ctx context.Context) ([]Bundle, error) {
	return getData[[]Bundle](ctx, c, "/bundles")
}

func (c *Client) Themes(ctx context.Context) ([]Theme, error) {
	return getData[[]Theme](ctx, c, "/themes")
}

func (c *Client) ContentTiers(ctx context.Context) ([]ContentTier, error) {
	return getData[[]ContentTier](ctx, c, "/contenttiers")
}

func (c *Client) Maps(ctx context.Context) ([]GameMap, error) {
	return getData[[]GameMap](ctx, c, "/maps")
}

func (c *Client) Seasons(ctx context.Context) ([]Season, error) {
	return getData[[]Season](ctx, c, "/seasons")
}

func (c *Client) Events(ctx context.Context) ([]Event, error) {
	return getData[[]Event](ctx, c, "/events")
}

func (c *Client) Contracts(ctx context.Context) ([]Contract, error) {
	return getData[[]Contract](ctx, c, "/contracts")
}

// rewardRecord is the loose shape shared by the per-type reward
// endpoints; only the fields we display are decoded.
type rewardRecord struct {
	DisplayName         string `json:"displayName"`
	DisplayIcon         string `json:"displayIcon"`
	LargeArt            string `json:"largeArt"`
	FullTransparentIcon string `json:"fullTransparentIcon"`
}

// Reward resolves a battle pass reward reference to a display name and
// image. Unknown reward types resolve to "Unknown" rather than erroring,
// so one odd level does not break a whole battle pass page.
func (c *Client) Reward(ctx context.Context, kind, uuid string) (Reward, error) {
	unknown := Reward{Name: "Unknown"}
	if kind == "" || uuid == "" {
		return unknown, nil
	}

	var path string
	switch strings.ToLower(kind) {
	case "currency":
		path = "/currencies/" + uuid
	case "equippablecharmlevel":
		path = "/buddies/" + uuid
	case "equippableskinlevel":
		path = "/weapons/skins/" + uuid
	case "playercard":
		path = "/playercards/" + uuid
	case "spray":
		path = "/sprays/" + uuid
	case "title":
		path = "/playertitles/" + uuid
	case "totem":
		// no totems endpoint upstream
		return Reward{Name: "Totem"}, nil
	default:
		return unknown, nil
	}

	record, err := getData[rewardRecord](ctx, c, path)
	if errors.Is(err, ErrNotFound) {
		return unknown, nil
	}
	if err != nil {
		return unknown, err
	}

	reward := Reward{Name: record.DisplayName}
	if reward.Name == "" {
		reward.Name = "Unknown"
	}

	switch strings.ToLower(kind) {
	case "playercard":
		reward.Image = firstNonEmpty(record.LargeArt, record.DisplayIcon)
	case "spray":
		reward.Image = firstNonEmpty(record.FullTransparentIcon, record.DisplayIcon)
	case "title":
		// titles have no art
	default:
		reward.Image = record.DisplayIcon
	}
	return reward, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
