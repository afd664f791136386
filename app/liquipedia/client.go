package liquipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	BaseURL = "https://api.liquipedia.net/api/v3"
	WikiURL = "https://liquipedia.net/valorant"
	Wiki    = "valorant"
)

var ErrNotFound = errors.New("no matching record")

type Client struct {
	Http    *http.Client
	ApiKey  string
	BaseURL string
	WikiURL string
}

func NewClient(apiKey string) *Client {
	return &Client{
		Http:    &http.Client{Timeout: time.Second * 10},
		ApiKey:  apiKey,
		BaseURL: BaseURL,
		WikiURL: WikiURL,
	}
}

// Condition is one [[field::value]] clause of the v3 query mini-language.
type Condition struct {
	Field string
	Op    string // "::" when empty
	Value string
}

// Conditions joins clauses with AND, producing the raw (pre-encoding)
// conditions parameter.
func Conditions(conds ...Condition) string {
	var sb strings.Builder
	for i, cond := range conds {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		op := cond.Op
		if op == "" {
			op = "::"
		}
		fmt.Fprintf(&sb, "[[%s%s%s]]", cond.Field, op, cond.Value)
	}
	return sb.String()
}

type resultEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

func getResult[T any](ctx context.Context, c *Client, table string, params url.Values) ([]T, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("wiki", Wiki)

	endpoint := fmt.Sprintf("%s/%s?%s", c.BaseURL, table, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Apikey %s", c.ApiKey))

	resp, err := c.Http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", table, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("liquipedia %s request failed with status %d", table, resp.StatusCode)
	}

	var envelope resultEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", table, err)
	}
	if envelope.Error != "" {
		return nil, fmt.Errorf("liquipedia %s error: %s", table, envelope.Error)
	}

	var records []T
	if len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, &records); err != nil {
			return nil, fmt.Errorf("failed to decode %s records: %w", table, err)
		}
	}
	return records, nil
}

// RecentTournaments lists tournaments ordered by most recent start date.
func (c *Client) RecentTournaments(ctx context.Context, limit int) ([]Tournament, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("order", "startdate DESC")
	return getResult[Tournament](ctx, c, "tournament", params)
}

func (c *Client) Tournaments(ctx context.Context) ([]Tournament, error) {
	return getResult[Tournament](ctx, c, "tournament", nil)
}

func (c *Client) Matches(ctx context.Context) ([]Match, error) {
	params := url.Values{}
	params.Set("rawstreams", "false")
	params.Set("streamurls", "true")
	return getResult[Match](ctx, c, "match", params)
}

// FinishedMatchesSince lists finished matches dated after since, most
// recent first.
func (c *Client) FinishedMatchesSince(ctx context.Context, since time.Time, limit int) ([]Match, error) {
	params := url.Values{}
	params.Set("conditions", Conditions(
		Condition{Field: "date", Op: "::>", Value: since.Format("2006-01-02")},
		Condition{Field: "finished", Value: "1"},
	))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("order", "date DESC")
	return getResult[Match](ctx, c, "match", params)
}

// TeamMatches lists the most recent matches with team on either side.
func (c *Client) TeamMatches(ctx context.Context, team string, limit int) ([]Match, error) {
	params := url.Values{}
	params.Set("conditions", Conditions(Condition{Field: "opponent", Value: team}))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("order", "date DESC")
	return getResult[Match](ctx, c, "match", params)
}

// TeamByName resolves a team by its canonical name. Returns ErrNotFound
// when no team matches.
func (c *Client) TeamByName(ctx context.Context, name string) (Team, error) {
	params := url.Values{}
	params.Set("conditions", Conditions(Condition{Field: "name", Value: name}))

	teams, err := getResult[Team](ctx, c, "team", params)
	if err != nil {
		return Team{}, err
	}
	if len(teams) == 0 {
		return Team{}, ErrNotFound
	}
	return teams[0], nil
}

// PlayerByName resolves a player by page name. Returns ErrNotFound when no
// player matches.
func (c *Client) PlayerByName(ctx context.Context, name string) (Player, error) {
	params := url.Values{}
	params.Set("conditions", Conditions(Condition{Field: "pagename", Value: name}))

	players, err := getResult[Player](ctx, c, "player", params)
	if err != nil {
		return Player{}, err
	}
	if len(players) == 0 {
		return Player{}, ErrNotFound
	}
	return players[0], nil
}

// TeamRoster lists the players currently on a team's page.
func (c *Client) TeamRoster(ctx context.Context, teamPage string) ([]Player, error) {
	params := url.Values{}
	params.Set("conditions", Conditions(Condition{Field: "teampagename", Value: teamPage}))
	return getResult[Player](ctx, c, "player", params)
}

// LatestTransfers lists the most recent player transfers.
func (c *Client) LatestTransfers(ctx context.Context, limit int) ([]Transfer, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("order", "date DESC")
	return getResult[Transfer](ctx, c, "transfer", params)
}

var infoboxImagePattern = regexp.MustCompile(`(?i)\|\s*image\s*=\s*(.+)`)

type parseResponse struct {
	Parse struct {
		Wikitext struct {
			Content string `json:"*"`
		} `json:"wikitext"`
	} `json:"parse"`
}

// PageImageURL fetches a liquipedia page's infobox image URL through the
// MediaWiki parse API. Returns an empty string when the page has no image.
func (c *Client) PageImageURL(ctx context.Context, pageName string) (string, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", pageName)
	params.Set("prop", "wikitext")
	params.Set("redirects", "1")
	params.Set("format", "json")

	endpoint := fmt.Sprintf("%s/api.php?%s", c.WikiURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.Http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page wikitext: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wikitext request failed with status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed parseResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode wikitext response: %w", err)
	}

	match := infoboxImagePattern.FindStringSubmatch(parsed.Parse.Wikitext.Content)
	if match == nil {
		slog.Info("page has no infobox image", "page", pageName)
		return "", nil
	}
	fileName := strings.TrimSpace(match[1])
	if fileName == "" {
		return "", nil
	}
	return fmt.Sprintf("%s/Special:FilePath/%s", c.WikiURL, url.PathEscape(fileName)), nil
}
