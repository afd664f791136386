package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/net/html"
)

const (
	PatchNotesListURL = "https://playvalorant.com/en-us/news/tags/patch-notes/"
	PatchNotesHost    = "https://playvalorant.com"
)

var ErrNoPatchNotes = errors.New("no patch notes link found")

// PatchSummary is one patch notes article reduced to what the reply
// shows.
type PatchSummary struct {
	URL    string
	Banner string
	TLDR   []string
}

// PatchNotes scrapes the official news site for the latest patch notes
// article and its TL;DR section.
type PatchNotes struct {
	Http    *http.Client
	ListURL string
	Host    string
}

func NewPatchNotes() *PatchNotes {
	return &PatchNotes{
		Http:    &http.Client{Timeout: time.Second * 10},
		ListURL: PatchNotesListURL,
		Host:    PatchNotesHost,
	}
}

func (p *PatchNotes) Latest(ctx context.Context) (PatchSummary, error) {
	listDoc, err := p.fetchDocument(ctx, p.ListURL)
	if err != nil {
		return PatchSummary{}, err
	}

	href := findPatchLink(listDoc)
	if href == "" {
		return PatchSummary{}, ErrNoPatchNotes
	}
	patchURL := href
	if strings.HasPrefix(href, "/") {
		patchURL = p.Host + href
	}

	patchDoc, err := p.fetchDocument(ctx, patchURL)
	if err != nil {
		return PatchSummary{}, err
	}

	summary := PatchSummary{
		URL:    patchURL,
		Banner: findMetaContent(patchDoc, "og:image"),
		TLDR:   findTLDR(patchDoc),
	}
	if len(summary.TLDR) == 0 {
		summary.TLDR = []string{"TL;DR not found for this patch."}
	}
	return summary, nil
}

func (p *PatchNotes) fetchDocument(ctx context.Context, url string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.Http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request to %s failed with status %d", url, resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", url, err)
	}
	return doc, nil
}

// findPatchLink returns the href of the first anchor pointing at a patch
// notes article.
func findPatchLink(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "a" {
		if href := attrValue(n, "href"); strings.Contains(href, "game-updates/valorant-patch-notes-") {
			return href
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if href := findPatchLink(c); href != "" {
			return href
		}
	}
	return ""
}

func findMetaContent(n *html.Node, property string) string {
	if n.Type == html.ElementNode && n.Data == "meta" && attrValue(n, "property") == property {
		return attrValue(n, "content")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if content := findMetaContent(c, property); content != "" {
			return content
		}
	}
	return ""
}

// findTLDR collects the paragraphs between a heading containing "tl;dr"
// and the next heading. The article nests sections unpredictably, so the
// walk flattens headings and paragraphs into document order first.
func findTLDR(doc *html.Node) []string {
	var sequence []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h2", "h3", "p":
				sequence = append(sequence, n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	var items []string
	inSection := false
	for _, n := range sequence {
		isHeading := n.Data == "h2" || n.Data == "h3"
		if isHeading {
			heading := strings.ToLower(strings.TrimSpace(nodeText(n)))
			inSection = strings.Contains(heading, "tl;dr") || strings.Contains(heading, "tldr")
			continue
		}
		if inSection {
			if text := strings.TrimSpace(nodeText(n)); text != "" {
				items = append(items, text)
			}
		}
	}
	return items
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

const PatchBulletsPerPage = 5

// HandlePatchNotes shows the latest patch's TL;DR bullets five per page
// with a link out to the full article.
func HandlePatchNotes(ctx context.Context, state *State, ic *discordgo.InteractionCreate) {
	summary, err := state.Patches.Latest(ctx)
	if err != nil {
		handleInteractionError(ctx, state, ic, err, "Oops, I couldn't fetch the latest patch TL;DR. Please try again later.")
		return
	}

	totalPages := (len(summary.TLDR) + PatchBulletsPerPage - 1) / PatchBulletsPerPage

	render := func(key string, page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
		start := page * PatchBulletsPerPage
		end := start + PatchBulletsPerPage
		if end > len(summary.TLDR) {
			end = len(summary.TLDR)
		}

		var sb strings.Builder
		for _, item := range summary.TLDR[start:end] {
			fmt.Fprintf(&sb, "• %s\n", item)
		}
		embed := &discordgo.MessageEmbed{
			Title:       "🔥 Latest Valorant Patch Notes",
			URL:         summary.URL,
			Description: strings.TrimRight(sb.String(), "\n"),
			Color:       ValorantRed,
			Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Page %d/%d", page+1, totalPages)},
		}
		if summary.Banner != "" {
			embed.Image = &discordgo.MessageEmbedImage{URL: summary.Banner}
		}

		if totalPages <= 1 {
			return embed, nil
		}
		components := []discordgo.MessageComponent{
			pagerNavRow(key, page, totalPages),
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label: "View Full Patch Notes",
					Style: discordgo.LinkButton,
					URL:   summary.URL,
				},
			}},
		}
		return embed, components
	}

	if totalPages <= 1 {
		embed, _ := render("", 0)
		editEmbeds(state, ic, []*discordgo.MessageEmbed{embed}, nil)
		return
	}

	key := newPagerKey()
	session := &PagerSession{
		Owner:      interactionUser(ic).ID,
		TotalPages: totalPages,
	}
	session.Render = func(page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
		return render(key, page)
	}
	state.CreatePager(key, ic, session, BattlepassPagerTTL)

	embed, components := session.Render(0)
	editEmbeds(state, ic, []*discordgo.MessageEmbed{embed}, components)
}
