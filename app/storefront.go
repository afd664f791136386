package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const StoreURL = "https://valorantstrike.com/valorant-store/"

var ErrNoBundleName = errors.New("store page has no bundle name")

// Storefront scrapes the current bundle name off a fan-site store page.
// The page has no API, so this is best-effort text extraction: the name
// lives in the first paragraph of the first "et_pb_text_inner" block, and
// any markup change upstream fails the whole lookup.
type Storefront struct {
	Http     *http.Client
	StoreURL string
}

func NewStorefront() *Storefront {
	return &Storefront{
		Http:     &http.Client{Timeout: time.Second * 10},
		StoreURL: StoreURL,
	}
}

func (s *Storefront) CurrentBundleName(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.StoreURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.Http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch store page: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("store page request failed with status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse store page: %w", err)
	}

	div := findBundleBlock(doc)
	if div == nil {
		return "", ErrNoBundleName
	}
	name := strings.TrimSpace(nodeText(findElement(div, "p")))
	if name == "" {
		return "", ErrNoBundleName
	}
	return name, nil
}

// findBundleBlock walks the document for the first div with the
// "et_pb_text_inner" class that contains a paragraph.
func findBundleBlock(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "et_pb_text_inner") && findElement(n, "p") != nil {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findBundleBlock(c); found != nil {
			return found
		}
	}
	return nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// nodeText concatenates all text nodes under n.
func nodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}
