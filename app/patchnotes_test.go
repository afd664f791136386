package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchNotes_Latest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/en-us/news/tags/patch-notes/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `<html><body>
			<a href="/some/other/article">Other</a>
			<a href="/en-us/news/game-updates/valorant-patch-notes-11-04/">Patch 11.04</a>
			<a href="/en-us/news/game-updates/valorant-patch-notes-11-03/">Patch 11.03</a>
		</body></html>`)
	})
	mux.HandleFunc("/en-us/news/game-updates/valorant-patch-notes-11-04/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `<html><head>
			<meta property="og:image" content="https://example.com/banner.png">
		</head><body>
			<h2>Intro</h2>
			<p>Filler paragraph.</p>
			<h2>TL;DR</h2>
			<p>Agent updates for Jett.</p>
			<p>Map rotation changes.</p>
			<h3>Agent Updates</h3>
			<p>Long form content.</p>
		</body></html>`)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	patches := NewPatchNotes()
	patches.ListURL = server.URL + "/en-us/news/tags/patch-notes/"
	patches.Host = server.URL

	summary, err := patches.Latest(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, server.URL+"/en-us/news/game-updates/valorant-patch-notes-11-04/", summary.URL)
	assert.Equal(t, "https://example.com/banner.png", summary.Banner)
	assert.Equal(t, []string{"Agent updates for Jett.", "Map rotation changes."}, summary.TLDR)
}

func TestPatchNotes_Latest_NoLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `<html><body><a href="/nothing/here">Other</a></body></html>`)
	}))
	defer server.Close()

	patches := NewPatchNotes()
	patches.ListURL = server.URL
	patches.Host = server.URL

	_, err := patches.Latest(context.Background())
	assert.ErrorIs(t, err, ErrNoPatchNotes)
}

func TestPatchNotes_Latest_MissingTLDR(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/list", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `<a href="/en-us/news/game-updates/valorant-patch-notes-12-00/">Patch</a>`)
	})
	mux.HandleFunc("/en-us/news/game-updates/valorant-patch-notes-12-00/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `<html><body><h2>Changes</h2><p>Stuff.</p></body></html>`)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	patches := NewPatchNotes()
	patches.ListURL = server.URL + "/list"
	patches.Host = server.URL

	summary, err := patches.Latest(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"TL;DR not found for this patch."}, summary.TLDR)
}
