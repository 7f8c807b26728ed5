package model

import (
	"testing"
	"time"
)

func TestPlaylistRowView(t *testing.T) {
	spotify := "https://open.spotify.com/playlist/abc"
	cover := "https://images.example.com/cover.webp"
	now := time.Now()

	row := &PlaylistRow{
		ID:          "playlist-1700000000000-ab12cd3",
		Title:       "Late Night Drive",
		CoverImage:  &cover,
		SpotifyLink: &spotify,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	songs := []Song{
		{Name: "First", Duration: "3:12"},
		{Name: "Second", Duration: "4:01"},
	}

	view := row.View(songs)

	if view.ID != row.ID || view.Title != row.Title {
		t.Errorf("identity fields not carried over: %+v", view)
	}
	if view.CoverImage != cover {
		t.Errorf("CoverImage = %q, want %q", view.CoverImage, cover)
	}
	if len(view.Songs) != 2 || view.Songs[0].Name != "First" || view.Songs[1].Name != "Second" {
		t.Errorf("song order not preserved: %+v", view.Songs)
	}
	if view.PlatformLinks.Spotify == nil || *view.PlatformLinks.Spotify != spotify {
		t.Errorf("Spotify link not mapped: %+v", view.PlatformLinks)
	}
	if view.PlatformLinks.Gaana != nil {
		t.Errorf("absent Gaana link should stay nil, got %q", *view.PlatformLinks.Gaana)
	}
}

func TestPlaylistRowViewDefaults(t *testing.T) {
	row := &PlaylistRow{ID: "playlist-1-a", Title: "Empty"}

	view := row.View(nil)

	if view.CoverImage != "" {
		t.Errorf("nil cover should render as empty string, got %q", view.CoverImage)
	}
	if view.Songs == nil {
		t.Error("nil songs should render as an empty slice, not null")
	}
	if len(view.Songs) != 0 {
		t.Errorf("expected no songs, got %d", len(view.Songs))
	}
}
