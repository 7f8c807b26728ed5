package service

import (
	"regexp"
	"testing"
)

var playlistIDPattern = regexp.MustCompile(`^playlist-\d+-[0-9a-z]{7}$`)

func TestNewPlaylistID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewPlaylistID()
		if !playlistIDPattern.MatchString(id) {
			t.Fatalf("ID %q does not match expected shape", id)
		}
		if seen[id] {
			t.Fatalf("duplicate ID generated: %q", id)
		}
		seen[id] = true
	}
}
