package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/binarychai/playlist-backend/internal/repository"
	"github.com/binarychai/playlist-backend/internal/service"
)

// newPlaylistRouter wires the handler without a pool or image store; the
// paths under test fail boundary validation before either is touched.
func newPlaylistRouter() *gin.Engine {
	playlistService := service.NewPlaylistService(repository.NewPlaylistRepository(nil), zerolog.Nop())
	uploadService := service.NewUploadService(nil, zerolog.Nop())
	h := NewPlaylistHandler(playlistService, uploadService)

	r := gin.New()
	r.POST("/playlists", h.Create)
	return r
}

func postMultipart(t *testing.T, r *gin.Engine, path string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatalf("write field %q: %v", key, err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePlaylistMissingTitle(t *testing.T) {
	r := newPlaylistRouter()

	w := postMultipart(t, r, "/playlists", map[string]string{
		"songs": `[{"name": "Track", "duration": "3:00"}]`,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Error != "title and songs are required" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestCreatePlaylistMissingSongs(t *testing.T) {
	r := newPlaylistRouter()

	w := postMultipart(t, r, "/playlists", map[string]string{"title": "Mix"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Error != "title and songs are required" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestCreatePlaylistMalformedSongsJSON(t *testing.T) {
	r := newPlaylistRouter()

	w := postMultipart(t, r, "/playlists", map[string]string{
		"title": "Mix",
		"songs": `[{"name": "Track"`,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Error != "Invalid JSON format for songs or platform_links" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestCreatePlaylistMalformedPlatformLinks(t *testing.T) {
	r := newPlaylistRouter()

	w := postMultipart(t, r, "/playlists", map[string]string{
		"title":          "Mix",
		"songs":          `[{"name": "Track", "duration": "3:00"}]`,
		"platform_links": `{"spotify": `,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Error != "Invalid JSON format for songs or platform_links" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestCreatePlaylistEmptySongList(t *testing.T) {
	r := newPlaylistRouter()

	w := postMultipart(t, r, "/playlists", map[string]string{
		"title": "Mix",
		"songs": `[]`,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Error != "songs must be a non-empty array" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestCreatePlaylistSongMissingDuration(t *testing.T) {
	r := newPlaylistRouter()

	w := postMultipart(t, r, "/playlists", map[string]string{
		"title": "Mix",
		"songs": `[{"name": "Track"}]`,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Error != "each song must have a name and duration" {
		t.Errorf("error = %q", env.Error)
	}
}
