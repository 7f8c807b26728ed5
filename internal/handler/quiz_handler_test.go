package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/binarychai/playlist-backend/internal/repository"
	"github.com/binarychai/playlist-backend/internal/response"
	"github.com/binarychai/playlist-backend/internal/service"
	"github.com/binarychai/playlist-backend/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Setup()
}

// newQuizRouter wires the handler against a repository with no pool. The
// paths under test fail validation before any query runs.
func newQuizRouter() *gin.Engine {
	h := NewQuizHandler(service.NewQuizService(repository.NewQuizRepository(nil)))
	r := gin.New()
	r.POST("/quiz", h.Create)
	r.GET("/quiz", h.List)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, w.Body.String())
	}
	return env
}

func TestCreateQuizMissingFields(t *testing.T) {
	r := newQuizRouter()

	w := postJSON(t, r, "/quiz", `{"question1": 3, "playlist_id": "playlist-1-a"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Success {
		t.Error("success = true on validation failure")
	}
	if env.Error != "All question answers (1-4) and playlist_id are required" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestCreateQuizAnswerOutOfRange(t *testing.T) {
	r := newQuizRouter()

	tests := []struct {
		body    string
		wantMsg string
	}{
		{
			`{"question1": 6, "question2": 3, "question3": 3, "question4": 3, "playlist_id": "p"}`,
			"Question 1 answer must be between 1 and 5",
		},
		{
			`{"question1": 1, "question2": 3, "question3": 0, "question4": 3, "playlist_id": "p"}`,
			"Question 3 answer must be between 1 and 5",
		},
		{
			`{"question1": 1, "question2": 3, "question3": 3, "question4": -2, "playlist_id": "p"}`,
			"Question 4 answer must be between 1 and 5",
		},
	}

	for _, tt := range tests {
		w := postJSON(t, r, "/quiz", tt.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
		}
		if env := decodeEnvelope(t, w); env.Error != tt.wantMsg {
			t.Errorf("error = %q, want %q", env.Error, tt.wantMsg)
		}
	}
}

func TestListQuizRejectsBadPagination(t *testing.T) {
	r := newQuizRouter()

	for _, query := range []string{"page=0", "limit=0", "page=-3&limit=10"} {
		req := httptest.NewRequest(http.MethodGet, "/quiz?"+query, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("query %q: status = %d, want 400", query, w.Code)
		}
		if env := decodeEnvelope(t, w); env.Error != "Page and limit must be positive numbers" {
			t.Errorf("query %q: error = %q", query, env.Error)
		}
	}
}
