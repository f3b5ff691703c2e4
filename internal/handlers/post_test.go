package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reddypet/internal/logger"
	"reddypet/internal/platform"
	"reddypet/internal/service"

	"github.com/gin-gonic/gin"
)

type mockPoster struct {
	gotSubreddit string
	called       int
	post         platform.Post
	err          error
}

func (m *mockPoster) CreatePost(ctx context.Context, subreddit string) (platform.Post, error) {
	m.called++
	m.gotSubreddit = subreddit
	return m.post, m.err
}

func newTestRouter(p service.Poster) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(p, logger.Nop()).InitRoutes()
}

func decodeMenuResponse(t *testing.T, w *httptest.ResponseRecorder) menuResponse {
	t.Helper()
	var resp menuResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v (body=%s)", err, w.Body.String())
	}
	return resp
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&mockPoster{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != `{"ok":true}` {
		t.Fatalf("unexpected health body %s", w.Body.String())
	}
}

func TestCreatePost_Success(t *testing.T) {
	p := &mockPoster{post: platform.Post{ID: "t3_1", URL: "https://reddit.com/r/pets/comments/1"}}
	r := newTestRouter(p)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/internal/menu/post-create", strings.NewReader(`{"subredditName":"pets"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if p.gotSubreddit != "pets" {
		t.Errorf("subreddit passed = %q", p.gotSubreddit)
	}
	resp := decodeMenuResponse(t, w)
	if resp.NavigateTo != p.post.URL {
		t.Errorf("navigateTo = %q", resp.NavigateTo)
	}
	if resp.ShowToast.Text != "Post created!" || resp.ShowToast.Appearance != "success" {
		t.Errorf("unexpected toast %+v", resp.ShowToast)
	}
}

func TestCreatePost_EmptyBodyUsesDefaultVenue(t *testing.T) {
	p := &mockPoster{post: platform.Post{URL: "https://reddit.com/x"}}
	r := newTestRouter(p)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/internal/menu/post-create", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if p.called != 1 || p.gotSubreddit != "" {
		t.Errorf("expected one call with empty subreddit, got %d %q", p.called, p.gotSubreddit)
	}
}

func TestCreatePost_Failures(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantCall bool
	}{
		{"Missing venue", `{}`, service.ErrMissingVenue, http.StatusBadRequest, true},
		{"Platform failure", `{"subredditName":"pets"}`, fmt.Errorf("create post in r/pets: %w", errors.New("status 500")), http.StatusInternalServerError, true},
		{"Malformed body", `{"subredditName":`, nil, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &mockPoster{err: tt.err}
			r := newTestRouter(p)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/internal/menu/post-create", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status=%d want %d body=%s", w.Code, tt.wantCode, w.Body.String())
			}
			if (p.called == 1) != tt.wantCall {
				t.Errorf("poster called %d times", p.called)
			}
			resp := decodeMenuResponse(t, w)
			if resp.NavigateTo != "" {
				t.Errorf("failure must not navigate, got %q", resp.NavigateTo)
			}
			if !strings.HasPrefix(resp.ShowToast.Text, "Failed to create post: ") || resp.ShowToast.Appearance != "neutral" {
				t.Errorf("unexpected toast %+v", resp.ShowToast)
			}
		})
	}
}
