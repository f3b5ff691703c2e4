package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBaseURL  = "https://devvit.reddit.com"
	customPostsPath = "/api/v1/posts/custom"
	maxErrorBody    = 512
)

// Splash is the preview shown before the embedded app loads.
type Splash struct {
	AppDisplayName string `json:"appDisplayName"`
}

// CustomPost describes an embeddable post to submit.
type CustomPost struct {
	Title         string `json:"title"`
	SubredditName string `json:"subredditName"`
	Splash        Splash `json:"splash"`
}

// Post is a created post.
type Post struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Client talks to the host platform API.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// SubmitCustomPost creates an embeddable post in the given subreddit.
func (c *Client) SubmitCustomPost(ctx context.Context, post CustomPost) (Post, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	body, err := json.Marshal(post)
	if err != nil {
		return Post{}, fmt.Errorf("encode custom post: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+customPostsPath, bytes.NewReader(body))
	if err != nil {
		return Post{}, fmt.Errorf("create custom post request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := strings.TrimSpace(c.Token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return Post{}, fmt.Errorf("submit custom post: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Post{}, fmt.Errorf("read custom post response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(raw))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return Post{}, fmt.Errorf("submit custom post: status %d: %s", resp.StatusCode, msg)
	}

	var created Post
	if err := json.Unmarshal(raw, &created); err != nil {
		return Post{}, fmt.Errorf("decode custom post response: %w", err)
	}
	if created.URL == "" {
		return Post{}, fmt.Errorf("submit custom post: response missing url")
	}
	return created, nil
}
