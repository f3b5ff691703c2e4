package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"reddypet/internal/platform"
)

type fakeSubmitter struct {
	calls []platform.CustomPost
	post  platform.Post
	err   error
}

func (f *fakeSubmitter) SubmitCustomPost(ctx context.Context, post platform.CustomPost) (platform.Post, error) {
	f.calls = append(f.calls, post)
	return f.post, f.err
}

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name          string
		defaultSub    string
		subreddit     string
		wantSubreddit string
		wantErr       error
	}{
		{"Uses requested subreddit", "fallback", "  pets ", "pets", nil},
		{"Falls back to default", "fallback", "", "fallback", nil},
		{"No venue at all", "", "   ", "", ErrMissingVenue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &fakeSubmitter{post: platform.Post{ID: "1", URL: "https://example.test/1"}}
			svc := NewPostService(sub, "", tt.defaultSub)

			post, err := svc.CreatePost(context.Background(), tt.subreddit)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if len(sub.calls) != 0 {
					t.Fatalf("platform should not be called without a venue")
				}
				return
			}
			if post.URL != "https://example.test/1" {
				t.Errorf("unexpected post %+v", post)
			}
			if len(sub.calls) != 1 {
				t.Fatalf("expected 1 platform call, got %d", len(sub.calls))
			}
			call := sub.calls[0]
			if call.SubredditName != tt.wantSubreddit {
				t.Errorf("subreddit = %q, want %q", call.SubredditName, tt.wantSubreddit)
			}
			if call.Title != defaultDisplayName || call.Splash.AppDisplayName != defaultDisplayName {
				t.Errorf("expected default display name, got %+v", call)
			}
		})
	}
}

func TestCreatePostWrapsPlatformErrors(t *testing.T) {
	boom := errors.New("status 500: upstream down")
	svc := NewPostService(&fakeSubmitter{err: boom}, "My Pet", "pets")

	_, err := svc.CreatePost(context.Background(), "")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped platform error, got %v", err)
	}
	if !strings.Contains(err.Error(), "r/pets") {
		t.Errorf("error %q missing subreddit context", err)
	}
	if errors.Is(err, ErrMissingVenue) {
		t.Errorf("platform errors must not look like a missing venue")
	}
}
