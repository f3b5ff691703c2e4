package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"reddypet/internal/platform"
)

// ErrMissingVenue is returned when no subreddit is known for the new post.
var ErrMissingVenue = errors.New("subredditName is required")

const defaultDisplayName = "reddy-pet"

// PostSubmitter is the platform call the post service depends on.
type PostSubmitter interface {
	SubmitCustomPost(ctx context.Context, post platform.CustomPost) (platform.Post, error)
}

// Poster creates the embeddable pet post.
type Poster interface {
	CreatePost(ctx context.Context, subreddit string) (platform.Post, error)
}

// PostService creates the embeddable pet post on the host platform.
type PostService struct {
	client           PostSubmitter
	displayName      string
	defaultSubreddit string
}

// NewPostService returns a service submitting through client. The default
// subreddit is used when a request names none.
func NewPostService(client PostSubmitter, displayName, defaultSubreddit string) *PostService {
	if strings.TrimSpace(displayName) == "" {
		displayName = defaultDisplayName
	}
	return &PostService{
		client:           client,
		displayName:      displayName,
		defaultSubreddit: strings.TrimSpace(defaultSubreddit),
	}
}

// CreatePost submits the pet post to subreddit.
func (s *PostService) CreatePost(ctx context.Context, subreddit string) (platform.Post, error) {
	subreddit = strings.TrimSpace(subreddit)
	if subreddit == "" {
		subreddit = s.defaultSubreddit
	}
	if subreddit == "" {
		return platform.Post{}, ErrMissingVenue
	}

	post, err := s.client.SubmitCustomPost(ctx, platform.CustomPost{
		Title:         s.displayName,
		SubredditName: subreddit,
		Splash:        platform.Splash{AppDisplayName: s.displayName},
	})
	if err != nil {
		return platform.Post{}, fmt.Errorf("create post in r/%s: %w", subreddit, err)
	}
	return post, nil
}
