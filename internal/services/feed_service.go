package services

import (
	"context"

	"github.com/s4shantanu/socialconnect/internal/models"
	"github.com/s4shantanu/socialconnect/internal/repositories"
)

// Feed pagination bounds, matching the public API contract.
const (
	DefaultFeedPageSize = 20
	MaxFeedPageSize     = 50
)

// FeedService composes the reverse-chronological feed: active posts authored
// by the viewer or by anyone the viewer follows. Read-only.
type FeedService struct {
	store *repositories.Store
}

func NewFeedService(store *repositories.Store) *FeedService {
	return &FeedService{store: store}
}

// FeedPage is one page of a viewer's feed.
type FeedPage struct {
	Posts    []models.Post `json:"posts"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Feed returns the viewer's feed page. A viewer who follows nobody sees only
// their own posts; a viewer with no posts and no followings gets an empty
// page, not an error.
func (s *FeedService) Feed(ctx context.Context, viewerID uint, page, pageSize int) (*FeedPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultFeedPageSize
	}
	if pageSize > MaxFeedPageSize {
		pageSize = MaxFeedPageSize
	}

	followingIDs, err := s.store.Follows.GetFollowingIDs(viewerID)
	if err != nil {
		return nil, err
	}
	authorIDs := append(followingIDs, viewerID)

	posts, total, err := s.store.Posts.ListFeedPosts(authorIDs, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return &FeedPage{Posts: posts, Total: total, Page: page, PageSize: pageSize}, nil
}
