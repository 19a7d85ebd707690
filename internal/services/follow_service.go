package services

import (
	"context"

	"github.com/s4shantanu/socialconnect/internal/apperrors"
	"github.com/s4shantanu/socialconnect/internal/models"
	"github.com/s4shantanu/socialconnect/internal/repositories"
)

// FollowService maintains the directed follow graph.
type FollowService struct {
	store  *repositories.Store
	events *Emitter
}

func NewFollowService(store *repositories.Store, events *Emitter) *FollowService {
	return &FollowService{store: store, events: events}
}

// Follow ensures the follower → target edge exists. Duplicate follows are
// idempotent successes; only a newly created edge emits a follow event.
func (s *FollowService) Follow(ctx context.Context, followerID, targetID uint) (created bool, err error) {
	if followerID == targetID {
		return false, apperrors.ErrSelfFollow
	}
	if _, err := s.store.Users.GetUserByID(targetID); err != nil {
		return false, err
	}

	created, err = s.store.Follows.CreateFollowIfAbsent(&models.Follow{
		FollowerID:  followerID,
		FollowingID: targetID,
	})
	if err != nil {
		return false, err
	}

	if created {
		s.events.Emit(ctx, Event{Kind: EventFollow, ActorID: followerID, FollowedID: targetID})
	}
	return created, nil
}

// Unfollow removes the edge if present. A missing edge is a no-op, but the
// target user must exist.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uint) (bool, error) {
	if _, err := s.store.Users.GetUserByID(targetID); err != nil {
		return false, err
	}
	return s.store.Follows.DeleteFollow(followerID, targetID)
}

func (s *FollowService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.store.Users.GetUserByID(userID); err != nil {
		return nil, err
	}
	return s.store.Follows.GetFollowers(userID)
}

func (s *FollowService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.store.Users.GetUserByID(userID); err != nil {
		return nil, err
	}
	return s.store.Follows.GetFollowing(userID)
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error) {
	return s.store.Follows.IsFollowing(followerID, targetID)
}
