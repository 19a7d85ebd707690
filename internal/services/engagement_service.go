package services

import (
	"context"
	"strings"

	"github.com/s4shantanu/socialconnect/internal/apperrors"
	"github.com/s4shantanu/socialconnect/internal/models"
	"github.com/s4shantanu/socialconnect/internal/repositories"
)

// EngagementService owns likes, comments and the denormalized counters on
// posts. Every mutation commits the engagement row and its counter adjustment
// in one transaction; after any operation completes, post.like_count equals
// the number of like rows and post.comment_count the number of active
// comments.
type EngagementService struct {
	store  *repositories.Store
	events *Emitter
}

func NewEngagementService(store *repositories.Store, events *Emitter) *EngagementService {
	return &EngagementService{store: store, events: events}
}

// LikeResult reports the outcome of a like/unlike toggle. AlreadyLiked is set
// when the operation was a duplicate collapsed to a no-op.
type LikeResult struct {
	Liked        bool
	AlreadyLiked bool
}

// Like records a like on an active post. Liking twice is an idempotent
// success: one row, one counter increment, one notification, however many
// times it is called.
func (s *EngagementService) Like(ctx context.Context, userID, postID uint) (LikeResult, error) {
	post, err := s.store.Posts.GetActivePostByID(postID)
	if err != nil {
		return LikeResult{}, err
	}

	var created bool
	err = s.store.Transaction(func(tx *repositories.Store) error {
		var txErr error
		created, txErr = tx.Likes.CreateLikeIfAbsent(&models.Like{UserID: userID, PostID: postID})
		if txErr != nil {
			return txErr
		}
		if created {
			return tx.Posts.AdjustLikeCount(postID, 1)
		}
		return nil
	})
	if err != nil {
		return LikeResult{}, err
	}

	if created {
		s.events.Emit(ctx, Event{Kind: EventLike, ActorID: userID, Post: post})
	}
	return LikeResult{Liked: true, AlreadyLiked: !created}, nil
}

// Unlike removes the user's like if present, decrementing the counter in the
// same transaction. No prior like is a no-op.
func (s *EngagementService) Unlike(ctx context.Context, userID, postID uint) (LikeResult, error) {
	if _, err := s.store.Posts.GetActivePostByID(postID); err != nil {
		return LikeResult{}, err
	}

	err := s.store.Transaction(func(tx *repositories.Store) error {
		removed, txErr := tx.Likes.DeleteLike(userID, postID)
		if txErr != nil {
			return txErr
		}
		if removed {
			return tx.Posts.AdjustLikeCount(postID, -1)
		}
		return nil
	})
	if err != nil {
		return LikeResult{}, err
	}
	return LikeResult{Liked: false}, nil
}

// LikeStatus reports whether the user currently likes the post.
func (s *EngagementService) LikeStatus(ctx context.Context, userID, postID uint) (bool, error) {
	if _, err := s.store.Posts.GetActivePostByID(postID); err != nil {
		return false, err
	}
	return s.store.Likes.HasUserLikedPost(userID, postID)
}

// AddComment creates a comment on an active post and bumps the post's
// comment counter in the same transaction.
func (s *EngagementService) AddComment(ctx context.Context, userID, postID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.Validation("comment content is required")
	}
	if len(content) > models.MaxCommentLength {
		return nil, apperrors.Validation("comment content exceeds %d characters", models.MaxCommentLength)
	}

	post, err := s.store.Posts.GetActivePostByID(postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: userID,
		Content:  content,
		Status:   models.StatusActive,
	}
	err = s.store.Transaction(func(tx *repositories.Store) error {
		if txErr := tx.Comments.CreateComment(comment); txErr != nil {
			return txErr
		}
		return tx.Posts.AdjustCommentCount(postID, 1)
	})
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, Event{Kind: EventComment, ActorID: userID, Post: post})
	return comment, nil
}

// ListComments returns a post's active comments, oldest first.
func (s *EngagementService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	if _, err := s.store.Posts.GetActivePostByID(postID); err != nil {
		return nil, err
	}
	return s.store.Comments.ListActiveByPostID(postID)
}

// RemoveComment soft-deletes a comment. Only the comment's author or an
// elevated actor may remove it. The counter decrement is gated on the status
// actually flipping, so repeated removals stay consistent.
func (s *EngagementService) RemoveComment(ctx context.Context, actorID uint, elevated bool, commentID uint) error {
	comment, err := s.store.Comments.GetActiveCommentByID(commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != actorID && !elevated {
		return apperrors.Permission("cannot delete another user's comment")
	}

	return s.store.Transaction(func(tx *repositories.Store) error {
		flipped, txErr := tx.Comments.SoftDeleteComment(commentID)
		if txErr != nil {
			return txErr
		}
		if flipped {
			return tx.Posts.AdjustCommentCount(comment.PostID, -1)
		}
		return nil
	})
}
