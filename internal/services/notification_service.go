package services

import (
	"context"
	"fmt"

	"github.com/s4shantanu/socialconnect/internal/apperrors"
	"github.com/s4shantanu/socialconnect/internal/models"
	"github.com/s4shantanu/socialconnect/internal/repositories"
)

// NotificationService materializes notifications from engagement events and
// serves the recipient's inbox. It is registered on the emitter at startup;
// each qualifying event produces exactly one notification, and actions on
// one's own posts produce none.
type NotificationService struct {
	store *repositories.Store
}

func NewNotificationService(store *repositories.Store) *NotificationService {
	return &NotificationService{store: store}
}

// HandleEvent implements Listener.
func (s *NotificationService) HandleEvent(ctx context.Context, ev Event) error {
	actor, err := s.store.Users.GetUserByID(ev.ActorID)
	if err != nil {
		return fmt.Errorf("notification fan-out: %w", err)
	}

	n := models.Notification{SenderID: ev.ActorID}
	switch ev.Kind {
	case EventFollow:
		n.Kind = models.NotificationFollow
		n.RecipientID = ev.FollowedID
		n.Message = fmt.Sprintf("%s started following you", actor.Username)
	case EventLike:
		n.Kind = models.NotificationLike
		n.RecipientID = ev.Post.AuthorID
		n.PostID = &ev.Post.ID
		n.Message = fmt.Sprintf("%s liked your post", actor.Username)
	case EventComment:
		n.Kind = models.NotificationComment
		n.RecipientID = ev.Post.AuthorID
		n.PostID = &ev.Post.ID
		n.Message = fmt.Sprintf("%s commented on your post", actor.Username)
	default:
		return fmt.Errorf("notification fan-out: unknown event kind %q", ev.Kind)
	}

	// No self-notifications.
	if n.RecipientID == n.SenderID {
		return nil
	}
	return s.store.Notifications.CreateNotification(&n)
}

// List returns the recipient's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return s.store.Notifications.GetByRecipientID(recipientID, page, limit)
}

func (s *NotificationService) UnreadCount(ctx context.Context, recipientID uint) (int64, error) {
	return s.store.Notifications.GetUnreadCount(recipientID)
}

// MarkRead flips a single notification owned by the recipient.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, recipientID uint) error {
	updated, err := s.store.Notifications.MarkAsRead(notificationID, recipientID)
	if err != nil {
		return err
	}
	if !updated {
		return apperrors.NotFound("notification %d", notificationID)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID uint) error {
	return s.store.Notifications.MarkAllAsRead(recipientID)
}
