package services

import (
	"context"
	"fmt"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/eventnotification"
	"github.com/sourcehut/todosrht-core/pkg/models"
)

// NotificationService reads and updates a user's EventNotification inbox.
type NotificationService struct {
	client *ent.Client
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{client: client}
}

// List returns a page of userID's notifications, newest first, alongside
// their current unread count.
func (s *NotificationService) List(ctx context.Context, userID string, limit, offset int) (*models.NotificationListResponse, error) {
	if limit <= 0 {
		limit = 20
	}

	notifications, err := s.client.EventNotification.Query().
		Where(eventnotification.UserIDEQ(userID)).
		Order(ent.Desc(eventnotification.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}

	unread, err := s.client.EventNotification.Query().
		Where(eventnotification.UserIDEQ(userID), eventnotification.ReadEQ(false)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting unread notifications: %w", err)
	}

	return &models.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// MarkRead marks one notification read, scoped to its owner so a user
// cannot mark another user's notification.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	n, err := s.client.EventNotification.Get(ctx, notificationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("getting notification: %w", err)
	}
	if n.UserID != userID {
		return ErrPermissionDenied
	}

	if err := n.Update().SetRead(true).Exec(ctx); err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks every unread notification for userID as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	count, err := s.client.EventNotification.Update().
		Where(eventnotification.UserIDEQ(userID), eventnotification.ReadEQ(false)).
		SetRead(true).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("marking all notifications read: %w", err)
	}
	return count, nil
}
