package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByNotificationID(ctx context.Context, notificationID string) (*Notification, error)
	Save(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]Notification, error)
}
