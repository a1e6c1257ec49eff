package notification

import (
	"context"
	"time"

	"franchisehub-backend/internal/auth"
	domain "franchisehub-backend/internal/domain/notification"
	"franchisehub-backend/internal/domain/uow"
	"franchisehub-backend/internal/router"
)

type Usecase struct{ router *router.Router }

func NewUsecase(r *router.Router) *Usecase { return &Usecase{router: r} }

type NotificationDTO struct {
	NotificationID string     `json:"notification_id"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	ApplicationID  string     `json:"application_id,omitempty"`
	RequestID      string     `json:"request_id,omitempty"`
	Message        string     `json:"message,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}

func toDTO(n *domain.Notification) *NotificationDTO {
	return &NotificationDTO{
		NotificationID: n.NotificationID,
		Type:           string(n.Type),
		Status:         string(n.Status),
		ApplicationID:  n.ApplicationID,
		RequestID:      n.RequestID,
		Message:        n.Message,
		CreatedAt:      n.CreatedAt,
		ReadAt:         n.ReadAt,
	}
}

func (u *Usecase) List(ctx context.Context, sess auth.Session, unreadOnly bool) ([]NotificationDTO, error) {
	return router.Execute(ctx, u.router, sess, router.OpListNotifications,
		func(ctx context.Context, tx uow.UnitOfWork) ([]NotificationDTO, error) {
			var out []NotificationDTO
			err := tx.WithinTx(ctx, func(r uow.Repos) error {
				ns, err := r.Notifications.ListByUser(ctx, sess.UserID, unreadOnly)
				if err != nil {
					return err
				}
				out = make([]NotificationDTO, 0, len(ns))
				for i := range ns {
					out = append(out, *toDTO(&ns[i]))
				}
				return nil
			})
			return out, err
		})
}

func (u *Usecase) MarkRead(ctx context.Context, sess auth.Session, notificationID string) (*NotificationDTO, error) {
	return u.setStatus(ctx, sess, router.OpMarkNotificationRead, notificationID, domain.StatusRead)
}

func (u *Usecase) Dismiss(ctx context.Context, sess auth.Session, notificationID string) (*NotificationDTO, error) {
	return u.setStatus(ctx, sess, router.OpDismissNotification, notificationID, domain.StatusDismissed)
}

func (u *Usecase) setStatus(ctx context.Context, sess auth.Session, op router.Operation, notificationID string, status domain.Status) (*NotificationDTO, error) {
	return router.Execute(ctx, u.router, sess, op,
		func(ctx context.Context, tx uow.UnitOfWork) (*NotificationDTO, error) {
			var out *NotificationDTO
			err := tx.WithinTx(ctx, func(r uow.Repos) error {
				n, err := r.Notifications.GetByNotificationID(ctx, notificationID)
				if err != nil {
					return err
				}
				if n.UserID != sess.UserID {
					return domain.ErrNotFound
				}
				n.Status = status
				if status == domain.StatusRead && n.ReadAt == nil {
					now := time.Now().UTC()
					n.ReadAt = &now
				}
				if err := r.Notifications.Save(ctx, n); err != nil {
					return err
				}
				out = toDTO(n)
				return nil
			})
			return out, err
		})
}
