package notification

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("notification not found")

type Type string

const (
	TypeApplicationSubmitted   Type = "application_submitted"
	TypeApplicationUnderReview Type = "application_under_review"
	TypeApplicationApproved    Type = "application_approved"
	TypeApplicationRejected    Type = "application_rejected"
	TypeApplicationWithdrawn   Type = "application_withdrawn"
	TypePaymentRequested       Type = "payment_requested"
	TypePaymentReceived        Type = "payment_received"
	TypePaymentOverdue         Type = "payment_overdue"
	TypePartnershipDeactivated Type = "partnership_deactivated"
	TypePartnershipReactivated Type = "partnership_reactivated"
)

type Status string

const (
	StatusUnread    Status = "unread"
	StatusRead      Status = "read"
	StatusDismissed Status = "dismissed"
)

// Notification rows are created only by the dispatcher as a side effect of
// lifecycle transitions; users can only read or dismiss them.
type Notification struct {
	ID             uint64     `gorm:"primaryKey;column:id" json:"-"`
	NotificationID string     `gorm:"size:32;uniqueIndex" json:"notification_id"`
	UserID         string     `gorm:"size:32;not null;index:idx_notifications_user" json:"user_id"`
	Type           Type       `gorm:"size:48;not null" json:"type"`
	Status         Status     `gorm:"type:enum('unread','read','dismissed');default:'unread'" json:"status"`
	ApplicationID  string     `gorm:"size:32;index" json:"application_id,omitempty"`
	RequestID      string     `gorm:"size:32" json:"request_id,omitempty"`
	Message        string     `gorm:"type:text" json:"message,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}

func (Notification) TableName() string { return "notifications" }
