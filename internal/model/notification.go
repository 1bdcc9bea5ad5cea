package model

import "time"

type NotificationType string

const (
	NotificationTypeContact    NotificationType = "contact"
	NotificationTypeConsultant NotificationType = "consultant"
	NotificationTypeCommunity  NotificationType = "community"
)

// Notification is an admin-facing alert about a lead submission.
// ReferenceID points into the lead table matching Type; no foreign key is
// enforced, so deleting the lead leaves the notification dangling.
type Notification struct {
	ID          uint64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Message     string           `gorm:"type:text" json:"message"`
	SourceRoute string           `gorm:"column:source_route;size:255" json:"sourceRoute"`
	TargetRoute string           `gorm:"column:target_route;size:255" json:"targetRoute"`
	ReferenceID uint64           `gorm:"column:reference_id;index" json:"referenceId"`
	Type        NotificationType `gorm:"size:32;index;not null" json:"type"`
	IsRead      bool             `gorm:"column:is_read;index;default:false" json:"isRead"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
