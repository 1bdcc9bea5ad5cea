package model

import "time"

type ConsultantRequest struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:120;not null" json:"name"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	Phone        string    `gorm:"size:40" json:"phone,omitempty"`
	Organization string    `gorm:"size:160;not null" json:"organization"`
	Message      string    `gorm:"type:text" json:"message,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (ConsultantRequest) TableName() string {
	return "consultant_requests"
}
