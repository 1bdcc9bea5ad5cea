package model

import "time"

type CommunityMember struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:40" json:"phone,omitempty"`
	Company   string    `gorm:"size:160;not null" json:"company"`
	Expertise string    `gorm:"size:255" json:"expertise,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (CommunityMember) TableName() string {
	return "community_members"
}
