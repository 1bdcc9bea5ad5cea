package model

import "time"

type TeamMember struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Position  string    `gorm:"size:160;not null" json:"position"`
	Bio       string    `gorm:"type:text" json:"bio,omitempty"`
	ImageURL  *string   `gorm:"column:image_url;size:512" json:"imageUrl,omitempty"`
	SortOrder int       `gorm:"column:sort_order;default:0" json:"sortOrder"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
