package model

import "time"

// AboutUs is a single-row table; the service upserts row id 1.
type AboutUs struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text" json:"content"`
	Mission   string    `gorm:"type:text" json:"mission,omitempty"`
	Vision    string    `gorm:"type:text" json:"vision,omitempty"`
	ImageURL  *string   `gorm:"column:image_url;size:512" json:"imageUrl,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AboutUs) TableName() string {
	return "about_us"
}
