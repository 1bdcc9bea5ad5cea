package model

import "time"

type Breadcrumb struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PageSlug  string    `gorm:"column:page_slug;size:160;index;not null" json:"pageSlug"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	ImageURL  *string   `gorm:"column:image_url;size:512" json:"imageUrl,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Breadcrumb) TableName() string {
	return "breadcrumbs"
}
