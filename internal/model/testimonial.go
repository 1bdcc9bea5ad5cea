package model

import "time"

type Testimonial struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorName  string    `gorm:"column:author_name;size:120;not null" json:"authorName"`
	Company     string    `gorm:"size:160" json:"company,omitempty"`
	Quote       string    `gorm:"type:text;not null" json:"quote"`
	Rating      uint8     `gorm:"default:5" json:"rating"`
	ImageURL    *string   `gorm:"column:image_url;size:512" json:"imageUrl,omitempty"`
	IsPublished bool      `gorm:"column:is_published;default:true" json:"isPublished"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
