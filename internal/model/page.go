package model

import "time"

type Page struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug            string    `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Content         string    `gorm:"type:text" json:"content"`
	MetaTitle       string    `gorm:"column:meta_title;size:255" json:"metaTitle,omitempty"`
	MetaDescription string    `gorm:"column:meta_description;size:512" json:"metaDescription,omitempty"`
	IsPublished     bool      `gorm:"column:is_published;default:false" json:"isPublished"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Page) TableName() string {
	return "pages"
}
