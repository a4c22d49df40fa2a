package entity

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// NewsArticle is one content page shown under the news listing.
type NewsArticle struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Title     string         `json:"title" gorm:"type:text;not null"`
	MainImage string         `json:"main_image,omitempty" gorm:"type:text"`
	Tags      string         `json:"tags,omitempty" gorm:"type:text"`
	Body      string         `json:"body" gorm:"type:text"`
	Slug      string         `json:"slug" gorm:"index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (n *NewsArticle) BeforeSave(tx *gorm.DB) error {
	n.Slug = slug.Make(n.Title)
	return nil
}
