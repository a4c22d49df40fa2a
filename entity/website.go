package entity

import (
	"time"

	"gorm.io/gorm"
)

// Slide is one entry of the homepage carousel.
type Slide struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Title            string         `json:"title" gorm:"type:text;not null"`
	ShortDescription string         `json:"short_description,omitempty" gorm:"type:text"`
	LongDescription  string         `json:"long_description,omitempty" gorm:"type:text"`
	Image            string         `json:"image" gorm:"type:text;not null"`
	CategoryID       uint           `json:"category_id" gorm:"index"`
	Visible          bool           `json:"visible" gorm:"default:true;index"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

// BannerPosition places a banner in one of the three homepage rows.
type BannerPosition string

const (
	BannerTop    BannerPosition = "top"
	BannerMid    BannerPosition = "mid"
	BannerBottom BannerPosition = "bottom"
)

// Banner is a linked promo image on the homepage.
type Banner struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Image      string         `json:"image" gorm:"type:text;not null"`
	CategoryID uint           `json:"category_id" gorm:"index"`
	Position   BannerPosition `json:"position" gorm:"type:text;index;not null"`
	Visible    bool           `json:"visible" gorm:"default:true;index"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
