package entity

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Category groups products under a slugified path.
type Category struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:text;not null"`
	Slug      string         `json:"slug" gorm:"index"`
	Image     string         `json:"image,omitempty" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeSave keeps the slug derived from the name on every write.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Slug = slug.Make(c.Name)
	return nil
}

// Color is a selectable color option for a product (name + display code).
type Color struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:text;not null"`
	Code      string         `json:"code" gorm:"type:text;not null"` // e.g. "#FF0000"
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Product is one catalog item.
type Product struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Name             string         `json:"name" gorm:"type:text;uniqueIndex;not null"`
	ListPrice        int64          `json:"list_price" gorm:"type:bigint;not null"`
	PromoPrice       int64          `json:"promo_price" gorm:"type:bigint;not null"`
	DiscountPercent  float64        `json:"discount_percent" gorm:"type:double precision"`
	ShortDescription string         `json:"short_description" gorm:"type:text"`
	LongDescription  string         `json:"long_description" gorm:"type:text"`
	CategoryID       uint           `json:"category_id" gorm:"index;not null"`
	Category         Category       `json:"category,omitempty"`
	Colors           []Color        `json:"colors,omitempty" gorm:"many2many:product_colors"`
	Tags             string         `json:"tags,omitempty" gorm:"type:text"`
	MainImage        string         `json:"main_image,omitempty" gorm:"type:text"`
	ExtraImage1      string         `json:"extra_image_1,omitempty" gorm:"type:text"`
	ExtraImage2      string         `json:"extra_image_2,omitempty" gorm:"type:text"`
	ExtraImage3      string         `json:"extra_image_3,omitempty" gorm:"type:text"`
	Slug             string         `json:"slug" gorm:"index"`
	Visible          bool           `json:"visible" gorm:"default:true;index"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeSave recomputes the slug and the discount percent on every write.
// The discount divides by the promo price, not the list price, which yields a
// negative percent whenever the list price exceeds the promo price. That is
// the established behavior of this shop and is kept as is.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.Slug = slug.Make(p.Name)
	if p.PromoPrice != 0 {
		p.DiscountPercent = float64(p.PromoPrice-p.ListPrice) / float64(p.PromoPrice) * 100
	}
	return nil
}
