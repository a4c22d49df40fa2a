package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mikios34/kpopshop-backend/entity"
	websitepkg "github.com/mikios34/kpopshop-backend/website"
)

// GormWebsiteRepo implements website.Repository using GORM (v2).
type GormWebsiteRepo struct {
	db *gorm.DB
}

func NewGormWebsiteRepo(db *gorm.DB) websitepkg.Repository {
	return &GormWebsiteRepo{db: db}
}

func (r *GormWebsiteRepo) LatestProducts(ctx context.Context, limit int) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Where("visible = ?", true).
		Order("id DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *GormWebsiteRepo) TopSellingProducts(ctx context.Context, limit int) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Select("products.*, SUM(order_lines.quantity) AS sold").
		Joins("JOIN order_lines ON order_lines.product_id = products.id").
		Where("products.visible = ?", true).
		Group("products.id").
		Order("sold DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *GormWebsiteRepo) LatestNews(ctx context.Context, limit int) ([]entity.NewsArticle, error) {
	var articles []entity.NewsArticle
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *GormWebsiteRepo) ListSlides(ctx context.Context) ([]entity.Slide, error) {
	var slides []entity.Slide
	err := r.db.WithContext(ctx).
		Where("visible = ?", true).
		Order("id").
		Find(&slides).Error
	return slides, err
}

func (r *GormWebsiteRepo) ListBanners(ctx context.Context, position entity.BannerPosition) ([]entity.Banner, error) {
	var banners []entity.Banner
	err := r.db.WithContext(ctx).
		Where("visible = ? AND position = ?", true, position).
		Order("id").
		Find(&banners).Error
	return banners, err
}
