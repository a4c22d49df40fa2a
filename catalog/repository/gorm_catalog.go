package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	catalogpkg "github.com/mikios34/kpopshop-backend/catalog"
	"github.com/mikios34/kpopshop-backend/entity"
)

// GormCatalogRepo implements catalog.Repository using GORM (v2).
type GormCatalogRepo struct {
	db *gorm.DB
}

func NewGormCatalogRepo(db *gorm.DB) catalogpkg.Repository {
	return &GormCatalogRepo{db: db}
}

func (r *GormCatalogRepo) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.WithContext(ctx).Order("id").Find(&categories).Error
	return categories, err
}

func (r *GormCatalogRepo) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var c entity.Category
	if err := r.db.WithContext(ctx).First(&c, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalogpkg.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormCatalogRepo) ListProducts(ctx context.Context, filter catalogpkg.ProductFilter) ([]entity.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&entity.Product{}).Where("visible = ?", true)
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case catalogpkg.SortPriceAsc:
		q = q.Order("list_price ASC")
	case catalogpkg.SortPriceDesc:
		q = q.Order("list_price DESC")
	case catalogpkg.SortNewest:
		q = q.Order("id DESC")
	default:
		q = q.Order("id ASC")
	}

	if filter.Limit > 0 {
		q = q.Offset(filter.Offset).Limit(filter.Limit)
	}

	var products []entity.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *GormCatalogRepo) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.WithContext(ctx).
		Preload("Colors").
		Where("visible = ?", true).
		First(&p, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalogpkg.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
