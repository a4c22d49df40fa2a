package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mikios34/kpopshop-backend/entity"
	newspkg "github.com/mikios34/kpopshop-backend/news"
)

// GormNewsRepo implements news.Repository using GORM (v2).
type GormNewsRepo struct {
	db *gorm.DB
}

func NewGormNewsRepo(db *gorm.DB) newspkg.Repository {
	return &GormNewsRepo{db: db}
}

func (r *GormNewsRepo) List(ctx context.Context, filter newspkg.Filter) ([]entity.NewsArticle, int64, error) {
	q := r.db.WithContext(ctx).Model(&entity.NewsArticle{})
	if filter.Search != "" {
		q = q.Where("title ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("id DESC")
	if filter.Limit > 0 {
		q = q.Offset(filter.Offset).Limit(filter.Limit)
	}

	var articles []entity.NewsArticle
	if err := q.Find(&articles).Error; err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *GormNewsRepo) GetBySlug(ctx context.Context, slug string) (*entity.NewsArticle, error) {
	var a entity.NewsArticle
	if err := r.db.WithContext(ctx).First(&a, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newspkg.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *GormNewsRepo) Neighbor(ctx context.Context, id uint, dir int) (*entity.NewsArticle, error) {
	q := r.db.WithContext(ctx).Model(&entity.NewsArticle{})
	if dir < 0 {
		q = q.Where("id < ?", id).Order("id DESC")
	} else {
		q = q.Where("id > ?", id).Order("id ASC")
	}

	var a entity.NewsArticle
	if err := q.First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newspkg.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
