package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mikios34/kpopshop-backend/entity"
	"github.com/mikios34/kpopshop-backend/pricing"
)

// GormFeeRepo implements pricing.Repository using GORM (v2).
type GormFeeRepo struct {
	db *gorm.DB
}

func NewGormFeeRepo(db *gorm.DB) pricing.Repository {
	return &GormFeeRepo{db: db}
}

func (r *GormFeeRepo) GetFeeValue(ctx context.Context, code string) (string, error) {
	var ft entity.FeeType
	if err := r.db.WithContext(ctx).First(&ft, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &pricing.ConfigError{Kind: pricing.FeeTypeMissing, Key: code}
		}
		return "", err
	}

	var fv entity.FeeValue
	if err := r.db.WithContext(ctx).First(&fv, "fee_type_id = ?", ft.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &pricing.ConfigError{Kind: pricing.FeeValueMissing, Key: code}
		}
		return "", err
	}
	return fv.Value, nil
}
