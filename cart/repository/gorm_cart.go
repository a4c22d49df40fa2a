package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mikios34/kpopshop-backend/cart"
	"github.com/mikios34/kpopshop-backend/entity"
)

// GormCartRepo implements cart.Repository using GORM (v2).
type GormCartRepo struct {
	db *gorm.DB
}

func NewGormCartRepo(db *gorm.DB) cart.Repository {
	return &GormCartRepo{db: db}
}

func (r *GormCartRepo) ListByCustomer(ctx context.Context, customerID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := r.db.WithContext(ctx).
		Preload("Product").Preload("Color").
		Where("customer_id = ?", customerID).
		Order("id").
		Find(&lines).Error
	return lines, err
}

func (r *GormCartRepo) GetForCustomer(ctx context.Context, id, customerID uint) (*entity.CartLine, error) {
	var line entity.CartLine
	if err := r.db.WithContext(ctx).First(&line, "id = ? AND customer_id = ?", id, customerID).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *GormCartRepo) ExistsForProduct(ctx context.Context, customerID, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.CartLine{}).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormCartRepo) Create(ctx context.Context, line *entity.CartLine) (*entity.CartLine, error) {
	if err := r.db.WithContext(ctx).Create(line).Error; err != nil {
		return nil, err
	}
	return line, nil
}

func (r *GormCartRepo) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	return r.db.WithContext(ctx).Model(&entity.CartLine{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *GormCartRepo) UpdateColor(ctx context.Context, id, colorID uint) error {
	return r.db.WithContext(ctx).Model(&entity.CartLine{}).
		Where("id = ?", id).
		Update("color_id", colorID).Error
}

func (r *GormCartRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.CartLine{}, id).Error
}

func (r *GormCartRepo) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormCartRepo) ColorExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Color{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *GormCartRepo) ListColors(ctx context.Context) ([]entity.Color, error) {
	var colors []entity.Color
	err := r.db.WithContext(ctx).Order("id").Find(&colors).Error
	return colors, err
}
