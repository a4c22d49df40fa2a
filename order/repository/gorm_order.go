package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mikios34/kpopshop-backend/entity"
	orderpkg "github.com/mikios34/kpopshop-backend/order"
)

// GormOrderRepo implements order.Repository using GORM (v2).
type GormOrderRepo struct {
	db *gorm.DB
}

func NewGormOrderRepo(db *gorm.DB) orderpkg.Repository {
	return &GormOrderRepo{db: db}
}

func (r *GormOrderRepo) GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).Preload("User").First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormOrderRepo) Place(ctx context.Context, customerID uint, build orderpkg.BuildOrder) (*entity.Order, error) {
	var placed *entity.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lines []entity.CartLine
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("customer_id = ?", customerID).
			Order("id").
			Find(&lines).Error; err != nil {
			return err
		}

		ord, orderLines, err := build(lines)
		if err != nil {
			return err
		}
		if err := tx.Create(ord).Error; err != nil {
			return err
		}
		if len(orderLines) > 0 {
			for i := range orderLines {
				orderLines[i].OrderID = ord.ID
			}
			if err := tx.Create(&orderLines).Error; err != nil {
				return err
			}
			ord.Lines = orderLines
		}
		if len(lines) > 0 {
			if err := tx.Where("customer_id = ?", customerID).Delete(&entity.CartLine{}).Error; err != nil {
				return err
			}
		}
		placed = ord
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

func (r *GormOrderRepo) ListByCustomer(ctx context.Context, customerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Preload("Lines").Preload("Lines.Product").
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}
