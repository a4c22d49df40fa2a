package repository

import (
	"context"

	"gorm.io/gorm"

	authpkg "github.com/mikios34/kpopshop-backend/auth"
	"github.com/mikios34/kpopshop-backend/entity"
)

type GormAuthRepo struct {
	db *gorm.DB
}

func NewGormAuthRepo(db *gorm.DB) authpkg.Repository {
	return &GormAuthRepo{db: db}
}

func (r *GormAuthRepo) GetUserByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormAuthRepo) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.User{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

func (r *GormAuthRepo) CreateCustomerAccount(ctx context.Context, user *entity.User) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		customer = entity.Customer{UserID: user.ID, Active: true}
		return tx.Create(&customer).Error
	})
	if err != nil {
		return nil, err
	}
	customer.User = *user
	return &customer, nil
}

func (r *GormAuthRepo) GetCustomerByUserID(ctx context.Context, userID uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
