package auth

import (
	"context"

	"github.com/mikios34/kpopshop-backend/entity"
)

// Repository specifies auth related database operations.
type Repository interface {
	GetUserByPhone(ctx context.Context, phone string) (*entity.User, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)

	// CreateCustomerAccount persists the user and its customer profile in
	// one transaction.
	CreateCustomerAccount(ctx context.Context, user *entity.User) (*entity.Customer, error)

	GetCustomerByUserID(ctx context.Context, userID uint) (*entity.Customer, error)
}
