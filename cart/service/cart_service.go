package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	cartpkg "github.com/mikios34/kpopshop-backend/cart"
	"github.com/mikios34/kpopshop-backend/entity"
)

type cartService struct {
	repo cartpkg.Repository
}

// NewCartService constructs a cart.Service backed by the provided repository.
func NewCartService(repo cartpkg.Repository) cartpkg.Service {
	return &cartService{repo: repo}
}

func (s *cartService) List(ctx context.Context, customerID uint) ([]entity.CartLine, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *cartService) ListColors(ctx context.Context) ([]entity.Color, error) {
	return s.repo.ListColors(ctx)
}

func (s *cartService) Add(ctx context.Context, customerID uint, req cartpkg.AddLineRequest) (*entity.CartLine, error) {
	product, err := s.repo.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cartpkg.ErrProductNotFound
		}
		return nil, err
	}

	// one line per product per customer, regardless of color
	exists, err := s.repo.ExistsForProduct(ctx, customerID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, cartpkg.ErrDuplicateLine
	}

	line := &entity.CartLine{
		CustomerID: customerID,
		ProductID:  product.ID,
		ColorID:    req.ColorID,
		Quantity:   req.Quantity,
		UnitPrice:  product.ListPrice,
	}
	return s.repo.Create(ctx, line)
}

func (s *cartService) UpdateQuantity(ctx context.Context, customerID, lineID uint, quantity int) error {
	if _, err := s.repo.GetForCustomer(ctx, lineID, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cartpkg.ErrLineNotFound
		}
		return err
	}
	return s.repo.UpdateQuantity(ctx, lineID, quantity)
}

func (s *cartService) UpdateColor(ctx context.Context, customerID, lineID, colorID uint) error {
	if _, err := s.repo.GetForCustomer(ctx, lineID, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cartpkg.ErrLineNotFound
		}
		return err
	}
	ok, err := s.repo.ColorExists(ctx, colorID)
	if err != nil {
		return err
	}
	if !ok {
		return cartpkg.ErrColorNotFound
	}
	return s.repo.UpdateColor(ctx, lineID, colorID)
}

func (s *cartService) Remove(ctx context.Context, customerID, lineID uint) error {
	if _, err := s.repo.GetForCustomer(ctx, lineID, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cartpkg.ErrLineNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, lineID)
}

func (s *cartService) Validate(ctx context.Context, customerID uint) error {
	lines, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if line.ColorID == nil {
			return cartpkg.ErrMissingColor
		}
		if line.Quantity <= 0 {
			return cartpkg.ErrNonPositiveQuantity
		}
	}
	return nil
}
