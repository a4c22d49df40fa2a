package catalog

import (
	"context"

	"github.com/mikios34/kpopshop-backend/entity"
)

// ProductFilter scopes a product listing. Limit <= 0 means no paging.
type ProductFilter struct {
	CategoryID uint
	Sort       SortKey
	Offset     int
	Limit      int
}

// Repository specifies catalog related database operations. Listings only
// ever see visible products.
type Repository interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// ListProducts returns one page of products plus the unpaged total.
	ListProducts(ctx context.Context, filter ProductFilter) ([]entity.Product, int64, error)

	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
}
