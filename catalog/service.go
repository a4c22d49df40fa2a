package catalog

import (
	"context"
	"errors"

	"github.com/mikios34/kpopshop-backend/entity"
)

// ProductPageSize is how many products a category page shows.
const ProductPageSize = 12

// SortKey selects the ordering of a category's product listing. Values are
// the storefront's query-string tokens.
type SortKey string

const (
	SortDefault   SortKey = ""
	SortPriceAsc  SortKey = "tang"
	SortPriceDesc SortKey = "giam"
	SortNewest    SortKey = "moi"
)

var (
	ErrNotFound       = errors.New("catalog entry not found")
	ErrPageOutOfRange = errors.New("page out of range")
)

// ProductPage is one page of a category listing. PageCount is always at
// least 1, even when the category has no products.
type ProductPage struct {
	Category  *entity.Category
	Items     []entity.Product
	Page      int
	PageCount int
}

type Service interface {
	Categories(ctx context.Context) ([]entity.Category, error)

	// CategoryProducts returns page `page` (1-indexed) of the category's
	// visible products. Unknown slug yields ErrNotFound; a page below 1 or
	// beyond the last page yields ErrPageOutOfRange, never a clamped page.
	CategoryProducts(ctx context.Context, slug string, page int, sort SortKey) (*ProductPage, error)

	// ProductBySlug loads a visible product with its colors.
	ProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
}
