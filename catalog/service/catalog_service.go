package service

import (
	"context"

	catalogpkg "github.com/mikios34/kpopshop-backend/catalog"
	"github.com/mikios34/kpopshop-backend/entity"
)

type catalogService struct {
	repo catalogpkg.Repository
}

func NewCatalogService(repo catalogpkg.Repository) catalogpkg.Service {
	return &catalogService{repo: repo}
}

func (s *catalogService) Categories(ctx context.Context) ([]entity.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *catalogService) CategoryProducts(ctx context.Context, slug string, page int, sort catalogpkg.SortKey) (*catalogpkg.ProductPage, error) {
	category, err := s.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, catalogpkg.ErrPageOutOfRange
	}

	items, total, err := s.repo.ListProducts(ctx, catalogpkg.ProductFilter{
		CategoryID: category.ID,
		Sort:       sort,
		Offset:     (page - 1) * catalogpkg.ProductPageSize,
		Limit:      catalogpkg.ProductPageSize,
	})
	if err != nil {
		return nil, err
	}

	pageCount := pageCount(total, catalogpkg.ProductPageSize)
	if page > pageCount {
		return nil, catalogpkg.ErrPageOutOfRange
	}
	return &catalogpkg.ProductPage{
		Category:  category,
		Items:     items,
		Page:      page,
		PageCount: pageCount,
	}, nil
}

func (s *catalogService) ProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return s.repo.GetProductBySlug(ctx, slug)
}

// pageCount is ceil(total/size) with a floor of one page, so an empty
// listing still has a valid page 1.
func pageCount(total int64, size int) int {
	n := int((total + int64(size) - 1) / int64(size))
	if n < 1 {
		return 1
	}
	return n
}
