package service

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	catalogpkg "github.com/mikios34/kpopshop-backend/catalog"
	"github.com/mikios34/kpopshop-backend/entity"
)

type fakeCatalogRepo struct {
	categories []entity.Category
	products   []entity.Product
}

func (f *fakeCatalogRepo) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return f.categories, nil
}

func (f *fakeCatalogRepo) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			cc := c
			return &cc, nil
		}
	}
	return nil, catalogpkg.ErrNotFound
}

func (f *fakeCatalogRepo) ListProducts(ctx context.Context, filter catalogpkg.ProductFilter) ([]entity.Product, int64, error) {
	var matched []entity.Product
	for _, p := range f.products {
		if !p.Visible {
			continue
		}
		if filter.CategoryID != 0 && p.CategoryID != filter.CategoryID {
			continue
		}
		matched = append(matched, p)
	}

	switch filter.Sort {
	case catalogpkg.SortPriceAsc:
		sort.Slice(matched, func(i, j int) bool { return matched[i].ListPrice < matched[j].ListPrice })
	case catalogpkg.SortPriceDesc:
		sort.Slice(matched, func(i, j int) bool { return matched[i].ListPrice > matched[j].ListPrice })
	case catalogpkg.SortNewest:
		sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	default:
		sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	}

	total := int64(len(matched))
	if filter.Limit > 0 {
		if filter.Offset >= len(matched) {
			matched = nil
		} else {
			end := filter.Offset + filter.Limit
			if end > len(matched) {
				end = len(matched)
			}
			matched = matched[filter.Offset:end]
		}
	}
	return matched, total, nil
}

func (f *fakeCatalogRepo) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Slug == slug && p.Visible {
			pp := p
			return &pp, nil
		}
	}
	return nil, catalogpkg.ErrNotFound
}

func seededRepo(productCount int) *fakeCatalogRepo {
	repo := &fakeCatalogRepo{
		categories: []entity.Category{
			{ID: 1, Name: "Áo thun", Slug: "ao-thun"},
			{ID: 2, Name: "Album", Slug: "album"},
		},
	}
	for i := 1; i <= productCount; i++ {
		repo.products = append(repo.products, entity.Product{
			ID:         uint(i),
			CategoryID: 1,
			Name:       fmt.Sprintf("Sản phẩm %d", i),
			Slug:       fmt.Sprintf("san-pham-%d", i),
			ListPrice:  int64(1000 * i),
			Visible:    true,
		})
	}
	return repo
}

func TestCategoryProductsPagination(t *testing.T) {
	svc := NewCatalogService(seededRepo(15))

	page1, err := svc.CategoryProducts(context.Background(), "ao-thun", 1, catalogpkg.SortDefault)
	require.NoError(t, err)
	require.Len(t, page1.Items, 12)
	require.Equal(t, 2, page1.PageCount)
	require.Equal(t, "Áo thun", page1.Category.Name)
	require.Equal(t, uint(1), page1.Items[0].ID)

	page2, err := svc.CategoryProducts(context.Background(), "ao-thun", 2, catalogpkg.SortDefault)
	require.NoError(t, err)
	require.Len(t, page2.Items, 3)
	require.Equal(t, uint(13), page2.Items[0].ID)

	_, err = svc.CategoryProducts(context.Background(), "ao-thun", 3, catalogpkg.SortDefault)
	require.ErrorIs(t, err, catalogpkg.ErrPageOutOfRange)
	_, err = svc.CategoryProducts(context.Background(), "ao-thun", 0, catalogpkg.SortDefault)
	require.ErrorIs(t, err, catalogpkg.ErrPageOutOfRange)
}

func TestCategoryProductsEmptyCategoryHasOnePage(t *testing.T) {
	svc := NewCatalogService(seededRepo(0))

	page, err := svc.CategoryProducts(context.Background(), "album", 1, catalogpkg.SortDefault)
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Equal(t, 1, page.PageCount)

	_, err = svc.CategoryProducts(context.Background(), "album", 2, catalogpkg.SortDefault)
	require.ErrorIs(t, err, catalogpkg.ErrPageOutOfRange)
}

func TestCategoryProductsSorts(t *testing.T) {
	svc := NewCatalogService(seededRepo(5))

	asc, err := svc.CategoryProducts(context.Background(), "ao-thun", 1, catalogpkg.SortPriceAsc)
	require.NoError(t, err)
	require.Equal(t, int64(1000), asc.Items[0].ListPrice)

	desc, err := svc.CategoryProducts(context.Background(), "ao-thun", 1, catalogpkg.SortPriceDesc)
	require.NoError(t, err)
	require.Equal(t, int64(5000), desc.Items[0].ListPrice)

	newest, err := svc.CategoryProducts(context.Background(), "ao-thun", 1, catalogpkg.SortNewest)
	require.NoError(t, err)
	require.Equal(t, uint(5), newest.Items[0].ID)
}

func TestCategoryProductsUnknownSlug(t *testing.T) {
	svc := NewCatalogService(seededRepo(3))
	_, err := svc.CategoryProducts(context.Background(), "khong-co", 1, catalogpkg.SortDefault)
	require.ErrorIs(t, err, catalogpkg.ErrNotFound)
}

func TestCategoryProductsHidesInvisible(t *testing.T) {
	repo := seededRepo(3)
	repo.products[1].Visible = false
	svc := NewCatalogService(repo)

	page, err := svc.CategoryProducts(context.Background(), "ao-thun", 1, catalogpkg.SortDefault)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
}

func TestProductBySlug(t *testing.T) {
	svc := NewCatalogService(seededRepo(3))

	p, err := svc.ProductBySlug(context.Background(), "san-pham-2")
	require.NoError(t, err)
	require.Equal(t, uint(2), p.ID)

	_, err = svc.ProductBySlug(context.Background(), "khong-co")
	require.ErrorIs(t, err, catalogpkg.ErrNotFound)
}

func TestCategories(t *testing.T) {
	svc := NewCatalogService(seededRepo(0))
	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
}
