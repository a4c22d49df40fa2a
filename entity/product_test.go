package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductBeforeSaveDerivesSlugAndDiscount(t *testing.T) {
	p := &Product{
		Name:       "Áo thun BTS",
		ListPrice:  200000,
		PromoPrice: 150000,
	}
	require.NoError(t, p.BeforeSave(nil))

	require.Equal(t, "ao-thun-bts", p.Slug)
	// (promo - list) / promo * 100 — negative when list > promo, kept as is.
	require.InDelta(t, -33.33, p.DiscountPercent, 0.01)
}

func TestProductBeforeSaveRecomputesOnEveryWrite(t *testing.T) {
	p := &Product{Name: "Album BTS", ListPrice: 900, PromoPrice: 1000}
	require.NoError(t, p.BeforeSave(nil))
	require.InDelta(t, 10.0, p.DiscountPercent, 0.001)

	p.Name = "Album BTS Deluxe"
	p.ListPrice = 500
	require.NoError(t, p.BeforeSave(nil))
	require.Equal(t, "album-bts-deluxe", p.Slug)
	require.InDelta(t, 50.0, p.DiscountPercent, 0.001)
}

func TestCategoryBeforeSaveDerivesSlug(t *testing.T) {
	c := &Category{Name: "Test Category"}
	require.NoError(t, c.BeforeSave(nil))
	require.Equal(t, "test-category", c.Slug)
}
