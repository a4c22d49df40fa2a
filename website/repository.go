package website

import (
	"context"

	"github.com/mikios34/kpopshop-backend/entity"
)

// Repository specifies homepage related database operations. All reads are
// scoped to visible rows.
type Repository interface {
	LatestProducts(ctx context.Context, limit int) ([]entity.Product, error)

	// TopSellingProducts ranks visible products by total quantity across
	// order lines.
	TopSellingProducts(ctx context.Context, limit int) ([]entity.Product, error)

	LatestNews(ctx context.Context, limit int) ([]entity.NewsArticle, error)
	ListSlides(ctx context.Context) ([]entity.Slide, error)
	ListBanners(ctx context.Context, position entity.BannerPosition) ([]entity.Banner, error)
}
