package website

import (
	"context"

	"github.com/mikios34/kpopshop-backend/entity"
)

const (
	HomeProductLimit = 12
	HomeNewsLimit    = 10
	TopSellerLimit   = 4
)

// HomeView is everything the homepage renders. Every collection may be
// empty; an empty database is not an error.
type HomeView struct {
	Products      []entity.Product
	TopProducts   []entity.Product
	News          []entity.NewsArticle
	Slides        []entity.Slide
	TopBanners    []entity.Banner
	MidBanners    []entity.Banner
	BottomBanners []entity.Banner
}

type Service interface {
	Home(ctx context.Context) (*HomeView, error)
}
