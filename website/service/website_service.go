package service

import (
	"context"

	"github.com/mikios34/kpopshop-backend/entity"
	websitepkg "github.com/mikios34/kpopshop-backend/website"
)

type websiteService struct {
	repo websitepkg.Repository
}

func NewWebsiteService(repo websitepkg.Repository) websitepkg.Service {
	return &websiteService{repo: repo}
}

func (s *websiteService) Home(ctx context.Context) (*websitepkg.HomeView, error) {
	products, err := s.repo.LatestProducts(ctx, websitepkg.HomeProductLimit)
	if err != nil {
		return nil, err
	}
	topProducts, err := s.repo.TopSellingProducts(ctx, websitepkg.TopSellerLimit)
	if err != nil {
		return nil, err
	}
	news, err := s.repo.LatestNews(ctx, websitepkg.HomeNewsLimit)
	if err != nil {
		return nil, err
	}
	slides, err := s.repo.ListSlides(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.repo.ListBanners(ctx, entity.BannerTop)
	if err != nil {
		return nil, err
	}
	mid, err := s.repo.ListBanners(ctx, entity.BannerMid)
	if err != nil {
		return nil, err
	}
	bottom, err := s.repo.ListBanners(ctx, entity.BannerBottom)
	if err != nil {
		return nil, err
	}

	return &websitepkg.HomeView{
		Products:      products,
		TopProducts:   topProducts,
		News:          news,
		Slides:        slides,
		TopBanners:    top,
		MidBanners:    mid,
		BottomBanners: bottom,
	}, nil
}
