package service

import (
	"context"
	"errors"

	newspkg "github.com/mikios34/kpopshop-backend/news"
)

type newsService struct {
	repo newspkg.Repository
}

func NewNewsService(repo newspkg.Repository) newspkg.Service {
	return &newsService{repo: repo}
}

func (s *newsService) List(ctx context.Context, page int, search string) (*newspkg.Page, error) {
	if page < 1 {
		return nil, newspkg.ErrPageOutOfRange
	}

	items, total, err := s.repo.List(ctx, newspkg.Filter{
		Search: search,
		Offset: (page - 1) * newspkg.PageSize,
		Limit:  newspkg.PageSize,
	})
	if err != nil {
		return nil, err
	}

	pageCount := int((total + newspkg.PageSize - 1) / newspkg.PageSize)
	if pageCount < 1 {
		pageCount = 1
	}
	if page > pageCount {
		return nil, newspkg.ErrPageOutOfRange
	}
	return &newspkg.Page{
		Items:     items,
		Page:      page,
		PageCount: pageCount,
		Search:    search,
	}, nil
}

func (s *newsService) BySlug(ctx context.Context, slug string) (*newspkg.ArticleView, error) {
	article, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// at the ends of the feed the neighbor is the article itself
	prev, err := s.repo.Neighbor(ctx, article.ID, -1)
	if errors.Is(err, newspkg.ErrNotFound) {
		prev = article
	} else if err != nil {
		return nil, err
	}
	next, err := s.repo.Neighbor(ctx, article.ID, 1)
	if errors.Is(err, newspkg.ErrNotFound) {
		next = article
	} else if err != nil {
		return nil, err
	}

	return &newspkg.ArticleView{Article: article, Prev: prev, Next: next}, nil
}
