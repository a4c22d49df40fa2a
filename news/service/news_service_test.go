package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikios34/kpopshop-backend/entity"
	newspkg "github.com/mikios34/kpopshop-backend/news"
)

type fakeNewsRepo struct {
	articles []entity.NewsArticle
}

func (f *fakeNewsRepo) List(ctx context.Context, filter newspkg.Filter) ([]entity.NewsArticle, int64, error) {
	var matched []entity.NewsArticle
	for _, a := range f.articles {
		if filter.Search != "" && !strings.Contains(strings.ToLower(a.Title), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

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

func (f *fakeNewsRepo) GetBySlug(ctx context.Context, slug string) (*entity.NewsArticle, error) {
	for _, a := range f.articles {
		if a.Slug == slug {
			aa := a
			return &aa, nil
		}
	}
	return nil, newspkg.ErrNotFound
}

func (f *fakeNewsRepo) Neighbor(ctx context.Context, id uint, dir int) (*entity.NewsArticle, error) {
	var best *entity.NewsArticle
	for i := range f.articles {
		a := &f.articles[i]
		if dir < 0 && a.ID < id && (best == nil || a.ID > best.ID) {
			best = a
		}
		if dir > 0 && a.ID > id && (best == nil || a.ID < best.ID) {
			best = a
		}
	}
	if best == nil {
		return nil, newspkg.ErrNotFound
	}
	bb := *best
	return &bb, nil
}

func seededNewsRepo(count int) *fakeNewsRepo {
	repo := &fakeNewsRepo{}
	for i := 1; i <= count; i++ {
		repo.articles = append(repo.articles, entity.NewsArticle{
			ID:    uint(i),
			Title: fmt.Sprintf("Bản tin %d", i),
			Slug:  fmt.Sprintf("ban-tin-%d", i),
		})
	}
	return repo
}

func TestListPagination(t *testing.T) {
	svc := NewNewsService(seededNewsRepo(10))

	page1, err := svc.List(context.Background(), 1, "")
	require.NoError(t, err)
	require.Len(t, page1.Items, 8)
	require.Equal(t, 2, page1.PageCount)
	require.Equal(t, uint(10), page1.Items[0].ID, "newest first")

	page2, err := svc.List(context.Background(), 2, "")
	require.NoError(t, err)
	require.Len(t, page2.Items, 2)

	_, err = svc.List(context.Background(), 3, "")
	require.ErrorIs(t, err, newspkg.ErrPageOutOfRange)
	_, err = svc.List(context.Background(), 0, "")
	require.ErrorIs(t, err, newspkg.ErrPageOutOfRange)
}

func TestListEmptyFeedHasOnePage(t *testing.T) {
	svc := NewNewsService(seededNewsRepo(0))

	page, err := svc.List(context.Background(), 1, "")
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Equal(t, 1, page.PageCount)
}

func TestListSearchFiltersByTitle(t *testing.T) {
	repo := seededNewsRepo(3)
	repo.articles[0].Title = "BTS comeback"
	svc := NewNewsService(repo)

	page, err := svc.List(context.Background(), 1, "bts")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "bts", page.Search)
}

func TestBySlugNeighbors(t *testing.T) {
	svc := NewNewsService(seededNewsRepo(3))

	view, err := svc.BySlug(context.Background(), "ban-tin-2")
	require.NoError(t, err)
	require.Equal(t, uint(2), view.Article.ID)
	require.Equal(t, uint(1), view.Prev.ID)
	require.Equal(t, uint(3), view.Next.ID)
}

func TestBySlugNeighborsClampToSelfAtEnds(t *testing.T) {
	svc := NewNewsService(seededNewsRepo(3))

	first, err := svc.BySlug(context.Background(), "ban-tin-1")
	require.NoError(t, err)
	require.Equal(t, uint(1), first.Prev.ID)
	require.Equal(t, uint(2), first.Next.ID)

	last, err := svc.BySlug(context.Background(), "ban-tin-3")
	require.NoError(t, err)
	require.Equal(t, uint(2), last.Prev.ID)
	require.Equal(t, uint(3), last.Next.ID)
}

func TestBySlugUnknown(t *testing.T) {
	svc := NewNewsService(seededNewsRepo(1))
	_, err := svc.BySlug(context.Background(), "khong-co")
	require.ErrorIs(t, err, newspkg.ErrNotFound)
}
