package news

import (
	"context"

	"github.com/mikios34/kpopshop-backend/entity"
)

// Filter scopes a news listing. Search matches a title substring,
// case-insensitively. Limit <= 0 means no paging.
type Filter struct {
	Search string
	Offset int
	Limit  int
}

// Repository specifies news related database operations.
type Repository interface {
	// List returns one page of articles plus the unpaged total.
	List(ctx context.Context, filter Filter) ([]entity.NewsArticle, int64, error)

	GetBySlug(ctx context.Context, slug string) (*entity.NewsArticle, error)

	// Neighbor returns the closest article strictly before (dir < 0) or
	// after (dir > 0) the given id, or ErrNotFound when none exists.
	Neighbor(ctx context.Context, id uint, dir int) (*entity.NewsArticle, error)
}
