package news

import (
	"context"
	"errors"

	"github.com/mikios34/kpopshop-backend/entity"
)

// PageSize is how many articles a news listing page shows.
const PageSize = 8

var (
	ErrNotFound       = errors.New("article not found")
	ErrPageOutOfRange = errors.New("page out of range")
)

// Page is one page of the news listing. PageCount is at least 1.
type Page struct {
	Items     []entity.NewsArticle
	Page      int
	PageCount int
	Search    string
}

// ArticleView is an article plus its listing neighbors. At either end of the
// feed the missing neighbor points back at the article itself.
type ArticleView struct {
	Article *entity.NewsArticle
	Prev    *entity.NewsArticle
	Next    *entity.NewsArticle
}

type Service interface {
	// List returns page `page` (1-indexed) of articles, optionally filtered
	// by a title substring. Pages outside 1..PageCount yield
	// ErrPageOutOfRange, never a clamped page.
	List(ctx context.Context, page int, search string) (*Page, error)

	// BySlug loads an article and its prev/next neighbors by id.
	BySlug(ctx context.Context, slug string) (*ArticleView, error)
}
