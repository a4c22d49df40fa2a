package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	newspkg "github.com/mikios34/kpopshop-backend/news"
)

type NewsHandler struct {
	service newspkg.Service
}

func NewNewsHandler(svc newspkg.Service) *NewsHandler {
	return &NewsHandler{service: svc}
}

func (h *NewsHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := pageParam(c)
		if !ok {
			notFoundPage(c)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.List(ctx, page, c.Query("s"))
		switch {
		case errors.Is(err, newspkg.ErrPageOutOfRange):
			notFoundPage(c)
		case err != nil:
			internalError(c, err)
		default:
			c.JSON(http.StatusOK, gin.H{
				"title":          "Tin Tức",
				"tintuc":         result.Items,
				"page":           result.Page,
				"len_page_count": result.PageCount,
				"s":              result.Search,
			})
		}
	}
}

func (h *NewsHandler) Detail() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		view, err := h.service.BySlug(ctx, c.Param("slug"))
		switch {
		case errors.Is(err, newspkg.ErrNotFound):
			notFoundPage(c)
		case err != nil:
			internalError(c, err)
		default:
			c.JSON(http.StatusOK, gin.H{
				"title":  view.Article.Title,
				"tintuc": view.Article,
				"prev":   view.Prev,
				"next":   view.Next,
			})
		}
	}
}
