package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	catalogpkg "github.com/mikios34/kpopshop-backend/catalog"
)

type CatalogHandler struct {
	service catalogpkg.Service
}

func NewCatalogHandler(svc catalogpkg.Service) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// pageParam parses the 1-indexed `trang` query parameter. ok is false for
// anything that is not a positive integer.
func pageParam(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("trang", "1")
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

func (h *CatalogHandler) Categories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		categories, err := h.service.Categories(ctx)
		if err != nil {
			internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"title":     "Chuyên Mục Sản Phẩm",
			"chuyenmuc": categories,
		})
	}
}

func (h *CatalogHandler) CategoryProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := pageParam(c)
		if !ok {
			notFoundPage(c)
			return
		}
		sort := catalogpkg.SortKey(c.Query("sap_xep"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.CategoryProducts(ctx, c.Param("slug"), page, sort)
		switch {
		case errors.Is(err, catalogpkg.ErrNotFound), errors.Is(err, catalogpkg.ErrPageOutOfRange):
			notFoundPage(c)
		case err != nil:
			internalError(c, err)
		default:
			c.JSON(http.StatusOK, gin.H{
				"title":          "Chuyên Mục " + result.Category.Name,
				"sanpham":        result.Items,
				"page":           result.Page,
				"len_page_count": result.PageCount,
			})
		}
	}
}

func (h *CatalogHandler) ProductDetail() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		product, err := h.service.ProductBySlug(ctx, c.Param("slug"))
		switch {
		case errors.Is(err, catalogpkg.ErrNotFound):
			notFoundPage(c)
		case err != nil:
			internalError(c, err)
		default:
			c.JSON(http.StatusOK, gin.H{
				"title":   product.Name,
				"sanpham": product,
			})
		}
	}
}
