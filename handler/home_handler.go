package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	websitepkg "github.com/mikios34/kpopshop-backend/website"
)

type HomeHandler struct {
	service websitepkg.Service
}

func NewHomeHandler(svc websitepkg.Service) *HomeHandler {
	return &HomeHandler{service: svc}
}

// Home renders the landing page. An empty shop still renders, with empty
// collections.
func (h *HomeHandler) Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		view, err := h.service.Home(ctx)
		if err != nil {
			internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"title":           "Cửa Hàng KPOP Chất Lượng, Giá Rẻ!",
			"sanpham":         view.Products,
			"sanpham_banchay": view.TopProducts,
			"tintuc":          view.News,
			"slides":          view.Slides,
			"banner_top":      view.TopBanners,
			"banner_mid":      view.MidBanners,
			"banner_bottom":   view.BottomBanners,
		})
	}
}
