package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikios34/kpopshop-backend/pricing"
)

const (
	msgPageNotFound = "Không Tìm Thấy Trang!"
	msgLoginPlease  = "Vui Lòng Đăng Nhập!"

	cartPath     = "/gio-hang"
	customerPath = "/khach-hang"
)

// notFoundPage is the storefront's catch-all for broken links, bad page
// numbers and unknown slugs.
func notFoundPage(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": msgPageNotFound})
}

// businessError reports a domain failure the way the storefront always has:
// an OK response carrying a localized message.
func businessError(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"error": msg})
}

// feeConfigMessage renders the admin-facing message for a missing fee row,
// or "" when the error is something else.
func feeConfigMessage(err error) string {
	var cfgErr *pricing.ConfigError
	if !errors.As(err, &cfgErr) {
		return ""
	}
	if cfgErr.Kind == pricing.FeeTypeMissing {
		return fmt.Sprintf("Loại thông tin (%s) không tồn tại!", cfgErr.Key)
	}
	return fmt.Sprintf("Thông tin (%s) không tồn tại!", cfgErr.Key)
}

func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
