package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	cartpkg "github.com/mikios34/kpopshop-backend/cart"
	"github.com/mikios34/kpopshop-backend/middleware"
	"github.com/mikios34/kpopshop-backend/pricing"
)

type CartHandler struct {
	service cartpkg.Service
	pricing pricing.Service
}

func NewCartHandler(svc cartpkg.Service, pricingSvc pricing.Service) *CartHandler {
	return &CartHandler{service: svc, pricing: pricingSvc}
}

// param reads a form field on POST and a query parameter otherwise; the cart
// entry points accept both.
func param(c *gin.Context, name string) string {
	if c.Request.Method == http.MethodPost {
		return c.PostForm(name)
	}
	return c.Query(name)
}

// ViewCart renders the cart page: lines, all colors for the color picker and
// the priced totals.
func (h *CartHandler) ViewCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CurrentCustomerID(c)
		if customerID == 0 {
			businessError(c, msgLoginPlease)
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		lines, err := h.service.List(ctx, customerID)
		if err != nil {
			internalError(c, err)
			return
		}
		colors, err := h.service.ListColors(ctx)
		if err != nil {
			internalError(c, err)
			return
		}

		fees, err := h.pricing.Fees(ctx)
		if err != nil {
			if msg := feeConfigMessage(err); msg != "" {
				businessError(c, msg)
				return
			}
			internalError(c, err)
			return
		}
		// an empty cart renders zero totals; only the checkout view
		// collapses to the shipping fee
		var totalPrice, grand float64
		if len(lines) > 0 {
			totals, err := h.pricing.CartTotals(lines, fees)
			if err != nil {
				internalError(c, err)
				return
			}
			totalPrice = totals.Merchandise.InexactFloat64()
			grand = totals.Grand.InexactFloat64()
		}

		c.JSON(http.StatusOK, gin.H{
			"title":       "Giỏ hàng",
			"giohang":     lines,
			"mausac":      colors,
			"phiship":     fees.Shipping,
			"phivat":      fees.VAT,
			"total_price": totalPrice,
			"thanhtoan":   grand,
		})
	}
}

// AddLine adds a product to the cart. Both GET and POST are accepted; the
// quantity defaults to 1 when omitted.
func (h *CartHandler) AddLine() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CurrentCustomerID(c)
		if customerID == 0 {
			businessError(c, "Vui Lòng Đăng Nhập Để Thêm Sản Phẩm Vào Giỏ Hàng!")
			return
		}

		rawProduct := param(c, "masanpham")
		if rawProduct == "" {
			businessError(c, "masanpham không được để trống!")
			return
		}
		productID, err := strconv.ParseUint(rawProduct, 10, 64)
		if err != nil {
			businessError(c, "masanpham phải là số nguyên!")
			return
		}

		quantity := 1
		if raw := param(c, "soluong"); raw != "" {
			quantity, err = strconv.Atoi(raw)
			if err != nil || quantity <= 0 {
				businessError(c, "Số Lượng Sản Phẩm Phải Lớn Hơn 0!")
				return
			}
		}

		var colorID *uint
		if raw := param(c, "mausac"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err == nil && parsed > 0 {
				id := uint(parsed)
				colorID = &id
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		_, err = h.service.Add(ctx, customerID, cartpkg.AddLineRequest{
			ProductID: uint(productID),
			ColorID:   colorID,
			Quantity:  quantity,
		})
		switch {
		case errors.Is(err, cartpkg.ErrProductNotFound):
			businessError(c, "Sản phẩm không tồn tại!")
		case errors.Is(err, cartpkg.ErrDuplicateLine):
			businessError(c, "Sản Phẩm Đã Có Trong Giỏ Hàng!")
		case err != nil:
			internalError(c, err)
		default:
			c.JSON(http.StatusOK, gin.H{"success": "Thêm Sản Phẩm Vào Giỏ Hàng Thành Công!"})
		}
	}
}

// UpdateQuantity overwrites one line's quantity.
func (h *CartHandler) UpdateQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CurrentCustomerID(c)
		if customerID == 0 {
			businessError(c, msgLoginPlease)
			return
		}

		rawLine := c.PostForm("magiohang")
		if rawLine == "" {
			businessError(c, "magiohang không được để trống!")
			return
		}
		rawQuantity := c.PostForm("soluong")
		if rawQuantity == "" {
			businessError(c, "soluong không được để trống!")
			return
		}
		quantity, err := strconv.Atoi(rawQuantity)
		if err != nil || quantity <= 0 {
			businessError(c, "Số Lượng Phải Lớn Hơn 0!")
			return
		}
		lineID, err := strconv.ParseUint(rawLine, 10, 64)
		if err != nil {
			businessError(c, "Giỏ hàng không tồn tại!")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		err = h.service.UpdateQuantity(ctx, customerID, uint(lineID), quantity)
		switch {
		case errors.Is(err, cartpkg.ErrLineNotFound):
			businessError(c, "Giỏ hàng không tồn tại!")
		case err != nil:
			internalError(c, err)
		default:
			c.JSON(http.StatusOK, gin.H{"success": "Cập Nhật Số Lượng Sản Phẩm Thành Công!"})
		}
	}
}

// UpdateColor overwrites one line's color. Non-POST requests bounce back to
// the cart page.
func (h *CartHandler) UpdateColor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Redirect(http.StatusFound, cartPath)
			return
		}
		customerID := middleware.CurrentCustomerID(c)
		if customerID == 0 {
			businessError(c, msgLoginPlease)
			return
		}

		rawLine := c.PostForm("magiohang")
		if rawLine == "" {
			businessError(c, "magiohang không được để trống!")
			return
		}
		rawColor := c.PostForm("mamau")
		if rawColor == "" {
			businessError(c, "mamau không được để trống!")
			return
		}
		colorID, err := strconv.ParseInt(rawColor, 10, 64)
		if err != nil || colorID <= 0 {
			businessError(c, "Vui Lòng Chọn Lại Màu Hợp Lệ!")
			return
		}
		lineID, err := strconv.ParseUint(rawLine, 10, 64)
		if err != nil {
			businessError(c, "Giỏ hàng không tồn tại!")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		err = h.service.UpdateColor(ctx, customerID, uint(lineID), uint(colorID))
		switch {
		case errors.Is(err, cartpkg.ErrLineNotFound):
			businessError(c, "Giỏ hàng không tồn tại!")
		case errors.Is(err, cartpkg.ErrColorNotFound):
			businessError(c, "Màu sắc không tồn tại!")
		case err != nil:
			internalError(c, err)
		default:
			c.JSON(http.StatusOK, gin.H{"success": "Cập Nhật Màu Sản Phẩm Thành Công!"})
		}
	}
}

// DeleteLine removes one line and sends the shopper back to the cart. Only
// the success path redirects; failures render a localized message.
func (h *CartHandler) DeleteLine() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CurrentCustomerID(c)
		if customerID == 0 {
			businessError(c, msgLoginPlease)
			return
		}
		lineID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			businessError(c, "Sản phẩm không tồn tại trong giỏ hàng!")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		err = h.service.Remove(ctx, customerID, uint(lineID))
		switch {
		case errors.Is(err, cartpkg.ErrLineNotFound):
			businessError(c, "Sản phẩm không tồn tại trong giỏ hàng!")
		case err != nil:
			internalError(c, err)
		default:
			c.Redirect(http.StatusFound, cartPath)
		}
	}
}

// Validate checks every line before checkout. Non-POST requests bounce back
// to the cart page.
func (h *CartHandler) Validate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Redirect(http.StatusFound, cartPath)
			return
		}
		customerID := middleware.CurrentCustomerID(c)
		if customerID == 0 {
			businessError(c, msgLoginPlease)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		err := h.service.Validate(ctx, customerID)
		switch {
		case errors.Is(err, cartpkg.ErrMissingColor):
			businessError(c, "Vui Lòng Chọn Đủ Màu Sắc Cho Các Sản Phẩm!")
		case errors.Is(err, cartpkg.ErrNonPositiveQuantity):
			businessError(c, "Số Lượng Sản Phẩm Phải Lớn Hơn 0!")
		case err != nil:
			internalError(c, err)
		default:
			c.JSON(http.StatusOK, gin.H{"success": "Giỏ Hàng Hợp Lệ!"})
		}
	}
}
