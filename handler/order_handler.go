package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikios34/kpopshop-backend/middleware"
	orderpkg "github.com/mikios34/kpopshop-backend/order"
	"github.com/mikios34/kpopshop-backend/realtime"
)

type OrderHandler struct {
	service orderpkg.Service
	hub     *realtime.Hub
}

func NewOrderHandler(svc orderpkg.Service, hub *realtime.Hub) *OrderHandler {
	return &OrderHandler{service: svc, hub: hub}
}

func checkoutContext(view *orderpkg.CheckoutView) gin.H {
	return gin.H{
		"title":     "Đặt hàng",
		"khachhang": view.Customer,
		"giohang":   view.Lines,
		"phiship":   view.Fees.Shipping,
		"phivat":    view.Fees.VAT,
		"thanhtoan": view.Totals.Grand.InexactFloat64(),
	}
}

// Checkout renders the order form. A cart with an unfinished line (no color
// or bad quantity) bounces back to the cart page; a missing fee row is a
// broken shop configuration and renders the not-found page.
func (h *OrderHandler) Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CurrentCustomerID(c)
		if customerID == 0 {
			businessError(c, msgLoginPlease)
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		view, err := h.service.Checkout(ctx, customerID)
		switch {
		case errors.Is(err, orderpkg.ErrCartLineInvalid):
			c.Redirect(http.StatusFound, cartPath)
		case err != nil && feeConfigMessage(err) != "":
			notFoundPage(c)
		case err != nil:
			internalError(c, err)
		default:
			c.JSON(http.StatusOK, checkoutContext(view))
		}
	}
}

// PlaceOrder commits the cart into an order.
func (h *OrderHandler) PlaceOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CurrentCustomerID(c)
		if customerID == 0 {
			businessError(c, msgLoginPlease)
			return
		}

		phone := c.PostForm("sodienthoai")
		if phone == "" {
			notFoundPage(c)
			return
		}
		req := orderpkg.PlaceOrderRequest{
			Phone:   phone,
			Address: c.PostForm("diachi"),
			Note:    c.PostForm("ghichu"),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		placed, err := h.service.PlaceOrder(ctx, customerID, req)
		if errors.Is(err, orderpkg.ErrInvalidPhone) {
			// re-render the form with the inline error; the cart is untouched
			view, verr := h.service.Checkout(ctx, customerID)
			if verr != nil {
				internalError(c, verr)
				return
			}
			body := checkoutContext(view)
			body["errorMessage"] = "Vui Lòng Nhập Số Điện Thoại Hợp Lệ!"
			c.JSON(http.StatusOK, body)
			return
		}
		if err != nil {
			if feeConfigMessage(err) != "" {
				notFoundPage(c)
				return
			}
			internalError(c, err)
			return
		}

		if h.hub != nil {
			_ = h.hub.NotifyCustomer(customerID, realtime.EventOrderPlaced, realtime.OrderPlacedPayload{
				OrderID: placed.ID,
				Code:    placed.Code.String(),
				Total:   placed.Total.String(),
				Status:  string(placed.Status),
			})
		}
		c.Redirect(http.StatusFound, customerPath)
	}
}

// CustomerPage lists the customer's orders, newest first.
func (h *OrderHandler) CustomerPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CurrentCustomerID(c)
		if customerID == 0 {
			businessError(c, msgLoginPlease)
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		orders, err := h.service.ListOrders(ctx, customerID)
		if err != nil {
			internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"title":   "Khách hàng",
			"donhang": orders,
		})
	}
}
