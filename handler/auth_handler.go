package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authpkg "github.com/mikios34/kpopshop-backend/auth"
)

type AuthHandler struct {
	service authpkg.Service
}

func NewAuthHandler(svc authpkg.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

type registerPayload struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type loginPayload struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func principalBody(p *authpkg.Principal) gin.H {
	return gin.H{
		"user_id":     p.UserID,
		"customer_id": p.CustomerID,
		"role":        p.Role,
		"first_name":  p.FirstName,
		"last_name":   p.LastName,
		"phone":       p.Phone,
		"token":       p.Token,
	}
}

func (h *AuthHandler) Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		principal, err := h.service.Register(ctx, authpkg.RegisterRequest{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Phone:     p.Phone,
			Password:  p.Password,
		})
		switch {
		case errors.Is(err, authpkg.ErrPhoneTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "phone already registered"})
		case err != nil:
			internalError(c, err)
		default:
			c.JSON(http.StatusCreated, principalBody(principal))
		}
	}
}

func (h *AuthHandler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p loginPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		principal, err := h.service.Login(ctx, authpkg.LoginRequest{Phone: p.Phone, Password: p.Password})
		switch {
		case errors.Is(err, authpkg.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid phone or password"})
		case err != nil:
			internalError(c, err)
		default:
			c.JSON(http.StatusOK, principalBody(principal))
		}
	}
}
