package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authpkg "github.com/mikios34/kpopshop-backend/auth"
)

const customerIDKey = "customer_id"

// Authenticate parses a Bearer JWT when present and places the customer id
// into the request context. It never aborts: storefront pages respond with
// their own localized login prompts when no customer is attached.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			claims, err := authpkg.ParseAndValidate(secret, header[len("Bearer "):])
			if err == nil && claims.CustomerID != 0 {
				c.Set(customerIDKey, claims.CustomerID)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 unless Authenticate attached a customer.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentCustomerID(c) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}
		c.Next()
	}
}

// CurrentCustomerID returns the authenticated customer id, or 0 when the
// request is anonymous.
func CurrentCustomerID(c *gin.Context) uint {
	v, ok := c.Get(customerIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
