package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	authrepo "github.com/mikios34/kpopshop-backend/auth/repository"
	authsvc "github.com/mikios34/kpopshop-backend/auth/service"
	cartrepo "github.com/mikios34/kpopshop-backend/cart/repository"
	cartsvc "github.com/mikios34/kpopshop-backend/cart/service"
	catalogrepo "github.com/mikios34/kpopshop-backend/catalog/repository"
	catalogsvc "github.com/mikios34/kpopshop-backend/catalog/service"
	"github.com/mikios34/kpopshop-backend/config"
	api "github.com/mikios34/kpopshop-backend/handler"
	"github.com/mikios34/kpopshop-backend/middleware"
	newsrepo "github.com/mikios34/kpopshop-backend/news/repository"
	newssvc "github.com/mikios34/kpopshop-backend/news/service"
	orderrepo "github.com/mikios34/kpopshop-backend/order/repository"
	ordersvc "github.com/mikios34/kpopshop-backend/order/service"
	pricingrepo "github.com/mikios34/kpopshop-backend/pricing/repository"
	pricingsvc "github.com/mikios34/kpopshop-backend/pricing/service"
	"github.com/mikios34/kpopshop-backend/realtime"
	websiterepo "github.com/mikios34/kpopshop-backend/website/repository"
	websitesvc "github.com/mikios34/kpopshop-backend/website/service"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cf, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	db, err := setupDatabase(cf)
	if err != nil {
		log.Fatal().Err(err).Msg("setup database")
	}

	hub := realtime.NewHub(log)

	// repositories + services
	pricingService := pricingsvc.NewPricingService(pricingrepo.NewGormFeeRepo(db))
	cartRepo := cartrepo.NewGormCartRepo(db)
	cartService := cartsvc.NewCartService(cartRepo)
	orderService := ordersvc.NewOrderService(orderrepo.NewGormOrderRepo(db), cartRepo, pricingService)
	catalogService := catalogsvc.NewCatalogService(catalogrepo.NewGormCatalogRepo(db))
	newsService := newssvc.NewNewsService(newsrepo.NewGormNewsRepo(db))
	websiteService := websitesvc.NewWebsiteService(websiterepo.NewGormWebsiteRepo(db))
	authService := authsvc.NewAuthService(authrepo.NewGormAuthRepo(db), cf.JWTSecret)

	// handlers
	homeHandler := api.NewHomeHandler(websiteService)
	catalogHandler := api.NewCatalogHandler(catalogService)
	newsHandler := api.NewNewsHandler(newsService)
	cartHandler := api.NewCartHandler(cartService, pricingService)
	orderHandler := api.NewOrderHandler(orderService, hub)
	authHandler := api.NewAuthHandler(authService)
	wsHandler := api.NewWSHandler(hub)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.Authenticate(cf.JWTSecret))

	r.GET("/", homeHandler.Home())
	r.GET("/chuyen-muc", catalogHandler.Categories())
	r.GET("/chuyen-muc/:slug", catalogHandler.CategoryProducts())
	r.GET("/san-pham/:slug", catalogHandler.ProductDetail())
	r.GET("/tin-tuc", newsHandler.List())
	r.GET("/tin-tuc/:slug", newsHandler.Detail())

	r.GET("/gio-hang", cartHandler.ViewCart())
	r.GET("/gio-hang/them-san-pham", cartHandler.AddLine())
	r.POST("/gio-hang/them-san-pham", cartHandler.AddLine())
	r.POST("/gio-hang/cap-nhat-so-luong", cartHandler.UpdateQuantity())
	r.GET("/gio-hang/cap-nhat-mau", cartHandler.UpdateColor())
	r.POST("/gio-hang/cap-nhat-mau", cartHandler.UpdateColor())
	r.GET("/gio-hang/xoa-san-pham/:id", cartHandler.DeleteLine())
	r.GET("/gio-hang/kiem-tra", cartHandler.Validate())
	r.POST("/gio-hang/kiem-tra", cartHandler.Validate())

	r.GET("/dat-hang", orderHandler.Checkout())
	r.POST("/dat-hang", orderHandler.PlaceOrder())
	r.GET("/khach-hang", orderHandler.CustomerPage())

	r.GET("/ws/orders", middleware.RequireAuth(), wsHandler.OrderSocket())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/register", authHandler.Register())
		v1.POST("/auth/login", authHandler.Login())
	}

	if err := r.Run(":" + cf.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
