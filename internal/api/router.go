package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/Pangolin1100/class-order-system/config"
	"github.com/Pangolin1100/class-order-system/internal/mw"
	"github.com/Pangolin1100/class-order-system/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, menu *store.ConfigStore, ledger *store.Ledger) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	menuTTL := time.Duration(cfg.Server.MenuCacheTTLSeconds) * time.Second
	menuCache := cache.New(menuTTL, 2*menuTTL)
	caching := mw.Cache(menuCache, menuTTL)

	handler := NewHandler(menu, ledger, menuCache)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Order-entry surface
		api.GET("/menu", caching, handler.GetMenu)
		api.POST("/orders", handler.PostOrder)

		// Operator surface, gated behind the capability token
		admin := api.Group("/admin", mw.RequireAdmin(cfg.Admin.Token))
		{
			admin.GET("/orders", handler.GetOrders)
			admin.PUT("/orders", handler.PutOrders)
			admin.GET("/orders/export", handler.ExportOrders)
			admin.PUT("/menu", handler.PutMenu)
		}
	}

	return r
}
