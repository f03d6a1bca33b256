package api

import (
	"github.com/patrickmn/go-cache"

	"github.com/Pangolin1100/class-order-system/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	menu      *store.ConfigStore
	ledger    *store.Ledger
	menuCache *cache.Cache
}

// NewHandler creates a new API handler. menuCache is the response cache in
// front of GET /api/menu; the menu-edit handler flushes it on a successful
// save so the order-entry page sees the new menu immediately.
func NewHandler(menu *store.ConfigStore, ledger *store.Ledger, menuCache *cache.Cache) *Handler {
	return &Handler{
		menu:      menu,
		ledger:    ledger,
		menuCache: menuCache,
	}
}
