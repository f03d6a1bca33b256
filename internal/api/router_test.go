package api

import (
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Pangolin1100/class-order-system/config"
	"github.com/Pangolin1100/class-order-system/internal/store"
)

const testAdminToken = "test-token"

// setupRouter wires a full router against stores in a temp directory.
func setupRouter(t *testing.T) (*gin.Engine, *store.Ledger, *store.ConfigStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:                8080,
			RateLimitPerSec:     1000,
			RateLimitBurst:      1000,
			MenuCacheTTLSeconds: 300,
		},
		Store: config.StoreConfig{
			MenuFile:  filepath.Join(dir, "menu_config.json"),
			OrderFile: filepath.Join(dir, "orders.csv"),
		},
		Admin: config.AdminConfig{Token: testAdminToken},
	}

	menu := store.NewConfigStore(cfg.Store.MenuFile)
	ledger := store.NewLedger(cfg.Store.OrderFile)
	return NewRouter(cfg, menu, ledger), ledger, menu
}
