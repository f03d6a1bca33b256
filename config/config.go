package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Admin  AdminConfig  `yaml:"admin"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port                int     `yaml:"port"`
	RateLimitPerSec     float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst      int     `yaml:"rate_limit_burst"`
	MenuCacheTTLSeconds int     `yaml:"menu_cache_ttl_seconds"`
}

// StoreConfig holds the paths of the two durable stores.
type StoreConfig struct {
	MenuFile  string `yaml:"menu_file"`
	OrderFile string `yaml:"order_file"`
}

// AdminConfig supplies the operator capability token. The token is opaque to
// the rest of the system; deployments replace the value, not the mechanism.
type AdminConfig struct {
	Token string `yaml:"token"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.MenuCacheTTLSeconds <= 0 {
		cfg.Server.MenuCacheTTLSeconds = 60
	}

	if cfg.Store.MenuFile == "" {
		log.Printf("store.menu_file is not set; defaulting to ./menu_config.json")
		cfg.Store.MenuFile = "menu_config.json"
	}
	if cfg.Store.OrderFile == "" {
		log.Printf("store.order_file is not set; defaulting to ./orders.csv")
		cfg.Store.OrderFile = "orders.csv"
	}

	return &cfg, nil
}
