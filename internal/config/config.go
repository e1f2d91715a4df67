package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration for the billing server. Everything
// is read from the environment with development defaults; only DATABASE_URL
// is mandatory.
type Config struct {
	Port        int
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	// TaxRate is the fractional tax rate applied to every order subtotal.
	TaxRate float64

	// Catalog maps product names to their default unit prices.
	Catalog map[string]float64
}

// DefaultCatalog is the built-in product catalog, overridable via CATALOG.
func DefaultCatalog() map[string]float64 {
	return map[string]float64{
		"Frames":        300,
		"Glass":         200,
		"Paintings":     400,
		"Custom Design": 500,
	}
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           5000,
		RedisAddr:      "localhost:6379",
		MinioEndpoint:  "localhost:9000",
		MinioAccessKey: "minioadmin",
		MinioSecretKey: "minioadmin",
		MinioBucket:    "invoices",
		TaxRate:        0.18,
		Catalog:        DefaultCatalog(),
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.RedisDB = db
		}
	}

	if endpoint := os.Getenv("MINIO_ENDPOINT"); endpoint != "" {
		cfg.MinioEndpoint = endpoint
	}
	if key := os.Getenv("MINIO_ACCESS_KEY"); key != "" {
		cfg.MinioAccessKey = key
	}
	if key := os.Getenv("MINIO_SECRET_KEY"); key != "" {
		cfg.MinioSecretKey = key
	}
	cfg.MinioUseSSL = os.Getenv("MINIO_USE_SSL") == "true"
	if bucket := os.Getenv("MINIO_BUCKET"); bucket != "" {
		cfg.MinioBucket = bucket
	}

	if rateStr := os.Getenv("TAX_RATE"); rateStr != "" {
		rate, err := strconv.ParseFloat(rateStr, 64)
		if err != nil || rate < 0 || rate >= 1 {
			return nil, fmt.Errorf("invalid TAX_RATE %q: must be a fraction in [0,1)", rateStr)
		}
		cfg.TaxRate = rate
	}

	if catalogStr := os.Getenv("CATALOG"); catalogStr != "" {
		catalog, err := ParseCatalog(catalogStr)
		if err != nil {
			return nil, err
		}
		cfg.Catalog = catalog
	}

	return cfg, nil
}

// ParseCatalog parses a catalog specification of the form
// "Frames:300,Glass:200". Whitespace around names and prices is ignored.
func ParseCatalog(s string) (map[string]float64, error) {
	catalog := make(map[string]float64)
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		idx := strings.LastIndex(entry, ":")
		if idx <= 0 {
			return nil, fmt.Errorf("invalid catalog entry %q: want name:price", entry)
		}
		name := strings.TrimSpace(entry[:idx])
		price, err := strconv.ParseFloat(strings.TrimSpace(entry[idx+1:]), 64)
		if err != nil || price < 0 {
			return nil, fmt.Errorf("invalid catalog price in %q", entry)
		}
		catalog[name] = price
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("catalog specification %q has no entries", s)
	}
	return catalog, nil
}

// TaxRatePercent formats the tax rate for display, e.g. "18%".
func (c *Config) TaxRatePercent() string {
	return strconv.FormatFloat(c.TaxRate*100, 'f', -1, 64) + "%"
}
