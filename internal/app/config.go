package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lyralearn/workshop-backend/internal/gateway"
	"github.com/lyralearn/workshop-backend/internal/platform/logger"
	"github.com/lyralearn/workshop-backend/internal/utils"
)

type Config struct {
	Env         string
	Version     string
	HTTPAddr    string
	CORSOrigins []string

	// CatalogFile optionally adds workshops beyond the built-ins.
	CatalogFile string

	Gateway gateway.Config
}

// fileConfig is the optional YAML overlay. Environment variables win
// over file values; the file covers settings awkward to express in env
// (origin lists, long URLs).
type fileConfig struct {
	HTTPAddr    string   `yaml:"http_addr"`
	CORSOrigins []string `yaml:"cors_origins"`
	CatalogFile string   `yaml:"catalog_file"`
	Gateway     struct {
		BaseURL        string `yaml:"base_url"`
		Path           string `yaml:"path"`
		APIKey         string `yaml:"api_key"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"gateway"`
}

func LoadConfig(log *logger.Logger) (Config, error) {
	var fc fileConfig
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		log.Info("Loaded config file", "path", path)
	}

	cfg := Config{
		Env:         utils.GetEnv("APP_ENV", "development", log),
		Version:     utils.GetEnv("APP_VERSION", "dev", log),
		HTTPAddr:    utils.GetEnv("HTTP_ADDR", firstNonEmpty(fc.HTTPAddr, ":8080"), log),
		CatalogFile: utils.GetEnv("WORKSHOP_CATALOG_FILE", fc.CatalogFile, log),
	}

	if raw := utils.GetEnv("CORS_ORIGINS", "", log); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if o := strings.TrimSpace(origin); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	} else {
		cfg.CORSOrigins = fc.CORSOrigins
	}

	timeoutSec := utils.GetEnvAsInt("GATEWAY_TIMEOUT_SECONDS", fc.Gateway.TimeoutSeconds, log)
	if timeoutSec <= 0 {
		timeoutSec = 30
	}
	cfg.Gateway = gateway.Config{
		BaseURL: utils.GetEnv("GATEWAY_BASE_URL", fc.Gateway.BaseURL, log),
		Path:    utils.GetEnv("GATEWAY_PATH", fc.Gateway.Path, log),
		APIKey:  utils.GetEnv("GATEWAY_API_KEY", fc.Gateway.APIKey, log),
		Timeout: time.Duration(timeoutSec) * time.Second,
	}
	if cfg.Gateway.BaseURL == "" {
		return Config{}, fmt.Errorf("GATEWAY_BASE_URL is required")
	}

	return cfg, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
