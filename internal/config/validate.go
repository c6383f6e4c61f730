package config

import (
	"fmt"
	"net"
	"os"
	"strings"
)

const (
	DefaultAddr        = "127.0.0.1:8080"
	DefaultReadTimeout = 10
	DefaultLogLevel    = "info"
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config, projectRoot string) error {
	if cfg.Catalog != "" {
		dir := cfg.CatalogDir(projectRoot)
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("config: catalog directory %q not found", dir)
		}
		if !info.IsDir() {
			return fmt.Errorf("config: catalog %q is not a directory", dir)
		}
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if _, _, err := net.SplitHostPort(cfg.Server.Addr); err != nil {
		return fmt.Errorf("config: server.addr %q must be host:port", cfg.Server.Addr)
	}

	if cfg.Server.ReadTimeout < 0 {
		return fmt.Errorf("config: server.read-timeout must be >= 0")
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}

	for _, o := range cfg.Server.AllowedOrigins {
		if strings.TrimSpace(o) == "" {
			return fmt.Errorf("config: 'server.allowed-origins' entries must be non-empty")
		}
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("config: log.level %q unknown (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	return nil
}
