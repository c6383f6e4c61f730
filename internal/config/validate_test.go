package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	if err := Validate(cfg, t.TempDir()); err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != DefaultReadTimeout {
		t.Errorf("ReadTimeout = %d", cfg.Server.ReadTimeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Level = %q", cfg.Log.Level)
	}
}

func TestValidate_LevelCaseInsensitive(t *testing.T) {
	cfg := &Config{Log: Log{Level: "DEBUG"}}
	if err := Validate(cfg, t.TempDir()); err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q", cfg.Log.Level)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantSub string
	}{
		{"unknown level", Config{Log: Log{Level: "trace"}}, "log.level"},
		{"bad addr", Config{Server: Server{Addr: "localhost"}}, "host:port"},
		{"negative timeout", Config{Server: Server{ReadTimeout: -1}}, "read-timeout must be >= 0"},
		{"blank origin", Config{Server: Server{AllowedOrigins: []string{" "}}}, "allowed-origins"},
		{"missing catalog", Config{Catalog: "nope"}, "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := Validate(&cfg, t.TempDir())
			if err == nil || !strings.Contains(err.Error(), tt.wantSub) {
				t.Fatalf("got %v, want error containing %q", err, tt.wantSub)
			}
			if !strings.HasPrefix(err.Error(), "config: ") {
				t.Errorf("error %q lacks config prefix", err)
			}
		})
	}
}

func TestValidate_CatalogMustBeDir(t *testing.T) {
	root := t.TempDir()
	os.WriteFile(filepath.Join(root, "file"), []byte("x"), 0644)
	cfg := &Config{Catalog: "file"}
	if err := Validate(cfg, root); err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_CatalogRelativeToRoot(t *testing.T) {
	root := t.TempDir()
	os.MkdirAll(filepath.Join(root, "docs", "catalog"), 0755)
	cfg := &Config{Catalog: "docs/catalog"}
	if err := Validate(cfg, root); err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.CatalogDir(root), filepath.Join(root, "docs", "catalog"); got != want {
		t.Errorf("CatalogDir = %q, want %q", got, want)
	}
}

func TestCatalogDir_EmbeddedAndAbsolute(t *testing.T) {
	if got := (&Config{}).CatalogDir("/x"); got != "" {
		t.Errorf("embedded CatalogDir = %q", got)
	}
	abs := filepath.Join(t.TempDir(), "cat")
	if got := (&Config{Catalog: abs}).CatalogDir("/x"); got != abs {
		t.Errorf("absolute CatalogDir = %q", got)
	}
}
