package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ParsesFile(t *testing.T) {
	root := t.TempDir()
	os.MkdirAll(filepath.Join(root, "catalog"), 0755)
	path := filepath.Join(root, FileName)
	os.WriteFile(path, []byte(`catalog: catalog
server:
  addr: ":9090"
  allowed-origins: ["http://localhost:3000"]
log:
  level: warn
`), 0644)

	cfg, err := Load(path, root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if len(cfg.Server.AllowedOrigins) != 1 {
		t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Server.ReadTimeout != DefaultReadTimeout {
		t.Errorf("ReadTimeout = %d", cfg.Server.ReadTimeout)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Level = %q", cfg.Log.Level)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	os.WriteFile(path, []byte("server: [unclosed"), 0644)
	if _, err := Load(path, filepath.Dir(path)); err == nil {
		t.Fatal("expected error")
	}
}

func TestDiscover_WalksUp(t *testing.T) {
	root := t.TempDir()
	os.WriteFile(filepath.Join(root, FileName), []byte("{}\n"), 0644)
	nested := filepath.Join(root, "a", "b")
	os.MkdirAll(nested, 0755)

	got, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Fatalf("Discover = %q, want %q", got, root)
	}
}

func TestLoadFrom_FallsBackToDefault(t *testing.T) {
	// t.TempDir lives under the system temp dir, which has no config file
	dir := t.TempDir()
	if found, _ := Discover(dir); found != "" {
		t.Skipf("a %s exists above %s", FileName, dir)
	}
	cfg, root, err := LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if root != "" {
		t.Errorf("root = %q, want empty", root)
	}
	if cfg.Server.Addr != DefaultAddr || cfg.Catalog != "" {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFrom_Found(t *testing.T) {
	root := t.TempDir()
	os.WriteFile(filepath.Join(root, FileName), []byte("log:\n  level: error\n"), 0644)
	cfg, got, err := LoadFrom(root)
	if err != nil {
		t.Fatal(err)
	}
	if got != root || cfg.Log.Level != "error" {
		t.Errorf("root = %q, level = %q", got, cfg.Log.Level)
	}
}
