package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jorge-barreto/refcat/internal/config"
	"github.com/jorge-barreto/refcat/internal/content"
)

func TestInit_CreatesFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for _, path := range []string{
		config.FileName,
		CatalogDir,
		filepath.Join(CatalogDir, "topics"),
		filepath.Join(CatalogDir, content.IndexFile),
		filepath.Join(CatalogDir, "topics", "hello.md"),
	} {
		full := filepath.Join(dir, path)
		info, err := os.Stat(full)
		if err != nil {
			t.Fatalf("%s not created: %v", path, err)
		}
		if !info.IsDir() && info.Size() == 0 {
			t.Fatalf("%s is empty", path)
		}
	}
}

func TestInit_GeneratedConfigIsValid(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName), dir)
	if err != nil {
		t.Fatalf("config.Load failed on generated config: %v", err)
	}
	if got, want := cfg.CatalogDir(dir), filepath.Join(dir, CatalogDir); got != want {
		t.Fatalf("CatalogDir = %q, want %q", got, want)
	}
}

func TestInit_GeneratedCatalogLoads(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cat, err := content.LoadDir(filepath.Join(dir, CatalogDir))
	if err != nil {
		t.Fatalf("LoadDir failed on generated catalog: %v", err)
	}
	topic, err := cat.Get("hello")
	if err != nil {
		t.Fatal(err)
	}
	if len(topic.Examples) != 1 {
		t.Fatalf("expected 1 example, got %d", len(topic.Examples))
	}
	if out, ok := topic.Examples[0].Output(); !ok || out != "Hello, World!" {
		t.Fatalf("output = %q, %v", out, ok)
	}
	if !strings.Contains(topic.Body, "topic body") {
		t.Fatalf("body = %q", topic.Body)
	}
}

func TestInit_FailsIfConfigExists(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, config.FileName), []byte("{}\n"), 0644)

	err := Init(dir)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected already exists error, got %v", err)
	}
}

func TestInit_FailsIfCatalogExists(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, CatalogDir), 0755)

	err := Init(dir)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected already exists error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
		t.Fatal("config written despite failure")
	}
}
