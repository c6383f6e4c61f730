package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/refcat/internal/config"
	"github.com/jorge-barreto/refcat/internal/content"
	"github.com/jorge-barreto/refcat/internal/ux"
)

// CatalogDir is the directory Init creates next to the config file.
const CatalogDir = "catalog"

var configTemplate = `# refcat configuration
catalog: catalog

server:
  addr: 127.0.0.1:8080
  read-timeout: 10
  allowed-origins: []

log:
  level: info
`

var indexTemplate = `# Topic files in catalog order.
topics:
  - topics/hello.md
`

var topicTemplate = "---\n" +
	"id: hello\n" +
	"title: Hello, World\n" +
	"category: Introduction\n" +
	"summary: The smallest complete program\n" +
	"keywords: [main, print]\n" +
	"---\n" +
	"Prose outside code fences becomes the topic body. Each fenced block is an\n" +
	"example, and an output fence right after one records its expected output.\n" +
	"\n" +
	"```go\n" +
	"fmt.Println(\"Hello, World!\")\n" +
	"```\n" +
	"\n" +
	"```output\n" +
	"Hello, World!\n" +
	"```\n"

// Init writes a config file and a one-topic catalog into targetDir.
func Init(targetDir string) error {
	configPath := filepath.Join(targetDir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, targetDir)
	}
	catalogDir := filepath.Join(targetDir, CatalogDir)
	if _, err := os.Stat(catalogDir); err == nil {
		return fmt.Errorf("%s directory already exists in %s", CatalogDir, targetDir)
	}

	topicsDir := filepath.Join(catalogDir, "topics")
	if err := os.MkdirAll(topicsDir, 0755); err != nil {
		return fmt.Errorf("creating %s/topics: %w", CatalogDir, err)
	}

	files := []struct {
		path string
		data string
	}{
		{filepath.Join(catalogDir, content.IndexFile), indexTemplate},
		{filepath.Join(topicsDir, "hello.md"), topicTemplate},
		{configPath, configTemplate},
	}
	for _, f := range files {
		if err := writeFileAtomic(f.path, []byte(f.data), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", filepath.Base(f.path), err)
		}
	}

	fmt.Printf("\n%s%s✓ Initialized refcat catalog%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Created:\n")
	fmt.Printf("    %s%s%s                  — configuration\n", ux.Cyan, config.FileName, ux.Reset)
	fmt.Printf("    %scatalog/index.yaml%s            — topic order\n", ux.Cyan, ux.Reset)
	fmt.Printf("    %scatalog/topics/hello.md%s       — example topic\n\n", ux.Cyan, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Add topic files under %scatalog/topics/%s\n", ux.Cyan, ux.Reset)
	fmt.Printf("    2. List them in %scatalog/index.yaml%s\n", ux.Cyan, ux.Reset)
	fmt.Printf("    3. Run %srefcat check%s to validate\n\n", ux.Cyan, ux.Reset)

	return nil
}
