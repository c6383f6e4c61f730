// Package content loads catalogs from a topic index and topic files, and
// carries the reference catalog compiled into the binary.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/jorge-barreto/refcat/internal/catalog"
	"github.com/jorge-barreto/refcat/internal/topicfile"
	"gopkg.in/yaml.v3"
)

// IndexFile names the file at the root of a catalog source that lists its
// topic files in catalog order.
const IndexFile = "index.yaml"

//go:embed index.yaml topics/*.md
var embedded embed.FS

type index struct {
	Topics []string `yaml:"topics"`
}

// Default builds the catalog embedded in the binary.
func Default() (*catalog.Catalog, error) {
	return Load(embedded)
}

// LoadDir builds a catalog from a directory on disk.
func LoadDir(dir string) (*catalog.Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads IndexFile from fsys and adds every listed topic, in order.
// A duplicate topic id aborts the build with a wrapped
// *catalog.DuplicateIDError.
func Load(fsys fs.FS) (*catalog.Catalog, error) {
	idx, err := readIndex(fsys)
	if err != nil {
		return nil, err
	}

	cat := catalog.New()
	for _, name := range idx.Topics {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading topic: %w", err)
		}
		topic, err := topicfile.Parse(name, data)
		if err != nil {
			return nil, err
		}
		if err := cat.Add(topic); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return cat, nil
}

func readIndex(fsys fs.FS) (*index, error) {
	data, err := fs.ReadFile(fsys, IndexFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", IndexFile, err)
	}
	var idx index
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&idx); err != nil {
		return nil, fmt.Errorf("%s: %w", IndexFile, err)
	}
	if len(idx.Topics) == 0 {
		return nil, fmt.Errorf("%s: at least one topic is required", IndexFile)
	}
	seen := make(map[string]bool)
	for i, name := range idx.Topics {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%s: topic %d: empty path", IndexFile, i+1)
		}
		if !fs.ValidPath(name) || path.Ext(name) != ".md" {
			return nil, fmt.Errorf("%s: topic %q must be a relative .md path", IndexFile, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%s: topic %q listed twice", IndexFile, name)
		}
		seen[name] = true
	}
	return &idx, nil
}
