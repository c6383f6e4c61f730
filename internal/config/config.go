package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = ".refcat.yaml"

type Server struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed-origins"`
	ReadTimeout    int      `yaml:"read-timeout"` // seconds
}

type Log struct {
	Level string `yaml:"level"`
}

type Config struct {
	Catalog string `yaml:"catalog"` // catalog directory; empty means the embedded catalog
	Server  Server `yaml:"server"`
	Log     Log    `yaml:"log"`
}

// Load reads a YAML config file and returns a validated Config.
func Load(path, projectRoot string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg, projectRoot); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	// defaults only; nothing to reject
	_ = Validate(cfg, "")
	return cfg
}

// Discover walks up from dir looking for FileName. It returns the directory
// holding the file, or "" and no error if none exists up to the root.
func Discover(dir string) (string, error) {
	for {
		_, err := os.Stat(filepath.Join(dir, FileName))
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// LoadFrom discovers the config file from dir and loads it, falling back to
// Default when there is none. The returned root is where the file was found.
func LoadFrom(dir string) (cfg *Config, root string, err error) {
	root, err = Discover(dir)
	if err != nil {
		return nil, "", err
	}
	if root == "" {
		return Default(), "", nil
	}
	cfg, err = Load(filepath.Join(root, FileName), root)
	if err != nil {
		return nil, "", err
	}
	return cfg, root, nil
}

// CatalogDir returns the absolute catalog directory, or "" for the embedded
// catalog.
func (c *Config) CatalogDir(projectRoot string) string {
	if c.Catalog == "" {
		return ""
	}
	if filepath.IsAbs(c.Catalog) {
		return c.Catalog
	}
	return filepath.Join(projectRoot, c.Catalog)
}
