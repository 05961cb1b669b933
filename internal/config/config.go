package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/AvengeMedia/dankdim/internal/errdefs"
	"github.com/AvengeMedia/dankdim/internal/levels"
	"github.com/AvengeMedia/dankdim/internal/log"
)

// Config is the only durable state: the last user-set levels and the
// break reminder flag.
type Config struct {
	DimLevel     int  `yaml:"dim_level"`
	WarmLevel    int  `yaml:"warm_level"`
	BreakEnabled bool `yaml:"break_enabled"`
}

// Default returns the all-off configuration.
func Default() *Config {
	return &Config{}
}

// Store reads and writes the settings file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the default per-user path.
func NewStore() (*Store, error) {
	path, err := File()
	if err != nil {
		return nil, err
	}
	return &Store{path: path}, nil
}

// NewStoreAt creates a store for an explicit path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Load reads the settings file. A missing or malformed file yields the
// defaults, never an error: an unreadable preference is not fatal.
func (s *Store) Load() *Config {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("Failed to read config %s: %v", s.path, err)
		}
		return Default()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warnf("Malformed config %s, using defaults: %v", s.path, err)
		return Default()
	}

	cfg.DimLevel = int(levels.ClampDim(cfg.DimLevel))
	cfg.WarmLevel = int(levels.ClampWarm(cfg.WarmLevel))
	return &cfg
}

// Save writes the settings file, creating the parent directory if needed.
func (s *Store) Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", errdefs.ErrConfigIO, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: create %s: %v", errdefs.ErrConfigIO, dir, err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("%w: write %s: %v", errdefs.ErrConfigIO, s.path, err)
	}
	return nil
}
