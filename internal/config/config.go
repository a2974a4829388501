// Package config provides YAML-based configuration loading for the sokoban
// command and the file-backed skin setting.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Backend names accepted in the configuration.
const (
	BackendFiles  = "files"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config contains all settings of the sokoban command.
type Config struct {
	Skin        string          `yaml:"skin"`         // skin used when none is stored
	SkinBackend string          `yaml:"skin_backend"` // "file" or "sqlite"
	SkinFile    string          `yaml:"skin_file"`
	Database    string          `yaml:"database"`
	Solutions   SolutionsConfig `yaml:"solutions"`
	Levels      LevelsConfig    `yaml:"levels"`
	Log         LogConfig       `yaml:"log"`
}

// SolutionsConfig selects where solutions are kept.
type SolutionsConfig struct {
	Backend    string   `yaml:"backend"` // "files" or "sqlite"
	Dir        string   `yaml:"dir"`
	LegacyDirs []string `yaml:"legacy_dirs"` // read-only fallbacks
}

// LevelsConfig controls level set loading.
type LevelsConfig struct {
	Dir       string `yaml:"dir"`
	MaxLevels int    `yaml:"max_levels"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	switch c.SkinBackend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown skin_backend %q", c.SkinBackend)
	}
	switch c.Solutions.Backend {
	case BackendFiles, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown solutions.backend %q", c.Solutions.Backend)
	}
	if c.Levels.MaxLevels < 0 {
		return fmt.Errorf("config: levels.max_levels must not be negative")
	}
	return nil
}

// ExpandPaths replaces a leading ~ in every path setting with the home
// directory.
func (c *Config) ExpandPaths() error {
	paths := []*string{&c.SkinFile, &c.Database, &c.Solutions.Dir, &c.Levels.Dir}
	for i := range c.Solutions.LegacyDirs {
		paths = append(paths, &c.Solutions.LegacyDirs[i])
	}
	for _, p := range paths {
		expanded, err := ExpandPath(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
