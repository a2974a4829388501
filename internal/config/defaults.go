package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Skin:        "antique3",
		SkinBackend: BackendFile,
		SkinFile:    "~/.sokoban/skin.cfg",
		Database:    "~/.sokoban/sokoban.db",
		Solutions: SolutionsConfig{
			Backend: BackendFiles,
			Dir:     "~/.sokoban/solved",
		},
		Levels: LevelsConfig{
			Dir:       "./levels",
			MaxLevels: 4096,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSokobanYAML
}
