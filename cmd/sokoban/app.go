package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/solution"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// app holds the collaborators shared by all commands.
type app struct {
	cfg    config.Config
	logger *log.Logger
	store  *storage.Store // nil unless a sqlite backend is configured
	book   *solution.Book
	loader *levels.Loader
	skins  config.SkinStore
}

// newApp loads the configuration and wires the configured backends.
func newApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDBPath != "" {
		if cfg.Database, err = config.ExpandPath(flagDBPath); err != nil {
			return nil, err
		}
	}
	if flagSolutionsDir != "" {
		if cfg.Solutions.Dir, err = config.ExpandPath(flagSolutionsDir); err != nil {
			return nil, err
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sokoban",
	})
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
	}
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	a := &app{cfg: cfg, logger: logger}

	if cfg.Solutions.Backend == config.BackendSQLite || cfg.SkinBackend == config.BackendSQLite {
		store, err := storage.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		a.store = store
		logger.Debug("database opened", "path", cfg.Database)
	}

	var repo solution.Repository
	if cfg.Solutions.Backend == config.BackendSQLite {
		repo = a.store
	} else {
		repo = solution.NewFileRepository(cfg.Solutions.Dir, cfg.Solutions.LegacyDirs...)
	}
	a.book = solution.NewBook(repo, logger)
	if a.store != nil {
		a.book.SetCompletionSaver(a.store)
	}

	a.loader = levels.NewLoader(a.book, logger)
	a.loader.MaxLevels = cfg.Levels.MaxLevels

	if cfg.SkinBackend == config.BackendSQLite {
		a.skins = a.store
	} else {
		a.skins = config.NewSkinFile(cfg.SkinFile)
	}

	return a, nil
}

// Close releases the database, if any.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Error("cannot close database", "error", err)
		}
	}
}

// mustApp builds the app or exits.
func mustApp() *app {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return a
}

// fail closes the app, prints the error and exits.
func (a *app) fail(format string, args ...any) {
	a.Close()
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadSet loads a level set file or exits with the loader error.
func (a *app) loadSet(path string) *levels.Set {
	set, err := a.loader.LoadFile(path)
	if err != nil {
		a.fail("loading %s: %v", path, err)
	}
	return set
}
