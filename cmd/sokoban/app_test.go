package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/solution"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

const testSet = `; Test set
#####
#@$.#
#####

######
#@ $.#
######
`

// useFlags sets the global flags for one test.
func useFlags(t *testing.T, cfgPath, dbPath, solutionsDir string) {
	t.Helper()
	oldCfg, oldDB, oldDir := flagConfig, flagDBPath, flagSolutionsDir
	flagConfig, flagDBPath, flagSolutionsDir = cfgPath, dbPath, solutionsDir
	t.Cleanup(func() {
		flagConfig, flagDBPath, flagSolutionsDir = oldCfg, oldDB, oldDir
	})
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewAppFileBackends(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sokoban.yaml")
	writeFile(t, cfgPath, "skin_file: "+filepath.Join(dir, "skin.cfg")+"\nlog:\n  level: error\n")
	useFlags(t, cfgPath, "", filepath.Join(dir, "solved"))

	a, err := newApp()
	if err != nil {
		t.Fatalf("newApp() failed: %v", err)
	}
	defer a.Close()

	if a.store != nil {
		t.Error("database opened for file backends")
	}
	if _, ok := a.skins.(*config.SkinFile); !ok {
		t.Errorf("skin store is %T, want *config.SkinFile", a.skins)
	}
	if a.cfg.Solutions.Dir != filepath.Join(dir, "solved") {
		t.Errorf("--solutions-dir not applied: %q", a.cfg.Solutions.Dir)
	}

	// Solve the first level through the loader and book, then reload.
	setPath := filepath.Join(dir, "test.xsb")
	writeFile(t, setPath, testSet)
	set := a.loadSet(setPath)
	st := set.Level(1).NewState()
	st.SetRecorder(a.book)
	st.Move(sokoban.DirRight, false)

	if _, err := os.Stat(filepath.Join(dir, "solved", solution.CurrentKey(set.Level(1)).Filename())); err != nil {
		t.Errorf("solution file not written: %v", err)
	}
	again := a.loadSet(setPath)
	if !again.Level(1).Solved() || again.Level(2).Solved() {
		t.Error("reloaded set does not reflect the saved solution")
	}
	if again.FirstUnsolved() != 1 {
		t.Errorf("FirstUnsolved() = %d, want 1", again.FirstUnsolved())
	}
}

func TestNewAppSQLiteBackends(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sokoban.yaml")
	writeFile(t, cfgPath, "skin_backend: sqlite\nsolutions:\n  backend: sqlite\nlog:\n  level: error\n")
	useFlags(t, cfgPath, filepath.Join(dir, "db", "sokoban.db"), "")

	a, err := newApp()
	if err != nil {
		t.Fatalf("newApp() failed: %v", err)
	}
	defer a.Close()

	if a.store == nil {
		t.Fatal("database not opened for sqlite backends")
	}
	if _, ok := a.skins.(*storage.Store); !ok {
		t.Errorf("skin store is %T, want *storage.Store", a.skins)
	}
	if err := a.skins.SetSkin("yoshi"); err != nil {
		t.Fatalf("SetSkin() failed: %v", err)
	}
	if name, _ := a.store.Skin(); name != "yoshi" {
		t.Errorf("stored skin = %q, want yoshi", name)
	}
}

func TestLevelArg(t *testing.T) {
	loader := levels.NewLoader(nil, nil)
	set, err := loader.Load([]byte(testSet))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	tests := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{[]string{"f"}, 1, false},
		{[]string{"f", "2"}, 2, false},
		{[]string{"f", "3"}, 0, true},
		{[]string{"f", "x"}, 0, true},
	}
	for _, tc := range tests {
		lvl, err := levelArg(set, tc.args)
		if tc.wantErr {
			if err == nil {
				t.Errorf("levelArg(%v) succeeded", tc.args)
			}
			continue
		}
		if err != nil {
			t.Errorf("levelArg(%v) failed: %v", tc.args, err)
			continue
		}
		if lvl.Number != tc.want {
			t.Errorf("levelArg(%v) = level %d, want %d", tc.args, lvl.Number, tc.want)
		}
	}
}
