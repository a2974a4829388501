package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxSkinName bounds how much of the skin file is read.
const maxSkinName = 510

// SkinStore keeps the name of the selected skin. The name is opaque.
type SkinStore interface {
	// Skin returns the stored name, or "" when none is stored.
	Skin() (string, error)
	SetSkin(name string) error
}

// SkinFile stores the skin name as the first line of a file.
type SkinFile struct {
	path string
}

// NewSkinFile creates a skin store backed by path.
func NewSkinFile(path string) *SkinFile {
	return &SkinFile{path: path}
}

// Skin reads the file up to the first line break.
func (f *SkinFile) Skin() (string, error) {
	fd, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("config: cannot open skin file: %w", err)
	}
	defer fd.Close()

	data, err := io.ReadAll(io.LimitReader(fd, maxSkinName))
	if err != nil {
		return "", fmt.Errorf("config: cannot read skin file: %w", err)
	}
	name := string(data)
	if i := strings.IndexAny(name, "\r\n"); i >= 0 {
		name = name[:i]
	}
	return name, nil
}

// SetSkin replaces the stored name.
func (f *SkinFile) SetSkin(name string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory for skin file: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(name), 0o644); err != nil {
		return fmt.Errorf("config: cannot write skin file: %w", err)
	}
	return nil
}

var _ SkinStore = (*SkinFile)(nil)
