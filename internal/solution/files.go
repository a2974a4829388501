package solution

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileRepository keeps one file per key in a directory. Lookups fall back
// to a list of legacy directories written by older versions; saves only
// ever go to the primary directory.
type FileRepository struct {
	dir        string
	legacyDirs []string
}

// NewFileRepository creates a repository rooted at dir.
func NewFileRepository(dir string, legacyDirs ...string) *FileRepository {
	return &FileRepository{dir: dir, legacyDirs: legacyDirs}
}

// Dir returns the primary directory.
func (r *FileRepository) Dir() string {
	return r.dir
}

// candidates lists the file names a key may be stored under.
func candidates(key Key) []string {
	name := key.Filename()
	if key.Format == FormatLegacy {
		// Some old builds wrote lowercase hex.
		if lower := strings.ToLower(name); lower != name {
			return []string{name, lower}
		}
	}
	return []string{name}
}

// Load reads the record for key, trying the primary directory first.
// An empty file counts as a stored empty record.
func (r *FileRepository) Load(key Key) ([]byte, error) {
	dirs := append([]string{r.dir}, r.legacyDirs...)
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, name := range candidates(key) {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("solution: cannot read %s: %w", name, err)
			}
			if data == nil {
				data = []byte{}
			}
			return data, nil
		}
	}
	return nil, nil
}

// Save writes the record for key into the primary directory, replacing any
// previous one. The data goes to a temporary file first and is renamed into
// place.
func (r *FileRepository) Save(key Key, data []byte) error {
	if r.dir == "" {
		return errors.New("solution: no save directory configured")
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("solution: cannot create directory %s: %w", r.dir, err)
	}

	tmp, err := os.CreateTemp(r.dir, ".tmp-"+key.Filename()+"-*")
	if err != nil {
		return fmt.Errorf("solution: cannot create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("solution: cannot write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("solution: cannot write %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(r.dir, key.Filename())); err != nil {
		return fmt.Errorf("solution: cannot store %s: %w", key, err)
	}
	return nil
}
