package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// supportedExtensions lists the level file extensions, each of which may be
// followed by ".gz".
var supportedExtensions = []string{".xsb", ".txt", ".sok"}

// Entry is a level set file found by Catalog.
type Entry struct {
	Path       string
	Name       string
	Compressed bool
}

// Catalog recursively scans root for level set files.
// Returns entries sorted by path for deterministic ordering.
func Catalog(root string) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		name, compressed, ok := parseName(path)
		if !ok {
			return nil
		}
		entries = append(entries, Entry{Path: path, Name: name, Compressed: compressed})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// parseName splits a level file name into its display name and whether it
// is gzip-compressed. ok is false when the extension is not supported.
func parseName(path string) (name string, compressed, ok bool) {
	name = filepath.Base(path)
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".gz") {
		compressed = true
		name, lower = name[:len(name)-3], lower[:len(lower)-3]
	}
	ext := filepath.Ext(lower)
	if !slices.Contains(supportedExtensions, ext) {
		return name, compressed, false
	}
	return name[:len(name)-len(ext)], compressed, true
}
