// Package levels loads Sokoban level sets: concatenated XSB files, possibly
// gzip-compressed, turned into numbered levels with their known solutions.
package levels

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/gzip"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

const (
	// DefaultMaxLevels caps the number of levels read from one set.
	DefaultMaxLevels = 4096

	// maxFileSize is the largest level file LoadFile accepts.
	maxFileSize = 1 << 30
)

// SolutionSource provides the best known solution of a level.
// *solution.Book implements it.
type SolutionSource interface {
	Lookup(lvl *sokoban.Level) sokoban.History
}

// Loader turns level files into Sets.
type Loader struct {
	// MaxLevels is the largest accepted set. Zero or less means
	// DefaultMaxLevels.
	MaxLevels int

	solutions SolutionSource
	logger    *log.Logger
}

// NewLoader creates a loader that fills each level's solution from
// solutions (which may be nil). A nil logger uses log.Default().
func NewLoader(solutions SolutionSource, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		MaxLevels: DefaultMaxLevels,
		solutions: solutions,
		logger:    logger,
	}
}

// LoadFile reads and loads a level set file. Missing, empty or huge files
// fail with sokoban.ErrUnableToOpenFile.
func (l *Loader) LoadFile(path string) (*Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sokoban.ErrUnableToOpenFile, err)
	}
	if info.IsDir() || info.Size() == 0 || info.Size() > maxFileSize {
		return nil, fmt.Errorf("%w: %s", sokoban.ErrUnableToOpenFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sokoban.ErrUnableToOpenFile, err)
	}

	set, err := l.Load(data)
	if err != nil {
		return nil, err
	}
	set.Name = setName(path)
	set.Path = path
	return set, nil
}

// Load decodes every level of data. Levels are numbered from 1 and the
// first level's pre-comment becomes the set description.
//
// Loading stops cleanly when the rest of the buffer holds no level. Any
// malformed level fails the whole set, as does going over MaxLevels
// (sokoban.ErrTooManyLevels). A buffer without levels fails with
// sokoban.ErrNoLevelData.
func (l *Loader) Load(data []byte) (*Set, error) {
	if len(data) == 0 {
		return nil, sokoban.ErrUnableToOpenFile
	}
	if isGzip(data) {
		var err error
		if data, err = gunzip(data); err != nil {
			return nil, fmt.Errorf("%w: gzip: %v", sokoban.ErrUnableToOpenFile, err)
		}
	}

	maxLevels := l.MaxLevels
	if maxLevels <= 0 {
		maxLevels = DefaultMaxLevels
	}

	set := &Set{}
	dec := sokoban.NewDecoder(data)
	for {
		lvl, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", len(set.Levels)+1, err)
		}
		if len(set.Levels) >= maxLevels {
			return nil, sokoban.ErrTooManyLevels
		}

		lvl.Number = len(set.Levels) + 1
		if lvl.Number == 1 {
			set.Description = lvl.PreComment
		}
		if l.solutions != nil {
			lvl.Solution = l.solutions.Lookup(lvl)
		}
		l.logger.Debug("level loaded",
			"level", lvl.Number,
			"id", lvl.ID(),
			"size", fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
			"solved", lvl.Solved())
		set.Levels = append(set.Levels, lvl)
	}

	if len(set.Levels) == 0 {
		return nil, sokoban.ErrNoLevelData
	}
	return set, nil
}

// isGzip recognizes a gzip member header using store or deflate.
func isGzip(data []byte) bool {
	if len(data) < 16 || data[0] != 0x1F || data[1] != 0x8B {
		return false
	}
	return data[2] == 0 || data[2] == 8
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, maxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(out) > maxFileSize {
		return nil, errors.New("uncompressed data too large")
	}
	return out, nil
}

// setName derives a display name from a file path: the base name without
// its level and gzip extensions.
func setName(path string) string {
	name, _, _ := parseName(path)
	return name
}
