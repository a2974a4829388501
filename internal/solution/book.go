package solution

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// CompletionSaver receives every solve, better or not.
type CompletionSaver interface {
	SaveCompletion(levelID uint64, moves, pushes int) error
}

// Book looks up and records level solutions in a Repository.
// Stored data that fails to decode is logged and treated as missing so a
// damaged file never blocks play.
type Book struct {
	repo        Repository
	logger      *log.Logger
	completions CompletionSaver

	// serializes read-compare-write in Record
	mu sync.Mutex
}

// NewBook creates a Book over repo. A nil logger uses log.Default().
func NewBook(repo Repository, logger *log.Logger) *Book {
	if logger == nil {
		logger = log.Default()
	}
	return &Book{repo: repo, logger: logger}
}

// SetCompletionSaver installs a log of every solve.
func (b *Book) SetCompletionSaver(c CompletionSaver) {
	b.completions = c
}

// load fetches and decodes one record. Missing, unreadable and corrupt
// records all come back as an empty history.
func (b *Book) load(key Key) sokoban.History {
	data, err := b.repo.Load(key)
	if err != nil {
		b.logger.Error("cannot load solution", "key", key, "error", err)
		return sokoban.History{}
	}
	if data == nil {
		return sokoban.History{}
	}
	h, err := Decode(data)
	if err != nil {
		b.logger.Warn("discarding corrupt solution", "key", key, "error", err)
		return sokoban.History{}
	}
	return h
}

// Lookup returns the best known solution of lvl: the current-format record,
// or the legacy one when no current record exists. The result is empty when
// neither is stored.
func (b *Book) Lookup(lvl *sokoban.Level) sokoban.History {
	if h := b.load(CurrentKey(lvl)); !h.Empty() {
		b.logger.Debug("solution found", "level", lvl.Number, "id", lvl.ID(), "moves", h.Len())
		return h
	}
	if h := b.load(LegacyKey(lvl)); !h.Empty() {
		b.logger.Debug("legacy solution found", "level", lvl.Number, "crc32", fmt.Sprintf("%08X", lvl.CRC32Legacy), "moves", h.Len())
		return h
	}
	b.logger.Debug("no solution", "level", lvl.Number, "id", lvl.ID())
	return sokoban.History{}
}

// Refresh reloads the solution of every level.
func (b *Book) Refresh(levels []*sokoban.Level) {
	for _, lvl := range levels {
		lvl.Solution = b.Lookup(lvl)
	}
}

// Record compares h with the stored solution of lvl, read fresh from the
// repository, and saves h when it is better. lvl.Solution is updated to
// whichever solution wins. It reports whether h was saved.
func (b *Book) Record(lvl *sokoban.Level, h sokoban.History) (bool, error) {
	if h.Empty() {
		return false, errors.New("solution: empty history")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.completions != nil {
		if err := b.completions.SaveCompletion(lvl.CRC64, h.Len(), h.Pushes()); err != nil {
			b.logger.Error("cannot log completion", "id", lvl.ID(), "error", err)
		}
	}

	best := b.Lookup(lvl)
	if !h.Better(best) {
		lvl.Solution = best
		return false, nil
	}
	if err := b.repo.Save(CurrentKey(lvl), Encode(h)); err != nil {
		return false, fmt.Errorf("solution: cannot save level %s: %w", lvl.ID(), err)
	}
	lvl.Solution = h.Clone()
	b.logger.Info("solution saved", "level", lvl.Number, "id", lvl.ID(), "moves", h.Len(), "pushes", h.Pushes())
	return true, nil
}

// RecordSolution implements sokoban.SolutionRecorder.
func (b *Book) RecordSolution(lvl *sokoban.Level, h sokoban.History) {
	if _, err := b.Record(lvl, h); err != nil {
		b.logger.Error("cannot record solution", "error", err)
	}
}

var _ sokoban.SolutionRecorder = (*Book)(nil)

// SaveProgress stores an unfinished session of lvl, replacing any earlier one.
func (b *Book) SaveProgress(lvl *sokoban.Level, h sokoban.History) error {
	if err := b.repo.Save(SavegameKey(lvl), Encode(h)); err != nil {
		return fmt.Errorf("solution: cannot save progress for level %s: %w", lvl.ID(), err)
	}
	return nil
}

// LoadProgress returns the saved session of lvl, empty if there is none.
func (b *Book) LoadProgress(lvl *sokoban.Level) sokoban.History {
	return b.load(SavegameKey(lvl))
}
