package solution

import (
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// Format selects the kind of record stored under a fingerprint.
type Format string

const (
	// FormatCurrent holds the best solution, keyed by the 64-bit fingerprint.
	FormatCurrent Format = "sol"
	// FormatLegacy holds solutions written by old versions, keyed by the
	// 32-bit legacy fingerprint. It is only read.
	FormatLegacy Format = "dat"
	// FormatSavegame holds an unfinished play session.
	FormatSavegame Format = "sav"
)

// Key identifies one stored record.
type Key struct {
	ID     uint64
	Format Format
}

// CurrentKey returns the key of the level's best solution.
func CurrentKey(lvl *sokoban.Level) Key {
	return Key{ID: lvl.CRC64, Format: FormatCurrent}
}

// LegacyKey returns the key old versions stored the level's solution under.
func LegacyKey(lvl *sokoban.Level) Key {
	return Key{ID: uint64(lvl.CRC32Legacy), Format: FormatLegacy}
}

// SavegameKey returns the key of the level's saved session.
func SavegameKey(lvl *sokoban.Level) Key {
	return Key{ID: lvl.CRC64, Format: FormatSavegame}
}

// Filename returns the file name of the record: 16 lowercase hex digits for
// 64-bit keys, 8 uppercase hex digits for legacy keys.
func (k Key) Filename() string {
	if k.Format == FormatLegacy {
		return fmt.Sprintf("%08X.%s", uint32(k.ID), k.Format)
	}
	return fmt.Sprintf("%016x.%s", k.ID, k.Format)
}

func (k Key) String() string {
	return k.Filename()
}

// Repository stores encoded histories by key.
// Load returns nil data and a nil error when nothing is stored under key.
type Repository interface {
	Load(key Key) ([]byte, error)
	Save(key Key, data []byte) error
}
