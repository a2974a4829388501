package sokoban

import "fmt"

// Level is one parsed puzzle. Everything except Solution is fixed once the
// decoder returns it; play happens on a State created by NewState.
type Level struct {
	Number int // 1-based position in its set, 0 when loaded alone

	Width  int
	Height int
	Start  Coord // initial player position

	// PreComment and Comment hold the first comment line before and after
	// the level data. Only a leading ';' is dropped, so a comment opened by
	// any other character keeps it, unlike the text older releases showed.
	PreComment string
	Comment    string

	CRC64       uint64 // identity of grid contents and start position
	CRC32Legacy uint32 // key used by old save files, see legacyFingerprint

	// Solution is the best known history, empty when none is recorded.
	Solution History

	grid *Grid
}

// Cell returns the initial content of the cell at (x, y).
func (l *Level) Cell(x, y int) Cell {
	return l.grid.Get(C(x, y))
}

// Grid returns a copy of the initial grid.
func (l *Level) Grid() *Grid {
	return l.grid.Clone()
}

// ID returns the fingerprint as 16 lowercase hex digits.
func (l *Level) ID() string {
	return fmt.Sprintf("%016x", l.CRC64)
}

// Solved reports whether a solution is recorded for the level.
func (l *Level) Solved() bool {
	return !l.Solution.Empty()
}

// NewState starts a fresh play session on this level.
func (l *Level) NewState() *State {
	s := &State{level: l}
	s.Reset()
	return s
}
