package levels

import "github.com/vovakirdan/tui-sokoban/internal/sokoban"

// maxOpenUnsolved is how many unsolved levels a player may pick from.
const maxOpenUnsolved = 3

// Set is an ordered collection of levels loaded from one buffer.
type Set struct {
	Name        string // display name, empty when not loaded from a file
	Path        string
	Description string // pre-comment of the first level, opening character kept unless ';'
	Levels      []*sokoban.Level
}

// Len returns the number of levels.
func (s *Set) Len() int {
	return len(s.Levels)
}

// Level returns the level with the given 1-based number, or nil.
func (s *Set) Level(number int) *sokoban.Level {
	if number < 1 || number > len(s.Levels) {
		return nil
	}
	return s.Levels[number-1]
}

// SolvedCount returns how many levels have a recorded solution.
func (s *Set) SolvedCount() int {
	n := 0
	for _, lvl := range s.Levels {
		if lvl.Solved() {
			n++
		}
	}
	return n
}

// FirstUnsolved returns the index of the first level without a solution,
// or 0 when every level is solved.
func (s *Set) FirstUnsolved() int {
	for i, lvl := range s.Levels {
		if !lvl.Solved() {
			return i
		}
	}
	return 0
}

// LastLeft reports whether the level at index i is the only unsolved one.
func (s *Set) LastLeft(i int) bool {
	if i < 0 || i >= len(s.Levels) || s.Levels[i].Solved() {
		return false
	}
	for j, lvl := range s.Levels {
		if j != i && !lvl.Solved() {
			return false
		}
	}
	return true
}

// Playable returns how many levels, counted from the start, the player may
// choose from: everything before the fourth unsolved level.
func (s *Set) Playable() int {
	unsolved := 0
	for i, lvl := range s.Levels {
		if !lvl.Solved() {
			unsolved++
		}
		if unsolved > maxOpenUnsolved {
			return i
		}
	}
	return len(s.Levels)
}
