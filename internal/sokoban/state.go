package sokoban

import "fmt"

// SolutionRecorder is notified when a state becomes solved. Implementations
// compare the history against the best known one and persist it if better.
type SolutionRecorder interface {
	RecordSolution(lvl *Level, h History)
}

// State is a play session on a Level: a live copy of the grid, the player
// position and facing, and the move history. A State is owned by a single
// player and is not safe for concurrent use.
type State struct {
	level    *Level
	grid     *Grid
	pos      Coord
	angle    int
	history  History
	recorder SolutionRecorder
}

// SetRecorder installs the recorder notified when the level gets solved.
func (s *State) SetRecorder(r SolutionRecorder) {
	s.recorder = r
}

// Reset restores the level's initial layout and clears the history.
func (s *State) Reset() {
	s.grid = s.level.grid.Clone()
	s.pos = s.level.Start
	s.angle = 0
	s.history = History{}
}

// Level returns the level being played.
func (s *State) Level() *Level {
	return s.level
}

// Pos returns the current player position.
func (s *State) Pos() Coord {
	return s.pos
}

// Angle returns the player facing in degrees (0, 90, 180 or 270).
func (s *State) Angle() int {
	return s.angle
}

// Cell returns the live content of the cell at (x, y).
func (s *State) Cell(x, y int) Cell {
	return s.grid.Get(C(x, y))
}

// Grid returns a copy of the live grid.
func (s *State) Grid() *Grid {
	return s.grid.Clone()
}

// History returns a copy of the moves played so far.
func (s *State) History() History {
	return s.history.Clone()
}

// Solved reports whether every goal holds an atom and at least one push has
// been made. A level that starts with all goals covered is not solved until
// the player pushes something.
func (s *State) Solved() bool {
	return s.history.Pushes() > 0 && s.grid.goalsCovered()
}

// Move tries to move the player one cell in dir. It returns false, leaving
// the state untouched, when the move is not allowed: the target is outside
// the level or a wall, or it holds an atom that cannot be pushed (level
// already solved, or a wall or atom behind it).
//
// With checkOnly set the move is only validated; the returned flags tell
// whether it would push and whether the atom would land on a goal.
// DirNone turns the player up without moving.
func (s *State) Move(dir Direction, checkOnly bool) (MoveResult, bool) {
	s.angle = dir.Angle()
	if dir == DirNone {
		return 0, false
	}

	solvedBefore := s.Solved()
	dest := s.pos.Step(dir)
	if !s.grid.InBounds(dest) || s.grid.Get(dest).Has(CellWall) {
		return 0, false
	}

	var res MoveResult
	step := Step{Dir: dir}
	if s.grid.Get(dest).Has(CellAtom) {
		if solvedBefore {
			return 0, false
		}
		beyond := dest.Step(dir)
		if !s.grid.InBounds(beyond) || s.grid.Get(beyond).Has(CellWall|CellAtom) {
			return 0, false
		}
		res |= MovePushed
		if s.grid.Get(beyond).Has(CellGoal) {
			res |= MoveOnGoal
		}
		if !checkOnly {
			step.Push = true
			s.grid.Clear(dest, CellAtom)
			s.grid.Add(beyond, CellAtom)
		}
	}
	if checkOnly {
		return res, true
	}

	s.history.Append(step)
	s.pos = dest
	if s.Solved() {
		res |= MoveSolved
		if !solvedBefore && s.recorder != nil {
			s.recorder.RecordSolution(s.level, s.history.Clone())
		}
	}
	return res, true
}

// Undo reverts the last move, pulling back the atom if it was a push.
// It does nothing when the history is empty.
func (s *State) Undo() {
	step, ok := s.history.Pop()
	if !ok {
		return
	}
	s.angle = step.Dir.Angle()
	if step.Push {
		s.grid.Clear(s.pos.Step(step.Dir), CellAtom)
		s.grid.Add(s.pos, CellAtom)
	}
	dx, dy := step.Dir.Delta()
	s.pos = s.pos.Add(-dx, -dy)
}

// Replay plays a string of history letters. Letter case is not trusted:
// whether a move pushes is decided by the grid. The whole string is
// validated first; on an unknown character nothing is played and an error
// wrapping ErrInvalidMove is returned. Moves the rules reject are skipped.
func (s *State) Replay(moves string) error {
	h, err := NewHistory(moves)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	s.ReplayHistory(h)
	return nil
}

// ReplayHistory plays every step of h in order.
func (s *State) ReplayHistory(h History) {
	for _, step := range h.steps {
		s.Move(step.Dir, false)
	}
}
