// Package sokoban implements the Sokoban rules engine: the XSB level decoder,
// level fingerprints, move histories and the move/undo state machine.
// This package is UI-agnostic and deterministic.
package sokoban

// Cell is a bitmask of the things present on one square of the playfield.
// Flags are independent: a square can be floor, goal and atom at once.
type Cell uint8

const (
	CellFloor Cell = 1 << iota
	CellAtom
	CellGoal
	CellWall

	// CellEmpty is a square outside the playfield.
	CellEmpty Cell = 0
)

// Has reports whether any of the given flags is set.
func (c Cell) Has(flags Cell) bool {
	return c&flags != 0
}

// Direction is a player move direction.
// DirNone faces the player up without moving.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirLeft
	DirDown
	DirRight
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// Up decreases Y (screen coordinates). DirNone has no offset.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Angle returns the facing angle in degrees (0 = up, clockwise).
func (d Direction) Angle() int {
	switch d {
	case DirRight:
		return 90
	case DirDown:
		return 180
	case DirLeft:
		return 270
	default:
		return 0
	}
}

// letter returns the lowercase history letter for a direction.
func (d Direction) letter() byte {
	switch d {
	case DirLeft:
		return 'l'
	case DirDown:
		return 'd'
	case DirRight:
		return 'r'
	default:
		return 'u'
	}
}

// Coord represents a 2D coordinate on the grid.
// X increases to the right, Y increases downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the Coord one step away in direction d.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// MoveResult is a bitfield describing an accepted move.
type MoveResult uint8

const (
	MovePushed MoveResult = 1 << iota // an atom was pushed
	MoveOnGoal                        // the pushed atom lands on a goal
	MoveSolved                        // the move completed the level
)

// Has reports whether all given flags are set.
func (r MoveResult) Has(flags MoveResult) bool {
	return r&flags == flags
}
