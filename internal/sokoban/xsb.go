package sokoban

import (
	"fmt"
	"strings"
)

// symbolAt returns the XSB symbol for a cell with the player possibly on it.
func symbolAt(cell Cell, player bool) byte {
	switch cell &^ CellFloor {
	case CellWall:
		return '#'
	case CellAtom | CellGoal:
		return '*'
	case CellAtom:
		return '$'
	case CellGoal:
		if player {
			return '+'
		}
		return '.'
	default:
		if player {
			return '@'
		}
		return ' '
	}
}

func writeBoard(sb *strings.Builder, g *Grid, player Coord) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			sb.WriteByte(symbolAt(g.Get(c), c == player))
		}
		sb.WriteByte('\n')
	}
}

// XSB exports the level in its initial layout, preceded by its id and
// followed by the given solution, in a form the decoder reads back.
func (l *Level) XSB(solution History) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "; Level id: %s\n\n", l.ID())
	writeBoard(&sb, l.grid, l.Start)
	sb.WriteByte('\n')
	if solution.Empty() {
		sb.WriteString("; No solution available\n")
	} else {
		sb.WriteString("; Solution\n; ")
		sb.WriteString(solution.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the live board in XSB symbols, one row per line.
func (s *State) String() string {
	var sb strings.Builder
	writeBoard(&sb, s.grid, s.pos)
	return sb.String()
}
