package sokoban

import (
	"fmt"
	"strings"
)

// Step is one entry of a move history: a direction, and whether the move
// pushed an atom. Its history letter is lowercase for a plain move and
// uppercase for a push (u, l, d, r / U, L, D, R).
type Step struct {
	Dir  Direction
	Push bool
}

// Byte returns the history letter of the step.
func (s Step) Byte() byte {
	c := s.Dir.letter()
	if s.Push {
		c -= 'a' - 'A'
	}
	return c
}

// ParseStep maps a history letter to a Step.
func ParseStep(b byte) (Step, bool) {
	switch b {
	case 'u':
		return Step{Dir: DirUp}, true
	case 'l':
		return Step{Dir: DirLeft}, true
	case 'd':
		return Step{Dir: DirDown}, true
	case 'r':
		return Step{Dir: DirRight}, true
	case 'U':
		return Step{Dir: DirUp, Push: true}, true
	case 'L':
		return Step{Dir: DirLeft, Push: true}, true
	case 'D':
		return Step{Dir: DirDown, Push: true}, true
	case 'R':
		return Step{Dir: DirRight, Push: true}, true
	default:
		return Step{}, false
	}
}

// History is an ordered sequence of applied steps. The zero value is an
// empty history, which also stands for "no solution recorded".
type History struct {
	steps []Step
}

// NewHistory builds a history from its letter representation.
// Any character outside the u/l/d/r alphabet (either case) is rejected.
func NewHistory(moves string) (History, error) {
	steps := make([]Step, 0, len(moves))
	for i := 0; i < len(moves); i++ {
		step, ok := ParseStep(moves[i])
		if !ok {
			return History{}, fmt.Errorf("%w: %q at offset %d", ErrInvalidMove, moves[i], i)
		}
		steps = append(steps, step)
	}
	return History{steps: steps}, nil
}

// ParseHistory parses a solution as typed or pasted by a player: the history
// alphabet with optional decimal run prefixes ("3r2U" = "rrrUU").
// Surrounding whitespace is ignored. A trailing run prefix without a letter
// is an error.
func ParseHistory(text string) (History, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return History{}, fmt.Errorf("%w: empty solution", ErrInvalidMove)
	}

	var h History
	run := -1
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= '0' && c <= '9' {
			if run < 0 {
				run = 0
			}
			run = run*10 + int(c-'0')
			if run > maxRun {
				return History{}, fmt.Errorf("%w: run length too long at offset %d", ErrInvalidMove, i)
			}
			continue
		}
		step, ok := ParseStep(c)
		if !ok {
			return History{}, fmt.Errorf("%w: %q at offset %d", ErrInvalidMove, c, i)
		}
		if run < 0 {
			run = 1
		}
		for ; run > 0; run-- {
			h.Append(step)
		}
		run = -1
	}
	if run >= 0 {
		return History{}, fmt.Errorf("%w: run prefix without a move", ErrInvalidMove)
	}
	return h, nil
}

// maxRun bounds a single decimal run prefix in a typed solution.
const maxRun = 1 << 20

// Append adds a step to the end of the history.
func (h *History) Append(s Step) {
	h.steps = append(h.steps, s)
}

// Pop removes and returns the last step.
func (h *History) Pop() (Step, bool) {
	if len(h.steps) == 0 {
		return Step{}, false
	}
	last := h.steps[len(h.steps)-1]
	h.steps = h.steps[:len(h.steps)-1]
	return last, true
}

// Last returns the most recent step without removing it.
func (h History) Last() (Step, bool) {
	if len(h.steps) == 0 {
		return Step{}, false
	}
	return h.steps[len(h.steps)-1], true
}

// Len returns the number of moves (pushes included).
func (h History) Len() int {
	return len(h.steps)
}

// Pushes returns the number of pushes.
func (h History) Pushes() int {
	n := 0
	for _, s := range h.steps {
		if s.Push {
			n++
		}
	}
	return n
}

// Empty reports whether the history holds no moves.
func (h History) Empty() bool {
	return len(h.steps) == 0
}

// Steps returns a copy of the steps.
func (h History) Steps() []Step {
	steps := make([]Step, len(h.steps))
	copy(steps, h.steps)
	return steps
}

// Clone returns an independent copy of the history.
func (h History) Clone() History {
	return History{steps: h.Steps()}
}

// Equal returns true if both histories hold the same steps.
func (h History) Equal(other History) bool {
	if len(h.steps) != len(other.steps) {
		return false
	}
	for i, s := range h.steps {
		if s != other.steps[i] {
			return false
		}
	}
	return true
}

// String returns the letter representation, e.g. "rrUl".
func (h History) String() string {
	b := make([]byte, len(h.steps))
	for i, s := range h.steps {
		b[i] = s.Byte()
	}
	return string(b)
}

// Better reports whether h is a better solution than incumbent: the
// incumbent is absent, or h has fewer moves, or the same number of moves
// and fewer pushes. Ties keep the incumbent.
func (h History) Better(incumbent History) bool {
	if incumbent.Empty() {
		return true
	}
	if h.Len() != incumbent.Len() {
		return h.Len() < incumbent.Len()
	}
	return h.Pushes() < incumbent.Pushes()
}
