// Package solution persists move histories: a compact run-length byte codec,
// the repository keys derived from level fingerprints, a filesystem
// repository, and the Book that decides which solution is worth keeping.
package solution

import (
	"errors"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// ErrCorrupt is returned by Decode for a stream holding an unknown move code.
var ErrCorrupt = errors.New("solution: corrupt history stream")

// Move codes stored in the low nibble of each byte.
const (
	codeUp    = 0
	codeLeft  = 1
	codeDown  = 2
	codeRight = 3
	codePush  = 4 // added to the plain code for pushes
	codeError = 8

	maxRunLen = 15
)

func encodeStep(s sokoban.Step) byte {
	var c byte
	switch s.Dir {
	case sokoban.DirUp:
		c = codeUp
	case sokoban.DirLeft:
		c = codeLeft
	case sokoban.DirDown:
		c = codeDown
	case sokoban.DirRight:
		c = codeRight
	default:
		return codeError
	}
	if s.Push {
		c += codePush
	}
	return c
}

func decodeStep(c byte) (sokoban.Step, bool) {
	var dir sokoban.Direction
	switch c &^ codePush {
	case codeUp:
		dir = sokoban.DirUp
	case codeLeft:
		dir = sokoban.DirLeft
	case codeDown:
		dir = sokoban.DirDown
	case codeRight:
		dir = sokoban.DirRight
	default:
		return sokoban.Step{}, false
	}
	return sokoban.Step{Dir: dir, Push: c&codePush != 0}, true
}

// Encode packs h into one byte per run: the high nibble is the run length
// (1..15), the low nibble the move code (u, l, d, r = 0..3, U, L, D, R = 4..7).
// Longer runs are split. Encoding stops at a step with no valid direction.
func Encode(h sokoban.History) []byte {
	out := make([]byte, 0, h.Len()/2+1)
	var last byte = codeError
	run := 0
	flush := func() {
		if run > 0 {
			out = append(out, byte(run)<<4|last)
		}
	}
	for _, s := range h.Steps() {
		c := encodeStep(s)
		if c == codeError {
			break
		}
		if c == last && run < maxRunLen {
			run++
			continue
		}
		flush()
		last, run = c, 1
	}
	flush()
	return out
}

// Decode expands a stream written by Encode. A byte whose run length is
// zero contributes nothing. Any move code outside 0..7 makes the whole
// stream corrupt: the partial result is discarded and ErrCorrupt returned.
// An empty stream decodes to an empty history.
func Decode(data []byte) (sokoban.History, error) {
	var h sokoban.History
	for _, b := range data {
		run := int(b >> 4)
		if run == 0 {
			continue
		}
		step, ok := decodeStep(b & 0x0F)
		if !ok {
			return sokoban.History{}, ErrCorrupt
		}
		for ; run > 0; run-- {
			h.Append(step)
		}
	}
	return h, nil
}
