package sokoban

import (
	"io"
	"strings"
)

const (
	// fieldSize is the side of the scratch field used while decoding,
	// including one border cell on each side.
	fieldSize = 64

	// MaxLevelSize is the largest accepted width or height of a level.
	MaxLevelSize = fieldSize - 2

	maxCommentLen = 127

	// maxRunPrefix caps a decoded run prefix. Larger runs either overflow
	// the field or repeat a symbol with no further effect.
	maxRunPrefix = fieldSize * fieldSize
)

// field is the decoding scratch area, indexed [x][y].
type field [fieldSize][fieldSize]Cell

// Decoder reads consecutive levels from an XSB buffer.
//
// Symbols: space, '-' and '_' are floor, '#' wall, '@' player, '$' atom,
// '*' atom on goal, '.' goal, '+' player on goal. '\n' and '|' end a row,
// '\r' is ignored. A decimal prefix repeats the next symbol ("5#").
// Any other character starts a comment running to the end of the line.
// A NUL byte ends the buffer.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder creates a decoder over data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// readByte returns the next byte, or -1 at the end of the buffer.
func (d *Decoder) readByte() int {
	if d.pos >= len(d.data) {
		return -1
	}
	b := d.data[d.pos]
	d.pos++
	if b == 0 {
		d.pos = len(d.data)
		return -1
	}
	return int(b)
}

// readRun reads an optional decimal prefix and the symbol that follows.
// It returns the repeat count, or -1 at the end of the buffer.
func (d *Decoder) readRun() (count int, symbol int) {
	count = -1
	for {
		symbol = d.readByte()
		if symbol < 0 {
			return -1, symbol
		}
		if symbol < '0' || symbol > '9' {
			break
		}
		if count > 0 {
			count *= 10
		} else {
			count = 0
		}
		count += symbol - '0'
		if count > maxRunPrefix {
			count = maxRunPrefix
		}
	}
	if count < 0 {
		count = 1
	}
	return count, symbol
}

// readComment consumes the rest of the current line. first is the byte that
// opened the comment; a leading ';' marker is dropped. The result is
// space-trimmed and capped at maxCommentLen bytes.
func (d *Decoder) readComment(first int) (text string, eof bool) {
	var sb strings.Builder
	if first != ';' {
		sb.WriteByte(byte(first))
	}
	for {
		b := d.readByte()
		if b == '\r' {
			continue
		}
		if b == '\n' {
			break
		}
		if b < 0 {
			eof = true
			break
		}
		if sb.Len() < maxCommentLen {
			sb.WriteByte(byte(b))
		}
	}
	return strings.Trim(sb.String(), " "), eof
}

const (
	dataPending = iota
	dataStarted
	dataEnded
)

// Next decodes the next level. It returns io.EOF when the rest of the buffer
// holds no level data (only comments or blank lines). Any other error is a
// *Error describing why the level is malformed.
func (d *Decoder) Next() (*Level, error) {
	var f field
	for x := range f {
		for y := range f[x] {
			f[x][y] = CellFloor
		}
	}

	var (
		pre, post     string
		width, height int
		x, y          int
		eof           bool
		state         = dataPending
		start         = Coord{X: -1, Y: -1}
	)

	for state != dataEnded && !eof {
		count, symbol := d.readRun()
		if count < 0 {
			eof = true
			break
		}
		for ; count > 0; count-- {
			switch symbol {
			case ' ', '-', '_':
				f[x+1][y+1] |= CellFloor
				x++
			case '#':
				f[x+1][y+1] |= CellWall
				x++
			case '@':
				f[x+1][y+1] |= CellFloor
				start = C(x, y)
				x++
			case '*':
				f[x+1][y+1] |= CellGoal | CellAtom
				x++
			case '$':
				f[x+1][y+1] |= CellAtom
				x++
			case '+':
				f[x+1][y+1] |= CellGoal
				start = C(x, y)
				x++
			case '.':
				f[x+1][y+1] |= CellGoal
				x++
			case '\n', '|':
				if state == dataStarted {
					y++
				}
				x = 0
			case '\r':
			default:
				var text string
				text, eof = d.readComment(symbol)
				// Remaining repetitions of a prefixed comment ("2nd level")
				// see the line break that ended it.
				symbol = '\n'
				if state == dataStarted {
					state = dataEnded
					post = text
				} else if pre == "" {
					pre = text
				}
			}
			if state == dataEnded || eof {
				break
			}
			if x > 0 {
				state = dataStarted
			}
			if x >= MaxLevelSize {
				return nil, ErrLevelTooLarge
			}
			if y >= MaxLevelSize {
				return nil, ErrLevelTooHigh
			}
			if x > width {
				width = x
			}
			if y >= height && x > 0 {
				height = y + 1
			}
		}
	}

	if state == dataPending {
		return nil, io.EOF
	}
	if start.X < 0 {
		return nil, ErrPlayerPosUndefined
	}
	if width < 1 || height < 1 {
		return nil, ErrLevelTooSmall
	}

	f.trimOutside()
	f.shift()

	lvl := &Level{
		Width:       width,
		Height:      height,
		Start:       start,
		PreComment:  pre,
		Comment:     post,
		CRC64:       fingerprint(&f, width, height, start),
		CRC32Legacy: legacyFingerprint(&f, width, height),
		grid:        NewGrid(width, height),
	}
	for yy := 0; yy < height; yy++ {
		for xx := 0; xx < width; xx++ {
			lvl.grid.Set(C(xx, yy), f[xx][yy])
		}
	}
	return lvl, nil
}

// trimOutside clears the floor flag of every plain-floor cell reachable from
// the outer corner, leaving only floor enclosed by the level.
func (f *field) trimOutside() {
	stack := []Coord{C(fieldSize-1, fieldSize-1)}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c.X < 0 || c.X >= fieldSize || c.Y < 0 || c.Y >= fieldSize {
			continue
		}
		if f[c.X][c.Y] != CellFloor {
			continue
		}
		f[c.X][c.Y] = CellEmpty
		stack = append(stack, c.Add(1, 0), c.Add(-1, 0), c.Add(0, 1), c.Add(0, -1))
	}
}

// shift drops the border by moving the field one cell up and left.
func (f *field) shift() {
	for y := 0; y < fieldSize-1; y++ {
		for x := 0; x < fieldSize-1; x++ {
			f[x][y] = f[x+1][y+1]
		}
	}
}

// ParseLevel decodes the first level found in data.
func ParseLevel(data []byte) (*Level, error) {
	lvl, err := NewDecoder(data).Next()
	if err == io.EOF {
		return nil, ErrNoLevelData
	}
	return lvl, err
}
