package sokoban

import "errors"

// Error is a level loading error with a stable negative code.
type Error struct {
	code int
	msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.msg
}

// Code returns the negative numeric code of the error.
func (e *Error) Code() int {
	return e.code
}

var (
	ErrUndefined          = &Error{code: -1, msg: "undefined error"}
	ErrLevelTooHigh       = &Error{code: -2, msg: "level height too high"}
	ErrLevelTooLarge      = &Error{code: -3, msg: "level width too large"}
	ErrLevelTooSmall      = &Error{code: -4, msg: "level dimensions too small"}
	ErrMemAllocFailed     = &Error{code: -5, msg: "memory allocation failed - out of memory?"}
	ErrNoLevelData        = &Error{code: -6, msg: "no level data found in file"}
	ErrTooManyLevels      = &Error{code: -7, msg: "too many levels in set"}
	ErrUnableToOpenFile   = &Error{code: -8, msg: "failed to open file"}
	ErrPlayerPosUndefined = &Error{code: -9, msg: "player position not defined"}
)

var codedErrors = []*Error{
	ErrUndefined,
	ErrLevelTooHigh,
	ErrLevelTooLarge,
	ErrLevelTooSmall,
	ErrMemAllocFailed,
	ErrNoLevelData,
	ErrTooManyLevels,
	ErrUnableToOpenFile,
	ErrPlayerPosUndefined,
}

// Describe returns the human-readable description of an error code.
func Describe(code int) string {
	for _, e := range codedErrors {
		if e.code == code {
			return e.msg
		}
	}
	return "unknown error"
}

// CodeOf extracts the numeric code from err, or returns ErrUndefined's code
// when err carries none.
func CodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return ErrUndefined.code
}

// ErrInvalidMove is returned when a move string holds a character outside
// the u/l/d/r alphabet.
var ErrInvalidMove = errors.New("sokoban: invalid move character")
