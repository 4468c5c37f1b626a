package token

import "errors"

var (
	// ErrStringEnd reports end of input inside a quoted string.
	ErrStringEnd = errors.New("unexpected end of input in string")
	// ErrEscapeEnd reports end of input right after a backslash.
	ErrEscapeEnd = errors.New("unexpected end of input in escape")
	// ErrEscape reports a backslash followed by an unsupported letter.
	ErrEscape = errors.New("invalid escape")
	// ErrEscapeU reports a \uXXXX sequence, which jx does not decode.
	ErrEscapeU = errors.New(`unsupported \u escape`)
	// ErrNumber reports bytes that do not form a JSON number.
	ErrNumber = errors.New("invalid number")
	// ErrNumberLeadingZero reports a number with a redundant leading zero.
	ErrNumberLeadingZero = errors.New("invalid number: leading zero")
)
