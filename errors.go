package splitcookies

import "errors"

var (
	// ErrBadSegment means an entry carries no '=' at all.
	ErrBadSegment = errors.New("cookie entry is missing '='")
	// ErrEmptyName means an entry has the shape "=value".
	ErrEmptyName = errors.New("cookie name is empty")
	// ErrBadName means the name contains characters outside the token grammar.
	ErrBadName = errors.New("cookie name contains non-token characters")
	// ErrBadEscape means percent-decoding hit a truncated or non-hex escape.
	ErrBadEscape = errors.New("malformed percent-encoded sequence")
)
