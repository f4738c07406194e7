package strutil

import (
	"strings"

	"github.com/indigo-web/splitcookies/internal/hexconv"
)

// Decode resolves %XX escapes. The boolean tells whether the string was
// well-formed. Decoding is strict: a truncated or non-hex escape fails the
// whole string instead of passing through, as silently keeping garbage would
// hide sender bugs. Strings without '%' are returned as-is, no allocation.
func Decode(str string) (string, bool) {
	if strings.IndexByte(str, '%') == -1 {
		return str, true
	}

	var b strings.Builder
	b.Grow(len(str))
	s := str

	for {
		percent := strings.IndexByte(s, '%')
		if percent == -1 {
			break
		}

		b.WriteString(s[:percent])
		s = s[percent+1:]

		if len(s) < 2 {
			return "", false
		}

		x, y := hexconv.Halfbyte[s[0]], hexconv.Halfbyte[s[1]]
		if x == 0xFF || y == 0xFF {
			return "", false
		}

		b.WriteByte(x<<4 | y)
		s = s[2:]
	}

	b.WriteString(s)

	return b.String(), true
}
