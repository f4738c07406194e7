package splitcookies

import (
	"fmt"
	"iter"
	"strings"

	"github.com/flrdv/uf"
	"github.com/indigo-web/splitcookies/internal/strutil"
)

// Cookie is a single name=value pair of a Cookie request header. The header
// carries no attributes (Domain, Path and friends belong to Set-Cookie), so
// there are no fields for them.
type Cookie struct {
	Name  string
	Value string
}

func New(name, value string) Cookie {
	return Cookie{Name: name, Value: value}
}

// Walk lazily parses the header into cookies. Every entry carries its own
// error: a malformed entry is reported and iteration simply continues with
// the next one, nothing is ever fatal to the whole walk.
func Walk(header string) iter.Seq2[Cookie, error] {
	return walk(header, false)
}

// WalkDecoded is Walk with percent-decoding of names and values. Decoding is
// attempted only on entries that actually contain '%'; a malformed escape
// fails that entry with ErrBadEscape.
func WalkDecoded(header string) iter.Seq2[Cookie, error] {
	return walk(header, true)
}

// WalkBytes parses a header value straight off the wire without copying it.
// The bytes must stay untouched for as long as the cookies are in use.
func WalkBytes(header []byte) iter.Seq2[Cookie, error] {
	return walk(uf.B2S(header), false)
}

// Split collects every well-formed cookie of the header, silently skipping
// malformed entries.
func Split(header string) []Cookie {
	return split(header, false)
}

// SplitDecoded is Split with percent-decoding applied.
func SplitDecoded(header string) []Cookie {
	return split(header, true)
}

func walk(header string, decode bool) iter.Seq2[Cookie, error] {
	return func(yield func(Cookie, error) bool) {
		s := NewScanner(header)

		for segment, ok := s.Next(); ok; segment, ok = s.Next() {
			if !yield(build(segment, decode)) {
				return
			}
		}
	}
}

func split(header string, decode bool) (cookies []Cookie) {
	for c, err := range walk(header, decode) {
		if err == nil {
			cookies = append(cookies, c)
		}
	}

	return cookies
}

// build turns a scanner segment into a cookie record. The segment arrives
// with its outer whitespace already trimmed, so only the space around '='
// is left to strip.
func build(segment string, decode bool) (Cookie, error) {
	eq := strings.IndexByte(segment, '=')
	if eq == -1 {
		return Cookie{}, fmt.Errorf("%w: %q", ErrBadSegment, segment)
	}

	name := strutil.RStripWS(segment[:eq])
	if len(name) == 0 {
		return Cookie{}, fmt.Errorf("%w: %q", ErrEmptyName, segment)
	}

	value := strutil.Unquote(strutil.LStripWS(segment[eq+1:]))

	if decode {
		var ok bool

		if name, ok = strutil.Decode(name); !ok {
			return Cookie{}, fmt.Errorf("%w: %q", ErrBadEscape, segment)
		}

		if value, ok = strutil.Decode(value); !ok {
			return Cookie{}, fmt.Errorf("%w: %q", ErrBadEscape, segment)
		}
	}

	// the name is checked after decoding, so escapes cannot smuggle in
	// characters the token grammar forbids
	for i := 0; i < len(name); i++ {
		if !tokenChars[name[i]] {
			return Cookie{}, fmt.Errorf("%w: %q", ErrBadName, name)
		}
	}

	return Cookie{Name: name, Value: value}, nil
}
