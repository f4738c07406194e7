// Package splitcookies parses HTTP Cookie header values, surviving the
// unquoted semicolons real-world senders put into values. A strict splitter
// cuts "session=abc;123; other=value" into three entries and loses the value
// tail; here a semicolon separates cookies only if what follows it looks like
// the beginning of another name=value pair, so the header above yields
// session=abc;123 and other=value.
//
// The tradeoff is deliberate and irreducible: a value literally ending in
// ";token=" cannot be told apart from a separator and gets split. Senders
// that need such values should quote them or percent-encode the semicolon.
package splitcookies

import (
	"iter"

	"github.com/indigo-web/splitcookies/internal/strutil"
)

// maxNameLookahead bounds how far past a candidate separator the scanner
// searches for the name= shape. Real cookie names are far shorter.
const maxNameLookahead = 64

// Scanner splits a Cookie header value into per-cookie segments, one
// name=value chunk at a time. It holds nothing but the borrowed input and a
// cursor, never copies, and cannot fail: any byte sequence produces a finite,
// possibly empty, sequence of trimmed segments. Malformed segments are still
// emitted; rejecting them is the record builder's job.
//
// A Scanner is single-pass and not restartable. It must not be shared
// between goroutines without external locking, although any number of
// independent Scanners may run in parallel.
type Scanner struct {
	data string
	pos  int
}

func NewScanner(data string) *Scanner {
	return &Scanner{data: data}
}

// Next returns the next segment with surrounding whitespace trimmed. Once the
// input is exhausted, ok is false on this and every further call.
func (s *Scanner) Next() (segment string, ok bool) {
	data := s.data

	for s.pos < len(data) && (data[s.pos] == ';' || isWS(data[s.pos])) {
		s.pos++
	}

	if s.pos == len(data) {
		return "", false
	}

	start := s.pos
	eq := -1
	quoted := false

	for i := s.pos; i < len(data); i++ {
		switch c := data[i]; {
		case quoted:
			if c == '"' && !escaped(data, i) {
				quoted = false
			}
		case c == '"' && eq != -1 && i == eq+1:
			// a quote opens a quoted value only as the value's first
			// character; anywhere else it is ordinary value text
			quoted = true
		case c == '=' && eq == -1:
			eq = i
		case c == ';':
			if !isSeparator(data, i+1) {
				continue
			}

			s.pos = i

			return strutil.RStripWS(data[start:i]), true
		}
	}

	s.pos = len(data)

	return strutil.RStripWS(data[start:]), true
}

// escaped tells whether the character at pos is preceded by an odd run of
// backslashes, i.e. the backslash right before it is not itself escaped.
func escaped(data string, pos int) bool {
	n := 0
	for pos-n-1 >= 0 && data[pos-n-1] == '\\' {
		n++
	}

	return n%2 == 1
}

// isSeparator classifies the semicolon right before pos as a cookie separator
// or a literal character of the current value. The decision is made on a
// bounded lookahead and never moves the scanner cursor: the caller commits an
// advance only after the verdict.
//
// A separator must be followed (after optional whitespace) by end of input,
// another semicolon, or a run of token characters leading to '='. A trailing
// run with no '=' before end of input still counts as a separator: the
// fragment becomes its own segment and is rejected downstream instead of
// silently gluing onto the previous value.
func isSeparator(data string, pos int) bool {
	for pos < len(data) && isWS(data[pos]) {
		pos++
	}

	if pos == len(data) || data[pos] == ';' {
		return true
	}

	n := 0
	for n < maxNameLookahead && pos+n < len(data) && tokenChars[data[pos+n]] {
		n++
	}

	if n == 0 {
		return false
	}

	pos += n
	for pos < len(data) && isWS(data[pos]) {
		pos++
	}

	return pos == len(data) || data[pos] == '='
}

// Segments returns a lazy iterator over the header's segments, backed by a
// fresh Scanner.
func Segments(header string) iter.Seq[string] {
	return func(yield func(string) bool) {
		s := NewScanner(header)

		for segment, ok := s.Next(); ok; segment, ok = s.Next() {
			if !yield(segment) {
				return
			}
		}
	}
}
