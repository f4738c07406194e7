package splitcookies

// tokenChars marks characters legal in a cookie name, which is an HTTP token
// per RFC 6265: printable ASCII except separators. Wider than the alnum-only
// shape some parsers assume, so names like __Host-id or a.b are recognized.
var tokenChars [256]bool

func init() {
	for c := 0x21; c < 0x7f; c++ {
		switch c {
		case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"',
			'/', '[', ']', '?', '=', '{', '}':
		default:
			tokenChars[c] = true
		}
	}
}

func isWS(c byte) bool {
	return c == ' ' || c == '\t'
}
