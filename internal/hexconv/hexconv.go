package hexconv

// Halfbyte maps an ASCII character to its hex digit value. 0xFF marks
// characters that aren't hex digits.
var Halfbyte [256]byte

func init() {
	for i := range Halfbyte {
		Halfbyte[i] = 0xFF
	}

	for c := byte('0'); c <= '9'; c++ {
		Halfbyte[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		Halfbyte[c] = c - 'a' + 10
	}

	for c := byte('A'); c <= 'F'; c++ {
		Halfbyte[c] = c - 'A' + 10
	}
}
