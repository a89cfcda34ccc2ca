package safebuf

import "unicode"

// firstNonASCII returns the byte offset and value of the first character
// in s outside the ASCII range, or (-1, 0) when s is clean. Offsets are
// byte positions; for the all-ASCII prefix preceding the offender they
// coincide with character positions.
func firstNonASCII(s string) (int, rune) {
	for i, r := range s {
		if r > unicode.MaxASCII {
			return i, r
		}
	}
	return -1, 0
}

// firstNonASCIIByte is the raw-bytes form. Payload bytes are checked
// individually: any octet above 0x7F is rejected without attempting
// UTF-8 decoding.
func firstNonASCIIByte(p []byte) (int, byte) {
	for i, c := range p {
		if c > unicode.MaxASCII {
			return i, c
		}
	}
	return -1, 0
}
