package safebuf

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity reports a constructor call with a non-positive
// capacity. It is a caller contract violation, not one of the three
// rejection kinds a live buffer can produce.
var ErrInvalidCapacity = errors.New("safebuf: capacity must be positive")

// OverflowError reports a write whose result would not fit within the
// fixed capacity. The buffer is left exactly as it was.
type OverflowError struct {
	Op        string // operation that was rejected
	Attempted int    // content length the operation would have produced
	Length    int    // content length at the time of the call
	Capacity  int
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("safebuf: %s: attempted length %d exceeds capacity %d (current length %d)",
		e.Op, e.Attempted, e.Capacity, e.Length)
}

// InvalidCharacterError reports input carrying a character outside the
// ASCII range. Index is the byte offset of the offending character
// within the rejected input, not within the buffer; Char is the decoded
// character so diagnostics stay readable.
type InvalidCharacterError struct {
	Op    string
	Index int
	Char  rune
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("safebuf: %s: non-ASCII character %q (%U) at input index %d",
		e.Op, e.Char, e.Char, e.Index)
}

// IndexOutOfBoundsError reports a read at an index outside the current
// content. Indexes between Length and Capacity are out of bounds too:
// reads address content, never raw storage.
type IndexOutOfBoundsError struct {
	Op       string
	Index    int
	Length   int
	Capacity int
}

func (e IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("safebuf: %s: index %d out of bounds (length %d, capacity %d)",
		e.Op, e.Index, e.Length, e.Capacity)
}
