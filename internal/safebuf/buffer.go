package safebuf

import (
	"bytes"
	"unicode"
)

// Buffer is a fixed-capacity character buffer that only ever holds
// ASCII content. Capacity is set once at construction and never
// changes; every operation either applies fully or rejects with the
// buffer untouched. Create one with New or NewString.
//
// A Buffer assumes one caller at a time. Share across goroutines only
// with external synchronization.
type Buffer struct {
	data []byte // backing storage, len(data) == capacity, allocated once
	n    int    // current content length, 0 <= n <= len(data)
}

// New creates an empty buffer with the given fixed capacity.
func New(capacity int) (*Buffer, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Buffer{data: make([]byte, capacity)}, nil
}

// NewString creates a buffer with the given fixed capacity holding
// initial. Validation matches Set; on rejection no buffer is returned.
func NewString(capacity int, initial string) (*Buffer, error) {
	b, err := New(capacity)
	if err != nil {
		return nil, err
	}
	if err := b.overwrite("create", initial); err != nil {
		return nil, err
	}
	return b, nil
}

// Append adds text after the current content. Character validation runs
// before the capacity check, so input that is both non-ASCII and too
// large reports InvalidCharacterError.
func (b *Buffer) Append(text string) error {
	if i, r := firstNonASCII(text); i >= 0 {
		return InvalidCharacterError{Op: "append", Index: i, Char: r}
	}
	if b.n+len(text) > len(b.data) {
		return OverflowError{Op: "append", Attempted: b.n + len(text), Length: b.n, Capacity: len(b.data)}
	}
	copy(b.data[b.n:], text)
	b.n += len(text)
	return nil
}

// AppendByte adds a single character.
func (b *Buffer) AppendByte(c byte) error {
	if c > unicode.MaxASCII {
		return InvalidCharacterError{Op: "append", Index: 0, Char: rune(c)}
	}
	if b.n >= len(b.data) {
		return OverflowError{Op: "append", Attempted: b.n + 1, Length: b.n, Capacity: len(b.data)}
	}
	b.data[b.n] = c
	b.n++
	return nil
}

// AppendBytes is Append for raw payload bytes.
func (b *Buffer) AppendBytes(p []byte) error {
	if i, c := firstNonASCIIByte(p); i >= 0 {
		return InvalidCharacterError{Op: "append", Index: i, Char: rune(c)}
	}
	if b.n+len(p) > len(b.data) {
		return OverflowError{Op: "append", Attempted: b.n + len(p), Length: b.n, Capacity: len(b.data)}
	}
	copy(b.data[b.n:], p)
	b.n += len(p)
	return nil
}

// Set replaces the entire content with text. Prior content does not
// count against the capacity check since it is discarded on success.
func (b *Buffer) Set(text string) error {
	return b.overwrite("set", text)
}

func (b *Buffer) overwrite(op, text string) error {
	if i, r := firstNonASCII(text); i >= 0 {
		return InvalidCharacterError{Op: op, Index: i, Char: r}
	}
	if len(text) > len(b.data) {
		return OverflowError{Op: op, Attempted: len(text), Length: b.n, Capacity: len(b.data)}
	}
	copy(b.data, text)
	b.n = len(text)
	return nil
}

// At returns the character at index i. Valid indexes address current
// content only: 0 <= i < Len(), regardless of spare capacity.
func (b *Buffer) At(i int) (byte, error) {
	if i < 0 || i >= b.n {
		return 0, IndexOutOfBoundsError{Op: "at", Index: i, Length: b.n, Capacity: len(b.data)}
	}
	return b.data[i], nil
}

// Clear empties the buffer. It always succeeds, is idempotent, and
// leaves the capacity unchanged.
func (b *Buffer) Clear() {
	b.n = 0
}

// String returns a copy of the current content.
func (b *Buffer) String() string {
	return string(b.data[:b.n])
}

// Bytes returns a copy of the current content. Backing storage is never
// shared with callers.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, b.n)
	copy(out, b.data[:b.n])
	return out
}

// Len returns the current content length.
func (b *Buffer) Len() int { return b.n }

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int { return len(b.data) }

// Remaining returns how many characters can still be appended.
func (b *Buffer) Remaining() int { return len(b.data) - b.n }

// IsFull reports whether the content has reached capacity.
func (b *Buffer) IsFull() bool { return b.n == len(b.data) }

// IsEmpty reports whether the buffer holds no content.
func (b *Buffer) IsEmpty() bool { return b.n == 0 }

// Equal reports whether two buffers hold identical content. Capacity is
// not part of equality: a 5-capacity buffer holding "ab" equals a
// 10-capacity buffer holding "ab".
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	return bytes.Equal(b.data[:b.n], other.data[:other.n])
}

// EqualString reports whether the content equals s.
func (b *Buffer) EqualString(s string) bool {
	return string(b.data[:b.n]) == s
}

// Clone returns an independent buffer with the same capacity and a copy
// of the content.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{data: make([]byte, len(b.data)), n: b.n}
	copy(out.data, b.data[:b.n])
	return out
}
