package safebuf

import (
	"bytes"
	"strings"
)

// Find returns the index of the first occurrence of sub in the content,
// or -1 when absent. A non-ASCII needle is rejected rather than treated
// as a miss: it can never legally occur in a buffer, so searching for
// one marks caller-side encoding confusion.
func (b *Buffer) Find(sub string) (int, error) {
	if i, r := firstNonASCII(sub); i >= 0 {
		return -1, InvalidCharacterError{Op: "find", Index: i, Char: r}
	}
	return bytes.Index(b.data[:b.n], []byte(sub)), nil
}

// Substring copies count characters starting at start into a new buffer
// with the same capacity as the source. count is clamped to the
// available content and a negative count means "through the end". start
// may equal Len(), yielding an empty result.
func (b *Buffer) Substring(start, count int) (*Buffer, error) {
	if start < 0 || start > b.n {
		return nil, IndexOutOfBoundsError{Op: "substring", Index: start, Length: b.n, Capacity: len(b.data)}
	}
	avail := b.n - start
	if count < 0 || count > avail {
		count = avail
	}
	out := &Buffer{data: make([]byte, len(b.data)), n: count}
	copy(out.data, b.data[start:start+count])
	return out, nil
}

// Concat returns a new buffer holding the content of b followed by the
// content of other. The result's capacity is the larger of the two
// source capacities; the combined content must fit it.
func (b *Buffer) Concat(other *Buffer) (*Buffer, error) {
	capacity := len(b.data)
	if len(other.data) > capacity {
		capacity = len(other.data)
	}
	total := b.n + other.n
	if total > capacity {
		return nil, OverflowError{Op: "concat", Attempted: total, Length: b.n, Capacity: capacity}
	}
	out := &Buffer{data: make([]byte, capacity), n: total}
	copy(out.data, b.data[:b.n])
	copy(out.data[b.n:], other.data[:other.n])
	return out, nil
}

// HasPrefix reports whether the content starts with prefix.
func (b *Buffer) HasPrefix(prefix string) (bool, error) {
	if i, r := firstNonASCII(prefix); i >= 0 {
		return false, InvalidCharacterError{Op: "prefix", Index: i, Char: r}
	}
	return bytes.HasPrefix(b.data[:b.n], []byte(prefix)), nil
}

// HasSuffix reports whether the content ends with suffix.
func (b *Buffer) HasSuffix(suffix string) (bool, error) {
	if i, r := firstNonASCII(suffix); i >= 0 {
		return false, InvalidCharacterError{Op: "suffix", Index: i, Char: r}
	}
	return bytes.HasSuffix(b.data[:b.n], []byte(suffix)), nil
}

// Replace returns a new buffer, with the same capacity as b, in which
// every occurrence of old is replaced by new. b itself is not modified.
// An empty old follows strings.ReplaceAll and inserts new before every
// character and at the end.
func (b *Buffer) Replace(old, new string) (*Buffer, error) {
	if i, r := firstNonASCII(old); i >= 0 {
		return nil, InvalidCharacterError{Op: "replace", Index: i, Char: r}
	}
	if i, r := firstNonASCII(new); i >= 0 {
		return nil, InvalidCharacterError{Op: "replace", Index: i, Char: r}
	}
	replaced := strings.ReplaceAll(string(b.data[:b.n]), old, new)
	if len(replaced) > len(b.data) {
		return nil, OverflowError{Op: "replace", Attempted: len(replaced), Length: b.n, Capacity: len(b.data)}
	}
	out := &Buffer{data: make([]byte, len(b.data)), n: len(replaced)}
	copy(out.data, replaced)
	return out, nil
}
