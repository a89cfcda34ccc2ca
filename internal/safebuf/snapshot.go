package safebuf

import "bytes"

// Snapshot is a frozen, read-only view of a buffer taken at a point in
// time. It exposes only the pure accessors; no mutating operation is
// reachable through it, so one can be handed to code that must observe
// content without the ability to change it.
type Snapshot struct {
	data     []byte // private copy, never aliased to the source buffer
	capacity int
}

// Snapshot captures the current content. Later mutations of b do not
// show through the view.
func (b *Buffer) Snapshot() Snapshot {
	data := make([]byte, b.n)
	copy(data, b.data[:b.n])
	return Snapshot{data: data, capacity: len(b.data)}
}

// At returns the character at index i under the same bounds rule as
// Buffer.At.
func (s Snapshot) At(i int) (byte, error) {
	if i < 0 || i >= len(s.data) {
		return 0, IndexOutOfBoundsError{Op: "at", Index: i, Length: len(s.data), Capacity: s.capacity}
	}
	return s.data[i], nil
}

// String returns the captured content.
func (s Snapshot) String() string { return string(s.data) }

// Bytes returns a copy of the captured content.
func (s Snapshot) Bytes() []byte {
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}

func (s Snapshot) Len() int       { return len(s.data) }
func (s Snapshot) Cap() int       { return s.capacity }
func (s Snapshot) Remaining() int { return s.capacity - len(s.data) }
func (s Snapshot) IsFull() bool   { return len(s.data) == s.capacity }
func (s Snapshot) IsEmpty() bool  { return len(s.data) == 0 }

// Equal reports content equality between snapshots; capacity is ignored
// exactly as in Buffer.Equal.
func (s Snapshot) Equal(other Snapshot) bool {
	return bytes.Equal(s.data, other.data)
}

// EqualString reports whether the captured content equals v.
func (s Snapshot) EqualString(v string) bool {
	return string(s.data) == v
}
