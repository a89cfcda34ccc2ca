package safebuf

import (
	"errors"
	"testing"
)

func TestSnapshotIsFrozenAgainstSourceMutation(t *testing.T) {
	b := mustBuffer(t, 16, "hello")
	snap := b.Snapshot()
	if err := b.Append(" world"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	b.Clear()
	if got := snap.String(); got != "hello" {
		t.Fatalf("snapshot changed with source: %q", got)
	}
	if snap.Len() != 5 || snap.Cap() != 16 || snap.Remaining() != 11 {
		t.Fatalf("Len/Cap/Remaining = %d/%d/%d, want 5/16/11", snap.Len(), snap.Cap(), snap.Remaining())
	}
}

func TestSnapshotAtFollowsContentBounds(t *testing.T) {
	snap := mustBuffer(t, 5, "abc").Snapshot()
	c, err := snap.At(1)
	if err != nil || c != 'b' {
		t.Fatalf("At(1) = %q, %v", c, err)
	}
	for _, idx := range []int{-1, 3, 4} {
		_, err := snap.At(idx)
		var berr IndexOutOfBoundsError
		if !errors.As(err, &berr) {
			t.Fatalf("At(%d): expected IndexOutOfBoundsError, got %v", idx, err)
		}
	}
}

func TestSnapshotEquality(t *testing.T) {
	a := mustBuffer(t, 10, "hello").Snapshot()
	b := mustBuffer(t, 5, "hello").Snapshot()
	c := mustBuffer(t, 10, "world").Snapshot()
	if !a.Equal(b) {
		t.Fatal("equal content in different capacities must compare equal")
	}
	if a.Equal(c) {
		t.Fatal("different content must not compare equal")
	}
	if !a.EqualString("hello") || a.EqualString("") {
		t.Fatal("EqualString mismatch")
	}
}

func TestSnapshotOfEmptyBuffer(t *testing.T) {
	b := mustBuffer(t, 3, "")
	snap := b.Snapshot()
	if !snap.IsEmpty() || snap.IsFull() {
		t.Fatalf("empty snapshot reports Len=%d full=%v", snap.Len(), snap.IsFull())
	}
	out := snap.Bytes()
	if len(out) != 0 {
		t.Fatalf("Bytes() = %v, want empty", out)
	}
}

func TestSnapshotBytesDoesNotAliasView(t *testing.T) {
	snap := mustBuffer(t, 4, "abcd").Snapshot()
	raw := snap.Bytes()
	raw[0] = 'Z'
	if got := snap.String(); got != "abcd" {
		t.Fatalf("Bytes() aliased snapshot storage: %q", got)
	}
	if !snap.IsFull() {
		t.Fatal("expected full snapshot")
	}
}
