// Package safebuf owns fixed-capacity ASCII buffer primitives.
//
// Ownership boundary:
// - buffer construction and the immutable capacity contract
// - ASCII validation and the rejection taxonomy
// - bounds-checked reads and derived-buffer operations
// - frozen read-only snapshots
//
// A Buffer never grows, never holds a character outside [0x00, 0x7F],
// and never partially applies a rejected operation. The package does
// no I/O and takes no locks; callers own concurrency.
package safebuf
