// Package fieldset owns named field capacity contracts.
//
// Ownership boundary:
// - field spec identity and validation
// - spec registry primitives
// - per-field buffer construction
//
// A fieldset is how a layer declares its fixed-size ASCII fields once
// and mints validated safebuf content for them. It adds no behavior to
// the buffers it hands out.
package fieldset
