package fieldset

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/fieldbuf/internal/safebuf"
)

// FieldError ties a buffer rejection to the field it occurred on. It
// unwraps to the underlying safebuf error so callers can match both the
// field and the rejection kind.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e FieldError) Unwrap() error { return e.Err }

// Build constructs a buffer for the named field holding value. The
// capacity comes from the registered spec; the value must clear the
// buffer contract in full.
func (r *Registry) Build(name, value string) (*safebuf.Buffer, error) {
	spec, ok := r.items[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	log.Debug().
		Str("field", spec.Name).
		Int("capacity", spec.Capacity).
		Int("value_len", len(value)).
		Msg("fieldset: build")
	buf, err := safebuf.NewString(spec.Capacity, value)
	if err != nil {
		log.Debug().Str("field", spec.Name).Err(err).Msg("fieldset: build rejected")
		return nil, FieldError{Field: spec.Name, Err: err}
	}
	return buf, nil
}

// BuildEmpty constructs an empty buffer for the named field, ready for
// incremental appends up to the spec capacity.
func (r *Registry) BuildEmpty(name string) (*safebuf.Buffer, error) {
	spec, ok := r.items[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	buf, err := safebuf.New(spec.Capacity)
	if err != nil {
		return nil, FieldError{Field: spec.Name, Err: err}
	}
	return buf, nil
}
