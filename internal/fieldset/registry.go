package fieldset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrSpecExists   = errors.New("field spec already exists")
	ErrInvalidSpec  = errors.New("invalid field spec")
	ErrUnknownField = errors.New("unknown field")
)

// Spec declares one fixed-capacity ASCII field.
type Spec struct {
	Name     string
	Capacity int
}

// Registry stores field specs by stable name.
type Registry struct {
	items map[string]Spec
}

// New creates an empty field registry.
func New() *Registry {
	return &Registry{items: make(map[string]Spec)}
}

// ValidateSpec checks required spec fields and name format.
func ValidateSpec(spec Spec) error {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSpec)
	}
	if !isValidName(name) {
		return fmt.Errorf("%w: invalid name format %q", ErrInvalidSpec, name)
	}
	if spec.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidSpec, spec.Capacity)
	}
	return nil
}

// Register adds a spec to the registry.
func (r *Registry) Register(spec Spec) error {
	if err := ValidateSpec(spec); err != nil {
		return err
	}

	if _, ok := r.items[spec.Name]; ok {
		return ErrSpecExists
	}
	r.items[spec.Name] = spec
	return nil
}

// Resolve returns a spec by name.
func (r *Registry) Resolve(name string) (Spec, bool) {
	spec, ok := r.items[name]
	return spec, ok
}

// List returns deterministic spec ordering by name.
func (r *Registry) List() []Spec {
	list := make([]Spec, 0, len(r.items))
	for _, spec := range r.items {
		list = append(list, spec)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}

func isValidName(name string) bool {
	if name == "" {
		return false
	}
	lastSep := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		isSep := c == '.' || c == '-' || c == '_'
		if !(isLower || isDigit || isSep) {
			return false
		}
		if i == 0 || i == len(name)-1 {
			if isSep {
				return false
			}
		}
		if isSep && lastSep {
			return false
		}
		lastSep = isSep
	}
	return true
}
