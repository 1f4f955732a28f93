package definition

import (
	"errors"
	"fmt"

	"hal-navigator/convert"
	"hal-navigator/transcoder"
)

// ErrDuplicateConverter is returned when registering a converter under a
// name already taken.
var ErrDuplicateConverter = errors.New("definition: duplicate converter name")

// ConverterRegistry holds named value converters for definition files to
// reference. Populate it before building; it is read-only during Build.
type ConverterRegistry struct {
	converters map[string]transcoder.Converter
}

// NewConverterRegistry creates an empty registry.
func NewConverterRegistry() *ConverterRegistry {
	return &ConverterRegistry{
		converters: make(map[string]transcoder.Converter),
	}
}

// DefaultRegistry creates a registry preloaded with the convert package's
// converters under their conventional names.
func DefaultRegistry() *ConverterRegistry {
	r := NewConverterRegistry()

	defaults := map[string]transcoder.Converter{
		"identity":     transcoder.Identity,
		"datetime":     convert.Datetime{},
		"timestamp":    convert.Timestamp{},
		"duration":     convert.Duration{},
		"seconds":      convert.Seconds{},
		"textual-bool": convert.TextualBool{},
		"numeric-bool": convert.NumericBool{},
		"text-number":  convert.TextNumber{},
	}

	for name, c := range defaults {
		// Names are distinct by construction.
		_ = r.Register(name, c)
	}

	return r
}

// Register adds a converter under the given name.
func (r *ConverterRegistry) Register(name string, c transcoder.Converter) error {
	if _, exists := r.converters[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateConverter, name)
	}

	r.converters[name] = c

	return nil
}

// Get returns a converter by name.
func (r *ConverterRegistry) Get(name string) (transcoder.Converter, bool) {
	c, ok := r.converters[name]
	return c, ok
}
