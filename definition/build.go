package definition

import (
	"errors"
	"fmt"

	"hal-navigator/transcoder"
)

var (
	// ErrNoSource is returned for a rule entry that sets none of property,
	// link, or links.
	ErrNoSource = errors.New("definition: rule sets no source")

	// ErrAmbiguousSource is returned for a rule entry that sets more than
	// one of property, link, or links.
	ErrAmbiguousSource = errors.New("definition: rule sets more than one source")

	// ErrUnknownConverter is returned when a rule names a converter absent
	// from the registry.
	ErrUnknownConverter = errors.New("definition: unknown converter")
)

// Build turns a parsed definition file into a transcoder, resolving
// converter names against the given registry. A nil registry means
// DefaultRegistry.
func Build(f *File, registry *ConverterRegistry) (*transcoder.Transcoder, error) {
	if registry == nil {
		registry = DefaultRegistry()
	}

	rules := make([]transcoder.Rule, 0, len(f.Rules))

	for i := range f.Rules {
		rule, err := buildRule(&f.Rules[i], registry)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}

		rules = append(rules, rule)
	}

	return transcoder.New(rules...)
}

func buildRule(def *RuleDef, registry *ConverterRegistry) (transcoder.Rule, error) {
	kind, source, err := sourceOf(def)
	if err != nil {
		return transcoder.Rule{}, err
	}

	var opts []transcoder.RuleOption

	if !def.Param.IsEmpty() {
		opts = append(opts, transcoder.Param(def.Param...))
	}

	if def.Converter != "" {
		c, ok := registry.Get(def.Converter)
		if !ok {
			return transcoder.Rule{}, fmt.Errorf("%w: %q", ErrUnknownConverter, def.Converter)
		}

		opts = append(opts, transcoder.Convert(c))
	}

	switch kind {
	case transcoder.RuleProperty:
		return transcoder.Property(source, opts...), nil
	case transcoder.RuleSingleLink:
		return transcoder.Link(source, opts...), nil
	default:
		return transcoder.Links(source, opts...), nil
	}
}

func sourceOf(def *RuleDef) (transcoder.RuleKind, string, error) {
	var (
		kind   transcoder.RuleKind
		source string
		set    int
	)

	if def.Property != "" {
		kind, source = transcoder.RuleProperty, def.Property
		set++
	}

	if def.Link != "" {
		kind, source = transcoder.RuleSingleLink, def.Link
		set++
	}

	if def.Links != "" {
		kind, source = transcoder.RuleMultiLink, def.Links
		set++
	}

	switch set {
	case 0:
		return 0, "", ErrNoSource
	case 1:
		return kind, source, nil
	default:
		return 0, "", ErrAmbiguousSource
	}
}
