package transcoder

//go:generate go tool stringer -type=RuleKind

// RuleKind tags the three transcoder rule variants.
type RuleKind int

const (
	RuleUnknown RuleKind = iota
	RuleProperty
	RuleSingleLink
	RuleMultiLink

	// RuleKindTotal is the number of defined kinds.
	RuleKindTotal = int(iota)
)

// Rule pairs one extraction and one injection over a single document source:
// a property name or a link relation. Rules are declared up front and are
// immutable once handed to New.
type Rule struct {
	// Kind selects property, single-link, or multi-link behavior.
	Kind RuleKind

	// Source is the HAL property name or link relation the rule reads and
	// writes.
	Source string

	// ParamPath locates the value in the parameter map. Length 1 for a flat
	// key, longer for nested placement. Must be non-empty.
	ParamPath []string

	// Converter translates between raw document values and parameter
	// values. Nil means Identity.
	Converter Converter
}

// RuleOption customizes a rule at declaration time.
type RuleOption func(*Rule)

// Param places the rule's value at the given key path in the parameter map
// instead of the default flat key named after the source.
func Param(keys ...string) RuleOption {
	return func(r *Rule) { r.ParamPath = keys }
}

// Convert attaches a value converter to the rule.
func Convert(c Converter) RuleOption {
	return func(r *Rule) { r.Converter = c }
}

// Property declares a rule transcoding a plain document property.
func Property(name string, opts ...RuleOption) Rule {
	return newRule(RuleProperty, name, opts)
}

// Link declares a rule transcoding the single link target under rel.
func Link(rel string, opts ...RuleOption) Rule {
	return newRule(RuleSingleLink, rel, opts)
}

// Links declares a rule transcoding every link target under rel as a
// sequence.
func Links(rel string, opts ...RuleOption) Rule {
	return newRule(RuleMultiLink, rel, opts)
}

func newRule(kind RuleKind, source string, opts []RuleOption) Rule {
	r := Rule{
		Kind:      kind,
		Source:    source,
		ParamPath: []string{source},
		Converter: Identity,
	}

	for _, opt := range opts {
		opt(&r)
	}

	return r
}
