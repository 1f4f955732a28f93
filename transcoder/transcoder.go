package transcoder

import (
	"errors"
	"fmt"
	"slices"

	"hal-navigator/document"
)

var (
	// ErrEmptyParamPath is returned by New for a rule with no param path.
	ErrEmptyParamPath = errors.New("transcoder: rule has an empty param path")

	// ErrUnknownRuleKind is returned by New for a rule with an unrecognized
	// kind tag.
	ErrUnknownRuleKind = errors.New("transcoder: unknown rule kind")

	// ErrNotASequence is returned during encode when a multi-link rule's
	// encoded value is not a sequence of link targets.
	ErrNotASequence = errors.New("transcoder: multi-link value is not a sequence")
)

// An extractor reads one source out of a document, converts it, and places
// it into the parameter accumulator. An injector does the inverse.
type (
	extractor func(acc Params, doc *document.Document) (Params, error)
	injector  func(doc *document.Document, params Params) error
)

// Transcoder is a declaratively defined, bidirectional mapping between a HAL
// document and a parameter map. The rule list is finalized by New; from then
// on a Transcoder is read-only and safe for concurrent use.
type Transcoder struct {
	rules      []Rule
	extractors []extractor
	injectors  []injector
}

// New finalizes a rule list into a Transcoder. Rule order is preserved and
// significant: decode and encode fold over the rules in declaration order,
// so later rules may rely on containers populated by earlier ones.
//
// An empty param path or an unknown rule kind is a definition error.
func New(rules ...Rule) (*Transcoder, error) {
	t := &Transcoder{
		rules:      make([]Rule, 0, len(rules)),
		extractors: make([]extractor, 0, len(rules)),
		injectors:  make([]injector, 0, len(rules)),
	}

	for i, r := range rules {
		if len(r.ParamPath) == 0 {
			return nil, fmt.Errorf("%w: rule %d (%q)", ErrEmptyParamPath, i, r.Source)
		}

		if r.Converter == nil {
			r.Converter = Identity
		}

		r.ParamPath = slices.Clone(r.ParamPath)

		var (
			ext extractor
			inj injector
		)

		switch r.Kind {
		case RuleProperty:
			ext, inj = compileProperty(r)
		case RuleSingleLink:
			ext, inj = compileLink(r)
		case RuleMultiLink:
			ext, inj = compileLinks(r)
		default:
			return nil, fmt.Errorf("%w: rule %d (%q): %s", ErrUnknownRuleKind, i, r.Source, r.Kind)
		}

		t.rules = append(t.rules, r)
		t.extractors = append(t.extractors, ext)
		t.injectors = append(t.injectors, inj)
	}

	return t, nil
}

// Rules returns the finalized rule list in declaration order.
func (t *Transcoder) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)

	return out
}

// Decode extracts the registered sources from doc into a fresh parameter
// map.
func (t *Transcoder) Decode(doc *document.Document) (Params, error) {
	return t.DecodeInto(nil, doc)
}

// DecodeInto folds the extractors over doc in declaration order, starting
// from a copy of initial. Absent sources are skipped entirely: no converter
// call, no write, and any pre-existing value at the path stays untouched.
func (t *Transcoder) DecodeInto(initial Params, doc *document.Document) (Params, error) {
	acc := initial.Clone()

	for _, ext := range t.extractors {
		var err error

		acc, err = ext(acc, doc)
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// Encode injects the registered parameter values into a fresh document.
func (t *Transcoder) Encode(params Params) (*document.Document, error) {
	return t.EncodeInto(nil, params)
}

// EncodeInto folds the injectors over a copy of initial in declaration
// order. A nil initial starts from an empty document. Absent parameter paths
// are a no-op, so unset document state is preserved by omission rather than
// by writing nulls.
func (t *Transcoder) EncodeInto(initial *document.Document, params Params) (*document.Document, error) {
	var acc *document.Document
	if initial == nil {
		acc = document.New()
	} else {
		acc = initial.Clone()
	}

	for _, inj := range t.injectors {
		if err := inj(acc, params); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func compileProperty(r Rule) (extractor, injector) {
	ext := func(acc Params, doc *document.Document) (Params, error) {
		raw, ok := doc.Property(r.Source)
		if !ok {
			return acc, nil
		}

		v, err := r.Converter.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("transcoder: decode property %q: %w", r.Source, err)
		}

		return acc.PutPath(r.ParamPath, v), nil
	}

	inj := func(doc *document.Document, params Params) error {
		v, ok := params.GetPath(r.ParamPath)
		if !ok {
			return nil
		}

		raw, err := r.Converter.Encode(v)
		if err != nil {
			return fmt.Errorf("transcoder: encode property %q: %w", r.Source, err)
		}

		doc.PutProperty(r.Source, raw)

		return nil
	}

	return ext, inj
}

func compileLink(r Rule) (extractor, injector) {
	ext := func(acc Params, doc *document.Document) (Params, error) {
		target, ok := doc.LinkTarget(r.Source)
		if !ok {
			return acc, nil
		}

		v, err := r.Converter.Decode(target)
		if err != nil {
			return nil, fmt.Errorf("transcoder: decode link %q: %w", r.Source, err)
		}

		return acc.PutPath(r.ParamPath, v), nil
	}

	inj := func(doc *document.Document, params Params) error {
		v, ok := params.GetPath(r.ParamPath)
		if !ok {
			return nil
		}

		raw, err := r.Converter.Encode(v)
		if err != nil {
			return fmt.Errorf("transcoder: encode link %q: %w", r.Source, err)
		}

		target, err := asTarget(raw)
		if err != nil {
			return fmt.Errorf("transcoder: encode link %q: %w", r.Source, err)
		}

		doc.PutLink(r.Source, document.LinkFragment{Href: target})

		return nil
	}

	return ext, inj
}

func compileLinks(r Rule) (extractor, injector) {
	ext := func(acc Params, doc *document.Document) (Params, error) {
		targets := doc.LinkTargets(r.Source)
		if len(targets) == 0 {
			return acc, nil
		}

		v, err := r.Converter.Decode(targets)
		if err != nil {
			return nil, fmt.Errorf("transcoder: decode links %q: %w", r.Source, err)
		}

		return acc.PutPath(r.ParamPath, v), nil
	}

	inj := func(doc *document.Document, params Params) error {
		v, ok := params.GetPath(r.ParamPath)
		if !ok {
			return nil
		}

		raw, err := r.Converter.Encode(v)
		if err != nil {
			return fmt.Errorf("transcoder: encode links %q: %w", r.Source, err)
		}

		targets, err := asTargets(raw)
		if err != nil {
			return fmt.Errorf("transcoder: encode links %q: %w", r.Source, err)
		}

		for _, target := range targets {
			doc.PutLink(r.Source, document.LinkFragment{Href: target})
		}

		return nil
	}

	return ext, inj
}

func asTarget(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("link target must be a string, got %T", v)
	}

	return s, nil
}

func asTargets(v any) ([]string, error) {
	switch tv := v.(type) {
	case []string:
		return tv, nil

	case []any:
		out := make([]string, 0, len(tv))
		for _, e := range tv {
			s, err := asTarget(e)
			if err != nil {
				return nil, err
			}

			out = append(out, s)
		}

		return out, nil

	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotASequence, v)
	}
}
