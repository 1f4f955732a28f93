// Package document implements a HAL+JSON document: a property bag plus the
// reserved _links and _embedded sections.
//
// The accessors model absence explicitly (value, ok) instead of raising;
// missing properties and relations are the expected, common case when
// navigating hypermedia.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

const (
	linksSection    = "_links"
	embeddedSection = "_embedded"
	selfRel         = "self"
)

var ErrNotAnObject = errors.New("document: top-level JSON value is not an object")

// LinkFragment is one raw entry of a document's _links section.
type LinkFragment struct {
	Href      string `json:"href,omitempty"`
	Templated bool   `json:"templated,omitempty"`
	Name      string `json:"name,omitempty"`
	Title     string `json:"title,omitempty"`
	Type      string `json:"type,omitempty"`
}

// Document is a parsed HAL+JSON resource representation.
//
// The zero value is not usable; construct with New or Parse. Documents are
// not safe for concurrent mutation; treat a shared Document as read-only or
// Clone it first.
type Document struct {
	properties map[string]any
	links      map[string][]LinkFragment
	embedded   map[string][]*Document
}

// New returns an empty document.
func New() *Document {
	return &Document{
		properties: map[string]any{},
		links:      map[string][]LinkFragment{},
		embedded:   map[string][]*Document{},
	}
}

// Parse decodes a HAL+JSON document from raw bytes.
func Parse(data []byte) (*Document, error) {
	doc := New()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("document: parse: %w", err)
	}

	return doc, nil
}

// Property returns the value of a plain (non-reserved) property.
func (d *Document) Property(key string) (any, bool) {
	v, ok := d.properties[key]
	return v, ok
}

// PropertyOr returns the property value, or the result of the fallback thunk
// when the property is absent. The thunk is invoked only on absence.
func (d *Document) PropertyOr(key string, fallback func() any) any {
	if v, ok := d.properties[key]; ok {
		return v
	}

	return fallback()
}

// PropertyNames returns the names of all plain properties, sorted.
func (d *Document) PropertyNames() []string {
	names := make([]string, 0, len(d.properties))
	for k := range d.properties {
		names = append(names, k)
	}

	slices.Sort(names)

	return names
}

// Links returns the raw _links fragments registered under rel.
func (d *Document) Links(rel string) []LinkFragment {
	return slices.Clone(d.links[rel])
}

// LinkTarget returns the href of the first link under rel.
func (d *Document) LinkTarget(rel string) (string, bool) {
	frags := d.links[rel]
	if len(frags) == 0 {
		return "", false
	}

	return frags[0].Href, true
}

// LinkTargets returns the hrefs of every link under rel, in document order.
func (d *Document) LinkTargets(rel string) []string {
	frags := d.links[rel]
	if len(frags) == 0 {
		return nil
	}

	targets := make([]string, 0, len(frags))
	for _, f := range frags {
		targets = append(targets, f.Href)
	}

	return targets
}

// LinkRels returns every relation present in _links, sorted.
func (d *Document) LinkRels() []string {
	rels := make([]string, 0, len(d.links))
	for rel := range d.links {
		rels = append(rels, rel)
	}

	slices.Sort(rels)

	return rels
}

// Embedded returns the sub-documents registered under rel in _embedded.
func (d *Document) Embedded(rel string) []*Document {
	return slices.Clone(d.embedded[rel])
}

// EmbeddedRels returns every relation present in _embedded, sorted.
func (d *Document) EmbeddedRels() []string {
	rels := make([]string, 0, len(d.embedded))
	for rel := range d.embedded {
		rels = append(rels, rel)
	}

	slices.Sort(rels)

	return rels
}

// SelfURL returns the document's canonical URL, taken from its "self" link.
func (d *Document) SelfURL() (string, bool) {
	return d.LinkTarget(selfRel)
}

// PutProperty sets a plain property, replacing any previous value.
func (d *Document) PutProperty(key string, value any) {
	d.properties[key] = value
}

// PutLink appends a link fragment under rel. Repeated writes under one
// relation accumulate into a list; nothing is overwritten.
func (d *Document) PutLink(rel string, frag LinkFragment) {
	d.links[rel] = append(d.links[rel], frag)
}

// PutEmbedded appends a sub-document under rel in _embedded.
func (d *Document) PutEmbedded(rel string, doc *Document) {
	d.embedded[rel] = append(d.embedded[rel], doc)
}

// Clone returns a deep copy. Property values are copied per container level
// (maps and slices of any); other values are shared, which is safe as long
// as callers treat them as immutable.
func (d *Document) Clone() *Document {
	out := New()

	for k, v := range d.properties {
		out.properties[k] = cloneValue(v)
	}

	for rel, frags := range d.links {
		out.links[rel] = slices.Clone(frags)
	}

	for rel, docs := range d.embedded {
		cloned := make([]*Document, 0, len(docs))
		for _, sub := range docs {
			cloned = append(cloned, sub.Clone())
		}

		out.embedded[rel] = cloned
	}

	return out
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, e := range tv {
			out[k] = cloneValue(e)
		}

		return out

	case []any:
		out := make([]any, 0, len(tv))
		for _, e := range tv {
			out = append(out, cloneValue(e))
		}

		return out

	default:
		return v
	}
}
