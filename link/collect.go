package link

import (
	"fmt"
	"slices"

	"hal-navigator/document"
)

// ForRel collects every Link a document exposes under one relation, from
// both its _links fragments and its _embedded resources.
func ForRel(doc *document.Document, rel string) ([]Link, error) {
	var out []Link

	for _, frag := range doc.Links(rel) {
		l, err := FromLinksEntry(rel, frag)
		if err != nil {
			return nil, err
		}

		out = append(out, l)
	}

	for _, sub := range doc.Embedded(rel) {
		out = append(out, FromEmbedded(rel, sub))
	}

	return out, nil
}

// FromDocument collects every Link a document exposes, across all relations,
// ordered by relation name (links before embedded within a relation).
func FromDocument(doc *document.Document) ([]Link, error) {
	rels := doc.LinkRels()
	for _, rel := range doc.EmbeddedRels() {
		if len(doc.Links(rel)) == 0 {
			rels = append(rels, rel)
		}
	}

	slices.Sort(rels)

	var out []Link

	for _, rel := range rels {
		links, err := ForRel(doc, rel)
		if err != nil {
			return nil, fmt.Errorf("link: rel %q: %w", rel, err)
		}

		out = append(out, links...)
	}

	return out, nil
}
