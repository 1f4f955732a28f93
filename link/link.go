// Package link models HAL link relations: building Link values from raw
// _links fragments or embedded resources, computing target URLs (plain and
// RFC6570-templated), and expanding CURIE-prefixed relation names.
package link

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yosida95/uritemplate/v3"

	"hal-navigator/document"
)

var (
	// ErrMissingHref is returned when a _links fragment carries no href.
	// Such a fragment is malformed input, not a navigable link.
	ErrMissingHref = errors.New("link: fragment has no href")

	// ErrAnonymousLink is returned by ResolveTarget for a link that has no
	// target URL and is not templated. Callers must check for it before
	// using the resolved URL.
	ErrAnonymousLink = errors.New("link: link has no target URL")
)

// Namespaces maps a CURIE prefix to the URI template of its relation
// namespace, e.g. "app" -> "http://example.com/rels/{rel}".
type Namespaces map[string]string

// Vars holds named variable bindings for URI template expansion.
type Vars map[string]string

// Link is one hypermedia relation of a document. Links are value types:
// transformations such as CURIE expansion return new Links and never mutate
// in place.
type Link struct {
	// Rel is the relation name, possibly CURIE-prefixed ("app:manager").
	Rel string

	// TargetURL is the link's URL, or a URI template pattern when Templated
	// is set. Empty means the link is anonymous.
	TargetURL string

	// Templated marks TargetURL as an RFC6570 URI template.
	Templated bool

	// Name disambiguates multiple links sharing a relation. Optional.
	Name string

	// Target references the embedded document this link was derived from.
	// Nil for links built from plain _links fragments.
	Target *document.Document
}

// FromLinksEntry builds a Link from one raw _links fragment. A fragment
// without an href is malformed and rejected immediately.
func FromLinksEntry(rel string, frag document.LinkFragment) (Link, error) {
	if frag.Href == "" {
		return Link{}, fmt.Errorf("%w: rel %q", ErrMissingHref, rel)
	}

	return Link{
		Rel:       rel,
		TargetURL: frag.Href,
		Templated: frag.Templated,
		Name:      frag.Name,
	}, nil
}

// FromEmbedded derives a Link from an embedded resource. The target URL is
// the embedded document's own self link, absent when the document has none;
// the Link keeps a reference to the document itself.
func FromEmbedded(rel string, doc *document.Document) Link {
	l := Link{Rel: rel, Target: doc}
	if url, ok := doc.SelfURL(); ok {
		l.TargetURL = url
	}

	return l
}

// ResolveTarget computes the link's concrete target URL.
//
// Templated links are expanded against vars with RFC6570 semantics: missing
// variables contribute nothing, supplied ones are encoded per the template's
// operator. Non-templated links return TargetURL verbatim, or
// ErrAnonymousLink when there is none.
func (l Link) ResolveTarget(vars Vars) (string, error) {
	if !l.Templated {
		if l.TargetURL == "" {
			return "", fmt.Errorf("%w: rel %q", ErrAnonymousLink, l.Rel)
		}

		return l.TargetURL, nil
	}

	tmpl, err := uritemplate.New(l.TargetURL)
	if err != nil {
		return "", fmt.Errorf("link: rel %q: bad URI template %q: %w", l.Rel, l.TargetURL, err)
	}

	values := make(uritemplate.Values, len(vars))
	for name, v := range vars {
		values[name] = uritemplate.String(v)
	}

	expanded, err := tmpl.Expand(values)
	if err != nil {
		return "", fmt.Errorf("link: rel %q: expand %q: %w", l.Rel, l.TargetURL, err)
	}

	return expanded, nil
}

// ExpandCurie resolves a CURIE-prefixed relation against a namespace table.
//
// A rel without a colon is returned unchanged as a single-element sequence.
// On a namespace hit the result is [original, expanded], where the expanded
// variant has its Rel replaced by the namespace template applied to the
// local part (variable "rel"). Unknown prefixes are not an error: the
// original link comes back alone.
func (l Link) ExpandCurie(namespaces Namespaces) []Link {
	prefix, local, found := strings.Cut(l.Rel, ":")
	if !found {
		return []Link{l}
	}

	pattern, ok := namespaces[prefix]
	if !ok {
		return []Link{l}
	}

	tmpl, err := uritemplate.New(pattern)
	if err != nil {
		return []Link{l}
	}

	expanded, err := tmpl.Expand(uritemplate.Values{"rel": uritemplate.String(local)})
	if err != nil {
		return []Link{l}
	}

	variant := l
	variant.Rel = expanded

	return []Link{l, variant}
}
