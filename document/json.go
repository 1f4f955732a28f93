package document

import (
	"encoding/json"
	"fmt"
)

// UnmarshalJSON implements custom JSON decoding for Document.
// The _links and _embedded sections accept both a single object and an array
// of objects per relation, as HAL permits; everything else lands in the
// property bag.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrNotAnObject, err)
	}

	if d.properties == nil {
		d.properties = map[string]any{}
	}
	if d.links == nil {
		d.links = map[string][]LinkFragment{}
	}
	if d.embedded == nil {
		d.embedded = map[string][]*Document{}
	}

	for key, value := range raw {
		switch key {
		case linksSection:
			if err := d.unmarshalLinks(value); err != nil {
				return err
			}

		case embeddedSection:
			if err := d.unmarshalEmbedded(value); err != nil {
				return err
			}

		default:
			var v any
			if err := json.Unmarshal(value, &v); err != nil {
				return fmt.Errorf("document: property %q: %w", key, err)
			}

			d.properties[key] = v
		}
	}

	return nil
}

func (d *Document) unmarshalLinks(data []byte) error {
	var section map[string]json.RawMessage
	if err := json.Unmarshal(data, &section); err != nil {
		return fmt.Errorf("document: _links section: %w", err)
	}

	for rel, entry := range section {
		frags, err := decodeOneOrMany[LinkFragment](entry)
		if err != nil {
			return fmt.Errorf("document: _links[%q]: %w", rel, err)
		}

		d.links[rel] = frags
	}

	return nil
}

func (d *Document) unmarshalEmbedded(data []byte) error {
	var section map[string]json.RawMessage
	if err := json.Unmarshal(data, &section); err != nil {
		return fmt.Errorf("document: _embedded section: %w", err)
	}

	for rel, entry := range section {
		docs, err := decodeOneOrMany[*Document](entry)
		if err != nil {
			return fmt.Errorf("document: _embedded[%q]: %w", rel, err)
		}

		d.embedded[rel] = docs
	}

	return nil
}

// decodeOneOrMany decodes a JSON value that may be either a single T or an
// array of T, normalizing to a slice.
func decodeOneOrMany[T any](data []byte) ([]T, error) {
	if len(data) > 0 && data[0] == '[' {
		var many []T
		if err := json.Unmarshal(data, &many); err != nil {
			return nil, err
		}

		return many, nil
	}

	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, err
	}

	return []T{one}, nil
}

// MarshalJSON implements custom JSON encoding for Document.
// A relation holding exactly one fragment or sub-document is written as a
// single object, matching the compact form most HAL emitters produce.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.properties)+2)

	for k, v := range d.properties {
		out[k] = v
	}

	if len(d.links) > 0 {
		section := make(map[string]any, len(d.links))
		for rel, frags := range d.links {
			if len(frags) == 1 {
				section[rel] = frags[0]
			} else {
				section[rel] = frags
			}
		}

		out[linksSection] = section
	}

	if len(d.embedded) > 0 {
		section := make(map[string]any, len(d.embedded))
		for rel, docs := range d.embedded {
			if len(docs) == 1 {
				section[rel] = docs[0]
			} else {
				section[rel] = docs
			}
		}

		out[embeddedSection] = section
	}

	return json.Marshal(out)
}
