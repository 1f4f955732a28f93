package definition

import (
	"hal-navigator/link"
)

// File represents the root of a YAML transcoder definition file.
type File struct {
	// Version of the definition schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Namespaces maps CURIE prefixes to relation namespace URI templates.
	Namespaces map[string]string `yaml:"namespaces,omitempty"`

	// Rules is the ordered transcoder rule list. Order is the pipeline
	// order.
	Rules []RuleDef `yaml:"rules"`
}

// RuleDef is one rule entry. Exactly one of Property, Link, or Links must be
// set; it names the document source.
type RuleDef struct {
	// Property names a plain document property to transcode.
	Property string `yaml:"property,omitempty"`

	// Link names a relation whose single link target is transcoded.
	Link string `yaml:"link,omitempty"`

	// Links names a relation whose link targets are transcoded as a
	// sequence.
	Links string `yaml:"links,omitempty"`

	// Param redirects the value in the parameter map. A single key or an
	// array of keys for nested placement; defaults to the source name.
	Param StringOrArray `yaml:"param,omitempty"`

	// Converter names a registered value converter. Empty means identity.
	Converter string `yaml:"converter,omitempty"`
}

// LinkNamespaces returns the file's CURIE table in the link package's form.
func (f *File) LinkNamespaces() link.Namespaces {
	ns := make(link.Namespaces, len(f.Namespaces))
	for prefix, tmpl := range f.Namespaces {
		ns[prefix] = tmpl
	}

	return ns
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}
