// Package definition loads transcoder definitions from YAML, turning a
// reviewed, versioned file into a ready-to-use transcoder plus a CURIE
// namespace table.
//
// # Schema overview
//
// A definition file has the following structure:
//
//	version: "1"
//	namespaces:
//	  app: http://example.com/rels/{rel}
//	rules:
//	  - property: title
//	  - property: created
//	    converter: datetime
//	  - link: self
//	    param: url
//	  - links: app:item
//	    param: [order, items]
//
// Each rule sets exactly one of property, link, or links, naming the
// document source. The optional param redirects the value in the parameter
// map; it accepts a single key or an array of keys for nested placement.
// The optional converter names a registered value converter.
//
// Rule order in the file is the transcoder's pipeline order.
//
// # Converters
//
// Converter names are resolved against a ConverterRegistry. DefaultRegistry
// preregisters the convert package under the names identity, datetime,
// timestamp, duration, seconds, textual-bool, numeric-bool, and
// text-number; custom converters register alongside them.
package definition
