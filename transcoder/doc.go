// Package transcoder implements declarative, bidirectional mapping between
// a HAL document and a structured parameter map.
//
// A transcoder is defined once, as an ordered list of rules, and then used
// any number of times:
//
//	tr, err := transcoder.New(
//	    transcoder.Property("title"),
//	    transcoder.Property("created", transcoder.Convert(convert.Datetime{})),
//	    transcoder.Link("self", transcoder.Param("url")),
//	    transcoder.Links("item", transcoder.Param("order", "items")),
//	)
//
// Each rule pairs an extractor (document -> params) with an injector
// (params -> document) over a single source: a property name or a link
// relation. Decode left-folds the extractors over a document, Encode
// left-folds the injectors over a parameter map, both in declaration order.
//
// # Absence
//
// Absence is pervasive and never an error. An extractor whose source is
// missing from the document writes nothing; an injector whose param path is
// missing from the map writes nothing. Converters only ever see present
// values.
//
// # Param paths
//
// A rule's value defaults to a flat key named after its source. Param
// redirects it, optionally to a nested path; placement builds intermediate
// maps only where missing, so rules sharing a path prefix coexist:
//
//	transcoder.Property("street", transcoder.Param("address", "street")),
//	transcoder.Property("city", transcoder.Param("address", "city")),
//
// # Round trips
//
// For rules with identity converters and mutually disjoint param paths,
// Encode(Decode(doc)) reproduces doc's registered property and link values.
package transcoder
