// Package vocabulary provides the IRI identifier model and well-known
// semantic web vocabulary terms used throughout semshape.
//
// # IRI Model
//
// An IRI is an opaque string identifier, either a prefixed name ("ex:Person")
// or an absolute IRI ("https://example.org/Person"). Equality is string
// equality; no uniqueness or resolvability is enforced anywhere in semshape.
//
// # Prefix Handling
//
// A PrefixMap translates between prefixed names and absolute IRIs. The
// standard prefixes (rdf, rdfs, owl, xsd, sh, schema) are always available
// via StandardPrefixes; manifests may add their own.
//
// # Standard Terms
//
// The constants in iris.go cover the RDF, RDFS, OWL, XSD, and SHACL terms
// needed by the inference context builder, the constraint evaluators, and
// the exporters. They follow the W3C recommendations:
//   - RDF: https://www.w3.org/TR/rdf11-concepts/
//   - RDFS: https://www.w3.org/TR/rdf-schema/
//   - OWL: https://www.w3.org/TR/owl2-overview/
//   - SHACL: https://www.w3.org/TR/shacl/
package vocabulary
