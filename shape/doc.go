// Package shape provides SHACL-lite node and property shapes and the
// validation engine that checks graph-structured records against them.
//
// # Shapes
//
// A NodeShape constrains records of one target class; each named
// PropertyShape constrains a single property with independent, additive
// constraint families: cardinality, datatype, class membership, node kind,
// enumeration, fixed value, string and numeric bounds, and the logical
// combinators or, xone, and, not.
//
// Shapes are plain immutable data. Constructors perform no validation of
// their own; contradictory constraint combinations are not rejected at
// definition time, and validation computes whatever the set fields imply.
//
// # Validation
//
// Validate walks a NodeShape's properties over a record (a map decoded from
// JSON-LD-style input, optionally carrying "@id"/"@type") and returns a
// Result with a violation list. Violations, not errors, are the primary
// failure channel: Validate never fails for malformed data.
//
// Class constraints are evaluated only when an ontology.Context is supplied;
// without one they are skipped entirely.
//
// Shapes, contexts, and validators are stateless and safe for concurrent use
// from any number of goroutines.
package shape
