package shape

import "github.com/c360studio/semshape/vocabulary"

// NodeKind constrains the kind of value node a property accepts.
type NodeKind string

const (
	// NodeKindIRI requires an IRI-shaped string value.
	NodeKindIRI NodeKind = "IRI"

	// NodeKindLiteral requires a plain literal: not an object, not IRI-shaped.
	NodeKindLiteral NodeKind = "Literal"

	// NodeKindBlankNode requires a blank node label ("_:b0").
	NodeKindBlankNode NodeKind = "BlankNode"
)

// PropertyShape is the constraint set for a single property. All fields are
// optional; an unset field is simply not evaluated. Constraint families are
// independent and additive.
//
// The nested Or, Xone, And, and Not sets are evaluated as value-level
// predicates only: cardinality is evaluated once, at the top level, on the
// named property, and never inside a nested set.
type PropertyShape struct {
	// Path is the property IRI this shape constrains.
	Path vocabulary.IRI `json:"path,omitempty"`

	// Datatype constrains the literal kind of values (xsd:string,
	// xsd:integer, xsd:decimal, xsd:boolean). Unrecognized datatype IRIs
	// accept any non-object value.
	Datatype vocabulary.IRI `json:"datatype,omitempty"`

	// Class constrains embedded nodes to a class; evaluated only when an
	// inference context is supplied.
	Class vocabulary.IRI `json:"class,omitempty"`

	// Node references another shape by IRI. Values must be IRI-shaped
	// strings; the referenced shape is not validated recursively.
	Node vocabulary.IRI `json:"node,omitempty"`

	// Required is shorthand for a minimum count of one.
	Required bool `json:"required,omitempty"`

	// MinCount and MaxCount bound the number of values.
	MinCount *int `json:"minCount,omitempty"`
	MaxCount *int `json:"maxCount,omitempty"`

	// MinLength, MaxLength, and Pattern constrain string values.
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Numeric bounds constrain numeric values.
	MinInclusive *float64 `json:"minInclusive,omitempty"`
	MaxInclusive *float64 `json:"maxInclusive,omitempty"`
	MinExclusive *float64 `json:"minExclusive,omitempty"`
	MaxExclusive *float64 `json:"maxExclusive,omitempty"`

	// NodeKind constrains the kind of value node.
	NodeKind NodeKind `json:"nodeKind,omitempty"`

	// In enumerates the allowed values.
	In []any `json:"in,omitempty"`

	// HasValue requires at least one value equal to it.
	HasValue any `json:"hasValue,omitempty"`

	// Logical combinators over nested constraint sets.
	Or   []*PropertyShape `json:"or,omitempty"`
	Xone []*PropertyShape `json:"xone,omitempty"`
	And  []*PropertyShape `json:"and,omitempty"`
	Not  *PropertyShape   `json:"not,omitempty"`
}

// NodeShape constrains records of one target class. Constructed once per
// declared shape and reused across any number of Validate calls; it is
// stateless and never modified by validation.
type NodeShape struct {
	// TargetClass is the class IRI this shape applies to.
	TargetClass vocabulary.IRI `json:"targetClass"`

	// Properties maps record field names to their constraint sets.
	Properties map[string]*PropertyShape `json:"properties,omitempty"`

	// Closed and IgnoredProperties describe closed-world intent. They are
	// carried for export; validation does not reject undeclared properties.
	Closed            bool     `json:"closed,omitempty"`
	IgnoredProperties []string `json:"ignoredProperties,omitempty"`
}

// Int returns a pointer to n, for literal cardinality and length bounds.
func Int(n int) *int {
	return &n
}

// Float returns a pointer to f, for literal numeric bounds.
func Float(f float64) *float64 {
	return &f
}
