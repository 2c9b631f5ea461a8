package shape

import "fmt"

// Code identifies a constraint family in a violation. Codes are stable and
// safe to match on programmatically.
type Code string

const (
	// CodeCardinalityMin reports fewer values than minCount.
	CodeCardinalityMin Code = "CARDINALITY_MIN"

	// CodeCardinalityMax reports more values than maxCount.
	CodeCardinalityMax Code = "CARDINALITY_MAX"

	// CodeCardinalityRequired reports a missing required property.
	CodeCardinalityRequired Code = "CARDINALITY_REQUIRED"

	// CodeRangeMismatch reports a value outside the allowed class or numeric range.
	CodeRangeMismatch Code = "RANGE_MISMATCH"

	// CodeTypeMismatch reports a record whose @type omits the shape's target class.
	CodeTypeMismatch Code = "TYPE_MISMATCH"

	// CodeDatatypeMismatch reports a literal of the wrong datatype or failing
	// a string facet (length, pattern).
	CodeDatatypeMismatch Code = "DATATYPE_MISMATCH"

	// CodeShapeReferenceInvalid reports a shape reference that is not an IRI.
	CodeShapeReferenceInvalid Code = "SHAPE_REFERENCE_INVALID"

	// CodeNodeKind reports a value of the wrong node kind.
	CodeNodeKind Code = "NODE_KIND"

	// CodeIn reports a value outside the allowed enumeration.
	CodeIn Code = "IN"

	// CodeHasValue reports a missing required fixed value.
	CodeHasValue Code = "HAS_VALUE"

	// CodeOr reports that no alternative of an or combinator held.
	CodeOr Code = "OR"

	// CodeXone reports that not exactly one alternative of a xone combinator held.
	CodeXone Code = "XONE"

	// CodeUnknown reports failures outside the named families, including
	// non-object data and failed and/not combinators.
	CodeUnknown Code = "UNKNOWN"
)

// Violation is a single reported constraint failure.
type Violation struct {
	Path     string `json:"path"`
	Code     Code   `json:"code"`
	Message  string `json:"message"`
	Expected any    `json:"expected,omitempty"`
	Actual   any    `json:"actual,omitempty"`
}

// String renders the violation for logs and CLI output.
func (v Violation) String() string {
	return fmt.Sprintf("%s [%s]: %s", v.Path, v.Code, v.Message)
}

// Result is the outcome of validating one record against one shape.
type Result struct {
	OK         bool        `json:"ok"`
	Violations []Violation `json:"violations"`
}

// ByCode returns the violations carrying the given code.
func (r Result) ByCode(code Code) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Code == code {
			out = append(out, v)
		}
	}
	return out
}
