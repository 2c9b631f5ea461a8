package shape

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/c360studio/semshape/ontology"
	"github.com/c360studio/semshape/vocabulary"
)

// elements flattens a property value for per-element evaluation: arrays
// evaluate element-wise, anything else as a single value.
func elements(value any) []any {
	if arr, ok := value.([]any); ok {
		return arr
	}
	return []any{value}
}

// valueCount implements the cardinality counting rule: absent/null counts
// zero, arrays count their length, anything else counts one.
func valueCount(value any) int {
	if value == nil {
		return 0
	}
	if arr, ok := value.([]any); ok {
		return len(arr)
	}
	return 1
}

// effectiveMinCount resolves Required as shorthand for minCount 1.
func (ps *PropertyShape) effectiveMinCount() (int, bool) {
	if ps.MinCount != nil {
		return *ps.MinCount, true
	}
	if ps.Required {
		return 1, true
	}
	return 0, false
}

// checkCardinality evaluates the cardinality family. A required property
// that is absent or null short-circuits to a single CARDINALITY_REQUIRED
// violation; min and max are not separately re-checked in that case.
func checkCardinality(path string, value any, ps *PropertyShape) []Violation {
	count := valueCount(value)
	minCount, hasMin := ps.effectiveMinCount()

	if value == nil && hasMin && minCount >= 1 {
		return []Violation{{
			Path:     path,
			Code:     CodeCardinalityRequired,
			Message:  fmt.Sprintf("property %q is required but missing", path),
			Expected: minCount,
			Actual:   0,
		}}
	}

	var violations []Violation
	if hasMin && count < minCount {
		violations = append(violations, Violation{
			Path:     path,
			Code:     CodeCardinalityMin,
			Message:  fmt.Sprintf("property %q has %d values, expected at least %d", path, count, minCount),
			Expected: minCount,
			Actual:   count,
		})
	}
	if ps.MaxCount != nil && count > *ps.MaxCount {
		violations = append(violations, Violation{
			Path:     path,
			Code:     CodeCardinalityMax,
			Message:  fmt.Sprintf("property %q has %d values, expected at most %d", path, count, *ps.MaxCount),
			Expected: *ps.MaxCount,
			Actual:   count,
		})
	}
	return violations
}

// isNumber reports whether v is a numeric primitive. JSON decoding yields
// float64; hand-built records may carry int variants.
func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int32, int64:
		return true
	default:
		return false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// datatypeMatches classifies elem against a small fixed mapping from XSD
// datatype IRIs to primitive kinds. Unrecognized datatype IRIs accept any
// value that is not an object or array.
func datatypeMatches(elem any, datatype vocabulary.IRI) bool {
	switch vocabulary.StandardPrefixes().Expand(datatype) {
	case vocabulary.XSDString:
		_, ok := elem.(string)
		return ok
	case vocabulary.XSDInteger, vocabulary.XSDDecimal:
		return isNumber(elem)
	case vocabulary.XSDBoolean:
		_, ok := elem.(bool)
		return ok
	default:
		switch elem.(type) {
		case map[string]any, []any:
			return false
		default:
			return true
		}
	}
}

func checkDatatype(path string, value any, ps *PropertyShape) []Violation {
	var violations []Violation
	for _, elem := range elements(value) {
		if !datatypeMatches(elem, ps.Datatype) {
			violations = append(violations, Violation{
				Path:     path,
				Code:     CodeDatatypeMismatch,
				Message:  fmt.Sprintf("value %v does not match datatype %s", elem, ps.Datatype),
				Expected: ps.Datatype.String(),
				Actual:   elem,
			})
		}
	}
	return violations
}

// declaredTypes extracts the @type field of an embedded node as a string
// slice. Non-string members are ignored.
func declaredTypes(node map[string]any) []string {
	switch t := node["@type"].(type) {
	case string:
		return []string{t}
	case []any:
		var types []string
		for _, member := range t {
			if s, ok := member.(string); ok {
				types = append(types, s)
			}
		}
		return types
	case []string:
		return t
	default:
		return nil
	}
}

// checkClass tests embedded nodes against an expected class. Elements that
// are not embedded nodes carrying @type are skipped: bare IRI references are
// never resolved. A node passes when at least one of its declared types
// equals or is a subclass of the expected class under ctx.
func checkClass(path string, value any, ps *PropertyShape, ctx *ontology.Context) []Violation {
	var violations []Violation
	for _, elem := range elements(value) {
		node, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		types := declaredTypes(node)
		if types == nil {
			continue
		}
		matched := false
		for _, t := range types {
			if ctx.IsSubClassOf(vocabulary.IRI(t), ps.Class) {
				matched = true
				break
			}
		}
		if !matched {
			violations = append(violations, Violation{
				Path:     path,
				Code:     CodeRangeMismatch,
				Message:  fmt.Sprintf("node types %v do not include %s or a subclass of it", types, ps.Class),
				Expected: ps.Class.String(),
				Actual:   types,
			})
		}
	}
	return violations
}

func nodeKindMatches(elem any, kind NodeKind) bool {
	switch kind {
	case NodeKindIRI:
		s, ok := elem.(string)
		return ok && vocabulary.IsIRI(s)
	case NodeKindLiteral:
		switch v := elem.(type) {
		case map[string]any:
			return false
		case string:
			return !vocabulary.IsIRI(v)
		default:
			return true
		}
	case NodeKindBlankNode:
		s, ok := elem.(string)
		return ok && vocabulary.IsBlankNode(s)
	default:
		return true
	}
}

func checkNodeKind(path string, value any, ps *PropertyShape) []Violation {
	var violations []Violation
	for _, elem := range elements(value) {
		if !nodeKindMatches(elem, ps.NodeKind) {
			violations = append(violations, Violation{
				Path:     path,
				Code:     CodeNodeKind,
				Message:  fmt.Sprintf("value %v is not of node kind %s", elem, ps.NodeKind),
				Expected: string(ps.NodeKind),
				Actual:   elem,
			})
		}
	}
	return violations
}

// primitiveEqual compares enumeration and fixed values: string equality for
// strings, numeric equality across int/float representations, == otherwise.
func primitiveEqual(a, b any) bool {
	if af, ok := asFloat(a); ok {
		bf, ok := asFloat(b)
		return ok && af == bf
	}
	return a == b
}

func checkIn(path string, value any, ps *PropertyShape) []Violation {
	var violations []Violation
	for _, elem := range elements(value) {
		member := false
		for _, allowed := range ps.In {
			if primitiveEqual(elem, allowed) {
				member = true
				break
			}
		}
		if !member {
			violations = append(violations, Violation{
				Path:     path,
				Code:     CodeIn,
				Message:  fmt.Sprintf("value %v is not in the allowed set", elem),
				Expected: ps.In,
				Actual:   elem,
			})
		}
	}
	return violations
}

func checkHasValue(path string, value any, ps *PropertyShape) []Violation {
	for _, elem := range elements(value) {
		if primitiveEqual(elem, ps.HasValue) {
			return nil
		}
	}
	return []Violation{{
		Path:     path,
		Code:     CodeHasValue,
		Message:  fmt.Sprintf("required value %v is not present", ps.HasValue),
		Expected: ps.HasValue,
		Actual:   value,
	}}
}

// checkString evaluates minLength, maxLength, and pattern against string
// elements. Non-string elements are skipped; the datatype family reports
// kind mismatches. A pattern that fails to compile is treated as no
// constraint.
func checkString(path string, value any, ps *PropertyShape) []Violation {
	var re *regexp.Regexp
	if ps.Pattern != "" {
		re, _ = regexp.Compile(ps.Pattern)
	}

	var violations []Violation
	for _, elem := range elements(value) {
		s, ok := elem.(string)
		if !ok {
			continue
		}
		length := utf8.RuneCountInString(s)
		if ps.MinLength != nil && length < *ps.MinLength {
			violations = append(violations, Violation{
				Path:     path,
				Code:     CodeDatatypeMismatch,
				Message:  fmt.Sprintf("string %q has length %d, expected at least %d", s, length, *ps.MinLength),
				Expected: *ps.MinLength,
				Actual:   length,
			})
		}
		if ps.MaxLength != nil && length > *ps.MaxLength {
			violations = append(violations, Violation{
				Path:     path,
				Code:     CodeDatatypeMismatch,
				Message:  fmt.Sprintf("string %q has length %d, expected at most %d", s, length, *ps.MaxLength),
				Expected: *ps.MaxLength,
				Actual:   length,
			})
		}
		if re != nil && !re.MatchString(s) {
			violations = append(violations, Violation{
				Path:     path,
				Code:     CodeDatatypeMismatch,
				Message:  fmt.Sprintf("string %q does not match pattern %q", s, ps.Pattern),
				Expected: ps.Pattern,
				Actual:   s,
			})
		}
	}
	return violations
}

// checkNumeric evaluates the inclusive and exclusive numeric bounds against
// numeric elements, each bound independently. Non-numeric elements are
// skipped.
func checkNumeric(path string, value any, ps *PropertyShape) []Violation {
	var violations []Violation
	for _, elem := range elements(value) {
		n, ok := asFloat(elem)
		if !ok {
			continue
		}
		if ps.MinInclusive != nil && n < *ps.MinInclusive {
			violations = append(violations, numericViolation(path, n, fmt.Sprintf("expected >= %v", *ps.MinInclusive), *ps.MinInclusive))
		}
		if ps.MaxInclusive != nil && n > *ps.MaxInclusive {
			violations = append(violations, numericViolation(path, n, fmt.Sprintf("expected <= %v", *ps.MaxInclusive), *ps.MaxInclusive))
		}
		if ps.MinExclusive != nil && n <= *ps.MinExclusive {
			violations = append(violations, numericViolation(path, n, fmt.Sprintf("expected > %v", *ps.MinExclusive), *ps.MinExclusive))
		}
		if ps.MaxExclusive != nil && n >= *ps.MaxExclusive {
			violations = append(violations, numericViolation(path, n, fmt.Sprintf("expected < %v", *ps.MaxExclusive), *ps.MaxExclusive))
		}
	}
	return violations
}

func numericViolation(path string, actual float64, bound string, expected float64) Violation {
	return Violation{
		Path:     path,
		Code:     CodeRangeMismatch,
		Message:  fmt.Sprintf("value %v is out of range: %s", actual, bound),
		Expected: expected,
		Actual:   actual,
	}
}

// checkShapeReference requires values of a shape-referencing property to be
// IRI-shaped strings. The referenced shape is not validated recursively and
// the IRI is never resolved.
func checkShapeReference(path string, value any, ps *PropertyShape) []Violation {
	var violations []Violation
	for _, elem := range elements(value) {
		s, ok := elem.(string)
		if !ok || !vocabulary.IsIRI(s) {
			violations = append(violations, Violation{
				Path:     path,
				Code:     CodeShapeReferenceInvalid,
				Message:  fmt.Sprintf("value %v is not an IRI reference to shape %s", elem, ps.Node),
				Expected: ps.Node.String(),
				Actual:   elem,
			})
		}
	}
	return violations
}

// valueViolations runs every applicable value-level constraint family
// (everything except cardinality) for one property value. This single
// evaluator backs both the top-level orchestrator and, through satisfies,
// the logical combinators.
func valueViolations(path string, value any, ps *PropertyShape, ctx *ontology.Context) []Violation {
	var violations []Violation
	if !ps.Datatype.IsEmpty() {
		violations = append(violations, checkDatatype(path, value, ps)...)
	}
	// Class constraints require a context to be evaluated; without one they
	// are skipped entirely.
	if !ps.Class.IsEmpty() && ctx != nil {
		violations = append(violations, checkClass(path, value, ps, ctx)...)
	}
	if !ps.Node.IsEmpty() {
		violations = append(violations, checkShapeReference(path, value, ps)...)
	}
	if ps.NodeKind != "" {
		violations = append(violations, checkNodeKind(path, value, ps)...)
	}
	if len(ps.In) > 0 {
		violations = append(violations, checkIn(path, value, ps)...)
	}
	if ps.HasValue != nil {
		violations = append(violations, checkHasValue(path, value, ps)...)
	}
	violations = append(violations, checkString(path, value, ps)...)
	violations = append(violations, checkNumeric(path, value, ps)...)
	return violations
}

// satisfies reports whether value meets every value-level constraint of ps,
// including nested combinators. Cardinality is deliberately excluded: nested
// constraint sets are value-level predicates only.
func satisfies(value any, ps *PropertyShape, ctx *ontology.Context) bool {
	if len(valueViolations("", value, ps, ctx)) > 0 {
		return false
	}
	if len(ps.Or) > 0 && countSatisfied(value, ps.Or, ctx) == 0 {
		return false
	}
	if len(ps.Xone) > 0 && countSatisfied(value, ps.Xone, ctx) != 1 {
		return false
	}
	if len(ps.And) > 0 && countSatisfied(value, ps.And, ctx) != len(ps.And) {
		return false
	}
	if ps.Not != nil && satisfies(value, ps.Not, ctx) {
		return false
	}
	return true
}

func countSatisfied(value any, alternatives []*PropertyShape, ctx *ontology.Context) int {
	count := 0
	for _, alt := range alternatives {
		if satisfies(value, alt, ctx) {
			count++
		}
	}
	return count
}

// combinatorViolations evaluates the or, xone, and, and not combinators of a
// top-level property shape against a present value.
func combinatorViolations(path string, value any, ps *PropertyShape, ctx *ontology.Context) []Violation {
	var violations []Violation
	if len(ps.Or) > 0 {
		if countSatisfied(value, ps.Or, ctx) == 0 {
			violations = append(violations, Violation{
				Path:     path,
				Code:     CodeOr,
				Message:  fmt.Sprintf("value does not satisfy any of %d alternatives", len(ps.Or)),
				Expected: "at least one alternative",
				Actual:   value,
			})
		}
	}
	if len(ps.Xone) > 0 {
		if n := countSatisfied(value, ps.Xone, ctx); n != 1 {
			violations = append(violations, Violation{
				Path:     path,
				Code:     CodeXone,
				Message:  fmt.Sprintf("expected exactly one of %d alternatives to hold, got %d", len(ps.Xone), n),
				Expected: 1,
				Actual:   n,
			})
		}
	}
	if len(ps.And) > 0 {
		if n := countSatisfied(value, ps.And, ctx); n != len(ps.And) {
			violations = append(violations, Violation{
				Path:     path,
				Code:     CodeUnknown,
				Message:  fmt.Sprintf("value satisfies only %d of %d required constraint sets", n, len(ps.And)),
				Expected: len(ps.And),
				Actual:   n,
			})
		}
	}
	if ps.Not != nil && satisfies(value, ps.Not, ctx) {
		violations = append(violations, Violation{
			Path:    path,
			Code:    CodeUnknown,
			Message: "value satisfies the negated constraint set",
			Actual:  value,
		})
	}
	return violations
}
