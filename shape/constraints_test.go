package shape

import (
	"testing"

	"github.com/c360studio/semshape/ontology"
)

func TestCheckCardinality(t *testing.T) {
	tests := []struct {
		name     string
		ps       *PropertyShape
		value    any
		wantCode []Code
	}{
		{
			name:     "required missing value",
			ps:       &PropertyShape{Required: true},
			value:    nil,
			wantCode: []Code{CodeCardinalityRequired},
		},
		{
			name:     "minCount one missing value",
			ps:       &PropertyShape{MinCount: Int(1)},
			value:    nil,
			wantCode: []Code{CodeCardinalityRequired},
		},
		{
			name:     "required short-circuits min and max",
			ps:       &PropertyShape{MinCount: Int(2), MaxCount: Int(3)},
			value:    nil,
			wantCode: []Code{CodeCardinalityRequired},
		},
		{
			name:     "empty array below min",
			ps:       &PropertyShape{MinCount: Int(1), MaxCount: Int(3)},
			value:    []any{},
			wantCode: []Code{CodeCardinalityMin},
		},
		{
			name:     "array above max",
			ps:       &PropertyShape{MinCount: Int(1), MaxCount: Int(3)},
			value:    []any{"a", "b", "c", "d"},
			wantCode: []Code{CodeCardinalityMax},
		},
		{
			name:  "array within bounds",
			ps:    &PropertyShape{MinCount: Int(1), MaxCount: Int(3)},
			value: []any{"a", "b"},
		},
		{
			name:  "single value counts one",
			ps:    &PropertyShape{MinCount: Int(1), MaxCount: Int(1)},
			value: "a",
		},
		{
			name:  "absent value without constraints",
			ps:    &PropertyShape{},
			value: nil,
		},
		{
			name:     "single value above max zero",
			ps:       &PropertyShape{MaxCount: Int(0)},
			value:    "a",
			wantCode: []Code{CodeCardinalityMax},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkCardinality("prop", tt.value, tt.ps)
			assertCodes(t, got, tt.wantCode)
		})
	}
}

func TestCheckDatatype(t *testing.T) {
	tests := []struct {
		name     string
		ps       *PropertyShape
		value    any
		wantCode []Code
	}{
		{name: "string matches xsd:string", ps: &PropertyShape{Datatype: "xsd:string"}, value: "hello"},
		{name: "number fails xsd:string", ps: &PropertyShape{Datatype: "xsd:string"}, value: 42.0, wantCode: []Code{CodeDatatypeMismatch}},
		{name: "number matches xsd:integer", ps: &PropertyShape{Datatype: "xsd:integer"}, value: 42.0},
		{name: "number matches xsd:decimal", ps: &PropertyShape{Datatype: "xsd:decimal"}, value: 3.14},
		{name: "bool matches xsd:boolean", ps: &PropertyShape{Datatype: "xsd:boolean"}, value: true},
		{name: "string fails xsd:boolean", ps: &PropertyShape{Datatype: "xsd:boolean"}, value: "true", wantCode: []Code{CodeDatatypeMismatch}},
		{name: "absolute IRI accepted", ps: &PropertyShape{Datatype: "http://www.w3.org/2001/XMLSchema#string"}, value: "hello"},
		{name: "unrecognized accepts primitive", ps: &PropertyShape{Datatype: "xsd:dateTime"}, value: "2026-01-01T00:00:00Z"},
		{name: "unrecognized rejects object", ps: &PropertyShape{Datatype: "xsd:dateTime"}, value: map[string]any{}, wantCode: []Code{CodeDatatypeMismatch}},
		{
			name:     "per-element evaluation",
			ps:       &PropertyShape{Datatype: "xsd:string"},
			value:    []any{"ok", 1.0, "fine", false},
			wantCode: []Code{CodeDatatypeMismatch, CodeDatatypeMismatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkDatatype("prop", tt.value, tt.ps)
			assertCodes(t, got, tt.wantCode)
		})
	}
}

func TestCheckNodeKind(t *testing.T) {
	tests := []struct {
		name     string
		kind     NodeKind
		value    any
		wantCode []Code
	}{
		{name: "IRI accepts absolute", kind: NodeKindIRI, value: "https://example.org/x"},
		{name: "IRI accepts prefixed", kind: NodeKindIRI, value: "ex:thing"},
		{name: "IRI rejects plain string", kind: NodeKindIRI, value: "hello world", wantCode: []Code{CodeNodeKind}},
		{name: "IRI rejects number", kind: NodeKindIRI, value: 1.0, wantCode: []Code{CodeNodeKind}},
		{name: "Literal accepts plain string", kind: NodeKindLiteral, value: "hello"},
		{name: "Literal accepts number", kind: NodeKindLiteral, value: 3.0},
		{name: "Literal rejects IRI-shaped", kind: NodeKindLiteral, value: "ex:thing", wantCode: []Code{CodeNodeKind}},
		{name: "Literal rejects object", kind: NodeKindLiteral, value: map[string]any{}, wantCode: []Code{CodeNodeKind}},
		{name: "BlankNode accepts label", kind: NodeKindBlankNode, value: "_:b0"},
		{name: "BlankNode rejects IRI", kind: NodeKindBlankNode, value: "ex:thing", wantCode: []Code{CodeNodeKind}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkNodeKind("prop", tt.value, &PropertyShape{NodeKind: tt.kind})
			assertCodes(t, got, tt.wantCode)
		})
	}
}

func TestCheckIn(t *testing.T) {
	ps := &PropertyShape{In: []any{"red", "green", "blue"}}

	if got := checkIn("color", "green", ps); len(got) != 0 {
		t.Errorf("member value should pass, got %v", got)
	}
	if got := checkIn("color", "yellow", ps); len(got) != 1 || got[0].Code != CodeIn {
		t.Errorf("non-member should yield IN violation, got %v", got)
	}
	if got := checkIn("color", []any{"red", "yellow"}, ps); len(got) != 1 {
		t.Errorf("each element checked independently, got %v", got)
	}

	// Numeric membership compares across int/float representations.
	numeric := &PropertyShape{In: []any{1, 2, 3}}
	if got := checkIn("n", 2.0, numeric); len(got) != 0 {
		t.Errorf("2.0 should match int 2, got %v", got)
	}
}

func TestCheckHasValue(t *testing.T) {
	ps := &PropertyShape{HasValue: "admin"}

	if got := checkHasValue("role", "admin", ps); len(got) != 0 {
		t.Errorf("exact value should pass, got %v", got)
	}
	if got := checkHasValue("role", []any{"user", "admin"}, ps); len(got) != 0 {
		t.Errorf("array containing the value should pass, got %v", got)
	}
	if got := checkHasValue("role", []any{"user"}, ps); len(got) != 1 || got[0].Code != CodeHasValue {
		t.Errorf("missing value should yield HAS_VALUE, got %v", got)
	}
}

func TestCheckString(t *testing.T) {
	tests := []struct {
		name     string
		ps       *PropertyShape
		value    any
		wantCode []Code
	}{
		{name: "within bounds", ps: &PropertyShape{MinLength: Int(2), MaxLength: Int(5)}, value: "abc"},
		{name: "below minLength", ps: &PropertyShape{MinLength: Int(3)}, value: "ab", wantCode: []Code{CodeDatatypeMismatch}},
		{name: "above maxLength", ps: &PropertyShape{MaxLength: Int(3)}, value: "abcd", wantCode: []Code{CodeDatatypeMismatch}},
		{name: "pattern match", ps: &PropertyShape{Pattern: `^[A-Z]`}, value: "Abc"},
		{name: "pattern mismatch", ps: &PropertyShape{Pattern: `^[A-Z]`}, value: "abc", wantCode: []Code{CodeDatatypeMismatch}},
		{name: "invalid pattern is no constraint", ps: &PropertyShape{Pattern: `([`}, value: "anything"},
		{name: "non-string skipped", ps: &PropertyShape{MinLength: Int(3)}, value: 42.0},
		{name: "rune counting", ps: &PropertyShape{MaxLength: Int(3)}, value: "äöü"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkString("prop", tt.value, tt.ps)
			assertCodes(t, got, tt.wantCode)
		})
	}
}

func TestCheckNumeric(t *testing.T) {
	tests := []struct {
		name     string
		ps       *PropertyShape
		value    any
		wantCode []Code
	}{
		{name: "within inclusive bounds", ps: &PropertyShape{MinInclusive: Float(0), MaxInclusive: Float(10)}, value: 5.0},
		{name: "at inclusive bound", ps: &PropertyShape{MinInclusive: Float(0)}, value: 0.0},
		{name: "below inclusive min", ps: &PropertyShape{MinInclusive: Float(0)}, value: -1.0, wantCode: []Code{CodeRangeMismatch}},
		{name: "at exclusive bound fails", ps: &PropertyShape{MinExclusive: Float(0)}, value: 0.0, wantCode: []Code{CodeRangeMismatch}},
		{name: "above exclusive max", ps: &PropertyShape{MaxExclusive: Float(10)}, value: 10.0, wantCode: []Code{CodeRangeMismatch}},
		{name: "independent bounds both fail", ps: &PropertyShape{MinInclusive: Float(5), MinExclusive: Float(5)}, value: 4.0, wantCode: []Code{CodeRangeMismatch, CodeRangeMismatch}},
		{name: "non-numeric skipped", ps: &PropertyShape{MinInclusive: Float(0)}, value: "five"},
		{name: "int element", ps: &PropertyShape{MaxInclusive: Float(3)}, value: 7, wantCode: []Code{CodeRangeMismatch}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkNumeric("prop", tt.value, tt.ps)
			assertCodes(t, got, tt.wantCode)
		})
	}
}

func TestCheckShapeReference(t *testing.T) {
	ps := &PropertyShape{Node: "ex:AddressShape"}

	if got := checkShapeReference("address", "ex:addr-1", ps); len(got) != 0 {
		t.Errorf("IRI reference should pass, got %v", got)
	}
	if got := checkShapeReference("address", "not an iri", ps); len(got) != 1 || got[0].Code != CodeShapeReferenceInvalid {
		t.Errorf("plain string should yield SHAPE_REFERENCE_INVALID, got %v", got)
	}
	if got := checkShapeReference("address", map[string]any{"street": "x"}, ps); len(got) != 1 {
		t.Errorf("embedded object should yield SHAPE_REFERENCE_INVALID, got %v", got)
	}
}

func TestCheckClass(t *testing.T) {
	ctx := ontology.Build([]ontology.Class{
		ontology.NewClass("ex:Person", ontology.WithSuperClasses("ex:Agent")),
		ontology.NewClass("ex:Agent"),
		ontology.NewClass("ex:Project"),
	}, nil)
	ps := &PropertyShape{Class: "ex:Agent"}

	tests := []struct {
		name     string
		value    any
		wantCode []Code
	}{
		{name: "exact class", value: map[string]any{"@type": "ex:Agent"}},
		{name: "subclass satisfies", value: map[string]any{"@type": "ex:Person"}},
		{name: "type array with one match", value: map[string]any{"@type": []any{"ex:Project", "ex:Person"}}},
		{name: "wrong class", value: map[string]any{"@type": "ex:Project"}, wantCode: []Code{CodeRangeMismatch}},
		{name: "bare IRI reference skipped", value: "ex:person-1"},
		{name: "object without @type skipped", value: map[string]any{"name": "Jane"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkClass("knows", tt.value, ps, ctx)
			assertCodes(t, got, tt.wantCode)
		})
	}
}

func TestCombinators(t *testing.T) {
	// The two alternatives from the xone/or properties: leading uppercase,
	// or at least three characters.
	alternatives := []*PropertyShape{
		{Pattern: `^[A-Z]`},
		{MinLength: Int(3)},
	}

	t.Run("xone", func(t *testing.T) {
		ps := &PropertyShape{Xone: alternatives}

		// "Abc" satisfies both alternatives: count 2, fails.
		got := combinatorViolations("name", "Abc", ps, nil)
		if len(got) != 1 || got[0].Code != CodeXone {
			t.Fatalf("expected XONE violation for count=2, got %v", got)
		}
		if got[0].Actual != 2 {
			t.Errorf("expected actual count 2, got %v", got[0].Actual)
		}

		// "abc" satisfies minLength only: count 1, passes.
		if got := combinatorViolations("name", "abc", ps, nil); len(got) != 0 {
			t.Errorf("count=1 should pass xone, got %v", got)
		}

		// "A" satisfies pattern only: count 1, passes.
		if got := combinatorViolations("name", "A", ps, nil); len(got) != 0 {
			t.Errorf("count=1 should pass xone, got %v", got)
		}
	})

	t.Run("or", func(t *testing.T) {
		ps := &PropertyShape{Or: alternatives}

		// "a" satisfies neither alternative: fails.
		got := combinatorViolations("name", "a", ps, nil)
		if len(got) != 1 || got[0].Code != CodeOr {
			t.Fatalf("expected OR violation for count=0, got %v", got)
		}

		if got := combinatorViolations("name", "Abc", ps, nil); len(got) != 0 {
			t.Errorf("satisfying both alternatives should pass or, got %v", got)
		}
	})

	t.Run("and", func(t *testing.T) {
		ps := &PropertyShape{And: alternatives}

		if got := combinatorViolations("name", "Abc", ps, nil); len(got) != 0 {
			t.Errorf("satisfying all sets should pass and, got %v", got)
		}
		got := combinatorViolations("name", "abc", ps, nil)
		if len(got) != 1 || got[0].Code != CodeUnknown {
			t.Errorf("failing one set should fail and, got %v", got)
		}
	})

	t.Run("not", func(t *testing.T) {
		ps := &PropertyShape{Not: &PropertyShape{Pattern: `^[A-Z]`}}

		if got := combinatorViolations("name", "abc", ps, nil); len(got) != 0 {
			t.Errorf("value outside negated set should pass, got %v", got)
		}
		got := combinatorViolations("name", "Abc", ps, nil)
		if len(got) != 1 || got[0].Code != CodeUnknown {
			t.Errorf("value inside negated set should fail, got %v", got)
		}
	})

	t.Run("nested combinators recurse", func(t *testing.T) {
		// or( and(pattern, minLength), hasValue "x" )
		ps := &PropertyShape{Or: []*PropertyShape{
			{And: alternatives},
			{HasValue: "x"},
		}}

		if got := combinatorViolations("name", "Abc", ps, nil); len(got) != 0 {
			t.Errorf("nested and should satisfy or, got %v", got)
		}
		if got := combinatorViolations("name", "x", ps, nil); len(got) != 0 {
			t.Errorf("hasValue alternative should satisfy or, got %v", got)
		}
		if got := combinatorViolations("name", "ab", ps, nil); len(got) != 1 {
			t.Errorf("neither nested alternative holds, got %v", got)
		}
	})
}

// assertCodes verifies the violation codes match, in order.
func assertCodes(t *testing.T, got []Violation, want []Code) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d violations %v, got %d: %v", len(want), want, len(got), got)
	}
	for i, code := range want {
		if got[i].Code != code {
			t.Errorf("violation %d: expected code %s, got %s (%s)", i, code, got[i].Code, got[i].Message)
		}
	}
}
