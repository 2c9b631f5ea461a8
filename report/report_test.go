package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semshape/shape"
)

func sampleReport() *Report {
	r := New()
	r.Add("people/alice.json", "ex:Person", shape.Result{OK: true})
	r.Add("people/bob.json", "ex:Person", shape.Result{
		OK: false,
		Violations: []shape.Violation{
			{Path: "email", Code: shape.CodeCardinalityRequired, Message: "required property is missing"},
			{Path: "age", Code: shape.CodeRangeMismatch, Message: "value below minimum"},
		},
	})
	r.Add("people/carol.json", "ex:Person", shape.Result{
		OK: false,
		Violations: []shape.Violation{
			{Path: "email", Code: shape.CodeCardinalityRequired, Message: "required property is missing"},
		},
	})
	return r
}

func TestNewAssignsIdentity(t *testing.T) {
	r := New()
	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestOK(t *testing.T) {
	r := New()
	r.Add("a.json", "ex:Person", shape.Result{OK: true})
	assert.True(t, r.OK())

	r.Add("b.json", "ex:Person", shape.Result{OK: false, Violations: []shape.Violation{
		{Path: "email", Code: shape.CodeCardinalityRequired},
	}})
	assert.False(t, r.OK())
}

func TestSummarize(t *testing.T) {
	s := sampleReport().Summarize()

	assert.Equal(t, 3, s.Targets)
	assert.Equal(t, 1, s.Conforming)
	assert.Equal(t, 3, s.Violations)
	assert.Equal(t, 2, s.ByCode[string(shape.CodeCardinalityRequired)])
	assert.Equal(t, 1, s.ByCode[string(shape.CodeRangeMismatch)])
}

func TestText(t *testing.T) {
	out := sampleReport().Text()

	assert.Contains(t, out, "people/bob.json:")
	assert.Contains(t, out, "people/carol.json:")
	assert.NotContains(t, out, "people/alice.json")
	assert.Contains(t, out, "3 target(s), 1 conforming, 3 violation(s)")
	assert.Contains(t, out, "CARDINALITY_REQUIRED=2")
	assert.Contains(t, out, "RANGE_MISMATCH=1")
}

func TestTextAllConforming(t *testing.T) {
	r := New()
	r.Add("a.json", "ex:Person", shape.Result{OK: true})

	out := r.Text()
	assert.Equal(t, "1 target(s), 1 conforming, 0 violation(s)\n", out)
}

func TestJSON(t *testing.T) {
	out, err := sampleReport().JSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.NotEmpty(t, doc["id"])
	entries, ok := doc["entries"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 3)

	summary, ok := doc["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3.0, summary["targets"])

	// Violation codes survive the round trip.
	assert.True(t, strings.Contains(out, string(shape.CodeCardinalityRequired)))
}
