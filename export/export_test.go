package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semshape/ontology"
	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary"
)

func sampleExporter() *Exporter {
	e := NewExporter(vocabulary.PrefixMap{"ex": "https://example.org/"})
	e.AddClass(ontology.NewClass("ex:Person",
		ontology.WithLabel("Person"),
		ontology.WithSuperClasses("ex:Agent"),
	))
	e.AddProperty(ontology.NewProperty("ex:knows",
		ontology.WithPropertyLabel("knows"),
		ontology.WithDomain("ex:Person"),
		ontology.WithRange("ex:Agent"),
		ontology.WithCharacteristics(ontology.Symmetric),
	))
	e.AddShape(&shape.NodeShape{
		TargetClass: "ex:Person",
		Closed:      true,
		Properties: map[string]*shape.PropertyShape{
			"email": {
				Path:     "ex:email",
				Datatype: "xsd:string",
				MinCount: shape.Int(1),
				MaxCount: shape.Int(1),
			},
			"code": {
				Path: "ex:code",
				Xone: []*shape.PropertyShape{
					{Pattern: "^[A-Z]"},
					{MinLength: shape.Int(3)},
				},
			},
		},
	})
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{"turtle", "turtle", FormatTurtle, false},
		{"ttl alias", "ttl", FormatTurtle, false},
		{"ntriples", "ntriples", FormatNTriples, false},
		{"nt alias", "nt", FormatNTriples, false},
		{"jsonld", "jsonld", FormatJSONLD, false},
		{"json-ld alias", "JSON-LD", FormatJSONLD, false},
		{"context", "context", FormatContext, false},
		{"padded", "  turtle  ", FormatTurtle, false},
		{"unknown", "rdfxml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExportTurtle(t *testing.T) {
	out, err := sampleExporter().Export(FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix ex: <https://example.org/> .")
	assert.Contains(t, out, "@prefix sh: <http://www.w3.org/ns/shacl#> .")
	assert.Contains(t, out, "ex:Person a owl:Class")
	assert.Contains(t, out, `rdfs:label "Person"`)
	assert.Contains(t, out, "rdfs:subClassOf ex:Agent")
	assert.Contains(t, out, "ex:knows a rdf:Property, owl:SymmetricProperty")
	assert.Contains(t, out, "rdfs:domain ex:Person")
	assert.Contains(t, out, "ex:PersonShape a sh:NodeShape")
	assert.Contains(t, out, "sh:targetClass ex:Person")
	assert.Contains(t, out, "sh:closed true")
	assert.Contains(t, out, "sh:path ex:email")
	assert.Contains(t, out, "sh:minCount 1")
	assert.Contains(t, out, "sh:xone (")
}

func TestExportTurtleDeterministic(t *testing.T) {
	first, err := sampleExporter().Export(FormatTurtle)
	require.NoError(t, err)
	second, err := sampleExporter().Export(FormatTurtle)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExportNTriples(t *testing.T) {
	out, err := sampleExporter().Export(FormatNTriples)
	require.NoError(t, err)

	assert.Contains(t, out,
		"<https://example.org/Person> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Class> .")
	assert.Contains(t, out,
		"<https://example.org/knows> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#SymmetricProperty> .")
	assert.Contains(t, out,
		"<https://example.org/PersonShape> <http://www.w3.org/ns/shacl#targetClass> <https://example.org/Person> .")

	// Every line is a well-formed triple.
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.True(t, strings.HasSuffix(line, " ."), "line %q", line)
	}
}

func TestExportJSONLD(t *testing.T) {
	out, err := sampleExporter().Export(FormatJSONLD)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	context, ok := doc["@context"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://example.org/", context["ex"])

	graph, ok := doc["@graph"].([]any)
	require.True(t, ok)
	require.Len(t, graph, 3)

	shapeNode := graph[2].(map[string]any)
	assert.Equal(t, "ex:PersonShape", shapeNode["@id"])
	assert.Equal(t, "sh:NodeShape", shapeNode["@type"])
	assert.Equal(t, true, shapeNode["sh:closed"])

	properties, ok := shapeNode["sh:property"].([]any)
	require.True(t, ok)
	require.Len(t, properties, 2)

	code := properties[0].(map[string]any)
	xone, ok := code["sh:xone"].([]any)
	require.True(t, ok)
	assert.Len(t, xone, 2)
}

func TestExportContext(t *testing.T) {
	out, err := sampleExporter().Export(FormatContext)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	context, ok := doc["@context"].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "ex:Person", context["Person"])

	knows, ok := context["knows"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ex:knows", knows["@id"])
	assert.Equal(t, "@id", knows["@type"])
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := sampleExporter().Export(Format("rdfxml"))
	assert.Error(t, err)
}
