// Package export serializes ontology declarations and node shapes to RDF
// (Turtle, N-Triples, JSON-LD) and generates JSON-LD @context documents.
//
// Export is purely a function of the definitions: validation results never
// influence it.
package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/semshape/ontology"
	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"

	// FormatContext produces a JSON-LD @context document derived from the
	// ontology declarations.
	FormatContext Format = "context"
)

// ParseFormat resolves a format name, accepting the common aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "turtle", "ttl":
		return FormatTurtle, nil
	case "ntriples", "nt":
		return FormatNTriples, nil
	case "jsonld", "json-ld":
		return FormatJSONLD, nil
	case "context":
		return FormatContext, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", name)
	}
}

// Exporter collects declarations and serializes them on demand.
type Exporter struct {
	prefixes   vocabulary.PrefixMap
	classes    []ontology.Class
	properties []ontology.Property
	shapes     []*shape.NodeShape
}

// NewExporter creates an exporter with the standard prefixes overlaid with
// the supplied ones.
func NewExporter(prefixes vocabulary.PrefixMap) *Exporter {
	return &Exporter{
		prefixes: vocabulary.StandardPrefixes().Merge(prefixes),
	}
}

// AddClass adds a class declaration to be exported.
func (e *Exporter) AddClass(c ontology.Class) {
	e.classes = append(e.classes, c)
}

// AddProperty adds a property declaration to be exported.
func (e *Exporter) AddProperty(p ontology.Property) {
	e.properties = append(e.properties, p)
}

// AddShape adds a node shape to be exported.
func (e *Exporter) AddShape(ns *shape.NodeShape) {
	e.shapes = append(e.shapes, ns)
}

// Export serializes everything added so far to the specified format.
func (e *Exporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	case FormatJSONLD:
		return e.toJSONLD()
	case FormatContext:
		return e.toContext()
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// shapeIRI derives a stable IRI for a node shape from its target class.
func shapeIRI(ns *shape.NodeShape) vocabulary.IRI {
	return ns.TargetClass + "Shape"
}

// characteristicType maps an OWL characteristic to its class IRI.
func characteristicType(c ontology.Characteristic) (string, bool) {
	switch c {
	case ontology.Functional:
		return vocabulary.OWLFunctionalProperty, true
	case ontology.Symmetric:
		return vocabulary.OWLSymmetricProperty, true
	case ontology.Transitive:
		return vocabulary.OWLTransitiveProperty, true
	default:
		return "", false
	}
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
