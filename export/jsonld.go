package export

import (
	"encoding/json"
	"fmt"

	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary"
)

// toJSONLD serializes the declarations as a JSON-LD document with an
// @context of prefix bindings and an @graph of class, property, and shape
// nodes.
func (e *Exporter) toJSONLD() (string, error) {
	context := make(map[string]any, len(e.prefixes))
	for prefix, ns := range e.prefixes {
		context[prefix] = ns
	}

	graph := make([]any, 0, len(e.classes)+len(e.properties)+len(e.shapes))
	for _, c := range e.classes {
		node := map[string]any{
			"@id":   c.IRI.String(),
			"@type": "owl:Class",
		}
		if c.Label != "" {
			node["rdfs:label"] = c.Label
		}
		if c.Comment != "" {
			node["rdfs:comment"] = c.Comment
		}
		if len(c.SuperClasses) > 0 {
			node["rdfs:subClassOf"] = iriRefs(c.SuperClasses)
		}
		if len(c.EquivalentClasses) > 0 {
			node["owl:equivalentClass"] = iriRefs(c.EquivalentClasses)
		}
		graph = append(graph, node)
	}

	for _, p := range e.properties {
		types := []string{"rdf:Property"}
		for _, char := range p.Characteristics {
			if typeIRI, ok := characteristicType(char); ok {
				types = append(types, string(e.prefixes.Compact(vocabulary.IRI(typeIRI))))
			}
		}
		node := map[string]any{
			"@id":   p.IRI.String(),
			"@type": types,
		}
		if p.Label != "" {
			node["rdfs:label"] = p.Label
		}
		if p.Comment != "" {
			node["rdfs:comment"] = p.Comment
		}
		if len(p.SuperProperties) > 0 {
			node["rdfs:subPropertyOf"] = iriRefs(p.SuperProperties)
		}
		if len(p.Domain) > 0 {
			node["rdfs:domain"] = iriRefs(p.Domain)
		}
		if len(p.Range) > 0 {
			node["rdfs:range"] = iriRefs(p.Range)
		}
		if !p.InverseOf.IsEmpty() {
			node["owl:inverseOf"] = iriRef(p.InverseOf.String())
		}
		graph = append(graph, node)
	}

	for _, ns := range e.shapes {
		node := map[string]any{
			"@id":            shapeIRI(ns).String(),
			"@type":          "sh:NodeShape",
			"sh:targetClass": iriRef(ns.TargetClass.String()),
		}
		if ns.Closed {
			node["sh:closed"] = true
		}
		if len(ns.IgnoredProperties) > 0 {
			node["sh:ignoredProperties"] = ns.IgnoredProperties
		}
		var properties []any
		for _, name := range sortedPropertyNames(ns) {
			properties = append(properties, propertyShapeJSON(ns.Properties[name]))
		}
		if properties != nil {
			node["sh:property"] = properties
		}
		graph = append(graph, node)
	}

	doc := map[string]any{
		"@context": context,
		"@graph":   graph,
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal JSON-LD: %w", err)
	}
	return string(out), nil
}

// propertyShapeJSON renders a property shape, recursing into combinators.
func propertyShapeJSON(ps *shape.PropertyShape) map[string]any {
	node := make(map[string]any)
	if !ps.Path.IsEmpty() {
		node["sh:path"] = iriRef(ps.Path.String())
	}
	if !ps.Datatype.IsEmpty() {
		node["sh:datatype"] = iriRef(ps.Datatype.String())
	}
	if !ps.Class.IsEmpty() {
		node["sh:class"] = iriRef(ps.Class.String())
	}
	if !ps.Node.IsEmpty() {
		node["sh:node"] = iriRef(ps.Node.String())
	}
	if ps.MinCount != nil {
		node["sh:minCount"] = *ps.MinCount
	} else if ps.Required {
		node["sh:minCount"] = 1
	}
	if ps.MaxCount != nil {
		node["sh:maxCount"] = *ps.MaxCount
	}
	if ps.MinLength != nil {
		node["sh:minLength"] = *ps.MinLength
	}
	if ps.MaxLength != nil {
		node["sh:maxLength"] = *ps.MaxLength
	}
	if ps.Pattern != "" {
		node["sh:pattern"] = ps.Pattern
	}
	if ps.MinInclusive != nil {
		node["sh:minInclusive"] = *ps.MinInclusive
	}
	if ps.MaxInclusive != nil {
		node["sh:maxInclusive"] = *ps.MaxInclusive
	}
	if ps.MinExclusive != nil {
		node["sh:minExclusive"] = *ps.MinExclusive
	}
	if ps.MaxExclusive != nil {
		node["sh:maxExclusive"] = *ps.MaxExclusive
	}
	if ps.NodeKind != "" {
		node["sh:nodeKind"] = iriRef("sh:" + string(ps.NodeKind))
	}
	if len(ps.In) > 0 {
		node["sh:in"] = ps.In
	}
	if ps.HasValue != nil {
		node["sh:hasValue"] = ps.HasValue
	}
	if len(ps.Or) > 0 {
		node["sh:or"] = alternativesJSON(ps.Or)
	}
	if len(ps.Xone) > 0 {
		node["sh:xone"] = alternativesJSON(ps.Xone)
	}
	if len(ps.And) > 0 {
		node["sh:and"] = alternativesJSON(ps.And)
	}
	if ps.Not != nil {
		node["sh:not"] = propertyShapeJSON(ps.Not)
	}
	return node
}

func alternativesJSON(alternatives []*shape.PropertyShape) []any {
	out := make([]any, 0, len(alternatives))
	for _, alt := range alternatives {
		out = append(out, propertyShapeJSON(alt))
	}
	return out
}

// toContext generates a JSON-LD @context document from the ontology
// declarations: prefix bindings plus a term for every labeled class and
// property. Reference-valued properties (those with a declared range) are
// marked with "@type": "@id".
func (e *Exporter) toContext() (string, error) {
	context := make(map[string]any, len(e.prefixes))
	for prefix, ns := range e.prefixes {
		context[prefix] = ns
	}

	for _, c := range e.classes {
		if c.Label == "" {
			continue
		}
		context[c.Label] = c.IRI.String()
	}
	for _, p := range e.properties {
		if p.Label == "" {
			continue
		}
		if len(p.Range) > 0 {
			context[p.Label] = map[string]any{
				"@id":   p.IRI.String(),
				"@type": "@id",
			}
		} else {
			context[p.Label] = p.IRI.String()
		}
	}

	out, err := json.MarshalIndent(map[string]any{"@context": context}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal @context: %w", err)
	}
	return string(out), nil
}

func iriRef(iri string) map[string]any {
	return map[string]any{"@id": iri}
}

func iriRefs[T ~string](iris []T) []any {
	out := make([]any, 0, len(iris))
	for _, iri := range iris {
		out = append(out, iriRef(string(iri)))
	}
	return out
}
