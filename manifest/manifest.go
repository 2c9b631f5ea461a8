// Package manifest loads ontology and shape declarations from YAML
// manifests and converts them into ontology declarations and node shapes.
//
// A manifest carries three sections:
//
//	prefixes:
//	  ex: https://example.org/
//	ontology:
//	  classes:
//	    - iri: ex:Person
//	      superClasses: [ex:Agent]
//	  properties:
//	    - iri: ex:knows
//	      domain: [ex:Person]
//	      range: [ex:Agent]
//	shapes:
//	  - targetClass: ex:Person
//	    properties:
//	      email:
//	        path: ex:email
//	        datatype: xsd:string
//	        minCount: 1
//
// IRIs are kept exactly as written: equality throughout semshape is string
// equality, so expanding prefixed names here would silently change matching
// against data that uses the prefixed form. The declared prefixes are
// surfaced through PrefixMap for exporters that need them.
package manifest

import (
	"github.com/c360studio/semshape/ontology"
	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary"
)

// Manifest is the parsed form of a declaration file.
type Manifest struct {
	Prefixes map[string]string `yaml:"prefixes"`
	Ontology OntologySection   `yaml:"ontology"`
	Shapes   []ShapeDecl       `yaml:"shapes"`
}

// OntologySection declares classes and properties.
type OntologySection struct {
	Classes    []ClassDecl    `yaml:"classes"`
	Properties []PropertyDecl `yaml:"properties"`
}

// ClassDecl declares one ontology class.
type ClassDecl struct {
	IRI               string   `yaml:"iri"`
	Label             string   `yaml:"label"`
	Comment           string   `yaml:"comment"`
	SuperClasses      []string `yaml:"superClasses"`
	EquivalentClasses []string `yaml:"equivalentClasses"`
}

// PropertyDecl declares one ontology property.
type PropertyDecl struct {
	IRI             string   `yaml:"iri"`
	Label           string   `yaml:"label"`
	Comment         string   `yaml:"comment"`
	SuperProperties []string `yaml:"superProperties"`
	Domain          []string `yaml:"domain"`
	Range           []string `yaml:"range"`
	InverseOf       string   `yaml:"inverseOf"`
	Characteristics []string `yaml:"characteristics"`
}

// ShapeDecl declares one node shape.
type ShapeDecl struct {
	TargetClass       string                    `yaml:"targetClass"`
	Closed            bool                      `yaml:"closed"`
	IgnoredProperties []string                  `yaml:"ignoredProperties"`
	Properties        map[string]ConstraintDecl `yaml:"properties"`
}

// ConstraintDecl declares one property constraint set, including nested
// combinator alternatives. Absent fields mean "no constraint".
type ConstraintDecl struct {
	Path         string           `yaml:"path"`
	Datatype     string           `yaml:"datatype"`
	Class        string           `yaml:"class"`
	Node         string           `yaml:"node"`
	Required     bool             `yaml:"required"`
	MinCount     *int             `yaml:"minCount"`
	MaxCount     *int             `yaml:"maxCount"`
	MinLength    *int             `yaml:"minLength"`
	MaxLength    *int             `yaml:"maxLength"`
	Pattern      string           `yaml:"pattern"`
	MinInclusive *float64         `yaml:"minInclusive"`
	MaxInclusive *float64         `yaml:"maxInclusive"`
	MinExclusive *float64         `yaml:"minExclusive"`
	MaxExclusive *float64         `yaml:"maxExclusive"`
	NodeKind     string           `yaml:"nodeKind"`
	In           []any            `yaml:"in"`
	HasValue     any              `yaml:"hasValue"`
	Or           []ConstraintDecl `yaml:"or"`
	Xone         []ConstraintDecl `yaml:"xone"`
	And          []ConstraintDecl `yaml:"and"`
	Not          *ConstraintDecl  `yaml:"not"`
}

// PrefixMap returns the standard prefixes overlaid with the manifest's own.
func (m *Manifest) PrefixMap() vocabulary.PrefixMap {
	return vocabulary.StandardPrefixes().Merge(m.Prefixes)
}

// BuildContext derives the inference context from the ontology section.
func (m *Manifest) BuildContext() *ontology.Context {
	return ontology.Build(m.Classes(), m.Properties())
}

// Classes converts the declared classes into ontology declarations.
func (m *Manifest) Classes() []ontology.Class {
	classes := make([]ontology.Class, 0, len(m.Ontology.Classes))
	for _, decl := range m.Ontology.Classes {
		classes = append(classes, ontology.Class{
			IRI:               vocabulary.IRI(decl.IRI),
			Label:             decl.Label,
			Comment:           decl.Comment,
			SuperClasses:      toIRIs(decl.SuperClasses),
			EquivalentClasses: toIRIs(decl.EquivalentClasses),
		})
	}
	return classes
}

// Properties converts the declared properties into ontology declarations.
// Unrecognized characteristic names are carried through verbatim.
func (m *Manifest) Properties() []ontology.Property {
	properties := make([]ontology.Property, 0, len(m.Ontology.Properties))
	for _, decl := range m.Ontology.Properties {
		chars := make([]ontology.Characteristic, 0, len(decl.Characteristics))
		for _, c := range decl.Characteristics {
			chars = append(chars, ontology.Characteristic(c))
		}
		properties = append(properties, ontology.Property{
			IRI:             vocabulary.IRI(decl.IRI),
			Label:           decl.Label,
			Comment:         decl.Comment,
			SuperProperties: toIRIs(decl.SuperProperties),
			Domain:          toIRIs(decl.Domain),
			Range:           toIRIs(decl.Range),
			InverseOf:       vocabulary.IRI(decl.InverseOf),
			Characteristics: chars,
		})
	}
	return properties
}

// NodeShapes converts the shape declarations into validation-ready shapes.
func (m *Manifest) NodeShapes() []*shape.NodeShape {
	shapes := make([]*shape.NodeShape, 0, len(m.Shapes))
	for _, decl := range m.Shapes {
		ns := &shape.NodeShape{
			TargetClass:       vocabulary.IRI(decl.TargetClass),
			Closed:            decl.Closed,
			IgnoredProperties: decl.IgnoredProperties,
		}
		if len(decl.Properties) > 0 {
			ns.Properties = make(map[string]*shape.PropertyShape, len(decl.Properties))
			for name, constraint := range decl.Properties {
				ns.Properties[name] = constraint.toPropertyShape()
			}
		}
		shapes = append(shapes, ns)
	}
	return shapes
}

// ShapeFor returns the node shape whose target class matches the given IRI.
func (m *Manifest) ShapeFor(targetClass vocabulary.IRI) (*shape.NodeShape, bool) {
	for _, ns := range m.NodeShapes() {
		if ns.TargetClass == targetClass {
			return ns, true
		}
	}
	return nil, false
}

func (c ConstraintDecl) toPropertyShape() *shape.PropertyShape {
	ps := &shape.PropertyShape{
		Path:         vocabulary.IRI(c.Path),
		Datatype:     vocabulary.IRI(c.Datatype),
		Class:        vocabulary.IRI(c.Class),
		Node:         vocabulary.IRI(c.Node),
		Required:     c.Required,
		MinCount:     c.MinCount,
		MaxCount:     c.MaxCount,
		MinLength:    c.MinLength,
		MaxLength:    c.MaxLength,
		Pattern:      c.Pattern,
		MinInclusive: c.MinInclusive,
		MaxInclusive: c.MaxInclusive,
		MinExclusive: c.MinExclusive,
		MaxExclusive: c.MaxExclusive,
		NodeKind:     shape.NodeKind(c.NodeKind),
		In:           c.In,
		HasValue:     c.HasValue,
	}
	ps.Or = toAlternatives(c.Or)
	ps.Xone = toAlternatives(c.Xone)
	ps.And = toAlternatives(c.And)
	if c.Not != nil {
		ps.Not = c.Not.toPropertyShape()
	}
	return ps
}

func toAlternatives(decls []ConstraintDecl) []*shape.PropertyShape {
	if len(decls) == 0 {
		return nil
	}
	alternatives := make([]*shape.PropertyShape, 0, len(decls))
	for _, decl := range decls {
		alternatives = append(alternatives, decl.toPropertyShape())
	}
	return alternatives
}

func toIRIs(values []string) []vocabulary.IRI {
	if len(values) == 0 {
		return nil
	}
	iris := make([]vocabulary.IRI, 0, len(values))
	for _, v := range values {
		iris = append(iris, vocabulary.IRI(v))
	}
	return iris
}
