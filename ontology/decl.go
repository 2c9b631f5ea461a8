package ontology

import "github.com/c360studio/semshape/vocabulary"

// Characteristic is an OWL property characteristic tracked as declaration
// metadata. The inference context does not reason over characteristics; they
// are carried for export and documentation.
type Characteristic string

const (
	// Functional marks a property with at most one value per subject.
	Functional Characteristic = "functional"

	// Symmetric marks a property that holds in both directions.
	Symmetric Characteristic = "symmetric"

	// Transitive marks a property closed under chaining.
	Transitive Characteristic = "transitive"
)

// Class declares an ontology class: an identity IRI plus optional metadata.
// Built once by the caller and read-only afterward.
type Class struct {
	IRI               vocabulary.IRI
	Label             string
	Comment           string
	SuperClasses      []vocabulary.IRI
	EquivalentClasses []vocabulary.IRI
}

// Property declares an ontology property. Domain and Range each hold zero or
// more class IRIs; InverseOf names the inverse property when declared.
type Property struct {
	IRI             vocabulary.IRI
	Label           string
	Comment         string
	SuperProperties []vocabulary.IRI
	Domain          []vocabulary.IRI
	Range           []vocabulary.IRI
	InverseOf       vocabulary.IRI
	Characteristics []Characteristic
}

// ClassOption configures a Class under construction.
type ClassOption func(*Class)

// PropertyOption configures a Property under construction.
type PropertyOption func(*Property)

// NewClass builds a class declaration from an IRI and options.
func NewClass(iri vocabulary.IRI, opts ...ClassOption) Class {
	c := Class{IRI: iri}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewProperty builds a property declaration from an IRI and options.
func NewProperty(iri vocabulary.IRI, opts ...PropertyOption) Property {
	p := Property{IRI: iri}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithLabel sets the human-readable label.
func WithLabel(label string) ClassOption {
	return func(c *Class) {
		c.Label = label
	}
}

// WithComment sets the human-readable description.
func WithComment(comment string) ClassOption {
	return func(c *Class) {
		c.Comment = comment
	}
}

// WithSuperClasses appends direct superclasses.
func WithSuperClasses(supers ...vocabulary.IRI) ClassOption {
	return func(c *Class) {
		c.SuperClasses = append(c.SuperClasses, supers...)
	}
}

// WithEquivalentClasses appends declared equivalent classes.
func WithEquivalentClasses(classes ...vocabulary.IRI) ClassOption {
	return func(c *Class) {
		c.EquivalentClasses = append(c.EquivalentClasses, classes...)
	}
}

// WithPropertyLabel sets the human-readable label.
func WithPropertyLabel(label string) PropertyOption {
	return func(p *Property) {
		p.Label = label
	}
}

// WithPropertyComment sets the human-readable description.
func WithPropertyComment(comment string) PropertyOption {
	return func(p *Property) {
		p.Comment = comment
	}
}

// WithSuperProperties appends direct superproperties.
func WithSuperProperties(supers ...vocabulary.IRI) PropertyOption {
	return func(p *Property) {
		p.SuperProperties = append(p.SuperProperties, supers...)
	}
}

// WithDomain appends domain classes.
func WithDomain(classes ...vocabulary.IRI) PropertyOption {
	return func(p *Property) {
		p.Domain = append(p.Domain, classes...)
	}
}

// WithRange appends range classes.
func WithRange(classes ...vocabulary.IRI) PropertyOption {
	return func(p *Property) {
		p.Range = append(p.Range, classes...)
	}
}

// WithInverseOf declares the inverse property.
func WithInverseOf(inverse vocabulary.IRI) PropertyOption {
	return func(p *Property) {
		p.InverseOf = inverse
	}
}

// WithCharacteristics appends OWL characteristics.
func WithCharacteristics(chars ...Characteristic) PropertyOption {
	return func(p *Property) {
		p.Characteristics = append(p.Characteristics, chars...)
	}
}

// HasCharacteristic reports whether the property declares the characteristic.
func (p Property) HasCharacteristic(c Characteristic) bool {
	for _, have := range p.Characteristics {
		if have == c {
			return true
		}
	}
	return false
}
