package vocabulary

// Namespace base IRIs for the standard vocabularies.
const (
	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// OWLNamespace is the Web Ontology Language namespace.
	OWLNamespace = "http://www.w3.org/2002/07/owl#"

	// XSDNamespace is the XML Schema datatypes namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// SHACLNamespace is the Shapes Constraint Language namespace.
	SHACLNamespace = "http://www.w3.org/ns/shacl#"

	// SchemaOrgNamespace is the schema.org namespace.
	SchemaOrgNamespace = "https://schema.org/"
)

// RDF and RDFS term IRIs used by the inference context and exporters.
const (
	// RDFType asserts the class of a node.
	RDFType = RDFNamespace + "type"

	// RDFSSubClassOf relates a class to its superclass.
	RDFSSubClassOf = RDFSNamespace + "subClassOf"

	// RDFSSubPropertyOf relates a property to its superproperty.
	RDFSSubPropertyOf = RDFSNamespace + "subPropertyOf"

	// RDFSDomain declares the subject class of a property.
	RDFSDomain = RDFSNamespace + "domain"

	// RDFSRange declares the object class or datatype of a property.
	RDFSRange = RDFSNamespace + "range"

	// RDFSLabel provides a human-readable name.
	RDFSLabel = RDFSNamespace + "label"

	// RDFSComment provides a human-readable description.
	RDFSComment = RDFSNamespace + "comment"

	// RDFSClass is the class of classes.
	RDFSClass = RDFSNamespace + "Class"
)

// OWL term IRIs for the characteristics the lightweight reasoner tracks.
const (
	// OWLClass is the OWL class of classes.
	OWLClass = OWLNamespace + "Class"

	// OWLObjectProperty is the class of reference-valued properties.
	OWLObjectProperty = OWLNamespace + "ObjectProperty"

	// OWLDatatypeProperty is the class of literal-valued properties.
	OWLDatatypeProperty = OWLNamespace + "DatatypeProperty"

	// OWLEquivalentClass asserts class equivalence.
	OWLEquivalentClass = OWLNamespace + "equivalentClass"

	// OWLInverseOf relates a property to its inverse.
	OWLInverseOf = OWLNamespace + "inverseOf"

	// OWLFunctionalProperty marks a property with at most one value per subject.
	OWLFunctionalProperty = OWLNamespace + "FunctionalProperty"

	// OWLSymmetricProperty marks a property that holds in both directions.
	OWLSymmetricProperty = OWLNamespace + "SymmetricProperty"

	// OWLTransitiveProperty marks a property closed under chaining.
	OWLTransitiveProperty = OWLNamespace + "TransitiveProperty"
)

// XSD datatype IRIs recognized by the datatype evaluator. Prefixed forms are
// accepted interchangeably with the absolute forms.
const (
	// XSDString is the string datatype.
	XSDString = XSDNamespace + "string"

	// XSDInteger is the integer datatype.
	XSDInteger = XSDNamespace + "integer"

	// XSDDecimal is the decimal datatype.
	XSDDecimal = XSDNamespace + "decimal"

	// XSDBoolean is the boolean datatype.
	XSDBoolean = XSDNamespace + "boolean"

	// XSDDateTime is the dateTime datatype.
	XSDDateTime = XSDNamespace + "dateTime"

	// XSDAnyURI is the URI datatype.
	XSDAnyURI = XSDNamespace + "anyURI"
)

// SHACL term IRIs used when exporting shape definitions.
const (
	// SHACLNodeShape is the class of node shapes.
	SHACLNodeShape = SHACLNamespace + "NodeShape"

	// SHACLPropertyShape is the class of property shapes.
	SHACLPropertyShape = SHACLNamespace + "PropertyShape"

	// SHACLTargetClass binds a node shape to the class it constrains.
	SHACLTargetClass = SHACLNamespace + "targetClass"

	// SHACLProperty attaches a property shape to a node shape.
	SHACLProperty = SHACLNamespace + "property"

	// SHACLPath names the property a property shape constrains.
	SHACLPath = SHACLNamespace + "path"

	// SHACLDatatype constrains the literal datatype of values.
	SHACLDatatype = SHACLNamespace + "datatype"

	// SHACLClass constrains the class of referenced nodes.
	SHACLClass = SHACLNamespace + "class"

	// SHACLNode references the shape that values must conform to.
	SHACLNode = SHACLNamespace + "node"

	// SHACLMinCount is the minimum cardinality constraint.
	SHACLMinCount = SHACLNamespace + "minCount"

	// SHACLMaxCount is the maximum cardinality constraint.
	SHACLMaxCount = SHACLNamespace + "maxCount"

	// SHACLMinLength is the minimum string length constraint.
	SHACLMinLength = SHACLNamespace + "minLength"

	// SHACLMaxLength is the maximum string length constraint.
	SHACLMaxLength = SHACLNamespace + "maxLength"

	// SHACLPattern is the regular expression constraint.
	SHACLPattern = SHACLNamespace + "pattern"

	// SHACLMinInclusive is the inclusive lower numeric bound.
	SHACLMinInclusive = SHACLNamespace + "minInclusive"

	// SHACLMaxInclusive is the inclusive upper numeric bound.
	SHACLMaxInclusive = SHACLNamespace + "maxInclusive"

	// SHACLMinExclusive is the exclusive lower numeric bound.
	SHACLMinExclusive = SHACLNamespace + "minExclusive"

	// SHACLMaxExclusive is the exclusive upper numeric bound.
	SHACLMaxExclusive = SHACLNamespace + "maxExclusive"

	// SHACLNodeKind constrains the kind of value node.
	SHACLNodeKind = SHACLNamespace + "nodeKind"

	// SHACLIn enumerates the allowed values.
	SHACLIn = SHACLNamespace + "in"

	// SHACLHasValue requires a specific value to be present.
	SHACLHasValue = SHACLNamespace + "hasValue"

	// SHACLOr is the disjunction combinator.
	SHACLOr = SHACLNamespace + "or"

	// SHACLXone is the exactly-one combinator.
	SHACLXone = SHACLNamespace + "xone"

	// SHACLAnd is the conjunction combinator.
	SHACLAnd = SHACLNamespace + "and"

	// SHACLNot is the negation combinator.
	SHACLNot = SHACLNamespace + "not"

	// SHACLClosed marks a shape as rejecting undeclared properties.
	SHACLClosed = SHACLNamespace + "closed"

	// SHACLIgnoredProperties lists properties exempt from closedness.
	SHACLIgnoredProperties = SHACLNamespace + "ignoredProperties"

	// SHACLIRI is the IRI node kind.
	SHACLIRI = SHACLNamespace + "IRI"

	// SHACLLiteral is the literal node kind.
	SHACLLiteral = SHACLNamespace + "Literal"

	// SHACLBlankNode is the blank node kind.
	SHACLBlankNode = SHACLNamespace + "BlankNode"
)
