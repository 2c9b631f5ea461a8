// Package ontology provides class and property declarations and the
// lightweight RDFS/OWL-Lite inference context built from them.
//
// # Declarations
//
// Class and Property are immutable value records constructed with functional
// options:
//
//	person := ontology.NewClass("ex:Person",
//	    ontology.WithLabel("Person"),
//	    ontology.WithSuperClasses("ex:Agent"))
//
//	knows := ontology.NewProperty("ex:knows",
//	    ontology.WithDomain("ex:Person"),
//	    ontology.WithRange("ex:Agent"),
//	    ontology.WithInverseOf("ex:knownBy"))
//
// # Inference Context
//
// Build computes an immutable snapshot of the class/property hierarchy:
// transitive closures for subclass and subproperty relations, domain and
// range inheritance down the subproperty hierarchy, symmetric equivalence
// adjacency, and a bidirectional inverse-property lookup.
//
// Subclass and subproperty closures are computed eagerly to a fixed point.
// Equivalence is deliberately different: declared edges are stored
// symmetrically but not transitively closed, and AreEquivalentClasses
// resolves chains by breadth-first search at query time.
//
// A Context is never mutated after Build; rebuild it when declarations
// change. Concurrent reads from any number of goroutines are safe.
package ontology
