package vocabulary

import (
	"regexp"
	"strings"
)

// IRI is an opaque identifier for a class, property, datatype, or individual.
// It is either a prefixed name ("ex:Person") or an absolute IRI. Equality is
// string equality.
type IRI string

// String returns the IRI as a plain string.
func (i IRI) String() string {
	return string(i)
}

// IsEmpty reports whether the IRI is the zero value.
func (i IRI) IsEmpty() bool {
	return i == ""
}

// iriSchemeRe matches a leading URI scheme per RFC 3986 ("http:", "urn:",
// "ex:"). Prefixed names share this shape, which is deliberate: the node-kind
// evaluator treats any scheme-prefixed string as IRI-shaped.
var iriSchemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// IsIRI reports whether s is IRI-shaped, i.e. starts with a scheme prefix.
func IsIRI(s string) bool {
	return iriSchemeRe.MatchString(s)
}

// IsBlankNode reports whether s uses the blank node label convention "_:b0".
func IsBlankNode(s string) bool {
	return strings.HasPrefix(s, "_:")
}

// PrefixMap maps namespace prefixes to their base IRIs.
type PrefixMap map[string]string

// StandardPrefixes returns the prefix bindings every semshape component
// understands without further declaration.
func StandardPrefixes() PrefixMap {
	return PrefixMap{
		"rdf":    RDFNamespace,
		"rdfs":   RDFSNamespace,
		"owl":    OWLNamespace,
		"xsd":    XSDNamespace,
		"sh":     SHACLNamespace,
		"schema": SchemaOrgNamespace,
	}
}

// Merge returns a new PrefixMap containing the receiver's bindings overlaid
// with other's. Neither input is modified.
func (p PrefixMap) Merge(other PrefixMap) PrefixMap {
	merged := make(PrefixMap, len(p)+len(other))
	for prefix, ns := range p {
		merged[prefix] = ns
	}
	for prefix, ns := range other {
		merged[prefix] = ns
	}
	return merged
}

// Expand resolves a prefixed name against the map. Absolute IRIs and unknown
// prefixes pass through unchanged; an IRI is considered absolute when its
// scheme part is not a declared prefix.
func (p PrefixMap) Expand(iri IRI) IRI {
	s := string(iri)
	idx := strings.Index(s, ":")
	if idx <= 0 {
		return iri
	}
	prefix := s[:idx]
	ns, ok := p[prefix]
	if !ok {
		return iri
	}
	return IRI(ns + s[idx+1:])
}

// Compact rewrites an absolute IRI as a prefixed name when a declared
// namespace is a prefix of it. The longest matching namespace wins. IRIs with
// no matching namespace pass through unchanged.
func (p PrefixMap) Compact(iri IRI) IRI {
	s := string(iri)
	bestPrefix := ""
	bestLen := 0
	for prefix, ns := range p {
		if ns != "" && strings.HasPrefix(s, ns) && len(ns) > bestLen {
			bestPrefix = prefix
			bestLen = len(ns)
		}
	}
	if bestLen == 0 {
		return iri
	}
	return IRI(bestPrefix + ":" + s[bestLen:])
}
