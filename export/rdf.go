package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/semshape/shape"
	"github.com/c360studio/semshape/vocabulary"
)

// toTurtle serializes to Turtle format. Prefixed names that resolve through
// the prefix map are written as qnames; everything else is written as a full
// IRI reference.
func (e *Exporter) toTurtle() string {
	var sb strings.Builder

	prefixes := make([]string, 0, len(e.prefixes))
	for prefix := range e.prefixes {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, e.prefixes[prefix]))
	}
	sb.WriteString("\n")

	for _, c := range e.classes {
		sb.WriteString(fmt.Sprintf("%s a owl:Class", e.turtleRef(c.IRI)))
		if c.Label != "" {
			sb.WriteString(fmt.Sprintf(" ;\n    rdfs:label %q", c.Label))
		}
		if c.Comment != "" {
			sb.WriteString(fmt.Sprintf(" ;\n    rdfs:comment %q", c.Comment))
		}
		for _, super := range c.SuperClasses {
			sb.WriteString(fmt.Sprintf(" ;\n    rdfs:subClassOf %s", e.turtleRef(super)))
		}
		for _, eq := range c.EquivalentClasses {
			sb.WriteString(fmt.Sprintf(" ;\n    owl:equivalentClass %s", e.turtleRef(eq)))
		}
		sb.WriteString(" .\n\n")
	}

	for _, p := range e.properties {
		sb.WriteString(fmt.Sprintf("%s a rdf:Property", e.turtleRef(p.IRI)))
		for _, char := range p.Characteristics {
			if typeIRI, ok := characteristicType(char); ok {
				sb.WriteString(fmt.Sprintf(", %s", e.turtleRef(vocabulary.IRI(typeIRI))))
			}
		}
		if p.Label != "" {
			sb.WriteString(fmt.Sprintf(" ;\n    rdfs:label %q", p.Label))
		}
		if p.Comment != "" {
			sb.WriteString(fmt.Sprintf(" ;\n    rdfs:comment %q", p.Comment))
		}
		for _, super := range p.SuperProperties {
			sb.WriteString(fmt.Sprintf(" ;\n    rdfs:subPropertyOf %s", e.turtleRef(super)))
		}
		for _, domain := range p.Domain {
			sb.WriteString(fmt.Sprintf(" ;\n    rdfs:domain %s", e.turtleRef(domain)))
		}
		for _, rng := range p.Range {
			sb.WriteString(fmt.Sprintf(" ;\n    rdfs:range %s", e.turtleRef(rng)))
		}
		if !p.InverseOf.IsEmpty() {
			sb.WriteString(fmt.Sprintf(" ;\n    owl:inverseOf %s", e.turtleRef(p.InverseOf)))
		}
		sb.WriteString(" .\n\n")
	}

	for _, ns := range e.shapes {
		e.writeShapeTurtle(&sb, ns)
		sb.WriteString("\n")
	}

	return sb.String()
}

// writeShapeTurtle writes a node shape with nested property shape blocks.
func (e *Exporter) writeShapeTurtle(sb *strings.Builder, ns *shape.NodeShape) {
	sb.WriteString(fmt.Sprintf("%s a sh:NodeShape ;\n", e.turtleRef(shapeIRI(ns))))
	sb.WriteString(fmt.Sprintf("    sh:targetClass %s", e.turtleRef(ns.TargetClass)))
	if ns.Closed {
		sb.WriteString(" ;\n    sh:closed true")
		if len(ns.IgnoredProperties) > 0 {
			parts := make([]string, 0, len(ns.IgnoredProperties))
			for _, ignored := range ns.IgnoredProperties {
				parts = append(parts, fmt.Sprintf("%q", ignored))
			}
			sb.WriteString(fmt.Sprintf(" ;\n    sh:ignoredProperties ( %s )", strings.Join(parts, " ")))
		}
	}
	for _, name := range sortedPropertyNames(ns) {
		sb.WriteString(" ;\n    sh:property ")
		e.writePropertyShapeTurtle(sb, ns.Properties[name], "    ")
	}
	sb.WriteString(" .\n")
}

// writePropertyShapeTurtle writes a property shape as an anonymous blank
// node block, recursing into combinator alternatives.
func (e *Exporter) writePropertyShapeTurtle(sb *strings.Builder, ps *shape.PropertyShape, indent string) {
	inner := indent + "    "
	var parts []string

	add := func(predicate, object string) {
		parts = append(parts, fmt.Sprintf("%s%s %s", inner, predicate, object))
	}

	if !ps.Path.IsEmpty() {
		add("sh:path", e.turtleRef(ps.Path))
	}
	if !ps.Datatype.IsEmpty() {
		add("sh:datatype", e.turtleRef(ps.Datatype))
	}
	if !ps.Class.IsEmpty() {
		add("sh:class", e.turtleRef(ps.Class))
	}
	if !ps.Node.IsEmpty() {
		add("sh:node", e.turtleRef(ps.Node))
	}
	if ps.MinCount != nil {
		add("sh:minCount", fmt.Sprintf("%d", *ps.MinCount))
	} else if ps.Required {
		add("sh:minCount", "1")
	}
	if ps.MaxCount != nil {
		add("sh:maxCount", fmt.Sprintf("%d", *ps.MaxCount))
	}
	if ps.MinLength != nil {
		add("sh:minLength", fmt.Sprintf("%d", *ps.MinLength))
	}
	if ps.MaxLength != nil {
		add("sh:maxLength", fmt.Sprintf("%d", *ps.MaxLength))
	}
	if ps.Pattern != "" {
		add("sh:pattern", fmt.Sprintf("%q", ps.Pattern))
	}
	if ps.MinInclusive != nil {
		add("sh:minInclusive", formatNumber(*ps.MinInclusive))
	}
	if ps.MaxInclusive != nil {
		add("sh:maxInclusive", formatNumber(*ps.MaxInclusive))
	}
	if ps.MinExclusive != nil {
		add("sh:minExclusive", formatNumber(*ps.MinExclusive))
	}
	if ps.MaxExclusive != nil {
		add("sh:maxExclusive", formatNumber(*ps.MaxExclusive))
	}
	if ps.NodeKind != "" {
		add("sh:nodeKind", "sh:"+string(ps.NodeKind))
	}
	if len(ps.In) > 0 {
		members := make([]string, 0, len(ps.In))
		for _, member := range ps.In {
			members = append(members, e.turtleLiteral(member))
		}
		add("sh:in", fmt.Sprintf("( %s )", strings.Join(members, " ")))
	}
	if ps.HasValue != nil {
		add("sh:hasValue", e.turtleLiteral(ps.HasValue))
	}
	for _, combinator := range []struct {
		predicate    string
		alternatives []*shape.PropertyShape
	}{
		{"sh:or", ps.Or},
		{"sh:xone", ps.Xone},
		{"sh:and", ps.And},
	} {
		if len(combinator.alternatives) == 0 {
			continue
		}
		var list strings.Builder
		list.WriteString("(")
		for _, alt := range combinator.alternatives {
			list.WriteString(" ")
			e.writePropertyShapeTurtle(&list, alt, inner)
		}
		list.WriteString(" )")
		add(combinator.predicate, list.String())
	}
	if ps.Not != nil {
		var nested strings.Builder
		e.writePropertyShapeTurtle(&nested, ps.Not, inner)
		add("sh:not", nested.String())
	}

	sb.WriteString("[\n")
	sb.WriteString(strings.Join(parts, " ;\n"))
	sb.WriteString("\n" + indent + "]")
}

// turtleRef writes an IRI as a qname when its prefix is declared, as a full
// reference otherwise.
func (e *Exporter) turtleRef(iri vocabulary.IRI) string {
	compact := string(e.prefixes.Compact(iri))
	if idx := strings.Index(compact, ":"); idx > 0 && !strings.Contains(compact, "://") {
		if _, ok := e.prefixes[compact[:idx]]; ok {
			return compact
		}
	}
	return "<" + string(iri) + ">"
}

// turtleLiteral formats an enumeration or fixed value. IRI-shaped strings
// with a declared prefix become references; everything else becomes a
// literal.
func (e *Exporter) turtleLiteral(value any) string {
	switch v := value.(type) {
	case string:
		if vocabulary.IsIRI(v) {
			return e.turtleRef(vocabulary.IRI(v))
		}
		return fmt.Sprintf("%q", escapeString(v))
	case bool:
		return fmt.Sprintf("%t", v)
	case int:
		return fmt.Sprintf("%d", v)
	case int32:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float32:
		return formatNumber(float64(v))
	case float64:
		return formatNumber(v)
	default:
		return fmt.Sprintf("%q", fmt.Sprintf("%v", v))
	}
}

// formatNumber writes integral floats without a fractional part.
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

func sortedPropertyNames(ns *shape.NodeShape) []string {
	names := make([]string, 0, len(ns.Properties))
	for name := range ns.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ntWriter accumulates N-Triples output, allocating blank node labels as it
// goes.
type ntWriter struct {
	sb       strings.Builder
	prefixes vocabulary.PrefixMap
	blanks   int
}

func (w *ntWriter) nextBlank() string {
	w.blanks++
	return fmt.Sprintf("_:b%d", w.blanks)
}

// ref expands prefixed names to absolute IRIs and wraps them in angle
// brackets.
func (w *ntWriter) ref(iri vocabulary.IRI) string {
	return "<" + string(w.prefixes.Expand(iri)) + ">"
}

func (w *ntWriter) triple(subject, predicate, object string) {
	w.sb.WriteString(fmt.Sprintf("%s %s %s .\n", subject, predicate, object))
}

func (w *ntWriter) literal(value any) string {
	switch v := value.(type) {
	case string:
		if vocabulary.IsIRI(v) {
			return w.ref(vocabulary.IRI(v))
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case bool:
		return fmt.Sprintf("\"%t\"^^<%s>", v, vocabulary.XSDBoolean)
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^<%s>", v, vocabulary.XSDInteger)
	case float32, float64:
		return fmt.Sprintf("\"%v\"^^<%s>", v, vocabulary.XSDDecimal)
	default:
		return fmt.Sprintf("\"%s\"", escapeString(fmt.Sprintf("%v", v)))
	}
}

// list writes an RDF collection and returns its head node.
func (w *ntWriter) list(members []string) string {
	if len(members) == 0 {
		return "<" + vocabulary.RDFNamespace + "nil>"
	}
	head := w.nextBlank()
	node := head
	for i, member := range members {
		w.triple(node, "<"+vocabulary.RDFNamespace+"first>", member)
		if i == len(members)-1 {
			w.triple(node, "<"+vocabulary.RDFNamespace+"rest>", "<"+vocabulary.RDFNamespace+"nil>")
		} else {
			next := w.nextBlank()
			w.triple(node, "<"+vocabulary.RDFNamespace+"rest>", next)
			node = next
		}
	}
	return head
}

// toNTriples serializes to N-Triples format with fully expanded IRIs.
func (e *Exporter) toNTriples() string {
	w := &ntWriter{prefixes: e.prefixes}
	rdfType := "<" + vocabulary.RDFType + ">"

	for _, c := range e.classes {
		subject := w.ref(c.IRI)
		w.triple(subject, rdfType, "<"+vocabulary.OWLClass+">")
		if c.Label != "" {
			w.triple(subject, "<"+vocabulary.RDFSLabel+">", w.literal(c.Label))
		}
		if c.Comment != "" {
			w.triple(subject, "<"+vocabulary.RDFSComment+">", w.literal(c.Comment))
		}
		for _, super := range c.SuperClasses {
			w.triple(subject, "<"+vocabulary.RDFSSubClassOf+">", w.ref(super))
		}
		for _, eq := range c.EquivalentClasses {
			w.triple(subject, "<"+vocabulary.OWLEquivalentClass+">", w.ref(eq))
		}
	}

	for _, p := range e.properties {
		subject := w.ref(p.IRI)
		w.triple(subject, rdfType, "<"+vocabulary.RDFNamespace+"Property>")
		for _, char := range p.Characteristics {
			if typeIRI, ok := characteristicType(char); ok {
				w.triple(subject, rdfType, "<"+typeIRI+">")
			}
		}
		if p.Label != "" {
			w.triple(subject, "<"+vocabulary.RDFSLabel+">", w.literal(p.Label))
		}
		for _, super := range p.SuperProperties {
			w.triple(subject, "<"+vocabulary.RDFSSubPropertyOf+">", w.ref(super))
		}
		for _, domain := range p.Domain {
			w.triple(subject, "<"+vocabulary.RDFSDomain+">", w.ref(domain))
		}
		for _, rng := range p.Range {
			w.triple(subject, "<"+vocabulary.RDFSRange+">", w.ref(rng))
		}
		if !p.InverseOf.IsEmpty() {
			w.triple(subject, "<"+vocabulary.OWLInverseOf+">", w.ref(p.InverseOf))
		}
	}

	for _, ns := range e.shapes {
		subject := w.ref(shapeIRI(ns))
		w.triple(subject, rdfType, "<"+vocabulary.SHACLNodeShape+">")
		w.triple(subject, "<"+vocabulary.SHACLTargetClass+">", w.ref(ns.TargetClass))
		if ns.Closed {
			w.triple(subject, "<"+vocabulary.SHACLClosed+">", w.literal(true))
		}
		for _, name := range sortedPropertyNames(ns) {
			node := e.writePropertyShapeNT(w, ns.Properties[name])
			w.triple(subject, "<"+vocabulary.SHACLProperty+">", node)
		}
	}

	return w.sb.String()
}

// writePropertyShapeNT emits a property shape as a blank node and returns
// its label.
func (e *Exporter) writePropertyShapeNT(w *ntWriter, ps *shape.PropertyShape) string {
	node := w.nextBlank()
	w.triple(node, "<"+vocabulary.RDFType+">", "<"+vocabulary.SHACLPropertyShape+">")

	if !ps.Path.IsEmpty() {
		w.triple(node, "<"+vocabulary.SHACLPath+">", w.ref(ps.Path))
	}
	if !ps.Datatype.IsEmpty() {
		w.triple(node, "<"+vocabulary.SHACLDatatype+">", w.ref(ps.Datatype))
	}
	if !ps.Class.IsEmpty() {
		w.triple(node, "<"+vocabulary.SHACLClass+">", w.ref(ps.Class))
	}
	if !ps.Node.IsEmpty() {
		w.triple(node, "<"+vocabulary.SHACLNode+">", w.ref(ps.Node))
	}
	if ps.MinCount != nil {
		w.triple(node, "<"+vocabulary.SHACLMinCount+">", w.literal(*ps.MinCount))
	} else if ps.Required {
		w.triple(node, "<"+vocabulary.SHACLMinCount+">", w.literal(1))
	}
	if ps.MaxCount != nil {
		w.triple(node, "<"+vocabulary.SHACLMaxCount+">", w.literal(*ps.MaxCount))
	}
	if ps.MinLength != nil {
		w.triple(node, "<"+vocabulary.SHACLMinLength+">", w.literal(*ps.MinLength))
	}
	if ps.MaxLength != nil {
		w.triple(node, "<"+vocabulary.SHACLMaxLength+">", w.literal(*ps.MaxLength))
	}
	if ps.Pattern != "" {
		w.triple(node, "<"+vocabulary.SHACLPattern+">", w.literal(ps.Pattern))
	}
	if ps.MinInclusive != nil {
		w.triple(node, "<"+vocabulary.SHACLMinInclusive+">", w.literal(*ps.MinInclusive))
	}
	if ps.MaxInclusive != nil {
		w.triple(node, "<"+vocabulary.SHACLMaxInclusive+">", w.literal(*ps.MaxInclusive))
	}
	if ps.MinExclusive != nil {
		w.triple(node, "<"+vocabulary.SHACLMinExclusive+">", w.literal(*ps.MinExclusive))
	}
	if ps.MaxExclusive != nil {
		w.triple(node, "<"+vocabulary.SHACLMaxExclusive+">", w.literal(*ps.MaxExclusive))
	}
	if ps.NodeKind != "" {
		w.triple(node, "<"+vocabulary.SHACLNodeKind+">", "<"+vocabulary.SHACLNamespace+string(ps.NodeKind)+">")
	}
	if len(ps.In) > 0 {
		members := make([]string, 0, len(ps.In))
		for _, member := range ps.In {
			members = append(members, w.literal(member))
		}
		w.triple(node, "<"+vocabulary.SHACLIn+">", w.list(members))
	}
	if ps.HasValue != nil {
		w.triple(node, "<"+vocabulary.SHACLHasValue+">", w.literal(ps.HasValue))
	}
	for _, combinator := range []struct {
		predicate    string
		alternatives []*shape.PropertyShape
	}{
		{vocabulary.SHACLOr, ps.Or},
		{vocabulary.SHACLXone, ps.Xone},
		{vocabulary.SHACLAnd, ps.And},
	} {
		if len(combinator.alternatives) == 0 {
			continue
		}
		members := make([]string, 0, len(combinator.alternatives))
		for _, alt := range combinator.alternatives {
			members = append(members, e.writePropertyShapeNT(w, alt))
		}
		w.triple(node, "<"+combinator.predicate+">", w.list(members))
	}
	if ps.Not != nil {
		w.triple(node, "<"+vocabulary.SHACLNot+">", e.writePropertyShapeNT(w, ps.Not))
	}

	return node
}
