package ontology

import (
	"sort"

	"github.com/c360studio/semshape/vocabulary"
)

// iriSet is the adjacency value for the relation maps.
type iriSet map[vocabulary.IRI]bool

// Context is an immutable snapshot of the class/property hierarchy derived
// from a set of declarations. The subclass and subproperty maps are closed
// under transitivity; the equivalence map holds the symmetric declared
// adjacency only and is resolved lazily (see AreEquivalentClasses).
type Context struct {
	superClasses      map[vocabulary.IRI]iriSet
	superProperties   map[vocabulary.IRI]iriSet
	domains           map[vocabulary.IRI]iriSet
	ranges            map[vocabulary.IRI]iriSet
	equivalentClasses map[vocabulary.IRI]iriSet
	inverseProperties map[vocabulary.IRI]vocabulary.IRI
}

// Build derives an inference context from class and property declarations.
//
// Malformed or missing declarations never raise errors; they simply yield
// empty relation sets. Declared cycles (A subclass of B, B subclass of A) are
// not rejected: the closure still terminates because set growth is monotone
// and finite, and both classes end up as ancestors of each other.
func Build(classes []Class, properties []Property) *Context {
	ctx := &Context{
		superClasses:      make(map[vocabulary.IRI]iriSet),
		superProperties:   make(map[vocabulary.IRI]iriSet),
		domains:           make(map[vocabulary.IRI]iriSet),
		ranges:            make(map[vocabulary.IRI]iriSet),
		equivalentClasses: make(map[vocabulary.IRI]iriSet),
		inverseProperties: make(map[vocabulary.IRI]vocabulary.IRI),
	}

	// Seed relations from the declared sets.
	for _, c := range classes {
		if c.IRI.IsEmpty() {
			continue
		}
		ctx.addAll(ctx.superClasses, c.IRI, c.SuperClasses)
		// Equivalence edges are stored symmetrically but never transitively
		// closed at build time; chains are resolved by BFS at query time.
		for _, eq := range c.EquivalentClasses {
			if eq.IsEmpty() {
				continue
			}
			ctx.add(ctx.equivalentClasses, c.IRI, eq)
			ctx.add(ctx.equivalentClasses, eq, c.IRI)
		}
	}
	for _, p := range properties {
		if p.IRI.IsEmpty() {
			continue
		}
		ctx.addAll(ctx.superProperties, p.IRI, p.SuperProperties)
		ctx.addAll(ctx.domains, p.IRI, p.Domain)
		ctx.addAll(ctx.ranges, p.IRI, p.Range)
		if !p.InverseOf.IsEmpty() {
			ctx.inverseProperties[p.IRI] = p.InverseOf
			ctx.inverseProperties[p.InverseOf] = p.IRI
		}
	}

	closeTransitive(ctx.superClasses)
	closeTransitive(ctx.superProperties)

	// A subproperty inherits its superproperties' domains and ranges, unioned
	// with its own. The superproperty closure is already complete, so one
	// pass over the closed sets suffices.
	for prop, supers := range ctx.superProperties {
		for super := range supers {
			for domain := range ctx.domains[super] {
				ctx.add(ctx.domains, prop, domain)
			}
			for rng := range ctx.ranges[super] {
				ctx.add(ctx.ranges, prop, rng)
			}
		}
	}

	return ctx
}

// closeTransitive repeatedly unions each entry's related sets into it until a
// full scan adds nothing. Termination is guaranteed: sets only grow and the
// universe of IRIs is finite.
func closeTransitive(m map[vocabulary.IRI]iriSet) {
	for {
		changed := false
		for a, related := range m {
			for b := range related {
				for c := range m[b] {
					if c != a && !m[a][c] {
						m[a][c] = true
						changed = true
					}
				}
			}
		}
		if !changed {
			return
		}
	}
}

func (ctx *Context) add(m map[vocabulary.IRI]iriSet, key, member vocabulary.IRI) {
	if member.IsEmpty() {
		return
	}
	set, ok := m[key]
	if !ok {
		set = make(iriSet)
		m[key] = set
	}
	set[member] = true
}

func (ctx *Context) addAll(m map[vocabulary.IRI]iriSet, key vocabulary.IRI, members []vocabulary.IRI) {
	for _, member := range members {
		ctx.add(m, key, member)
	}
}

// IsSubClassOf reports whether sub is super or a (transitive) subclass of it.
// The relation is reflexive: every class is a subclass of itself, declared or
// not.
func (ctx *Context) IsSubClassOf(sub, super vocabulary.IRI) bool {
	if sub == super {
		return true
	}
	return ctx.superClasses[sub][super]
}

// IsSubPropertyOf reports whether sub is super or a (transitive) subproperty
// of it. Reflexive, like IsSubClassOf.
func (ctx *Context) IsSubPropertyOf(sub, super vocabulary.IRI) bool {
	if sub == super {
		return true
	}
	return ctx.superProperties[sub][super]
}

// AreEquivalentClasses reports whether a and b are connected through declared
// equivalence edges. The equivalence adjacency is not closed at build time;
// this walks it breadth-first with a visited set, so declared cycles are safe.
func (ctx *Context) AreEquivalentClasses(a, b vocabulary.IRI) bool {
	if a == b {
		return true
	}
	visited := iriSet{a: true}
	queue := []vocabulary.IRI{a}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for next := range ctx.equivalentClasses[current] {
			if next == b {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// AllSuperClasses returns the class itself plus every (transitive)
// superclass, sorted for deterministic output. The superclass map is already
// closed, so this is a lookup rather than a traversal.
func (ctx *Context) AllSuperClasses(class vocabulary.IRI) []vocabulary.IRI {
	result := []vocabulary.IRI{class}
	for super := range ctx.superClasses[class] {
		if super != class {
			result = append(result, super)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// InverseProperty returns the declared inverse of prop, if any.
func (ctx *Context) InverseProperty(prop vocabulary.IRI) (vocabulary.IRI, bool) {
	inv, ok := ctx.inverseProperties[prop]
	return inv, ok
}

// Domains returns the domain classes of prop, including those inherited from
// superproperties, sorted for deterministic output.
func (ctx *Context) Domains(prop vocabulary.IRI) []vocabulary.IRI {
	return sortedMembers(ctx.domains[prop])
}

// Ranges returns the range classes of prop, including those inherited from
// superproperties, sorted for deterministic output.
func (ctx *Context) Ranges(prop vocabulary.IRI) []vocabulary.IRI {
	return sortedMembers(ctx.ranges[prop])
}

func sortedMembers(set iriSet) []vocabulary.IRI {
	if len(set) == 0 {
		return nil
	}
	members := make([]vocabulary.IRI, 0, len(set))
	for member := range set {
		members = append(members, member)
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
	return members
}
