package typesystem

import (
	"sort"

	"github.com/samber/lo"
)

// Partition is the equivalence relation closed over a constraint set. It
// is a union-find with path compression — observationally the same as
// merging sets pairwise, constraint by constraint.
type Partition struct {
	parent map[Type]Type
	rank   map[Type]int
	nodes  []Type // insertion order, for stable class listings
}

// Unify closes the constraints into an equivalence partition. Classes
// holding two distinct base tags are legal here; Conflicts surfaces them
// for whoever wants to reject the program.
func Unify(constraints []Constraint) *Partition {
	p := &Partition{
		parent: make(map[Type]Type),
		rank:   make(map[Type]int),
	}
	for _, c := range constraints {
		if c.Left == c.Right {
			continue
		}
		p.union(c.Left, c.Right)
	}
	return p
}

func (p *Partition) add(t Type) {
	if _, ok := p.parent[t]; !ok {
		p.parent[t] = t
		p.rank[t] = 0
		p.nodes = append(p.nodes, t)
	}
}

func (p *Partition) find(t Type) Type {
	root := t
	for p.parent[root] != root {
		root = p.parent[root]
	}
	// Path compression
	for p.parent[t] != root {
		p.parent[t], t = root, p.parent[t]
	}
	return root
}

func (p *Partition) union(a, b Type) {
	p.add(a)
	p.add(b)
	ra, rb := p.find(a), p.find(b)
	if ra == rb {
		return
	}
	if p.rank[ra] < p.rank[rb] {
		ra, rb = rb, ra
	}
	p.parent[rb] = ra
	if p.rank[ra] == p.rank[rb] {
		p.rank[ra]++
	}
}

// Same reports whether two handles ended up in one class.
func (p *Partition) Same(a, b Type) bool {
	if a == b {
		return true
	}
	if _, ok := p.parent[a]; !ok {
		return false
	}
	if _, ok := p.parent[b]; !ok {
		return false
	}
	return p.find(a) == p.find(b)
}

// Class returns the equivalence set of a handle, sorted by name. A
// handle no constraint mentioned is its own singleton class.
func (p *Partition) Class(t Type) []Type {
	if _, ok := p.parent[t]; !ok {
		return []Type{t}
	}
	root := p.find(t)
	class := lo.Filter(p.nodes, func(n Type, _ int) bool {
		return p.find(n) == root
	})
	sort.Slice(class, func(i, j int) bool { return class[i].String() < class[j].String() })
	return class
}

// Sets is the published setsMap contract: every handle that appears in
// any constraint mapped to the names in its equivalence class.
func (p *Partition) Sets() map[string][]string {
	sets := make(map[string][]string, len(p.nodes))
	for _, t := range p.nodes {
		sets[t.String()] = lo.Map(p.Class(t), func(m Type, _ int) string { return m.String() })
	}
	return sets
}

// Conflicts returns the classes that contain more than one distinct base
// type tag. Deciding what to do about them is the caller's business.
func (p *Partition) Conflicts() [][]Type {
	seen := make(map[Type]bool)
	var conflicts [][]Type
	for _, t := range p.nodes {
		root := p.find(t)
		if seen[root] {
			continue
		}
		seen[root] = true
		class := p.Class(t)
		tags := lo.CountBy(class, func(m Type) bool {
			_, isCon := m.(TCon)
			return isCon
		})
		if tags > 1 {
			conflicts = append(conflicts, class)
		}
	}
	return conflicts
}
