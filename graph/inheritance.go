package graph

import "github.com/viant/archscan/ir"

// InheritanceNode is one node of the inheritance graph.
type InheritanceNode struct {
	Name     string
	Kind     ir.TypeKind
	FilePath string
	Line     int
}

// InheritanceEdge is one inherited-type clause entry.
type InheritanceEdge struct {
	From       string
	To         string
	IsInternal bool
}

// InheritanceGraph is the inheritance graph of §4.2.
type InheritanceGraph struct {
	Nodes []InheritanceNode
	Edges []InheritanceEdge

	declaredKinds map[string]ir.TypeKind
}

// BuildInheritanceGraph constructs the inheritance graph from r.
func BuildInheritanceGraph(r *ir.IR) *InheritanceGraph {
	g := &InheritanceGraph{declaredKinds: make(map[string]ir.TypeKind, len(r.TypeDeclarations))}

	for _, t := range r.TypeDeclarations {
		g.declaredKinds[t.Name] = t.Kind
	}

	for _, t := range r.TypeDeclarations {
		g.Nodes = append(g.Nodes, InheritanceNode{Name: t.Name, Kind: t.Kind, FilePath: t.FilePath, Line: t.Line})
		for _, parent := range t.InheritedTypes {
			_, isInternal := g.declaredKinds[parent]
			g.Edges = append(g.Edges, InheritanceEdge{From: t.Name, To: parent, IsInternal: isInternal})
		}
	}
	return g
}

// Subtypes returns the names of nodes whose out-edge list contains typeName.
func (g *InheritanceGraph) Subtypes(typeName string) []string {
	var out []string
	for _, e := range g.Edges {
		if e.To == typeName {
			out = append(out, e.From)
		}
	}
	return out
}

// Supertypes returns the raw out-edge target names of typeName.
func (g *InheritanceGraph) Supertypes(typeName string) []string {
	var out []string
	for _, e := range g.Edges {
		if e.From == typeName {
			out = append(out, e.To)
		}
	}
	return out
}

// Depth computes 1+max(depth(parent)) over internal parents only, with
// memoization; a back-edge to a type already on the current visitation set
// contributes depth 0, per §4.2/§9's cycle-safe rule.
func (g *InheritanceGraph) Depth(typeName string) int {
	memo := make(map[string]int)
	onStack := make(map[string]bool)
	return g.depth(typeName, memo, onStack)
}

func (g *InheritanceGraph) depth(typeName string, memo map[string]int, onStack map[string]bool) int {
	if d, ok := memo[typeName]; ok {
		return d
	}
	if onStack[typeName] {
		return 0
	}
	onStack[typeName] = true
	defer func() { onStack[typeName] = false }()

	max := 0
	for _, parent := range g.Supertypes(typeName) {
		if _, isInternal := g.declaredKinds[parent]; !isInternal {
			continue
		}
		d := 1 + g.depth(parent, memo, onStack)
		if d > max {
			max = d
		}
	}
	memo[typeName] = max
	return max
}

// Conformers returns the number of distinct types declaring protocolName in
// their inherited-types clause.
func (g *InheritanceGraph) Conformers(protocolName string) int {
	return len(g.Subtypes(protocolName))
}
