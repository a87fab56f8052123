package graph

import (
	"sort"

	"github.com/viant/archscan/ir"
)

// CallNode is one node of the call graph.
type CallNode struct {
	Name           string
	FilePath       string
	ContainingType *string
}

// CallEdge is one call site.
type CallEdge struct {
	Caller     *string
	Callee     string
	IsInternal bool
}

// CallGraph is the call graph of §4.2.
type CallGraph struct {
	Nodes []CallNode
	Edges []CallEdge

	declaredNames map[string]bool
}

// BuildCallGraph constructs the call graph from r.
func BuildCallGraph(r *ir.IR) *CallGraph {
	g := &CallGraph{declaredNames: make(map[string]bool, len(r.FunctionDeclarations))}

	for _, fn := range r.FunctionDeclarations {
		g.declaredNames[fn.Name] = true
		g.Nodes = append(g.Nodes, CallNode{Name: fn.Name, FilePath: fn.FilePath, ContainingType: fn.ContainingType})
	}

	for _, cs := range r.CallSites {
		g.Edges = append(g.Edges, CallEdge{
			Caller:     cs.ContainingFunction,
			Callee:     cs.CalledName,
			IsInternal: g.declaredNames[cs.CalledName],
		})
	}
	return g
}

// HotFunction is one entry of FindHotFunctions' result.
type HotFunction struct {
	Name  string
	Count int
}

// FindHotFunctions counts internal in-edges per callee name, keeps those
// with count >= threshold, and sorts descending by count (ties broken by
// name for determinism).
func (g *CallGraph) FindHotFunctions(threshold int) []HotFunction {
	counts := make(map[string]int)
	for _, e := range g.Edges {
		if e.IsInternal {
			counts[e.Callee]++
		}
	}

	var out []HotFunction
	for name, count := range counts {
		if count >= threshold {
			out = append(out, HotFunction{Name: name, Count: count})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// FindUnusedFunctions returns nodes whose name never appears as the callee
// of an internal edge.
func (g *CallGraph) FindUnusedFunctions() []CallNode {
	called := make(map[string]bool)
	for _, e := range g.Edges {
		if e.IsInternal {
			called[e.Callee] = true
		}
	}

	var out []CallNode
	for _, n := range g.Nodes {
		if !called[n.Name] {
			out = append(out, n)
		}
	}
	return out
}
