// Package graph derives the three dependency graphs of §4.2 from one IR:
// the file-dependency graph, the inheritance graph and the call graph. All
// three are built once and never mutated afterward.
package graph

import (
	"sort"

	"github.com/viant/archscan/ir"
)

// FileNode is one node of the file-dependency graph.
type FileNode struct {
	Path         string
	ModuleName   string
	IsEntryPoint bool
}

// FileEdge is one (file, import) pair; ResolvedPath is nil when the import's
// module name does not match any file in the input set.
type FileEdge struct {
	From         string
	To           string
	ResolvedPath *string
}

// FileGraph is the file-dependency graph of §4.2.
type FileGraph struct {
	Nodes []FileNode
	Edges []FileEdge

	// CollisionModules holds module names claimed by more than one file,
	// recorded in the order the second (and later) claim was observed.
	CollisionModules []string

	pathIndex   map[string]int
	moduleOfPath map[string]string
}

// BuildFileGraph constructs the file-dependency graph from r. Files are
// visited in the order they appear in r.Files, which ir.Build already
// produced sorted by path, so moduleToFile's "later one wins" rule (§4.2) is
// deterministic.
func BuildFileGraph(r *ir.IR) *FileGraph {
	g := &FileGraph{
		pathIndex:    make(map[string]int, len(r.Files)),
		moduleOfPath: make(map[string]string, len(r.Files)),
	}

	moduleToFile := make(map[string]string, len(r.Files))
	seenModules := make(map[string]bool, len(r.Files))

	for _, f := range r.Files {
		g.Nodes = append(g.Nodes, FileNode{Path: f.Path, ModuleName: f.ModuleName, IsEntryPoint: f.IsEntryPoint})
		g.pathIndex[f.Path] = len(g.Nodes) - 1
		g.moduleOfPath[f.Path] = f.ModuleName

		if seenModules[f.ModuleName] {
			g.CollisionModules = append(g.CollisionModules, f.ModuleName)
		}
		seenModules[f.ModuleName] = true
		moduleToFile[f.ModuleName] = f.Path // last wins
	}

	for _, f := range r.Files {
		for _, imp := range f.Imports {
			edge := FileEdge{From: f.Path, To: imp.ModuleName}
			if resolved, ok := moduleToFile[imp.ModuleName]; ok {
				rp := resolved
				edge.ResolvedPath = &rp
			}
			g.Edges = append(g.Edges, edge)
		}
	}
	return g
}

// IncomingEdges returns edges whose To equals the module name of the file at
// path.
func (g *FileGraph) IncomingEdges(path string) []FileEdge {
	module, ok := g.moduleOfPath[path]
	if !ok {
		return nil
	}
	var out []FileEdge
	for _, e := range g.Edges {
		if e.To == module {
			out = append(out, e)
		}
	}
	return out
}

// OutgoingEdges returns edges whose From equals path.
func (g *FileGraph) OutgoingEdges(path string) []FileEdge {
	var out []FileEdge
	for _, e := range g.Edges {
		if e.From == path {
			out = append(out, e)
		}
	}
	return out
}

// resolvedOutgoing returns the resolved target paths reachable directly from
// path, skipping unresolved imports (treated as leaves per §4.2/§4.3).
func (g *FileGraph) resolvedOutgoing(path string) []string {
	var out []string
	for _, e := range g.OutgoingEdges(path) {
		if e.ResolvedPath != nil {
			out = append(out, *e.ResolvedPath)
		}
	}
	return out
}

// FindCycles runs DFS with a visited set and a recursion stack over every
// file, per §4.2. Each cycle is the slice of the current DFS path from the
// first occurrence of the re-encountered node through the end, with that
// node appended once more to close the cycle.
func (g *FileGraph) FindCycles() [][]string {
	visited := make(map[string]bool, len(g.Nodes))
	onStack := make(map[string]bool, len(g.Nodes))
	var path []string
	var cycles [][]string

	paths := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		paths[i] = n.Path
	}
	sort.Strings(paths)

	var visit func(p string)
	visit = func(p string) {
		visited[p] = true
		onStack[p] = true
		path = append(path, p)

		for _, next := range g.resolvedOutgoing(p) {
			if onStack[next] {
				idx := indexOf(path, next)
				cycle := append([]string(nil), path[idx:]...)
				cycle = append(cycle, next)
				cycles = append(cycles, cycle)
				continue
			}
			if !visited[next] {
				visit(next)
			}
		}

		path = path[:len(path)-1]
		onStack[p] = false
	}

	for _, p := range paths {
		if !visited[p] {
			visit(p)
		}
	}
	return cycles
}

func indexOf(path []string, target string) int {
	for i, p := range path {
		if p == target {
			return i
		}
	}
	return 0
}

// reverseEdges maps a resolved target path to the set of paths that import
// it, built once per query set the caller needs.
func (g *FileGraph) reverseEdges() map[string][]string {
	rev := make(map[string][]string, len(g.Nodes))
	for _, e := range g.Edges {
		if e.ResolvedPath == nil {
			continue
		}
		rev[*e.ResolvedPath] = append(rev[*e.ResolvedPath], e.From)
	}
	return rev
}

// BlastRadius returns the number of files that transitively depend on path,
// via reverse BFS over resolved edges.
func (g *FileGraph) BlastRadius(path string) int {
	rev := g.reverseEdges()
	visited := map[string]bool{path: true}
	queue := []string{path}
	count := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, dependent := range rev[cur] {
			if !visited[dependent] {
				visited[dependent] = true
				count++
				queue = append(queue, dependent)
			}
		}
	}
	return count
}

// ForwardDepth computes the memoized forward dependency depth of path, per
// the deep-chain rule of §4.3: unresolved imports are leaves, and a back-edge
// to a node already on the current recursion set contributes depth 0.
func (g *FileGraph) ForwardDepth(path string) int {
	memo := make(map[string]int)
	onStack := make(map[string]bool)
	return g.forwardDepth(path, memo, onStack)
}

func (g *FileGraph) forwardDepth(path string, memo map[string]int, onStack map[string]bool) int {
	if d, ok := memo[path]; ok {
		return d
	}
	if onStack[path] {
		return 0
	}
	onStack[path] = true
	defer func() { onStack[path] = false }()

	max := 0
	for _, next := range g.resolvedOutgoing(path) {
		d := 1 + g.forwardDepth(next, memo, onStack)
		if d > max {
			max = d
		}
	}
	memo[path] = max
	return max
}

// InDegree counts incoming edges for the file's module name.
func (g *FileGraph) InDegree(path string) int {
	return len(g.IncomingEdges(path))
}

// OutDegree counts outgoing edges from path.
func (g *FileGraph) OutDegree(path string) int {
	return len(g.OutgoingEdges(path))
}

// Instability is the Martin instability metric I = out/(in+out); 0 when
// in+out is 0.
func (g *FileGraph) Instability(path string) float64 {
	in, out := g.InDegree(path), g.OutDegree(path)
	if in+out == 0 {
		return 0
	}
	return float64(out) / float64(in+out)
}
