package graph

import "github.com/viant/archscan/ir"

// Graphs bundles the three graphs derived from one IR.
type Graphs struct {
	FileDependency *FileGraph
	Inheritance    *InheritanceGraph
	CallGraph      *CallGraph
}

// Build derives all three dependency graphs from r in one call.
func Build(r *ir.IR) *Graphs {
	return &Graphs{
		FileDependency: BuildFileGraph(r),
		Inheritance:    BuildInheritanceGraph(r),
		CallGraph:      BuildCallGraph(r),
	}
}
