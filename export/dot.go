package export

import (
	"fmt"
	"strings"

	"github.com/viant/archscan/result"
)

// DOT renders res as one Graphviz digraph with three subgraph clusters, per
// §6: edge solidity encodes isInternal (solid = internal, dashed = external).
func DOT(res *result.Result) string {
	var sb strings.Builder
	sb.WriteString("digraph archscan {\n")

	sb.WriteString("  subgraph cluster_files {\n    label=\"files\";\n")
	for _, n := range res.Graphs.FileDependency.Nodes {
		sb.WriteString(fmt.Sprintf("    %q;\n", n.Path))
	}
	for _, e := range res.Graphs.FileDependency.Edges {
		to, style := e.To, "dashed"
		if e.ResolvedPath != nil {
			to, style = *e.ResolvedPath, "solid"
		}
		sb.WriteString(fmt.Sprintf("    %q -> %q [style=%s];\n", e.From, to, style))
	}
	sb.WriteString("  }\n")

	sb.WriteString("  subgraph cluster_inheritance {\n    label=\"inheritance\";\n")
	for _, n := range res.Graphs.Inheritance.Nodes {
		sb.WriteString(fmt.Sprintf("    %q;\n", n.Name))
	}
	for _, e := range res.Graphs.Inheritance.Edges {
		style := "dashed"
		if e.IsInternal {
			style = "solid"
		}
		sb.WriteString(fmt.Sprintf("    %q -> %q [style=%s];\n", e.From, e.To, style))
	}
	sb.WriteString("  }\n")

	sb.WriteString("  subgraph cluster_callgraph {\n    label=\"calls\";\n")
	for _, n := range res.Graphs.CallGraph.Nodes {
		sb.WriteString(fmt.Sprintf("    %q;\n", n.Name))
	}
	for _, e := range res.Graphs.CallGraph.Edges {
		caller := "_module_"
		if e.Caller != nil {
			caller = *e.Caller
		}
		style := "dashed"
		if e.IsInternal {
			style = "solid"
		}
		sb.WriteString(fmt.Sprintf("    %q -> %q [style=%s];\n", caller, e.Callee, style))
	}
	sb.WriteString("  }\n")

	sb.WriteString("}\n")
	return sb.String()
}
