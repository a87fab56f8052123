package export

import (
	"fmt"
	"strings"

	"github.com/viant/archscan/result"
)

// sanitizeMermaidID replaces every character in `[-./ ():]` with `_`, per
// §6; a result that sanitizes to the empty string becomes the literal
// "unknown".
func sanitizeMermaidID(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '-', '.', '/', ' ', '(', ')', ':':
			sb.WriteRune('_')
		default:
			sb.WriteRune(r)
		}
	}
	out := sb.String()
	if out == "" {
		return "unknown"
	}
	return out
}

// Mermaid renders res as three flowchart blocks, per §6: LR for the file
// and call graphs, BT for the inheritance graph.
func Mermaid(res *result.Result) string {
	var sb strings.Builder

	sb.WriteString("flowchart LR\n")
	for _, n := range res.Graphs.FileDependency.Nodes {
		sb.WriteString(fmt.Sprintf("  %s[%q]\n", sanitizeMermaidID(n.Path), n.ModuleName))
	}
	for _, e := range res.Graphs.FileDependency.Edges {
		to := e.To
		if e.ResolvedPath != nil {
			to = *e.ResolvedPath
		}
		sb.WriteString(fmt.Sprintf("  %s --> %s\n", sanitizeMermaidID(e.From), sanitizeMermaidID(to)))
	}
	sb.WriteString("\n")

	sb.WriteString("flowchart BT\n")
	for _, n := range res.Graphs.Inheritance.Nodes {
		sb.WriteString(fmt.Sprintf("  %s[%q]\n", sanitizeMermaidID(n.Name), n.Name))
	}
	for _, e := range res.Graphs.Inheritance.Edges {
		sb.WriteString(fmt.Sprintf("  %s --> %s\n", sanitizeMermaidID(e.From), sanitizeMermaidID(e.To)))
	}
	sb.WriteString("\n")

	sb.WriteString("flowchart LR\n")
	for _, n := range res.Graphs.CallGraph.Nodes {
		sb.WriteString(fmt.Sprintf("  %s[%q]\n", sanitizeMermaidID(n.Name), n.Name))
	}
	for _, e := range res.Graphs.CallGraph.Edges {
		caller := "_module_"
		if e.Caller != nil {
			caller = *e.Caller
		}
		sb.WriteString(fmt.Sprintf("  %s --> %s\n", sanitizeMermaidID(caller), sanitizeMermaidID(e.Callee)))
	}

	return sb.String()
}
