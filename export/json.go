// Package export serializes a result.Result into the three external formats
// of §6: JSON, Graphviz DOT and Mermaid flowcharts. None of this is part of
// the analytical core — it is the out-of-scope exporter collaborator,
// implemented here so the pipeline is runnable end to end.
package export

import (
	"encoding/json"

	"github.com/viant/archscan/graph"
	"github.com/viant/archscan/ir"
	"github.com/viant/archscan/result"
	"github.com/viant/archscan/signal"
)

// JSON renders res as the top-level object described in §6: keys `files`,
// `types`, `functions`, `graphs.{fileDependency,inheritance,callGraph}`,
// `signals`, `summary`. Using maps rather than structs for every level lets
// encoding/json's alphabetical map-key ordering do the "keys sorted" work
// for free, at every nesting depth.
func JSON(res *result.Result) ([]byte, error) {
	doc := map[string]interface{}{
		"files":     filesJSON(res.IR),
		"types":     typesJSON(res.IR),
		"functions": functionsJSON(res.IR),
		"graphs": map[string]interface{}{
			"fileDependency": fileGraphJSON(res.Graphs.FileDependency),
			"inheritance":    inheritanceGraphJSON(res.Graphs.Inheritance),
			"callGraph":      callGraphJSON(res.Graphs.CallGraph),
		},
		"signals": signalsJSON(res.Signals),
		"summary": summaryJSON(res.Summary),
	}
	return json.MarshalIndent(doc, "", "  ")
}

func filesJSON(r *ir.IR) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(r.Files))
	for _, f := range r.Files {
		imports := make([]map[string]interface{}, 0, len(f.Imports))
		for _, imp := range f.Imports {
			imports = append(imports, map[string]interface{}{
				"moduleName": imp.ModuleName,
				"isTestable": imp.IsTestable,
				"line":       imp.Line,
			})
		}
		out = append(out, map[string]interface{}{
			"path":         f.Path,
			"moduleName":   f.ModuleName,
			"imports":      imports,
			"isEntryPoint": f.IsEntryPoint,
		})
	}
	return out
}

func typesJSON(r *ir.IR) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(r.TypeDeclarations))
	for _, t := range r.TypeDeclarations {
		out = append(out, map[string]interface{}{
			"id":                t.ID,
			"name":              t.Name,
			"kind":              string(t.Kind),
			"filePath":          t.FilePath,
			"inheritedTypes":    t.InheritedTypes,
			"accessibility":     string(t.Accessibility),
			"line":              t.Line,
			"endLine":           t.EndLine,
			"attributes":        t.Attributes,
			"genericParameters": t.GenericParameters,
		})
	}
	return out
}

func functionsJSON(r *ir.IR) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(r.FunctionDeclarations))
	for _, f := range r.FunctionDeclarations {
		params := make([]map[string]interface{}, 0, len(f.Parameters))
		for _, p := range f.Parameters {
			params = append(params, map[string]interface{}{
				"label": p.Label,
				"name":  p.Name,
				"type":  p.Type,
			})
		}
		out = append(out, map[string]interface{}{
			"id":             f.ID,
			"name":           f.Name,
			"signature":      f.Signature,
			"filePath":       f.FilePath,
			"parameters":     params,
			"returnType":     f.ReturnType,
			"accessibility":  string(f.Accessibility),
			"isStatic":       f.IsStatic,
			"isAsync":        f.IsAsync,
			"isThrows":       f.IsThrows,
			"isMutating":     f.IsMutating,
			"line":           f.Line,
			"endLine":        f.EndLine,
			"containingType": f.ContainingType,
		})
	}
	return out
}

func fileGraphJSON(g *graph.FileGraph) map[string]interface{} {
	nodes := make([]map[string]interface{}, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes = append(nodes, map[string]interface{}{
			"path":         n.Path,
			"moduleName":   n.ModuleName,
			"isEntryPoint": n.IsEntryPoint,
		})
	}
	edges := make([]map[string]interface{}, 0, len(g.Edges))
	for _, e := range g.Edges {
		edges = append(edges, map[string]interface{}{
			"from":         e.From,
			"to":           e.To,
			"resolvedPath": e.ResolvedPath,
		})
	}
	return map[string]interface{}{"nodes": nodes, "edges": edges}
}

func inheritanceGraphJSON(g *graph.InheritanceGraph) map[string]interface{} {
	nodes := make([]map[string]interface{}, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes = append(nodes, map[string]interface{}{
			"name":     n.Name,
			"kind":     string(n.Kind),
			"filePath": n.FilePath,
			"line":     n.Line,
		})
	}
	edges := make([]map[string]interface{}, 0, len(g.Edges))
	for _, e := range g.Edges {
		edges = append(edges, map[string]interface{}{
			"from":       e.From,
			"to":         e.To,
			"isInternal": e.IsInternal,
		})
	}
	return map[string]interface{}{"nodes": nodes, "edges": edges}
}

func callGraphJSON(g *graph.CallGraph) map[string]interface{} {
	nodes := make([]map[string]interface{}, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes = append(nodes, map[string]interface{}{
			"name":           n.Name,
			"filePath":       n.FilePath,
			"containingType": n.ContainingType,
		})
	}
	edges := make([]map[string]interface{}, 0, len(g.Edges))
	for _, e := range g.Edges {
		edges = append(edges, map[string]interface{}{
			"caller":     e.Caller,
			"callee":     e.Callee,
			"isInternal": e.IsInternal,
		})
	}
	return map[string]interface{}{"nodes": nodes, "edges": edges}
}

func signalsJSON(findings []signal.Finding) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(findings))
	for _, f := range findings {
		out = append(out, map[string]interface{}{
			"name":     f.Name,
			"severity": string(f.Severity),
			"message":  f.Message,
			"file":     f.File,
		})
	}
	return out
}

func summaryJSON(s result.Summary) map[string]interface{} {
	return map[string]interface{}{
		"fileCount":     s.FileCount,
		"typeCount":     s.TypeCount,
		"functionCount": s.FunctionCount,
		"callSiteCount": s.CallSiteCount,
		"infoCount":     s.InfoCount,
		"warningCount":  s.WarningCount,
		"errorCount":    s.ErrorCount,
	}
}
