// Package signal implements the catalog of 13 graph/IR analyses of §4.3,
// plus a module-name-collision diagnostic, each classified into an
// info/warning/error Finding.
package signal

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/viant/archscan/graph"
	"github.com/viant/archscan/ir"
)

var unusedFunctionIgnoreNames = map[string]bool{
	"main": true, "visit": true, "visitPost": true, "run": true,
	"hash": true, "encode": true, "decode": true,
}

var unusedFunctionIgnorePrefixes = []string{"init", "test", "setUp", "tearDown"}

// Engine runs the full signal catalog over a single IR and its graphs.
type Engine struct {
	Thresholds Thresholds
}

// NewEngine builds an Engine with the given thresholds.
func NewEngine(t Thresholds) *Engine {
	return &Engine{Thresholds: t}
}

// Run executes every catalog signal and returns findings sorted by severity,
// then name, then file (§4.3).
func (e *Engine) Run(r *ir.IR, g *graph.Graphs) []Finding {
	var out []Finding
	out = append(out, e.deadFile(r, g.FileDependency)...)
	out = append(out, e.circularDependency(g.FileDependency)...)
	out = append(out, e.blastRadius(g.FileDependency)...)
	out = append(out, e.centralFile(g.FileDependency)...)
	out = append(out, e.godFile(g.FileDependency)...)
	out = append(out, e.deepChain(g.FileDependency)...)
	out = append(out, e.deepHierarchy(g.Inheritance)...)
	out = append(out, e.wideProtocol(g.Inheritance)...)
	out = append(out, e.hotFunction(g.CallGraph)...)
	out = append(out, e.unusedFunction(g.CallGraph)...)
	out = append(out, e.highInstability(g.FileDependency)...)
	out = append(out, e.lowAbstractness(r, g.FileDependency)...)
	out = append(out, e.distanceFromMainSequence(r, g.FileDependency)...)
	out = append(out, e.moduleNameCollision(g.FileDependency)...)

	SortFindings(out)
	return out
}

// SortFindings orders findings by severity, then name, then file (§4.3),
// exported so callers that append additional findings (e.g. the CLI folding
// in parse-error findings) can re-sort with the same ordering.
func SortFindings(out []Finding) {
	sort.SliceStable(out, func(i, j int) bool {
		if severityRank[out[i].Severity] != severityRank[out[j].Severity] {
			return severityRank[out[i].Severity] < severityRank[out[j].Severity]
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return fileOf(out[i]) < fileOf(out[j])
	})
}

func fileOf(f Finding) string {
	if f.File == nil {
		return ""
	}
	return *f.File
}

func ptr(s string) *string { return &s }

func (e *Engine) deadFile(r *ir.IR, fg *graph.FileGraph) []Finding {
	var out []Finding
	for _, n := range fg.Nodes {
		imported := false
		for _, edge := range fg.IncomingEdges(n.Path) {
			if edge.From != n.Path {
				imported = true
				break
			}
		}
		if imported {
			continue
		}
		sev := SeverityInfo
		if len(fg.OutgoingEdges(n.Path)) > 0 {
			sev = SeverityWarning
		}
		out = append(out, Finding{
			Name: "dead-file", Severity: sev,
			Message: fmt.Sprintf("file %q is not imported by any other file", n.ModuleName),
			File:    ptr(n.Path),
		})
	}
	return out
}

func (e *Engine) circularDependency(fg *graph.FileGraph) []Finding {
	var out []Finding
	for _, cycle := range fg.FindCycles() {
		names := make([]string, len(cycle))
		for i, p := range cycle {
			names[i] = moduleNameOfPath(fg, p)
		}
		out = append(out, Finding{
			Name: "circular-dependency", Severity: SeverityError,
			Message: strings.Join(names, " → "),
			File:    ptr(cycle[0]),
		})
	}
	return out
}

func moduleNameOfPath(fg *graph.FileGraph, path string) string {
	for _, n := range fg.Nodes {
		if n.Path == path {
			return n.ModuleName
		}
	}
	return path
}

func (e *Engine) blastRadius(fg *graph.FileGraph) []Finding {
	var out []Finding
	for _, n := range fg.Nodes {
		count := fg.BlastRadius(n.Path)
		if count < e.Thresholds.BlastRadiusWarning {
			continue
		}
		sev := SeverityWarning
		if count >= e.Thresholds.BlastRadiusError {
			sev = SeverityError
		}
		out = append(out, Finding{
			Name: "blast-radius", Severity: sev,
			Message: fmt.Sprintf("%d files transitively depend on %q", count, n.ModuleName),
			File:    ptr(n.Path),
		})
	}
	return out
}

func (e *Engine) centralFile(fg *graph.FileGraph) []Finding {
	var out []Finding
	for _, n := range fg.Nodes {
		in := fg.InDegree(n.Path)
		if in < e.Thresholds.CentralFileWarning {
			continue
		}
		sev := SeverityWarning
		if in >= e.Thresholds.CentralFileError {
			sev = SeverityError
		}
		out = append(out, Finding{
			Name: "central-file", Severity: sev,
			Message: fmt.Sprintf("%q has in-degree %d", n.ModuleName, in),
			File:    ptr(n.Path),
		})
	}
	return out
}

func (e *Engine) godFile(fg *graph.FileGraph) []Finding {
	var out []Finding
	for _, n := range fg.Nodes {
		outDeg := fg.OutDegree(n.Path)
		if outDeg < e.Thresholds.GodFileWarning {
			continue
		}
		sev := SeverityWarning
		if outDeg >= e.Thresholds.GodFileError {
			sev = SeverityError
		}
		out = append(out, Finding{
			Name: "god-file", Severity: sev,
			Message: fmt.Sprintf("%q has out-degree %d", n.ModuleName, outDeg),
			File:    ptr(n.Path),
		})
	}
	return out
}

func (e *Engine) deepChain(fg *graph.FileGraph) []Finding {
	var out []Finding
	for _, n := range fg.Nodes {
		depth := fg.ForwardDepth(n.Path)
		if depth < e.Thresholds.DeepChainWarning {
			continue
		}
		sev := SeverityWarning
		if depth >= e.Thresholds.DeepChainError {
			sev = SeverityError
		}
		out = append(out, Finding{
			Name: "deep-chain", Severity: sev,
			Message: fmt.Sprintf("%q has forward dependency depth %d", n.ModuleName, depth),
			File:    ptr(n.Path),
		})
	}
	return out
}

func (e *Engine) deepHierarchy(ig *graph.InheritanceGraph) []Finding {
	var out []Finding
	for _, n := range ig.Nodes {
		depth := ig.Depth(n.Name)
		if depth < e.Thresholds.DeepHierarchyWarning {
			continue
		}
		sev := SeverityWarning
		if depth >= e.Thresholds.DeepHierarchyError {
			sev = SeverityError
		}
		out = append(out, Finding{
			Name: "deep-hierarchy", Severity: sev,
			Message: fmt.Sprintf("%s has inheritance depth %d", n.Name, depth),
			File:    ptr(n.FilePath),
		})
	}
	return out
}

func (e *Engine) wideProtocol(ig *graph.InheritanceGraph) []Finding {
	var out []Finding
	for _, n := range ig.Nodes {
		if n.Kind != ir.KindProtocol {
			continue
		}
		conformers := ig.Conformers(n.Name)
		if conformers < e.Thresholds.WideProtocolWarning {
			continue
		}
		sev := SeverityWarning
		if conformers >= e.Thresholds.WideProtocolError {
			sev = SeverityError
		}
		out = append(out, Finding{
			Name: "wide-protocol", Severity: sev,
			Message: fmt.Sprintf("protocol %s has %d conformers", n.Name, conformers),
			File:    ptr(n.FilePath),
		})
	}
	return out
}

func (e *Engine) hotFunction(cg *graph.CallGraph) []Finding {
	var out []Finding
	for _, hf := range cg.FindHotFunctions(e.Thresholds.HotFunctionWarning) {
		sev := SeverityWarning
		if hf.Count >= e.Thresholds.HotFunctionError {
			sev = SeverityError
		}
		out = append(out, Finding{
			Name: "hot-function", Severity: sev,
			Message: fmt.Sprintf("%s is called %d times", hf.Name, hf.Count),
			File:    filePathOfFunction(cg, hf.Name),
		})
	}
	return out
}

func filePathOfFunction(cg *graph.CallGraph, name string) *string {
	for _, n := range cg.Nodes {
		if n.Name == name {
			return ptr(n.FilePath)
		}
	}
	return nil
}

func isIgnoredUnusedFunction(name string) bool {
	if unusedFunctionIgnoreNames[name] {
		return true
	}
	for _, prefix := range unusedFunctionIgnorePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (e *Engine) unusedFunction(cg *graph.CallGraph) []Finding {
	var out []Finding
	for _, n := range cg.FindUnusedFunctions() {
		if isIgnoredUnusedFunction(n.Name) {
			continue
		}
		out = append(out, Finding{
			Name: "unused-function", Severity: SeverityInfo,
			Message: fmt.Sprintf("%s is never called", n.Name),
			File:    ptr(n.FilePath),
		})
	}
	return out
}

func (e *Engine) highInstability(fg *graph.FileGraph) []Finding {
	var out []Finding
	for _, n := range fg.Nodes {
		in, outDeg := fg.InDegree(n.Path), fg.OutDegree(n.Path)
		if in+outDeg < e.Thresholds.HighInstabilityMinDegree {
			continue
		}
		i := fg.Instability(n.Path)
		if i < e.Thresholds.HighInstability {
			continue
		}
		sev := SeverityWarning
		if n.IsEntryPoint {
			sev = SeverityInfo
		}
		out = append(out, Finding{
			Name: "high-instability", Severity: sev,
			Message: fmt.Sprintf("%q has instability %.2f", n.ModuleName, i),
			File:    ptr(n.Path),
		})
	}
	return out
}

func abstractnessOfFile(r *ir.IR, path string) (abstractness float64, typeCount int) {
	types := r.TypesInFile(path)
	if len(types) == 0 {
		return 0, 0
	}
	protocols := 0
	for _, t := range types {
		if t.Kind == ir.KindProtocol {
			protocols++
		}
	}
	return float64(protocols) / float64(len(types)), len(types)
}

func (e *Engine) lowAbstractness(r *ir.IR, fg *graph.FileGraph) []Finding {
	var out []Finding
	for _, n := range fg.Nodes {
		a, typeCount := abstractnessOfFile(r, n.Path)
		if typeCount == 0 || a != 0 {
			continue
		}
		if fg.InDegree(n.Path) < e.Thresholds.LowAbstractnessMinInDegree {
			continue
		}
		out = append(out, Finding{
			Name: "low-abstractness", Severity: SeverityInfo,
			Message: fmt.Sprintf("%q has zero abstractness with in-degree %d", n.ModuleName, fg.InDegree(n.Path)),
			File:    ptr(n.Path),
		})
	}
	return out
}

func (e *Engine) distanceFromMainSequence(r *ir.IR, fg *graph.FileGraph) []Finding {
	var out []Finding
	for _, n := range fg.Nodes {
		a, typeCount := abstractnessOfFile(r, n.Path)
		if typeCount == 0 {
			continue
		}
		i := fg.Instability(n.Path)
		sign := a + i - 1
		d := math.Abs(sign)
		if d < e.Thresholds.DistanceFromMainSequence {
			continue
		}
		sev := SeverityInfo
		if sign < 0 {
			sev = SeverityWarning // zone of pain
		}
		out = append(out, Finding{
			Name: "distance-from-main-sequence", Severity: sev,
			Message: fmt.Sprintf("%q has distance %.2f from the main sequence (A=%.2f, I=%.2f)", n.ModuleName, d, a, i),
			File:    ptr(n.Path),
		})
	}
	return out
}

// moduleNameCollision is a supplemented diagnostic (SPEC_FULL.md): when two
// or more files share a base name, the file graph's "last wins" resolution
// silently drops the earlier claimant. This makes that loss observable.
func (e *Engine) moduleNameCollision(fg *graph.FileGraph) []Finding {
	var out []Finding
	for _, module := range fg.CollisionModules {
		out = append(out, Finding{
			Name: "module-name-collision", Severity: SeverityInfo,
			Message: fmt.Sprintf("module name %q is claimed by more than one file; the last file sorted by path wins", module),
		})
	}
	return out
}
