// Package result implements the Result Aggregator of §4.4: a single handoff
// record bundling the IR, the three dependency graphs, the signal findings
// and cached counts, for out-of-core exporters to consume.
package result

import (
	"github.com/viant/archscan/graph"
	"github.com/viant/archscan/ir"
	"github.com/viant/archscan/signal"
)

// Summary holds the cached counts of §4.4.
type Summary struct {
	FileCount     int
	TypeCount     int
	FunctionCount int
	CallSiteCount int

	InfoCount    int
	WarningCount int
	ErrorCount   int
}

// Result is the single handoff point to downstream exporters.
type Result struct {
	IR      *ir.IR
	Graphs  *graph.Graphs
	Signals []signal.Finding
	Summary Summary
}

// Build packages r, g and findings into one Result, computing the cached
// counts of §4.4.
func Build(r *ir.IR, g *graph.Graphs, findings []signal.Finding) *Result {
	summary := Summary{
		FileCount:     len(r.Files),
		TypeCount:     len(r.TypeDeclarations),
		FunctionCount: len(r.FunctionDeclarations),
		CallSiteCount: len(r.CallSites),
	}
	for _, f := range findings {
		switch f.Severity {
		case signal.SeverityInfo:
			summary.InfoCount++
		case signal.SeverityWarning:
			summary.WarningCount++
		case signal.SeverityError:
			summary.ErrorCount++
		}
	}

	return &Result{IR: r, Graphs: g, Signals: findings, Summary: summary}
}
