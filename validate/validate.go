// Package validate implements the Validator of §4.5: an optional referential
// integrity pass over the IR, run only on request and kept distinct from the
// Signal Engine's findings.
package validate

import (
	"fmt"

	"github.com/viant/archscan/ir"
	"github.com/viant/archscan/signal"
)

// Finding is one referential-integrity problem found in the IR.
type Finding struct {
	Severity signal.Severity
	Message  string
}

// Run checks:
//   - every TypeDeclaration/FunctionDeclaration.filePath appears in the file list
//   - every call site's containingFunction resolves to a declared function in
//     the same file (warning only — top-level calls are legitimate)
//   - no duplicate IDs across the three ID-bearing record kinds (types,
//     functions, call sites)
func Run(r *ir.IR) []Finding {
	var out []Finding

	files := make(map[string]bool, len(r.Files))
	for _, f := range r.Files {
		files[f.Path] = true
	}

	for _, t := range r.TypeDeclarations {
		if !files[t.FilePath] {
			out = append(out, Finding{
				Severity: signal.SeverityError,
				Message:  fmt.Sprintf("type %s references unknown file %q", t.Name, t.FilePath),
			})
		}
	}
	for _, f := range r.FunctionDeclarations {
		if !files[f.FilePath] {
			out = append(out, Finding{
				Severity: signal.SeverityError,
				Message:  fmt.Sprintf("function %s references unknown file %q", f.Name, f.FilePath),
			})
		}
	}

	functionsByFile := make(map[string]map[string]bool, len(r.Files))
	for _, f := range r.FunctionDeclarations {
		if functionsByFile[f.FilePath] == nil {
			functionsByFile[f.FilePath] = make(map[string]bool)
		}
		functionsByFile[f.FilePath][f.Name] = true
	}

	for _, cs := range r.CallSites {
		if cs.ContainingFunction == nil {
			continue
		}
		if !functionsByFile[cs.FilePath][*cs.ContainingFunction] {
			out = append(out, Finding{
				Severity: signal.SeverityWarning,
				Message:  fmt.Sprintf("call site %s in %q references unknown containing function %q", cs.CalledName, cs.FilePath, *cs.ContainingFunction),
			})
		}
	}

	seen := make(map[string]bool)
	addID := func(id string) {
		if seen[id] {
			out = append(out, Finding{
				Severity: signal.SeverityError,
				Message:  fmt.Sprintf("duplicate ID %q", id),
			})
		}
		seen[id] = true
	}
	for _, t := range r.TypeDeclarations {
		addID(t.ID)
	}
	for _, f := range r.FunctionDeclarations {
		addID(f.ID)
	}
	for _, cs := range r.CallSites {
		addID(cs.ID)
	}

	return out
}
