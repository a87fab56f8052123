package ir

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/archscan/sourcelang"
)

const entryPointAttribute = sourcelang.EntryPointAttribute

// Build lowers a set of parsed files into one immutable IR (§4.1). Each
// file's declarations and call sites are visited depth-first; containingType
// and containingFunction are threaded through the recursion the way §4.1
// describes a per-file push/pop stack, because the parser collaborator
// already hands back a nested declaration tree rather than a flat stream.
func Build(files []*sourcelang.ParsedFile) *IR {
	sorted := append([]*sourcelang.ParsedFile(nil), files...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	out := &IR{}
	for _, pf := range sorted {
		fb := &fileBuilder{filePath: pf.Path}
		fb.walkTypes(pf.Types, nil)
		fb.walkFunctions(pf.Functions, nil)

		out.TypeDeclarations = append(out.TypeDeclarations, fb.types...)
		out.FunctionDeclarations = append(out.FunctionDeclarations, fb.functions...)
		out.CallSites = append(out.CallSites, fb.calls...)

		out.Files = append(out.Files, File{
			Path:         pf.Path,
			ModuleName:   moduleNameOf(pf.Path),
			Imports:      convertImports(pf.Imports),
			IsEntryPoint: fb.hasEntryPoint(),
		})
	}
	return out
}

// moduleNameOf is the base file name with its extension removed — the
// heuristic contract of §2/§9: "module name = base file name".
func moduleNameOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func convertImports(raw []sourcelang.RawImport) []ImportInfo {
	out := make([]ImportInfo, 0, len(raw))
	for _, r := range raw {
		out = append(out, ImportInfo{ModuleName: r.ModuleName, IsTestable: r.IsTestable, Line: r.Line})
	}
	return out
}

// fileBuilder accumulates the flattened declarations for a single file,
// assigning each a deterministic, per-kind ordinal as it is visited.
type fileBuilder struct {
	filePath string

	typeOrdinal int
	funcOrdinal int
	callOrdinal int

	types     []TypeDeclaration
	functions []FunctionDeclaration
	calls     []CallSite
}

func (b *fileBuilder) hasEntryPoint() bool {
	for _, t := range b.types {
		for _, a := range t.Attributes {
			if a == entryPointAttribute {
				return true
			}
		}
	}
	return false
}

func (b *fileBuilder) nextID(name string, ordinal int) string {
	return fmt.Sprintf("%s:%s:%d", b.filePath, name, ordinal)
}

func (b *fileBuilder) walkTypes(raw []*sourcelang.RawType, _ *string) {
	for _, rt := range raw {
		id := b.nextID(rt.Name, b.typeOrdinal)
		b.typeOrdinal++

		b.types = append(b.types, TypeDeclaration{
			ID:                id,
			Name:              rt.Name,
			Kind:              TypeKind(rt.Kind),
			FilePath:          b.filePath,
			InheritedTypes:    append([]string(nil), rt.InheritedTypes...),
			Accessibility:     Accessibility(rt.Accessibility),
			Line:              rt.Line,
			EndLine:           rt.EndLine,
			Attributes:        append([]string(nil), rt.Attributes...),
			GenericParameters: append([]string(nil), rt.GenericParameters...),
		})

		name := rt.Name
		b.walkFunctions(rt.Functions, &name)
		b.walkTypes(rt.Nested, nil)
	}
}

func (b *fileBuilder) walkFunctions(raw []*sourcelang.RawFunction, containingType *string) {
	for _, rf := range raw {
		id := b.nextID(rf.Name, b.funcOrdinal)
		b.funcOrdinal++

		b.functions = append(b.functions, FunctionDeclaration{
			ID:             id,
			Name:           rf.Name,
			Signature:      buildSignature(rf),
			FilePath:       b.filePath,
			Parameters:     convertParameters(rf.Parameters),
			ReturnType:     rf.ReturnType,
			Accessibility:  Accessibility(rf.Accessibility),
			IsStatic:       rf.IsStatic,
			IsAsync:        rf.IsAsync,
			IsThrows:       rf.IsThrows,
			IsMutating:     rf.IsMutating,
			Line:           rf.Line,
			EndLine:        rf.EndLine,
			ContainingType: containingType,
		})

		name := rf.Name
		b.walkCalls(rf.CallSites, &name)
		b.walkFunctions(rf.Nested, containingType)
	}
}

func (b *fileBuilder) walkCalls(raw []sourcelang.RawCallSite, containingFunction *string) {
	for _, rc := range raw {
		id := b.nextID(rc.CalledName, b.callOrdinal)
		b.callOrdinal++

		b.calls = append(b.calls, CallSite{
			ID:                 id,
			CalledName:         rc.CalledName,
			FilePath:           b.filePath,
			Line:               rc.Line,
			ContainingFunction: containingFunction,
		})
	}
}

func convertParameters(raw []sourcelang.RawParameter) []Parameter {
	out := make([]Parameter, 0, len(raw))
	for _, r := range raw {
		out = append(out, Parameter{Label: r.Label, Name: r.Name, Type: r.Type})
	}
	return out
}

// buildSignature canonicalizes a function's textual signature per §3:
// "func <name><generics><params> [async] [throws] [-> ret]".
func buildSignature(rf *sourcelang.RawFunction) string {
	var sb strings.Builder
	sb.WriteString("func ")
	sb.WriteString(rf.Name)

	if len(rf.GenericParameters) > 0 {
		sb.WriteString("<")
		sb.WriteString(strings.Join(rf.GenericParameters, ", "))
		sb.WriteString(">")
	}

	sb.WriteString("(")
	for i, p := range rf.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		if p.Label != nil && *p.Label != p.Name {
			sb.WriteString(*p.Label)
			sb.WriteString(" ")
		}
		sb.WriteString(p.Name)
		sb.WriteString(": ")
		sb.WriteString(p.Type)
	}
	sb.WriteString(")")

	if rf.IsAsync {
		sb.WriteString(" async")
	}
	if rf.IsThrows {
		sb.WriteString(" throws")
	}
	if rf.ReturnType != nil && *rf.ReturnType != "" {
		sb.WriteString(" -> ")
		sb.WriteString(*rf.ReturnType)
	}
	return sb.String()
}
