// Package sourcelang is the parser collaborator of §6: it lexes a single
// target-language source file and yields the raw per-file facts the IR
// Builder lowers into the IR. Parsing itself — and therefore this whole
// package — is explicitly out of scope for the analytical core; it exists
// so the pipeline can run end to end against real files.
package sourcelang

// RawImport is one import clause as read from source.
type RawImport struct {
	ModuleName string
	IsTestable bool
	Line       int
}

// RawParameter is a function parameter as read from source.
type RawParameter struct {
	Label *string
	Name  string
	Type  string
}

// RawCallSite is one call expression found inside a function body.
type RawCallSite struct {
	CalledName string
	Line       int
}

// RawFunction is a function or method declaration, including any call
// sites found directly in its body and any functions nested within it.
type RawFunction struct {
	Name              string
	Parameters        []RawParameter
	ReturnType        *string
	Accessibility     string
	IsStatic          bool
	IsAsync           bool
	IsThrows          bool
	IsMutating        bool
	Line              int
	EndLine           int
	GenericParameters []string
	CallSites         []RawCallSite
	Nested            []*RawFunction
}

// RawType is a type declaration, including methods and nested types.
type RawType struct {
	Name              string
	Kind              string // struct | class | enum | protocol | actor
	InheritedTypes    []string
	Accessibility     string
	Line              int
	EndLine           int
	Attributes        []string
	GenericParameters []string
	Functions         []*RawFunction
	Nested            []*RawType
}

// ParsedFile is the full set of raw facts extracted from one source file,
// the exact shape the parser collaborator hands to the IR Builder.
type ParsedFile struct {
	Path                   string
	Imports                []RawImport
	Types                  []*RawType
	Functions              []*RawFunction
	HasEntryPointAttribute bool
}

// Parser lexes a single file into its raw facts.
type Parser interface {
	ParseFile(path string, src []byte) (*ParsedFile, error)
}
