package sourcelang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/archscan/sourcelang"
)

func TestSourceParser_ParseFile(t *testing.T) {
	tests := []struct {
		name string
		src  string
		test func(t *testing.T, pf *sourcelang.ParsedFile)
	}{
		{
			name: "import and struct",
			src: `import Foundation

public struct Person {
    public func greet() -> String {
        return "hi"
    }
}`,
			test: func(t *testing.T, pf *sourcelang.ParsedFile) {
				assert.Len(t, pf.Imports, 1)
				assert.Equal(t, "Foundation", pf.Imports[0].ModuleName)
				assert.Len(t, pf.Types, 1)
				assert.Equal(t, "Person", pf.Types[0].Name)
				assert.Equal(t, "struct", pf.Types[0].Kind)
				assert.Equal(t, "public", pf.Types[0].Accessibility)
				assert.Len(t, pf.Types[0].Functions, 1)
				assert.Equal(t, "greet", pf.Types[0].Functions[0].Name)
			},
		},
		{
			name: "testable import",
			src:  `@testable import Core`,
			test: func(t *testing.T, pf *sourcelang.ParsedFile) {
				assert.Len(t, pf.Imports, 1)
				assert.True(t, pf.Imports[0].IsTestable)
				assert.Equal(t, "Core", pf.Imports[0].ModuleName)
			},
		},
		{
			name: "entry point attribute",
			src: `@main
struct App {
    static func main() {}
}`,
			test: func(t *testing.T, pf *sourcelang.ParsedFile) {
				assert.True(t, pf.HasEntryPointAttribute)
			},
		},
		{
			name: "inheritance clause",
			src:  `class Dog: Animal, Runnable {}`,
			test: func(t *testing.T, pf *sourcelang.ParsedFile) {
				assert.Equal(t, []string{"Animal", "Runnable"}, pf.Types[0].InheritedTypes)
			},
		},
		{
			name: "async throws function with call site",
			src: `func fetch() async throws -> Data {
    let result = repository.load()
    return result
}`,
			test: func(t *testing.T, pf *sourcelang.ParsedFile) {
				fn := pf.Functions[0]
				assert.True(t, fn.IsAsync)
				assert.True(t, fn.IsThrows)
				assert.Equal(t, "Data", *fn.ReturnType)
				assert.Len(t, fn.CallSites, 1)
				assert.Equal(t, "load", fn.CallSites[0].CalledName)
			},
		},
		{
			name: "generic parameters and parameter labels",
			src:  `func wrap<T>(value input: T) -> T { return input }`,
			test: func(t *testing.T, pf *sourcelang.ParsedFile) {
				fn := pf.Functions[0]
				assert.Equal(t, []string{"T"}, fn.GenericParameters)
				assert.Len(t, fn.Parameters, 1)
				assert.Equal(t, "value", *fn.Parameters[0].Label)
				assert.Equal(t, "input", fn.Parameters[0].Name)
				assert.Equal(t, "T", fn.Parameters[0].Type)
			},
		},
		{
			name: "nested function",
			src: `func outer() {
    func inner() {
        helper()
    }
}`,
			test: func(t *testing.T, pf *sourcelang.ParsedFile) {
				assert.Len(t, pf.Functions[0].Nested, 1)
				assert.Equal(t, "inner", pf.Functions[0].Nested[0].Name)
				assert.Len(t, pf.Functions[0].Nested[0].CallSites, 1)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := sourcelang.NewSourceParser()
			pf, err := p.ParseFile("Test.swift", []byte(tc.src))
			assert.NoError(t, err)
			tc.test(t, pf)
		})
	}
}
