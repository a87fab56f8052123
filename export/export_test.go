package export_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/archscan/export"
	"github.com/viant/archscan/graph"
	"github.com/viant/archscan/ir"
	"github.com/viant/archscan/result"
	"github.com/viant/archscan/sourcelang"
)

func buildResult(t *testing.T, files map[string]string) *result.Result {
	t.Helper()
	p := sourcelang.NewSourceParser()
	var parsed []*sourcelang.ParsedFile
	for path, src := range files {
		pf, err := p.ParseFile(path, []byte(src))
		assert.NoError(t, err)
		parsed = append(parsed, pf)
	}
	r := ir.Build(parsed)
	g := graph.Build(r)
	return result.Build(r, g, nil)
}

func TestJSON_TopLevelKeys(t *testing.T) {
	res := buildResult(t, map[string]string{"A.swift": "struct A {}"})

	data, err := export.JSON(res)
	assert.NoError(t, err)

	var doc map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"files", "types", "functions", "graphs", "signals", "summary"} {
		assert.Contains(t, doc, key)
	}

	graphs := doc["graphs"].(map[string]interface{})
	for _, key := range []string{"fileDependency", "inheritance", "callGraph"} {
		assert.Contains(t, graphs, key)
	}
}

func TestJSON_Deterministic(t *testing.T) {
	res := buildResult(t, map[string]string{"A.swift": "struct A {}", "B.swift": "import A\nstruct B: A {}"})

	data1, err := export.JSON(res)
	assert.NoError(t, err)
	data2, err := export.JSON(res)
	assert.NoError(t, err)

	assert.Equal(t, data1, data2)
}

func TestDOT_ContainsClusters(t *testing.T) {
	res := buildResult(t, map[string]string{"A.swift": "struct A {}"})
	dot := export.DOT(res)

	assert.True(t, strings.HasPrefix(dot, "digraph archscan {"))
	assert.Contains(t, dot, "cluster_files")
	assert.Contains(t, dot, "cluster_inheritance")
	assert.Contains(t, dot, "cluster_callgraph")
}

func TestMermaid_SanitizesIdentifiers(t *testing.T) {
	res := buildResult(t, map[string]string{"src/pkg/A.swift": "struct A {}"})
	mermaid := export.Mermaid(res)

	assert.Contains(t, mermaid, "src_pkg_A_swift")
	assert.NotContains(t, mermaid, "src/pkg/A.swift[")
}

func TestContentHash_StableAcrossCalls(t *testing.T) {
	res := buildResult(t, map[string]string{"A.swift": "struct A {}"})
	data, err := export.JSON(res)
	assert.NoError(t, err)

	h1, err := export.ContentHash(data)
	assert.NoError(t, err)
	h2, err := export.ContentHash(data)
	assert.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestContentHash_RejectsEmptyPayload(t *testing.T) {
	_, err := export.ContentHash(nil)
	assert.Error(t, err)
}
