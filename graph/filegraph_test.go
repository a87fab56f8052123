package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/archscan/graph"
	"github.com/viant/archscan/ir"
	"github.com/viant/archscan/sourcelang"
)

func buildIR(t *testing.T, files map[string]string) *ir.IR {
	t.Helper()
	p := sourcelang.NewSourceParser()
	var parsed []*sourcelang.ParsedFile
	for path, src := range files {
		pf, err := p.ParseFile(path, []byte(src))
		assert.NoError(t, err)
		parsed = append(parsed, pf)
	}
	return ir.Build(parsed)
}

func TestFindCycles_TwoFileCycle(t *testing.T) {
	r := buildIR(t, map[string]string{
		"A.swift": "import B\nstruct A {}",
		"B.swift": "import A\nstruct B {}",
	})
	fg := graph.BuildFileGraph(r)

	cycles := fg.FindCycles()
	assert.Len(t, cycles, 1)
	assert.Equal(t, cycles[0][0], cycles[0][len(cycles[0])-1])
}

func TestFindCycles_NoImports(t *testing.T) {
	r := buildIR(t, map[string]string{"A.swift": "struct A {}"})
	fg := graph.BuildFileGraph(r)

	assert.Empty(t, fg.FindCycles())
	assert.Empty(t, fg.Edges)
}

func TestGodFile_OutDegreeThreshold(t *testing.T) {
	files := map[string]string{}
	var imports string
	for _, name := range []string{"M1", "M2", "M3", "M4", "M5", "M6", "M7", "M8", "M9", "M10"} {
		imports += "import " + name + "\n"
		files[name+".swift"] = "struct " + name + " {}"
	}
	files["G.swift"] = imports + "struct G {}"

	r := buildIR(t, files)
	fg := graph.BuildFileGraph(r)

	assert.Equal(t, 10, fg.OutDegree("G.swift"))
}

func TestModuleCollision_LastWins(t *testing.T) {
	r := buildIR(t, map[string]string{
		"a/Dup.swift": "struct First {}",
		"b/Dup.swift": "struct Second {}",
	})
	fg := graph.BuildFileGraph(r)

	assert.Equal(t, []string{"Dup"}, fg.CollisionModules)
}

func TestBlastRadius_TransitiveReach(t *testing.T) {
	r := buildIR(t, map[string]string{
		"A.swift": "struct A {}",
		"B.swift": "import A\nstruct B {}",
		"C.swift": "import B\nstruct C {}",
	})
	fg := graph.BuildFileGraph(r)

	assert.Equal(t, 2, fg.BlastRadius("A.swift"))
	assert.Equal(t, 1, fg.BlastRadius("B.swift"))
	assert.Equal(t, 0, fg.BlastRadius("C.swift"))
}
