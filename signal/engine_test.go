package signal_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/archscan/graph"
	"github.com/viant/archscan/ir"
	"github.com/viant/archscan/signal"
	"github.com/viant/archscan/sourcelang"
)

func buildAll(t *testing.T, files map[string]string) (*ir.IR, *graph.Graphs) {
	t.Helper()
	p := sourcelang.NewSourceParser()
	var parsed []*sourcelang.ParsedFile
	for path, src := range files {
		pf, err := p.ParseFile(path, []byte(src))
		assert.NoError(t, err)
		parsed = append(parsed, pf)
	}
	r := ir.Build(parsed)
	return r, graph.Build(r)
}

func findByName(findings []signal.Finding, name string) []signal.Finding {
	var out []signal.Finding
	for _, f := range findings {
		if f.Name == name {
			out = append(out, f)
		}
	}
	return out
}

// S1 — single file, no imports, no declarations.
func TestSignal_S1_DeadFileInfo(t *testing.T) {
	r, g := buildAll(t, map[string]string{"A.swift": ""})
	findings := signal.NewEngine(signal.DefaultThresholds()).Run(r, g)

	dead := findByName(findings, "dead-file")
	assert.Len(t, dead, 1)
	assert.Equal(t, signal.SeverityInfo, dead[0].Severity)
}

// S2 — two-file cycle.
func TestSignal_S2_CircularDependency(t *testing.T) {
	r, g := buildAll(t, map[string]string{
		"A.swift": "import B\nstruct A {}",
		"B.swift": "import A\nstruct B {}",
	})
	findings := signal.NewEngine(signal.DefaultThresholds()).Run(r, g)

	cycles := findByName(findings, "circular-dependency")
	assert.Len(t, cycles, 1)
	assert.Equal(t, signal.SeverityError, cycles[0].Severity)
}

// S3 — deep inheritance chain.
func TestSignal_S3_DeepHierarchy(t *testing.T) {
	r, g := buildAll(t, map[string]string{
		"Types.swift": `protocol P {}
class C1: P {}
class C2: C1 {}
class C3: C2 {}
class C4: C3 {}`,
	})
	findings := signal.NewEngine(signal.DefaultThresholds()).Run(r, g)

	hierarchy := findByName(findings, "deep-hierarchy")
	bySeverity := map[string]signal.Severity{}
	for _, f := range hierarchy {
		bySeverity[f.Message] = f.Severity
	}
	for _, f := range hierarchy {
		assert.NotEqual(t, signal.SeverityError, f.Severity)
	}
	assert.Len(t, hierarchy, 2) // C3 (depth 3) and C4 (depth 4)
}

// S4 — hot function, warning then error.
func TestSignal_S4_HotFunction(t *testing.T) {
	mk := func(n int) map[string]string {
		var body string
		for i := 0; i < n; i++ {
			body += "f()\n"
		}
		return map[string]string{"A.swift": fmt.Sprintf("func caller() {\n%s}\nfunc f() {}", body)}
	}

	r7, g7 := buildAll(t, mk(7))
	findings7 := signal.NewEngine(signal.DefaultThresholds()).Run(r7, g7)
	hot7 := findByName(findings7, "hot-function")
	assert.Len(t, hot7, 1)
	assert.Equal(t, signal.SeverityWarning, hot7[0].Severity)

	r11, g11 := buildAll(t, mk(11))
	findings11 := signal.NewEngine(signal.DefaultThresholds()).Run(r11, g11)
	hot11 := findByName(findings11, "hot-function")
	assert.Len(t, hot11, 1)
	assert.Equal(t, signal.SeverityError, hot11[0].Severity)
}

// S5 — god file, warning then error.
func TestSignal_S5_GodFile(t *testing.T) {
	mk := func(n int) map[string]string {
		files := map[string]string{}
		var imports string
		for i := 0; i < n; i++ {
			name := fmt.Sprintf("M%d", i)
			imports += "import " + name + "\n"
			files[name+".swift"] = "struct " + name + " {}"
		}
		files["G.swift"] = imports + "struct G {}"
		return files
	}

	r10, g10 := buildAll(t, mk(10))
	findings10 := signal.NewEngine(signal.DefaultThresholds()).Run(r10, g10)
	god10 := findByName(findings10, "god-file")
	assert.NotEmpty(t, god10)
	for _, f := range god10 {
		if f.File != nil && *f.File == "G.swift" {
			assert.Equal(t, signal.SeverityWarning, f.Severity)
		}
	}

	r16, g16 := buildAll(t, mk(16))
	findings16 := signal.NewEngine(signal.DefaultThresholds()).Run(r16, g16)
	god16 := findByName(findings16, "god-file")
	found := false
	for _, f := range god16 {
		if f.File != nil && *f.File == "G.swift" {
			assert.Equal(t, signal.SeverityError, f.Severity)
			found = true
		}
	}
	assert.True(t, found)
}

// S6 — unused function, then ignored by name prefix.
func TestSignal_S6_UnusedFunction(t *testing.T) {
	r, g := buildAll(t, map[string]string{"A.swift": "func helper() {}"})
	findings := signal.NewEngine(signal.DefaultThresholds()).Run(r, g)
	unused := findByName(findings, "unused-function")
	assert.Len(t, unused, 1)
	assert.Equal(t, signal.SeverityInfo, unused[0].Severity)

	r2, g2 := buildAll(t, map[string]string{"A.swift": "func test_helper() {}"})
	findings2 := signal.NewEngine(signal.DefaultThresholds()).Run(r2, g2)
	assert.Empty(t, findByName(findings2, "unused-function"))
}

func TestSignal_FindingsAreSorted(t *testing.T) {
	r, g := buildAll(t, map[string]string{
		"A.swift": "import B\nstruct A {}",
		"B.swift": "import A\nstruct B {}",
	})
	findings := signal.NewEngine(signal.DefaultThresholds()).Run(r, g)

	for i := 1; i < len(findings); i++ {
		prevRank := severityOrder(findings[i-1].Severity)
		curRank := severityOrder(findings[i].Severity)
		assert.True(t, prevRank <= curRank)
	}
}

func severityOrder(s signal.Severity) int {
	switch s {
	case signal.SeverityError:
		return 0
	case signal.SeverityWarning:
		return 1
	default:
		return 2
	}
}
