package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/archscan/graph"
	"github.com/viant/archscan/ir"
	"github.com/viant/archscan/result"
)

func TestLoadThresholds_DefaultsWithNoPath(t *testing.T) {
	th, err := loadThresholds("")
	assert.NoError(t, err)
	assert.Equal(t, 5, th.BlastRadiusWarning)
}

func TestLoadThresholds_OverridesFromYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "thresholds.yaml")
	assert.NoError(t, os.WriteFile(cfgPath, []byte("blastRadiusWarning: 2\nblastRadiusError: 4\n"), 0o644))

	th, err := loadThresholds(cfgPath)
	assert.NoError(t, err)
	assert.Equal(t, 2, th.BlastRadiusWarning)
	assert.Equal(t, 4, th.BlastRadiusError)
}

func TestLoadThresholds_MissingFileErrors(t *testing.T) {
	_, err := loadThresholds(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteExport_EmptyFormatIsNoop(t *testing.T) {
	res := result.Build(&ir.IR{}, graph.Build(&ir.IR{}), nil)
	assert.NoError(t, writeExport(res, "", ""))
}

func TestWriteExport_UnknownFormatErrors(t *testing.T) {
	res := result.Build(&ir.IR{}, graph.Build(&ir.IR{}), nil)
	err := writeExport(res, "yaml", "")
	assert.Error(t, err)
}

func TestWriteExport_WritesFileForJSON(t *testing.T) {
	res := result.Build(&ir.IR{}, graph.Build(&ir.IR{}), nil)
	out := filepath.Join(t.TempDir(), "nested", "out.json")

	err := writeExport(res, "json", out)
	assert.NoError(t, err)

	data, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "\"summary\"")
}

func TestRun_EndToEndOnTempProject(t *testing.T) {
	root := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(root, "A.swift"), []byte("struct A {}"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(root, "B.swift"), []byte("import A\nstruct B: A {}"), 0o644))

	out := filepath.Join(t.TempDir(), "out.json")
	code := Run([]string{"--export", "json", "--output", out, root})
	assert.Equal(t, 0, code)

	data, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "\"files\"")
}

func TestRun_BadPathReturnsNonZero(t *testing.T) {
	code := Run([]string{filepath.Join(t.TempDir(), "does-not-exist")})
	assert.Equal(t, 2, code)
}
