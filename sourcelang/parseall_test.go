package sourcelang_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/archscan/sourcelang"
)

func TestParseAll_DeterministicOrderDespiteCompletionRace(t *testing.T) {
	files := map[string][]byte{
		"C.swift": []byte("struct C {}"),
		"A.swift": []byte("struct A {}"),
		"B.swift": []byte("struct B {}"),
	}
	var paths []string
	for p := range files {
		paths = append(paths, p)
	}

	read := func(p string) ([]byte, error) { return files[p], nil }

	parsed, errs := sourcelang.ParseAll(context.Background(), sourcelang.NewSourceParser(), paths, read)
	assert.Empty(t, errs)
	assert.Len(t, parsed, 3)
	assert.Equal(t, "A.swift", parsed[0].Path)
	assert.Equal(t, "B.swift", parsed[1].Path)
	assert.Equal(t, "C.swift", parsed[2].Path)
}

func TestParseAll_CollectsPerFileErrors(t *testing.T) {
	paths := []string{"Bad.swift", "Good.swift"}
	read := func(p string) ([]byte, error) {
		if p == "Bad.swift" {
			return nil, fmt.Errorf("boom")
		}
		return []byte("struct Good {}"), nil
	}

	parsed, errs := sourcelang.ParseAll(context.Background(), sourcelang.NewSourceParser(), paths, read)
	assert.Len(t, parsed, 1)
	assert.Len(t, errs, 1)
	assert.Equal(t, "Bad.swift", errs[0].Path)
}
