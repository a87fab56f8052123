package graph_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/archscan/graph"
)

func TestCallGraph_HotFunction(t *testing.T) {
	var body string
	for i := 0; i < 7; i++ {
		body += "f()\n"
	}
	r := buildIR(t, map[string]string{
		"A.swift": fmt.Sprintf("func caller() {\n%s}\nfunc f() {}", body),
	})
	cg := graph.BuildCallGraph(r)

	hot := cg.FindHotFunctions(5)
	assert.Len(t, hot, 1)
	assert.Equal(t, "f", hot[0].Name)
	assert.Equal(t, 7, hot[0].Count)
}

func TestCallGraph_UnusedFunctions(t *testing.T) {
	r := buildIR(t, map[string]string{
		"A.swift": `func helper() {}
func main() { used() }
func used() {}`,
	})
	cg := graph.BuildCallGraph(r)

	unused := cg.FindUnusedFunctions()
	var names []string
	for _, n := range unused {
		names = append(names, n.Name)
	}
	assert.Contains(t, names, "helper")
	assert.Contains(t, names, "main")
	assert.NotContains(t, names, "used")
}
