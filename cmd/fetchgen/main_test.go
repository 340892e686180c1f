package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinNames(t *testing.T) {
	assert.Equal(t, "T1", joinNames([]string{"T1"}))
	assert.Equal(t, "T1 and T2", joinNames([]string{"T1", "T2"}))
	assert.Equal(t, "T1, T2 and T3", joinNames([]string{"T1", "T2", "T3"}))
}

func TestNewArity(t *testing.T) {
	a := newArity(3)
	assert.Equal(t, []int{1, 2, 3}, a.Indexes)
	assert.Equal(t, "T1, T2, T3", a.TypeParams)
	assert.Equal(t, "*T1, *T2, *T3", a.Pointers)
	assert.Equal(t, "q.v1, q.v2, q.v3", a.Values)
	assert.Equal(t, "nil, nil, nil", a.Nils)
	assert.Equal(t, "q.c1, q.c2, q.c3", a.Columns)
}

func TestRenderDeclaresEveryArity(t *testing.T) {
	src, err := render("fetch_generated.go", 10)
	require.NoError(t, err)

	file, err := parser.ParseFile(token.NewFileSet(), "fetch_generated.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "ecs", file.Name.Name)

	declared := make(map[string]bool)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				declared[d.Name.Name] = true
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					declared[ts.Name.Name] = true
				}
			}
		}
	}

	for n := 1; n <= 10; n++ {
		assert.True(t, declared[fmt.Sprintf("Query%d", n)], "Query%d", n)
		assert.True(t, declared[fmt.Sprintf("NewQuery%d", n)], "NewQuery%d", n)
		assert.True(t, declared[fmt.Sprintf("WithSystem%d", n)], "WithSystem%d", n)
	}
	assert.False(t, declared["Query11"])
}

func TestRenderRejectsZeroArity(t *testing.T) {
	_, err := render("fetch_generated.go", 0)
	require.Error(t, err)

	unpacked := eris.Unpack(err)
	assert.Nil(t, unpacked.ErrExternal)
	assert.Equal(t, "max arity must be at least 1, got 0", unpacked.ErrRoot.Msg)
}
