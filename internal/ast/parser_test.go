// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/petar-djukic/script-info/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSource = `package scripts

import (
	"sync"
	"time"
)

// ScriptMethods is the shared base.
type ScriptMethods struct{}

// Global reads a global.
func (m *ScriptMethods) Global(name string) any { return nil }

// DefaultScripts holds core filters.
type DefaultScripts struct {
	ScriptMethods
	sync.Mutex
	limit int
}

func (s *DefaultScripts) Now() time.Time { return time.Now() }

func (s *DefaultScripts) Add(a, b int) int { return a + b }

func (s DefaultScripts) Echo(scope *ScriptScopeContext, value any) StopExecution {
	type local struct{ X int }
	return StopExecution{}
}

func (s *DefaultScripts) Split(text string, _ string, rest ...string) ([]string, error) {
	return nil, nil
}

func (s *DefaultScripts) Apply(func(string) bool, string) {}

func (s *DefaultScripts) String() string { return "DefaultScripts" }

func (s *DefaultScripts) helper() {}

func Free(a int) int { return a }

type Box[T any] struct{ v T }

func (b *Box[T]) Get() T { return b.v }
`

func parseTestSource(t *testing.T) Decls {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "default.go", testSource, parser.ParseComments)
	require.NoError(t, err)
	return ExtractDecls(fset, "default.go", file)
}

func findMethod(t *testing.T, decls Decls, goName string) types.RawMethod {
	t.Helper()
	for _, m := range decls.Methods {
		if m.GoName == goName {
			return m
		}
	}
	t.Fatalf("method %s not found", goName)
	return types.RawMethod{}
}

func TestExtractDecls_ExportedMethodsOnly(t *testing.T) {
	decls := parseTestSource(t)

	var names []string
	for _, m := range decls.Methods {
		names = append(names, m.GoName)
	}
	assert.ElementsMatch(t, []string{"Global", "Now", "Add", "Echo", "Split", "Apply", "String", "Get"}, names)
	assert.NotContains(t, names, "helper")
	assert.NotContains(t, names, "Free")
}

func TestExtractDecls_Structs(t *testing.T) {
	decls := parseTestSource(t)

	byName := make(map[string]StructDecl)
	for _, s := range decls.Structs {
		byName[s.Name] = s
	}

	require.Contains(t, byName, "DefaultScripts")
	assert.Equal(t, []string{"ScriptMethods", "sync.Mutex"}, byName["DefaultScripts"].Embeds)
	assert.Contains(t, byName, "ScriptMethods")
	assert.Contains(t, byName, "Box")
	// Types declared inside function bodies are not package-level.
	assert.NotContains(t, byName, "local")
}

func TestExtractDecls_MethodShape(t *testing.T) {
	decls := parseTestSource(t)

	now := findMethod(t, decls, "Now")
	assert.Equal(t, "now", now.Name)
	assert.Empty(t, now.Params)
	assert.Equal(t, "time.Time", now.ReturnType)
	assert.Equal(t, "DefaultScripts", now.DeclaringType)
	assert.Equal(t, "default.go", now.FilePath)
	assert.Greater(t, now.Line, 0)

	add := findMethod(t, decls, "Add")
	assert.Equal(t, []types.Param{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}}, add.Params)
	assert.Equal(t, "int", add.ReturnType)

	echo := findMethod(t, decls, "Echo")
	assert.Equal(t, "DefaultScripts", echo.DeclaringType, "value receiver")
	assert.Equal(t, "*ScriptScopeContext", echo.Params[0].Type)
	assert.Equal(t, "StopExecution", echo.ReturnType)
}

func TestExtractDecls_ParamNaming(t *testing.T) {
	decls := parseTestSource(t)

	split := findMethod(t, decls, "Split")
	require.Len(t, split.Params, 3)
	assert.Equal(t, "text", split.Params[0].Name)
	assert.Equal(t, "arg1", split.Params[1].Name, "blank parameter")
	assert.Equal(t, "rest", split.Params[2].Name)
	assert.Equal(t, "...string", split.Params[2].Type)
	assert.Equal(t, "[]string", split.ReturnType, "error result is dropped")

	apply := findMethod(t, decls, "Apply")
	require.Len(t, apply.Params, 2)
	assert.Equal(t, "arg0", apply.Params[0].Name, "unnamed parameter")
	assert.Equal(t, "func(string) (bool)", apply.Params[0].Type)
	assert.Equal(t, "arg1", apply.Params[1].Name)
	assert.Equal(t, "string", apply.Params[1].Type)
	assert.Empty(t, apply.ReturnType)
}

func TestExtractDecls_Special(t *testing.T) {
	decls := parseTestSource(t)

	assert.True(t, findMethod(t, decls, "String").Special)
	assert.False(t, findMethod(t, decls, "Now").Special)
}

func TestExtractDecls_GenericReceiver(t *testing.T) {
	decls := parseTestSource(t)

	get := findMethod(t, decls, "Get")
	assert.Equal(t, "Box", get.DeclaringType)
	assert.Equal(t, "T", get.ReturnType)
}
