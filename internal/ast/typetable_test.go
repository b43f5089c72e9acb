// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"go/ast"
	"go/parser"
	"go/token"
	"sync"
	"testing"

	"github.com/petar-djukic/script-info/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tableSources = map[string]string{
	"base.go": `package scripts

type ScriptMethods struct{}

func (m *ScriptMethods) Global(name string) any { return nil }
func (m *ScriptMethods) Trim(text string) string { return text }
`,
	"default.go": `package scripts

type DefaultScripts struct {
	ScriptMethods
}

func (s *DefaultScripts) Trim(text string) string { return text }
func (s *DefaultScripts) Upper(text string) string { return text }
`,
	"html.go": `package scripts

type HtmlScripts struct {
	*DefaultScripts
	extra
}

func (s *HtmlScripts) Upper(text string) string { return text }
func (s *HtmlScripts) HTMLEncode(html string) string { return html }
`,
	"extra.go": `package scripts

type extra struct{}

func (extra) Extra() int { return 0 }
`,
	"diamond.go": `package scripts

type left struct{}
type right struct{}

func (left) Side() string  { return "l" }
func (right) Side() string { return "r" }

type Diamond struct {
	left
	right
}

type Loop struct {
	*Loop
}

func (l *Loop) Spin() {}
`,
}

func buildTestTable(t *testing.T) *TypeTable {
	t.Helper()
	fset := token.NewFileSet()
	files := make(map[string]*ast.File)
	for path, src := range tableSources {
		f, err := parser.ParseFile(fset, path, src, parser.ParseComments)
		require.NoError(t, err)
		files[path] = f
	}
	return BuildTypeTable(fset, files)
}

func methodsByName(ms []types.RawMethod) map[string]types.RawMethod {
	out := make(map[string]types.RawMethod, len(ms))
	for _, m := range ms {
		out[m.GoName] = m
	}
	return out
}

func TestBuildTypeTable(t *testing.T) {
	tt := buildTestTable(t)

	assert.Equal(t, []string{"DefaultScripts", "Diamond", "HtmlScripts", "Loop", "ScriptMethods", "extra", "left", "right"}, tt.Structs())
	assert.Equal(t, 10, tt.Len())

	s, ok := tt.Struct("HtmlScripts")
	require.True(t, ok)
	assert.Equal(t, []string{"DefaultScripts", "extra"}, s.Embeds)

	_, ok = tt.Struct("Missing")
	assert.False(t, ok)
}

func TestTypeTable_Declared(t *testing.T) {
	tt := buildTestTable(t)

	declared := tt.Declared("DefaultScripts")
	require.Len(t, declared, 2)
	assert.Equal(t, "Trim", declared[0].GoName)
	assert.Nil(t, tt.Declared("Missing"))
}

func TestTypeTable_MethodSet_Promotion(t *testing.T) {
	tt := buildTestTable(t)

	set := methodsByName(tt.MethodSet("DefaultScripts"))
	require.Len(t, set, 3)
	assert.Equal(t, "DefaultScripts", set["Trim"].DeclaringType, "declared method shadows base")
	assert.Equal(t, "ScriptMethods", set["Global"].DeclaringType)

	html := methodsByName(tt.MethodSet("HtmlScripts"))
	assert.Equal(t, "HtmlScripts", html["Upper"].DeclaringType)
	assert.Equal(t, "HtmlScripts", html["HTMLEncode"].DeclaringType)
	assert.Equal(t, "DefaultScripts", html["Trim"].DeclaringType)
	assert.Equal(t, "ScriptMethods", html["Global"].DeclaringType)
	assert.Equal(t, "extra", html["Extra"].DeclaringType)
	assert.Len(t, html, 5)
}

func TestTypeTable_MethodSet_DepthOrder(t *testing.T) {
	tt := buildTestTable(t)

	set := tt.MethodSet("HtmlScripts")
	require.NotEmpty(t, set)
	assert.Equal(t, "HtmlScripts", set[0].DeclaringType)
	assert.Equal(t, "ScriptMethods", set[len(set)-1].DeclaringType)
}

func TestTypeTable_MethodSet_Ambiguous(t *testing.T) {
	tt := buildTestTable(t)

	assert.Empty(t, tt.MethodSet("Diamond"))
}

func TestTypeTable_MethodSet_SharedEmbedAmbiguous(t *testing.T) {
	const src = `package scripts

type shared struct{}

func (shared) Ping() string { return "" }

type viaA struct{ shared }
type viaB struct{ shared }

func (viaB) Pong() string { return "" }

type Twin struct {
	viaA
	viaB
}

type Single struct {
	viaA
}
`
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "twin.go", src, parser.ParseComments)
	require.NoError(t, err)
	tt := BuildTypeTable(fset, map[string]*ast.File{"twin.go": f})

	twin := methodsByName(tt.MethodSet("Twin"))
	assert.NotContains(t, twin, "Ping", "shared reached through two paths at depth 2")
	assert.Equal(t, "viaB", twin["Pong"].DeclaringType)
	assert.Len(t, twin, 1)

	single := methodsByName(tt.MethodSet("Single"))
	assert.Equal(t, "shared", single["Ping"].DeclaringType)
}

func TestTypeTable_MethodSet_Cycle(t *testing.T) {
	tt := buildTestTable(t)

	set := tt.MethodSet("Loop")
	require.Len(t, set, 1)
	assert.Equal(t, "Spin", set[0].GoName)
}

func TestTypeTable_MethodSet_Unknown(t *testing.T) {
	tt := buildTestTable(t)

	assert.Empty(t, tt.MethodSet("Nope"))
}

func TestTypeTable_MethodSet_FreshSlices(t *testing.T) {
	tt := buildTestTable(t)

	first := tt.MethodSet("DefaultScripts")
	first[0].Params[0].Name = "mutated"
	first[0].GoName = "Mutated"

	second := tt.MethodSet("DefaultScripts")
	assert.Equal(t, first[0].DeclaringType, second[0].DeclaringType)
	assert.NotEqual(t, "Mutated", second[0].GoName)
	assert.NotEqual(t, "mutated", second[0].Params[0].Name)
}

func TestTypeTable_ConcurrentReads(t *testing.T) {
	tt := buildTestTable(t)
	want := len(tt.MethodSet("HtmlScripts"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, tt.MethodSet("HtmlScripts"), want)
		}()
	}
	wg.Wait()
}

func TestDescriptor(t *testing.T) {
	d := NewDescriptor(buildTestTable(t), "ScriptScopeContext", "ScriptMethods")

	assert.True(t, d.IsBaseType("ScriptMethods"))
	assert.False(t, d.IsBaseType("DefaultScripts"))
	assert.True(t, d.IsContextType("*ScriptScopeContext"))
	assert.True(t, d.IsContextType("scripts.ScriptScopeContext"))
	assert.False(t, d.IsContextType("[]ScriptScopeContext"))
	assert.False(t, d.IsContextType("...ScriptScopeContext"))
	assert.False(t, d.IsContextType("...*ScriptScopeContext"))
	assert.False(t, d.IsContextType("string"))
	assert.Len(t, d.Methods("HtmlScripts"), 5)
	assert.NotNil(t, d.Table())
}
