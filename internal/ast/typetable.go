// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"go/ast"
	"go/token"
	"sort"

	"github.com/petar-djukic/script-info/pkg/types"
)

// TypeTable indexes struct declarations and exported methods from a set
// of parsed files. It is read-only after BuildTypeTable returns and is
// safe for concurrent use.
type TypeTable struct {
	structs map[string]StructDecl
	methods map[string][]types.RawMethod // keyed by declaring type
	count   int
}

// BuildTypeTable extracts declarations from every parsed file. Files are
// visited in path order so the table does not depend on map iteration.
func BuildTypeTable(fset *token.FileSet, files map[string]*ast.File) *TypeTable {
	tt := &TypeTable{
		structs: make(map[string]StructDecl),
		methods: make(map[string][]types.RawMethod),
	}

	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		decls := ExtractDecls(fset, p, files[p])
		for _, s := range decls.Structs {
			tt.structs[s.Name] = s
		}
		for _, m := range decls.Methods {
			tt.methods[m.DeclaringType] = append(tt.methods[m.DeclaringType], m)
			tt.count++
		}
	}

	return tt
}

// Structs returns the names of all indexed struct types, sorted.
func (tt *TypeTable) Structs() []string {
	names := make([]string, 0, len(tt.structs))
	for name := range tt.structs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Struct returns the declaration of the named struct type.
func (tt *TypeTable) Struct(name string) (StructDecl, bool) {
	s, ok := tt.structs[name]
	return s, ok
}

// Declared returns the exported methods declared directly on typeName.
func (tt *TypeTable) Declared(typeName string) []types.RawMethod {
	return copyMethods(tt.methods[typeName])
}

// Len returns the total number of indexed methods.
func (tt *TypeTable) Len() int {
	return tt.count
}

// MethodSet returns the exported methods of *typeName: those declared on
// the type plus those promoted through embedded struct fields. Promotion
// follows Go's selector rules: a method at a shallower embedding depth
// shadows one of the same name deeper down, and a name found more than
// once at the same depth is ambiguous and dropped. A type reached through
// two embedding paths at the same depth counts twice. Embedded types that
// are not declared in the scanned source contribute nothing.
//
// The result is a fresh slice ordered by embedding depth, then source
// order.
func (tt *TypeTable) MethodSet(typeName string) []types.RawMethod {
	var out []types.RawMethod
	seen := make(map[string]bool)
	visited := make(map[string]bool) // types expanded at a shallower depth
	level := []string{typeName}
	paths := map[string]int{typeName: 1}

	for len(level) > 0 {
		found := make(map[string]types.RawMethod)
		hits := make(map[string]int)
		var order []string
		var next []string
		nextPaths := make(map[string]int)

		for _, t := range level {
			if visited[t] {
				continue
			}

			for _, m := range tt.methods[t] {
				if seen[m.GoName] {
					continue
				}
				if _, ok := found[m.GoName]; !ok {
					order = append(order, m.GoName)
					found[m.GoName] = m
				}
				hits[m.GoName] += paths[t]
			}
			if s, ok := tt.structs[t]; ok {
				for _, e := range s.Embeds {
					if nextPaths[e] == 0 {
						next = append(next, e)
					}
					// Two paths are enough to make a name ambiguous.
					nextPaths[e] = min(nextPaths[e]+paths[t], 2)
				}
			}
		}
		for _, t := range level {
			visited[t] = true
		}

		for _, name := range order {
			seen[name] = true
			if hits[name] == 1 {
				out = append(out, copyMethod(found[name]))
			}
		}
		level, paths = next, nextPaths
	}

	return out
}

func copyMethods(ms []types.RawMethod) []types.RawMethod {
	if len(ms) == 0 {
		return nil
	}
	out := make([]types.RawMethod, len(ms))
	for i, m := range ms {
		out[i] = copyMethod(m)
	}
	return out
}

// copyMethod detaches the parameter slice so callers may modify it.
func copyMethod(m types.RawMethod) types.RawMethod {
	if m.Params != nil {
		m.Params = append([]types.Param(nil), m.Params...)
	}
	return m
}
