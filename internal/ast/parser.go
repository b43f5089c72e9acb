// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/petar-djukic/script-info/pkg/types"
)

// specialMethods are hooks the language and standard library call
// implicitly. They are never offered as script operations.
var specialMethods = map[string]bool{
	"String":        true,
	"GoString":      true,
	"Error":         true,
	"Format":        true,
	"Unwrap":        true,
	"MarshalJSON":   true,
	"UnmarshalJSON": true,
	"MarshalText":   true,
	"UnmarshalText": true,
}

// StructDecl is a package-level struct type declaration.
type StructDecl struct {
	Name     string   // Type name
	Embeds   []string // Embedded field types, pointer stripped ("ScriptMethods", "sync.Mutex")
	FilePath string
	Line     int
}

// Decls holds the declarations of one file that contribute to method sets.
type Decls struct {
	Structs []StructDecl
	Methods []types.RawMethod // Exported methods only
}

// ExtractDecls collects package-level struct types and exported methods
// from a parsed file. Function bodies are not visited, so local type
// declarations are ignored.
func ExtractDecls(fset *token.FileSet, filePath string, file *ast.File) Decls {
	var decls Decls

	insp := inspector.New([]*ast.File{file})
	filter := []ast.Node{(*ast.FuncDecl)(nil), (*ast.TypeSpec)(nil)}

	insp.WithStack(filter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return false
		}
		switch d := n.(type) {
		case *ast.FuncDecl:
			if d.Recv != nil && len(d.Recv.List) > 0 && d.Name.IsExported() {
				decls.Methods = append(decls.Methods, extractMethod(fset, filePath, d))
			}
		case *ast.TypeSpec:
			// File > GenDecl > TypeSpec.
			if len(stack) != 3 {
				return false
			}
			if st, ok := d.Type.(*ast.StructType); ok {
				decls.Structs = append(decls.Structs, extractStruct(fset, filePath, d.Name.Name, st))
			}
		}
		return false
	})

	return decls
}

// extractMethod builds a RawMethod from a method declaration.
func extractMethod(fset *token.FileSet, filePath string, fn *ast.FuncDecl) types.RawMethod {
	pos := fset.Position(fn.Pos())

	return types.RawMethod{
		Name:          ScriptName(fn.Name.Name),
		GoName:        fn.Name.Name,
		Params:        params(fn.Type.Params),
		DeclaringType: receiverTypeName(fn.Recv.List[0].Type),
		ReturnType:    resultType(fn.Type.Results),
		Special:       specialMethods[fn.Name.Name],
		FilePath:      filePath,
		Line:          pos.Line,
	}
}

// extractStruct records the embedded fields of a struct type.
func extractStruct(fset *token.FileSet, filePath, name string, st *ast.StructType) StructDecl {
	pos := fset.Position(st.Pos())
	decl := StructDecl{Name: name, FilePath: filePath, Line: pos.Line}

	if st.Fields == nil {
		return decl
	}
	for _, field := range st.Fields.List {
		if len(field.Names) != 0 {
			continue
		}
		decl.Embeds = append(decl.Embeds, strings.TrimPrefix(exprString(field.Type), "*"))
	}
	return decl
}

// params flattens a parameter list. Unnamed and blank parameters are
// named by position ("arg0", "arg1", ...).
func params(fl *ast.FieldList) []types.Param {
	if fl == nil || len(fl.List) == 0 {
		return nil
	}

	var out []types.Param
	for _, field := range fl.List {
		typeStr := exprString(field.Type)
		if len(field.Names) == 0 {
			out = append(out, types.Param{Name: fmt.Sprintf("arg%d", len(out)), Type: typeStr})
			continue
		}
		for _, name := range field.Names {
			n := name.Name
			if n == "_" {
				n = fmt.Sprintf("arg%d", len(out))
			}
			out = append(out, types.Param{Name: n, Type: typeStr})
		}
	}
	return out
}

// resultType returns the type a method hands to the next pipeline stage,
// which is its first result ("T" for both T and (T, error) forms).
// Returns "" for methods without results.
func resultType(fl *ast.FieldList) string {
	if fl == nil || len(fl.List) == 0 {
		return ""
	}
	return exprString(fl.List[0].Type)
}

// receiverTypeName returns the base type name of a method receiver,
// stripping pointers and type parameters.
func receiverTypeName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverTypeName(e.X)
	case *ast.ParenExpr:
		return receiverTypeName(e.X)
	case *ast.IndexExpr:
		return receiverTypeName(e.X)
	case *ast.IndexListExpr:
		return receiverTypeName(e.X)
	case *ast.Ident:
		return e.Name
	default:
		return exprString(expr)
	}
}

// fieldListString renders a field list as a comma-separated string.
func fieldListString(fl *ast.FieldList) string {
	if fl == nil || len(fl.List) == 0 {
		return ""
	}

	var parts []string
	for _, field := range fl.List {
		typeStr := exprString(field.Type)
		if len(field.Names) == 0 {
			parts = append(parts, typeStr)
		} else {
			for _, name := range field.Names {
				parts = append(parts, name.Name+" "+typeStr)
			}
		}
	}
	return strings.Join(parts, ", ")
}

// exprString renders a type expression as a string.
func exprString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return exprString(e.X) + "." + e.Sel.Name
	case *ast.StarExpr:
		return "*" + exprString(e.X)
	case *ast.ArrayType:
		if e.Len == nil {
			return "[]" + exprString(e.Elt)
		}
		return "[" + exprString(e.Len) + "]" + exprString(e.Elt)
	case *ast.MapType:
		return "map[" + exprString(e.Key) + "]" + exprString(e.Value)
	case *ast.InterfaceType:
		if e.Methods == nil || len(e.Methods.List) == 0 {
			return "interface{}"
		}
		return "interface{...}"
	case *ast.StructType:
		if e.Fields == nil || len(e.Fields.List) == 0 {
			return "struct{}"
		}
		return "struct{...}"
	case *ast.FuncType:
		sig := "func(" + fieldListString(e.Params) + ")"
		if e.Results != nil && len(e.Results.List) > 0 {
			sig += " (" + fieldListString(e.Results) + ")"
		}
		return sig
	case *ast.Ellipsis:
		return "..." + exprString(e.Elt)
	case *ast.ChanType:
		switch e.Dir {
		case ast.SEND:
			return "chan<- " + exprString(e.Value)
		case ast.RECV:
			return "<-chan " + exprString(e.Value)
		default:
			return "chan " + exprString(e.Value)
		}
	case *ast.BasicLit:
		return e.Value
	case *ast.ParenExpr:
		return "(" + exprString(e.X) + ")"
	case *ast.IndexExpr:
		return exprString(e.X) + "[" + exprString(e.Index) + "]"
	case *ast.IndexListExpr:
		args := make([]string, len(e.Indices))
		for i, idx := range e.Indices {
			args[i] = exprString(idx)
		}
		return exprString(e.X) + "[" + strings.Join(args, ", ") + "]"
	default:
		return fmt.Sprintf("%T", expr)
	}
}
