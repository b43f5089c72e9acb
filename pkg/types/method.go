// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"strings"
	"unicode"
)

// Param is one declared parameter of a method.
type Param struct {
	Name    string // Parameter name ("argN" when the declaration leaves it unnamed)
	Type    string // Type expression as written in source
	Context bool   // True if the type is the script execution context
}

// RawMethod describes one exported method of a filter class as reported
// by introspection, before normalization.
type RawMethod struct {
	Name          string  // Script name (lower camel form of GoName)
	GoName        string  // Method name as declared in Go
	Params        []Param // Declared parameters in order
	DeclaringType string  // Receiver base type that declares the method
	ReturnType    string  // Pipeline result type expression; empty if none
	Special       bool    // Language-level hook such as String or Error
	FilePath      string  // Source file path
	Line          int     // Line number (1-based)
}

// MethodSignature is the normalized shape of a method, with the context
// parameter removed. len(RemainingParams) == max(0, ParamCount-1).
type MethodSignature struct {
	Name            string
	FirstParam      string // Implicit pipeline input; empty when ParamCount == 0
	ParamCount      int
	RemainingParams []string
	ReturnType      string // Simple type name; empty when the method returns nothing
}

// MethodInfo is a MethodSignature together with its two renderings.
type MethodInfo struct {
	Name            string   `json:"name" yaml:"name"`
	FirstParam      string   `json:"firstParam,omitempty" yaml:"firstParam,omitempty"`
	ParamCount      int      `json:"paramCount" yaml:"paramCount"`
	RemainingParams []string `json:"remainingParams" yaml:"remainingParams"`
	ReturnType      string   `json:"returnType,omitempty" yaml:"returnType,omitempty"`
	Body            string   `json:"body" yaml:"body"`
	Display         string   `json:"display" yaml:"display"`
}

// TypeDescriptor enumerates the callable members of types known to a
// script host. Implementations must be safe for concurrent reads.
type TypeDescriptor interface {
	// Methods returns the exported methods in the method set of the named
	// type, including methods promoted from embedded types.
	Methods(typeName string) []RawMethod

	// IsBaseType reports whether methods declared on typeName belong to
	// the shared method container rather than to a filter class.
	IsBaseType(typeName string) bool

	// IsContextType reports whether a parameter of the given type is the
	// implicit per-invocation script context.
	IsContextType(typeExpr string) bool
}

// SimpleTypeName reduces a type expression to its simple name by removing
// pointer indirections and a package qualifier: "*scripts.StopExecution"
// becomes "StopExecution". Any other expression, such as "[]string",
// "...string" or "map[string]any", is returned without its leading
// pointers only.
func SimpleTypeName(typeExpr string) string {
	name := strings.TrimLeft(typeExpr, "*")
	pkg, ident, qualified := strings.Cut(name, ".")
	if !qualified {
		pkg, ident = "", name
	}
	if !isIdent(ident) || (qualified && !isIdent(pkg)) {
		return name
	}
	return ident
}

// isIdent reports whether s is a non-empty Go identifier.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r != '_' && !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}
