// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import "github.com/petar-djukic/script-info/pkg/types"

// Descriptor adapts a TypeTable to types.TypeDescriptor for a script host
// whose filter classes embed a common base type and whose methods take
// an optional context parameter.
type Descriptor struct {
	table       *TypeTable
	contextType string
	baseTypes   map[string]bool
}

// NewDescriptor returns a descriptor that treats contextType as the
// context marker and methods declared on any of baseTypes as inherited
// container methods.
func NewDescriptor(table *TypeTable, contextType string, baseTypes ...string) *Descriptor {
	base := make(map[string]bool, len(baseTypes))
	for _, b := range baseTypes {
		base[b] = true
	}
	return &Descriptor{table: table, contextType: contextType, baseTypes: base}
}

// Methods returns the method set of *typeName.
func (d *Descriptor) Methods(typeName string) []types.RawMethod {
	return d.table.MethodSet(typeName)
}

// IsBaseType reports whether typeName is one of the configured base types.
func (d *Descriptor) IsBaseType(typeName string) bool {
	return d.baseTypes[typeName]
}

// IsContextType reports whether typeExpr names the context type, by value
// or by pointer, qualified or not.
func (d *Descriptor) IsContextType(typeExpr string) bool {
	return types.SimpleTypeName(typeExpr) == d.contextType
}

// Table returns the underlying type table.
func (d *Descriptor) Table() *TypeTable {
	return d.table
}
