// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package introspect lists the script-callable methods of a filter class.
package introspect

import (
	"go/token"
	"sort"

	"github.com/petar-djukic/script-info/pkg/types"
)

// filterNames holds the Go type names of every known filter class.
var filterNames = func() map[string]bool {
	m := make(map[string]bool)
	for _, c := range types.FilterClasses() {
		m[c.String()] = true
	}
	return m
}()

// Introspector enumerates filter class methods through a TypeDescriptor.
// It holds no mutable state and is safe for concurrent use.
type Introspector struct {
	desc types.TypeDescriptor
}

// New returns an Introspector backed by desc.
func New(desc types.TypeDescriptor) *Introspector {
	return &Introspector{desc: desc}
}

// ListCallables returns the exported methods of class c that scripts may
// call. A method qualifies when it is declared on c itself or promoted
// from an embedded filter class. Methods of the base container type,
// methods of any other embedded type, and special members are excluded.
// Parameters of the context type are marked.
//
// The result is sorted by script name, then by the number of declared
// parameters, and is a new slice on every call.
func (i *Introspector) ListCallables(c types.FilterClass) []types.RawMethod {
	className := c.String()
	all := i.desc.Methods(className)

	out := make([]types.RawMethod, 0, len(all))
	for _, m := range all {
		if m.Special || !token.IsExported(m.GoName) {
			continue
		}
		if i.desc.IsBaseType(m.DeclaringType) {
			continue
		}
		if m.DeclaringType != className && !filterNames[m.DeclaringType] {
			continue
		}

		params := make([]types.Param, len(m.Params))
		for j, p := range m.Params {
			p.Context = i.desc.IsContextType(p.Type)
			params[j] = p
		}
		m.Params = params
		out = append(out, m)
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Name != out[b].Name {
			return out[a].Name < out[b].Name
		}
		return len(out[a].Params) < len(out[b].Params)
	})

	return out
}
