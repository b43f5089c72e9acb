// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signature normalizes raw method descriptors and renders them in
// pipeline notation.
package signature

import (
	"strings"

	"github.com/petar-djukic/script-info/pkg/types"
)

// StopExecution is the return type that ends a pipeline without a value.
// Display output omits the return suffix for it.
const StopExecution = "StopExecution"

// Normalize drops context parameters from raw and returns its signature.
func Normalize(raw types.RawMethod) types.MethodSignature {
	var names []string
	for _, p := range raw.Params {
		if p.Context {
			continue
		}
		names = append(names, p.Name)
	}

	sig := types.MethodSignature{
		Name:            raw.Name,
		ParamCount:      len(names),
		RemainingParams: []string{},
		ReturnType:      types.SimpleTypeName(raw.ReturnType),
	}
	if len(names) > 0 {
		sig.FirstParam = names[0]
		sig.RemainingParams = append(sig.RemainingParams, names[1:]...)
	}
	return sig
}

// RenderBody returns the short pipeline form: "name", "|> name" or
// "|> name(b, c)".
func RenderBody(m types.MethodSignature) string {
	switch m.ParamCount {
	case 0:
		return m.Name
	case 1:
		return "|> " + m.Name
	default:
		return "|> " + m.Name + "(" + strings.Join(m.RemainingParams, ", ") + ")"
	}
}

// RenderDisplay returns the body prefixed with the pipeline input and
// followed by the return type, as in "a |> add(b) -> int".
func RenderDisplay(m types.MethodSignature) string {
	var sb strings.Builder
	if m.ParamCount > 0 {
		sb.WriteString(m.FirstParam)
		sb.WriteString(" ")
	}
	sb.WriteString(RenderBody(m))
	if m.ReturnType != "" && m.ReturnType != StopExecution {
		sb.WriteString(" -> ")
		sb.WriteString(m.ReturnType)
	}
	return sb.String()
}

// Describe normalizes and renders each method, preserving order.
func Describe(raws []types.RawMethod) []types.MethodInfo {
	out := make([]types.MethodInfo, 0, len(raws))
	for _, raw := range raws {
		sig := Normalize(raw)
		out = append(out, types.MethodInfo{
			Name:            sig.Name,
			FirstParam:      sig.FirstParam,
			ParamCount:      sig.ParamCount,
			RemainingParams: sig.RemainingParams,
			ReturnType:      sig.ReturnType,
			Body:            RenderBody(sig),
			Display:         RenderDisplay(sig),
		})
	}
	return out
}
