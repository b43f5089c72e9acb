// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scripts holds the built-in filter classes. Each class is a
// struct embedding ScriptMethods whose exported methods are callable from
// a template pipeline.
package scripts

import (
	"context"
	"io"
	"sync"
)

const (
	// BaseTypeName is the shared container embedded by every filter class.
	BaseTypeName = "ScriptMethods"

	// ContextTypeName marks the implicit per-invocation parameter.
	ContextTypeName = "ScriptScopeContext"
)

// ScriptMethods is the container every filter class embeds. Its own
// methods are host plumbing, not script operations.
type ScriptMethods struct {
	mu      sync.RWMutex
	globals map[string]any
}

// Global returns a value shared by all invocations.
func (s *ScriptMethods) Global(name string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.globals[name]
}

// SetGlobal stores a value shared by all invocations.
func (s *ScriptMethods) SetGlobal(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.globals == nil {
		s.globals = make(map[string]any)
	}
	s.globals[name] = value
}

// ScriptScopeContext carries per-invocation state. Methods that take it
// receive it implicitly; it never appears in a pipeline signature.
type ScriptScopeContext struct {
	Context context.Context
	Out     io.Writer
	Args    map[string]any
}

// Ctx returns the invocation context, or context.Background if unset.
func (s *ScriptScopeContext) Ctx() context.Context {
	if s == nil || s.Context == nil {
		return context.Background()
	}
	return s.Context
}

// StopExecution is returned by operations that end the pipeline without
// producing a value.
type StopExecution struct{}
