// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scripts

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// ErrNoGateway is returned when a ServiceStackScripts has no gateway.
var ErrNoGateway = errors.New("service gateway not configured")

// ServiceGateway dispatches requests to application services.
type ServiceGateway interface {
	Send(ctx context.Context, requestName string, request any) (any, error)
	Publish(ctx context.Context, requestName string, request any) error
}

// ServiceStackScripts calls application services and inspects the
// authenticated session stored under the "session" invocation argument.
type ServiceStackScripts struct {
	ScriptMethods
	Gateway ServiceGateway
}

// SendToGateway sends request to its service and returns the response.
func (s *ServiceStackScripts) SendToGateway(scope *ScriptScopeContext, requestName string, request any) (any, error) {
	if s.Gateway == nil {
		return nil, ErrNoGateway
	}
	resp, err := s.Gateway.Send(scope.Ctx(), requestName, request)
	if err != nil {
		return nil, fmt.Errorf("send %s: %w", requestName, err)
	}
	return resp, nil
}

// PublishToGateway publishes request without waiting for a response.
func (s *ServiceStackScripts) PublishToGateway(scope *ScriptScopeContext, requestName string, request any) (StopExecution, error) {
	if s.Gateway == nil {
		return StopExecution{}, ErrNoGateway
	}
	if err := s.Gateway.Publish(scope.Ctx(), requestName, request); err != nil {
		return StopExecution{}, fmt.Errorf("publish %s: %w", requestName, err)
	}
	return StopExecution{}, nil
}

// UserSession returns the session map, or nil when unauthenticated.
func (s *ServiceStackScripts) UserSession(scope *ScriptScopeContext) map[string]any {
	session, _ := scope.Args["session"].(map[string]any)
	return session
}

// IsAuthenticated reports whether the invocation has a session.
func (s *ServiceStackScripts) IsAuthenticated(scope *ScriptScopeContext) bool {
	return s.UserSession(scope) != nil
}

// HasRole reports whether the session holds role.
func (s *ServiceStackScripts) HasRole(scope *ScriptScopeContext, role string) bool {
	roles, _ := s.UserSession(scope)["roles"].([]string)
	return slices.Contains(roles, role)
}
