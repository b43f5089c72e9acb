// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scriptinfo describes the built-in filter classes: the Go source
// that defines each one and the pipeline signatures of its operations.
package scriptinfo

import (
	"errors"

	"go.uber.org/zap"

	"github.com/petar-djukic/script-info/internal/registry"
)

// Errors returned by the scriptinfo API.
var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrUnsupportedFilter = registry.ErrUnsupportedFilter
)

// UnsupportedFilterError reports a filter name outside the known set. It
// matches ErrUnsupportedFilter under errors.Is.
type UnsupportedFilterError = registry.UnsupportedFilterError

// Config configures a Service. The zero value is valid.
type Config struct {
	LinkPrefix    string            // Base URL for classes without their own link (default links.DefaultPrefix)
	LinkOverrides map[string]string // Filter name to source URL
	Concurrency   int               // Source parse workers (default NumCPU)
	Logger        *zap.Logger       // Nil disables logging
}
