// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scripts

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/petar-djukic/script-info/internal/ast"
)

//go:embed scripts.go default_scripts.go html_scripts.go protected_scripts.go
//go:embed info_scripts.go redis_scripts.go db_scripts_async.go validate_scripts.go
//go:embed autoquery_scripts.go servicestack_scripts.go
var source embed.FS

// Source returns the Go source of the filter classes.
func Source() fs.FS {
	return source
}

// Descriptor parses Source and returns a descriptor over the filter
// classes. Parsing uses up to concurrency workers (NumCPU when <= 0).
func Descriptor(concurrency int) (*ast.Descriptor, error) {
	res, err := ast.ScanFS(source, concurrency)
	if err != nil {
		return nil, fmt.Errorf("scanning scripts source: %w", err)
	}
	if len(res.Errors) > 0 {
		errs := make([]error, len(res.Errors))
		for i, e := range res.Errors {
			errs[i] = e
		}
		return nil, fmt.Errorf("parsing scripts source: %w", errors.Join(errs...))
	}

	table := ast.BuildTypeTable(res.FileSet, res.Files)
	return ast.NewDescriptor(table, ContextTypeName, BaseTypeName), nil
}
