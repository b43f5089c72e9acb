// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ast scans Go source and indexes the method sets of the struct
// types it declares. It backs script method introspection with parameter
// names, which reflection cannot report.
package ast

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"runtime"
	"strings"
	"sync"
)

// skipDirs contains directory names that ScanFS skips.
var skipDirs = map[string]bool{
	"vendor":       true,
	".git":         true,
	"testdata":     true,
	"node_modules": true,
}

// ScanResult holds the output of a source scan.
type ScanResult struct {
	FileSet *token.FileSet
	Files   map[string]*ast.File // keyed by slash-separated path within the scanned FS
	Errors  []ScanError
}

// ScanError records a read or parse failure for a single file.
type ScanError struct {
	FilePath string
	Err      error
}

func (e ScanError) Error() string {
	return fmt.Sprintf("%s: %v", e.FilePath, e.Err)
}

func (e ScanError) Unwrap() error {
	return e.Err
}

// ScanDir scans the directory tree rooted at dir. See ScanFS.
func ScanDir(dir string, concurrency int) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return ScanFS(os.DirFS(dir), concurrency)
}

// ScanFS walks fsys, finds all non-test .go files, and parses them in
// parallel using a bounded worker pool. It skips vendor/, .git/,
// testdata/ and node_modules/ directories.
//
// Read and parse errors for individual files are collected in
// ScanResult.Errors but do not abort the scan. If concurrency <= 0 it
// defaults to runtime.NumCPU().
func ScanFS(fsys fs.FS, concurrency int) (*ScanResult, error) {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	var paths []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() {
			if skipDirs[d.Name()] && path != "." {
				return fs.SkipDir
			}
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking source: %w", err)
	}

	fset := token.NewFileSet()
	result := &ScanResult{
		FileSet: fset,
		Files:   make(map[string]*ast.File, len(paths)),
	}

	if len(paths) == 0 {
		return result, nil
	}

	type parseResult struct {
		path string
		file *ast.File
		err  error
	}

	jobs := make(chan string, len(paths))
	results := make(chan parseResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				src, readErr := fs.ReadFile(fsys, path)
				if readErr != nil {
					results <- parseResult{path: path, err: readErr}
					continue
				}
				f, parseErr := parser.ParseFile(fset, path, src, parser.ParseComments)
				results <- parseResult{path: path, file: f, err: parseErr}
			}
		}()
	}

	for _, p := range paths {
		jobs <- p
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	for pr := range results {
		if pr.err != nil {
			result.Errors = append(result.Errors, ScanError{FilePath: pr.path, Err: pr.err})
			// Even with errors, go/parser may return a partial AST.
			if pr.file != nil {
				result.Files[pr.path] = pr.file
			}
			continue
		}
		result.Files[pr.path] = pr.file
	}

	return result, nil
}
