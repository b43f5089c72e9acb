// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scripts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

// ProtectedScripts reaches the file system and processes. Hosts register
// it only for trusted templates.
type ProtectedScripts struct {
	ScriptMethods
	Root string // Paths resolve relative to Root
}

func (p *ProtectedScripts) resolve(path string) string {
	if filepath.IsAbs(path) || p.Root == "" {
		return path
	}
	return filepath.Join(p.Root, path)
}

// ReadFile returns the contents of path.
func (p *ProtectedScripts) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(p.resolve(path))
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return string(data), nil
}

// WriteFile replaces the contents of path, creating it if needed.
func (p *ProtectedScripts) WriteFile(path, contents string) error {
	if err := os.WriteFile(p.resolve(path), []byte(contents), 0o644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// FileExists reports whether path is an existing regular file.
func (p *ProtectedScripts) FileExists(path string) bool {
	info, err := os.Stat(p.resolve(path))
	return err == nil && !info.IsDir()
}

// DirFiles lists the regular files directly under path, sorted.
func (p *ProtectedScripts) DirFiles(path string) ([]string, error) {
	entries, err := os.ReadDir(p.resolve(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("reading directory: %w", err)
	}
	files := []string{}
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Exec runs command and returns its combined output. The process is
// killed when the invocation context is done.
func (p *ProtectedScripts) Exec(scope *ScriptScopeContext, command string, args ...string) (string, error) {
	cmd := exec.CommandContext(scope.Ctx(), command, args...)
	cmd.Dir = p.Root
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("exec %s: %w", command, err)
	}
	return string(out), nil
}
