// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/script-info/internal/display"
	"github.com/petar-djukic/script-info/internal/git"
	"github.com/petar-djukic/script-info/internal/registry"
	"github.com/petar-djukic/script-info/pkg/scriptinfo"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// newLogger returns a console logger writing to w at the named level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

// newService builds the Service from settings in v.
func newService(v *viper.Viper, logger *zap.Logger) (*scriptinfo.Service, error) {
	prefix, err := linkPrefix(v, logger)
	if err != nil {
		return nil, err
	}
	overrides, err := linkOverrides(v)
	if err != nil {
		return nil, err
	}

	svc, err := scriptinfo.New(scriptinfo.Config{
		LinkPrefix:    prefix,
		LinkOverrides: overrides,
		Concurrency:   v.GetInt("concurrency"),
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("initialization failed: %w", err)
	}
	return svc, nil
}

// linkPrefix returns --link-prefix, or the blob URL derived from
// --link-repo, or "" for the built-in default.
func linkPrefix(v *viper.Viper, logger *zap.Logger) (string, error) {
	if p := v.GetString("link-prefix"); p != "" {
		return p, nil
	}
	repoDir := v.GetString("link-repo")
	if repoDir == "" {
		return "", nil
	}

	repo, err := git.Open(git.Config{WorkDir: repoDir})
	if err != nil {
		return "", fmt.Errorf("opening repository: %w", err)
	}
	if dirty, err := repo.IsDirty(); err == nil && dirty {
		logger.Warn("link repository has uncommitted changes", zap.String("repo", repoDir))
	}
	prefix, err := repo.LinkPrefix(v.GetString("link-repo-path"))
	if err != nil {
		return "", fmt.Errorf("deriving link prefix: %w", err)
	}
	logger.Debug("link prefix from repository", zap.String("prefix", prefix))
	return prefix, nil
}

// linkOverrides reads the link-overrides map. Viper lowercases map keys,
// so names are matched case-insensitively.
func linkOverrides(v *viper.Viper) (map[string]string, error) {
	raw := v.GetStringMapString("link-overrides")
	if len(raw) == 0 {
		return nil, nil
	}

	canonical := make(map[string]string)
	for _, n := range registry.Names() {
		canonical[strings.ToLower(n)] = n
	}

	out := make(map[string]string, len(raw))
	for k, u := range raw {
		name, ok := canonical[strings.ToLower(k)]
		if !ok {
			return nil, fmt.Errorf("link-overrides: %w", &registry.UnsupportedFilterError{Name: k})
		}
		out[name] = u
	}
	return out, nil
}

// writeOutput encodes data as JSON or YAML, or calls text for the text
// format.
func writeOutput(w io.Writer, format string, data any, text func(*display.Printer) error) error {
	switch format {
	case formatText:
		return text(display.NewPrinter(w))
	case formatJSON:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
