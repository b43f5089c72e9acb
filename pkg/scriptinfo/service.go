// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scriptinfo

import (
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/petar-djukic/script-info/internal/introspect"
	"github.com/petar-djukic/script-info/internal/links"
	"github.com/petar-djukic/script-info/internal/registry"
	"github.com/petar-djukic/script-info/internal/scripts"
	"github.com/petar-djukic/script-info/internal/signature"
	"github.com/petar-djukic/script-info/pkg/types"
)

// Service answers source link and method listing queries. It is safe for
// concurrent use.
type Service struct {
	links  *links.Resolver
	intro  *introspect.Introspector
	logger *zap.Logger
}

// New validates cfg and returns a Service over the built-in filter
// classes. Their source is parsed once here.
func New(cfg Config) (*Service, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	applyDefaults(&cfg)

	desc, err := scripts.Descriptor(cfg.Concurrency)
	if err != nil {
		return nil, fmt.Errorf("loading filter classes: %w", err)
	}
	cfg.Logger.Debug("filter classes loaded",
		zap.Int("types", len(desc.Table().Structs())),
		zap.Int("methods", desc.Table().Len()))

	return newService(cfg, desc), nil
}

// NewWithDescriptor is like New but introspects through desc instead of
// the built-in source.
func NewWithDescriptor(cfg Config, desc types.TypeDescriptor) (*Service, error) {
	if desc == nil {
		return nil, fmt.Errorf("%w: descriptor is required", ErrInvalidConfig)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	applyDefaults(&cfg)
	return newService(cfg, desc), nil
}

func newService(cfg Config, desc types.TypeDescriptor) *Service {
	// Names were checked by validateConfig.
	overrides := make(map[types.FilterClass]string, len(cfg.LinkOverrides))
	for name, u := range cfg.LinkOverrides {
		c, _ := registry.Resolve(name)
		overrides[c] = u
	}

	return &Service{
		links:  links.NewResolver(links.Options{Prefix: cfg.LinkPrefix, Overrides: overrides}),
		intro:  introspect.New(desc),
		logger: cfg.Logger,
	}
}

// SourceLink returns the link to the source of the named filter class.
func (s *Service) SourceLink(name string) (types.SourceLink, error) {
	c, err := registry.Resolve(name)
	if err != nil {
		return types.SourceLink{}, err
	}
	link := s.links.Resolve(c)
	s.logger.Debug("source link", zap.String("filter", name), zap.String("url", link.URL))
	return link, nil
}

// MethodsAvailable lists the script operations of the named filter class
// ordered by name, then by parameter count. Each call returns a new slice.
func (s *Service) MethodsAvailable(name string) ([]types.MethodInfo, error) {
	c, err := registry.Resolve(name)
	if err != nil {
		return nil, err
	}
	infos := signature.Describe(s.intro.ListCallables(c))
	s.logger.Debug("methods available", zap.String("filter", name), zap.Int("count", len(infos)))
	return infos, nil
}

// Filters returns the known filter names in declaration order.
func (s *Service) Filters() []string {
	return registry.Names()
}

// LinkPrefix returns the base URL used for classes without their own link.
func (s *Service) LinkPrefix() string {
	return s.links.Prefix()
}

// validateConfig checks the optional fields that are set.
func validateConfig(cfg Config) error {
	if cfg.Concurrency < 0 {
		return fmt.Errorf("Concurrency must not be negative, got %d", cfg.Concurrency)
	}
	if cfg.LinkPrefix != "" {
		if err := checkURL(cfg.LinkPrefix); err != nil {
			return fmt.Errorf("LinkPrefix: %w", err)
		}
	}
	for name, u := range cfg.LinkOverrides {
		if _, err := registry.Resolve(name); err != nil {
			return fmt.Errorf("LinkOverrides: %w", err)
		}
		if err := checkURL(u); err != nil {
			return fmt.Errorf("LinkOverrides[%s]: %w", name, err)
		}
	}
	return nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not an absolute URL", raw)
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
}
