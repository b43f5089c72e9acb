// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package links resolves filter classes to the URL of their defining source.
package links

import "github.com/petar-djukic/script-info/pkg/types"

// DefaultPrefix is the source directory used for classes without an
// explicit URL.
const DefaultPrefix = "https://github.com/ServiceStack/ServiceStack/blob/master/src/ServiceStack.Common/Script/Methods/"

const (
	labelSuffix = ".src"
	sourceExt   = ".cs"
)

// hosted holds classes that live outside the default source directory.
var hosted = map[types.FilterClass]string{
	types.InfoScripts:         "https://github.com/ServiceStack/ServiceStack/blob/master/src/ServiceStack/InfoScripts.cs",
	types.RedisScripts:        "https://github.com/ServiceStack/ServiceStack.Redis/blob/master/src/ServiceStack.Redis/RedisScripts.cs",
	types.DbScriptsAsync:      "https://github.com/ServiceStack/ServiceStack.OrmLite/tree/master/src/ServiceStack.OrmLite/DbScriptsAsync.cs",
	types.ValidateScripts:     "https://github.com/ServiceStack/ServiceStack/blob/master/src/ServiceStack/ValidateScripts.cs",
	types.AutoQueryScripts:    "https://github.com/ServiceStack/ServiceStack/blob/master/src/ServiceStack.Server/AutoQueryScripts.cs",
	types.ServiceStackScripts: "https://github.com/ServiceStack/ServiceStack/blob/master/src/ServiceStack/ServiceStackScripts.cs",
}

// prefixed holds classes whose file sits directly under the prefix.
var prefixed = map[types.FilterClass]bool{
	types.HtmlScripts:      true,
	types.ProtectedScripts: true,
}

// Options configures a Resolver.
type Options struct {
	Prefix    string                       // Replaces DefaultPrefix when set
	Overrides map[types.FilterClass]string // Per-class URLs, consulted first
}

// Resolver maps filter classes to source links. It is read-only after
// construction and safe for concurrent use.
type Resolver struct {
	urls   map[types.FilterClass]string
	prefix string
}

// NewResolver builds the URL table for every known class.
func NewResolver(opts Options) *Resolver {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	urls := make(map[types.FilterClass]string, len(hosted)+len(prefixed))
	for c := range prefixed {
		urls[c] = prefix + c.String() + sourceExt
	}
	for c, u := range hosted {
		urls[c] = u
	}
	for c, u := range opts.Overrides {
		urls[c] = u
	}

	return &Resolver{urls: urls, prefix: prefix}
}

// Resolve returns the source link for c. Classes without a table entry,
// DefaultScripts among them, link to the prefix itself.
func (r *Resolver) Resolve(c types.FilterClass) types.SourceLink {
	url, ok := r.urls[c]
	if !ok {
		url = r.prefix
	}
	return types.SourceLink{URL: url, Label: c.String() + labelSuffix}
}

// Prefix returns the directory URL used as the fallback.
func (r *Resolver) Prefix() string {
	return r.prefix
}
