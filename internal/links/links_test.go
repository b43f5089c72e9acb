// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package links

import (
	"strings"
	"testing"

	"github.com/petar-djukic/script-info/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestResolve_DefaultScriptsUsesPrefix(t *testing.T) {
	r := NewResolver(Options{})
	link := r.Resolve(types.DefaultScripts)
	assert.Equal(t, DefaultPrefix, link.URL)
	assert.Equal(t, "DefaultScripts.src", link.Label)
}

func TestResolve_SharedPrefixClasses(t *testing.T) {
	r := NewResolver(Options{})
	assert.Equal(t, DefaultPrefix+"HtmlScripts.cs", r.Resolve(types.HtmlScripts).URL)
	assert.Equal(t, DefaultPrefix+"ProtectedScripts.cs", r.Resolve(types.ProtectedScripts).URL)
}

func TestResolve_HostedClasses(t *testing.T) {
	r := NewResolver(Options{})
	assert.Equal(t,
		"https://github.com/ServiceStack/ServiceStack.Redis/blob/master/src/ServiceStack.Redis/RedisScripts.cs",
		r.Resolve(types.RedisScripts).URL)
	assert.Equal(t,
		"https://github.com/ServiceStack/ServiceStack.OrmLite/tree/master/src/ServiceStack.OrmLite/DbScriptsAsync.cs",
		r.Resolve(types.DbScriptsAsync).URL)
	assert.Equal(t,
		"https://github.com/ServiceStack/ServiceStack/blob/master/src/ServiceStack.Server/AutoQueryScripts.cs",
		r.Resolve(types.AutoQueryScripts).URL)
}

func TestResolve_EveryClassHasLink(t *testing.T) {
	r := NewResolver(Options{})
	for _, c := range types.FilterClasses() {
		link := r.Resolve(c)
		assert.True(t, strings.HasPrefix(link.URL, "https://"), c.String())
		assert.Equal(t, c.String()+".src", link.Label)
	}
}

func TestResolve_UnknownClassFallsBack(t *testing.T) {
	r := NewResolver(Options{})
	assert.Equal(t, DefaultPrefix, r.Resolve(types.FilterClass(42)).URL)
}

func TestResolve_CustomPrefix(t *testing.T) {
	prefix := "https://github.com/acme/scripts/blob/main/methods/"
	r := NewResolver(Options{Prefix: prefix})

	assert.Equal(t, prefix, r.Resolve(types.DefaultScripts).URL)
	assert.Equal(t, prefix+"HtmlScripts.cs", r.Resolve(types.HtmlScripts).URL)
	// Hosted classes keep their own URLs.
	assert.Contains(t, r.Resolve(types.InfoScripts).URL, "ServiceStack/InfoScripts.cs")
	assert.Equal(t, prefix, r.Prefix())
}

func TestResolve_Overrides(t *testing.T) {
	r := NewResolver(Options{Overrides: map[types.FilterClass]string{
		types.RedisScripts:   "https://example.com/redis.go",
		types.DefaultScripts: "https://example.com/default.go",
	}})

	assert.Equal(t, "https://example.com/redis.go", r.Resolve(types.RedisScripts).URL)
	assert.Equal(t, "https://example.com/default.go", r.Resolve(types.DefaultScripts).URL)
	assert.Equal(t, "RedisScripts.src", r.Resolve(types.RedisScripts).Label)
}
