// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterClass_String(t *testing.T) {
	assert.Equal(t, "DefaultScripts", DefaultScripts.String())
	assert.Equal(t, "ServiceStackScripts", ServiceStackScripts.String())
	assert.Equal(t, "Unknown", FilterClass(99).String())
	assert.Equal(t, "Unknown", FilterClass(-1).String())
}

func TestFilterClasses_DeclarationOrder(t *testing.T) {
	classes := FilterClasses()
	assert.Len(t, classes, 9)
	for i, c := range classes {
		assert.Equal(t, FilterClass(i), c)
		assert.True(t, c.Valid())
	}
}

func TestSourceLink_HTML(t *testing.T) {
	l := SourceLink{URL: "https://example.com/a.cs", Label: "HtmlScripts.src"}
	assert.Equal(t, "<a href='https://example.com/a.cs'>HtmlScripts.src</a>", l.HTML())
}

func TestSourceLink_HTMLEscapes(t *testing.T) {
	l := SourceLink{URL: "https://example.com/?a=1&b='x'", Label: "<X>"}
	got := l.HTML()
	assert.Contains(t, got, "a=1&amp;b=&#39;x&#39;")
	assert.Contains(t, got, "&lt;X&gt;")
}
