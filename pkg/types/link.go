// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"fmt"
	"html"
)

// SourceLink points at the source file that defines a filter class.
type SourceLink struct {
	URL   string `json:"url" yaml:"url"`     // Canonical URL of the source
	Label string `json:"label" yaml:"label"` // Display text, "{ClassName}.src"
}

// HTML renders the link as an anchor element.
func (l SourceLink) HTML() string {
	return fmt.Sprintf("<a href='%s'>%s</a>", html.EscapeString(l.URL), html.EscapeString(l.Label))
}
