// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scripts

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// HtmlScripts renders HTML fragments.
type HtmlScripts struct {
	ScriptMethods
}

// HTMLEncode escapes text for use in HTML.
func (h *HtmlScripts) HTMLEncode(text string) string { return html.EscapeString(text) }

// HTMLDecode reverses HTMLEncode.
func (h *HtmlScripts) HTMLDecode(text string) string { return html.UnescapeString(text) }

// HTMLClass joins the names whose flag is true, sorted, into a class
// attribute value.
func (h *HtmlScripts) HTMLClass(classes map[string]bool) string {
	var names []string
	for name, on := range classes {
		if on {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

// HTMLAttrs renders attrs as escaped key='value' pairs in key order.
func (h *HtmlScripts) HTMLAttrs(attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s='%s'", html.EscapeString(k), html.EscapeString(attrs[k]))
	}
	return sb.String()
}

// HTMLLink renders an anchor to href with escaped text.
func (h *HtmlScripts) HTMLLink(href, text string) string {
	return fmt.Sprintf("<a href='%s'>%s</a>", html.EscapeString(href), html.EscapeString(text))
}

// HTMLList renders items as an unordered list.
func (h *HtmlScripts) HTMLList(items []string) string {
	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, item := range items {
		sb.WriteString("<li>" + html.EscapeString(item) + "</li>")
	}
	sb.WriteString("</ul>")
	return sb.String()
}
