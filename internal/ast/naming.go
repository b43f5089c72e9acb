// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import "unicode"

// ScriptName converts an exported Go method name to the lower camel form
// used inside scripts. A leading acronym is lowered as a whole:
// "Now" -> "now", "HTMLEncode" -> "htmlEncode", "ID" -> "id".
func ScriptName(goName string) string {
	runes := []rune(goName)

	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	if n == 0 {
		return goName
	}
	// The last capital of an acronym starts the next word.
	if n > 1 && n < len(runes) && unicode.IsLower(runes[n]) {
		n--
	}

	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
