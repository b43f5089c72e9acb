// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across script-info packages.
package types

// FilterClass identifies one of the built-in filter classes whose exported
// methods are callable from a script pipeline. The set is closed.
type FilterClass int

const (
	DefaultScripts      FilterClass = iota // Core value, string and math filters
	HtmlScripts                            // HTML encoding and markup helpers
	ProtectedScripts                       // File system and environment access
	InfoScripts                            // Host and runtime information
	RedisScripts                           // Redis commands
	DbScriptsAsync                         // SQL queries
	ValidateScripts                        // Value validation predicates
	AutoQueryScripts                       // Query string and result shaping
	ServiceStackScripts                    // Service gateway calls
)

// filterClassNames is indexed by FilterClass.
var filterClassNames = [...]string{
	DefaultScripts:      "DefaultScripts",
	HtmlScripts:         "HtmlScripts",
	ProtectedScripts:    "ProtectedScripts",
	InfoScripts:         "InfoScripts",
	RedisScripts:        "RedisScripts",
	DbScriptsAsync:      "DbScriptsAsync",
	ValidateScripts:     "ValidateScripts",
	AutoQueryScripts:    "AutoQueryScripts",
	ServiceStackScripts: "ServiceStackScripts",
}

// String returns the Go type name of the filter class.
func (c FilterClass) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return filterClassNames[c]
}

// Valid reports whether c is one of the known filter classes.
func (c FilterClass) Valid() bool {
	return c >= 0 && int(c) < len(filterClassNames)
}

// FilterClasses returns every known filter class in declaration order.
func FilterClasses() []FilterClass {
	classes := make([]FilterClass, len(filterClassNames))
	for i := range filterClassNames {
		classes[i] = FilterClass(i)
	}
	return classes
}
