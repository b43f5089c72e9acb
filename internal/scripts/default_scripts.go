// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scripts

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// DefaultScripts is the general purpose library available to every page.
type DefaultScripts struct {
	ScriptMethods
}

// String names the class.
func (d *DefaultScripts) String() string { return "DefaultScripts" }

// Add returns a + b.
func (d *DefaultScripts) Add(a, b float64) float64 { return a + b }

// Subtract returns a - b.
func (d *DefaultScripts) Subtract(a, b float64) float64 { return a - b }

// Multiply returns a * b.
func (d *DefaultScripts) Multiply(a, b float64) float64 { return a * b }

// Divide fails on a zero divisor.
func (d *DefaultScripts) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("divide %v by zero", a)
	}
	return a / b, nil
}

// Now returns the current local time.
func (d *DefaultScripts) Now() time.Time { return time.Now() }

// UtcNow returns the current time in UTC.
func (d *DefaultScripts) UtcNow() time.Time { return time.Now().UTC() }

// Trim removes leading and trailing white space.
func (d *DefaultScripts) Trim(text string) string { return strings.TrimSpace(text) }

// Upper converts text to upper case.
func (d *DefaultScripts) Upper(text string) string { return strings.ToUpper(text) }

// Lower converts text to lower case.
func (d *DefaultScripts) Lower(text string) string { return strings.ToLower(text) }

// Substring returns at most length runes of text starting at startIndex.
// Out of range bounds are clamped.
func (d *DefaultScripts) Substring(text string, startIndex, length int) string {
	runes := []rune(text)
	if startIndex < 0 {
		startIndex = 0
	}
	if startIndex >= len(runes) || length <= 0 {
		return ""
	}
	if length > len(runes)-startIndex {
		length = len(runes) - startIndex
	}
	return string(runes[startIndex : startIndex+length])
}

// Split slices text around each delimiter.
func (d *DefaultScripts) Split(text, delimiter string) []string {
	return strings.Split(text, delimiter)
}

// Join concatenates values with delimiter between them.
func (d *DefaultScripts) Join(values []string, delimiter string) string {
	return strings.Join(values, delimiter)
}

// Contains reports whether needle occurs in text.
func (d *DefaultScripts) Contains(text, needle string) bool {
	return strings.Contains(text, needle)
}

// Length reports the number of elements of a string, slice, array or map.
// Other values have length 0.
func (d *DefaultScripts) Length(target any) int {
	v := reflect.ValueOf(target)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return v.Len()
	default:
		return 0
	}
}

// Default returns defaultValue when value is nil or the zero value.
func (d *DefaultScripts) Default(value, defaultValue any) any {
	if value == nil || reflect.ValueOf(value).IsZero() {
		return defaultValue
	}
	return value
}

// Assign stores value under name in the invocation arguments.
func (d *DefaultScripts) Assign(scope *ScriptScopeContext, name string, value any) any {
	if scope.Args == nil {
		scope.Args = make(map[string]any)
	}
	scope.Args[name] = value
	return value
}

// Echo writes value to the invocation output.
func (d *DefaultScripts) Echo(scope *ScriptScopeContext, value any) (StopExecution, error) {
	_, err := fmt.Fprint(scope.Out, value)
	return StopExecution{}, err
}

// End stops the pipeline without output.
func (d *DefaultScripts) End() StopExecution { return StopExecution{} }
