// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scripts

import (
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ValidateScripts holds predicates used by declarative validation rules.
type ValidateScripts struct {
	ScriptMethods
}

// IsNotEmpty is false for nil, zero values and blank strings.
func (v *ValidateScripts) IsNotEmpty(value any) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return !reflect.ValueOf(value).IsZero()
}

// IsEmail reports whether value is a bare email address.
func (v *ValidateScripts) IsEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}

// IsURL reports whether value is an absolute URL with a host.
func (v *ValidateScripts) IsURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// IsNumeric reports whether value parses as a number.
func (v *ValidateScripts) IsNumeric(value string) bool {
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}

// Matches reports whether value matches the regular expression pattern.
func (v *ValidateScripts) Matches(value, pattern string) (bool, error) {
	return regexp.MatchString(pattern, value)
}

// ExactLength counts runes, not bytes.
func (v *ValidateScripts) ExactLength(value string, length int) bool {
	return utf8.RuneCountInString(value) == length
}

// MinLength reports whether value has at least length runes.
func (v *ValidateScripts) MinLength(value string, length int) bool {
	return utf8.RuneCountInString(value) >= length
}

// MaxLength reports whether value has at most length runes.
func (v *ValidateScripts) MaxLength(value string, length int) bool {
	return utf8.RuneCountInString(value) <= length
}

// InclusiveBetween reports whether from <= value <= to.
func (v *ValidateScripts) InclusiveBetween(value, from, to float64) bool {
	return value >= from && value <= to
}
