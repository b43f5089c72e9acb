// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package registry maps logical filter names to filter classes.
package registry

import (
	"errors"
	"fmt"

	"github.com/petar-djukic/script-info/pkg/types"
)

// ErrUnsupportedFilter groups every UnsupportedFilterError for errors.Is.
var ErrUnsupportedFilter = errors.New("unsupported filter")

// UnsupportedFilterError is returned when a logical name does not match
// any known filter class.
type UnsupportedFilterError struct {
	Name string
}

func (e *UnsupportedFilterError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnsupportedFilter, e.Name)
}

// Is reports whether target is ErrUnsupportedFilter.
func (e *UnsupportedFilterError) Is(target error) bool {
	return target == ErrUnsupportedFilter
}

// byName is built once from the closed FilterClass set and never written.
var byName = func() map[string]types.FilterClass {
	m := make(map[string]types.FilterClass)
	for _, c := range types.FilterClasses() {
		m[c.String()] = c
	}
	return m
}()

// Resolve returns the filter class registered under name. Names are the
// Go type names of the classes and are matched case-sensitively.
func Resolve(name string) (types.FilterClass, error) {
	c, ok := byName[name]
	if !ok {
		return 0, &UnsupportedFilterError{Name: name}
	}
	return c, nil
}

// Names returns the known logical names in declaration order.
func Names() []string {
	classes := types.FilterClasses()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}
