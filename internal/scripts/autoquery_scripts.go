// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scripts

import (
	"fmt"
	"sort"
	"strings"
)

// QueryRequest is a query built up by AutoQueryScripts operations.
type QueryRequest struct {
	From    string
	Where   map[string]any
	OrderBy []string
	Skip    int
	Take    int
}

// AutoQueryScripts composes queries against a data model.
type AutoQueryScripts struct {
	ScriptMethods
}

// AutoQuery starts a query over dataModel.
func (a *AutoQueryScripts) AutoQuery(dataModel string) *QueryRequest {
	return &QueryRequest{From: dataModel, Where: map[string]any{}}
}

// QueryWhere adds an equality condition on field.
func (a *AutoQueryScripts) QueryWhere(q *QueryRequest, field string, value any) *QueryRequest {
	if q.Where == nil {
		q.Where = map[string]any{}
	}
	q.Where[field] = value
	return q
}

// QueryOrderBy appends sort fields. Prefix a field with "-" to sort descending.
func (a *AutoQueryScripts) QueryOrderBy(q *QueryRequest, fields ...string) *QueryRequest {
	q.OrderBy = append(q.OrderBy, fields...)
	return q
}

// QuerySkip sets the number of rows to skip.
func (a *AutoQueryScripts) QuerySkip(q *QueryRequest, n int) *QueryRequest {
	q.Skip = n
	return q
}

// QueryTake limits the number of rows returned.
func (a *AutoQueryScripts) QueryTake(q *QueryRequest, n int) *QueryRequest {
	q.Take = n
	return q
}

// ToSQL renders q as a parameterized SELECT. Conditions are emitted in
// field order and a leading "-" on an order field sorts descending.
func (a *AutoQueryScripts) ToSQL(q *QueryRequest) (string, []any) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT * FROM %s", q.From)

	fields := make([]string, 0, len(q.Where))
	for f := range q.Where {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	args := make([]any, 0, len(fields))
	for i, f := range fields {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, q.Where[f])
		fmt.Fprintf(&sb, "%s = $%d", f, len(args))
	}

	if len(q.OrderBy) > 0 {
		order := make([]string, len(q.OrderBy))
		for i, f := range q.OrderBy {
			if name, ok := strings.CutPrefix(f, "-"); ok {
				order[i] = name + " DESC"
			} else {
				order[i] = f
			}
		}
		sb.WriteString(" ORDER BY " + strings.Join(order, ", "))
	}
	if q.Take > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", q.Take)
	}
	if q.Skip > 0 {
		fmt.Fprintf(&sb, " OFFSET %d", q.Skip)
	}
	return sb.String(), args
}
