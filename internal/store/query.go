// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
)

// Record maps column names to values for inserts and updates.
type Record map[string]any

// Filter is an equality condition on a single column.
type Filter struct {
	Column string
	Value  any
}

// Query selects rows of a single table. All filters must hold (AND).
type Query struct {
	table   string
	columns []string
	filters []Filter
}

// From starts a query on table selecting all columns.
func From(table string) *Query {
	return &Query{table: table}
}

// Select restricts the returned columns.
func (q *Query) Select(columns ...string) *Query {
	q.columns = append(q.columns, columns...)
	return q
}

// Eq adds the condition column = value.
func (q *Query) Eq(column string, value any) *Query {
	q.filters = append(q.filters, Filter{Column: column, Value: value})
	return q
}

func (q *Query) Table() string {
	return q.table
}

// Columns returns the selected columns, or nil for all columns.
func (q *Query) Columns() []string {
	return q.columns
}

func (q *Query) Filters() []Filter {
	return q.filters
}

// singleRowProbe is the row limit used by SelectOne: enough to tell one row
// from several without reading the whole result.
const singleRowProbe = 2

// decodeRows decodes a JSON array of rows into dest.
func decodeRows(data []byte, dest any) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingRows, err)
	}
	return nil
}

// decodeSingleRow decodes the only element of a JSON array of rows into dest.
func decodeSingleRow(data []byte, dest any) error {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingRows, err)
	}

	switch len(rows) {
	case 0:
		return ErrNoRowsFound
	case 1:
		return decodeRows(rows[0], dest)
	default:
		return ErrMultipleRowsFound
	}
}
