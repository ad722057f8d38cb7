// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func Test_buildSelectQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    *Query
		limit    uint64
		builder  sq.StatementBuilderType
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "all columns, no filter",
			query:   From("items"),
			builder: postgresBuilder,
			wantSQL: "SELECT * FROM items",
		},
		{
			name:     "columns and filter",
			query:    From("users").Select("id", "name", "email").Eq("id", int64(3)),
			builder:  postgresBuilder,
			wantSQL:  "SELECT id, name, email FROM users WHERE id = $1",
			wantArgs: []any{int64(3)},
		},
		{
			name:     "limit for single row",
			query:    From("users").Eq("email", "a@b.c"),
			limit:    singleRowProbe,
			builder:  postgresBuilder,
			wantSQL:  "SELECT * FROM users WHERE email = $1 LIMIT 2",
			wantArgs: []any{"a@b.c"},
		},
		{
			name:     "question placeholders",
			query:    From("orders").Eq("user_id", int64(1)).Eq("id", int64(2)),
			builder:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
			wantSQL:  "SELECT * FROM orders WHERE user_id = ? AND id = ?",
			wantArgs: []any{int64(1), int64(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectQuery(tt.builder, tt.query, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func Test_buildInsertQuery_SortsColumns(t *testing.T) {
	query, args, err := buildInsertQuery(postgresBuilder, "users", Record{
		"password": "hash",
		"name":     "John",
		"email":    "john@example.com",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO users (email,name,password)"), query)
	assert.Contains(t, query, "$3")
	assert.Equal(t, []any{"john@example.com", "John", "hash"}, args)
}

func Test_buildInsertQuery_RawJSONBecomesText(t *testing.T) {
	_, args, err := buildInsertQuery(postgresBuilder, "orders", Record{
		"user_id": int64(1),
		"items":   json.RawMessage(`[{"itemId":1}]`),
	})
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Equal(t, `[{"itemId":1}]`, args[0])
	assert.Equal(t, int64(1), args[1])
}

func Test_buildUpdateQuery(t *testing.T) {
	query, args, err := buildUpdateQuery(postgresBuilder, From("users").Eq("id", int64(9)), Record{"password": "new"})
	require.NoError(t, err)

	assert.Equal(t, "UPDATE users SET password = $1 WHERE id = $2", query)
	assert.Equal(t, []any{"new", int64(9)}, args)
}

func Test_buildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery(postgresBuilder, From("orders").Eq("id", int64(4)))
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM orders WHERE id = $1", query)
	assert.Equal(t, []any{int64(4)}, args)
}
