package store

import (
	"sort"

	sq "github.com/Masterminds/squirrel"
)

// buildSelectQuery renders q as a SELECT. A zero limit selects all rows.
func buildSelectQuery(builder sq.StatementBuilderType, q *Query, limit uint64) (string, []any, error) {
	columns := q.Columns()
	if len(columns) == 0 {
		columns = []string{"*"}
	}

	query := builder.Select(columns...).From(q.Table())
	for _, f := range q.Filters() {
		query = query.Where(sq.Eq{f.Column: f.Value})
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	return query.ToSql()
}

func buildInsertQuery(builder sq.StatementBuilderType, table string, record Record) (string, []any, error) {
	columns := sortedColumns(record)
	values := make([]any, 0, len(columns))
	for _, column := range columns {
		values = append(values, sqlValue(record[column]))
	}

	return builder.Insert(table).Columns(columns...).Values(values...).ToSql()
}

func buildUpdateQuery(builder sq.StatementBuilderType, q *Query, values Record) (string, []any, error) {
	query := builder.Update(q.Table())
	for _, column := range sortedColumns(values) {
		query = query.Set(column, sqlValue(values[column]))
	}
	for _, f := range q.Filters() {
		query = query.Where(sq.Eq{f.Column: f.Value})
	}

	return query.ToSql()
}

func buildDeleteQuery(builder sq.StatementBuilderType, q *Query) (string, []any, error) {
	query := builder.Delete(q.Table())
	for _, f := range q.Filters() {
		query = query.Where(sq.Eq{f.Column: f.Value})
	}

	return query.ToSql()
}

// sortedColumns keeps generated SQL stable across runs.
func sortedColumns(record Record) []string {
	columns := make([]string, 0, len(record))
	for column := range record {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	return columns
}
