// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-food-order/internal/logger"
)

// sqlClient implements [DataClient] on top of database/sql. Queries are
// rendered with squirrel in the placeholder format of the connected dialect
// and result rows are converted to JSON objects keyed by column name.
type sqlClient struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

func NewSQLClient(db *DB, log *logger.Logger) DataClient {
	return &sqlClient{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(db.placeholder),
		logger:  log,
	}
}

func (c *sqlClient) Select(ctx context.Context, q *Query, dest any) error {
	data, err := c.selectRows(ctx, q, 0)
	if err != nil {
		return err
	}

	return decodeRows(data, dest)
}

func (c *sqlClient) SelectOne(ctx context.Context, q *Query, dest any) error {
	data, err := c.selectRows(ctx, q, singleRowProbe)
	if err != nil {
		return err
	}

	return decodeSingleRow(data, dest)
}

func (c *sqlClient) Insert(ctx context.Context, table string, record Record) error {
	if len(record) == 0 {
		return ErrEmptyRecord
	}

	query, args, err := buildInsertQuery(c.builder, table, record)
	if err != nil {
		c.logger.Err(err).Str("func", "sqlClient.Insert").Str("table", table).Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.exec(ctx, "sqlClient.Insert", query, args)
}

func (c *sqlClient) Update(ctx context.Context, q *Query, values Record) error {
	if len(q.Filters()) == 0 {
		return ErrMissingFilter
	}
	if len(values) == 0 {
		return ErrEmptyRecord
	}

	query, args, err := buildUpdateQuery(c.builder, q, values)
	if err != nil {
		c.logger.Err(err).Str("func", "sqlClient.Update").Str("table", q.Table()).Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.exec(ctx, "sqlClient.Update", query, args)
}

func (c *sqlClient) Delete(ctx context.Context, q *Query) error {
	if len(q.Filters()) == 0 {
		return ErrMissingFilter
	}

	query, args, err := buildDeleteQuery(c.builder, q)
	if err != nil {
		c.logger.Err(err).Str("func", "sqlClient.Delete").Str("table", q.Table()).Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.exec(ctx, "sqlClient.Delete", query, args)
}

func (c *sqlClient) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *sqlClient) Close() error {
	return c.db.Close()
}

func (c *sqlClient) selectRows(ctx context.Context, q *Query, limit uint64) ([]byte, error) {
	query, args, err := buildSelectQuery(c.builder, q, limit)
	if err != nil {
		c.logger.Err(err).Str("func", "sqlClient.selectRows").Str("table", q.Table()).Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		c.logger.Err(err).Str("func", "sqlClient.selectRows").Str("table", q.Table()).Msg("error executing select query")
		return nil, driverError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	data, err := scanRowsToJSON(rows)
	if err != nil {
		c.logger.Err(err).Str("func", "sqlClient.selectRows").Str("table", q.Table()).Msg("error scanning rows")
		return nil, driverError(ErrScanningRows, err)
	}

	return data, nil
}

func (c *sqlClient) exec(ctx context.Context, funcName, query string, args []any) error {
	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).Str("func", funcName).Msg("error executing statement")
		return driverError(ErrExecutingStatement, err)
	}

	return nil
}

// driverError returns the database's own complaint as a *DataError and
// wraps everything else with sentinel.
func driverError(sentinel, err error) error {
	if dataErr := sqlDataError(err); dataErr != nil {
		return dataErr
	}

	return fmt.Errorf("%w: %w", sentinel, err)
}

// scanRowsToJSON reads every row into a column-keyed object and returns the
// rows as a JSON array.
func scanRowsToJSON(rows *sql.Rows) ([]byte, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err = rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(columns))
		for i, column := range columns {
			row[column] = columnValue(values[i])
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return json.Marshal(result)
}

// columnValue turns raw bytes (text, json and jsonb columns) into strings so
// they are not base64-encoded by encoding/json.
func columnValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// sqlValue converts raw JSON values into text, which both PostgreSQL json(b)
// and SQLite text columns accept.
func sqlValue(v any) any {
	if raw, ok := v.(json.RawMessage); ok {
		return string(raw)
	}
	return v
}
