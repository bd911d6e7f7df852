// Package store defines the persistence contract shared by the local
// JSON-file engine and the Postgres client. Callers build an immutable
// Query value and hand it to an Executor; which implementation is active is
// decided once at startup, nothing else branches on it.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by single-row selects with no match and by
// deletes (and updates) whose filters matched zero rows. It travels as a
// sentinel so callers check it with errors.Is rather than catching a panic.
var ErrNotFound = errors.New("not found")

// Row is one flat stored record. The engine owns the id and the
// created_at/updated_at columns; callers never set them.
type Row map[string]interface{}

// ID returns the row's synthetic identifier, or "" if unset.
func (r Row) ID() string {
	id, _ := r["id"].(string)
	return id
}

// String returns a column as a string, or "" when absent or non-string.
func (r Row) String(col string) string {
	s, _ := r[col].(string)
	return s
}

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Executor runs one staged query against durable storage. Executions from a
// single caller are observed in the order issued; there is no coordination
// across concurrent processes.
type Executor interface {
	Execute(ctx context.Context, q Query) ([]Row, error)
}

// ExecuteSingle is a convenience for queries expected to yield exactly one
// row.
func ExecuteSingle(ctx context.Context, ex Executor, q Query) (Row, error) {
	rows, err := ex.Execute(ctx, q.Single())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}
