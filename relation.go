package yesql

import (
	"database/sql"
)

// A Relation wraps the rows returned by a dataset read. It exists so
// that every bound operation has the same result shape; it adds no
// behaviour of its own beyond delegating to the wrapped rows.
//
// The caller owns the relation and should close it when finished:
//
//	rel, err := users.Call(ctx, "active")
//	if err != nil {
//	    return err
//	}
//	defer rel.Close()
//	for rel.Next() {
//	    // rel.Scan(...)
//	}
type Relation struct {
	rows *sql.Rows
}

// WrapRelation wraps rows in a Relation. No validation is performed.
func WrapRelation(rows *sql.Rows) *Relation {
	return &Relation{rows: rows}
}

// Rows returns the wrapped rows.
func (r *Relation) Rows() *sql.Rows {
	return r.rows
}

// Next prepares the next result row for reading with Scan.
func (r *Relation) Next() bool {
	return r.rows.Next()
}

// Scan copies the columns in the current row into the values pointed at
// by dest.
func (r *Relation) Scan(dest ...interface{}) error {
	return r.rows.Scan(dest...)
}

// Columns returns the column names of the result.
func (r *Relation) Columns() ([]string, error) {
	return r.rows.Columns()
}

// Err returns the error, if any, that was encountered during iteration.
func (r *Relation) Err() error {
	return r.rows.Err()
}

// Close closes the wrapped rows.
func (r *Relation) Close() error {
	return r.rows.Close()
}
