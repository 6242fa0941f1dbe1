package yesql

import (
	"context"
	"database/sql"
)

// The Querier interface defines the SQL database access method used by
// this package.
//
// The *DB, *Tx and *Conn types in the standard library package
// "database/sql" all implement this interface.
type Querier interface {
	// QueryContext executes a query that returns rows, typically a
	// SELECT. The args are for any placeholder parameters in the
	// query.
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

var (
	_ Querier = &sql.DB{}
	_ Querier = &sql.Tx{}
	_ Querier = &sql.Conn{}
)

// A Dataset is the read capability backing a relation type. Every bound
// operation resolves its query template through the relation type's
// strategy and passes the result to Read. The result of Read is wrapped
// in a Relation and returned to the caller without inspection.
//
// Connection management, cancellation and timeouts belong to the Dataset
// implementation; this package never recovers from a Read failure.
type Dataset interface {
	Read(ctx context.Context, query *Query) (*sql.Rows, error)
}

// SQLDataset adapts a Querier to the Dataset interface.
type SQLDataset struct {
	querier Querier
}

var _ Dataset = &SQLDataset{}

// NewSQLDataset returns a Dataset that reads by calling QueryContext on
// the querier.
func NewSQLDataset(querier Querier) *SQLDataset {
	if querier == nil {
		panic("querier cannot be nil")
	}
	return &SQLDataset{querier: querier}
}

// Read executes the resolved query against the underlying querier.
func (ds *SQLDataset) Read(ctx context.Context, query *Query) (*sql.Rows, error) {
	return ds.querier.QueryContext(ctx, query.SQL, query.Args...)
}
