package yesql

import (
	"errors"
	"fmt"

	"github.com/jjeffery/kv"
)

// ErrOperationNotFound is the sentinel matched by errors.Is when an
// operation name was never bound on a relation type.
var ErrOperationNotFound = errors.New("operation not found")

// An OperationNotFoundError is returned by Call when the operation name
// was never bound on the relation type. It matches ErrOperationNotFound
// with errors.Is.
type OperationNotFoundError struct {
	Relation  string
	Operation string
}

func (e *OperationNotFoundError) Error() string {
	keyvals := []interface{}{
		"relation", e.Relation,
		"operation", e.Operation,
	}
	return "operation not found " + kv.List(keyvals).String()
}

func (e *OperationNotFoundError) Unwrap() error {
	return ErrOperationNotFound
}

type bindError string

func newError(format string, args ...interface{}) bindError {
	msg := fmt.Sprintf(format, args...)
	return bindError(msg)
}

func (e bindError) Error() string {
	return string(e)
}
