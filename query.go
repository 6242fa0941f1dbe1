package yesql

// A Query is a resolved query: the value produced by an execution
// strategy and accepted by a dataset's Read method. SQL holds the query
// text in whatever form the backing dataset expects, and Args holds the
// values for any placeholder parameters.
type Query struct {
	SQL  string
	Args []interface{}
}

// String returns the SQL text of the query.
func (q *Query) String() string {
	return q.SQL
}
