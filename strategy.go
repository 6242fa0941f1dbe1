package yesql

import (
	"fmt"
)

// A Strategy resolves a named query template and call arguments into a
// query that the backing dataset can execute. Every relation type
// carries exactly one strategy, supplied with the WithStrategy option at
// declaration time. If none is supplied, Passthrough is used.
//
// A strategy is only ever invoked by bound operations; it is never
// mutated. Any error it returns propagates unchanged to the caller of
// the operation.
type Strategy func(name string, template string, args []interface{}) (*Query, error)

// Passthrough is the default strategy. The template is already an
// executable parameterized query, so it is forwarded verbatim along with
// the call arguments.
func Passthrough(name string, template string, args []interface{}) (*Query, error) {
	return &Query{SQL: template, Args: args}, nil
}

// Format returns a strategy that resolves the template with
// fmt.Sprintf, consuming the call arguments as format operands. No
// arguments are passed through to the dataset.
//
// Format suits query sets that interpolate fragments (table names,
// order clauses) into the template. It is not suitable for
// interpolating untrusted values; use placeholder parameters and the
// Passthrough strategy for those.
func Format() Strategy {
	return func(name string, template string, args []interface{}) (*Query, error) {
		return &Query{SQL: fmt.Sprintf(template, args...)}, nil
	}
}

// ForDialect returns a strategy that rewrites the template's "?"
// placeholders into the dialect's placeholder form before forwarding the
// query. For dialects whose placeholder is "?" the template passes
// through unchanged.
//
// Question marks inside single-quoted SQL string literals are left
// alone.
func ForDialect(dialect Dialect) Strategy {
	return func(name string, template string, args []interface{}) (*Query, error) {
		return &Query{
			SQL:  replacePlaceholders(template, dialect),
			Args: args,
		}, nil
	}
}

// replacePlaceholders substitutes each "?" outside of quoted literals
// with the dialect's positional placeholder.
func replacePlaceholders(sql string, dialect Dialect) string {
	if dialect.Placeholder(1) == "?" {
		return sql
	}
	var buf []byte
	n := 0
	var quote rune
	for _, ch := range sql {
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
			buf = append(buf, string(ch)...)
		case ch == '\'' || ch == '"' || ch == '`':
			quote = ch
			buf = append(buf, string(ch)...)
		case ch == '?':
			n++
			buf = append(buf, dialect.Placeholder(n)...)
		default:
			buf = append(buf, string(ch)...)
		}
	}
	return string(buf)
}
