package yesql

import (
	"database/sql"
	"fmt"
	"strings"
)

// Dialect is an interface used to handle differences in SQL dialects.
// It is consumed by the ForDialect strategy.
type Dialect interface {
	// Name of the dialect.
	Name() string

	// Quote a table name or column name so that it does not clash
	// with any reserved words. The SQL-99 standard specifies double
	// quotes (eg "table_name"), but many dialects, including MySQL,
	// use the backtick (eg `table_name`). SQL Server uses square
	// brackets (eg [table_name]).
	//
	// Quote is for custom strategies that interpolate identifiers
	// into a template, typically combined with Format; the
	// strategies shipped with this package only use Placeholder.
	Quote(name string) string

	// Placeholder returns the placeholder for binding a variable
	// value. Most SQL dialects support a single question mark (?),
	// but PostgreSQL uses numbered placeholders (eg $1).
	Placeholder(n int) string
}

// Pre-defined dialects.
var (
	Postgres Dialect // Quote: "name", Placeholders: $1, $2, $3
	MySQL    Dialect // Quote: `name`, Placeholders: ?, ?, ?
	SQLite   Dialect // Quote: `name`, Placeholders: ?, ?, ?
	MSSQL    Dialect // Quote: [name], Placeholders: ?, ?, ?
	ANSISQL  Dialect // Quote: "name", Placeholders: ?, ?, ?
)

var dialects map[string]*dialectT

func init() {
	dialects = make(map[string]*dialectT)
	for _, d := range []*dialectT{
		{
			name:      "mysql",
			quoteFunc: quoteFunc("`", "`"),
		},
		{
			name:      "sqlite",
			altnames:  []string{"sqlite3"},
			quoteFunc: quoteFunc("`", "`"),
		},
		{
			name:      "mssql",
			quoteFunc: quoteFunc("[", "]"),
		},
		{
			name:            "postgres",
			altnames:        []string{"pq", "postgresql"},
			quoteFunc:       quoteFunc(`"`, `"`),
			placeholderFunc: placeholderFunc("$%d"),
		},
		{
			name:      "ansi",
			quoteFunc: quoteFunc(`"`, `"`),
		},
	} {
		dialects[d.name] = d
		for _, altname := range d.altnames {
			dialects[altname] = d
		}
	}

	Postgres = dialects["postgres"]
	MySQL = dialects["mysql"]
	SQLite = dialects["sqlite"]
	MSSQL = dialects["mssql"]
	ANSISQL = dialects["ansi"]
}

// DialectFor returns the dialect for the specified database driver name.
// If name is blank, then the dialect returned is for the first driver
// returned by sql.Drivers(). If the driver name is unknown, the ANSI
// dialect is returned.
//
// Many programs load only one database driver, and for those programs
// DialectFor("") is the correct choice.
func DialectFor(name string) Dialect {
	if name == "" {
		if drivers := sql.Drivers(); len(drivers) > 0 {
			name = drivers[0]
		}
	}
	name = strings.TrimSpace(strings.ToLower(name))
	if d, ok := dialects[name]; ok {
		return d
	}
	return ANSISQL
}

// dialectT implements the Dialect interface.
type dialectT struct {
	name            string
	altnames        []string
	quoteFunc       func(name string) string
	placeholderFunc func(n int) string
}

func (d *dialectT) Name() string {
	return d.name
}

func (d *dialectT) Quote(name string) string {
	if d.quoteFunc == nil {
		return name
	}
	return d.quoteFunc(name)
}

func (d *dialectT) Placeholder(n int) string {
	if d.placeholderFunc == nil {
		return "?"
	}
	return d.placeholderFunc(n)
}

func quoteFunc(begin string, end string) func(name string) string {
	return func(name string) string {
		var names []string
		for _, n := range strings.Split(name, ".") {
			n = strings.TrimLeft(n, "\"`[ \t"+begin)
			n = strings.TrimRight(n, "\"`] \t"+end)
			names = append(names, begin+n+end)
		}
		return strings.Join(names, ".")
	}
}

func placeholderFunc(format string) func(n int) string {
	return func(n int) string {
		return fmt.Sprintf(format, n)
	}
}
