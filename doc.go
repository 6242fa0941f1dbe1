/*
Package yesql binds named SQL query templates to callable operations on
typed data-access handles, called relation types. Calling code invokes
plain operations (eg users.Call(ctx, "active")) instead of hand-writing
query strings at the call site.

This package is intended for programmers who are comfortable with
writing SQL and prefer to keep it in one place (a directory of .sql
files, a YAML document, a generated map) rather than scattered through
application code. It stores query text without parsing it, and it is
designed to work seamlessly with the standard library "database/sql"
package.

# Registry

The calling program loads query definitions into a registry, usually
during program initialization. Definitions are a nested mapping of
dataset identifier to query name to query text:

	registry := yesql.NewRegistry()
	err := registry.Load(yesql.Definitions{
	    "users": {
	        "active": "select * from users where deleted_at is null",
	        "by_id":  "select * from users where id = ?",
	    },
	})

Load replaces the registry's contents wholesale and is atomic: malformed
definitions are rejected without disturbing the previous contents.
Package queryfile provides loaders that build Definitions from a
directory tree of .sql files or from a YAML document.

# Relation types

A relation type is declared for a dataset identifier and receives one
operation per query registered under that identifier:

	users := registry.RelationType("Users", yesql.NewSQLDataset(db))

	rel, err := users.Call(ctx, "by_id", userID)
	if err != nil {
	    return err
	}
	defer rel.Close()
	for rel.Next() {
	    // rel.Scan(...)
	}

The dataset identifier defaults to the snake_case conversion of the
relation type's name ("Users" reads the "users" dataset). It can be set
explicitly with WithDatasetID, or derived with a different naming
convention using WithConvention.

The operation set is computed once, when the relation type is declared,
from the registry snapshot current at that moment. Queries loaded later
do not appear on an already-declared relation type; Rebind is the
explicit opt-in to a newer snapshot. Declaring a relation type for an
unknown dataset identifier is not an error: it simply binds nothing,
and calling any operation on it returns ErrOperationNotFound.

# Execution strategies

At call time an operation resolves its template through the relation
type's execution strategy, a function from (name, template, args) to an
executable query. The default strategy forwards the template and
arguments verbatim. A strategy can be supplied per relation type:

	reports := registry.RelationType("Reports", dataset,
	    yesql.WithStrategy(yesql.ForDialect(yesql.Postgres)),
	)

ForDialect rewrites "?" placeholders into the dialect's form (eg $1, $2
for PostgreSQL). Format resolves the template with fmt.Sprintf, for
query sets that interpolate fragments such as table names. Any function
with the right signature can serve as a strategy.

# Typed operation functions

For call sites that want a compile-time function value instead of a
name, BindFunc makes one:

	var activeUsers func(ctx context.Context, args ...interface{}) (*yesql.Relation, error)
	users.BindFunc("active", &activeUsers)

	rel, err := activeUsers(ctx)

# Concurrency

Loading the registry and declaring relation types belong to a
configuration phase that must complete before operations are dispatched
concurrently. Once loaded, the registry hands out snapshot copies and is
safe for concurrent reads; RelationType values are safe for concurrent
Call invocations provided Rebind is not called concurrently.
*/
package yesql
