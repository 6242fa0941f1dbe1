package yesql

// A QueryTemplate is an immutable named query definition. The SQL text is
// opaque to this package: it is stored at load time and handed, unparsed,
// to the relation type's execution strategy at call time.
type QueryTemplate struct {
	// Name identifies the query within its dataset. It becomes the
	// name of the operation bound on relation types declared for
	// that dataset.
	Name string

	// SQL is the unresolved query text.
	SQL string
}

// Definitions is the input to Registry.Load: a mapping of dataset
// identifier to query name to query text.
//
// Definitions are typically produced by a loader (see package queryfile),
// but any code that can build the nested map can populate a registry:
//
//	defs := yesql.Definitions{
//	    "users": {
//	        "active": "select * from users where deleted_at is null",
//	        "by_id":  "select * from users where id = ?",
//	    },
//	}
type Definitions map[string]map[string]string

// validate reports the first problem found with the definitions, or nil.
// Load relies on this running before any state is modified, so that a
// malformed input never results in a partially applied snapshot.
func (d Definitions) validate() error {
	for dataset, queries := range d {
		if dataset == "" {
			return newError("dataset identifier cannot be blank")
		}
		for name := range queries {
			if name == "" {
				return newError("query name cannot be blank: dataset=%s", dataset)
			}
		}
	}
	return nil
}
