package yesql

import (
	"context"
	"sort"
)

// A RelationType is a declared category of relation (eg "Users"). It is
// created by the Registry.RelationType method, which looks up the query
// templates registered for the relation's dataset identifier and builds
// one callable operation per template. The operation set is fixed at
// declaration time: queries loaded into the registry afterwards do not
// appear on an already-declared relation type (call Rebind to opt in to
// a newer snapshot).
//
// Two relation types declared for the same dataset identifier receive
// identical operation sets, though each may carry its own strategy.
type RelationType struct {
	name       string
	datasetID  string
	strategy   Strategy
	dataset    Dataset
	registry   *Registry
	operations map[string]operationFunc
}

// operationFunc is a bound operation: a closure captured over the query
// name, its template and the relation type's strategy and dataset.
type operationFunc func(ctx context.Context, args []interface{}) (*Relation, error)

// A RelationTypeOption provides optional configuration and is supplied
// when declaring a relation type.
type RelationTypeOption func(rt *RelationType)

// WithDatasetID sets the dataset identifier explicitly instead of
// deriving it from the relation type's name.
func WithDatasetID(datasetID string) RelationTypeOption {
	return func(rt *RelationType) {
		rt.datasetID = datasetID
	}
}

// WithStrategy sets the execution strategy used by every operation bound
// on the relation type. If not supplied, Passthrough is used.
func WithStrategy(strategy Strategy) RelationTypeOption {
	return func(rt *RelationType) {
		rt.strategy = strategy
	}
}

// WithConvention sets the naming convention used to derive the dataset
// identifier from the relation type's name. It has no effect if
// WithDatasetID is also supplied. If not supplied, SnakeCase is used,
// so a relation type named "UserAccounts" reads the "user_accounts"
// dataset.
func WithConvention(convention Convention) RelationTypeOption {
	return func(rt *RelationType) {
		if rt.datasetID == "" {
			rt.datasetID = convention.Convert(rt.name)
		}
	}
}

// RelationType declares a relation type backed by dataset and binds one
// operation per query registered under the relation's dataset
// identifier, as of the registry's current snapshot.
//
// The dataset identifier defaults to the snake_case conversion of name
// ("Users" reads the "users" dataset); it can be set explicitly with
// WithDatasetID or derived differently with WithConvention.
//
// An identifier with no registered queries is not an error: the relation
// type is declared with zero operations, and any Call on it returns
// ErrOperationNotFound.
func (r *Registry) RelationType(name string, dataset Dataset, opts ...RelationTypeOption) *RelationType {
	rt := &RelationType{
		name:     name,
		strategy: Passthrough,
		dataset:  dataset,
		registry: r,
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.datasetID == "" {
		rt.datasetID = SnakeCase.Convert(rt.name)
	}
	rt.operations = make(map[string]operationFunc)
	rt.bind(r.QueriesFor(rt.datasetID))
	return rt
}

// bind installs one operation per template. Installing an operation with
// the same name as an existing one replaces it.
func (rt *RelationType) bind(queries map[string]QueryTemplate) {
	for name, tmpl := range queries {
		rt.operations[name] = rt.makeOperation(name, tmpl)
	}
}

// makeOperation builds the closure dispatched for one bound operation.
// Failures from the strategy and from the dataset read propagate to the
// caller unchanged; nothing is recovered at this layer.
func (rt *RelationType) makeOperation(name string, tmpl QueryTemplate) operationFunc {
	strategy := rt.strategy
	dataset := rt.dataset
	return func(ctx context.Context, args []interface{}) (*Relation, error) {
		query, err := strategy(name, tmpl.SQL, args)
		if err != nil {
			return nil, err
		}
		rows, err := dataset.Read(ctx, query)
		if err != nil {
			return nil, err
		}
		return WrapRelation(rows), nil
	}
}

// Call invokes the named bound operation: the strategy resolves the
// operation's template with args, the resolved query is passed to the
// dataset's Read method, and the result is returned wrapped in a
// Relation.
//
// Calling a name that was never bound returns an error satisfying
// errors.Is(err, ErrOperationNotFound).
func (rt *RelationType) Call(ctx context.Context, name string, args ...interface{}) (*Relation, error) {
	op, ok := rt.operations[name]
	if !ok {
		return nil, &OperationNotFoundError{
			Relation:  rt.name,
			Operation: name,
		}
	}
	return op(ctx, args)
}

// Name returns the name the relation type was declared with.
func (rt *RelationType) Name() string {
	return rt.name
}

// DatasetID returns the dataset identifier the relation type is bound
// to. It is fixed at declaration time.
func (rt *RelationType) DatasetID() string {
	return rt.datasetID
}

// Operations returns the names of the bound operations in sorted order.
func (rt *RelationType) Operations() []string {
	names := make([]string, 0, len(rt.operations))
	for name := range rt.operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasOperation reports whether the named operation is bound.
func (rt *RelationType) HasOperation(name string) bool {
	_, ok := rt.operations[name]
	return ok
}

// Rebind rebuilds the operation table from the registry's current
// snapshot. Operations for queries that no longer exist are removed, and
// operations whose templates changed are replaced.
//
// Rebind is the explicit opt-in to a reloaded registry; it is part of
// the configuration phase and must not race with concurrent Call
// invocations.
func (rt *RelationType) Rebind() {
	rt.operations = make(map[string]operationFunc)
	rt.bind(rt.registry.QueriesFor(rt.datasetID))
}
