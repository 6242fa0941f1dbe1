package yesql

import (
	"sync"

	"github.com/jjeffery/kv"
)

// A Registry is a store of named query templates, grouped by dataset
// identifier. It is populated by Load, usually once during program
// initialization, and is read-only afterwards from the point of view of
// relation types: binding reads the snapshot that is current at
// declaration time, and later loads never rebind existing relation types.
//
// The zero value is an empty registry ready for use.
type Registry struct {
	mu       sync.RWMutex
	datasets map[string]map[string]QueryTemplate
}

// NewRegistry returns a new, empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Load replaces the registry's entire contents with defs. The previous
// snapshot is discarded: there is no merging of datasets or queries
// across loads.
//
// Load is atomic. The input is validated in full before any state is
// modified, and if validation fails the previous snapshot is retained
// untouched. Loading the same definitions twice yields an observably
// identical registry.
func (r *Registry) Load(defs Definitions) error {
	if err := defs.validate(); err != nil {
		return kv.Wrap(err, "cannot load query definitions")
	}

	// Build the snapshot fully before taking the lock. Readers only
	// ever observe a complete snapshot.
	datasets := make(map[string]map[string]QueryTemplate, len(defs))
	for dataset, queries := range defs {
		templates := make(map[string]QueryTemplate, len(queries))
		for name, sql := range queries {
			templates[name] = QueryTemplate{Name: name, SQL: sql}
		}
		datasets[dataset] = templates
	}

	r.mu.Lock()
	r.datasets = datasets
	r.mu.Unlock()
	return nil
}

// QueriesFor returns the query templates registered for the dataset,
// keyed by query name. The returned map is a copy: the caller can modify
// it without affecting the registry.
//
// An unknown dataset identifier is not an error; it returns an empty map.
func (r *Registry) QueriesFor(dataset string) map[string]QueryTemplate {
	r.mu.RLock()
	templates := r.datasets[dataset]
	queries := make(map[string]QueryTemplate, len(templates))
	for name, tmpl := range templates {
		queries[name] = tmpl
	}
	r.mu.RUnlock()
	return queries
}
