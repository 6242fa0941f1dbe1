package yesql

import (
	"reflect"
	"strings"
	"testing"
)

func TestRegistryLoad(t *testing.T) {
	tests := []struct {
		defs    Definitions
		errText string
	}{
		{
			defs: Definitions{
				"users": {
					"active": "select * from users where deleted_at is null",
					"by_id":  "select * from users where id = ?",
				},
			},
		},
		{
			defs: Definitions{},
		},
		{
			defs: Definitions{
				"users": {},
			},
		},
		{
			defs: Definitions{
				"": {
					"active": "select 1",
				},
			},
			errText: `dataset identifier cannot be blank`,
		},
		{
			defs: Definitions{
				"users": {
					"": "select 1",
				},
			},
			errText: `query name cannot be blank: dataset=users`,
		},
	}

	for i, tt := range tests {
		registry := NewRegistry()
		err := registry.Load(tt.defs)
		if tt.errText != "" {
			if err == nil {
				t.Errorf("%d: want error %q, got nil", i, tt.errText)
				continue
			}
			if got, want := err.Error(), tt.errText; !strings.Contains(got, want) {
				t.Errorf("%d: want error containing %q, got %q", i, want, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d: want no error, got %v", i, err)
			continue
		}
		for dataset, queries := range tt.defs {
			registered := registry.QueriesFor(dataset)
			if got, want := len(registered), len(queries); got != want {
				t.Errorf("%d: dataset %q: want %d queries, got %d", i, dataset, want, got)
			}
			for name, sql := range queries {
				tmpl, ok := registered[name]
				if !ok {
					t.Errorf("%d: dataset %q: missing query %q", i, dataset, name)
					continue
				}
				if got, want := tmpl.SQL, sql; got != want {
					t.Errorf("%d: query %q: want=%q, got=%q", i, name, want, got)
				}
				if got, want := tmpl.Name, name; got != want {
					t.Errorf("%d: query %q: want name=%q, got=%q", i, name, want, got)
				}
			}
		}
	}
}

func TestRegistryLoadAtomic(t *testing.T) {
	registry := NewRegistry()
	good := Definitions{
		"users": {
			"active": "select * from users where deleted_at is null",
		},
	}
	if err := registry.Load(good); err != nil {
		t.Fatalf("load: %v", err)
	}
	before := registry.QueriesFor("users")

	bad := Definitions{
		"users": {
			"other": "select 1",
		},
		"": {
			"broken": "select 2",
		},
	}
	if err := registry.Load(bad); err == nil {
		t.Fatal("want error loading malformed definitions, got nil")
	}

	after := registry.QueriesFor("users")
	if !reflect.DeepEqual(before, after) {
		t.Errorf("registry changed by rejected load: before=%v after=%v", before, after)
	}
	if queries := registry.QueriesFor(""); len(queries) != 0 {
		t.Errorf("rejected load partially applied: %v", queries)
	}
}

func TestRegistryLoadReplaces(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Load(Definitions{
		"users": {
			"active": "select 1",
		},
	}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := registry.Load(Definitions{
		"reports": {
			"monthly": "select 2",
		},
	}); err != nil {
		t.Fatalf("load: %v", err)
	}

	// no merge with prior contents
	if queries := registry.QueriesFor("users"); len(queries) != 0 {
		t.Errorf("want users dataset gone after replace, got %v", queries)
	}
	if queries := registry.QueriesFor("reports"); len(queries) != 1 {
		t.Errorf("want 1 query for reports, got %v", queries)
	}
}

func TestRegistryLoadIdempotent(t *testing.T) {
	defs := Definitions{
		"users": {
			"active": "select * from users where deleted_at is null",
			"by_id":  "select * from users where id = ?",
		},
		"reports": {
			"monthly": "select * from reports",
		},
	}
	registry := NewRegistry()
	if err := registry.Load(defs); err != nil {
		t.Fatalf("load: %v", err)
	}
	first := map[string]map[string]QueryTemplate{
		"users":   registry.QueriesFor("users"),
		"reports": registry.QueriesFor("reports"),
	}
	if err := registry.Load(defs); err != nil {
		t.Fatalf("load: %v", err)
	}
	second := map[string]map[string]QueryTemplate{
		"users":   registry.QueriesFor("users"),
		"reports": registry.QueriesFor("reports"),
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("reload not idempotent: first=%v second=%v", first, second)
	}
}

func TestQueriesForUnknownDataset(t *testing.T) {
	registry := NewRegistry()
	queries := registry.QueriesFor("missing")
	if queries == nil {
		t.Fatal("want empty map for unknown dataset, got nil")
	}
	if len(queries) != 0 {
		t.Errorf("want no queries for unknown dataset, got %v", queries)
	}
}

func TestQueriesForReturnsCopy(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Load(Definitions{
		"users": {
			"active": "select 1",
		},
	}); err != nil {
		t.Fatalf("load: %v", err)
	}

	queries := registry.QueriesFor("users")
	queries["injected"] = QueryTemplate{Name: "injected", SQL: "drop table users"}
	delete(queries, "active")

	fresh := registry.QueriesFor("users")
	if _, ok := fresh["injected"]; ok {
		t.Error("mutating the returned map affected the registry")
	}
	if _, ok := fresh["active"]; !ok {
		t.Error("deleting from the returned map affected the registry")
	}
}
