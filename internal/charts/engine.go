// Package charts composes the chart store, the query sanitizer and a
// database executor into the data-retrieval flow a dashboard calls into.
package charts

import (
	"context"
	"errors"

	"github.com/chartdeck/chartdeck/internal/query"
	"github.com/chartdeck/chartdeck/internal/store"
)

// Executor runs a sanitized read-only query with a named parameter map
// and returns the resulting rows. internal/db provides the PostgreSQL
// implementation; tests substitute fakes.
type Executor interface {
	Execute(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)
}

// Engine resolves chart definitions and executes their queries.
type Engine struct {
	Store *store.Store
	Exec  Executor
}

// NewEngine creates an engine over the given store and executor.
func NewEngine(s *store.Store, exec Executor) *Engine {
	return &Engine{Store: s, Exec: exec}
}

// Result is the outcome of a GetData call: the rows produced by the
// chart's query (empty when the chart has no executable query or the
// query returned nothing) and the parameter map the query ran with.
type Result struct {
	Data    []map[string]any `json:"data"`
	Filters map[string]any   `json:"filters"`
}

// GetData looks up a chart by id, falling back to a name lookup, and runs
// its query. Caller-supplied overrides win over the chart's declared
// defaults on key collision. A chart whose query is absent or fails
// sanitization yields empty data rather than an error.
func (e *Engine) GetData(ctx context.Context, idOrName string, overrides map[string]any) (Result, error) {
	chart, err := e.Store.FindOne(func(c store.Chart) bool { return c.ID == idOrName })
	if errors.Is(err, store.ErrNotFound) {
		chart, err = e.Store.FindOne(func(c store.Chart) bool { return c.Name == idOrName })
	}
	if err != nil {
		return Result{}, err
	}

	params := query.MergeParams(query.Defaults(chart.Vars), overrides)

	sql, ok := query.Sanitize(chart.Query)
	if !ok {
		return Result{Data: []map[string]any{}, Filters: params}, nil
	}

	rows, err := e.Exec.Execute(ctx, sql, params)
	if err != nil {
		return Result{}, err
	}
	if rows == nil {
		rows = []map[string]any{}
	}

	return Result{Data: rows, Filters: params}, nil
}
