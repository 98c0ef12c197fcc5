package charts

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/chartdeck/chartdeck/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	query  string
	params map[string]any
	rows   []map[string]any
	err    error
	calls  int
}

func (f *fakeExecutor) Execute(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	f.calls++
	f.query = query
	f.params = params
	return f.rows, f.err
}

func newTestEngine(t *testing.T, charts []store.Chart, exec *fakeExecutor) *Engine {
	t.Helper()
	s := store.New(filepath.Join(t.TempDir(), "charts.json"))
	require.NoError(t, s.Init())
	if len(charts) > 0 {
		require.NoError(t, s.BulkCreate(charts))
	}
	return NewEngine(s, exec)
}

func TestGetData_ResolvesByID(t *testing.T) {
	exec := &fakeExecutor{rows: []map[string]any{{"total": 42}}}
	e := newTestEngine(t, []store.Chart{
		{ID: "c1", Name: "Sales", Query: "SELECT total FROM sales"},
	}, exec)

	result, err := e.GetData(context.Background(), "c1", nil)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"total": 42}}, result.Data)
	assert.Equal(t, "SELECT total FROM sales", exec.query)
}

func TestGetData_FallsBackToName(t *testing.T) {
	exec := &fakeExecutor{rows: []map[string]any{{"n": 1}}}
	e := newTestEngine(t, []store.Chart{
		{ID: "c1", Name: "Sales", Query: "SELECT 1"},
		{ID: "c2", Name: "Sales", Query: "SELECT 2"},
	}, exec)

	// Name lookup returns the first match in document order.
	result, err := e.GetData(context.Background(), "Sales", nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", exec.query)
	assert.Len(t, result.Data, 1)
}

func TestGetData_UnknownChart(t *testing.T) {
	e := newTestEngine(t, []store.Chart{{ID: "c1", Name: "Sales"}}, &fakeExecutor{})

	_, err := e.GetData(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetData_MergesDefaultsAndOverrides(t *testing.T) {
	exec := &fakeExecutor{}
	e := newTestEngine(t, []store.Chart{
		{
			ID:    "c1",
			Name:  "Sales",
			Query: "SELECT * FROM sales WHERE year = @year AND region = @region",
			Vars: []store.Variable{
				{Key: "year", Default: "2024"},
				{Key: "region", Default: "us"},
			},
		},
	}, exec)

	result, err := e.GetData(context.Background(), "c1", map[string]any{"region": "eu"})
	require.NoError(t, err)

	want := map[string]any{"year": "2024", "region": "eu"}
	assert.Equal(t, want, exec.params)
	assert.Equal(t, want, result.Filters)
}

func TestGetData_AbsentQueryYieldsEmptyData(t *testing.T) {
	exec := &fakeExecutor{}
	e := newTestEngine(t, []store.Chart{
		{ID: "c1", Name: "Sales", Vars: []store.Variable{{Key: "year", Default: "2024"}}},
	}, exec)

	result, err := e.GetData(context.Background(), "c1", nil)
	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.NotNil(t, result.Data)
	assert.Equal(t, map[string]any{"year": "2024"}, result.Filters)
	assert.Zero(t, exec.calls)
}

func TestGetData_RejectedQueryYieldsEmptyData(t *testing.T) {
	exec := &fakeExecutor{}
	e := newTestEngine(t, []store.Chart{
		{ID: "c1", Name: "Sales", Query: "DROP TABLE sales"},
	}, exec)

	result, err := e.GetData(context.Background(), "c1", nil)
	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.Zero(t, exec.calls)
}

func TestGetData_QueryIsSanitizedBeforeExecution(t *testing.T) {
	exec := &fakeExecutor{}
	e := newTestEngine(t, []store.Chart{
		{ID: "c1", Name: "Sales", Query: "SELECT *\n  FROM sales;"},
	}, exec)

	_, err := e.GetData(context.Background(), "c1", nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM sales", exec.query)
}

func TestGetData_ZeroRows(t *testing.T) {
	exec := &fakeExecutor{rows: []map[string]any{}}
	e := newTestEngine(t, []store.Chart{
		{ID: "c1", Name: "Sales", Query: "SELECT 1"},
	}, exec)

	result, err := e.GetData(context.Background(), "c1", nil)
	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.NotNil(t, result.Data)
}

func TestGetData_ExecutorErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	exec := &fakeExecutor{err: boom}
	e := newTestEngine(t, []store.Chart{
		{ID: "c1", Name: "Sales", Query: "SELECT 1"},
	}, exec)

	_, err := e.GetData(context.Background(), "c1", nil)
	assert.ErrorIs(t, err, boom)
}
