package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestExecute_OutcomeShapes(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	out, err := s.Execute(ctx, "CREATE TABLE IF NOT EXISTS employees (id INTEGER, name TEXT);")
	require.NoError(t, err)
	assert.IsType(t, PlainSuccess{}, out)

	out, err = s.Execute(ctx, "INSERT INTO employees VALUES (1, 'alice');")
	require.NoError(t, err)
	assert.Equal(t, RowCount{N: 1}, out)

	out, err = s.Execute(ctx, "SELECT id, name FROM employees LIMIT 100;")
	require.NoError(t, err)
	tab, ok := out.(Tabular)
	require.True(t, ok)
	assert.Equal(t, []string{"id", "name"}, tab.Columns)
	assert.Equal(t, [][]string{{"1", "alice"}}, tab.Rows)
	assert.False(t, tab.Empty())

	out, err = s.Execute(ctx, "UPDATE employees SET name = 'bob' WHERE id = 1;")
	require.NoError(t, err)
	assert.Equal(t, RowCount{N: 1}, out)

	out, err = s.Execute(ctx, "DELETE FROM employees WHERE id = 1;")
	require.NoError(t, err)
	assert.Equal(t, RowCount{N: 1}, out)

	out, err = s.Execute(ctx, "DROP TABLE employees;")
	require.NoError(t, err)
	assert.IsType(t, PlainSuccess{}, out)
}

func TestExecute_EmptySelect(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.Execute(ctx, "CREATE TABLE t (id INTEGER);")
	require.NoError(t, err)

	out, err := s.Execute(ctx, "SELECT id FROM t;")
	require.NoError(t, err)
	tab, ok := out.(Tabular)
	require.True(t, ok)
	assert.True(t, tab.Empty())
}

func TestExecute_NullCell(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.Execute(ctx, "CREATE TABLE t (id INTEGER, note TEXT);")
	require.NoError(t, err)
	_, err = s.Execute(ctx, "INSERT INTO t VALUES (1, NULL);")
	require.NoError(t, err)

	out, err := s.Execute(ctx, "SELECT note FROM t;")
	require.NoError(t, err)
	tab := out.(Tabular)
	assert.Equal(t, "NULL", tab.Rows[0][0])
}

func TestExecute_ErrorPassesThrough(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.Execute(ctx, "SELECT * FROM missing_table;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing_table")
}
