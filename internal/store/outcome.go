package store

// Outcome is the result shape of executing one statement. Exactly one
// of the three concrete shapes is produced per execution: a tabular
// result for reads, an affected-row count for row mutations, and a
// plain success marker for schema changes.
type Outcome interface {
	isOutcome()
}

// Tabular is the result of a SELECT.
type Tabular struct {
	Columns []string
	Rows    [][]string
}

func (Tabular) isOutcome() {}

// Empty reports whether the SELECT matched no rows.
func (t Tabular) Empty() bool {
	return len(t.Rows) == 0
}

// RowCount is the result of an INSERT, UPDATE, or DELETE.
type RowCount struct {
	N int64
}

func (RowCount) isOutcome() {}

// PlainSuccess is the result of a schema statement (CREATE, DROP).
type PlainSuccess struct{}

func (PlainSuccess) isOutcome() {}
