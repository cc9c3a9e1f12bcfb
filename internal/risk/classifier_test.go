package risk

import (
	"testing"

	"github.com/alexanderramin/dbtalk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Drop(t *testing.T) {
	a := Classify(domain.Statement{SQL: "DROP TABLE archive;", Action: domain.ActionDrop})

	assert.Equal(t, domain.RiskHigh, a.Tier)
	assert.False(t, a.Safe)
	assert.Contains(t, a.Reason, "irreversibly")
}

func TestClassify_DeleteByWhereClause(t *testing.T) {
	noWhere := Classify(domain.Statement{SQL: "DELETE FROM employees;", Action: domain.ActionDelete})
	assert.Equal(t, domain.RiskHigh, noWhere.Tier)
	assert.Contains(t, noWhere.Reason, "unconditionally")

	withWhere := Classify(domain.Statement{
		SQL:    "DELETE FROM employees WHERE name = 'alice';",
		Action: domain.ActionDelete,
	})
	assert.Equal(t, domain.RiskMedium, withWhere.Tier)
	assert.False(t, withWhere.Safe)
}

func TestClassify_UpdateByWhereClause(t *testing.T) {
	noWhere := Classify(domain.Statement{SQL: "UPDATE employees SET role = 'x';", Action: domain.ActionUpdate})
	assert.Equal(t, domain.RiskHigh, noWhere.Tier)

	withWhere := Classify(domain.Statement{
		SQL:    "UPDATE employees SET role = 'x' WHERE id = 1;",
		Action: domain.ActionUpdate,
	})
	assert.Equal(t, domain.RiskMedium, withWhere.Tier)
}

func TestClassify_LowTiers(t *testing.T) {
	tests := []struct {
		sql    string
		action domain.ActionKind
	}{
		{"SELECT * FROM employees LIMIT 100;", domain.ActionSelect},
		{"CREATE TABLE IF NOT EXISTS t (id TEXT);", domain.ActionCreate},
		{"INSERT INTO t VALUES (1);", domain.ActionInsert},
	}
	for _, tt := range tests {
		a := Classify(domain.Statement{SQL: tt.sql, Action: tt.action})
		assert.Equal(t, domain.RiskLow, a.Tier, tt.sql)
		assert.True(t, a.Safe, tt.sql)
	}
}

func TestClassify_RawStatementFallsBackToLeadingKeyword(t *testing.T) {
	// No action set: classification reads the leading keyword.
	a := Classify(domain.Statement{SQL: "drop table archive;"})
	assert.Equal(t, domain.RiskHigh, a.Tier)
}

func TestClassify_UnknownShapeDegradesToHigh(t *testing.T) {
	a := Classify(domain.Statement{SQL: "PRAGMA journal_mode = WAL;"})
	assert.Equal(t, domain.RiskHigh, a.Tier)
	assert.False(t, a.Safe)
}
