package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWantsAllRows(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"show all rows from employees", true},
		{"delete all from employees", true},
		{"show rows from payroll", false},        // "all" inside a word
		{"show the table called results", false}, // "called" contains "all"
		{"", false},
	}
	for _, tt := range tests {
		in := Intent{Text: tt.text}
		assert.Equal(t, tt.want, in.WantsAllRows(), tt.text)
	}
}

func TestStatementHasWhere(t *testing.T) {
	assert.True(t, Statement{SQL: "DELETE FROM t WHERE id = 1;"}.HasWhere())
	assert.True(t, Statement{SQL: "delete from t where id = 1;"}.HasWhere())
	assert.False(t, Statement{SQL: "DELETE FROM t;"}.HasWhere())
}

func TestLeadingKeyword(t *testing.T) {
	assert.Equal(t, ActionDrop, LeadingKeyword("drop table archive;"))
	assert.Equal(t, ActionSelect, LeadingKeyword("  SELECT 1"))
	assert.Equal(t, ActionKind(""), LeadingKeyword("   "))
}
