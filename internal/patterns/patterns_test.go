package patterns

import (
	"testing"

	"github.com/alexanderramin/dbtalk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOperatorForPhrase(t *testing.T) {
	tests := []struct {
		phrase string
		want   domain.Operator
	}{
		{`x greater than y`, domain.OpGreaterThan},
		{`x more than y`, domain.OpGreaterThan},
		{`x less than y`, domain.OpLessThan},
		{`x fewer than y`, domain.OpLessThan},
		{`x like y`, domain.OpLike},
		{`x contains y`, domain.OpLike},
		{`where x is y`, domain.OpEquals},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OperatorForPhrase(tt.phrase), tt.phrase)
	}
}

func TestConditionPatternsCarryDerivedOperators(t *testing.T) {
	// The declared table must stay consistent with its own phrases.
	for _, cp := range ConditionPatterns {
		assert.Equal(t, OperatorForPhrase(cp.Phrase), cp.Operator, cp.Phrase)
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "role"}, SplitList("id, name, role"))
	assert.Equal(t, []string{"id", "name"}, SplitList("id and name"))
	assert.Equal(t, []string{"name"}, SplitList("all the name rows"))
	assert.Nil(t, SplitList("all rows"))
	assert.Nil(t, SplitList(""))
}

func TestTableStopwords(t *testing.T) {
	assert.True(t, IsTableStopword("a"))
	assert.True(t, IsTableStopword("table"))
	assert.False(t, IsTableStopword("employees"))
}

func TestTablePatternPrecedence(t *testing.T) {
	// The explicit "table <name>" phrasing must outrank the loose
	// prepositional fallback when both could match.
	text := "show rows from the table payroll in january"
	for _, re := range TablePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			assert.Equal(t, "payroll", m[1])
			return
		}
	}
	t.Fatal("no table pattern matched")
}
