package intent

import (
	"testing"

	"github.com/alexanderramin/dbtalk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_CreateTableWithColumns(t *testing.T) {
	in, err := Extract("create a table called employees with columns: id, name, role")
	require.NoError(t, err)

	assert.Equal(t, domain.ActionCreate, in.Action)
	assert.Equal(t, "employees", in.Table)
	assert.Equal(t, []string{"id", "name", "role"}, in.Columns)
	assert.Empty(t, in.Conditions)
}

func TestExtract_DropTable(t *testing.T) {
	in, err := Extract("drop the archive table")
	require.NoError(t, err)

	assert.Equal(t, domain.ActionDrop, in.Action)
	assert.Equal(t, "archive", in.Table)
}

func TestExtract_FirstKeywordWins(t *testing.T) {
	// "show" appears before "delete"; first match determines the action.
	in, err := Extract("show me what you would delete from the audit table")
	require.NoError(t, err)

	assert.Equal(t, domain.ActionSelect, in.Action)
	assert.Equal(t, "audit", in.Table)
}

func TestExtract_NoActionKeyword(t *testing.T) {
	_, err := Extract("the weather in the city table is nice")
	assert.ErrorIs(t, err, ErrUnresolvedIntent)
}

func TestExtract_NoTable(t *testing.T) {
	_, err := Extract("show everything")
	assert.ErrorIs(t, err, ErrMissingTable)
}

func TestExtract_ColumnsDefaultToStar(t *testing.T) {
	in, err := Extract("show all rows from employees")
	require.NoError(t, err)

	assert.Equal(t, []string{"*"}, in.Columns)
	assert.True(t, in.WantsAllRows())
}

func TestExtract_SelectListColumns(t *testing.T) {
	in, err := Extract("show id, name from employees")
	require.NoError(t, err)

	assert.Equal(t, "employees", in.Table)
	assert.Equal(t, []string{"id", "name"}, in.Columns)
}

func TestExtract_Conditions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []domain.Condition
	}{
		{
			name: "where equals literal",
			text: "delete from employees where name is alice",
			want: []domain.Condition{
				{Column: "name", Operator: domain.OpEquals, Value: "alice", IsLiteral: true},
			},
		},
		{
			name: "greater than numeric",
			text: "show rows from employees where age is greater than 30",
			want: []domain.Condition{
				{Column: "age", Operator: domain.OpGreaterThan, Value: "30", IsLiteral: false},
			},
		},
		{
			name: "less than",
			text: "show rows from orders where total less than 100",
			want: []domain.Condition{
				{Column: "total", Operator: domain.OpLessThan, Value: "100", IsLiteral: false},
			},
		},
		{
			name: "like",
			text: "find rows from employees where email contains example.com",
			want: []domain.Condition{
				{Column: "email", Operator: domain.OpLike, Value: "example.com", IsLiteral: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Extract(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, in.Conditions)
		})
	}
}

func TestExtract_ConditionsAccumulateInPatternOrder(t *testing.T) {
	// The comparative pattern is declared before the equality one, so
	// the > condition comes first even though "role is admin" appears
	// first in the text... and vice versa here: text order is ignored.
	in, err := Extract("show rows from employees where role is admin and age is greater than 30")
	require.NoError(t, err)

	require.Len(t, in.Conditions, 2)
	assert.Equal(t, "age", in.Conditions[0].Column)
	assert.Equal(t, domain.OpGreaterThan, in.Conditions[0].Operator)
	assert.Equal(t, "role", in.Conditions[1].Column)
	assert.Equal(t, domain.OpEquals, in.Conditions[1].Operator)
}

func TestExtract_OverlappingMatchClaimedOnce(t *testing.T) {
	// "age is greater than 30" must not additionally produce a bogus
	// equality condition age = "greater".
	in, err := Extract("show rows from employees where age is greater than 30")
	require.NoError(t, err)

	require.Len(t, in.Conditions, 1)
	assert.Equal(t, domain.OpGreaterThan, in.Conditions[0].Operator)
}

func TestExtract_Values(t *testing.T) {
	in, err := Extract("insert into employees values: alice, 30, admin")
	require.NoError(t, err)

	assert.Equal(t, domain.ActionInsert, in.Action)
	assert.Equal(t, "employees", in.Table)
	assert.Equal(t, []string{"alice", "30", "admin"}, in.Values)
}

func TestExtract_NormalizesTrailingPunctuation(t *testing.T) {
	in, err := Extract("  Drop the archive table!  ")
	require.NoError(t, err)

	assert.Equal(t, domain.ActionDrop, in.Action)
	assert.Equal(t, "archive", in.Table)
}
