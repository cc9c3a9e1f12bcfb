// Package sqlbuild emits a well-formed SQL statement for a structured
// intent, applying default safety clauses: a row limit on open-ended
// SELECTs and a mandatory condition (or explicit "all") on DELETE.
package sqlbuild

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dbtalk/internal/domain"
	"github.com/alexanderramin/dbtalk/internal/patterns"
)

// DefaultRowLimit caps open-ended SELECTs unless the utterance said "all".
const DefaultRowLimit = 100

// Builder constructs SQL statements from intents.
type Builder struct {
	rowLimit int
}

// New returns a Builder with the default row limit.
func New() *Builder {
	return &Builder{rowLimit: DefaultRowLimit}
}

// NewWithRowLimit returns a Builder with a custom SELECT row limit.
// A limit of zero or less falls back to the default.
func NewWithRowLimit(limit int) *Builder {
	if limit <= 0 {
		limit = DefaultRowLimit
	}
	return &Builder{rowLimit: limit}
}

// Build emits the SQL statement for the given intent.
func (b *Builder) Build(in *domain.Intent) (domain.Statement, error) {
	var sql string
	var err error

	switch in.Action {
	case domain.ActionSelect:
		sql = b.buildSelect(in)
	case domain.ActionCreate:
		sql, err = buildCreate(in)
	case domain.ActionInsert:
		sql, err = buildInsert(in)
	case domain.ActionUpdate:
		sql, err = buildUpdate(in)
	case domain.ActionDelete:
		sql, err = buildDelete(in)
	case domain.ActionDrop:
		sql = buildDrop(in)
	default:
		return domain.Statement{}, fmt.Errorf("%w: %s", ErrUnknownAction, in.Action)
	}
	if err != nil {
		return domain.Statement{}, err
	}

	return domain.Statement{SQL: sql, Action: in.Action}, nil
}

func (b *Builder) buildSelect(in *domain.Intent) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", strings.Join(in.Columns, ", "), in.Table)
	appendWhere(&sb, in.Conditions)
	if !in.WantsAllRows() {
		fmt.Fprintf(&sb, " LIMIT %d", b.rowLimit)
	}
	sb.WriteString(";")
	return sb.String()
}

func buildCreate(in *domain.Intent) (string, error) {
	if len(in.Columns) == 0 || in.Columns[0] == "*" {
		return "", ErrMissingColumns
	}
	defs := make([]string, len(in.Columns))
	for i, col := range in.Columns {
		defs[i] = col + " " + inferColumnType(in.Text, col)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s);", in.Table, strings.Join(defs, ", ")), nil
}

// inferColumnType picks a column type from hints in the utterance.
// A type keyword applies when it appears anywhere in the text alongside
// the column name; absent any hint the column is TEXT.
func inferColumnType(text, col string) string {
	switch {
	case strings.Contains(text, "integer") && strings.Contains(text, col):
		return "INTEGER"
	case strings.Contains(text, "number") && strings.Contains(text, col):
		return "REAL"
	case strings.Contains(text, "date") && strings.Contains(text, col):
		return "DATE"
	default:
		return "TEXT"
	}
}

func buildInsert(in *domain.Intent) (string, error) {
	if len(in.Values) == 0 {
		return "", ErrMissingValues
	}
	vals := make([]string, len(in.Values))
	for i, v := range in.Values {
		vals[i] = formatValue(v)
	}

	// Use the recognized column list only when it pairs up with the
	// values one to one; otherwise insert positionally.
	if len(in.Columns) == len(in.Values) && in.Columns[0] != "*" {
		return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
			in.Table, strings.Join(in.Columns, ", "), strings.Join(vals, ", ")), nil
	}
	return fmt.Sprintf("INSERT INTO %s VALUES (%s);", in.Table, strings.Join(vals, ", ")), nil
}

func buildUpdate(in *domain.Intent) (string, error) {
	var sets []string
	var claimed [][2]int
	for _, re := range patterns.SetClausePatterns {
		for _, idx := range re.FindAllStringSubmatchIndex(in.Text, -1) {
			if overlaps(claimed, idx[0], idx[1]) {
				continue
			}
			claimed = append(claimed, [2]int{idx[0], idx[1]})
			col := in.Text[idx[2]:idx[3]]
			val := in.Text[idx[4]:idx[5]]
			sets = append(sets, fmt.Sprintf("%s = %s", col, formatValue(val)))
		}
	}
	if len(sets) == 0 {
		return "", ErrMissingSetClause
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "UPDATE %s SET %s", in.Table, strings.Join(sets, ", "))
	appendWhere(&sb, in.Conditions)
	sb.WriteString(";")
	return sb.String(), nil
}

func buildDelete(in *domain.Intent) (string, error) {
	if !in.HasConditions() && !in.WantsAllRows() {
		return "", ErrUnsafeDelete
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "DELETE FROM %s", in.Table)
	appendWhere(&sb, in.Conditions)
	sb.WriteString(";")
	return sb.String(), nil
}

// buildDrop always emits a bare DROP TABLE. Softening or intensifying
// words in the utterance ("permanently", "completely") do not alter
// the emitted statement; the risk classifier is the safety surface.
func buildDrop(in *domain.Intent) string {
	return fmt.Sprintf("DROP TABLE %s;", in.Table)
}

// appendWhere renders the conditions as an AND-joined WHERE clause,
// preserving condition order and dropping none.
func appendWhere(sb *strings.Builder, conds []domain.Condition) {
	if len(conds) == 0 {
		return
	}
	parts := make([]string, len(conds))
	for i, c := range conds {
		parts[i] = fmt.Sprintf("%s %s %s", c.Column, c.Operator, formatCondValue(c))
	}
	fmt.Fprintf(sb, " WHERE %s", strings.Join(parts, " AND "))
}

// formatCondValue renders a condition value. LIKE values always carry
// wildcard markers unless they already contain one.
func formatCondValue(c domain.Condition) string {
	v := c.Value
	if c.Operator == domain.OpLike {
		if !strings.Contains(v, "%") {
			v = "%" + v + "%"
		}
		return quote(v)
	}
	if !c.IsLiteral {
		return stripQuotes(v)
	}
	return formatValue(v)
}

// formatValue is the single quoting rule every value funnels through:
// a token renders unquoted only when it is entirely ASCII digits;
// anything else renders single-quoted, with pre-existing quote
// characters stripped first so quoting stays idempotent.
func formatValue(v string) string {
	v = stripQuotes(v)
	if isNumeral(v) {
		return v
	}
	return quote(v)
}

func stripQuotes(v string) string {
	return strings.Trim(v, "'\"")
}

func quote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}

func isNumeral(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func overlaps(claimed [][2]int, start, end int) bool {
	for _, c := range claimed {
		if start < c[1] && end > c[0] {
			return true
		}
	}
	return false
}
