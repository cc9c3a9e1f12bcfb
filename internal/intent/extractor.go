// Package intent turns a raw natural-language request into a
// structured Intent by running the fixed pattern tables over the
// normalized text. It recognizes a closed phrase vocabulary and makes
// no attempt at general language understanding.
package intent

import (
	"strings"

	"github.com/alexanderramin/dbtalk/internal/domain"
	"github.com/alexanderramin/dbtalk/internal/patterns"
)

// Extract parses text into an Intent. It fails with
// ErrUnresolvedIntent when no action keyword matches and with
// ErrMissingTable when no table-name pattern matches.
func Extract(text string) (*domain.Intent, error) {
	norm := normalize(text)

	action, ok := extractAction(norm)
	if !ok {
		return nil, ErrUnresolvedIntent
	}

	table, ok := extractTable(norm)
	if !ok {
		return nil, ErrMissingTable
	}

	return &domain.Intent{
		Action:     action,
		Table:      table,
		Columns:    extractColumns(norm),
		Values:     extractValues(norm),
		Conditions: extractConditions(norm),
		Text:       norm,
	}, nil
}

// normalize lowercases, trims, and strips trailing sentence
// punctuation so patterns anchored at end-of-text still match.
func normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	return strings.TrimRight(s, ".!?")
}

// extractAction scans whitespace tokens left to right; the first token
// present in the keyword table determines the action.
func extractAction(text string) (domain.ActionKind, bool) {
	for _, tok := range strings.Fields(text) {
		if action, ok := patterns.ActionKeywords[tok]; ok {
			return action, true
		}
	}
	return "", false
}

// extractTable tries the ordered table patterns against the whole
// text. Captures that are filler words are skipped so that "create a
// table called x" does not resolve to table "a".
func extractTable(text string) (string, bool) {
	for _, re := range patterns.TablePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if name := m[1]; !patterns.IsTableStopword(name) {
				return name, true
			}
		}
	}
	return "", false
}

// extractColumns tries the ordered column patterns; the first match
// that yields at least one real column name wins. Defaults to ["*"].
func extractColumns(text string) []string {
	for _, re := range patterns.ColumnPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if cols := patterns.SplitList(m[1]); len(cols) > 0 {
			return cols
		}
	}
	return []string{"*"}
}

// extractValues locates the dedicated values phrase used by INSERT.
func extractValues(text string) []string {
	m := patterns.ValuesPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	var vals []string
	for _, part := range strings.Split(m[1], ",") {
		if v := strings.Trim(strings.TrimSpace(part), "'"); v != "" {
			vals = append(vals, v)
		}
	}
	return vals
}

// extractConditions scans the text with every condition pattern and
// accumulates all non-overlapping matches, in pattern-declaration
// order rather than text order. A span claimed by an earlier pattern
// blocks later overlapping matches.
func extractConditions(text string) []domain.Condition {
	var conds []domain.Condition
	var claimed [][2]int

	for _, cp := range patterns.ConditionPatterns {
		for _, idx := range cp.Re.FindAllStringSubmatchIndex(text, -1) {
			start, end := idx[0], idx[1]
			if overlaps(claimed, start, end) {
				continue
			}
			claimed = append(claimed, [2]int{start, end})

			column := text[idx[2]:idx[3]]
			value := text[idx[4]:idx[5]]
			conds = append(conds, domain.Condition{
				Column:    column,
				Operator:  cp.Operator,
				Value:     value,
				IsLiteral: !isNumeral(value),
			})
		}
	}
	return conds
}

func overlaps(claimed [][2]int, start, end int) bool {
	for _, c := range claimed {
		if start < c[1] && end > c[0] {
			return true
		}
	}
	return false
}

// isNumeral reports whether the entire token is ASCII digits. Only
// such values render unquoted.
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
