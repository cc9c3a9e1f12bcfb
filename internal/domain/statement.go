package domain

import "strings"

// Statement is a complete, executable SQL text string plus the action
// it actually encodes. The encoded action may legitimately differ from
// the originally extracted intent when defaults were substituted.
type Statement struct {
	SQL    string
	Action ActionKind
}

// HasWhere reports whether the statement carries a WHERE clause.
// Risk classification operates purely on this syntactic shape.
func (s Statement) HasWhere() bool {
	return strings.Contains(strings.ToUpper(s.SQL), " WHERE ")
}

// LeadingKeyword returns the first keyword of an arbitrary SQL string,
// uppercased. Used to classify raw statements that did not come from
// the builder.
func LeadingKeyword(sql string) ActionKind {
	fields := strings.Fields(strings.TrimSpace(sql))
	if len(fields) == 0 {
		return ""
	}
	return ActionKind(strings.ToUpper(fields[0]))
}
