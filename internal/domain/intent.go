package domain

// Condition is one comparison clause extracted from an utterance.
type Condition struct {
	Column   string
	Operator Operator
	Value    string
	// IsLiteral marks values that render single-quoted. Pure numerals
	// render unquoted.
	IsLiteral bool
}

// Intent is the structured interpretation of a user utterance.
// Created fresh per utterance and discarded after the turn.
type Intent struct {
	Action     ActionKind
	Table      string
	Columns    []string // defaults to ["*"] when no column phrase matched
	Values     []string
	Conditions []Condition
	// Text is the normalized (lowercased, trimmed) source utterance.
	// The builder consults it for markers like "all" that influence
	// safety clauses.
	Text string
}

// HasConditions reports whether at least one condition was extracted.
func (i *Intent) HasConditions() bool {
	return len(i.Conditions) > 0
}

// WantsAllRows reports whether the utterance explicitly said "all",
// which suppresses the default row limit and permits an unconditional
// DELETE. Matched as a whole word so that table names like "payroll"
// or phrases like "called" do not trigger it.
func (i *Intent) WantsAllRows() bool {
	return containsWord(i.Text, "all")
}

// containsWord reports whether text contains w as a whole word.
func containsWord(text, w string) bool {
	n := len(w)
	for i := 0; i+n <= len(text); i++ {
		if text[i:i+n] != w {
			continue
		}
		beforeOK := i == 0 || !isWordByte(text[i-1])
		afterOK := i+n == len(text) || !isWordByte(text[i+n])
		if beforeOK && afterOK {
			return true
		}
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
