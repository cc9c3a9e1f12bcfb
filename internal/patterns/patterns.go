// Package patterns holds the fixed recognizer tables used to interpret
// natural-language requests. Every table is an ordered list: order
// encodes precedence, so entries must not be reordered or collected
// into a set.
package patterns

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/dbtalk/internal/domain"
)

// ActionKeywords maps a leading verb to its SQL action. The extractor
// scans whitespace tokens left to right; the first token present here
// wins, with no scoring or disambiguation by context.
var ActionKeywords = map[string]domain.ActionKind{
	"show":    domain.ActionSelect,
	"list":    domain.ActionSelect,
	"display": domain.ActionSelect,
	"get":     domain.ActionSelect,
	"find":    domain.ActionSelect,
	"fetch":   domain.ActionSelect,
	"select":  domain.ActionSelect,
	"view":    domain.ActionSelect,
	"give":    domain.ActionSelect,

	"create": domain.ActionCreate,
	"make":   domain.ActionCreate,
	"build":  domain.ActionCreate,

	"insert":   domain.ActionInsert,
	"add":      domain.ActionInsert,
	"put":      domain.ActionInsert,
	"record":   domain.ActionInsert,
	"register": domain.ActionInsert,

	"update": domain.ActionUpdate,
	"change": domain.ActionUpdate,
	"modify": domain.ActionUpdate,
	"set":    domain.ActionUpdate,

	"delete": domain.ActionDelete,
	"remove": domain.ActionDelete,
	"erase":  domain.ActionDelete,

	"drop":    domain.ActionDrop,
	"destroy": domain.ActionDrop,
}

// TablePatterns locate the table name. Tried in order against the
// whole lowercased text; the first capture of the first matching
// pattern wins. Explicit "table <name>" phrasings take precedence over
// the looser prepositional forms.
var TablePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:from|in|into|of)\s+(?:the\s+)?table\s+([a-z_][a-z0-9_]*)`),
	regexp.MustCompile(`\b([a-z_][a-z0-9_]*)\s+table\b`),
	regexp.MustCompile(`\btable\s+(?:named|called)\s+([a-z_][a-z0-9_]*)`),
	regexp.MustCompile(`\b(?:from|into|in|update)\s+(?:the\s+)?([a-z_][a-z0-9_]*)`),
	regexp.MustCompile(`\bto\s+(?:the\s+)?([a-z_][a-z0-9_]*)`),
}

// tableStopwords are filler words a table pattern may capture by
// accident ("create a table ..." captures "a"). A capture listed here
// is skipped and matching continues.
var tableStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "my": true, "this": true,
	"that": true, "new": true, "table": true, "column": true,
	"columns": true, "all": true, "database": true,
}

// IsTableStopword reports whether a captured table name is a filler
// word rather than a real name.
func IsTableStopword(name string) bool {
	return tableStopwords[name]
}

// ColumnPatterns locate the column list. Tried in order; no match
// means the extractor defaults to ["*"].
var ColumnPatterns = []*regexp.Regexp{
	regexp.MustCompile(`columns?\s*:?\s*([a-z0-9_][a-z0-9_,\s]*?)(?:\s+(?:from|in|where|with)\b|$)`),
	regexp.MustCompile(`(?:with|having)\s+fields?\s*:?\s*([a-z0-9_][a-z0-9_,\s]*?)(?:\s+(?:from|in|where)\b|$)`),
	regexp.MustCompile(`(?:show|select|get|display|list|fetch|give)\s+(?:me\s+)?([a-z0-9_][a-z0-9_,\s]*?)\s+(?:from|in)\b`),
}

// columnStopwords are generic nouns that name rows, not columns.
var columnStopwords = map[string]bool{
	"all": true, "everything": true, "records": true, "rows": true,
	"data": true, "entries": true, "values": true, "me": true,
	"the": true, "a": true, "an": true,
}

// SplitList splits a captured comma/"and" list into cleaned tokens,
// dropping filler words. Returns nil when nothing real remains.
func SplitList(captured string) []string {
	parts := strings.FieldsFunc(captured, func(r rune) bool { return r == ',' })
	var out []string
	for _, p := range parts {
		for _, tok := range strings.Fields(p) {
			if tok == "and" || columnStopwords[tok] {
				continue
			}
			out = append(out, tok)
		}
	}
	return out
}

// ConditionPattern pairs a recognizer with the operator its phrase
// implies. The operator is derived from the phrase text itself, so the
// table stays honest about which wording produced which operator.
type ConditionPattern struct {
	Phrase   string
	Re       *regexp.Regexp
	Operator domain.Operator
}

// OperatorForPhrase chooses the operator implied by a pattern's phrase
// text: "greater than"/"more than"/">" imply >, and so on. Defaults
// to equality.
func OperatorForPhrase(phrase string) domain.Operator {
	switch {
	case strings.Contains(phrase, "greater") || strings.Contains(phrase, "more") || strings.Contains(phrase, ">"):
		return domain.OpGreaterThan
	case strings.Contains(phrase, "less") || strings.Contains(phrase, "fewer") || strings.Contains(phrase, "<"):
		return domain.OpLessThan
	case strings.Contains(phrase, "like") || strings.Contains(phrase, "contains") || strings.Contains(phrase, "similar"):
		return domain.OpLike
	default:
		return domain.OpEquals
	}
}

func conditionPattern(phrase string) ConditionPattern {
	return ConditionPattern{
		Phrase:   phrase,
		Re:       regexp.MustCompile(phrase),
		Operator: OperatorForPhrase(phrase),
	}
}

// ConditionPatterns are ALL applied to the text; every non-overlapping
// match across all patterns is accumulated, in the order patterns are
// declared here, not in text order. The comparative phrasings are
// declared before the equality ones so that "age is greater than 30"
// is claimed by the > pattern rather than mis-read as age = "greater".
var ConditionPatterns = []ConditionPattern{
	conditionPattern(`([a-z_][a-z0-9_]*)\s+(?:is\s+)?(?:greater|more|bigger|higher)\s+than\s+'?([a-z0-9_.@-]+)'?`),
	conditionPattern(`([a-z_][a-z0-9_]*)\s+(?:is\s+)?(?:less|fewer|smaller|lower)\s+than\s+'?([a-z0-9_.@-]+)'?`),
	conditionPattern(`([a-z_][a-z0-9_]*)\s+(?:like|contains|containing|similar\s+to)\s+'?([%a-z0-9_.@-]+)'?`),
	conditionPattern(`(?:where|whose)\s+([a-z_][a-z0-9_]*)\s+(?:is\s+equal\s+to|equals?|is|=)\s+'?([%a-z0-9_.@-]+)'?`),
	conditionPattern(`(?:and|but)\s+([a-z_][a-z0-9_]*)\s+(?:is\s+equal\s+to|equals?|is|=)\s+'?([%a-z0-9_.@-]+)'?`),
	conditionPattern(`with\s+([a-z_][a-z0-9_]*)\s+(?:of|equal\s+to|equals?|=)\s+'?([%a-z0-9_.@-]+)'?`),
}

// ValuesPattern locates the values phrase of an INSERT. Distinct from
// the condition and column patterns.
var ValuesPattern = regexp.MustCompile(`values?\s*:?\s*\(?([a-z0-9_@.'\s,-]+?)\)?(?:\s+(?:into|in|to)\b|$)`)

// SetClausePatterns locate "set COLUMN to VALUE" phrases of an UPDATE.
// All matches of all patterns contribute SET clauses, in declaration
// then text order.
var SetClausePatterns = []*regexp.Regexp{
	regexp.MustCompile(`set\s+(?:the\s+)?([a-z_][a-z0-9_]*)\s+(?:to|as|=|equals?)\s+'?([a-z0-9_.@%-]+)'?`),
	regexp.MustCompile(`(?:change|update)\s+(?:the\s+)?([a-z_][a-z0-9_]*)\s+(?:to|=)\s+'?([a-z0-9_.@%-]+)'?`),
}
