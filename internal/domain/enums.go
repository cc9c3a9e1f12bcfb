package domain

// ActionKind identifies the SQL action a user utterance maps to.
type ActionKind string

const (
	ActionSelect ActionKind = "SELECT"
	ActionCreate ActionKind = "CREATE"
	ActionInsert ActionKind = "INSERT"
	ActionUpdate ActionKind = "UPDATE"
	ActionDelete ActionKind = "DELETE"
	ActionDrop   ActionKind = "DROP"
)

// ValidActionKinds is the canonical set of recognized actions.
var ValidActionKinds = map[ActionKind]bool{
	ActionSelect: true, ActionCreate: true, ActionInsert: true,
	ActionUpdate: true, ActionDelete: true, ActionDrop: true,
}

// Operator is a comparison operator destined for a WHERE clause.
type Operator string

const (
	OpEquals      Operator = "="
	OpGreaterThan Operator = ">"
	OpLessThan    Operator = "<"
	OpLike        Operator = "LIKE"
)

// RiskTier classifies a statement's potential for irreversible or
// broad data impact.
type RiskTier string

const (
	RiskLow    RiskTier = "LOW"
	RiskMedium RiskTier = "MEDIUM"
	RiskHigh   RiskTier = "HIGH"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)
