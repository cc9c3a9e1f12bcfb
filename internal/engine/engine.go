// Package engine orchestrates one conversational turn: extract the
// intent, build the statement, classify its risk, and gate execution
// behind the confirmation the tier demands. The engine holds no state
// between turns; conversation history is owned by the caller.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/dbtalk/internal/domain"
	"github.com/alexanderramin/dbtalk/internal/intent"
	"github.com/alexanderramin/dbtalk/internal/respond"
	"github.com/alexanderramin/dbtalk/internal/risk"
	"github.com/alexanderramin/dbtalk/internal/sqlbuild"
	"github.com/alexanderramin/dbtalk/internal/store"
)

// GateState describes what must happen before a planned statement may
// execute.
type GateState string

const (
	// StateReady means the statement is safe and a single confirmation
	// executes it.
	StateReady GateState = "ready"
	// StateNeedsConfirmation means the statement mutates data and
	// needs an explicit yes.
	StateNeedsConfirmation GateState = "needs_confirmation"
	// StateNeedsAcknowledgment means the statement is dangerous and
	// the confirmation must name the specific danger.
	StateNeedsAcknowledgment GateState = "needs_acknowledgment"
)

// Resolution is the full plan for one utterance, handed to the caller
// to drive the confirmation gesture.
type Resolution struct {
	UserText   string
	Intent     *domain.Intent
	Statement  domain.Statement
	Assessment risk.Assessment
	State      GateState
	Message    string
}

// Executor is the data-store collaborator boundary.
type Executor interface {
	Execute(ctx context.Context, sql string) (store.Outcome, error)
}

// Engine wires the translation pipeline to an executor.
type Engine struct {
	builder *sqlbuild.Builder
	exec    Executor
}

// New creates an Engine around the given executor and builder.
func New(exec Executor, builder *sqlbuild.Builder) *Engine {
	return &Engine{builder: builder, exec: exec}
}

// Plan runs extract, build, and classify for one utterance. Extraction
// and build failures surface verbatim as rephrase prompts; they are
// never retried internally.
func (e *Engine) Plan(text string) (*Resolution, error) {
	in, err := intent.Extract(text)
	if err != nil {
		return nil, err
	}

	stmt, err := e.builder.Build(in)
	if err != nil {
		return nil, err
	}

	assessment := risk.Classify(stmt)
	state := gateFor(assessment.Tier)

	return &Resolution{
		UserText:   text,
		Intent:     in,
		Statement:  stmt,
		Assessment: assessment,
		State:      state,
		Message:    gateMessage(state, stmt, assessment),
	}, nil
}

// PlanRaw classifies and gates a raw SQL statement, bypassing the
// extractor and builder. The escape hatch for users who already know
// the SQL they want.
func (e *Engine) PlanRaw(sqlText string) *Resolution {
	stmt := domain.Statement{
		SQL:    strings.TrimSpace(sqlText),
		Action: domain.LeadingKeyword(sqlText),
	}
	assessment := risk.Classify(stmt)
	state := gateFor(assessment.Tier)
	return &Resolution{
		UserText:   sqlText,
		Statement:  stmt,
		Assessment: assessment,
		State:      state,
		Message:    gateMessage(state, stmt, assessment),
	}
}

// Execute runs the planned statement as a single blocking call. No
// retries, no recovery; store errors pass through unchanged.
func (e *Engine) Execute(ctx context.Context, res *Resolution) (store.Outcome, error) {
	return e.exec.Execute(ctx, res.Statement.SQL)
}

// Respond composes the assistant's summary for an executed turn.
func (e *Engine) Respond(res *Resolution, out store.Outcome) string {
	return respond.Compose(res.UserText, res.Statement, out)
}

// AcknowledgmentAccepted reports whether a reply to a HIGH-risk prompt
// acknowledges the specific danger: it must name the action about to
// run (e.g. contain "drop" for a DROP TABLE).
func AcknowledgmentAccepted(res *Resolution, reply string) bool {
	if res.State != StateNeedsAcknowledgment {
		return confirmed(reply)
	}
	lower := strings.ToLower(reply)
	return strings.Contains(lower, strings.ToLower(string(res.Statement.Action)))
}

// confirmed reports a plain yes.
func confirmed(reply string) bool {
	switch strings.ToLower(strings.TrimSpace(reply)) {
	case "y", "yes":
		return true
	}
	return false
}

func gateFor(tier domain.RiskTier) GateState {
	switch tier {
	case domain.RiskHigh:
		return StateNeedsAcknowledgment
	case domain.RiskMedium:
		return StateNeedsConfirmation
	default:
		return StateReady
	}
}

func gateMessage(state GateState, stmt domain.Statement, a risk.Assessment) string {
	switch state {
	case StateNeedsAcknowledgment:
		return fmt.Sprintf("This %s. Type %q to confirm.", a.Reason, strings.ToLower(string(stmt.Action)))
	case StateNeedsConfirmation:
		return fmt.Sprintf("This %s. Run it?", a.Reason)
	default:
		return "Run it?"
	}
}
