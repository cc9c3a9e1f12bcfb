// Package respond turns an execution outcome into a one-sentence
// conversational summary. Pure formatting over the action keyword and
// the outcome shape; no state, no side effects.
package respond

import (
	"fmt"

	"github.com/alexanderramin/dbtalk/internal/domain"
	"github.com/alexanderramin/dbtalk/internal/store"
)

// Compose produces the assistant's summary sentence for one turn.
func Compose(userText string, stmt domain.Statement, out store.Outcome) string {
	switch stmt.Action {
	case domain.ActionSelect:
		if t, ok := out.(store.Tabular); ok {
			if t.Empty() {
				return "No rows matched your request."
			}
			return fmt.Sprintf("Found %s.", pluralRows(int64(len(t.Rows))))
		}
	case domain.ActionCreate:
		return "The table is ready."
	case domain.ActionInsert:
		if rc, ok := out.(store.RowCount); ok {
			return fmt.Sprintf("Inserted %s.", pluralRows(rc.N))
		}
	case domain.ActionUpdate:
		if rc, ok := out.(store.RowCount); ok {
			return fmt.Sprintf("Updated %s.", pluralRows(rc.N))
		}
	case domain.ActionDelete:
		if rc, ok := out.(store.RowCount); ok {
			return fmt.Sprintf("Deleted %s.", pluralRows(rc.N))
		}
	case domain.ActionDrop:
		return "The table is gone. That one can't be undone."
	}
	return "Done."
}

// ComposeError phrases an execution failure as a reply. The database
// error text passes through unchanged.
func ComposeError(err error) string {
	return fmt.Sprintf("That didn't work: %v. Try rephrasing your request.", err)
}

func pluralRows(n int64) string {
	if n == 1 {
		return "1 row"
	}
	return fmt.Sprintf("%d rows", n)
}
