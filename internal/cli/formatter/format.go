package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dbtalk/internal/engine"
	"github.com/alexanderramin/dbtalk/internal/history"
	"github.com/alexanderramin/dbtalk/internal/store"
)

// FormatResolution renders a planned statement with its risk banner,
// the last thing the user sees before the confirmation gate.
func FormatResolution(res *engine.Resolution) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", RiskIndicator(res.Assessment.Tier), Bold(res.Statement.SQL))
	fmt.Fprintf(&b, "%s\n", Dim(res.Assessment.Reason))
	return b.String()
}

// FormatOutcome renders an execution outcome: a table for reads, the
// summary sentence otherwise.
func FormatOutcome(out store.Outcome, summary string) string {
	var b strings.Builder
	if t, ok := out.(store.Tabular); ok && !t.Empty() {
		b.WriteString(RenderTable(t.Columns, t.Rows))
	}
	fmt.Fprintf(&b, "%s\n", summary)
	return b.String()
}

// FormatHistory renders recent turns as a table, newest first.
func FormatHistory(turns []*history.Turn) string {
	if len(turns) == 0 {
		return Dim("No conversation history yet.") + "\n"
	}
	rows := make([][]string, 0, len(turns))
	for _, t := range turns {
		tier := ""
		if t.RiskTier != "" {
			tier = RiskIndicator(t.RiskTier)
		}
		rows = append(rows, []string{
			t.CreatedAt.Local().Format("2006-01-02 15:04"),
			string(t.Role),
			truncate(t.Text, 48),
			truncate(t.SQL, 48),
			tier,
		})
	}
	return RenderTable([]string{"When", "Who", "Text", "SQL", "Risk"}, rows)
}

// FormatShellWelcome is the interactive shell banner.
func FormatShellWelcome(dbPath string) string {
	var b strings.Builder
	b.WriteString(Header("dbtalk"))
	fmt.Fprintf(&b, "\n%s\n", Dim("connected to "+dbPath))
	b.WriteString(Dim("Ask in plain language, e.g. \"show all rows from employees\". Ctrl+D to quit.") + "\n")
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
