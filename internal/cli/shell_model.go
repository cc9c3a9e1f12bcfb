package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/dbtalk/internal/cli/formatter"
	"github.com/alexanderramin/dbtalk/internal/engine"
	"github.com/alexanderramin/dbtalk/internal/respond"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modePrompt  shellMode = iota // normal request input
	modeConfirm                  // awaiting confirmation for a planned statement
)

// shellModel is the bubbletea Model for the conversational REPL. Each
// utterance is processed start to finish before the next is accepted;
// the only cross-turn state is the input history and the pending
// confirmation.
type shellModel struct {
	input textinput.Model
	app   *App

	mode    shellMode
	pending *engine.Resolution

	history    []string
	historyIdx int

	quitting bool
}

func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	return shellModel{
		input: ti,
		app:   app,
	}
}

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome(m.app.Cfg.DBPath)),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyUp:
		if m.mode == modePrompt && m.historyIdx > 0 {
			m.historyIdx--
			m.input.SetValue(m.history[m.historyIdx])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.mode == modePrompt && m.historyIdx < len(m.history) {
			m.historyIdx++
			if m.historyIdx == len(m.history) {
				m.input.SetValue("")
			} else {
				m.input.SetValue(m.history[m.historyIdx])
				m.input.CursorEnd()
			}
		}
		return m, nil

	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		return m.submit(line)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return ""
	}
	prompt := "❯ "
	if m.mode == modeConfirm {
		prompt = "confirm ❯ "
	}
	return formatter.StyleBlue.Render(prompt) + m.input.View()
}

// submit handles one entered line according to the current mode.
func (m shellModel) submit(line string) (tea.Model, tea.Cmd) {
	if m.mode == modeConfirm {
		return m.resolveConfirm(line)
	}

	if line == "" {
		return m, nil
	}
	if line == "exit" || line == "quit" {
		m.quitting = true
		return m, tea.Quit
	}

	m.history = append(m.history, line)
	m.historyIdx = len(m.history)

	echo := formatter.Dim("you: ") + line

	res, err := m.app.Engine.Plan(line)
	if err != nil {
		msg, ok := rephrasePrompt(err)
		if !ok {
			msg = fmt.Sprintf("Error: %v", err)
		}
		return m, tea.Println(echo + "\n" + msg)
	}

	m.pending = res
	m.mode = modeConfirm
	return m, tea.Println(echo + "\n" + formatter.FormatResolution(res) + m.pending.Message)
}

// resolveConfirm consumes the confirmation reply for the pending
// statement. HIGH-risk replies must acknowledge the danger by naming
// the action; other tiers take a plain yes.
func (m shellModel) resolveConfirm(reply string) (tea.Model, tea.Cmd) {
	res := m.pending
	m.pending = nil
	m.mode = modePrompt

	if !engine.AcknowledgmentAccepted(res, reply) {
		return m, tea.Println(formatter.Dim("Cancelled."))
	}

	ctx := context.Background()
	out, err := m.app.Engine.Execute(ctx, res)
	if err != nil {
		errReply := respond.ComposeError(err)
		m.app.recordExchange(ctx, res, errReply)
		return m, tea.Println(errReply)
	}

	summary := m.app.Engine.Respond(res, out)
	m.app.recordExchange(ctx, res, summary)
	return m, tea.Println(strings.TrimRight(formatter.FormatOutcome(out, summary), "\n"))
}
