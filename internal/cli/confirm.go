package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/dbtalk/internal/engine"
	"github.com/charmbracelet/huh"
)

// confirm runs the risk gate for a planned statement. LOW and MEDIUM
// tiers take a single yes/no; HIGH demands a typed reply that names
// the specific danger. Uses a huh form on a terminal and a plain
// stdin prompt otherwise.
func (app *App) confirm(res *engine.Resolution) (bool, error) {
	interactive := app.IsInteractive != nil && app.IsInteractive()

	if res.State == engine.StateNeedsAcknowledgment {
		reply, err := app.promptReply(res.Message, interactive)
		if err != nil {
			return false, err
		}
		return engine.AcknowledgmentAccepted(res, reply), nil
	}

	if interactive {
		var ok bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().Title(res.Message).Value(&ok),
		)).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return false, err
		}
		return ok, nil
	}

	fmt.Printf("%s [y/N]: ", res.Message)
	return engine.AcknowledgmentAccepted(res, readLine()), nil
}

func (app *App) promptReply(title string, interactive bool) (string, error) {
	if interactive {
		var reply string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title(title).Value(&reply),
		)).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return "", err
		}
		return reply, nil
	}
	fmt.Printf("%s ", title)
	return readLine(), nil
}

func readLine() string {
	reader := bufio.NewReader(os.Stdin)
	text, _ := reader.ReadString('\n')
	return strings.TrimSpace(text)
}
