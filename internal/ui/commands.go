package ui

import (
	"fmt"

	"github.com/atomicstack/grid-menu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Activated == 0 {
		m.setInfo(fmt.Sprintf("nothing to press at slot %d", result.Event.Slot))
		return nil
	}
	if m.verbose {
		m.setInfo(fmt.Sprintf("slot %d: %d button(s) pressed", result.Event.Slot, result.Activated))
	} else {
		m.forceClearInfo()
	}
	return nil
}
