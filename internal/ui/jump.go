package ui

import (
	"github.com/atomicstack/grid-menu/internal/logging/events"
	uistate "github.com/atomicstack/grid-menu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// openJump switches to the page prompt listing every registered page.
func (m *Model) openJump() tea.Cmd {
	if m.registry == nil {
		return nil
	}
	pages := m.registry.Pages()
	entries := make([]uistate.Entry, len(pages))
	for i, page := range pages {
		entries[i] = uistate.Entry{Number: page.Number(), Title: page.Title()}
	}
	m.jump = uistate.NewJump(entries)
	if current, ok := m.Page(); ok {
		for i, entry := range m.jump.Items {
			if entry.Number == current.Number() {
				m.jump.Cursor = i
				break
			}
		}
	}
	m.jump.EnsureCursorVisible(m.maxJumpItems())
	m.jumpInput.Reset()
	m.mode = ModeJump
	events.Jump.Open(len(entries))
	return m.jumpInput.Focus()
}

func (m *Model) closeJump() {
	m.jumpInput.Blur()
	m.jumpInput.Reset()
	m.jump = nil
	m.mode = ModeGrid
}

func (m *Model) handleJumpKey(msg tea.KeyMsg) tea.Cmd {
	if m.jump == nil {
		m.closeJump()
		return nil
	}
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		events.Jump.Cancel(m.jump.Query)
		m.closeJump()
		return nil
	case "enter":
		m.selectJump()
		return nil
	case "up", "ctrl+p":
		m.jump.MoveUp()
		m.jump.EnsureCursorVisible(m.maxJumpItems())
		return nil
	case "down", "ctrl+n", "tab":
		m.jump.MoveDown()
		m.jump.EnsureCursorVisible(m.maxJumpItems())
		return nil
	}
	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	if query := m.jumpInput.Value(); query != m.jump.Query {
		m.jump.SetQuery(query)
		m.jump.EnsureCursorVisible(m.maxJumpItems())
		events.Jump.Filter(query, len(m.jump.Items))
	}
	return cmd
}

// selectJump shows the highlighted page. A page deleted while the prompt was
// open leaves the prompt up with an error.
func (m *Model) selectJump() {
	entry, ok := m.jump.Selected()
	if !ok {
		m.errMsg = "no page matches"
		return
	}
	page, ok := m.registry.Page(entry.Number)
	if !ok {
		m.errMsg = "page no longer exists"
		return
	}
	events.Jump.Select(entry.Number, page.Title())
	m.errMsg = ""
	m.closeJump()
	page.Show(m.user)
}
