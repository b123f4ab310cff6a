package ui

import (
	"github.com/atomicstack/grid-menu/internal/logging/events"
	"github.com/atomicstack/grid-menu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Rows above the first grid row: the header line and the top border.
const gridTop = 2

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode == ModeJump {
		return m.handleJumpKey(keyMsg)
	}
	m.clearInfo()
	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		return tea.Quit
	case "/":
		return m.openJump()
	case "enter", " ":
		return m.click(m.cursor.Slot)
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case "home", "g":
		if m.cursor.MoveHome() {
			m.traceCursor()
		}
	case "end", "G":
		if m.cursor.MoveEnd() {
			m.traceCursor()
		}
	}
	return nil
}

func (m *Model) moveCursor(dRow, dCol int) {
	if m.cursor.Move(dRow, dCol) {
		m.traceCursor()
	}
}

func (m *Model) traceCursor() {
	if m.grid == nil {
		return
	}
	events.UI.Cursor(m.grid.Title(), m.cursor.Slot)
}

// click reports an activation of slot on the shown grid, exactly as a
// pointer click on that cell would.
func (m *Model) click(slot int) tea.Cmd {
	if m.grid == nil {
		return nil
	}
	m.errMsg = ""
	prev, _ := m.Page()
	cmd := m.bus.Dispatch(menu.NewActivation(m.user, m.grid, slot))
	m.reconcile(prev)
	return cmd
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.mode != ModeGrid || m.grid == nil {
		return nil
	}
	if ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft {
		return nil
	}
	slot, ok := m.slotAt(ev.X, ev.Y)
	if !ok {
		return nil
	}
	if m.cursor.Set(slot) {
		m.traceCursor()
	}
	return m.click(slot)
}

// slotAt maps a screen position onto the rendered grid.
func (m *Model) slotAt(x, y int) (int, bool) {
	if x < 1 {
		return 0, false
	}
	return m.cursor.SlotAt(y-gridTop, (x-1)/cellWidth())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if m.jump != nil {
		m.jump.EnsureCursorVisible(m.maxJumpItems())
	}
	return nil
}
