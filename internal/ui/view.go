package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/grid-menu/internal/format/table"
	"github.com/atomicstack/grid-menu/internal/menu"
	"github.com/atomicstack/grid-menu/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	emptyCellLabel = "·"
	footerGrid     = "←↓↑→ move  enter press  / jump  q quit"
	footerJump     = "type to filter  ↑↓ choose  enter open  esc back"
)

var kindLabelCleaner = strings.NewReplacer("_", " ", "-", " ")

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

func cellWidth() int {
	return theme.CellWidth
}

// View implements tea.Model.
func (m *Model) View() string {
	var lines []styledLine
	if m.mode == ModeJump && m.jump != nil {
		lines = m.jumpLines()
	} else {
		lines = m.gridLines()
	}
	lines = limitHeight(lines, m.height, m.width)
	return renderLines(applyWidth(lines, m.width))
}

func (m *Model) gridLines() []styledLine {
	lines := make([]styledLine, 0, 16)
	if m.grid == nil {
		lines = append(lines,
			styledLine{text: "no page open", style: styles.Title},
			styledLine{text: "(no pages)", style: styles.Info},
		)
		return m.appendStatus(lines, footerGrid)
	}
	lines = append(lines, m.headerLine())
	for _, row := range strings.Split(m.renderGrid(), "\n") {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	lines = append(lines, styledLine{text: m.describeCell(m.cursor.Slot), style: styles.Info})
	if m.notice != "" {
		lines = append(lines, styledLine{text: m.notice, style: styles.Notice})
	}
	return m.appendStatus(lines, footerGrid)
}

func (m *Model) headerLine() styledLine {
	title := styles.Title.Render(m.grid.Title())
	index := "detached"
	if page, ok := m.Page(); ok {
		pos := 0
		numbers := m.registry.Numbers()
		for i, n := range numbers {
			if n == page.Number() {
				pos = i + 1
				break
			}
		}
		index = fmt.Sprintf("page %d · %d/%d", page.Number(), pos, len(numbers))
	}
	return styledLine{text: title + "  " + styles.PageIndex.Render(index), raw: true}
}

// renderGrid draws the shown grid inside a border, one cell per slot.
func (m *Model) renderGrid() string {
	cells := m.grid.Cells()
	rows := make([]string, 0, m.grid.Rows())
	for r := 0; r < m.grid.Rows(); r++ {
		var b strings.Builder
		for c := 0; c < menu.Columns; c++ {
			slot := r*menu.Columns + c
			kind := cells[slot]
			label := cellLabel(kind)
			style := styles.KindStyle(string(kind))
			if slot == m.cursor.Slot {
				style = *styles.SelectedCell
			}
			b.WriteString(style.Render(label))
		}
		rows = append(rows, b.String())
	}
	return styles.GridBorder.Render(strings.Join(rows, "\n"))
}

func cellLabel(kind menu.Kind) string {
	if kind == menu.KindNone {
		return emptyCellLabel
	}
	label := kindLabelCleaner.Replace(string(kind))
	return truncate.String(label, uint(cellWidth()-2))
}

// describeCell names what sits at slot on the shown page.
func (m *Model) describeCell(slot int) string {
	if m.grid == nil {
		return ""
	}
	kind := m.grid.Cell(slot)
	desc := "empty"
	if kind != menu.KindNone {
		desc = string(kind)
	}
	if page, ok := m.Page(); ok {
		if b, ok := page.Button(slot); ok {
			desc = fmt.Sprintf("%s (%s)", b.Kind(), b.Variant())
		}
	}
	return fmt.Sprintf("slot %d: %s", slot, desc)
}

func (m *Model) jumpLines() []styledLine {
	lines := make([]styledLine, 0, 16)
	lines = append(lines,
		styledLine{text: "jump to page", style: styles.Title},
		styledLine{text: m.jumpInput.View(), raw: true},
	)
	if len(m.jump.Items) == 0 {
		msg := "(no pages)"
		if m.jump.Query != "" {
			msg = fmt.Sprintf("No matches for %q", m.jump.Query)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
		return m.appendStatus(lines, footerJump)
	}
	m.jump.EnsureCursorVisible(m.maxJumpItems())
	start := m.jump.ViewportOffset
	end := len(m.jump.Items)
	if limit := m.maxJumpItems(); limit > 0 && start+limit < end {
		end = start + limit
	}
	index := m.pageIndex()
	for i := start; i < end; i++ {
		style := styles.Item
		if i == m.jump.Cursor {
			style = styles.SelectedItem
		}
		lines = append(lines, styledLine{text: index[i], style: style})
	}
	return m.appendStatus(lines, footerJump)
}

// pageIndex formats the jump entries as aligned columns.
func (m *Model) pageIndex() []string {
	pages := make([]*menu.Page, 0, len(m.jump.Items))
	for _, entry := range m.jump.Items {
		page, _ := m.registry.Page(entry.Number)
		pages = append(pages, page)
	}
	return PageIndex(pages)
}

// PageIndex lists pages one per line: number, title, rows and button count.
// Nil pages render as removed.
func PageIndex(pages []*menu.Page) []string {
	rows := make([][]string, 0, len(pages))
	for _, page := range pages {
		if page == nil {
			rows = append(rows, []string{"-", "(removed)", "", ""})
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(page.Number()),
			page.Title(),
			plural(page.Rows(), "row"),
			plural(len(page.Buttons()), "button"),
		})
	}
	return table.Format(rows, []table.Alignment{table.AlignRight})
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func (m *Model) appendStatus(lines []styledLine, footer string) []styledLine {
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: m.errMsg, style: styles.Error})
	} else if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: footer, style: styles.Footer})
	}
	return lines
}

func (m *Model) maxJumpItems() int {
	if m.height <= 0 {
		return 0
	}
	used := 3 // title, prompt, status
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
