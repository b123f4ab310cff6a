package theme

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title             *lipgloss.Style
	PageIndex         *lipgloss.Style
	Cell              *lipgloss.Style
	EmptyCell         *lipgloss.Style
	SelectedCell      *lipgloss.Style
	GridBorder        *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Notice            *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Item              *lipgloss.Style
	SelectedItem      *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	PageIndex: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Cell: ptr(
		lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Center),
	),
	EmptyCell: ptr(
		lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Center).Foreground(lipgloss.Color("238")),
	),
	SelectedCell: ptr(
		lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Center).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	GridBorder: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Notice: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
}

// CellWidth is the rendered width of one grid cell.
const CellWidth = 8

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

var kindColours = map[string]lipgloss.Color{
	"arrow": lipgloss.Color("39"),
	"paper": lipgloss.Color("230"),
	"tnt":   lipgloss.Color("196"),
}

// palette is used for kinds without a fixed colour.
var palette = []lipgloss.Color{"70", "136", "172", "99", "37", "168", "142", "66"}

// KindColour returns the foreground colour for a cell kind. Unknown kinds get
// a stable colour derived from their name.
func KindColour(kind string) lipgloss.Color {
	if c, ok := kindColours[kind]; ok {
		return c
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(kind))
	return palette[h.Sum32()%uint32(len(palette))]
}

// KindStyle returns the cell style for kind.
func (s *Styles) KindStyle(kind string) lipgloss.Style {
	if kind == "" {
		return *s.EmptyCell
	}
	return s.Cell.Foreground(KindColour(kind))
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
