package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/grid-menu/internal/logging/events"
	"github.com/atomicstack/grid-menu/internal/menu"
	"github.com/atomicstack/grid-menu/internal/surface"
	"github.com/atomicstack/grid-menu/internal/theme"
	"github.com/atomicstack/grid-menu/internal/ui/command"
	uistate "github.com/atomicstack/grid-menu/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeGrid Mode = iota
	ModeJump
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries the display settings of a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Model implements the Bubble Tea model hosting one user's view of a menu
// registry.
type Model struct {
	registry *menu.Registry
	store    *surface.Store
	bus      *command.Bus
	user     surface.Player

	grid   *surface.Grid
	cursor *uistate.Grid
	mode   Mode

	jump      *uistate.Jump
	jumpInput textinput.Model

	notice      string
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires a model to registry and store for user. Call Open once the
// registry has its pages.
func NewModel(registry *menu.Registry, store *surface.Store, user surface.Player, opts Options) *Model {
	m := &Model{
		registry:   registry,
		store:      store,
		bus:        command.New(registry),
		user:       user,
		cursor:     uistate.NewGrid(0, menu.Columns),
		mode:       ModeGrid,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	ti := textinput.New()
	ti.Prompt = "» "
	ti.Placeholder = "page title or number"
	ti.PromptStyle = *styles.FilterPrompt
	ti.TextStyle = *styles.Filter
	ti.PlaceholderStyle = *styles.FilterPlaceholder
	ti.Cursor.SetMode(cursor.CursorStatic)
	m.jumpInput = ti
	if store != nil {
		store.OnShow(m.handleShow)
	}
	m.registerHandlers()
	return m
}

// Open shows page 1 to the model's user.
func (m *Model) Open() bool {
	if m.registry == nil {
		return false
	}
	if !m.registry.Open(m.user) {
		m.setGrid(nil)
		return false
	}
	return true
}

// Notify is a layout.Notifier that surfaces custom button messages meant for
// the model's user.
func (m *Model) Notify(user menu.User, page *menu.Page, message string) {
	if user == nil || user.Name() != m.user.Name() {
		return
	}
	m.notice = message
	events.UI.Notice(user.Name(), message)
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// handleShow runs whenever the store shows a grid to any user.
func (m *Model) handleShow(user menu.User, grid *surface.Grid) {
	if user == nil || user.Name() != m.user.Name() {
		return
	}
	m.setGrid(grid)
}

func (m *Model) setGrid(grid *surface.Grid) {
	if grid == m.grid {
		return
	}
	m.grid = grid
	rows := 0
	if grid != nil {
		rows = grid.Rows()
	}
	m.cursor.Resize(rows)
}

// Grid returns the grid currently shown to the model's user, or nil.
func (m *Model) Grid() *surface.Grid {
	return m.grid
}

// Page returns the registered page behind the current grid.
func (m *Model) Page() (*menu.Page, bool) {
	if m.registry == nil || m.grid == nil {
		return nil, false
	}
	return m.registry.PageFor(m.grid)
}

// Cursor returns the highlighted slot.
func (m *Model) Cursor() int {
	return m.cursor.Slot
}

// Mode reports whether the grid or the jump prompt has focus.
func (m *Model) Mode() Mode {
	return m.mode
}

// Notice returns the last custom button message.
func (m *Model) Notice() string {
	return m.notice
}

// reconcile makes sure the shown grid still belongs to a registered page.
// Renumbering moves a page onto a new surface, so a user who was looking at
// prev follows it there. A user whose page was deleted falls back to the
// lowest numbered page, or to the empty state when there is none.
func (m *Model) reconcile(prev *menu.Page) {
	if m.registry == nil {
		return
	}
	if m.grid != nil {
		if _, ok := m.registry.PageFor(m.grid); ok {
			return
		}
	}
	if prev != nil && m.registry.Owns(prev) {
		prev.Show(m.user)
		return
	}
	title := ""
	if m.grid != nil {
		title = m.grid.Title()
	}
	if pages := m.registry.Pages(); len(pages) > 0 {
		events.UI.Fallback(title, pages[0].Number())
		pages[0].Show(m.user)
		return
	}
	events.UI.Fallback(title, 0)
	if m.store != nil {
		m.store.Close(m.user.Name())
	}
	m.setGrid(nil)
}
