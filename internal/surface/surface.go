// Package surface provides an in-memory display provider for menu registries.
// Each grid carries a hidden uuid token so hosts can tell surfaces apart even
// when titles repeat; routing itself still goes by title.
package surface

import (
	"sync"

	"github.com/google/uuid"

	"github.com/atomicstack/grid-menu/internal/menu"
)

// Grid is one display surface.
type Grid struct {
	id    uuid.UUID
	title string
	cells []menu.Kind
}

// NewGrid allocates an empty grid of rows*menu.Columns cells.
func NewGrid(rows int, title string) *Grid {
	if rows < 0 {
		rows = 0
	}
	return &Grid{id: uuid.New(), title: title, cells: make([]menu.Kind, rows*menu.Columns)}
}

// ID returns the hidden surface token.
func (g *Grid) ID() string { return g.id.String() }

func (g *Grid) Title() string { return g.title }

func (g *Grid) Size() int { return len(g.cells) }

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return len(g.cells) / menu.Columns }

// SetCell writes kind to slot; out of range slots are ignored.
func (g *Grid) SetCell(slot int, kind menu.Kind) {
	if slot < 0 || slot >= len(g.cells) {
		return
	}
	g.cells[slot] = kind
}

// Cell returns the kind at slot, or menu.KindNone when out of range.
func (g *Grid) Cell(slot int) menu.Kind {
	if slot < 0 || slot >= len(g.cells) {
		return menu.KindNone
	}
	return g.cells[slot]
}

// Cells returns a copy of every cell.
func (g *Grid) Cells() []menu.Kind {
	out := make([]menu.Kind, len(g.cells))
	copy(out, g.cells)
	return out
}

// Store implements menu.Display and remembers which grid each user is looking at.
type Store struct {
	mu      sync.Mutex
	shown   map[string]*Grid
	created int
	onShow  func(user menu.User, grid *Grid)
}

// NewStore returns an empty display store.
func NewStore() *Store {
	return &Store{shown: make(map[string]*Grid)}
}

// OnShow registers a callback run after every Show.
func (s *Store) OnShow(fn func(user menu.User, grid *Grid)) {
	s.mu.Lock()
	s.onShow = fn
	s.mu.Unlock()
}

// CreateSurface implements menu.Display.
func (s *Store) CreateSurface(rows int, title string) menu.Surface {
	s.mu.Lock()
	s.created++
	s.mu.Unlock()
	return NewGrid(rows, title)
}

// Show implements menu.Display. Surfaces not created by a Store are ignored.
func (s *Store) Show(surface menu.Surface, user menu.User) {
	grid, ok := surface.(*Grid)
	if !ok || grid == nil || user == nil {
		return
	}
	s.mu.Lock()
	s.shown[user.Name()] = grid
	fn := s.onShow
	s.mu.Unlock()
	if fn != nil {
		fn(user, grid)
	}
}

// Shown returns the grid last shown to the named user.
func (s *Store) Shown(user string) (*Grid, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	grid, ok := s.shown[user]
	return grid, ok
}

// Close forgets what the named user is looking at.
func (s *Store) Close(user string) {
	s.mu.Lock()
	delete(s.shown, user)
	s.mu.Unlock()
}

// Created counts surfaces created so far.
func (s *Store) Created() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.created
}

// Player is a named user principal.
type Player string

func (p Player) Name() string { return string(p) }
