package menu

import "testing"

type fakeSurface struct {
	title string
	cells []Kind
}

func (s *fakeSurface) Title() string { return s.title }
func (s *fakeSurface) Size() int     { return len(s.cells) }
func (s *fakeSurface) SetCell(slot int, kind Kind) {
	if slot >= 0 && slot < len(s.cells) {
		s.cells[slot] = kind
	}
}
func (s *fakeSurface) Cells() []Kind {
	out := make([]Kind, len(s.cells))
	copy(out, s.cells)
	return out
}

type fakeDisplay struct {
	created int
	shown   map[string]Surface
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{shown: make(map[string]Surface)}
}

func (d *fakeDisplay) CreateSurface(rows int, title string) Surface {
	d.created++
	return &fakeSurface{title: title, cells: make([]Kind, rows*Columns)}
}

func (d *fakeDisplay) Show(s Surface, u User) {
	d.shown[u.Name()] = s
}

type fakeUser string

func (u fakeUser) Name() string { return string(u) }

const steve = fakeUser("steve")

func newTestRegistry(t *testing.T, pages, rows int, name string) (*Registry, *fakeDisplay) {
	t.Helper()
	display := newFakeDisplay()
	reg := New(display)
	if _, err := reg.AddPages(pages, rows, name); err != nil {
		t.Fatalf("unexpected error adding pages: %v", err)
	}
	return reg, display
}

func titles(reg *Registry) map[int]string {
	out := make(map[int]string, reg.Size())
	for _, p := range reg.Pages() {
		out[p.Number()] = p.Title()
	}
	return out
}

func click(page *Page, slot int) ActivationEvent {
	return NewActivation(steve, page.Surface(), slot)
}
