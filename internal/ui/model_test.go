package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/grid-menu/internal/layout"
	"github.com/atomicstack/grid-menu/internal/menu"
	"github.com/atomicstack/grid-menu/internal/surface"
	"github.com/atomicstack/grid-menu/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

const alex = surface.Player("alex")

// Default layout slots for three rows.
const (
	slotInfo    = 4
	slotBack    = 18
	slotDelete  = 21
	slotNewPage = 23
	slotForward = 26
)

func newTestModel(t *testing.T, count int, opts Options) (*Model, *menu.Registry, *surface.Store) {
	t.Helper()
	store := surface.NewStore()
	reg := menu.New(store)
	m := NewModel(reg, store, alex, opts)
	if err := layout.Build(reg, layout.Default(count, 3, "Menu", "ascending"), m.Notify); err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	m.Open()
	return m, reg, store
}

func press(t *testing.T, h *Harness, slot int) {
	t.Helper()
	if !h.Model().cursor.Set(slot) && h.Model().Cursor() != slot {
		t.Fatalf("could not move cursor to slot %d", slot)
	}
	h.Press(tea.KeyEnter)
}

func shownTitle(m *Model) string {
	if m.Grid() == nil {
		return ""
	}
	return m.Grid().Title()
}

func TestOpenShowsFirstPage(t *testing.T) {
	m, _, store := newTestModel(t, 3, Options{})
	if got := shownTitle(m); got != "Menu - 1" {
		t.Fatalf("expected first page, got %q", got)
	}
	if m.Cursor() != 0 || m.cursor.Rows != 3 {
		t.Fatalf("expected cursor at 0 on 3 rows, got %d/%d", m.Cursor(), m.cursor.Rows)
	}
	if grid, ok := store.Shown(alex.Name()); !ok || grid != m.Grid() {
		t.Fatalf("expected store and model to agree on the shown grid")
	}
}

func TestOpenWithoutPages(t *testing.T) {
	m, _, _ := newTestModel(t, 0, Options{})
	if m.Open() {
		t.Fatalf("expected open to fail without pages")
	}
	if m.Grid() != nil {
		t.Fatalf("expected no grid")
	}
	h := NewHarness(m)
	h.Press(tea.KeyEnter)
	if !strings.Contains(testutil.StripANSI(h.View()), "(no pages)") {
		t.Fatalf("expected empty state, got %q", h.View())
	}
}

func TestForwardKeyShowsNextPage(t *testing.T) {
	m, _, _ := newTestModel(t, 3, Options{})
	h := NewHarness(m)
	h.Press(tea.KeyEnd)
	if m.Cursor() != slotForward {
		t.Fatalf("expected cursor on forward slot, got %d", m.Cursor())
	}
	h.Press(tea.KeyEnter)
	if got := shownTitle(m); got != "Menu - 2" {
		t.Fatalf("expected second page, got %q", got)
	}
	if m.Cursor() != slotForward {
		t.Fatalf("expected cursor to stay on slot %d, got %d", slotForward, m.Cursor())
	}
	if info := m.currentInfo(); info != "" {
		t.Fatalf("expected no info after a press, got %q", info)
	}
}

func TestBackOnFirstPageStays(t *testing.T) {
	m, _, _ := newTestModel(t, 3, Options{})
	h := NewHarness(m)
	press(t, h, slotForward)
	press(t, h, slotBack)
	if got := shownTitle(m); got != "Menu - 1" {
		t.Fatalf("expected back on first page, got %q", got)
	}
	press(t, h, slotBack)
	if got := shownTitle(m); got != "Menu - 1" {
		t.Fatalf("expected to stay on first page, got %q", got)
	}
}

func TestEmptySlotReportsNothing(t *testing.T) {
	m, _, _ := newTestModel(t, 3, Options{})
	h := NewHarness(m)
	press(t, h, 10)
	if got := m.currentInfo(); got != "nothing to press at slot 10" {
		t.Fatalf("unexpected info %q", got)
	}
	press(t, h, 0)
	if got := m.currentInfo(); got != "nothing to press at slot 0" {
		t.Fatalf("expected border cells to be inert, got %q", got)
	}
}

func TestVerboseReportsActivation(t *testing.T) {
	m, _, _ := newTestModel(t, 3, Options{Verbose: true})
	h := NewHarness(m)
	press(t, h, slotForward)
	if got := m.currentInfo(); got != "slot 26: 1 button(s) pressed" {
		t.Fatalf("unexpected info %q", got)
	}
}

func TestCustomButtonNotice(t *testing.T) {
	m, _, _ := newTestModel(t, 3, Options{})
	h := NewHarness(m)
	press(t, h, slotInfo)
	want := "arrows page, paper adds, tnt deletes"
	if m.Notice() != want {
		t.Fatalf("expected notice %q, got %q", want, m.Notice())
	}
	if !strings.Contains(testutil.StripANSI(h.View()), want) {
		t.Fatalf("expected notice in view")
	}
}

func TestNotifyIgnoresOtherUsers(t *testing.T) {
	m, reg, _ := newTestModel(t, 1, Options{})
	page, _ := reg.Page(1)
	m.Notify(surface.Player("sam"), page, "hello")
	if m.Notice() != "" {
		t.Fatalf("expected notice for another user to be ignored, got %q", m.Notice())
	}
}

func TestNewPageShowsAddedPage(t *testing.T) {
	m, reg, _ := newTestModel(t, 3, Options{})
	h := NewHarness(m)
	press(t, h, slotNewPage)
	if reg.Size() != 4 {
		t.Fatalf("expected 4 pages, got %d", reg.Size())
	}
	page, ok := m.Page()
	if !ok || page.Number() != 4 {
		t.Fatalf("expected to be shown page 4, got %v", page)
	}
	if got := shownTitle(m); got != "Menu - 1 - 4" {
		t.Fatalf("expected inherited name with new suffix, got %q", got)
	}
}

func TestDeleteFallsBackToLowestPage(t *testing.T) {
	m, reg, _ := newTestModel(t, 3, Options{})
	h := NewHarness(m)
	press(t, h, slotForward)
	press(t, h, slotDelete)
	if got := reg.Numbers(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Fatalf("expected pages 1 and 3, got %v", got)
	}
	if got := shownTitle(m); got != "Menu - 1" {
		t.Fatalf("expected fallback to first page, got %q", got)
	}
}

func TestDeleteFirstPageFallsBackToNext(t *testing.T) {
	m, reg, _ := newTestModel(t, 3, Options{})
	h := NewHarness(m)
	press(t, h, slotDelete)
	if got := reg.Numbers(); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Fatalf("expected pages 2 and 3, got %v", got)
	}
	if got := shownTitle(m); got != "Menu - 2" {
		t.Fatalf("expected fallback to page 2, got %q", got)
	}
}

func TestDeleteLastPageShowsEmptyState(t *testing.T) {
	m, reg, store := newTestModel(t, 1, Options{})
	h := NewHarness(m)
	press(t, h, slotDelete)
	if reg.Size() != 0 {
		t.Fatalf("expected no pages, got %d", reg.Size())
	}
	if m.Grid() != nil {
		t.Fatalf("expected no grid after the last page went away")
	}
	if _, ok := store.Shown(alex.Name()); ok {
		t.Fatalf("expected store to forget the user's grid")
	}
	view := testutil.StripANSI(h.View())
	if !strings.Contains(view, "(no pages)") {
		t.Fatalf("expected empty state, got %q", view)
	}
	h.Press(tea.KeyEnter)
	if m.Grid() != nil {
		t.Fatalf("expected presses in the empty state to do nothing")
	}
}

func TestRenumberedPageIsFollowed(t *testing.T) {
	store := surface.NewStore()
	reg := menu.New(store)
	m := NewModel(reg, store, alex, Options{})
	if _, err := reg.AddPages(3, 1, "Menu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.SetNumberingMode(menu.NumberingAscending); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reg.DeletePage(1)
	page, _ := reg.Page(2)
	_, err := page.AddCustomButton("lever", 0, func(menu.ActivationEvent, menu.User, *menu.Button) {
		reg.DeletePage(3)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page.Show(alex)

	h := NewHarness(m)
	press(t, h, 0)
	if page.Number() != 1 {
		t.Fatalf("expected page to move to 1, got %d", page.Number())
	}
	shown, ok := m.Page()
	if !ok || shown != page {
		t.Fatalf("expected to stay on the renumbered page")
	}
	if got := shownTitle(m); got != "Menu - 1" {
		t.Fatalf("expected renumbered title, got %q", got)
	}
}
