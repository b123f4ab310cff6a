package menu

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/atomicstack/grid-menu/internal/logging/events"
)

// Page is one grid screen of a Registry. Pages are only created by the
// registry, which also owns their numbers.
type Page struct {
	number   int
	rows     int
	name     string
	suffix   string
	surface  Surface
	buttons  map[int]*Button
	registry *Registry
}

func newPage(reg *Registry, number, rows int, name string) (*Page, error) {
	if number <= 0 {
		return nil, fmt.Errorf("page number must be positive (got %d): %w", number, ErrInvalidArgument)
	}
	if rows <= 0 {
		return nil, fmt.Errorf("rows must be positive (got %d): %w", rows, ErrInvalidArgument)
	}
	return &Page{
		number:   number,
		rows:     rows,
		name:     name,
		surface:  reg.display.CreateSurface(rows, name),
		buttons:  make(map[int]*Button),
		registry: reg,
	}, nil
}

// Number returns the page number within its registry.
func (p *Page) Number() int { return p.number }

// Rows returns the number of grid rows.
func (p *Page) Rows() int { return p.rows }

// Size returns the number of slots, always Rows()*Columns.
func (p *Page) Size() int { return p.rows * Columns }

// Name returns the page name including any numbering suffix.
func (p *Page) Name() string { return p.name }

// Title is the identity clicks are routed by. It equals Name.
func (p *Page) Title() string { return p.name }

// Surface returns the display surface currently backing the page.
func (p *Page) Surface() Surface { return p.surface }

// Cells returns a copy of the grid contents.
func (p *Page) Cells() []Kind {
	cells := p.surface.Cells()
	out := make([]Kind, p.Size())
	copy(out, cells)
	return out
}

// Button returns the button bound to slot.
func (p *Page) Button(slot int) (*Button, bool) {
	b, ok := p.buttons[slot]
	return b, ok
}

// Buttons lists the bound buttons ordered by slot.
func (p *Page) Buttons() []*Button {
	out := make([]*Button, 0, len(p.buttons))
	for _, b := range p.buttons {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].slot < out[j].slot })
	return out
}

// DefaultSlot returns where a navigation variant goes when no slot is given:
// back at the start of the last row, forward at its end, delete and new page
// in between.
func (p *Page) DefaultSlot(variant Variant) int {
	last := p.Size()
	switch variant {
	case VariantBack:
		return last - 9
	case VariantDeletePage:
		return last - 6
	case VariantNewPage:
		return last - 4
	case VariantForward:
		return last - 1
	}
	return -1
}

// Place binds button to slot, draws its kind and replaces whatever button was
// bound there before. The replaced button stays orphaned and inert.
func (p *Page) Place(button *Button, slot int) error {
	if button == nil {
		return fmt.Errorf("place on page %d: nil button: %w", p.number, ErrInvalidArgument)
	}
	if slot < 0 || slot >= p.Size() {
		return fmt.Errorf("place on page %d: slot %d outside 0..%d: %w", p.number, slot, p.Size()-1, ErrInvalidArgument)
	}
	if button.page != nil {
		return fmt.Errorf("place on page %d: button already placed on page %d: %w", p.number, button.page.number, ErrInvalidState)
	}
	button.slot = slot
	button.page = p
	p.surface.SetCell(slot, button.kind)
	p.buttons[slot] = button
	return nil
}

// AddButton places a new navigation button of the given variant at slot.
func (p *Page) AddButton(variant Variant, slot int) (*Button, error) {
	if variant == VariantCustom {
		return nil, fmt.Errorf("custom buttons need an action: %w", ErrInvalidArgument)
	}
	b := NewButton(variant, KindNone)
	if err := p.Place(b, slot); err != nil {
		return nil, err
	}
	return b, nil
}

// AddDefaultButton places a navigation button at its default slot.
func (p *Page) AddDefaultButton(variant Variant) (*Button, error) {
	return p.AddButton(variant, p.DefaultSlot(variant))
}

// AddCustomButton places a caller-defined button.
func (p *Page) AddCustomButton(kind Kind, slot int, action Action) (*Button, error) {
	if kind == KindNone {
		return nil, fmt.Errorf("custom button at slot %d needs a kind: %w", slot, ErrInvalidArgument)
	}
	b := NewCustomButton(kind, action)
	if err := p.Place(b, slot); err != nil {
		return nil, err
	}
	return b, nil
}

// PlaceBorder draws kind into every cell the pattern marks. Unmarked cells are
// left alone and cells holding a button are redrawn with the button's kind.
func (p *Page) PlaceBorder(pattern Pattern, kind Kind) error {
	if err := pattern.fits(p.rows); err != nil {
		return fmt.Errorf("border on page %d: %w", p.number, err)
	}
	filled := 0
	for r, row := range pattern {
		for c, on := range row {
			if on {
				p.surface.SetCell(r*Columns+c, kind)
				filled++
			}
		}
	}
	for slot, b := range p.buttons {
		p.surface.SetCell(slot, b.kind)
	}
	events.Page.Border(p.Title(), p.number, string(kind), filled)
	return nil
}

// RenameNumbered appends the numbering suffix for mode to the name and moves
// the grid onto a surface with the new title. Calling it twice appends twice.
func (p *Page) RenameNumbered(mode Numbering, registrySize int) error {
	suffix, err := numberSuffix(mode, p.number, registrySize)
	if err != nil {
		return err
	}
	p.retitle(p.name + suffix)
	p.suffix = suffix
	return nil
}

// renumber moves the page to number and replaces the last numbering suffix
// with one computed for the new number.
func (p *Page) renumber(number int, mode Numbering, registrySize int) {
	p.number = number
	suffix, err := numberSuffix(mode, number, registrySize)
	if err != nil {
		return
	}
	base := p.name
	if p.suffix != "" {
		base = strings.TrimSuffix(base, p.suffix)
	}
	p.retitle(base + suffix)
	p.suffix = suffix
}

func (p *Page) retitle(name string) {
	old := p.surface.Cells()
	from := p.name
	p.name = name
	p.surface = p.registry.display.CreateSurface(p.rows, name)
	for slot, kind := range old {
		if slot >= p.Size() {
			break
		}
		if kind != KindNone {
			p.surface.SetCell(slot, kind)
		}
	}
	events.Page.Rename(from, name, p.number)
}

// Show hands the page's surface to the display for user.
func (p *Page) Show(user User) {
	if user == nil {
		return
	}
	events.Page.Show(p.Title(), p.number, user.Name())
	p.registry.display.Show(p.surface, user)
}

func numberSuffix(mode Numbering, number, registrySize int) (string, error) {
	switch mode {
	case NumberingAscending:
		return " - " + strconv.Itoa(number), nil
	case NumberingDescending:
		return " - " + strconv.Itoa(registrySize-number), nil
	}
	return "", fmt.Errorf("numbering mode %s has no suffix: %w", mode, ErrInvalidArgument)
}
