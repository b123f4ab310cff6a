package menu

import (
	"fmt"
	"strings"
)

// Columns is the fixed width of every page grid.
const Columns = 9

// Kind is an opaque visual tag for a grid cell (an icon or material id).
// The empty Kind means the cell holds nothing.
type Kind string

const (
	KindNone  Kind = ""
	KindArrow Kind = "arrow"
	KindPaper Kind = "paper"
	KindTNT   Kind = "tnt"
)

// User is a principal that can be shown a display surface.
type User interface {
	Name() string
}

// Resolver decides whether an opaque principal is a displayable user.
type Resolver func(principal any) (User, bool)

// ResolveUser is the default Resolver: the principal must itself implement User.
func ResolveUser(principal any) (User, bool) {
	if principal == nil {
		return nil, false
	}
	user, ok := principal.(User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// Surface is a host display surface: a titled grid of rows*Columns cells.
type Surface interface {
	Title() string
	Size() int
	SetCell(slot int, kind Kind)
	Cells() []Kind
}

// Display creates surfaces and presents them to users.
type Display interface {
	CreateSurface(rows int, title string) Surface
	Show(surface Surface, user User)
}

// ActivationEvent is a single click reported by the host.
type ActivationEvent struct {
	Principal any
	// Title identifies the surface the click happened on.
	Title string
	Slot  int
	// Kind is the visual kind found at Slot when the click happened.
	Kind Kind
	// Surface is the concrete surface clicked, when the host has one.
	Surface Surface
}

// NewActivation builds an event for a click on surface at slot, reading the
// title and the cell kind from the surface itself.
func NewActivation(principal any, surface Surface, slot int) ActivationEvent {
	evt := ActivationEvent{Principal: principal, Slot: slot, Surface: surface}
	if surface == nil {
		return evt
	}
	evt.Title = surface.Title()
	if cells := surface.Cells(); slot >= 0 && slot < len(cells) {
		evt.Kind = cells[slot]
	}
	return evt
}

// Numbering controls the numeric suffix applied to page titles.
type Numbering int

const (
	NumberingNone Numbering = iota
	NumberingAscending
	NumberingDescending
)

func (n Numbering) String() string {
	switch n {
	case NumberingAscending:
		return "ascending"
	case NumberingDescending:
		return "descending"
	default:
		return "none"
	}
}

// ParseNumbering accepts none, ascending/asc and descending/desc.
func ParseNumbering(value string) (Numbering, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none", "off":
		return NumberingNone, nil
	case "ascending", "asc":
		return NumberingAscending, nil
	case "descending", "desc":
		return NumberingDescending, nil
	}
	return NumberingNone, fmt.Errorf("unknown numbering %q: %w", value, ErrInvalidArgument)
}
