package menu

import (
	"errors"
	"fmt"
	"sort"

	"github.com/atomicstack/grid-menu/internal/logging/events"
)

// Registry owns every page of one menu and the numbering policy. It is not
// safe for concurrent use; the host must deliver clicks one at a time.
type Registry struct {
	display Display
	resolve Resolver
	pages   map[int]*Page
	mode    Numbering
}

// Option customises a Registry at construction.
type Option func(*Registry)

// WithResolver replaces the principal resolution used for clicks.
func WithResolver(resolve Resolver) Option {
	return func(r *Registry) {
		if resolve != nil {
			r.resolve = resolve
		}
	}
}

// New builds an empty registry drawing its pages on display.
func New(display Display, opts ...Option) *Registry {
	r := &Registry{
		display: display,
		resolve: ResolveUser,
		pages:   make(map[int]*Page),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size returns the number of pages.
func (r *Registry) Size() int { return len(r.pages) }

// Mode returns the numbering mode.
func (r *Registry) Mode() Numbering { return r.mode }

// Page looks a page up by number.
func (r *Registry) Page(number int) (*Page, bool) {
	page, ok := r.pages[number]
	return page, ok
}

// Numbers returns the page numbers in ascending order.
func (r *Registry) Numbers() []int {
	numbers := make([]int, 0, len(r.pages))
	for n := range r.pages {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// Pages returns the pages ordered by number.
func (r *Registry) Pages() []*Page {
	numbers := r.Numbers()
	pages := make([]*Page, len(numbers))
	for i, n := range numbers {
		pages[i] = r.pages[n]
	}
	return pages
}

// Open shows the first page to user. It reports false when there is no page 1.
func (r *Registry) Open(user User) bool {
	page, ok := r.pages[1]
	if !ok || user == nil {
		return false
	}
	page.Show(user)
	return true
}

// AddPage appends a page. It takes the lowest free number, which is Size()+1
// whenever the numbers are dense, and applies the numbering suffix when a
// numbering mode is active.
func (r *Registry) AddPage(rows int, name string) (*Page, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("rows must be positive (got %d): %w", rows, ErrInvalidArgument)
	}
	number := r.nextNumber()
	page, err := newPage(r, number, rows, name)
	if err != nil {
		return nil, err
	}
	r.pages[number] = page
	events.Registry.AddPage(number, rows, name)
	if r.mode != NumberingNone {
		if err := page.RenameNumbered(r.mode, r.Size()); err != nil {
			return nil, err
		}
	}
	return page, nil
}

// AddPages adds count pages with the same rows and name, in creation order.
func (r *Registry) AddPages(count, rows int, name string) ([]*Page, error) {
	if count < 0 {
		return nil, fmt.Errorf("page count cannot be negative (got %d): %w", count, ErrInvalidArgument)
	}
	if rows <= 0 {
		return nil, fmt.Errorf("rows must be positive (got %d): %w", rows, ErrInvalidArgument)
	}
	added := make([]*Page, 0, count)
	for i := 0; i < count; i++ {
		page, err := r.AddPage(rows, name)
		if err != nil {
			return added, err
		}
		added = append(added, page)
	}
	return added, nil
}

func (r *Registry) nextNumber() int {
	n := len(r.pages) + 1
	if _, taken := r.pages[n]; !taken {
		return n
	}
	for n = 1; ; n++ {
		if _, taken := r.pages[n]; !taken {
			return n
		}
	}
}

// DeletePage removes a page. In a numbered mode every page below the deleted
// number moves down by one, provided the lower number is positive and free,
// and gets its suffix recomputed. Pages above the deleted number keep their
// numbers and titles. It reports whether a page was removed.
func (r *Registry) DeletePage(number int) bool {
	page, ok := r.pages[number]
	if !ok {
		return false
	}
	delete(r.pages, number)
	events.Registry.DeletePage(number, page.Title())
	if r.mode == NumberingNone {
		return true
	}
	for _, n := range r.Numbers() {
		if n >= number {
			break
		}
		target := n - 1
		if target <= 0 {
			continue
		}
		if _, taken := r.pages[target]; taken {
			continue
		}
		moved := r.pages[n]
		delete(r.pages, n)
		r.pages[target] = moved
		moved.renumber(target, r.mode, r.Size())
		events.Registry.Reflow(n, target, moved.Title())
	}
	return true
}

// SetNumberingMode switches numbering on and renames every existing page.
// The mode is sticky: repeating it is a no-op and any other change fails
// with ErrInvalidState.
func (r *Registry) SetNumberingMode(mode Numbering) error {
	if mode == r.mode {
		return nil
	}
	if r.mode != NumberingNone {
		return fmt.Errorf("numbering already %s, cannot switch to %s: %w", r.mode, mode, ErrInvalidState)
	}
	switch mode {
	case NumberingAscending, NumberingDescending:
	default:
		return fmt.Errorf("unknown numbering mode %d: %w", int(mode), ErrInvalidArgument)
	}
	r.mode = mode
	events.Registry.Numbering(mode.String(), r.Size())
	for _, page := range r.Pages() {
		if err := page.RenameNumbered(mode, r.Size()); err != nil {
			return err
		}
	}
	return nil
}

// each applies fn to every page in numeric order. A failing page does not
// stop the others or undo earlier ones.
func (r *Registry) each(fn func(*Page) error) error {
	var errs []error
	for _, page := range r.Pages() {
		if err := fn(page); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AddButtonAll places a navigation button at slot on every page.
func (r *Registry) AddButtonAll(variant Variant, slot int) error {
	return r.each(func(p *Page) error {
		_, err := p.AddButton(variant, slot)
		return err
	})
}

// AddDefaultButtonAll places a navigation button at its default slot on every page.
func (r *Registry) AddDefaultButtonAll(variant Variant) error {
	return r.each(func(p *Page) error {
		_, err := p.AddDefaultButton(variant)
		return err
	})
}

// AddCustomButtonAll places a separate custom button on every page.
func (r *Registry) AddCustomButtonAll(kind Kind, slot int, action Action) error {
	return r.each(func(p *Page) error {
		_, err := p.AddCustomButton(kind, slot, action)
		return err
	})
}

// FillBorderAll applies PlaceBorder to every page.
func (r *Registry) FillBorderAll(pattern Pattern, kind Kind) error {
	return r.each(func(p *Page) error {
		return p.PlaceBorder(pattern, kind)
	})
}

// Owns reports whether page is currently registered under its number.
func (r *Registry) Owns(page *Page) bool {
	if page == nil {
		return false
	}
	live, ok := r.pages[page.number]
	return ok && live == page
}

// PageFor returns the registered page whose surface is s.
func (r *Registry) PageFor(s Surface) (*Page, bool) {
	if s == nil {
		return nil, false
	}
	for _, page := range r.Pages() {
		if page.surface == s {
			return page, true
		}
	}
	return nil, false
}
