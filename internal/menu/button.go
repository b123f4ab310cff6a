package menu

import "github.com/atomicstack/grid-menu/internal/logging/events"

// Variant enumerates the closed set of button behaviours.
type Variant int

const (
	VariantCustom Variant = iota
	VariantBack
	VariantForward
	VariantNewPage
	VariantDeletePage
)

func (v Variant) String() string {
	switch v {
	case VariantBack:
		return "back"
	case VariantForward:
		return "forward"
	case VariantNewPage:
		return "new-page"
	case VariantDeletePage:
		return "delete-page"
	default:
		return "custom"
	}
}

// DefaultKind returns the visual kind a navigation variant is drawn with.
func (v Variant) DefaultKind() Kind {
	switch v {
	case VariantBack, VariantForward:
		return KindArrow
	case VariantNewPage:
		return KindPaper
	case VariantDeletePage:
		return KindTNT
	default:
		return KindNone
	}
}

// Action is the caller-supplied behaviour of a custom button.
type Action func(evt ActivationEvent, user User, button *Button)

// Button binds a slot and a visual kind to a behaviour. The owning page is a
// plain back reference set once by Page.Place; the page owns the button.
type Button struct {
	slot    int
	kind    Kind
	variant Variant
	action  Action
	page    *Page
}

// NewButton creates an unplaced navigation button drawn with kind. An empty
// kind falls back to the variant's default.
func NewButton(variant Variant, kind Kind) *Button {
	if kind == KindNone {
		kind = variant.DefaultKind()
	}
	return &Button{slot: -1, kind: kind, variant: variant}
}

// NewCustomButton creates an unplaced button that runs action when clicked.
func NewCustomButton(kind Kind, action Action) *Button {
	return &Button{slot: -1, kind: kind, variant: VariantCustom, action: action}
}

// Slot returns the bound slot, or -1 before placement.
func (b *Button) Slot() int { return b.slot }

func (b *Button) Kind() Kind { return b.kind }

func (b *Button) Variant() Variant { return b.variant }

// Page returns the owning page, or nil before placement.
func (b *Button) Page() *Page { return b.page }

// matches applies the slot-level part of the routing predicate; the principal
// and title checks happen once per event in Registry.HandleActivation.
func (b *Button) matches(evt ActivationEvent) bool {
	if b.page == nil {
		return false
	}
	if evt.Slot != b.slot {
		return false
	}
	return evt.Kind != KindNone && evt.Kind == b.kind
}

// activate runs the variant's behaviour. Missing pages, an unresolved user or
// a missing surface all make the click a silent no-op.
func (b *Button) activate(evt ActivationEvent, user User) {
	if b.page == nil || b.page.registry == nil || user == nil {
		return
	}
	reg := b.page.registry
	events.Click.Activate(b.page.Title(), b.slot, b.variant.String())
	switch b.variant {
	case VariantBack:
		if target, ok := reg.Page(b.page.Number() - 1); ok {
			target.Show(user)
		}
	case VariantForward:
		if target, ok := reg.Page(b.page.Number() + 1); ok {
			target.Show(user)
		}
	case VariantNewPage:
		if evt.Surface == nil {
			return
		}
		rows := evt.Surface.Size() / Columns
		page, err := reg.AddPage(rows, b.page.Name())
		if err != nil {
			return
		}
		page.Show(user)
	case VariantDeletePage:
		reg.DeletePage(b.page.Number())
	case VariantCustom:
		if b.action != nil {
			b.action(evt, user, b)
		}
	}
}
