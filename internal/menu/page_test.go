package menu

import (
	"errors"
	"testing"
)

func TestPlaceReplacesExistingButton(t *testing.T) {
	reg, _ := newTestRegistry(t, 1, 1, "Shop")
	page := reg.Pages()[0]
	first, err := page.AddCustomButton("emerald", 3, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := page.AddButton(VariantForward, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, _ := page.Button(3); b != second {
		t.Fatalf("expected slot 3 bound to the newer button")
	}
	if got := page.Cells()[3]; got != KindArrow {
		t.Fatalf("expected arrow drawn at slot 3, got %q", got)
	}
	if reg.live(first) {
		t.Fatalf("expected replaced button to be inert")
	}
}

func TestPlaceRejectsBadInput(t *testing.T) {
	reg, _ := newTestRegistry(t, 2, 1, "Shop")
	page := reg.Pages()[0]
	if err := page.Place(nil, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for nil button, got %v", err)
	}
	for _, slot := range []int{-1, 9, 100} {
		if err := page.Place(NewButton(VariantBack, KindNone), slot); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("slot %d: expected invalid argument, got %v", slot, err)
		}
	}
	b := NewButton(VariantBack, KindNone)
	if err := page.Place(b, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.Pages()[1].Place(b, 0); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected invalid state placing a button twice, got %v", err)
	}
	if b.Page() != page || b.Slot() != 0 {
		t.Fatalf("expected button to stay on its first page")
	}
	if _, err := page.AddButton(VariantCustom, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for custom via AddButton, got %v", err)
	}
	if _, err := page.AddCustomButton(KindNone, 1, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for kindless custom button, got %v", err)
	}
}

func TestNewButtonKindDefaults(t *testing.T) {
	cases := []struct {
		variant Variant
		want    Kind
	}{
		{VariantBack, KindArrow},
		{VariantForward, KindArrow},
		{VariantNewPage, KindPaper},
		{VariantDeletePage, KindTNT},
	}
	for _, tc := range cases {
		if got := NewButton(tc.variant, KindNone).Kind(); got != tc.want {
			t.Fatalf("%s: expected kind %q, got %q", tc.variant, tc.want, got)
		}
	}
	if got := NewButton(VariantBack, "spectral_arrow").Kind(); got != "spectral_arrow" {
		t.Fatalf("expected explicit kind kept, got %q", got)
	}
	if got := NewButton(VariantBack, KindNone).Slot(); got != -1 {
		t.Fatalf("expected unplaced slot -1, got %d", got)
	}
}

func TestPlaceBorderPreservesButtons(t *testing.T) {
	reg, _ := newTestRegistry(t, 1, 3, "Shop")
	page := reg.Pages()[0]
	if _, err := page.AddDefaultButton(VariantForward); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := page.PlaceBorder(FramePattern(3), "glass"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cells := page.Cells()
	if cells[26] != KindArrow {
		t.Fatalf("expected forward button to survive border, got %q", cells[26])
	}
	if cells[0] != "glass" || cells[9] != "glass" || cells[17] != "glass" {
		t.Fatalf("expected frame cells filled, got %q %q %q", cells[0], cells[9], cells[17])
	}
	if cells[10] != KindNone {
		t.Fatalf("expected interior untouched, got %q", cells[10])
	}
	// clicking the redrawn cell still routes to the button
	evt := click(page, 26)
	if evt.Kind != KindArrow {
		t.Fatalf("expected click to read arrow, got %q", evt.Kind)
	}
}

func TestPlaceBorderLeavesUnmarkedCells(t *testing.T) {
	reg, _ := newTestRegistry(t, 1, 2, "Shop")
	page := reg.Pages()[0]
	if _, err := page.AddCustomButton("emerald", 4, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page.Surface().SetCell(5, "apple")
	pattern, err := ParsePattern([]string{"#.#.#.#.#", "........."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := page.PlaceBorder(pattern, "glass"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cells := page.Cells()
	if cells[4] != "emerald" {
		t.Fatalf("expected button cell kept, got %q", cells[4])
	}
	if cells[5] != "apple" {
		t.Fatalf("expected unmarked cell kept, got %q", cells[5])
	}
	if cells[2] != "glass" || cells[1] != KindNone {
		t.Fatalf("expected alternating fill, got %q %q", cells[2], cells[1])
	}
}

func TestPlaceBorderDimensionMismatch(t *testing.T) {
	reg, _ := newTestRegistry(t, 1, 2, "Shop")
	page := reg.Pages()[0]
	err := page.PlaceBorder(FramePattern(3), "glass")
	if !errors.Is(err, ErrDimensionMismatch) || !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected dimension mismatch, got %v", err)
	}
	for _, kind := range page.Cells() {
		if kind != KindNone {
			t.Fatalf("expected no cells drawn after mismatch, got %q", kind)
		}
	}
}

func TestParsePattern(t *testing.T) {
	if _, err := ParsePattern([]string{"#######"}); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected dimension mismatch for short row, got %v", err)
	}
	if _, err := ParsePattern([]string{"#...x...#"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for unknown char, got %v", err)
	}
	pattern, err := ParsePattern([]string{"1 0 1 0 1", "#########"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := pattern.String(), "#...#...#\n#########"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got, want := FramePattern(3).String(), "#########\n#.......#\n#########"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRenameNumberedAppends(t *testing.T) {
	reg, display := newTestRegistry(t, 2, 1, "Shop")
	page := reg.Pages()[1]
	before := display.created
	if err := page.RenameNumbered(NumberingAscending, reg.Size()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := page.RenameNumbered(NumberingAscending, reg.Size()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Title() != "Shop - 2 - 2" {
		t.Fatalf("expected compounded suffix, got %q", page.Title())
	}
	if display.created != before+2 {
		t.Fatalf("expected a new surface per rename, got %d", display.created-before)
	}
	if page.Surface().Title() != page.Title() {
		t.Fatalf("expected surface retitled, got %q", page.Surface().Title())
	}
	if err := page.RenameNumbered(NumberingNone, reg.Size()); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for none, got %v", err)
	}
}

func TestRenameKeepsContent(t *testing.T) {
	reg, _ := newTestRegistry(t, 1, 1, "Shop")
	page := reg.Pages()[0]
	if _, err := page.AddDefaultButton(VariantForward); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := page.RenameNumbered(NumberingDescending, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Title() != "Shop - 2" {
		t.Fatalf("expected Shop - 2, got %q", page.Title())
	}
	if got := page.Cells()[8]; got != KindArrow {
		t.Fatalf("expected content copied to the new surface, got %q", got)
	}
}

func TestDefaultSlots(t *testing.T) {
	reg, _ := newTestRegistry(t, 1, 6, "Big")
	page := reg.Pages()[0]
	want := map[Variant]int{VariantBack: 45, VariantDeletePage: 48, VariantNewPage: 50, VariantForward: 53, VariantCustom: -1}
	for v, slot := range want {
		if got := page.DefaultSlot(v); got != slot {
			t.Fatalf("%s: expected slot %d, got %d", v, slot, got)
		}
	}
}
