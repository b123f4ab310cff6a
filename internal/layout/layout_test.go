package layout

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/grid-menu/internal/menu"
	"github.com/atomicstack/grid-menu/internal/surface"
)

func TestLoadShopLayout(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "shop.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Pages) != 2 || f.Pages[0].Count != 2 || f.Pages[1].Rows != 2 {
		t.Fatalf("unexpected pages: %+v", f.Pages)
	}
	if !f.All.Frame || len(f.All.Buttons) != 2 {
		t.Fatalf("unexpected all section: %+v", f.All)
	}
	if slot := f.Pages[0].Buttons[0].Slot; slot == nil || *slot != 13 {
		t.Fatalf("expected custom slot 13, got %v", slot)
	}
}

func TestBuildShopLayout(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "shop.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store := surface.NewStore()
	reg := menu.New(store)
	var messages []string
	notify := func(user menu.User, page *menu.Page, msg string) {
		messages = append(messages, user.Name()+"@"+page.Title()+": "+msg)
	}
	if err := Build(reg, f, notify); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	titles := make([]string, 0, reg.Size())
	for _, p := range reg.Pages() {
		titles = append(titles, p.Title())
	}
	if want := []string{"Shop - 1", "Shop - 2", "Bank - 3"}; !reflect.DeepEqual(titles, want) {
		t.Fatalf("expected %v, got %v", want, titles)
	}

	shop, _ := reg.Page(1)
	cells := shop.Cells()
	if cells[0] != "black_stained_glass_pane" || cells[18] != menu.KindArrow || cells[26] != menu.KindArrow {
		t.Fatalf("unexpected shop frame/buttons: %q %q %q", cells[0], cells[18], cells[26])
	}
	if cells[13] != "emerald" {
		t.Fatalf("expected emerald at 13, got %q", cells[13])
	}

	bank, _ := reg.Page(3)
	cells = bank.Cells()
	if cells[0] != "gold_block" || cells[1] != "black_stained_glass_pane" {
		t.Fatalf("expected bank border over frame, got %q %q", cells[0], cells[1])
	}
	if cells[12] != "lava_bucket" {
		t.Fatalf("expected delete button drawn as lava_bucket, got %q", cells[12])
	}
	if b, ok := bank.Button(12); !ok || b.Variant() != menu.VariantDeletePage {
		t.Fatalf("expected delete button at 12")
	}

	n := reg.HandleActivation(menu.NewActivation(surface.Player("alex"), shop.Surface(), 13))
	if n != 1 {
		t.Fatalf("expected one activation, got %d", n)
	}
	if want := []string{"alex@Shop - 1: bought an emerald"}; !reflect.DeepEqual(messages, want) {
		t.Fatalf("expected %v, got %v", want, messages)
	}
}

func TestDefaultLayout(t *testing.T) {
	reg := menu.New(surface.NewStore())
	if err := Build(reg, Default(3, 3, "Menu", "asc"), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Size() != 3 || reg.Mode() != menu.NumberingAscending {
		t.Fatalf("expected 3 ascending pages, got %d %s", reg.Size(), reg.Mode())
	}
	page, _ := reg.Page(2)
	if page.Title() != "Menu - 2" {
		t.Fatalf("expected Menu - 2, got %q", page.Title())
	}
	want := map[int]menu.Kind{0: DefaultFill, 4: InfoKind, 18: menu.KindArrow, 21: menu.KindTNT, 23: menu.KindPaper, 26: menu.KindArrow, 10: menu.KindNone}
	cells := page.Cells()
	for slot, kind := range want {
		if cells[slot] != kind {
			t.Fatalf("slot %d: expected %q, got %q", slot, kind, cells[slot])
		}
	}
	// a message button without a notifier is a silent no-op
	if n := reg.HandleActivation(menu.NewActivation(surface.Player("alex"), page.Surface(), 4)); n != 1 {
		t.Fatalf("expected the info button to activate, got %d", n)
	}
}

func TestDefaultLayoutWithoutPages(t *testing.T) {
	reg := menu.New(surface.NewStore())
	if err := Build(reg, Default(0, 3, "Menu", ""), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Size() != 0 {
		t.Fatalf("expected empty registry, got %d", reg.Size())
	}
}

func TestDefaultLayoutRoundTrips(t *testing.T) {
	data, err := Default(2, 4, "Menu", "descending").Marshal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := Parse(data)
	if err != nil {
		t.Fatalf("expected generated layout to validate, got %v\n%s", err, data)
	}
	if f.Pages[0].Rows != 4 || f.Numbering != "descending" || len(f.All.Buttons) != 5 {
		t.Fatalf("unexpected layout after round trip: %+v", f)
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"unknown key":         "pages:\n  - rows: 3\n    colour: red\n",
		"zero rows":           "pages:\n  - rows: 0\n",
		"missing rows":        "pages:\n  - name: Shop\n",
		"negative slot":       "all:\n  buttons:\n    - type: back\n      slot: -2\n",
		"custom without kind": "all:\n  buttons:\n    - type: custom\n      slot: 3\n",
		"bad button type":     "all:\n  buttons:\n    - type: teleport\n",
		"bad numbering":       "numbering: sideways\n",
		"short border row":    "all:\n  border: [\"####\"]\n",
	}
	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		if !errors.Is(err, ErrInvalidLayout) {
			t.Fatalf("%s: expected invalid layout, got %v", name, err)
		}
	}
}

func TestValidateReportsPaths(t *testing.T) {
	issues, err := Validate([]byte("pages:\n  - rows: 0\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) == 0 {
		t.Fatalf("expected issues")
	}
	if !strings.HasPrefix(issues[0].Path, "/pages/0") {
		t.Fatalf("expected issue under /pages/0, got %q", issues[0].Path)
	}
}

func TestParseRejectsUnsupportedVersion(t *testing.T) {
	_, err := Parse([]byte("version: \"2.0.0\"\n"))
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected unsupported version, got %v", err)
	}
	if _, err := Parse([]byte("version: v1.4.2\n")); err != nil {
		t.Fatalf("expected v-prefixed 1.x accepted, got %v", err)
	}
	if _, err := Parse([]byte("version: banana\n")); err == nil {
		t.Fatalf("expected unparsable version rejected")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestBuildCollectsDecorationErrors(t *testing.T) {
	slot := 40
	f := &File{
		Pages: []PageSpec{
			{Name: "small", Rows: 1},
			{Name: "big", Rows: 5},
		},
		All: Decor{Buttons: []ButtonSpec{{Type: "forward", Slot: &slot}}},
	}
	reg := menu.New(surface.NewStore())
	err := Build(reg, f, nil)
	if !errors.Is(err, menu.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument from the small page, got %v", err)
	}
	big, _ := reg.Page(2)
	if _, ok := big.Button(40); !ok {
		t.Fatalf("expected forward button on the big page")
	}
}

func TestBuildStopsOnBadPage(t *testing.T) {
	f := &File{Pages: []PageSpec{{Name: "x", Rows: 0}}}
	reg := menu.New(surface.NewStore())
	if err := Build(reg, f, nil); !errors.Is(err, menu.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if err := Build(nil, f, nil); !errors.Is(err, menu.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for nil registry, got %v", err)
	}
}
