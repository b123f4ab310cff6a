package theme

import "testing"

func TestKindColourIsStable(t *testing.T) {
	if KindColour("tnt") != "196" {
		t.Fatalf("expected fixed tnt colour, got %v", KindColour("tnt"))
	}
	first := KindColour("emerald")
	for i := 0; i < 5; i++ {
		if got := KindColour("emerald"); got != first {
			t.Fatalf("expected stable colour, got %v then %v", first, got)
		}
	}
}

func TestKindStyleEmpty(t *testing.T) {
	s := Default()
	if got := s.KindStyle("").GetForeground(); got != s.EmptyCell.GetForeground() {
		t.Fatalf("expected empty cell style, got %v", got)
	}
	if got := s.KindStyle("arrow").GetWidth(); got != CellWidth {
		t.Fatalf("expected cell width %d, got %d", CellWidth, got)
	}
}
