package palette

import "testing"

func TestPalette_Shade(t *testing.T) {
	p := Get(Greyscale)
	// 0xE4 is the identity mapping 3,2,1,0
	for colour := uint8(0); colour < 4; colour++ {
		if got := p.Shade(0xE4, colour); got != p.Colors[colour] {
			t.Errorf("colour %d: expected %v, got %v", colour, p.Colors[colour], got)
		}
	}
	// 0x1B inverts it
	if got := p.Shade(0x1B, 0); got != p.Colors[3] {
		t.Errorf("expected %v, got %v", p.Colors[3], got)
	}
}

func TestLookup(t *testing.T) {
	if i, ok := Lookup("Green"); !ok || i != Green {
		t.Errorf("expected %d, got %d (%t)", Green, i, ok)
	}
	if _, ok := Lookup("purple"); ok {
		t.Error("expected unknown palette")
	}
	if Get(42).Name != "greyscale" {
		t.Error("expected out of range index to fall back to greyscale")
	}
}
