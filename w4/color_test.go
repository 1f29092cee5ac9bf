package w4

import "testing"

func TestColor(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	if c != 0x123456 {
		t.Errorf("RGB returned %.6x, want 123456", uint32(c))
	}
	if r, g, b := c.R(), c.G(), c.B(); r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("components are %.2x %.2x %.2x, want 12 34 56", r, g, b)
	}
	r, g, b, a := c.RGBA()
	if r != 0x1212 || g != 0x3434 || b != 0x5656 || a != 0xffff {
		t.Errorf("RGBA returned %.4x %.4x %.4x %.4x", r, g, b, a)
	}
}

func TestPaletteLayout(t *testing.T) {
	defer ResetMemory()
	SetPalette(DefaultPalette)
	// Each entry is a little-endian uint32, so blue comes first.
	want := []byte{
		0xcf, 0xf8, 0xe0, 0,
		0x6c, 0xc0, 0x86, 0,
		0x50, 0x68, 0x30, 0,
		0x21, 0x18, 0x07, 0,
	}
	for i, w := range want {
		if g := Peek(PaletteAddr + i); g != w {
			t.Errorf("Peek(%#x) == %.2x, want %.2x", PaletteAddr+i, g, w)
		}
	}
	if p := LoadPalette(); p != DefaultPalette {
		t.Errorf("LoadPalette returned %x, want %x", p, DefaultPalette)
	}

	SetPaletteColor(2, 0xff123456)
	if g := PaletteColor(2); g != 0x123456 {
		t.Errorf("PaletteColor(2) == %.8x, want 00123456", uint32(g))
	}
}

func TestDrawColors(t *testing.T) {
	for _, c := range []struct {
		dc   DrawColors
		want uint16
	}{
		{NewDrawColors(0, 0, 0, 0), 0x0000},
		{NewDrawColors(2, 0, 0, 0), 0x0002},
		{NewDrawColors(1, 2, 3, 4), 0x4321},
		{NewDrawColors(4, 3, 0, 1), 0x1034},
		{DrawColors(0x4321).With(1, 0), 0x4320},
		{DrawColors(0x4321).With(3, 4), 0x4421},
		{DrawColors(0xffff).With(2, 1), 0xff1f},
	} {
		if uint16(c.dc) != c.want {
			t.Errorf("DrawColors == %.4x, want %.4x", uint16(c.dc), c.want)
		}
	}

	dc := DrawColors(0x4321)
	for i := 1; i <= 4; i++ {
		if g := dc.Slot(i); g != uint8(i) {
			t.Errorf("Slot(%d) returned %d, want %d", i, g, i)
		}
	}
}

func TestDrawColorsRegister(t *testing.T) {
	defer ResetMemory()
	SetDrawColors(0x4321)
	if lo, hi := Peek(DrawColorsAddr), Peek(DrawColorsAddr+1); lo != 0x21 || hi != 0x43 {
		t.Errorf("register bytes are %.2x %.2x, want 21 43", lo, hi)
	}
	if g := GetDrawColors(); g != 0x4321 {
		t.Errorf("GetDrawColors returned %.4x, want 4321", uint16(g))
	}
	// Neighbouring registers are untouched.
	if g := Peek(GamepadAddr); g != 0 {
		t.Errorf("Peek(GamepadAddr) == %.2x, want 00", g)
	}
}

func TestDrawColorsPanics(t *testing.T) {
	for name, f := range map[string]func(){
		"slot 0":  func() { DrawColors(0).Slot(0) },
		"slot 5":  func() { DrawColors(0).With(5, 1) },
		"color 5": func() { DrawColors(0).With(1, 5) },
		"palette": func() { PaletteColor(4) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("did not panic")
				}
			}()
			f()
		})
	}
}
