package w4

// Color is a palette entry, laid out as 0xRRGGBB.
type Color uint32

// RGB returns the Color with the given components.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements image/color.Color. Palette colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

// Palette holds the four colors the framebuffer's pixel values select.
type Palette [4]Color

// DefaultPalette is the palette the console starts with.
var DefaultPalette = Palette{0xe0f8cf, 0x86c06c, 0x306850, 0x071821}

// LoadPalette returns the current palette.
func LoadPalette() (p Palette) {
	for i := range p {
		p[i] = PaletteColor(i)
	}
	return p
}

// SetPalette replaces the current palette.
func SetPalette(p Palette) {
	for i, c := range p {
		SetPaletteColor(i, c)
	}
}

// PaletteColor returns palette entry i (0-3).
func PaletteColor(i int) Color {
	checkPaletteIndex(i)
	return Color(reg32(PaletteAddr + 4*i))
}

// SetPaletteColor sets palette entry i (0-3). The unused top byte is cleared.
func SetPaletteColor(i int, c Color) {
	checkPaletteIndex(i)
	setReg32(PaletteAddr+4*i, uint32(c)&0xffffff)
}

func checkPaletteIndex(i int) {
	if i < 0 || i > 3 {
		panic("w4: palette index out of range")
	}
}

// DrawColors selects the palette colors used by the drawing procedures.
// It packs four slots of four bits each; slot 1 occupies the low nibble.
// A slot value of 0 is transparent and 1-4 select palette entries 0-3.
type DrawColors uint16

// NewDrawColors returns DrawColors with the four slots set in order.
func NewDrawColors(c1, c2, c3, c4 uint8) DrawColors {
	return DrawColors(0).With(1, c1).With(2, c2).With(3, c3).With(4, c4)
}

// Slot returns the value of slot i (1-4).
func (dc DrawColors) Slot(i int) uint8 {
	checkSlot(i)
	return uint8(dc>>slotShift(i)) & 0xf
}

// With returns a copy of dc with slot i (1-4) set to c (0-4).
func (dc DrawColors) With(i int, c uint8) DrawColors {
	checkSlot(i)
	if c > 4 {
		panic("w4: draw color out of range")
	}
	s := slotShift(i)
	return dc&^(0xf<<s) | DrawColors(c)<<s
}

func slotShift(i int) uint { return uint(i-1) * 4 }

func checkSlot(i int) {
	if i < 1 || i > 4 {
		panic("w4: draw color slot out of range")
	}
}

// GetDrawColors returns the current draw colors.
func GetDrawColors() DrawColors { return DrawColors(reg16(DrawColorsAddr)) }

// SetDrawColors replaces the current draw colors.
func SetDrawColors(dc DrawColors) { setReg16(DrawColorsAddr, uint16(dc)) }
