package w4

// Framebuffer returns the framebuffer: 160x160 pixels of 2 bits each,
// four pixels to a byte with the leftmost pixel in the lowest bits.
// Pixel values select palette entries 0-3.
func Framebuffer() []byte {
	return mem[FramebufferAddr-memBase:][:FramebufferSize:FramebufferSize]
}

// Pixel returns the palette index of the pixel at (x, y),
// or 0 if (x, y) lies outside the screen.
func Pixel(x, y int) uint8 {
	i, shift, ok := pixelAt(x, y)
	if !ok {
		return 0
	}
	return Framebuffer()[i] >> shift & 0x3
}

// SetPixel sets the pixel at (x, y) to palette index c (0-3).
// Coordinates outside the screen are ignored.
func SetPixel(x, y int, c uint8) {
	i, shift, ok := pixelAt(x, y)
	if !ok {
		return
	}
	fb := Framebuffer()
	fb[i] = fb[i]&^(0x3<<shift) | (c&0x3)<<shift
}

func pixelAt(x, y int) (i int, shift uint, ok bool) {
	if x < 0 || x >= ScreenSize || y < 0 || y >= ScreenSize {
		return 0, 0, false
	}
	n := y*ScreenSize + x
	return n >> 2, uint(n&0x3) * 2, true
}
