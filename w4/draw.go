package w4

// BlitFlags control how Blit and BlitSub interpret and place sprite data.
type BlitFlags uint32

const (
	BlitOneBPP BlitFlags = 0
	BlitTwoBPP BlitFlags = 1 << 0
	BlitFlipX  BlitFlags = 1 << 1
	BlitFlipY  BlitFlags = 1 << 2
	BlitRotate BlitFlags = 1 << 3 // 90 degrees anti-clockwise
)

// BPP returns the bits per pixel the flags select.
func (f BlitFlags) BPP() int {
	if f&BlitTwoBPP != 0 {
		return 2
	}
	return 1
}

// Blit draws a width by height sprite at (x, y) using the current draw
// colors. The sprite data must hold at least width*height pixels.
func Blit(sprite []byte, x, y int, width, height uint, flags BlitFlags) {
	checkSprite(sprite, 0, width, height, flags)
	hostBlit(sprite, int32(x), int32(y), uint32(width), uint32(height), uint32(flags))
}

// BlitSub draws the width by height region at (srcX, srcY) of a sprite
// atlas that is stride pixels wide.
func BlitSub(sprite []byte, x, y int, width, height, srcX, srcY, stride uint, flags BlitFlags) {
	if width > 0 && height > 0 {
		checkSprite(sprite, (srcY+height-1)*stride+srcX, width, 1, flags)
	}
	hostBlitSub(sprite, int32(x), int32(y), uint32(width), uint32(height),
		uint32(srcX), uint32(srcY), uint32(stride), uint32(flags))
}

// checkSprite panics if sprite cannot hold skip+width*height pixels,
// so that the host never reads past the end of the slice.
func checkSprite(sprite []byte, skip, width, height uint, flags BlitFlags) {
	bits := (skip + width*height) * uint(flags.BPP())
	if uint(len(sprite))*8 < bits {
		panic("w4: sprite data too short")
	}
}

// Line draws a line from (x1, y1) to (x2, y2) in draw color 1.
func Line(x1, y1, x2, y2 int) {
	hostLine(int32(x1), int32(y1), int32(x2), int32(y2))
}

// HLine draws a horizontal line of length n from (x, y) in draw color 1.
func HLine(x, y int, n uint) { hostHLine(int32(x), int32(y), uint32(n)) }

// VLine draws a vertical line of length n from (x, y) in draw color 1.
func VLine(x, y int, n uint) { hostVLine(int32(x), int32(y), uint32(n)) }

// Oval draws an ellipse bounded by the given rectangle, filled with draw
// color 1 and outlined with draw color 2.
func Oval(x, y int, width, height uint) {
	hostOval(int32(x), int32(y), uint32(width), uint32(height))
}

// Rect draws a rectangle filled with draw color 1 and outlined with
// draw color 2.
func Rect(x, y int, width, height uint) {
	hostRect(int32(x), int32(y), uint32(width), uint32(height))
}

// Text draws s with the built-in font, top-left at (x, y), in draw
// color 1 on a draw color 2 background.
func Text(s string, x, y int) { hostText(s, int32(x), int32(y)) }
