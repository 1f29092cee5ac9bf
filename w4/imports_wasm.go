//go:build tinygo.wasm

package w4

import "unsafe"

//go:wasmimport env blit
func blit(sprite *byte, x, y int32, width, height, flags uint32)

//go:wasmimport env blitSub
func blitSub(sprite *byte, x, y int32, width, height, srcX, srcY, stride, flags uint32)

//go:wasmimport env line
func line(x1, y1, x2, y2 int32)

//go:wasmimport env hline
func hline(x, y int32, n uint32)

//go:wasmimport env vline
func vline(x, y int32, n uint32)

//go:wasmimport env oval
func oval(x, y int32, width, height uint32)

//go:wasmimport env rect
func rect(x, y int32, width, height uint32)

//go:wasmimport env textUtf8
func textUtf8(text *byte, n uint32, x, y int32)

//go:wasmimport env tone
func tone(frequency, duration, volume, flags uint32)

//go:wasmimport env diskr
func diskr(dest *byte, size uint32) uint32

//go:wasmimport env diskw
func diskw(src *byte, size uint32) uint32

//go:wasmimport env traceUtf8
func traceUtf8(text *byte, n uint32)

func ptr(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return &b[0]
}

func hostBlit(sprite []byte, x, y int32, width, height, flags uint32) {
	blit(ptr(sprite), x, y, width, height, flags)
}

func hostBlitSub(sprite []byte, x, y int32, width, height, srcX, srcY, stride, flags uint32) {
	blitSub(ptr(sprite), x, y, width, height, srcX, srcY, stride, flags)
}

func hostLine(x1, y1, x2, y2 int32)                      { line(x1, y1, x2, y2) }
func hostHLine(x, y int32, n uint32)                     { hline(x, y, n) }
func hostVLine(x, y int32, n uint32)                     { vline(x, y, n) }
func hostOval(x, y int32, width, height uint32)          { oval(x, y, width, height) }
func hostRect(x, y int32, width, height uint32)          { rect(x, y, width, height) }
func hostTone(frequency, duration, volume, flags uint32) { tone(frequency, duration, volume, flags) }

func hostText(s string, x, y int32) {
	textUtf8(unsafe.StringData(s), uint32(len(s)), x, y)
}

func hostDiskR(dst []byte) uint32 { return diskr(ptr(dst), uint32(len(dst))) }
func hostDiskW(src []byte) uint32 { return diskw(ptr(src), uint32(len(src))) }

func hostTrace(s string) { traceUtf8(unsafe.StringData(s), uint32(len(s))) }
