//go:build !tinygo.wasm

package w4

// Host receives the procedure calls a cartridge makes when it is not
// running on the console. Arguments arrive already flattened to the
// console's calling convention.
type Host interface {
	Blit(sprite []byte, x, y int32, width, height, flags uint32)
	BlitSub(sprite []byte, x, y int32, width, height, srcX, srcY, stride, flags uint32)
	Line(x1, y1, x2, y2 int32)
	HLine(x, y int32, n uint32)
	VLine(x, y int32, n uint32)
	Oval(x, y int32, width, height uint32)
	Rect(x, y int32, width, height uint32)
	Text(s string, x, y int32)
	Tone(frequency, duration, volume, flags uint32)
	DiskR(dst []byte) uint32
	DiskW(src []byte) uint32
	Trace(s string)
}

var host Host = nopHost{}

// SetHost directs subsequent procedure calls to h and returns the
// previous Host. A nil h discards calls.
func SetHost(h Host) Host {
	prev := host
	if h == nil {
		h = nopHost{}
	}
	host = h
	return prev
}

func hostBlit(sprite []byte, x, y int32, width, height, flags uint32) {
	host.Blit(sprite, x, y, width, height, flags)
}

func hostBlitSub(sprite []byte, x, y int32, width, height, srcX, srcY, stride, flags uint32) {
	host.BlitSub(sprite, x, y, width, height, srcX, srcY, stride, flags)
}

func hostLine(x1, y1, x2, y2 int32)             { host.Line(x1, y1, x2, y2) }
func hostHLine(x, y int32, n uint32)            { host.HLine(x, y, n) }
func hostVLine(x, y int32, n uint32)            { host.VLine(x, y, n) }
func hostOval(x, y int32, width, height uint32) { host.Oval(x, y, width, height) }
func hostRect(x, y int32, width, height uint32) { host.Rect(x, y, width, height) }
func hostText(s string, x, y int32)             { host.Text(s, x, y) }
func hostTone(frequency, duration, volume, flags uint32) {
	host.Tone(frequency, duration, volume, flags)
}
func hostDiskR(dst []byte) uint32 { return host.DiskR(dst) }
func hostDiskW(src []byte) uint32 { return host.DiskW(src) }
func hostTrace(s string)          { host.Trace(s) }

type nopHost struct{}

func (nopHost) Blit([]byte, int32, int32, uint32, uint32, uint32)                            {}
func (nopHost) BlitSub([]byte, int32, int32, uint32, uint32, uint32, uint32, uint32, uint32) {}
func (nopHost) Line(int32, int32, int32, int32)                                              {}
func (nopHost) HLine(int32, int32, uint32)                                                   {}
func (nopHost) VLine(int32, int32, uint32)                                                   {}
func (nopHost) Oval(int32, int32, uint32, uint32)                                            {}
func (nopHost) Rect(int32, int32, uint32, uint32)                                            {}
func (nopHost) Text(string, int32, int32)                                                    {}
func (nopHost) Tone(uint32, uint32, uint32, uint32)                                          {}
func (nopHost) DiskR([]byte) uint32                                                          { return 0 }
func (nopHost) DiskW([]byte) uint32                                                          { return 0 }
func (nopHost) Trace(string)                                                                 {}
