//go:build !tinygo.wasm

// Package w4test provides a stand-in for the WASM-4 host, for testing
// cartridge code with the standard Go toolchain.
package w4test

import (
	"testing"

	"github.com/nf/w4go/w4"
)

// Call is one host procedure call.
type Call struct {
	Name string
	Args []int64 // integer arguments, in order
	Data []byte  // copy of the sprite or disk data, if any
	Text string  // text or trace message, if any
}

// Recorder implements w4.Host by recording every call.
// It also keeps DiskSize bytes of persistent storage.
type Recorder struct {
	Calls []Call
	Disk  []byte
}

var _ w4.Host = (*Recorder)(nil)

// Install zeroes the console's memory, directs host procedure calls to a
// new Recorder and restores the previous host when the test finishes.
func Install(t testing.TB) *Recorder {
	t.Helper()
	w4.ResetMemory()
	r := &Recorder{}
	prev := w4.SetHost(r)
	t.Cleanup(func() {
		w4.SetHost(prev)
		w4.ResetMemory()
	})
	return r
}

// Reset forgets recorded calls. Disk contents are kept.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Named returns the recorded calls of the named procedure.
func (r *Recorder) Named(name string) []Call {
	var cs []Call
	for _, c := range r.Calls {
		if c.Name == name {
			cs = append(cs, c)
		}
	}
	return cs
}

// Traces returns the recorded trace messages.
func (r *Recorder) Traces() []string {
	var ss []string
	for _, c := range r.Named("trace") {
		ss = append(ss, c.Text)
	}
	return ss
}

// Texts returns the strings drawn with the text procedure.
func (r *Recorder) Texts() []string {
	var ss []string
	for _, c := range r.Named("text") {
		ss = append(ss, c.Text)
	}
	return ss
}

func (r *Recorder) record(name string, data []byte, text string, args ...int64) {
	c := Call{Name: name, Args: args, Text: text}
	if data != nil {
		c.Data = append([]byte(nil), data...)
	}
	r.Calls = append(r.Calls, c)
}

func (r *Recorder) Blit(sprite []byte, x, y int32, width, height, flags uint32) {
	r.record("blit", sprite, "",
		int64(x), int64(y), int64(width), int64(height), int64(flags))
}

func (r *Recorder) BlitSub(sprite []byte, x, y int32, width, height, srcX, srcY, stride, flags uint32) {
	r.record("blitSub", sprite, "",
		int64(x), int64(y), int64(width), int64(height),
		int64(srcX), int64(srcY), int64(stride), int64(flags))
}

func (r *Recorder) Line(x1, y1, x2, y2 int32) {
	r.record("line", nil, "", int64(x1), int64(y1), int64(x2), int64(y2))
}

func (r *Recorder) HLine(x, y int32, n uint32) {
	r.record("hline", nil, "", int64(x), int64(y), int64(n))
}

func (r *Recorder) VLine(x, y int32, n uint32) {
	r.record("vline", nil, "", int64(x), int64(y), int64(n))
}

func (r *Recorder) Oval(x, y int32, width, height uint32) {
	r.record("oval", nil, "", int64(x), int64(y), int64(width), int64(height))
}

func (r *Recorder) Rect(x, y int32, width, height uint32) {
	r.record("rect", nil, "", int64(x), int64(y), int64(width), int64(height))
}

func (r *Recorder) Text(s string, x, y int32) {
	r.record("text", nil, s, int64(x), int64(y))
}

func (r *Recorder) Tone(frequency, duration, volume, flags uint32) {
	r.record("tone", nil, "",
		int64(frequency), int64(duration), int64(volume), int64(flags))
}

// DiskR copies stored bytes into dst, as the host does.
func (r *Recorder) DiskR(dst []byte) uint32 {
	n := copy(dst, r.Disk)
	r.record("diskr", dst[:n], "", int64(len(dst)))
	return uint32(n)
}

// DiskW replaces the stored bytes with src, as the host does.
func (r *Recorder) DiskW(src []byte) uint32 {
	if len(src) > w4.DiskSize {
		src = src[:w4.DiskSize]
	}
	r.Disk = append(r.Disk[:0], src...)
	r.record("diskw", src, "", int64(len(src)))
	return uint32(len(src))
}

func (r *Recorder) Trace(s string) {
	r.record("trace", nil, s)
}
