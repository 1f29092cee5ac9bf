package w4

import (
	"runtime"
	"strings"
	"unsafe"
)

// Trace writes s to the host's debug console.
func Trace(s string) { hostTrace(s) }

// CatchPanic reports a panic to the debug console and then continues
// panicking, which traps the cartridge. Exported hooks defer it:
//
//	//export update
//	func update() {
//		defer w4.CatchPanic()
//		...
//	}
//
// There is no stderr on the console, so without it a panic would abort
// silently.
func CatchPanic() {
	r := recover()
	// Since Go 1.21 panic(nil) recovers as *runtime.PanicNilError.
	if r == nil {
		return
	}
	tracePanic(r)
	panic(r)
}

func tracePanic(r any) {
	Trace("panic")
	if file, line, ok := panicLocation(); ok {
		Trace("location:")
		Trace(file)

		var buf [12]byte
		f := newFormatter(buf[:])
		if f.WriteString("line ") && f.WriteUint(uint64(line)) {
			Trace(f.String())
		} else {
			Trace("NO NUMBERS")
		}
	}
	if msg, ok := panicMessage(r); ok {
		Trace("message: ")
		Trace(msg)
	}
}

// panicLocation returns the position of the innermost frame outside the
// runtime, which is where the panic was raised.
func panicLocation() (file string, line int, ok bool) {
	var pcs [16]uintptr
	n := runtime.Callers(4, pcs[:]) // skip Callers, panicLocation, tracePanic, CatchPanic
	if n == 0 {
		return "", 0, false
	}
	frames := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := frames.Next()
		if fr.Function != "" && !strings.HasPrefix(fr.Function, "runtime.") {
			return fr.File, fr.Line, fr.File != ""
		}
		if !more {
			return "", 0, false
		}
	}
}

func panicMessage(r any) (string, bool) {
	switch v := r.(type) {
	case string:
		return v, true
	case error:
		return v.Error(), true
	case interface{ String() string }:
		return v.String(), true
	}
	return "", false
}

// formatter writes into a fixed buffer without allocating.
// A write that does not fit fails and leaves the buffer unchanged.
type formatter struct {
	buf []byte
	n   int
}

func newFormatter(buf []byte) *formatter {
	return &formatter{buf: buf}
}

func (f *formatter) WriteString(s string) bool {
	if len(f.buf)-f.n < len(s) {
		return false
	}
	f.n += copy(f.buf[f.n:], s)
	return true
}

func (f *formatter) WriteUint(v uint64) bool {
	var digits [20]byte
	i := len(digits)
	for {
		i--
		digits[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	d := digits[i:]
	if len(f.buf)-f.n < len(d) {
		return false
	}
	f.n += copy(f.buf[f.n:], d)
	return true
}

// String returns the formatted text. It aliases the buffer.
func (f *formatter) String() string {
	if f.n == 0 {
		return ""
	}
	return unsafe.String(&f.buf[0], f.n)
}
