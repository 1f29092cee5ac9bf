// Package w4 provides typed access to the WASM-4 fantasy console.
//
// The console exposes its hardware as a small region of linear memory
// (palette, draw colors, input state, system flags and the framebuffer)
// and a table of host procedures for drawing, sound, storage and tracing.
// This package wraps both: registers are read and written through typed
// accessors that encode the packed layouts the host expects, and each host
// procedure has a wrapper that flattens typed arguments into the host's
// integer and pointer calling convention.
//
// Built with TinyGo for the wasm4 target, the accessors address the host's
// memory directly. Built any other way, they operate on a private copy of
// the memory map and host procedures are forwarded to a Host, so that
// cartridge code can be exercised by ordinary Go tests.
package w4

// ScreenSize is the width and height of the screen in pixels.
const ScreenSize = 160

// DiskSize is the number of bytes of persistent storage available.
const DiskSize = 1024

// Memory map.
const (
	PaletteAddr      = 0x04
	DrawColorsAddr   = 0x14
	GamepadAddr      = 0x16 // 0x16 - 0x19
	MouseXAddr       = 0x1a
	MouseYAddr       = 0x1c
	MouseButtonsAddr = 0x1e
	SystemFlagsAddr  = 0x1f
	NetPlayAddr      = 0x20
	FramebufferAddr  = 0xa0

	FramebufferSize = ScreenSize * ScreenSize / 4
)

// memBase is the lowest mapped address; the word at 0x00 is reserved.
const (
	memBase = PaletteAddr
	memSize = FramebufferAddr + FramebufferSize - memBase
)
