//go:build tinygo.wasm

package w4

import "unsafe"

// mem views the host's memory map in place.
var mem = unsafe.Slice((*byte)(unsafe.Pointer(uintptr(memBase))), memSize)
