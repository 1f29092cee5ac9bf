//go:build !tinygo.wasm

package w4

// mem stands in for the host's memory map.
var mem = make([]byte, memSize)

// Peek returns the byte at addr in the memory map.
func Peek(addr int) byte {
	checkAddr(addr)
	return reg8(addr)
}

// Poke sets the byte at addr in the memory map, as the host would
// (for instance to report a pressed button).
func Poke(addr int, b byte) {
	checkAddr(addr)
	setReg8(addr, b)
}

// ResetMemory zeroes the memory map.
func ResetMemory() {
	for i := range mem {
		mem[i] = 0
	}
}

func checkAddr(addr int) {
	if addr < memBase || addr >= memBase+memSize {
		panic("w4: address outside memory map")
	}
}
