package w4

import "encoding/binary"

func reg8(addr int) byte       { return mem[addr-memBase] }
func setReg8(addr int, v byte) { mem[addr-memBase] = v }

func reg16(addr int) uint16 {
	return binary.LittleEndian.Uint16(mem[addr-memBase:])
}

func setReg16(addr int, v uint16) {
	binary.LittleEndian.PutUint16(mem[addr-memBase:], v)
}

func reg32(addr int) uint32 {
	return binary.LittleEndian.Uint32(mem[addr-memBase:])
}

func setReg32(addr int, v uint32) {
	binary.LittleEndian.PutUint32(mem[addr-memBase:], v)
}
