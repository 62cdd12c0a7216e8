// Package memory implements the flat 64KB address space of the 6502.
package memory

const (
	SIZE = 0x10000 // Size of the address space, in bytes.
)

// Memory is byte addressable storage covering the full 16-bit address space.
// The zero value is ready to use.
type Memory struct {
	data [SIZE]byte
}

// Read returns the byte at addr.
func (mem *Memory) Read(addr uint16) byte {
	return mem.data[addr]
}

// Write stores value at addr.
func (mem *Memory) Write(addr uint16, value byte) {
	mem.data[addr] = value
}

// ReadWord reads a little endian word at addr. The high byte address
// wraps at the top of the address space.
func (mem *Memory) ReadWord(addr uint16) uint16 {
	lo := uint16(mem.Read(addr))
	hi := uint16(mem.Read(addr + 1))
	return (hi << 8) | lo
}

// WriteWord writes a little endian word at addr.
func (mem *Memory) WriteWord(addr uint16, value uint16) {
	mem.Write(addr, byte(value&0xff))
	mem.Write(addr+1, byte(value>>8))
}

// Load copies program into memory starting at base.
// The memory is left untouched if the program does not fit.
func (mem *Memory) Load(base uint16, program []byte) (err error) {
	if int(base)+len(program) > SIZE {
		err = &ErrProgramTooLarge{Base: base, Len: len(program)}
		return
	}

	copy(mem.data[base:], program)

	return
}

// Slice returns a copy of count bytes starting at addr, wrapping at the
// top of the address space.
func (mem *Memory) Slice(addr uint16, count int) (data []byte) {
	data = make([]byte, count)
	for n := range data {
		data[n] = mem.Read(addr + uint16(n))
	}
	return
}

// Reset clears all of memory.
func (mem *Memory) Reset() {
	clear(mem.data[:])
}
