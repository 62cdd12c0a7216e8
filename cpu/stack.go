package cpu

import (
	"github.com/ezrec/mos6502/memory"
)

const (
	STACK_PAGE  = uint16(0x0100) // Page holding the stack.
	STACK_RESET = uint8(0xfd)    // Stack pointer after reset.
)

// Stack is the hardware stack in page one. The pointer indexes the next
// free byte, and wraps silently in both directions.
type Stack struct {
	Memory  *memory.Memory
	Pointer uint8
}

// Push writes value at the pointer, then decrements the pointer.
func (s *Stack) Push(value byte) {
	s.Memory.Write(STACK_PAGE+uint16(s.Pointer), value)
	s.Pointer--
}

// Pop increments the pointer, then reads the value at the pointer.
func (s *Stack) Pop() (value byte) {
	s.Pointer++
	return s.Memory.Read(STACK_PAGE + uint16(s.Pointer))
}

// Peek returns the value Pop would return, without moving the pointer.
func (s *Stack) Peek() (value byte) {
	return s.Memory.Read(STACK_PAGE + uint16(s.Pointer+1))
}

// Push16 pushes a word, high byte first.
func (s *Stack) Push16(value uint16) {
	s.Push(byte(value >> 8))
	s.Push(byte(value & 0xff))
}

// Pop16 pops a word pushed by Push16.
func (s *Stack) Pop16() (value uint16) {
	lo := uint16(s.Pop())
	hi := uint16(s.Pop())
	return (hi << 8) | lo
}

// Depth returns the number of bytes pushed since reset.
func (s *Stack) Depth() int {
	return int(STACK_RESET - s.Pointer)
}

// Reset sets the pointer to STACK_RESET. Memory is left as is.
func (s *Stack) Reset() {
	s.Pointer = STACK_RESET
}
