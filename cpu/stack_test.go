package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mos6502/memory"
)

func newStack() (s *Stack) {
	s = &Stack{Memory: &memory.Memory{}}
	s.Reset()
	return
}

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := newStack()
	assert.Equal(0, s.Depth())

	s.Push(0x12)
	assert.Equal(1, s.Depth())
	assert.Equal(uint8(0xfc), s.Pointer)
	assert.Equal(uint8(0x12), s.Memory.Read(0x01fd))
	assert.Equal(uint8(0x12), s.Peek())
}

func TestStack_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	s := newStack()

	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}
	for _, b := range data {
		s.Push(b)
	}
	assert.Equal(len(data), s.Depth())

	for n := range data {
		assert.Equal(data[len(data)-1-n], s.Pop())
	}
	assert.Equal(0, s.Depth())
	assert.Equal(STACK_RESET, s.Pointer)
}

func TestStack_Word(t *testing.T) {
	assert := assert.New(t)

	s := newStack()

	for _, w := range []uint16{0x0000, 0x1234, 0xfffe, 0xffff} {
		s.Push16(w)
		assert.Equal(w, s.Pop16())
	}

	s.Push16(0xabcd)
	assert.Equal(uint8(0xab), s.Memory.Read(0x01fd))
	assert.Equal(uint8(0xcd), s.Memory.Read(0x01fc))
}

func TestStack_Wrap(t *testing.T) {
	assert := assert.New(t)

	s := newStack()
	s.Pointer = 0x00
	s.Push(0x55)
	assert.Equal(uint8(0xff), s.Pointer)
	assert.Equal(uint8(0x55), s.Memory.Read(0x0100))
	assert.Equal(uint8(0x55), s.Pop())
	assert.Equal(uint8(0x00), s.Pointer)
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := newStack()
	s.Push(0x34)
	s.Push(0x56)
	assert.Equal(2, s.Depth())

	s.Reset()
	assert.Equal(STACK_RESET, s.Pointer)
	assert.Equal(0, s.Depth())
	assert.Equal(uint8(0x34), s.Memory.Read(0x01fd))
}
