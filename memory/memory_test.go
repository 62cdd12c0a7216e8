package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	assert.Equal(byte(0), mem.Read(0x0000))
	assert.Equal(byte(0), mem.Read(0xffff))

	mem.Write(0x00ff, 0x77)
	mem.Write(0xffff, 0x12)
	assert.Equal(byte(0x77), mem.Read(0x00ff))
	assert.Equal(byte(0x12), mem.Read(0xffff))

	mem.Reset()
	assert.Equal(byte(0), mem.Read(0x00ff))
	assert.Equal(byte(0), mem.Read(0xffff))
}

func TestMemory_Word(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.WriteWord(0xff00, 0x1234)
	assert.Equal(byte(0x34), mem.Read(0xff00))
	assert.Equal(byte(0x12), mem.Read(0xff01))

	mem.Write(0x8000, 0xcd)
	mem.Write(0x8001, 0xab)
	assert.Equal(uint16(0xabcd), mem.ReadWord(0x8000))

	// High byte wraps to the bottom of memory.
	mem.WriteWord(0xffff, 0xbeef)
	assert.Equal(byte(0xef), mem.Read(0xffff))
	assert.Equal(byte(0xbe), mem.Read(0x0000))
	assert.Equal(uint16(0xbeef), mem.ReadWord(0xffff))
}

func TestMemory_WordRoundTrip(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	for _, addr := range []uint16{0x0000, 0x00fe, 0x01ff, 0x8000, 0xfffc, 0xfffe} {
		for _, word := range []uint16{0x0000, 0x00ff, 0xff00, 0x8001, 0xffff, 0x1234} {
			mem.WriteWord(addr, word)
			assert.Equal(word, mem.ReadWord(addr), "addr $%04x", addr)
		}
	}
}

func TestMemory_Load(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	err := mem.Load(0x0600, []byte{0xa9, 0x05, 0x00})
	assert.NoError(err)
	assert.Equal([]byte{0xa9, 0x05, 0x00}, mem.Slice(0x0600, 3))

	// Exactly filling the top of memory is fine.
	err = mem.Load(0xfffe, []byte{0x01, 0x02})
	assert.NoError(err)
	assert.Equal([]byte{0x01, 0x02}, mem.Slice(0xfffe, 2))

	err = mem.Load(0x0000, make([]byte, SIZE))
	assert.NoError(err)
}

func TestMemory_LoadTooLarge(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	err := mem.Load(0xfffe, []byte{0x01, 0x02, 0x03})
	assert.Error(err)

	var too_large *ErrProgramTooLarge
	assert.True(errors.As(err, &too_large))
	assert.Equal(uint16(0xfffe), too_large.Base)
	assert.Equal(3, too_large.Len)

	// Nothing was written.
	assert.Equal(byte(0), mem.Read(0xfffe))
	assert.Equal(byte(0), mem.Read(0xffff))
	assert.Equal(byte(0), mem.Read(0x0000))
}

func TestMemory_Slice(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Write(0xffff, 0xaa)
	mem.Write(0x0000, 0xbb)

	assert.Equal([]byte{0xaa, 0xbb}, mem.Slice(0xffff, 2))
	assert.Equal([]byte{}, mem.Slice(0x1000, 0))
}
