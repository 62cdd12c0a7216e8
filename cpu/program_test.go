package cpu

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Origin: 0x0600,
		Statements: []Statement{
			{LineNo: 1, Address: 0x0600, Words: []string{"LDA", "#$05"}, Bytes: []byte{0xa9, 0x05}},
			{LineNo: 2, Address: 0x0602, Words: []string{"TAX"}, Bytes: []byte{0xaa}},
			{LineNo: 4, Address: 0x0603, Words: []string{"STA", "$1234"}, Bytes: []byte{0x8d, 0x34, 0x12}},
		},
	}

	dbg := prog.Debug(0x0600)
	assert.NotNil(dbg.Statement)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(0x0601)
	assert.NotNil(dbg.Statement)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(0x0605)
	assert.NotNil(dbg.Statement)
	assert.Equal(4, dbg.LineNo)
	assert.Equal(2, dbg.Index)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := ProgramOf(0x0600, []byte{0xea, 0x00})

	assert.Nil(prog.Debug(0x05ff).Statement)
	assert.Nil(prog.Debug(0x0602).Statement)
	assert.NotNil(prog.Debug(0x0601).Statement)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Origin: 0x1000,
		Statements: []Statement{
			{Address: 0x1000, Bytes: []byte{0x01, 0x02}},
			{Address: 0x1004, Bytes: []byte{0x03}},
		},
	}

	assert.Equal(0x1005, prog.End())
	assert.Equal([]byte{0x01, 0x02, 0x00, 0x00, 0x03}, prog.Binary())

	bytes := maps.Collect(prog.Bytes())
	assert.Equal(map[uint16]byte{0x1000: 0x01, 0x1001: 0x02, 0x1004: 0x03}, bytes)
}

func TestProgram_Empty(t *testing.T) {
	assert := assert.New(t)

	prog := ProgramOf(0x0600, nil)
	assert.Equal(0, len(prog.Statements))
	assert.Equal(0x0600, prog.End())
	assert.Equal(0, len(prog.Binary()))
}
