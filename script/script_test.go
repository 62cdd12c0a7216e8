package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mos6502/cpu"
)

func newCpu(t *testing.T, program []byte) (c *cpu.Cpu) {
	c = cpu.NewCpu(cpu.DefaultTable())
	assert.NoError(t, c.Load(program))
	c.Reset()
	return
}

func TestScript_NoStep(t *testing.T) {
	assert := assert.New(t)

	sc := NewScript()
	defer sc.Close()

	assert.NoError(sc.Load("empty", strings.NewReader("x = 1")))

	c := newCpu(t, []byte{0xa9, 0x05, 0x00})
	assert.NoError(c.RunWithHook(sc.Hook))
	assert.Equal(uint8(5), c.A)
}

func TestScript_Breakpoint(t *testing.T) {
	assert := assert.New(t)

	sc := NewScript()
	defer sc.Close()

	source := `
function step()
	if reg("pc") == 0x0604 then
		stop()
	end
end
`
	assert.NoError(sc.Load("break", strings.NewReader(source)))

	// INX; INX; INX; INX; INX; BRK
	c := newCpu(t, []byte{0xe8, 0xe8, 0xe8, 0xe8, 0xe8, 0x00})
	err := c.RunWithHook(sc.Hook)
	assert.ErrorIs(err, cpu.ErrStopped)
	assert.Equal(uint16(0x0604), c.Pc)
	assert.Equal(uint8(4), c.X)

	// Resume without the script.
	assert.NoError(c.RunWithHook(func(c *cpu.Cpu) error { return nil }))
	assert.Equal(uint8(5), c.X)
}

func TestScript_ReturnFalse(t *testing.T) {
	assert := assert.New(t)

	sc := NewScript()
	defer sc.Close()

	source := `
count = 0
function step()
	count = count + 1
	return count <= 3
end
`
	assert.NoError(sc.Load("count", strings.NewReader(source)))

	c := newCpu(t, []byte{0x4c, 0x00, 0x06})
	err := c.RunWithHook(sc.Hook)
	assert.ErrorIs(err, cpu.ErrStopped)
	assert.Equal(3, c.Ticks)
}

func TestScript_PeekPoke(t *testing.T) {
	assert := assert.New(t)

	sc := NewScript()
	defer sc.Close()

	source := `
function step()
	if peek(0x10) == 0 then
		poke(0x10, 0x42)
		setreg("x", 7)
	end
	text, length = disasm(reg("pc"))
end
`
	assert.NoError(sc.Load("poke", strings.NewReader(source)))

	// LDA $10; BRK
	c := newCpu(t, []byte{0xa5, 0x10, 0x00})
	assert.NoError(c.RunWithHook(sc.Hook))
	assert.Equal(uint8(0x42), c.A)
	assert.Equal(uint8(7), c.X)
}

func TestScript_Errors(t *testing.T) {
	assert := assert.New(t)

	sc := NewScript()
	defer sc.Close()

	err := sc.Load("syntax", strings.NewReader("function step("))
	assert.ErrorIs(err, ErrScript)

	assert.NoError(sc.Load("reg", strings.NewReader(`function step() return reg("q") end`)))
	c := newCpu(t, []byte{0x00})
	err = c.RunWithHook(sc.Hook)
	assert.ErrorIs(err, ErrScript)
}
