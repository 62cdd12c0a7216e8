package keypad

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mos6502/cpu"
	"github.com/ezrec/mos6502/memory"
)

func TestKeypad_Poll(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		keys string
		last byte
		err  error
	}){
		{"none", "", 0x00, nil},
		{"up", "w", KEY_UP, nil},
		{"last_wins", "wasd", KEY_RIGHT, nil},
		{"upper", "S", KEY_DOWN, nil},
		{"ignored", "wxyz", KEY_UP, nil},
		{"quit", "aq", KEY_LEFT, ErrQuit},
		{"escape", "\x1b", 0x00, ErrQuit},
	}

	for _, entry := range table {
		mem := &memory.Memory{}
		kp := NewKeypad()
		for _, key := range []byte(entry.keys) {
			kp.Press(key)
		}

		err := kp.Poll(mem)
		if entry.err == nil {
			assert.NoError(err, entry.name)
		} else {
			assert.ErrorIs(err, entry.err, entry.name)
		}
		assert.Equal(entry.last, mem.Read(ADDRESS), entry.name)
		assert.Equal(entry.last, kp.Last, entry.name)
	}
}

func TestKeypad_Start(t *testing.T) {
	assert := assert.New(t)

	mem := &memory.Memory{}
	kp := NewKeypad()
	kp.Start(strings.NewReader("asd"))
	defer kp.Stop()

	assert.Eventually(func() bool {
		assert.NoError(kp.Poll(mem))
		return mem.Read(ADDRESS) == KEY_RIGHT
	}, time.Second, time.Millisecond)
}

func TestKeypad_Stop(t *testing.T) {
	kp := NewKeypad()
	kp.Stop()
	kp.Stop()
}

func TestKeypad_Hook(t *testing.T) {
	assert := assert.New(t)

	// loop: LDA $FF; CMP #'d'; BNE loop; BRK
	program := []byte{0xa5, 0xff, 0xc9, KEY_RIGHT, 0xd0, 0xfa, 0x00}

	c := cpu.NewCpu(cpu.DefaultTable())
	kp := NewKeypad()

	steps := 0
	err := c.Load(program)
	assert.NoError(err)
	c.Reset()
	err = c.RunWithHook(func(c *cpu.Cpu) error {
		steps++
		if steps == 10 {
			kp.Press(KEY_RIGHT)
		}
		return kp.Hook(c)
	})
	assert.NoError(err)
	assert.True(c.Halted)
	assert.Equal(KEY_RIGHT, c.A)

	kp.Press(KEY_QUIT)
	c.Reset()
	err = c.RunWithHook(kp.Hook)
	assert.ErrorIs(err, ErrQuit)
}
