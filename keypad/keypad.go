package keypad

import (
	"io"
	"log"
	"sync"

	"github.com/ezrec/mos6502/cpu"
	"github.com/ezrec/mos6502/memory"
)

const (
	ADDRESS = uint16(0x00ff) // Memory cell holding the last direction key.

	KEY_UP    = byte('w')
	KEY_DOWN  = byte('s')
	KEY_LEFT  = byte('a')
	KEY_RIGHT = byte('d')

	KEY_ESCAPE = byte(0x1b)
	KEY_QUIT   = byte('q')

	KEY_BUFFER = 64 // Keys queued before input is dropped.
)

// Keypad delivers key presses from an input stream to the key cell of
// memory. Keys are read on their own goroutine, and delivered to memory
// only by Poll, on the goroutine running the CPU.
type Keypad struct {
	Verbose bool // If set, logs each key delivered.
	Last    byte // Last direction key delivered.

	keys chan byte
	done chan struct{}
	stop sync.Once
}

// NewKeypad creates a keypad with no input.
func NewKeypad() (kp *Keypad) {
	kp = &Keypad{
		keys: make(chan byte, KEY_BUFFER),
		done: make(chan struct{}),
	}
	return
}

// Start reads keys from input until it fails, or Stop is called.
func (kp *Keypad) Start(input io.Reader) {
	go func() {
		var one [1]byte
		for {
			n, err := input.Read(one[:])
			if n > 0 {
				select {
				case kp.keys <- one[0]:
				case <-kp.done:
					return
				}
			}
			if err != nil {
				if kp.Verbose && err != io.EOF {
					log.Printf("keypad: %v", err)
				}
				return
			}
		}
	}()
}

// Stop ends delivery from the input stream.
func (kp *Keypad) Stop() {
	kp.stop.Do(func() {
		close(kp.done)
	})
}

// Press queues a key. Keys beyond KEY_BUFFER are dropped.
func (kp *Keypad) Press(key byte) {
	select {
	case kp.keys <- key:
	default:
	}
}

// Poll drains the pending keys without blocking, and writes the last
// direction key to ADDRESS. Escape or 'q' returns ErrQuit.
func (kp *Keypad) Poll(mem *memory.Memory) (err error) {
	for {
		select {
		case key := <-kp.keys:
			if key >= 'A' && key <= 'Z' {
				key += 'a' - 'A'
			}
			switch key {
			case KEY_ESCAPE, KEY_QUIT:
				err = ErrQuit
				return
			case KEY_UP, KEY_DOWN, KEY_LEFT, KEY_RIGHT:
				if kp.Verbose {
					log.Printf("keypad: key '%c'", key)
				}
				kp.Last = key
				mem.Write(ADDRESS, key)
			}
		default:
			return
		}
	}
}

// Hook polls the keypad once per CPU step.
func (kp *Keypad) Hook(c *cpu.Cpu) error {
	return kp.Poll(c.Memory)
}
