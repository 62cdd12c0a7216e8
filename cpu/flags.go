package cpu

// Flags is the processor status register.
type Flags uint8

const (
	FLAG_CARRY             = Flags(1 << 0) // C
	FLAG_ZERO              = Flags(1 << 1) // Z
	FLAG_INTERRUPT_DISABLE = Flags(1 << 2) // I
	FLAG_DECIMAL_MODE      = Flags(1 << 3) // D
	FLAG_BREAK             = Flags(1 << 4) // B
	FLAG_BREAK2            = Flags(1 << 5) // U
	FLAG_OVERFLOW          = Flags(1 << 6) // V
	FLAG_NEGATIVE          = Flags(1 << 7) // N

	FLAGS_RESET = FLAG_INTERRUPT_DISABLE | FLAG_BREAK2 // Status after reset.
)

// Has returns true if all of the bits in flag are set.
func (fl Flags) Has(flag Flags) bool {
	return fl&flag == flag
}

// Set sets or clears the bits in flag.
func (fl *Flags) Set(flag Flags, on bool) {
	if on {
		*fl |= flag
	} else {
		*fl &^= flag
	}
}

// String shows set flags in upper case, clear flags in lower case,
// most significant bit first.
func (fl Flags) String() string {
	letters := []byte("nvubdizc")
	for n := range letters {
		if fl&(1<<(7-n)) != 0 {
			letters[n] -= 'a' - 'A'
		}
	}
	return string(letters)
}
