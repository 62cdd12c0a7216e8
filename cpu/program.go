package cpu

import (
	"iter"
)

// Link is an operand referring to a label, resolved once the whole
// source has been read.
type Link struct {
	Offset   int    // Offset of the operand in the statement bytes.
	Size     int    // Operand size, 1 or 2 bytes.
	Label    string // Label referred to.
	Relative bool   // Encode as a branch offset.
}

// Statement is a line of assembled source with its location and generated bytes.
type Statement struct {
	LineNo  int
	Address uint16
	Words   []string
	Bytes   []byte
	Links   []Link
}

// Program is an assembled program.
type Program struct {
	Origin     uint16
	Statements []Statement
}

// Debug locates a byte within a program statement.
type Debug struct {
	*Statement
	Index int
}

// ProgramOf wraps a binary image as a program without source lines.
func ProgramOf(origin uint16, data []byte) (prog *Program) {
	prog = &Program{Origin: origin}
	if len(data) > 0 {
		prog.Statements = []Statement{{Address: origin, Bytes: data}}
	}
	return
}

// Debug returns the statement generating the byte at addr. The Statement
// is nil if no statement covers addr.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, st := range prog.Statements {
		if int(addr) >= int(st.Address) && int(addr) < int(st.Address)+len(st.Bytes) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     int(addr - st.Address),
			}
			break
		}
	}

	return
}

// End returns the address following the last byte of the program.
func (prog *Program) End() (end int) {
	end = int(prog.Origin)
	for _, st := range prog.Statements {
		end = max(end, int(st.Address)+len(st.Bytes))
	}
	return
}

// Binary returns the memory image from Origin to End. Gaps left by .org
// are zero filled.
func (prog *Program) Binary() (bin []byte) {
	bin = make([]byte, prog.End()-int(prog.Origin))
	for addr, value := range prog.Bytes() {
		bin[int(addr)-int(prog.Origin)] = value
	}

	return
}

// Bytes iterates over every generated byte and its address.
func (prog *Program) Bytes() iter.Seq2[uint16, byte] {
	return func(yield func(addr uint16, value byte) bool) {
		for _, st := range prog.Statements {
			for n, value := range st.Bytes {
				if !yield(st.Address+uint16(n), value) {
					return
				}
			}
		}
	}
}
