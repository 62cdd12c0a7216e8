// Package cpu implements the processor core and assembler for a MOS 6502.
//
// The CPU consists of a program counter, an accumulator (A), two index
// registers (X and Y), a hardware stack on page $01 and a status register
// of eight flags. Instructions are decoded through an opcode table into
// one of ten addressing modes, then executed by a per-instruction handler.
//
// The assembler accepts conventional 6502 source text, supporting labels,
// equates, .org and data directives, and compile-time $(...) expression
// evaluation.
package cpu
