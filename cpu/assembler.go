// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mos6502/memory"
)

// Assembler is a single pass assembler for 6502 source text.
// Forward label references are resolved by a final link step.
type Assembler struct {
	Verbose    bool        // If set, verbosely logs the assembler actions.
	Table      *Table      // Opcode table; the documented set if nil.
	Origin     uint16      // Origin when the source has no .org. Zero selects PROGRAM_BASE, unless OriginSet.
	OriginSet  bool        // If set, Origin is used even when zero.
	Statements []Statement // List of generated statements.

	predefine map[string]string // Predefines
	Label     map[string]uint16 // Map of labels to addresses.
	Equate    map[string]string // Map of equates.

	origin  uint16 // Program origin.
	address int    // Address of the next generated byte.
}

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$\(\)]*\)`)
	reIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word. Words naming a label that
// is not yet defined are returned as an unknown label.
func (asm *Assembler) valueOf(word string) (value int, known bool, label string, err error) {
	if len(word) == 0 {
		err = ErrOperandMissing
		return
	}

	// Equates may refer to other equates.
	for range 8 {
		equate, ok := asm.Equate[word]
		if !ok || equate == word {
			break
		}
		word = equate
	}

	var v64 int64
	switch {
	case word[0] == '$':
		v64, err = strconv.ParseInt(word[1:], 16, 32)
	case word[0] == '%':
		v64, err = strconv.ParseInt(word[1:], 2, 32)
	case word[0] == '-' || (word[0] >= '0' && word[0] <= '9'):
		v64, err = strconv.ParseInt(word, 0, 32)
	case reIdentifier.MatchString(word):
		addr, ok := asm.Label[word]
		if ok {
			value = int(addr)
			known = true
		} else {
			label = word
		}
		return
	default:
		err = ErrParseNumber(word)
		return
	}

	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	known = true

	return
}

// putValue stores a little endian operand of size bytes.
func putValue(dst []byte, value int, size int) (err error) {
	switch size {
	case 1:
		if value < -128 || value > 0xff {
			err = ErrOperandRange
			return
		}
		dst[0] = byte(value)
	case 2:
		if value < 0 || value > 0xffff {
			err = ErrOperandRange
			return
		}
		dst[0] = byte(value & 0xff)
		dst[1] = byte(value >> 8)
	default:
		err = ErrOperandInvalid
	}
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key := range asm.Equate {
		v, known, _, err := asm.valueOf(key)
		if err != nil || !known {
			// Ignore equates that are not numbers.
			continue
		}
		pred[key] = starlark.MakeInt(v)
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(int(addr))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// substitute expands 'c' character literals and $(...) expressions.
func (asm *Assembler) substitute(line string) (out string, err error) {
	out = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		}
		return fmt.Sprintf("%d", str[0])
	})

	out = reExpression.ReplaceAllStringFunc(out, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = errors.Join(ErrParseExpression(str[2:len(str)-1]), _err)
		}
		return fmt.Sprintf("%d", value)
	})

	return
}

// currentAddress gets the address of the next generated byte.
func (asm *Assembler) currentAddress() uint16 {
	return uint16(asm.address)
}

// emit appends a statement at the current address.
func (asm *Assembler) emit(lineno int, words []string, bytes []byte, links []Link) (err error) {
	if asm.address+len(bytes) > memory.SIZE {
		err = ErrAddressOverflow
		return
	}

	asm.Statements = append(asm.Statements, Statement{
		LineNo:  lineno,
		Address: asm.currentAddress(),
		Words:   words,
		Bytes:   bytes,
		Links:   links,
	})
	asm.address += len(bytes)

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		var syntax_err ErrSyntax
		if err != nil && !errors.As(err, &syntax_err) {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if asm.Table == nil {
		asm.Table = DefaultTable()
	}

	asm.Statements = asm.Statements[:0]
	asm.Label = make(map[string]uint16, 16)
	asm.Equate = maps.Clone(_cpu_defines)
	asm.Equate["LINENO"] = "0"
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	asm.origin = asm.Origin
	if asm.origin == 0 && !asm.OriginSet {
		asm.origin = PROGRAM_BASE
	}
	asm.address = int(asm.origin)

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.SplitN(text, ";", 2)
		line = strings.TrimSpace(text_comment[0])

		err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for n := range asm.Statements {
		st := &asm.Statements[n]
		for _, link := range st.Links {
			err = asm.link(st, link)
			if err != nil {
				err = ErrSyntax{LineNo: st.LineNo, Line: strings.Join(st.Words, " "), Err: err}
				return
			}
		}
	}

	prog = &Program{
		Origin:     asm.origin,
		Statements: slices.Clone(asm.Statements),
	}

	return
}

// link resolves a label reference of a statement.
func (asm *Assembler) link(st *Statement, link Link) (err error) {
	addr, ok := asm.Label[link.Label]
	if !ok {
		err = ErrLabelMissing(link.Label)
		return
	}

	value := int(addr)
	if link.Relative {
		value -= int(st.Address) + len(st.Bytes)
		if value < -128 || value > 127 {
			err = ErrBranchRange
			return
		}
	}

	return putValue(st.Bytes[link.Offset:], value, link.Size)
}

// parseLine parses a single line of source, without its comment.
func (asm *Assembler) parseLine(line string, lineno int) (err error) {
	asm.Equate["LINENO"] = fmt.Sprintf("%d", lineno)

	line, err = asm.substitute(line)
	if err != nil {
		return
	}

	words := strings.Fields(line)

	// Labels
	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := strings.TrimSuffix(words[0], ":")
		if !reIdentifier.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = asm.currentAddress()
		words = words[1:]
	}

	if len(words) == 0 {
		return
	}

	if strings.HasPrefix(words[0], ".") {
		return asm.parseDirective(words, lineno)
	}

	return asm.parseInstruction(words, lineno)
}

// parseDirective handles .equ, .org, .byte and .word
func (asm *Assembler) parseDirective(words []string, lineno int) (err error) {
	switch strings.ToLower(words[0]) {
	case ".equ":
		// .equ NAME VALUE
		if len(words) != 3 || !reIdentifier.MatchString(words[1]) {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
	case ".org":
		// .org ADDRESS
		if len(words) != 2 {
			err = ErrOrgSyntax
			return
		}
		value, known, _, _err := asm.valueOf(words[1])
		if _err != nil || !known || value < 0 || value > 0xffff {
			err = errors.Join(ErrOrgSyntax, _err)
			return
		}
		if len(asm.Statements) == 0 {
			// Labels defined so far all refer to the first byte.
			for label := range asm.Label {
				asm.Label[label] = uint16(value)
			}
			asm.origin = uint16(value)
		} else if value < asm.address {
			err = ErrOrgBackwards
			return
		}
		asm.address = value
	case ".byte", ".word":
		// .byte VALUE[,VALUE...]
		size := 1
		if strings.ToLower(words[0]) == ".word" {
			size = 2
		}
		values := strings.Split(strings.Join(words[1:], ""), ",")
		if len(words) < 2 || slices.Contains(values, "") {
			err = ErrDataSyntax
			return
		}
		bytes := make([]byte, len(values)*size)
		var links []Link
		for n, word := range values {
			value, known, label, _err := asm.valueOf(word)
			if _err != nil {
				err = errors.Join(ErrDataSyntax, _err)
				return
			}
			if !known {
				links = append(links, Link{Offset: n * size, Size: size, Label: label})
				continue
			}
			err = putValue(bytes[n*size:], value, size)
			if err != nil {
				return
			}
		}
		err = asm.emit(lineno, words, bytes, links)
	default:
		err = ErrDirectiveInvalid
	}

	return
}

// _mnemonic maps assembler mnemonics to instructions. JMP maps to the
// absolute form; the indirect form is selected by its operand.
var _mnemonic = func() (mnemonic map[string]Instruction) {
	mnemonic = make(map[string]Instruction, INSTRUCTION_COUNT)
	for n := range INSTRUCTION_COUNT {
		ins := Instruction(n)
		_, ok := mnemonic[ins.String()]
		if !ok {
			mnemonic[ins.String()] = ins
		}
	}
	return
}()

// lookupInstruction finds the instruction for a mnemonic.
func lookupInstruction(mnemonic string) (ins Instruction, ok bool) {
	ins, ok = _mnemonic[strings.ToUpper(mnemonic)]
	return
}

// parseInstruction evaluates a mnemonic and its operand.
func (asm *Assembler) parseInstruction(words []string, lineno int) (err error) {
	ins, ok := lookupInstruction(words[0])
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	operand := strings.Join(words[1:], "")
	upper := strings.ToUpper(operand)

	table := asm.Table

	var op *Opcode
	var value int
	var known bool
	var label string
	var relative bool

	switch {
	case ins.Branch():
		op = table.Find(ins, NONE_ADDRESSING)
		if op == nil {
			err = ErrAddressing{Mnemonic: ins.String(), Mode: NONE_ADDRESSING}
			return
		}
		value, known, label, err = asm.valueOf(operand)
		if err != nil {
			return
		}
		relative = true
		if known {
			value -= asm.address + 2
			if value < -128 || value > 127 {
				err = ErrBranchRange
				return
			}
		}
	case len(operand) == 0 || (upper == "A" && accumulatorForm(ins)):
		op = table.Find(ins, NONE_ADDRESSING)
		if op == nil {
			if len(operand) == 0 {
				err = ErrOperandMissing
			} else {
				err = ErrAddressing{Mnemonic: ins.String(), Mode: NONE_ADDRESSING}
			}
			return
		}
	case strings.HasPrefix(operand, "#"):
		op = table.Find(ins, IMMEDIATE)
		if op == nil {
			err = ErrAddressing{Mnemonic: ins.String(), Mode: IMMEDIATE}
			return
		}
		value, known, label, err = asm.valueOf(operand[1:])
	case strings.HasPrefix(operand, "("):
		var mode AddressingMode
		var inner string
		switch {
		case strings.HasSuffix(upper, ",X)"):
			mode = INDIRECT_X
			inner = operand[1 : len(operand)-3]
		case strings.HasSuffix(upper, "),Y"):
			mode = INDIRECT_Y
			inner = operand[1 : len(operand)-3]
		case strings.HasSuffix(upper, ")") && ins == JMP:
			ins = JMP_INDIRECT
			mode = ABSOLUTE
			inner = operand[1 : len(operand)-1]
		default:
			err = ErrOperandInvalid
			return
		}
		op = table.Find(ins, mode)
		if op == nil {
			err = ErrAddressing{Mnemonic: ins.String(), Mode: mode}
			return
		}
		value, known, label, err = asm.valueOf(inner)
	default:
		zp, abs := ZERO_PAGE, ABSOLUTE
		inner := operand
		switch {
		case strings.HasSuffix(upper, ",X"):
			zp, abs = ZERO_PAGE_X, ABSOLUTE_X
			inner = operand[:len(operand)-2]
		case strings.HasSuffix(upper, ",Y"):
			zp, abs = ZERO_PAGE_Y, ABSOLUTE_Y
			inner = operand[:len(operand)-2]
		}
		value, known, label, err = asm.valueOf(inner)
		if err != nil {
			return
		}
		op_zp := table.Find(ins, zp)
		op_abs := table.Find(ins, abs)
		switch {
		case op_zp != nil && known && value >= 0 && value <= 0xff:
			op = op_zp
		case op_abs != nil:
			op = op_abs
		case op_zp != nil:
			op = op_zp
		case table.Find(ins, NONE_ADDRESSING) != nil:
			err = ErrOperandExtra
			return
		default:
			err = ErrAddressing{Mnemonic: ins.String(), Mode: abs}
			return
		}
	}

	if err != nil {
		return
	}

	bytes := make([]byte, op.Length)
	bytes[0] = op.Code

	var links []Link
	size := int(op.OperandLength())
	if size > 0 {
		if known {
			err = putValue(bytes[1:], value, size)
			if err != nil {
				return
			}
		} else {
			links = []Link{{Offset: 1, Size: size, Label: label, Relative: relative}}
		}
	}

	return asm.emit(lineno, words, bytes, links)
}
