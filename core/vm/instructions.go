// Copyright 2019 The GadgetCoin Authors
// This file is part of the GadgetCoin library.
//
// The GadgetCoin library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The GadgetCoin library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the GadgetCoin library. If not, see <http://www.gnu.org/licenses/>.

package vm

// Instruction is a decoded opcode. Arg carries the immediate operand of
// PUSH1, or the raw undecodable byte of an INVALID instruction.
type Instruction struct {
	Op  OpCode
	Arg byte
}

// Parse decodes raw code bytes into instructions in input order. PUSH1
// consumes the following byte as its immediate; a PUSH1 that ends the code
// without an immediate is dropped. Undefined bytes decode to INVALID
// instructions carrying the offending byte.
func Parse(code []byte) []Instruction {
	prog := make([]Instruction, 0, len(code))
	for i := 0; i < len(code); i++ {
		op := OpCode(code[i])
		switch {
		case op == PUSH1:
			if i+1 >= len(code) {
				// truncated immediate
				return prog
			}
			i++
			prog = append(prog, Instruction{Op: PUSH1, Arg: code[i]})
		case op.Defined():
			prog = append(prog, Instruction{Op: op})
		default:
			prog = append(prog, Instruction{Op: op, Arg: byte(op)})
		}
	}
	return prog
}

// Encode is the inverse of Parse: it re-serializes a decoded program to
// code bytes.
func Encode(prog []Instruction) []byte {
	code := make([]byte, 0, len(prog))
	for _, instr := range prog {
		code = append(code, byte(instr.Op))
		if instr.Op == PUSH1 {
			code = append(code, instr.Arg)
		}
	}
	return code
}
