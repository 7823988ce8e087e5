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

// Package vm implements the stack machine executed against each
// transaction's code. The machine is deliberately tiny: an operand stack
// of bytes, a program counter over decoded instructions, a gas meter and
// a mutable transaction value. There is no memory region and no storage.
package vm

import (
	"errors"
	"fmt"

	"github.com/krishnachittur/GadgetCoin/common"
	"github.com/krishnachittur/GadgetCoin/logger"
	"github.com/krishnachittur/GadgetCoin/logger/glog"
)

var (
	OutOfGasError     = errors.New("Out of gas")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrPCOutOfRange   = errors.New("program counter out of range")
)

// InvalidOpcodeError is returned when execution reaches an instruction
// outside the defined opcode set.
type InvalidOpcodeError struct {
	Op byte
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode 0x%x", e.Op)
}

// ExecutionContext holds the mutable machine state for one transaction's
// code. It is created per transaction and discarded when Run returns.
type ExecutionContext struct {
	stack   []byte
	pc      int
	gas     common.Gas
	program []Instruction
	value   common.Wei
}

// NewExecutionContext returns a context primed with the transaction's gas
// limit, decoded code and initial value.
func NewExecutionContext(gas common.Gas, program []Instruction, value common.Wei) *ExecutionContext {
	return &ExecutionContext{
		gas:     gas,
		program: program,
		value:   value,
	}
}

// GasLeft returns the gas remaining after execution.
func (ctx *ExecutionContext) GasLeft() common.Gas { return ctx.gas }

// Value returns the (possibly code-modified) transaction value.
func (ctx *ExecutionContext) Value() common.Wei { return ctx.value }

func (ctx *ExecutionContext) push(b byte) {
	ctx.stack = append(ctx.stack, b)
}

func (ctx *ExecutionContext) pop() (byte, error) {
	if len(ctx.stack) == 0 {
		return 0, ErrStackUnderflow
	}
	b := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return b, nil
}

// Run executes the program to completion. A nil return means normal
// termination: a STOP was executed, or the program was empty on entry.
// Any other outcome - the program counter escaping the code, a stack
// underflow, gas exhaustion or an INVALID instruction - returns the
// corresponding error.
//
// Gas ordering: an instruction's effect is applied before its cost is
// charged, so a gas-exhausting instruction fails with its effect on the
// stack and value already applied but its own cost unapplied: GasLeft is
// the gas that remained before it. INVALID aborts before any charge.
func (ctx *ExecutionContext) Run() error {
	if len(ctx.program) == 0 {
		return nil
	}
	for {
		if ctx.pc < 0 || ctx.pc >= len(ctx.program) {
			return ErrPCOutOfRange
		}
		instr := ctx.program[ctx.pc]
		jumped := false

		switch instr.Op {
		case STOP:
			return nil

		case ADD:
			a, b, err := ctx.pop2()
			if err != nil {
				return err
			}
			ctx.push(a + b)
		case MUL:
			a, b, err := ctx.pop2()
			if err != nil {
				return err
			}
			ctx.push(a * b)
		case SUB:
			a, b, err := ctx.pop2()
			if err != nil {
				return err
			}
			if a < b {
				ctx.push(0)
			} else {
				ctx.push(a - b)
			}
		case DIV:
			a, b, err := ctx.pop2()
			if err != nil {
				return err
			}
			if b == 0 {
				ctx.push(0)
			} else {
				ctx.push(a / b)
			}

		case LT:
			a, b, err := ctx.pop2()
			if err != nil {
				return err
			}
			ctx.push(boolByte(a < b))
		case GT:
			a, b, err := ctx.pop2()
			if err != nil {
				return err
			}
			ctx.push(boolByte(a > b))
		case EQ:
			a, b, err := ctx.pop2()
			if err != nil {
				return err
			}
			ctx.push(boolByte(a == b))
		case ISZERO:
			a, err := ctx.pop()
			if err != nil {
				return err
			}
			ctx.push(boolByte(a == 0))

		case POP:
			if _, err := ctx.pop(); err != nil {
				return err
			}
		case JUMP:
			a, err := ctx.pop()
			if err != nil {
				return err
			}
			ctx.pc = int(a)
			jumped = true
		case JUMPI:
			a, err := ctx.pop()
			if err != nil {
				return err
			}
			b, err := ctx.pop()
			if err != nil {
				return err
			}
			if b != 0 {
				ctx.pc = int(a)
				jumped = true
			}

		case PUSH1:
			ctx.push(instr.Arg)

		case SETVAL:
			a, err := ctx.pop()
			if err != nil {
				return err
			}
			ctx.value = common.NewWei(uint64(a))
		case ADDVAL:
			a, err := ctx.pop()
			if err != nil {
				return err
			}
			ctx.value = ctx.value.Add(common.NewWei(uint64(a)))
		case SUBVAL:
			a, err := ctx.pop()
			if err != nil {
				return err
			}
			if v, ok := ctx.value.Sub(common.NewWei(uint64(a))); ok {
				ctx.value = v
			} else {
				ctx.value = common.Wei{}
			}

		case ADDRESS, BALANCE, GASPRICE, DIFFICULTY, GASLIMIT, GAS:
			// Reserved: metered but with no stack or value effect.

		default:
			glog.V(logger.Detail).Infof("aborting on %v at pc=%d", instr.Op, ctx.pc)
			return &InvalidOpcodeError{Op: instr.Arg}
		}

		gas, ok := ctx.gas.Sub(instr.Op.Cost())
		if !ok {
			return OutOfGasError
		}
		ctx.gas = gas

		if !jumped {
			ctx.pc++
		}
	}
}

func (ctx *ExecutionContext) pop2() (byte, byte, error) {
	a, err := ctx.pop()
	if err != nil {
		return 0, 0, err
	}
	b, err := ctx.pop()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
