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

import (
	"errors"
	"testing"

	"github.com/krishnachittur/GadgetCoin/common"
)

func run(t *testing.T, code []byte, gas uint64, value uint64) (*ExecutionContext, error) {
	t.Helper()
	ctx := NewExecutionContext(common.NewGas(gas), Parse(code), common.NewWei(value))
	return ctx, ctx.Run()
}

func TestRunEmptyCode(t *testing.T) {
	ctx, err := run(t, nil, 50, 10)
	if err != nil {
		t.Fatalf("empty code should be a normal stop, got %v", err)
	}
	if ctx.GasLeft() != common.NewGas(50) {
		t.Errorf("empty code consumed gas: %v left", ctx.GasLeft())
	}
	if ctx.Value() != common.NewWei(10) {
		t.Errorf("empty code changed value: %v", ctx.Value())
	}
}

func TestRunAddVal(t *testing.T) {
	// PUSH1(2); ADDVAL; STOP
	ctx, err := run(t, []byte{0x60, 2, 0xb1, 0x00}, 5, 10)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Value() != common.NewWei(12) {
		t.Errorf("value: got %v, want 12", ctx.Value())
	}
	// PUSH1(3) + ADDVAL(2) + STOP(0) = 5
	if !ctx.GasLeft().IsZero() {
		t.Errorf("gas left: got %v, want 0", ctx.GasLeft())
	}
}

func TestRunArithmetic(t *testing.T) {
	// PUSH1(2) PUSH1(3) PUSH1(4) PUSH1(7) PUSH1(1) ADD SUB MUL DIV SETVAL STOP
	// stack evolves: [2 3 4 7 1] -> ADD: 1+7=8 -> SUB: 8-4=4 -> MUL: 4*3=12 -> DIV: 12/2=6
	code := []byte{0x60, 2, 0x60, 3, 0x60, 4, 0x60, 7, 0x60, 1, 0x01, 0x03, 0x02, 0x04, 0xb0, 0x00}
	ctx, err := run(t, code, 100, 55)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Value() != common.NewWei(6) {
		t.Errorf("value: got %v, want 6", ctx.Value())
	}
	// 5*PUSH1(3) + ADD(3) + SUB(3) + MUL(5) + DIV(5) + SETVAL(2) = 33
	if ctx.GasLeft() != common.NewGas(67) {
		t.Errorf("gas left: got %v, want 67", ctx.GasLeft())
	}
}

func TestRunComparisons(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want uint64
	}{
		// operands: a is popped first (pushed last)
		{"lt-true", []byte{0x60, 9, 0x60, 3, 0x10, 0xb0, 0x00}, 1},  // 3 < 9
		{"lt-false", []byte{0x60, 3, 0x60, 9, 0x10, 0xb0, 0x00}, 0}, // 9 < 3
		{"gt-true", []byte{0x60, 3, 0x60, 9, 0x11, 0xb0, 0x00}, 1},  // 9 > 3
		{"eq-true", []byte{0x60, 7, 0x60, 7, 0x14, 0xb0, 0x00}, 1},
		{"eq-false", []byte{0x60, 7, 0x60, 8, 0x14, 0xb0, 0x00}, 0},
		{"iszero-true", []byte{0x60, 0, 0x15, 0xb0, 0x00}, 1},
		{"iszero-false", []byte{0x60, 5, 0x15, 0xb0, 0x00}, 0},
	}
	for _, tt := range tests {
		ctx, err := run(t, tt.code, 100, 99)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if ctx.Value() != common.NewWei(tt.want) {
			t.Errorf("%s: value got %v, want %d", tt.name, ctx.Value(), tt.want)
		}
	}
}

func TestRunWrapAndChecked(t *testing.T) {
	// ADD wraps per u8: 200 + 100 = 44
	ctx, err := run(t, []byte{0x60, 100, 0x60, 200, 0x01, 0xb0, 0x00}, 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Value() != common.NewWei(44) {
		t.Errorf("wrapped ADD: got %v, want 44", ctx.Value())
	}
	// SUB clamps to zero on underflow: 3 - 9 = 0
	ctx, err = run(t, []byte{0x60, 9, 0x60, 3, 0x03, 0xb0, 0x00}, 100, 7)
	if err != nil {
		t.Fatal(err)
	}
	if !ctx.Value().IsZero() {
		t.Errorf("clamped SUB: got %v, want 0", ctx.Value())
	}
	// DIV by zero produces zero
	ctx, err = run(t, []byte{0x60, 0, 0x60, 8, 0x04, 0xb0, 0x00}, 100, 7)
	if err != nil {
		t.Fatal(err)
	}
	if !ctx.Value().IsZero() {
		t.Errorf("DIV by zero: got %v, want 0", ctx.Value())
	}
}

func TestRunSubVal(t *testing.T) {
	// SUBVAL saturates at zero: value 10, subtract 200
	ctx, err := run(t, []byte{0x60, 200, 0xb2, 0x00}, 100, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !ctx.Value().IsZero() {
		t.Errorf("SUBVAL: got %v, want 0", ctx.Value())
	}
	ctx, err = run(t, []byte{0x60, 4, 0xb2, 0x00}, 100, 10)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Value() != common.NewWei(6) {
		t.Errorf("SUBVAL: got %v, want 6", ctx.Value())
	}
}

func TestRunJump(t *testing.T) {
	// PUSH1(3); JUMP; <skipped INVALID>; STOP - jump targets decoded
	// instruction indices, not byte offsets.
	ctx, err := run(t, []byte{0x60, 3, 0x56, 0x05, 0x00}, 100, 0)
	if err != nil {
		t.Fatalf("jump over INVALID failed: %v", err)
	}
	// PUSH1(3) + JUMP(8) = 11
	if ctx.GasLeft() != common.NewGas(89) {
		t.Errorf("gas left: got %v, want 89", ctx.GasLeft())
	}

	// JUMPI with zero condition falls through to STOP.
	_, err = run(t, []byte{0x60, 0, 0x60, 9, 0x57, 0x00}, 100, 0)
	if err != nil {
		t.Fatalf("JUMPI fallthrough failed: %v", err)
	}
}

func TestRunInfiniteLoopExhaustsGas(t *testing.T) {
	// PUSH1(100); PUSH1(0); JUMPI jumps... condition 100 != 0, target 0:
	// the loop burns PUSH1+PUSH1+JUMPI = 16 gas per iteration.
	code := []byte{0x60, 100, 0x60, 0, 0x57, 0x00}
	// decoded: 0:PUSH1(100) 1:PUSH1(0) 2:JUMPI 3:STOP
	// JUMPI pops target=0, cond=100 -> jumps to 0 forever.
	ctx, err := run(t, code, 50, 10)
	if !errors.Is(err, OutOfGasError) {
		t.Fatalf("got %v, want out of gas", err)
	}
	// 3 full iterations consume 48; the 4th PUSH1 cannot pay 3.
	if ctx.GasLeft() != common.NewGas(2) {
		t.Errorf("gas left: got %v, want 2", ctx.GasLeft())
	}
}

func TestRunInvalidOpcodeDoesNotCharge(t *testing.T) {
	// PUSH1(100); PUSH1(0); INVALID(0x05)
	ctx, err := run(t, []byte{0x60, 100, 0x60, 0, 0x05}, 50, 10)
	var invalid *InvalidOpcodeError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want invalid opcode", err)
	}
	if invalid.Op != 0x05 {
		t.Errorf("invalid byte: got 0x%x, want 0x05", invalid.Op)
	}
	// Only the two PUSH1s charged: 50 - 6 = 44.
	if ctx.GasLeft() != common.NewGas(44) {
		t.Errorf("gas left: got %v, want 44", ctx.GasLeft())
	}
}

func TestRunStackUnderflow(t *testing.T) {
	_, err := run(t, []byte{0x01, 0x00}, 50, 0)
	if !errors.Is(err, ErrStackUnderflow) {
		t.Fatalf("got %v, want stack underflow", err)
	}
}

func TestRunPCOutOfRange(t *testing.T) {
	// Code without a STOP runs off the end.
	_, err := run(t, []byte{0x60, 1, 0x50}, 50, 0)
	if !errors.Is(err, ErrPCOutOfRange) {
		t.Fatalf("running off code end: got %v, want pc out of range", err)
	}
	// A jump far past the program is the same failure.
	_, err = run(t, []byte{0x60, 200, 0x56}, 50, 0)
	if !errors.Is(err, ErrPCOutOfRange) {
		t.Fatalf("wild jump: got %v, want pc out of range", err)
	}
}

func TestRunReservedOpsChargeOnly(t *testing.T) {
	// ADDRESS BALANCE GASPRICE DIFFICULTY GASLIMIT GAS STOP
	code := []byte{0x30, 0x31, 0x3a, 0x44, 0x45, 0x5a, 0x00}
	ctx, err := run(t, code, 500, 21)
	if err != nil {
		t.Fatal(err)
	}
	// 2 + 400 + 2 + 2 + 2 + 2 = 410
	if ctx.GasLeft() != common.NewGas(90) {
		t.Errorf("gas left: got %v, want 90", ctx.GasLeft())
	}
	if ctx.Value() != common.NewWei(21) {
		t.Errorf("reserved ops changed value: %v", ctx.Value())
	}
	if len(ctx.stack) != 0 {
		t.Errorf("reserved ops touched the stack: %v", ctx.stack)
	}
}
