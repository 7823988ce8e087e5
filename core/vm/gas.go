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

import "github.com/krishnachittur/GadgetCoin/common"

var (
	GasZero        = common.NewGas(0)
	GasQuickStep   = common.NewGas(2)
	GasFastestStep = common.NewGas(3)
	GasFastStep    = common.NewGas(5)
	GasMidStep     = common.NewGas(8)
	GasSlowStep    = common.NewGas(10)
	GasBalance     = common.NewGas(400)
)

// opGas is the fixed cost of each opcode. Bytes outside the table (INVALID)
// cost nothing; an INVALID aborts execution before its cost would apply.
var opGas = map[OpCode]common.Gas{
	STOP:       GasZero,
	ADD:        GasFastestStep,
	MUL:        GasFastStep,
	SUB:        GasFastestStep,
	DIV:        GasFastStep,
	LT:         GasFastestStep,
	GT:         GasFastestStep,
	EQ:         GasFastestStep,
	ISZERO:     GasFastestStep,
	ADDRESS:    GasQuickStep,
	BALANCE:    GasBalance,
	GASPRICE:   GasQuickStep,
	DIFFICULTY: GasQuickStep,
	GASLIMIT:   GasQuickStep,
	POP:        GasQuickStep,
	JUMP:       GasMidStep,
	JUMPI:      GasSlowStep,
	GAS:        GasQuickStep,
	PUSH1:      GasFastestStep,
	SETVAL:     GasQuickStep,
	ADDVAL:     GasQuickStep,
	SUBVAL:     GasQuickStep,
}

// Cost returns the fixed gas cost of op.
func (op OpCode) Cost() common.Gas {
	return opGas[op]
}
