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

package common

import "github.com/holiman/uint256"

// Gas is a non-negative quantity of VM work. Like Wei its subtraction is
// partial; a failed Sub during execution is an out-of-gas condition.
type Gas struct {
	units uint256.Int
}

// NewGas returns n units of gas.
func NewGas(n uint64) Gas {
	var g Gas
	g.units.SetUint64(n)
	return g
}

// Add returns g + other. Overflow panics; gas limits are caller-supplied
// and bounded far below 2^256.
func (g Gas) Add(other Gas) Gas {
	var sum Gas
	_, overflow := sum.units.AddOverflow(&g.units, &other.units)
	if overflow {
		panic("common: gas overflow")
	}
	return sum
}

// Sub returns g - other, with ok false on underflow.
func (g Gas) Sub(other Gas) (Gas, bool) {
	var diff Gas
	_, underflow := diff.units.SubOverflow(&g.units, &other.units)
	if underflow {
		return Gas{}, false
	}
	return diff, true
}

// Cmp compares g and other, returning -1, 0 or +1.
func (g Gas) Cmp(other Gas) int { return g.units.Cmp(&other.units) }

// IsZero reports whether g is zero.
func (g Gas) IsZero() bool { return g.units.IsZero() }

// Uint64 returns the gas quantity as a uint64, truncating on overflow.
func (g Gas) Uint64() uint64 { return g.units.Uint64() }

// Bytes32 returns the quantity as a 32 byte big-endian array for the wire
// serializers.
func (g Gas) Bytes32() [32]byte { return g.units.Bytes32() }

func (g Gas) String() string { return g.units.Dec() }
