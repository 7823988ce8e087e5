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

// Denomination multipliers, all expressed in wei.
const (
	WeiPerGwei   = 1e9
	WeiPerSzabo  = 1e12
	WeiPerFinney = 1e15
	WeiPerEth    = 1e18
)

// Wei is a non-negative amount of the native currency in its smallest unit.
// Addition is total; subtraction is partial and reports underflow, which is
// how every balance-changing operation signals insufficient funds.
type Wei struct {
	amount uint256.Int
}

// NewWei returns n wei.
func NewWei(n uint64) Wei {
	var w Wei
	w.amount.SetUint64(n)
	return w
}

// FromGwei returns n gwei as wei.
func FromGwei(n uint64) Wei { return scaled(n, WeiPerGwei) }

// FromSzabo returns n szabo as wei.
func FromSzabo(n uint64) Wei { return scaled(n, WeiPerSzabo) }

// FromFinney returns n finney as wei.
func FromFinney(n uint64) Wei { return scaled(n, WeiPerFinney) }

// FromEth returns n eth as wei.
func FromEth(n uint64) Wei { return scaled(n, WeiPerEth) }

func scaled(n, unit uint64) Wei {
	var w Wei
	_, overflow := w.amount.MulOverflow(uint256.NewInt(n), uint256.NewInt(unit))
	if overflow {
		panic("common: wei denomination overflow")
	}
	return w
}

// FeeForGas returns price × gas as wei.
func FeeForGas(price Wei, gas Gas) Wei {
	var w Wei
	_, overflow := w.amount.MulOverflow(&price.amount, &gas.units)
	if overflow {
		panic("common: gas fee overflow")
	}
	return w
}

// Add returns w + other. Overflow is a programmer error and panics: with
// 256 bit headroom it cannot occur for any balance this system can mint.
func (w Wei) Add(other Wei) Wei {
	var sum Wei
	_, overflow := sum.amount.AddOverflow(&w.amount, &other.amount)
	if overflow {
		panic("common: wei overflow")
	}
	return sum
}

// Sub returns w - other. ok is false when the result would be negative, in
// which case the returned Wei is zero and must not be used.
func (w Wei) Sub(other Wei) (Wei, bool) {
	var diff Wei
	_, underflow := diff.amount.SubOverflow(&w.amount, &other.amount)
	if underflow {
		return Wei{}, false
	}
	return diff, true
}

// Cmp compares w and other, returning -1, 0 or +1.
func (w Wei) Cmp(other Wei) int { return w.amount.Cmp(&other.amount) }

// IsZero reports whether w is zero wei.
func (w Wei) IsZero() bool { return w.amount.IsZero() }

// Bytes32 returns the amount as a 32 byte big-endian array, the form used
// by the wire serializers.
func (w Wei) Bytes32() [32]byte { return w.amount.Bytes32() }

func (w Wei) String() string { return w.amount.Dec() }
