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

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSignature is returned when the sender cannot be recovered
	// from a transaction's signature, or is unknown to the world state.
	// No state was touched.
	ErrInvalidSignature = errors.New("invalid or unknown transaction signature")

	// ErrInsufficientBalance is returned when the sender cannot cover the
	// maximum fee or the final value transfer.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// NonceErr marks a transaction whose nonce does not continue the sender's
// sequence. No state was touched.
type NonceErr struct {
	Is, Exp uint32
}

func (err *NonceErr) Error() string {
	return fmt.Sprintf("transaction w/ invalid nonce. tx=%d want=%d", err.Is, err.Exp)
}

// NonceError returns a NonceErr for a got/want nonce pair.
func NonceError(is, exp uint32) *NonceErr {
	return &NonceErr{Is: is, Exp: exp}
}

// IsNonceErr returns whether err is an invalid-nonce error.
func IsNonceErr(err error) bool {
	var nerr *NonceErr
	return errors.As(err, &nerr)
}

// CodeErr marks a transaction whose code terminated abnormally: gas
// exhaustion, a stack underflow, an escaped program counter or an INVALID
// instruction. The nonce bump and the gas already consumed stand.
type CodeErr struct {
	Err error
}

func (err *CodeErr) Error() string {
	return fmt.Sprintf("invalid transaction code: %v", err.Err)
}

func (err *CodeErr) Unwrap() error { return err.Err }

// IsCodeErr returns whether err is an invalid-code error.
func IsCodeErr(err error) bool {
	var cerr *CodeErr
	return errors.As(err, &cerr)
}

// dropsTransaction reports whether a processing outcome keeps the
// transaction out of the next block entirely. Only failures that touched
// no state qualify; every paid-for failure is still mined.
func dropsTransaction(err error) bool {
	return errors.Is(err, ErrInvalidSignature) || IsNonceErr(err)
}
