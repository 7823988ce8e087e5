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
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/krishnachittur/GadgetCoin/common"
	"github.com/krishnachittur/GadgetCoin/core/types"
	"github.com/krishnachittur/GadgetCoin/crypto"
)

// Canned code segments used across the processing tests.
var (
	// PUSH1(2); ADDVAL; STOP - costs 5 gas, adds 2 to the value.
	codeAddVal = []byte{0x60, 2, 0xb1, 0x00}
	// PUSH1(100); PUSH1(0); JUMPI; STOP - burns 16 gas per iteration
	// forever.
	codeLoop = []byte{0x60, 100, 0x60, 0, 0x57, 0x00}
	// PUSH1(100); PUSH1(0); INVALID(0x05) - aborts after 6 charged gas.
	codeInvalid = []byte{0x60, 100, 0x60, 0, 0x05}
)

// testActor is a keyed account for simulation purposes.
type testActor struct {
	key  *secp256k1.PrivateKey
	addr common.Address
}

func newActor(t *testing.T) *testActor {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	return &testActor{key: key, addr: crypto.PubkeyToAddress(key.PubKey())}
}

func benchActor(b *testing.B) (*secp256k1.PrivateKey, common.Address) {
	b.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		b.Fatal(err)
	}
	return key, crypto.PubkeyToAddress(key.PubKey())
}

// signedTx builds and signs a transfer from the actor.
func signedTx(t *testing.T, from *testActor, nonce uint32, to common.Address, value, gasPrice common.Wei, gasLimit common.Gas, code []byte) *types.Transaction {
	t.Helper()
	tx, err := types.SignTx(types.NewTransaction(nonce, to, value, gasLimit, gasPrice, code), from.key)
	if err != nil {
		t.Fatal(err)
	}
	return tx
}
