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

package types

import (
	"testing"

	"github.com/krishnachittur/GadgetCoin/common"
	"github.com/krishnachittur/GadgetCoin/crypto"
)

var recipient = common.BytesToAddress([]byte{0xde, 0xad})

func newTestTx(nonce uint32) *Transaction {
	return NewTransaction(nonce, recipient, common.NewWei(10), common.NewGas(5), common.NewWei(2), []byte{0x60, 2, 0xb1, 0x00})
}

func TestSignAndRecover(t *testing.T) {
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	want := crypto.PubkeyToAddress(key.PubKey())

	tx, err := SignTx(newTestTx(1), key)
	if err != nil {
		t.Fatal(err)
	}
	from, err := tx.Sender()
	if err != nil {
		t.Fatal(err)
	}
	if from != want {
		t.Errorf("recovered sender: got %v, want %v", from, want)
	}

	// Second recovery hits the cache and must agree.
	again, err := tx.Sender()
	if err != nil {
		t.Fatal(err)
	}
	if again != from {
		t.Errorf("cached sender mismatch: %v != %v", again, from)
	}
}

func TestUnsignedSender(t *testing.T) {
	if _, err := newTestTx(1).Sender(); err == nil {
		t.Error("unsigned transaction recovered a sender")
	}
}

func TestSigHashExcludesSignature(t *testing.T) {
	key, _ := crypto.GenerateKey()
	tx := newTestTx(1)
	signed, err := SignTx(tx, key)
	if err != nil {
		t.Fatal(err)
	}
	if tx.SigHash() != signed.SigHash() {
		t.Error("signing changed the sign hash")
	}
}

func TestSigHashCoversFields(t *testing.T) {
	base := newTestTx(1)
	mutations := []*Transaction{
		NewTransaction(2, recipient, common.NewWei(10), common.NewGas(5), common.NewWei(2), []byte{0x60, 2, 0xb1, 0x00}),
		NewTransaction(1, common.Address{}, common.NewWei(10), common.NewGas(5), common.NewWei(2), []byte{0x60, 2, 0xb1, 0x00}),
		NewTransaction(1, recipient, common.NewWei(11), common.NewGas(5), common.NewWei(2), []byte{0x60, 2, 0xb1, 0x00}),
		NewTransaction(1, recipient, common.NewWei(10), common.NewGas(6), common.NewWei(2), []byte{0x60, 2, 0xb1, 0x00}),
		NewTransaction(1, recipient, common.NewWei(10), common.NewGas(5), common.NewWei(3), []byte{0x60, 2, 0xb1, 0x00}),
		NewTransaction(1, recipient, common.NewWei(10), common.NewGas(5), common.NewWei(2), []byte{0x60, 2, 0xb1}),
		NewTransaction(1, recipient, common.NewWei(10), common.NewGas(5), common.NewWei(2), nil),
	}
	for i, m := range mutations {
		if m.SigHash() == base.SigHash() {
			t.Errorf("mutation %d did not change the sign hash", i)
		}
	}
}

func TestTamperedSignature(t *testing.T) {
	key, _ := crypto.GenerateKey()
	signed, err := SignTx(newTestTx(1), key)
	if err != nil {
		t.Fatal(err)
	}
	want := crypto.PubkeyToAddress(key.PubKey())

	// Re-sign a different payload and graft the signature onto the
	// original: the recovered sender must differ (or recovery must fail).
	other, err := SignTx(newTestTx(7), key)
	if err != nil {
		t.Fatal(err)
	}
	grafted, err := signed.WithSignature(other.RawSignature())
	if err != nil {
		t.Fatal(err)
	}
	if from, err := grafted.Sender(); err == nil && from == want {
		t.Error("grafted signature still recovered the original sender")
	}
}
