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
	"bytes"
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/krishnachittur/GadgetCoin/common"
	"github.com/krishnachittur/GadgetCoin/crypto"
)

// Transaction is a signed request for a state transition, carrying the
// code the VM runs on its behalf. The sender is not stored; it is
// recovered from the signature over the signature-free serialization.
type Transaction struct {
	data txdata

	// cache of the recovered sender
	from atomic.Value
}

type txdata struct {
	AccountNonce uint32
	Price        common.Wei
	GasLimit     common.Gas
	Recipient    common.Address
	Amount       common.Wei
	Payload      []byte
	Sig          []byte // 65 byte [R || S || V] recoverable signature
}

// NewTransaction returns an unsigned transaction.
func NewTransaction(nonce uint32, to common.Address, amount common.Wei, gasLimit common.Gas, gasPrice common.Wei, code []byte) *Transaction {
	if len(code) > 0 {
		code = append([]byte{}, code...)
	}
	return &Transaction{
		data: txdata{
			AccountNonce: nonce,
			Price:        gasPrice,
			GasLimit:     gasLimit,
			Recipient:    to,
			Amount:       amount,
			Payload:      code,
		},
	}
}

func (tx *Transaction) Nonce() uint32        { return tx.data.AccountNonce }
func (tx *Transaction) GasPrice() common.Wei { return tx.data.Price }
func (tx *Transaction) Gas() common.Gas      { return tx.data.GasLimit }
func (tx *Transaction) To() common.Address   { return tx.data.Recipient }
func (tx *Transaction) Value() common.Wei    { return tx.data.Amount }
func (tx *Transaction) Code() []byte         { return tx.data.Payload }
func (tx *Transaction) RawSignature() []byte { return tx.data.Sig }

// encode writes the deterministic serialization of the transaction into w.
// The signature is appended only when withSig is set; it never enters the
// signing hash or a block's serialization.
func (tx *Transaction) encode(w *bytes.Buffer, withSig bool) {
	binary.Write(w, binary.LittleEndian, tx.data.AccountNonce)
	price := tx.data.Price.Bytes32()
	w.Write(price[:])
	limit := tx.data.GasLimit.Bytes32()
	w.Write(limit[:])
	w.Write(tx.data.Recipient[:])
	amount := tx.data.Amount.Bytes32()
	w.Write(amount[:])
	binary.Write(w, binary.LittleEndian, uint32(len(tx.data.Payload)))
	w.Write(tx.data.Payload)
	if withSig {
		w.Write(tx.data.Sig)
	}
}

// SigHash returns the hash to be signed by the sender: the Keccak-256 of
// the serialization with the signature field excluded. It does not
// uniquely identify the transaction.
func (tx *Transaction) SigHash() common.Hash {
	var buf bytes.Buffer
	tx.encode(&buf, false)
	return crypto.Keccak256Hash(buf.Bytes())
}

// Hash returns the transaction identity: the Keccak-256 of the full
// serialization, signature included. Distinct from SigHash, which covers
// only what gets signed.
func (tx *Transaction) Hash() common.Hash {
	var buf bytes.Buffer
	tx.encode(&buf, true)
	return crypto.Keccak256Hash(buf.Bytes())
}

// WithSignature returns a copy of the transaction carrying the given
// [R || S || V] signature.
func (tx *Transaction) WithSignature(sig []byte) (*Transaction, error) {
	if len(sig) != crypto.SignatureLength {
		return nil, fmt.Errorf("wrong size for signature: got %d, want %d", len(sig), crypto.SignatureLength)
	}
	cpy := &Transaction{data: tx.data}
	cpy.data.Sig = append([]byte{}, sig...)
	return cpy, nil
}

// Sender returns the address recovered from the transaction signature, and
// caches it: recovery is by far the most expensive part of validation.
func (tx *Transaction) Sender() (common.Address, error) {
	if from := tx.from.Load(); from != nil {
		return from.(common.Address), nil
	}
	if !crypto.ValidateSignatureValues(tx.data.Sig) {
		return common.Address{}, ErrInvalidSig
	}
	hash := tx.SigHash()
	pub, err := crypto.SigToPub(hash[:], tx.data.Sig)
	if err != nil {
		return common.Address{}, err
	}
	addr := crypto.PubkeyToAddress(pub)
	tx.from.Store(addr)
	return addr, nil
}

func (tx *Transaction) String() string {
	return fmt.Sprintf("tx(nonce=%d to=%s value=%s gas=%s price=%s code=%d bytes)",
		tx.data.AccountNonce, tx.data.Recipient, tx.data.Amount, tx.data.GasLimit, tx.data.Price, len(tx.data.Payload))
}

// Transactions is an ordered list of transactions, as batched into a block.
type Transactions []*Transaction

// Len returns the length of s.
func (s Transactions) Len() int { return len(s) }
