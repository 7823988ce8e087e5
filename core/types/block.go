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

	"github.com/krishnachittur/GadgetCoin/common"
	"github.com/krishnachittur/GadgetCoin/crypto"
)

// Block batches transactions under a proof-of-work header. Its identity is
// the SHA3-256 of its serialization with transaction signatures excluded:
// a signature is a derived witness, not part of what the chain commits to.
//
// The nonce is deliberately mutable so a sealer can drive the search
// in place; because of that the hash is recomputed on demand rather than
// cached.
type Block struct {
	parentHash   common.Hash
	coinbase     common.Address
	transactions Transactions
	difficulty   uint32
	nonce        uint32
}

// NewBlock creates a block on top of parent with a zero nonce, copying
// txs into it. The input slice is not retained or modified.
func NewBlock(parent *Block, coinbase common.Address, difficulty uint32, txs Transactions) *Block {
	b := &Block{
		parentHash: parent.Hash(),
		coinbase:   coinbase,
		difficulty: difficulty,
	}
	if len(txs) > 0 {
		b.transactions = make(Transactions, len(txs))
		copy(b.transactions, txs)
	}
	return b
}

// Genesis returns the canonical first block: all-zero parent hash and
// coinbase, no transactions, difficulty 0, nonce 0.
func Genesis() *Block {
	return &Block{}
}

func (b *Block) ParentHash() common.Hash    { return b.parentHash }
func (b *Block) Coinbase() common.Address   { return b.coinbase }
func (b *Block) Transactions() Transactions { return b.transactions }
func (b *Block) Difficulty() uint32         { return b.difficulty }
func (b *Block) Nonce() uint32              { return b.nonce }

// SetNonce writes the proof-of-work search variable.
func (b *Block) SetNonce(nonce uint32) { b.nonce = nonce }

// Copy returns a clone suitable for a seal worker: header fields are
// copied, the transaction list is shared (it is never mutated during
// sealing).
func (b *Block) Copy() *Block {
	cpy := *b
	return &cpy
}

// encode writes the byte-exact serialization hashed for block identity.
// Transactions are serialized without their signatures.
func (b *Block) encode(w *bytes.Buffer) {
	w.Write(b.parentHash[:])
	w.Write(b.coinbase[:])
	binary.Write(w, binary.LittleEndian, uint32(len(b.transactions)))
	for _, tx := range b.transactions {
		tx.encode(w, false)
	}
	binary.Write(w, binary.LittleEndian, b.difficulty)
	binary.Write(w, binary.LittleEndian, b.nonce)
}

// Hash returns the SHA3-256 of the block serialization.
func (b *Block) Hash() common.Hash {
	var buf bytes.Buffer
	b.encode(&buf)
	return crypto.SHA3Hash(buf.Bytes())
}

// ValidPoW reports whether the block hash has at least Difficulty leading
// zero bits, in big-endian bit order.
func (b *Block) ValidPoW() bool {
	return hashMeetsDifficulty(b.Hash(), b.difficulty)
}

// hashMeetsDifficulty checks the leading-zero-bits target: bits/8 whole
// zero bytes, then the next byte at most 255 >> (bits mod 8).
func hashMeetsDifficulty(h common.Hash, bits uint32) bool {
	zb := int(bits / 8)
	zr := bits % 8
	if zb >= common.HashLength {
		return allZero(h[:])
	}
	for i := 0; i < zb; i++ {
		if h[i] != 0 {
			return false
		}
	}
	return h[zb] <= byte(255>>zr)
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

func (b *Block) String() string {
	return fmt.Sprintf("block(parent=%s coinbase=%s txs=%d difficulty=%d nonce=%d)",
		b.parentHash, b.coinbase, len(b.transactions), b.difficulty, b.nonce)
}
