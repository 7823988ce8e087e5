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

// Package crypto wraps the hashing and recoverable-signature primitives the
// rest of the system consumes: Keccak-256 for addresses and sign hashes,
// SHA3-256 for block identity, and secp256k1 for transaction signatures.
package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	decred_ecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"

	"github.com/krishnachittur/GadgetCoin/common"
)

const (
	// SignatureLength is the byte length of a recoverable signature:
	// 32 bytes R, 32 bytes S, 1 byte recovery id.
	SignatureLength = 64 + 1

	// RecoveryIDOffset points to the recovery id byte within a signature.
	RecoveryIDOffset = 64
)

var errInvalidSigLength = errors.New("invalid signature length")

// Keccak256 calculates and returns the legacy Keccak-256 hash of the input
// data.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Keccak256Hash calculates the legacy Keccak-256 hash of the input data,
// converting it to an internal Hash data structure.
func Keccak256Hash(data ...[]byte) (h common.Hash) {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}

// SHA3Hash calculates the (standardized) SHA3-256 hash of the input data.
// Block identity is committed with this hash, not with Keccak.
func SHA3Hash(data ...[]byte) (h common.Hash) {
	d := sha3.New256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}

// GenerateKey generates a new random secp256k1 private key.
func GenerateKey() (*secp256k1.PrivateKey, error) {
	return secp256k1.GeneratePrivateKey()
}

// HexToKey parses a secp256k1 private key from its hex form.
func HexToKey(hexkey string) (*secp256k1.PrivateKey, error) {
	b, err := hex.DecodeString(hexkey)
	if err != nil {
		return nil, errors.New("invalid hex string")
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("invalid key length %d, want 32", len(b))
	}
	return secp256k1.PrivKeyFromBytes(b), nil
}

// Sign calculates a recoverable ECDSA signature over the given 32 byte
// digest. The produced signature is in [R || S || V] format where V is 0
// or 1.
func Sign(digestHash []byte, prv *secp256k1.PrivateKey) ([]byte, error) {
	if len(digestHash) != common.HashLength {
		return nil, fmt.Errorf("hash is required to be exactly %d bytes (%d)", common.HashLength, len(digestHash))
	}
	sig := decred_ecdsa.SignCompact(prv, digestHash, false) // ref uncompressed pubkey
	// Convert to signature format with the recovery id at the end.
	v := sig[0] - 27
	copy(sig, sig[1:])
	sig[RecoveryIDOffset] = v
	return sig, nil
}

// SigToPub recovers the public key that produced the given [R || S || V]
// signature over digestHash.
func SigToPub(digestHash, sig []byte) (*secp256k1.PublicKey, error) {
	if len(sig) != SignatureLength {
		return nil, errInvalidSigLength
	}
	// Convert to compact format with the recovery id up front.
	compact := make([]byte, SignatureLength)
	compact[0] = sig[RecoveryIDOffset] + 27
	copy(compact[1:], sig)

	pub, _, err := decred_ecdsa.RecoverCompact(compact, digestHash)
	return pub, err
}

// Ecrecover recovers the uncompressed public key bytes (0x04-prefixed, 65
// bytes) that created the given signature.
func Ecrecover(digestHash, sig []byte) ([]byte, error) {
	pub, err := SigToPub(digestHash, sig)
	if err != nil {
		return nil, err
	}
	return pub.SerializeUncompressed(), nil
}

// ValidateSignatureValues verifies whether the signature is structurally
// well formed: a 0/1 recovery id and non-zero R and S.
func ValidateSignatureValues(sig []byte) bool {
	if len(sig) != SignatureLength {
		return false
	}
	if v := sig[RecoveryIDOffset]; v != 0 && v != 1 {
		return false
	}
	allZero := func(b []byte) bool {
		for _, c := range b {
			if c != 0 {
				return false
			}
		}
		return true
	}
	return !allZero(sig[:32]) && !allZero(sig[32:64])
}

// PubkeyToAddress derives the account address from a public key: the low
// 20 bytes of the Keccak-256 of the key's uncompressed body, format prefix
// excluded.
func PubkeyToAddress(p *secp256k1.PublicKey) common.Address {
	pubBytes := p.SerializeUncompressed()
	return common.BytesToAddress(Keccak256(pubBytes[1:])[12:])
}
