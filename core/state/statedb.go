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

// Package state holds the world state: every account's balance and nonce,
// keyed by address. Accounts are created lazily on first payment and are
// never pruned.
package state

import "github.com/krishnachittur/GadgetCoin/common"

// Account is the per-address state.
type Account struct {
	Address common.Address
	Balance common.Wei
	Nonce   uint32
}

// StateDB is the address -> account mapping mutated by transaction
// processing. It is not safe for concurrent use; the chain owns it and
// applies one transaction at a time.
type StateDB struct {
	accounts map[common.Address]*Account
}

// New returns an empty world state.
func New() *StateDB {
	return &StateDB{
		accounts: make(map[common.Address]*Account),
	}
}

// Exist reports whether an account is present for addr.
func (s *StateDB) Exist(addr common.Address) bool {
	_, ok := s.accounts[addr]
	return ok
}

// Balance returns the balance for addr, with ok false when no account
// exists.
func (s *StateDB) Balance(addr common.Address) (common.Wei, bool) {
	account, ok := s.accounts[addr]
	if !ok {
		return common.Wei{}, false
	}
	return account.Balance, true
}

// GetBalance returns the balance for addr, zero for a missing account.
func (s *StateDB) GetBalance(addr common.Address) common.Wei {
	balance, _ := s.Balance(addr)
	return balance
}

// GetNonce returns the nonce for addr, zero for a missing account.
func (s *StateDB) GetNonce(addr common.Address) uint32 {
	if account, ok := s.accounts[addr]; ok {
		return account.Nonce
	}
	return 0
}

// IncrementNonce bumps the nonce of an existing account by one. The
// caller guarantees existence; a missing account here is a broken
// processing invariant.
func (s *StateDB) IncrementNonce(addr common.Address) {
	account, ok := s.accounts[addr]
	if !ok {
		panic("state: nonce increment for unknown account")
	}
	account.Nonce++
}

// SubBalance deducts amount from addr. It reports false, deducting
// nothing, when the account is missing or the balance is insufficient.
// Every overdraw-capable operation goes through here.
func (s *StateDB) SubBalance(addr common.Address, amount common.Wei) bool {
	account, ok := s.accounts[addr]
	if !ok {
		return false
	}
	balance, ok := account.Balance.Sub(amount)
	if !ok {
		return false
	}
	account.Balance = balance
	return true
}

// AddBalance pays amount to addr, creating the account if it does not
// exist yet.
func (s *StateDB) AddBalance(addr common.Address, amount common.Wei) {
	account, ok := s.accounts[addr]
	if !ok {
		account = &Account{Address: addr}
		s.accounts[addr] = account
	}
	account.Balance = account.Balance.Add(amount)
}

// Len returns the number of accounts in the state.
func (s *StateDB) Len() int {
	return len(s.accounts)
}
