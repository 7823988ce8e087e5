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
	"github.com/krishnachittur/GadgetCoin/common"
	"github.com/krishnachittur/GadgetCoin/core/state"
	"github.com/krishnachittur/GadgetCoin/core/types"
	"github.com/krishnachittur/GadgetCoin/core/vm"
	"github.com/krishnachittur/GadgetCoin/logger"
	"github.com/krishnachittur/GadgetCoin/logger/glog"
	"github.com/krishnachittur/GadgetCoin/metrics"
)

/*
The state transitioning model

A state transition is a change made when a transaction is applied to the
current world state:

1) Sender recovery and nonce handling
2) Pre-pay the maximum gas fee
3) Run the transaction's code in the VM
4) Refund unspent gas, pay the miner for gas consumed
5) Value transfer to the recipient

Failures after step 1 deliberately keep their partial effects: a
transaction that checked out on signature and sequencing consumes its
nonce and pays for the work it caused, whatever happens later.
*/
type StateTransition struct {
	state    *state.StateDB
	coinbase common.Address
	tx       *types.Transaction
}

// NewStateTransition initialises and returns a new state transition
// object.
func NewStateTransition(statedb *state.StateDB, coinbase common.Address, tx *types.Transaction) *StateTransition {
	return &StateTransition{
		state:    statedb,
		coinbase: coinbase,
		tx:       tx,
	}
}

// ApplyTransaction applies tx against statedb, paying gas fees to
// coinbase. A nil error is a fully successful transfer; the typed errors
// of this package describe every other outcome and how much state they
// retained.
func ApplyTransaction(statedb *state.StateDB, coinbase common.Address, tx *types.Transaction) error {
	err := NewStateTransition(statedb, coinbase, tx).transition()
	if err != nil {
		metrics.TxnFailure.Mark(1)
	} else {
		metrics.TxnSuccess.Mark(1)
	}
	return err
}

func (st *StateTransition) transition() error {
	// Make sure the transaction is correctly signed by a known account.
	sender, err := st.tx.Sender()
	if err != nil {
		glog.V(logger.Debug).Infof("sender recovery failed: %v", err)
		return ErrInvalidSignature
	}
	if !st.state.Exist(sender) {
		return ErrInvalidSignature
	}

	// Make sure this transaction's nonce continues the sender's sequence.
	if expected := st.state.GetNonce(sender) + 1; st.tx.Nonce() != expected {
		return NonceError(st.tx.Nonce(), expected)
	}

	// The transaction is sequenced: it consumes its nonce no matter what
	// happens from here on.
	st.state.IncrementNonce(sender)

	maxFee := common.FeeForGas(st.tx.GasPrice(), st.tx.Gas())
	if !st.state.SubBalance(sender, maxFee) {
		return ErrInsufficientBalance
	}

	ctx := vm.NewExecutionContext(st.tx.Gas(), vm.Parse(st.tx.Code()), st.tx.Value())
	vmerr := ctx.Run()
	if vmerr != nil {
		glog.V(logger.Core).Infoln("VM err:", vmerr)
	}

	// Regardless of the VM outcome, refund the unspent gas and pay the
	// miner for the work performed. The two amounts partition maxFee.
	refund := common.FeeForGas(st.tx.GasPrice(), ctx.GasLeft())
	st.state.AddBalance(sender, refund)

	minerFee, ok := maxFee.Sub(refund)
	if !ok {
		glog.Fatalf("gas left %v somehow exceeds initial gas %v", ctx.GasLeft(), st.tx.Gas())
	}
	st.state.AddBalance(st.coinbase, minerFee)

	if vmerr != nil {
		return &CodeErr{Err: vmerr}
	}

	// Complete the transfer with the value as the code left it.
	if !st.state.SubBalance(sender, ctx.Value()) {
		return ErrInsufficientBalance
	}
	st.state.AddBalance(st.tx.To(), ctx.Value())
	return nil
}
