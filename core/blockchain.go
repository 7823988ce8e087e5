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

// Package core implements the transaction processor and the block chain:
// accepted transactions mutate the world state, queue up, and are sealed
// into difficulty-checked blocks.
package core

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/krishnachittur/GadgetCoin/common"
	"github.com/krishnachittur/GadgetCoin/core/state"
	"github.com/krishnachittur/GadgetCoin/core/types"
	"github.com/krishnachittur/GadgetCoin/logger"
	"github.com/krishnachittur/GadgetCoin/logger/glog"
	"github.com/krishnachittur/GadgetCoin/metrics"
	"github.com/krishnachittur/GadgetCoin/params"
)

const blockCacheLimit = 256

// BlockChain owns the world state and the ordered block list. Blocks past
// genesis arrive sealed (difficulty-valid); transactions arrive signed and
// are applied to the state as they are accepted, not when their block
// lands.
//
// The chain is single-writer: callers apply one transaction at a time and
// no state is shared, so there is no internal locking.
type BlockChain struct {
	txnLimit   int
	coinbase   common.Address
	difficulty uint32

	outstanding types.Transactions
	statedb     *state.StateDB
	blocks      []*types.Block

	blockCache *lru.Cache // most recent blocks, keyed by hash
}

// NewBlockChain creates a chain holding only the genesis block, with an
// empty world state. Blocks batch up to txnLimit transactions and seal at
// the given difficulty; gas fees and block rewards accrue to coinbase.
func NewBlockChain(txnLimit int, difficulty uint32, coinbase common.Address) *BlockChain {
	if txnLimit < 1 {
		panic("core: transaction limit must be positive")
	}
	blockCache, _ := lru.New(blockCacheLimit)
	bc := &BlockChain{
		txnLimit:   txnLimit,
		coinbase:   coinbase,
		difficulty: difficulty,
		statedb:    state.New(),
		blocks:     []*types.Block{types.Genesis()},
		blockCache: blockCache,
	}
	bc.blockCache.Add(bc.blocks[0].Hash(), bc.blocks[0])
	return bc
}

// CurrentBlock returns the chain tip.
func (bc *BlockChain) CurrentBlock() *types.Block {
	return bc.blocks[len(bc.blocks)-1]
}

// Len returns the number of blocks, genesis included.
func (bc *BlockChain) Len() int {
	return len(bc.blocks)
}

// GetBlock retrieves a block by hash, or nil if unknown.
func (bc *BlockChain) GetBlock(hash common.Hash) *types.Block {
	if block, ok := bc.blockCache.Get(hash); ok {
		return block.(*types.Block)
	}
	for _, block := range bc.blocks {
		if block.Hash() == hash {
			bc.blockCache.Add(hash, block)
			return block
		}
	}
	return nil
}

// Balance returns the balance of addr, with ok false when the world state
// has no account for it.
func (bc *BlockChain) Balance(addr common.Address) (common.Wei, bool) {
	return bc.statedb.Balance(addr)
}

// Nonce returns the current nonce of addr, zero for a missing account.
func (bc *BlockChain) Nonce(addr common.Address) uint32 {
	return bc.statedb.GetNonce(addr)
}

// State exposes the world state for direct funding and inspection.
func (bc *BlockChain) State() *state.StateDB {
	return bc.statedb
}

// Outstanding returns the transactions accepted but not yet flushed into
// a block.
func (bc *BlockChain) Outstanding() types.Transactions {
	return bc.outstanding
}

// ProcessTransaction applies tx to the world state and queues it for
// inclusion. Outcomes that touched no state - a bad signature or a bad
// nonce - drop the transaction. Every other outcome, failures included,
// queues it: the work was paid for, so it is mined. When the queue
// reaches the block limit an unsealed block is returned for the caller to
// seal; otherwise the block is nil. The returned error is the processing
// outcome for the caller to inspect.
func (bc *BlockChain) ProcessTransaction(tx *types.Transaction) (*types.Block, error) {
	err := ApplyTransaction(bc.statedb, bc.coinbase, tx)
	if err != nil {
		if dropsTransaction(err) {
			glog.V(logger.Debug).Infof("dropping transaction %s: %v", tx.Hash(), err)
			metrics.TxnDropped.Mark(1)
			return nil, err
		}
		glog.V(logger.Debug).Infof("including failed transaction: %v", err)
	}

	bc.outstanding = append(bc.outstanding, tx)
	if len(bc.outstanding) >= bc.txnLimit {
		return bc.flushTxns(), err
	}
	return nil, err
}

// flushTxns drains the outstanding queue into a new unsealed block on top
// of the current tip.
func (bc *BlockChain) flushTxns() *types.Block {
	txs := bc.outstanding
	bc.outstanding = nil
	metrics.BlockFlush.Mark(1)
	return types.NewBlock(bc.CurrentBlock(), bc.coinbase, bc.difficulty, txs)
}

// AddBlock appends a sealed block. The block's hash must satisfy its own
// difficulty target; an invalid block is discarded and false is returned.
// On acceptance the block's coinbase is paid the block reward, exactly
// once.
//
// Parent-hash chaining and queue consistency are deliberately not
// verified here; that belongs to a full validator.
func (bc *BlockChain) AddBlock(block *types.Block) bool {
	if !block.ValidPoW() {
		glog.V(logger.Warn).Warnf("rejecting block %s: difficulty %d not met", block.Hash(), block.Difficulty())
		metrics.BlockReject.Mark(1)
		return false
	}
	bc.statedb.AddBalance(block.Coinbase(), params.BlockReward)
	bc.blocks = append(bc.blocks, block)
	bc.blockCache.Add(block.Hash(), block)
	metrics.BlockInsert.Mark(1)
	glog.V(logger.Info).Infof("inserted block #%d [%s]", len(bc.blocks)-1, block.Hash())
	return true
}
