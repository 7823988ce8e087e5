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

// Package miner performs the proof-of-work nonce search. Workers share
// nothing: each owns a clone of the block and a private random source,
// and the only communication is the found- and stop-channels.
package miner

import (
	crand "crypto/rand"
	"math"
	"math/big"
	"math/rand"
	"time"

	"github.com/krishnachittur/GadgetCoin/core/types"
	"github.com/krishnachittur/GadgetCoin/logger"
	"github.com/krishnachittur/GadgetCoin/logger/glog"
	"github.com/krishnachittur/GadgetCoin/metrics"
	"github.com/krishnachittur/GadgetCoin/params"
)

// Seal searches for a nonce that satisfies the block's difficulty target,
// using the given number of worker threads, and writes the winning nonce
// into block before returning it. The search has no timeout: at expected
// cost 2^difficulty it finishes with probability one, and a caller that
// wants cancellation should run Seal on its own goroutine and abandon it.
func Seal(block *types.Block, threads int) *types.Block {
	if threads < 1 {
		threads = 1
	}
	start := time.Now()

	// The found-channel is buffered so that a late winner can send and
	// exit without waiting for anyone to observe the stop signal.
	found := make(chan uint32, threads)
	stop := make(chan struct{})

	for i := 0; i < threads; i++ {
		seed, err := crand.Int(crand.Reader, big.NewInt(math.MaxInt64))
		if err != nil {
			glog.Fatalf("cannot seed search rng: %v", err)
		}
		go search(block.Copy(), rand.New(rand.NewSource(seed.Int64())), i, found, stop)
	}

	nonce := <-found
	close(stop)

	block.SetNonce(nonce)
	metrics.SealTimer.UpdateSince(start)
	glog.V(logger.Info).Infof("sealed block %s with nonce %d", block.Hash(), nonce)
	return block
}

// search is the worker loop: batches of random nonces against a private
// clone of the block, with a non-blocking stop poll between batches. The
// batch size bounds how long a worker keeps running after another worker
// wins.
func search(block *types.Block, rng *rand.Rand, index int, found chan<- uint32, stop <-chan struct{}) {
	glog.V(logger.Debug).Infof("seal worker %d started", index)
	for {
		for i := 0; i < params.SealBatchSize; i++ {
			nonce := rng.Uint32()
			block.SetNonce(nonce)
			if block.ValidPoW() {
				metrics.SealHashes.Mark(int64(i + 1))
				found <- nonce
				glog.V(logger.Debug).Infof("seal worker %d found nonce %d", index, nonce)
				return
			}
		}
		metrics.SealHashes.Mark(params.SealBatchSize)

		select {
		case <-stop:
			glog.V(logger.Detail).Infof("seal worker %d stopping", index)
			return
		default:
		}
	}
}
