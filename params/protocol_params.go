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

package params

import "github.com/krishnachittur/GadgetCoin/common"

// BlockReward is paid to a block's coinbase each time a sealed block is
// accepted onto the chain. That's a shiny 5 ether.
var BlockReward = common.FromEth(5)

const (
	// SealBatchSize is how many nonces a seal worker tries between polls
	// of its stop channel. It bounds cancellation latency.
	SealBatchSize = 50

	// GenesisDifficulty is the difficulty recorded in the genesis block.
	GenesisDifficulty uint32 = 0
)
