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

// Package metrics centralizes the registration.
package metrics

import (
	"github.com/rcrowley/go-metrics"
)

// reg is the metrics destination.
var reg = metrics.NewRegistry()

var (
	TxnSuccess = metrics.NewRegisteredMeter("txn/success", reg)
	TxnFailure = metrics.NewRegisteredMeter("txn/failure", reg)
	TxnDropped = metrics.NewRegisteredMeter("txn/dropped", reg)

	BlockInsert = metrics.NewRegisteredMeter("chain/block/insert", reg)
	BlockReject = metrics.NewRegisteredMeter("chain/block/reject", reg)
	BlockFlush  = metrics.NewRegisteredMeter("chain/block/flush", reg)

	SealHashes = metrics.NewRegisteredMeter("seal/hashes", reg)
	SealTimer  = metrics.NewRegisteredTimer("seal/duration", reg)
)

// Registry exposes the shared registry for exporters and tests.
func Registry() metrics.Registry {
	return reg
}
