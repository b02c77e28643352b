// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// RegTestParams returns the network parameters for the regression test
// network.  This should not be confused with the public test network.  The
// regression test network is only ever run locally, typically by tests and
// tooling that need a disposable chain.
//
// The regression test network shares its address encoding magics with the
// public test network, so addresses for the two networks are
// indistinguishable.
func RegTestParams() *Params {
	return &Params{
		Name: "regtest",

		// Address encoding magics
		NetworkAddressPrefix: "q",
		PubKeyHashAddrID:     0x78, // starts with q
		ScriptHashAddrID:     0x6e, // starts with m
	}
}
