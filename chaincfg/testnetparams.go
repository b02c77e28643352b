// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// TestNetParams returns the network parameters for the test qtum network.
func TestNetParams() *Params {
	return &Params{
		Name: "testnet",

		// Address encoding magics
		NetworkAddressPrefix: "q",
		PubKeyHashAddrID:     0x78, // starts with q
		ScriptHashAddrID:     0x6e, // starts with m
	}
}
