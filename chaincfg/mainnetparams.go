// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MainNetParams returns the network parameters for the main qtum network.
func MainNetParams() *Params {
	return &Params{
		Name: "mainnet",

		// Address encoding magics
		NetworkAddressPrefix: "Q",
		PubKeyHashAddrID:     0x3a, // starts with Q
		ScriptHashAddrID:     0x32, // starts with M
	}
}
