// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// Params defines a qtum network by its parameters.  These parameters may be
// used by applications to differentiate networks as well as addresses for one
// network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// NetworkAddressPrefix is the first letter of the network
	// for any given pay-to-pubkey-hash address encoded as a string.
	NetworkAddressPrefix string

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
}

// AddrIDPubKeyHashV0 returns the magic prefix byte for version 0
// pay-to-pubkey-hash addresses on the network the parameters define.
func (p *Params) AddrIDPubKeyHashV0() byte {
	return p.PubKeyHashAddrID
}

// AddrIDScriptHashV0 returns the magic prefix byte for version 0
// pay-to-script-hash addresses on the network the parameters define.
func (p *Params) AddrIDScriptHashV0() byte {
	return p.ScriptHashAddrID
}
