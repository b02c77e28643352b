// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package qtumaddr

import (
	"github.com/decred/dcrd/crypto/ripemd160"

	"github.com/qtumsuite/qtumaddr/chaincfg/chainhash"
)

// Hash160 calculates the hash ripemd160(sha256(b)).
//
// This is the hash a pay-to-pubkey-hash address payload commits to for a
// serialized public key and a pay-to-script-hash address payload commits to
// for a redeem script.
func Hash160(buf []byte) []byte {
	shaHash := chainhash.HashB(buf)
	hasher := ripemd160.New()
	hasher.Write(shaHash)
	return hasher.Sum(nil)
}
