// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package qtumaddr provides conversion between the two forms of a qtum address.

# Address Forms Overview

Every qtum address commits to a 20-byte hash160 payload.  The UTXO layer
encodes that payload with the Base58Check encoding scheme, which wraps it with
a single prefix byte identifying the network and script class along with a
four byte checksum.  The EVM layer instead exposes the same payload to
contracts as 40 bare lowercase hexadecimal characters, the way ethereum
tooling renders an account.  Both forms name the same account, so converting
between them is a pure re-encoding with no network access and no key
material involved.

# Codec Overview

A Codec is bound to the single prefix byte it was created with, either
directly via NewCodec or from the network parameters in the chaincfg package
via NewCodecForParams and NewScriptCodecForParams.  GetHexAddress converts a
base58check address to its bare hex form and FromHexAddress performs the
reverse conversion.  Addresses that fail the checksum or carry a different
prefix byte are rejected with errors that identify the exact failure, so a
codec can never silently convert an address belonging to another network.
*/
package qtumaddr
