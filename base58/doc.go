// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package base58 provides an API for working with modified base58 and
Base58Check encodings.

# Modified Base58 Encoding

Standard base64 encoding would introduce visual ambiguity between certain
characters when the result is printed, so qtum, like the other bitcoin
descendants, encodes binary data with a modified base58 alphabet that omits
the easily mistaken characters 0 (zero), O (capital o), I (capital i), and l
(lower case L).

The encoding treats the input as a big-endian byte sequence, with each leading
zero byte represented by the character 1.  Decoding is the exact inverse and
rejects any character outside the alphabet.

# Base58Check Encoding Scheme

The Base58Check encoding scheme is used by qtum addresses.  It wraps a
payload with a single byte network identifier prefix and a four byte checksum
computed as the leading bytes of the double SHA256 of the prefixed payload.
The checksum lets decoders detect mistyped or corrupted addresses, and the
prefix determines the network and script class the payload belongs to while
also fixing the leading character of the encoded result.
*/
package base58
