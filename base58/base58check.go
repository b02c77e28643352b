// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"fmt"

	"github.com/qtumsuite/qtumaddr/chaincfg/chainhash"
)

// checksumSize is the number of bytes of the double SHA256 of the prefixed
// payload that the Base58Check encoding scheme appends to it.
const checksumSize = 4

// minCheckLength is the smallest number of bytes a Base58Check encoded
// string can decode to, which is a single prefix byte followed by the
// checksum.
const minCheckLength = 1 + checksumSize

// checksum returns the first checksumSize bytes of the double SHA256 of the
// provided input.
func checksum(input []byte) (cksum [checksumSize]byte) {
	copy(cksum[:], chainhash.DoubleHashB(input))
	return
}

// CheckEncode prepends the provided prefix byte to the payload, appends a
// checksum of the result, and returns the modified base58 encoding of the
// whole.
func CheckEncode(payload []byte, prefix byte) string {
	buf := make([]byte, 0, 1+len(payload)+checksumSize)
	buf = append(buf, prefix)
	buf = append(buf, payload...)
	cksum := checksum(buf)
	buf = append(buf, cksum[:]...)
	return Encode(buf)
}

// CheckDecode decodes a string that was encoded with CheckEncode, verifies
// the checksum, and returns the payload and the prefix byte that were
// encoded.
//
// The returned errors wrap the following error kinds so the caller can
// determine the specific failure via errors.Is:
//
//   - ErrInvalidCharacter when the string contains a character outside the
//     modified base58 alphabet
//   - ErrInvalidLength when the decoded bytes are too short to contain a
//     prefix and checksum
//   - ErrChecksum when the embedded checksum does not match the calculated
//     one
func CheckDecode(input string) ([]byte, byte, error) {
	decoded, err := Decode(input)
	if err != nil {
		return nil, 0, err
	}
	if len(decoded) < minCheckLength {
		str := fmt.Sprintf("decoded length of %d is less than the minimum "+
			"of %d required for a prefix and checksum", len(decoded),
			minCheckLength)
		return nil, 0, decodeError(ErrInvalidLength, str)
	}

	var cksum [checksumSize]byte
	copy(cksum[:], decoded[len(decoded)-checksumSize:])
	if checksum(decoded[:len(decoded)-checksumSize]) != cksum {
		str := "embedded checksum does not match the calculated checksum"
		return nil, 0, decodeError(ErrChecksum, str)
	}

	payload := decoded[1 : len(decoded)-checksumSize]
	return payload, decoded[0], nil
}
