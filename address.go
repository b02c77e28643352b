// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package qtumaddr

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/qtumsuite/qtumaddr/base58"
)

// PayloadSize is the size of the hash160 payload every address carries, in
// bytes.
const PayloadSize = 20

// HexAddressLen is the number of characters of the bare hexadecimal form of
// an address payload.
const HexAddressLen = PayloadSize * 2

// AddressParams defines an interface that is used to provide the magic
// prefix bytes for the network an address belongs to when encoding and
// decoding addresses.
//
// All of the standard network parameters defined in the chaincfg package
// satisfy this interface.
type AddressParams interface {
	// AddrIDPubKeyHashV0 returns the magic prefix byte for version 0
	// pay-to-pubkey-hash addresses.
	AddrIDPubKeyHashV0() byte

	// AddrIDScriptHashV0 returns the magic prefix byte for version 0
	// pay-to-script-hash addresses.
	AddrIDScriptHashV0() byte
}

// Codec converts addresses between their base58check form and the bare
// hexadecimal form of the 20-byte hash160 payload they carry, as used by the
// qtum EVM layer.
//
// Every codec is bound to the single prefix byte it was created with, so
// addresses for other networks or script classes are rejected rather than
// silently converted.
type Codec struct {
	prefix byte
}

// NewCodec returns a codec that converts addresses carrying the provided
// magic prefix byte.
func NewCodec(prefix byte) *Codec {
	return &Codec{prefix: prefix}
}

// NewCodecForParams returns a codec that converts the pay-to-pubkey-hash
// addresses of the network described by the provided parameters.
func NewCodecForParams(params AddressParams) *Codec {
	return &Codec{prefix: params.AddrIDPubKeyHashV0()}
}

// NewScriptCodecForParams returns a codec that converts the
// pay-to-script-hash addresses of the network described by the provided
// parameters.
func NewScriptCodecForParams(params AddressParams) *Codec {
	return &Codec{prefix: params.AddrIDScriptHashV0()}
}

// Prefix returns the magic prefix byte the codec converts addresses for.
func (c *Codec) Prefix() byte {
	return c.prefix
}

// GetHexAddress converts a base58check address into the bare lowercase
// hexadecimal form of the 20-byte payload it carries, which is the form the
// qtum EVM layer exposes to contracts.
//
// The returned errors wrap the following error kinds so the caller can
// determine the specific failure via errors.Is:
//
//   - ErrInvalidCharacter when the address contains a character outside
//     the modified base58 alphabet
//   - ErrInvalidLength when the address does not decode to a prefix,
//     20-byte payload, and checksum
//   - ErrChecksumMismatch when the embedded checksum does not match the
//     calculated one
//   - ErrPrefixMismatch when the address is valid yet carries a prefix
//     byte other than the one the codec converts for
func (c *Codec) GetHexAddress(addr string) (string, error) {
	payload, prefix, err := base58.CheckDecode(addr)
	if err != nil {
		return "", convertBase58Error(addr, err)
	}
	if len(payload) != PayloadSize {
		str := fmt.Sprintf("address %q carries a payload of %d bytes, want "+
			"%d bytes", addr, len(payload), PayloadSize)
		return "", addressError(ErrInvalidLength, str)
	}
	if prefix != c.prefix {
		str := fmt.Sprintf("address %q has prefix byte %#02x, want %#02x",
			addr, prefix, c.prefix)
		return "", addressError(ErrPrefixMismatch, str)
	}
	return hex.EncodeToString(payload), nil
}

// FromHexAddress converts the bare hexadecimal form of a 20-byte address
// payload into the base58check address that carries the prefix byte the
// codec was created with.  Both lowercase and uppercase hex digits are
// accepted.
//
// The returned errors wrap the following error kinds so the caller can
// determine the specific failure via errors.Is:
//
//   - ErrInvalidLength when the hex address is not exactly 40 characters
//   - ErrInvalidHex when the hex address contains a character that is not
//     a hexadecimal digit
func (c *Codec) FromHexAddress(hexAddr string) (string, error) {
	if len(hexAddr) != HexAddressLen {
		str := fmt.Sprintf("hex address is %d characters, want %d",
			len(hexAddr), HexAddressLen)
		return "", addressError(ErrInvalidLength, str)
	}
	payload, err := hex.DecodeString(hexAddr)
	if err != nil {
		str := fmt.Sprintf("hex address %q: %v", hexAddr, err)
		return "", addressError(ErrInvalidHex, str)
	}
	return base58.CheckEncode(payload, c.prefix), nil
}

// AddHexPrefix returns the provided hex address with the conventional 0x
// marker used by ethereum-style tooling prepended to it.
func AddHexPrefix(hexAddr string) string {
	return "0x" + hexAddr
}

// convertBase58Error maps the error kinds reported by the base58 package to
// the equivalent kinds of this package so callers only need to inspect a
// single set of kinds.
func convertBase58Error(addr string, err error) error {
	str := fmt.Sprintf("address %q: %v", addr, err)
	switch {
	case errors.Is(err, base58.ErrInvalidCharacter):
		return addressError(ErrInvalidCharacter, str)
	case errors.Is(err, base58.ErrInvalidLength):
		return addressError(ErrInvalidLength, str)
	case errors.Is(err, base58.ErrChecksum):
		return addressError(ErrChecksumMismatch, str)
	}
	return AddressError{Description: str, Err: err}
}
