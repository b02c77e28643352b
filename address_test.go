// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package qtumaddr

import (
	"encoding/hex"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/qtumsuite/qtumaddr/base58"
	"github.com/qtumsuite/qtumaddr/chaincfg"
)

// Ensure the standard network parameters satisfy the AddressParams interface.
var _ AddressParams = (*chaincfg.Params)(nil)

// mockAddrParams implements the AddressParams interface and is used
// throughout the tests to mock multiple networks.
type mockAddrParams struct {
	pkhID    byte
	scriptID byte
}

// AddrIDPubKeyHashV0 returns the magic prefix byte associated with the mock
// params for version 0 pay-to-pubkey-hash addresses.
//
// This is part of the AddressParams interface.
func (p *mockAddrParams) AddrIDPubKeyHashV0() byte {
	return p.pkhID
}

// AddrIDScriptHashV0 returns the magic prefix byte associated with the mock
// params for version 0 pay-to-script-hash addresses.
//
// This is part of the AddressParams interface.
func (p *mockAddrParams) AddrIDScriptHashV0() byte {
	return p.scriptID
}

// mockTestNetParams returns mock testnet address parameters to use throughout
// the tests.  They match the qtum testnet params as of the time this comment
// was written.
func mockTestNetParams() *mockAddrParams {
	return &mockAddrParams{
		pkhID:    0x78, // starts with q
		scriptID: 0x6e, // starts with m
	}
}

// conversionTests houses qtum testnet pay-to-pubkey-hash addresses along with
// the bare hex form of the payloads they carry.
var conversionTests = []struct {
	hexAddr string
	addr    string
}{
	{"6c89a1a6ca2ae7c00b248bb2832d6f480f27da68", "qTTH1Yr2eKCuDLqfxUyBLCAjmomQ8pyrBt"},
	{"49a80104c0d27a9ba29678d07e87a57151107613", "qQGqkA16ZY6bCYy7Qjr77eU4BPsdadibCG"},
	{"7926223070547d2d15b2ef5e7383e541c338ffe9", "qUbxboqjBRp96j3La8D1RYkyqx5uQbJPoW"},
	{"2352be3db3177f0a07efbe6da5857615b8c9901d", "qLn9vqbr2Gx3TsVR9QyTVB5mrMoh4x43Uf"},
	{"69b004ac2b3993bf2fdf56b02746a1f57997420d", "qTCCy8qy7pW94EApdoBjYc1vQ2w68UnXPi"},
	{"8c647515f03daeefd09872d7530fa8d8450f069a", "qWMi6ne9mDQFatRGejxdDYVUV9rQVkAFGp"},
	{"2191744eb5ebeac90e523a817b77a83a0058003b", "qLcshhsRS6HKeTKRYFdpXnGVZxw96QQcfm"},
	{"88b0bf4b301c21f8a47be2188bad6467ad556dcf", "qW28njWueNpBXYWj2KDmtFG2gbLeALeHfV"},
}

// TestGetHexAddress ensures converting known testnet addresses to their bare
// hex form works as expected.
func TestGetHexAddress(t *testing.T) {
	codec := NewCodecForParams(mockTestNetParams())
	for i, test := range conversionTests {
		result, err := codec.GetHexAddress(test.addr)
		if err != nil {
			t.Errorf("#%d (%s): unexpected error: %v", i, test.addr, err)
			continue
		}
		if result != test.hexAddr {
			t.Errorf("#%d (%s): got: %s want: %s", i, test.addr, result,
				test.hexAddr)
			continue
		}
	}
}

// TestFromHexAddress ensures converting the bare hex form of known payloads
// to testnet addresses works as expected, including uppercase hex input.
func TestFromHexAddress(t *testing.T) {
	codec := NewCodecForParams(mockTestNetParams())
	for i, test := range conversionTests {
		result, err := codec.FromHexAddress(test.hexAddr)
		if err != nil {
			t.Errorf("#%d (%s): unexpected error: %v", i, test.hexAddr, err)
			continue
		}
		if result != test.addr {
			t.Errorf("#%d (%s): got: %s want: %s", i, test.hexAddr, result,
				test.addr)
			continue
		}

		// Uppercase hex digits must convert to the same address.
		result, err = codec.FromHexAddress(strings.ToUpper(test.hexAddr))
		if err != nil {
			t.Errorf("#%d (%s): unexpected error for uppercase: %v", i,
				test.hexAddr, err)
			continue
		}
		if result != test.addr {
			t.Errorf("#%d (%s): uppercase got: %s want: %s", i, test.hexAddr,
				result, test.addr)
			continue
		}
	}
}

// TestGetHexAddressErrors ensures converting malformed addresses fails with
// the expected error kinds.
func TestGetHexAddressErrors(t *testing.T) {
	// A valid address with its final character changed so the embedded
	// checksum no longer matches.
	corrupted := conversionTests[0].addr
	corrupted = corrupted[:len(corrupted)-1] + "u"

	// Valid base58check strings that carry payloads of the wrong size for
	// an address.
	shortPayload := base58.CheckEncode(make([]byte, 10), 0x78)
	longPayload := base58.CheckEncode(make([]byte, 21), 0x78)

	tests := []struct {
		name string
		addr string
		want ErrorKind
	}{{
		name: "empty string",
		addr: "",
		want: ErrInvalidLength,
	}, {
		name: "char outside alphabet",
		addr: conversionTests[0].addr[:33] + "0",
		want: ErrInvalidCharacter,
	}, {
		name: "whitespace",
		addr: " " + conversionTests[0].addr,
		want: ErrInvalidCharacter,
	}, {
		name: "too short to carry a checksum",
		addr: "1111",
		want: ErrInvalidLength,
	}, {
		name: "corrupted checksum",
		addr: corrupted,
		want: ErrChecksumMismatch,
	}, {
		name: "valid encoding of a 10-byte payload",
		addr: shortPayload,
		want: ErrInvalidLength,
	}, {
		name: "valid encoding of a 21-byte payload",
		addr: longPayload,
		want: ErrInvalidLength,
	}}

	codec := NewCodecForParams(mockTestNetParams())
	for _, test := range tests {
		result, err := codec.GetHexAddress(test.addr)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: unexpected error -- got %v, want %v", test.name,
				err, test.want)
			continue
		}
		if result != "" {
			t.Errorf("%s: returned hex %q on error", test.name, result)
			continue
		}
	}
}

// TestFromHexAddressErrors ensures converting malformed hex addresses fails
// with the expected error kinds.
func TestFromHexAddressErrors(t *testing.T) {
	validHex := conversionTests[0].hexAddr

	tests := []struct {
		name    string
		hexAddr string
		want    ErrorKind
	}{{
		name:    "empty string",
		hexAddr: "",
		want:    ErrInvalidLength,
	}, {
		name:    "39 characters",
		hexAddr: validHex[:39],
		want:    ErrInvalidLength,
	}, {
		name:    "41 characters",
		hexAddr: validHex + "0",
		want:    ErrInvalidLength,
	}, {
		name:    "0x marker included",
		hexAddr: "0x" + validHex,
		want:    ErrInvalidLength,
	}, {
		name:    "non-hex character",
		hexAddr: validHex[:39] + "g",
		want:    ErrInvalidHex,
	}, {
		name:    "embedded space",
		hexAddr: validHex[:20] + " " + validHex[21:],
		want:    ErrInvalidHex,
	}}

	codec := NewCodecForParams(mockTestNetParams())
	for _, test := range tests {
		result, err := codec.FromHexAddress(test.hexAddr)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: unexpected error -- got %v, want %v", test.name,
				err, test.want)
			continue
		}
		if result != "" {
			t.Errorf("%s: returned address %q on error", test.name, result)
			continue
		}
	}
}

// TestPrefixMismatch ensures an address that carries a valid checksum for a
// different network or script class is rejected with the prefix mismatch
// kind rather than being converted or reported as corrupted.
func TestPrefixMismatch(t *testing.T) {
	payload := conversionTests[0].hexAddr
	mainNet := chaincfg.MainNetParams()
	testNet := chaincfg.TestNetParams()

	// A mainnet address presented to a testnet codec.
	mainNetAddr, err := NewCodecForParams(mainNet).FromHexAddress(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = NewCodecForParams(testNet).GetHexAddress(mainNetAddr)
	if !errors.Is(err, ErrPrefixMismatch) {
		t.Fatalf("unexpected error -- got %v, want %v", err,
			ErrPrefixMismatch)
	}

	// A p2sh address presented to a p2pkh codec of the same network.
	scriptAddr, err := NewScriptCodecForParams(testNet).FromHexAddress(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = NewCodecForParams(testNet).GetHexAddress(scriptAddr)
	if !errors.Is(err, ErrPrefixMismatch) {
		t.Fatalf("unexpected error -- got %v, want %v", err,
			ErrPrefixMismatch)
	}
}

// TestChecksumSensitivity ensures flipping any single bit of the raw decoded
// bytes of a valid address invalidates it with a checksum mismatch.
func TestChecksumSensitivity(t *testing.T) {
	codec := NewCodecForParams(mockTestNetParams())
	decoded, err := base58.Decode(conversionTests[0].addr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < len(decoded); i++ {
		for bit := uint(0); bit < 8; bit++ {
			corrupted := make([]byte, len(decoded))
			copy(corrupted, decoded)
			corrupted[i] ^= 1 << bit

			addr := base58.Encode(corrupted)
			_, err := codec.GetHexAddress(addr)
			if !errors.Is(err, ErrChecksumMismatch) {
				t.Fatalf("byte %d bit %d: unexpected error -- got %v, "+
					"want %v", i, bit, err, ErrChecksumMismatch)
			}
		}
	}
}

// TestConversionRoundTrip ensures converting random payloads to addresses and
// back returns the original lowercase hex form for a variety of prefixes.
func TestConversionRoundTrip(t *testing.T) {
	prefixes := []byte{0x3a, 0x32, 0x78, 0x6e}
	prng := rand.New(rand.NewSource(7515))
	for i := 0; i < 256; i++ {
		payload := make([]byte, 20)
		prng.Read(payload)
		codec := NewCodec(prefixes[i%len(prefixes)])

		hexAddr := hex.EncodeToString(payload)
		addr, err := codec.FromHexAddress(hexAddr)
		if err != nil {
			t.Fatalf("#%d: unexpected error: %v\npayload: %s", i, err,
				spew.Sdump(payload))
		}
		back, err := codec.GetHexAddress(addr)
		if err != nil {
			t.Fatalf("#%d: unexpected error: %v\npayload: %s", i, err,
				spew.Sdump(payload))
		}
		if back != hexAddr {
			t.Fatalf("#%d: round trip mismatch -- got %s, want %s", i, back,
				hexAddr)
		}
	}
}

// TestCodecPrefix ensures codecs report the prefix byte they were created
// with for both the direct and params-based constructors.
func TestCodecPrefix(t *testing.T) {
	if got := NewCodec(0x3a).Prefix(); got != 0x3a {
		t.Errorf("unexpected prefix -- got %#02x, want 0x3a", got)
	}

	params := chaincfg.MainNetParams()
	if got := NewCodecForParams(params).Prefix(); got != params.PubKeyHashAddrID {
		t.Errorf("unexpected prefix -- got %#02x, want %#02x", got,
			params.PubKeyHashAddrID)
	}
	if got := NewScriptCodecForParams(params).Prefix(); got != params.ScriptHashAddrID {
		t.Errorf("unexpected prefix -- got %#02x, want %#02x", got,
			params.ScriptHashAddrID)
	}

	mock := mockTestNetParams()
	if got := NewCodecForParams(mock).Prefix(); got != mock.pkhID {
		t.Errorf("unexpected prefix -- got %#02x, want %#02x", got,
			mock.pkhID)
	}
	if got := NewScriptCodecForParams(mock).Prefix(); got != mock.scriptID {
		t.Errorf("unexpected prefix -- got %#02x, want %#02x", got,
			mock.scriptID)
	}
}

// TestAddHexPrefix ensures the 0x marker is prepended verbatim.
func TestAddHexPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"6c89a1a6ca2ae7c00b248bb2832d6f480f27da68", "0x6c89a1a6ca2ae7c00b248bb2832d6f480f27da68"},
		{"", "0x"},
	}

	for i, test := range tests {
		if got := AddHexPrefix(test.in); got != test.want {
			t.Errorf("#%d: got: %s want: %s", i, got, test.want)
			continue
		}
	}
}
