// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
)

var (
	errMissingName          = errors.New("missing network name")
	errDuplicateName        = errors.New("duplicate network name")
	errInvalidAddressPrefix = errors.New("address prefix is not a single " +
		"alphabet character")
	errDuplicateAddrID = errors.New("duplicate address magics within the " +
		"network")
)

// validateNetParams checks the hard-coded parameters of a single network for
// internal consistency.
func validateNetParams(params *Params) error {
	if params.Name == "" {
		return errMissingName
	}

	// The advertised network prefix must be a single ASCII letter matching
	// the leading character the address magics produce.
	prefix := params.NetworkAddressPrefix
	if len(prefix) != 1 {
		return errInvalidAddressPrefix
	}
	c := prefix[0]
	if !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') {
		return errInvalidAddressPrefix
	}

	// The pubkey hash and script hash magics must differ so the two
	// address classes can't be confused for one another.
	if params.PubKeyHashAddrID == params.ScriptHashAddrID {
		return errDuplicateAddrID
	}

	return nil
}

// validateNets checks all of the standard networks for internal consistency
// and for name collisions between networks.
func validateNets(allParams []*Params) error {
	dups := make(map[string]struct{})
	for _, params := range allParams {
		if err := validateNetParams(params); err != nil {
			return fmt.Errorf("%s: %w", params.Name, err)
		}
		if _, found := dups[params.Name]; found {
			return fmt.Errorf("%s: %w", params.Name, errDuplicateName)
		}
		dups[params.Name] = struct{}{}
	}
	return nil
}

func init() {
	allParams := []*Params{MainNetParams(), TestNetParams(), RegTestParams()}
	if err := validateNets(allParams); err != nil {
		panic(fmt.Sprintf("invalid hard-coded network parameters: %v", err))
	}
}
