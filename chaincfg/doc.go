// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines qtum network configuration parameters.
//
// In addition to the main qtum network, which is intended for the transfer of
// monetary value, there also exists two currently active standard networks:
// the public test network and the regression test network.  The networks are
// incompatible with each other, and software should handle errors where input
// intended for one network is used on an application instance running on a
// different network.
//
// For main packages, a (typically global) var may be assigned the address of
// one of the standard Params for use as the application's "active" network.
// When a network parameter is needed, it may then be looked up through this
// variable (either directly, or hidden in a library call).
//
//	package main
//
//	import (
//		"flag"
//		"fmt"
//
//		"github.com/qtumsuite/qtumaddr"
//		"github.com/qtumsuite/qtumaddr/chaincfg"
//	)
//
//	func main() {
//		var testnet = flag.Bool("testnet", false, "operate on the test network")
//		flag.Parse()
//
//		// By default (without -testnet), use mainnet.
//		var chainParams = chaincfg.MainNetParams()
//
//		// Modify active network parameters if operating on testnet.
//		if *testnet {
//			chainParams = chaincfg.TestNetParams()
//		}
//
//		// later...
//
//		// Convert an address specific to the active network.
//		codec := qtumaddr.NewCodecForParams(chainParams)
//		hexAddr, err := codec.GetHexAddress(flag.Arg(0))
//		if err != nil {
//			fmt.Println(err)
//			return
//		}
//		fmt.Println(hexAddr)
//	}
//
// If an application does not use one of the standard qtum networks, a new
// Params struct may be created which defines the parameters for the
// non-standard network.
package chaincfg
