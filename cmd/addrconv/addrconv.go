// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/qtumsuite/qtumaddr"
	"github.com/qtumsuite/qtumaddr/chaincfg"
	"github.com/qtumsuite/qtumaddr/internal/version"
)

// appName is the name the help and version output identify the tool by.
const appName = "addrconv"

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

type config struct {
	TestNet     bool   `long:"testnet" description:"use the test network address magics"`
	RegTest     bool   `long:"regtest" description:"use the regression test network address magics (same magics as testnet)"`
	Script      bool   `short:"s" long:"script" description:"use the pay-to-script-hash magic of the selected network"`
	Prefix      string `short:"p" long:"prefix" description:"hex prefix byte to use instead of the network default (e.g. 0x3a)"`
	HexPrefix   bool   `short:"x" long:"hexprefix" description:"prepend the 0x marker to hexadecimal output"`
	ShowVersion bool   `short:"V" long:"version" description:"display version information and exit"`
}

// convertInput converts a single input in whichever direction matches its
// form: a bare 40 character hex payload, optionally carrying the 0x marker,
// converts to a base58check address, while anything else is treated as a
// base58check address and converts to the bare hex form of its payload.
//
// The two forms cannot be confused since a base58check address for a 25-byte
// buffer is at most 35 characters.
func convertInput(codec *qtumaddr.Codec, input string, hexPrefix bool) (string, error) {
	trimmed := input
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		trimmed = trimmed[2:]
	}
	if len(trimmed) == qtumaddr.HexAddressLen {
		return codec.FromHexAddress(trimmed)
	}

	hexAddr, err := codec.GetHexAddress(input)
	if err != nil {
		return "", err
	}
	if hexPrefix {
		hexAddr = qtumaddr.AddHexPrefix(hexAddr)
	}
	return hexAddr, nil
}

// parsePrefixByte parses the hex form of a prefix byte override such as 0x3a
// or 3a.
func parsePrefixByte(s string) (byte, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	val, err := strconv.ParseUint(trimmed, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid prefix byte %q: %v", s, err)
	}
	return byte(val), nil
}

func main() {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [address...]\n\nWith no address arguments, " +
		"addresses are read from stdin, one per line."
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type != flags.ErrHelp {
				os.Exit(1)
			}
			os.Exit(0)
		}
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS,
			runtime.GOARCH)
		os.Exit(0)
	}

	if cfg.TestNet && cfg.RegTest {
		fatalf("--testnet and --regtest may not be used together\n")
	}

	params := chaincfg.MainNetParams()
	switch {
	case cfg.TestNet:
		params = chaincfg.TestNetParams()
	case cfg.RegTest:
		params = chaincfg.RegTestParams()
	}

	var codec *qtumaddr.Codec
	switch {
	case cfg.Prefix != "":
		if cfg.Script {
			fatalf("--prefix and --script may not be used together\n")
		}
		prefix, err := parsePrefixByte(cfg.Prefix)
		if err != nil {
			fatalf("%s\n", err)
		}
		codec = qtumaddr.NewCodec(prefix)
	case cfg.Script:
		codec = qtumaddr.NewScriptCodecForParams(params)
	default:
		codec = qtumaddr.NewCodecForParams(params)
	}

	// Convert the command line arguments when any are present and otherwise
	// convert lines read from stdin.  A failed conversion does not stop the
	// remaining inputs from converting, but any failure makes the final
	// exit status nonzero.
	var failures int
	convert := func(input string) {
		result, err := convertInput(codec, input, cfg.HexPrefix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			failures++
			return
		}
		fmt.Println(result)
	}

	if len(args) > 0 {
		for _, arg := range args {
			convert(arg)
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			convert(line)
		}
		if err := scanner.Err(); err != nil {
			fatalf("read stdin: %v\n", err)
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}
