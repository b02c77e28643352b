// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"fmt"
)

// alphabet is the modified base58 alphabet used by qtum and the other
// bitcoin descendants.  It omits the characters 0, O, I, and l since they
// are easily mistaken for one another.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// invalidChar marks bytes that are not part of the alphabet in the decode
// table.
const invalidChar = 0xff

// decodeTable maps the byte value of every alphabet character to the value
// of the digit it represents and every other byte to invalidChar.
var decodeTable [256]byte

func init() {
	for i := range decodeTable {
		decodeTable[i] = invalidChar
	}
	for i := 0; i < len(alphabet); i++ {
		decodeTable[alphabet[i]] = byte(i)
	}
}

// Encode returns the modified base58 encoding of the provided bytes.  The
// input is interpreted as a big-endian number and each leading zero byte is
// encoded as the leading character of the alphabet.
func Encode(input []byte) string {
	// Leading zero bytes are not part of the converted number and are
	// instead each represented by the leading alphabet character.
	var leadingZeros int
	for ; leadingZeros < len(input) && input[leadingZeros] == 0; leadingZeros++ {
	}

	// The conversion repeatedly divides the number in place, so work on a
	// copy of the significant bytes.
	num := make([]byte, len(input)-leadingZeros)
	copy(num, input[leadingZeros:])

	// Every byte becomes at most log(256) / log(58) ~= 1.37 digits.
	maxResultLen := len(num)*137/100 + 1 + leadingZeros
	result := make([]byte, 0, maxResultLen)

	// Repeatedly divide the number by 58 and use each remainder as the next
	// least significant digit of the result.
	for len(num) > 0 {
		// The quotient reuses the backing array of the number, which is
		// safe since every byte is read before its slot can be
		// overwritten.
		var remainder uint32
		quotient := num[:0]
		for _, digit := range num {
			acc := remainder<<8 | uint32(digit)
			q := acc / 58
			remainder = acc % 58
			if len(quotient) > 0 || q != 0 {
				quotient = append(quotient, byte(q))
			}
		}
		num = quotient
		result = append(result, alphabet[remainder])
	}

	// Append the leading zero bytes and reverse the digits into big-endian
	// order.
	for i := 0; i < leadingZeros; i++ {
		result = append(result, alphabet[0])
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return string(result)
}

// Decode returns the bytes represented by the provided modified base58
// encoded string.
//
// An error that wraps ErrInvalidCharacter is returned when the string
// contains a character that is not part of the modified base58 alphabet.
func Decode(input string) ([]byte, error) {
	// Leading alphabet zero characters decode to the same count of zero
	// bytes.
	var leadingZeros int
	for ; leadingZeros < len(input) && input[leadingZeros] == alphabet[0]; leadingZeros++ {
	}

	// Every character becomes at most log(58) / log(256) ~= 0.733 bytes.
	maxResultLen := (len(input)-leadingZeros)*733/1000 + 1
	buf := make([]byte, maxResultLen)

	// Treat the remaining characters as base58 digits and accumulate them
	// into the buffer with repeated multiply and add while tracking the
	// index of the most significant byte produced so far.
	start := maxResultLen
	for i := leadingZeros; i < len(input); i++ {
		digit := decodeTable[input[i]]
		if digit == invalidChar {
			str := fmt.Sprintf("invalid base58 character %q at offset %d",
				input[i], i)
			return nil, decodeError(ErrInvalidCharacter, str)
		}

		carry := uint32(digit)
		for j := maxResultLen - 1; j >= start || carry != 0; j-- {
			carry += 58 * uint32(buf[j])
			buf[j] = byte(carry)
			carry >>= 8
			if j < start {
				start = j
			}
		}
	}

	result := make([]byte, 0, leadingZeros+maxResultLen-start)
	for i := 0; i < leadingZeros; i++ {
		result = append(result, 0)
	}
	return append(result, buf[start:]...), nil
}
