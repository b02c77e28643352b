// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package qtumaddr

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific AddressError.
const (
	// ErrInvalidCharacter indicates that an address contains a character
	// that is not part of the modified base58 alphabet.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrInvalidHex indicates that a hex address contains a character
	// that is not a hexadecimal digit.
	ErrInvalidHex = ErrorKind("ErrInvalidHex")

	// ErrInvalidLength indicates that an address does not decode to the
	// exact number of bytes required by its form, either because a hex
	// address does not have the expected number of digits or because a
	// base58check address carries a payload of the wrong size.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrChecksumMismatch indicates that the checksum embedded in an
	// address does not match the checksum calculated from the decoded
	// data.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")

	// ErrPrefixMismatch indicates that an address carries a valid
	// checksum yet identifies a network or script class other than the
	// one the codec converts for.
	ErrPrefixMismatch = ErrorKind("ErrPrefixMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// AddressError identifies an address conversion failure.  It has full support
// for errors.Is and errors.As, so the caller can ascertain the specific
// reason for the error by checking the underlying error.
type AddressError struct {
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e AddressError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e AddressError) Unwrap() error {
	return e.Err
}

// addressError creates an AddressError given a set of arguments.
func addressError(kind ErrorKind, desc string) AddressError {
	return AddressError{Err: kind, Description: desc}
}
