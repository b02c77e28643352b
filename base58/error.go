// Copyright (c) 2025-2026 The qtumsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific DecodeError.
const (
	// ErrInvalidCharacter indicates that the encoded string contains a
	// character that is not part of the modified base58 alphabet.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrInvalidLength indicates that the decoded data is too short to
	// contain the prefix and checksum required by the Base58Check
	// encoding scheme.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrChecksum indicates that the checksum embedded in the encoded
	// string does not match the checksum calculated from the decoded
	// data.
	ErrChecksum = ErrorKind("ErrChecksum")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// DecodeError identifies a base58 decoding failure.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
type DecodeError struct {
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e DecodeError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e DecodeError) Unwrap() error {
	return e.Err
}

// decodeError creates a DecodeError given a set of arguments.
func decodeError(kind ErrorKind, desc string) DecodeError {
	return DecodeError{Err: kind, Description: desc}
}
