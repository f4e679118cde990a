package opossum

import "fmt"

// InvalidKeyLengthError represents an error when the Opossum master key
// length is invalid. The master key must be exactly KeySize bytes (2048
// bits).
type InvalidKeyLengthError int

// Error returns a formatted error message describing the invalid key length.
func (e InvalidKeyLengthError) Error() string {
	return fmt.Sprintf("opossum: invalid key length %d, must be exactly %d bytes", int(e), KeySize)
}

// InvalidIvLengthError represents an error when the Opossum IV length is
// invalid. The IV must be exactly IVSize bytes (256 bits).
type InvalidIvLengthError int

// Error returns a formatted error message describing the invalid IV length.
func (e InvalidIvLengthError) Error() string {
	return fmt.Sprintf("opossum: invalid iv length %d, must be exactly %d bytes", int(e), IVSize)
}

// InvalidBlockLengthError represents an error when encryptBlock is invoked
// with a block that is not exactly BlockSize bytes. This is an internal
// invariant violation; it should be unreachable from the public API, since
// Encrypt/Decrypt always build correctly-sized blocks themselves.
type InvalidBlockLengthError int

// Error returns a formatted error message describing the invalid block length.
func (e InvalidBlockLengthError) Error() string {
	return fmt.Sprintf("opossum: invalid block length %d, must be exactly %d bytes", int(e), BlockSize)
}

// RoundCountError represents an error when a Context is constructed with a
// non-positive round count. The round structure (whitening, main rounds,
// final round) is only defined for R >= 1.
type RoundCountError int

// Error returns a formatted error message describing the invalid round count.
func (e RoundCountError) Error() string {
	return fmt.Sprintf("opossum: invalid round count %d, must be at least 1", int(e))
}
