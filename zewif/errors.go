package zewif

import "github.com/cockroachdb/errors"

var (
	// ErrAmountOutOfRange indicates a value outside [0, MaxMoney].
	ErrAmountOutOfRange = errors.New("zewif: amount out of range")

	// ErrInvalidLength indicates a fixed-width value was built from the wrong
	// number of bytes.
	ErrInvalidLength = errors.New("zewif: invalid length")

	// ErrInvalidHex indicates a hex string could not be decoded.
	ErrInvalidHex = errors.New("zewif: invalid hex")

	// ErrInvalidMnemonic indicates a mnemonic fails BIP39 validation.
	ErrInvalidMnemonic = errors.New("zewif: invalid BIP39 mnemonic")

	// ErrUnknownNetwork indicates a network name that is not main, test or regtest.
	ErrUnknownNetwork = errors.New("zewif: unknown network")
)
