package store

import "github.com/cockroachdb/errors"

var (
	// ErrTxNotFound indicates the transaction is not in the store.
	ErrTxNotFound = errors.New("store: transaction not found")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("store: required parameter is nil")

	// ErrPassphraseRequired indicates a sealed seed was read without a passphrase.
	ErrPassphraseRequired = errors.New("store: seed is sealed; passphrase required")

	// ErrDecryptionFailed indicates the sealed seed could not be opened,
	// typically because the passphrase is wrong.
	ErrDecryptionFailed = errors.New("store: decryption failed")

	// ErrChecksumMismatch indicates the opened seed fails its checksum.
	ErrChecksumMismatch = errors.New("store: seed checksum mismatch")

	// ErrEmptySecret indicates there is nothing to seal.
	ErrEmptySecret = errors.New("store: empty secret")

	// ErrCorruptRecord indicates a stored record could not be decoded.
	ErrCorruptRecord = errors.New("store: corrupt record")
)
