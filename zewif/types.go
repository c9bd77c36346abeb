// Package zewif implements the data model of the Zcash Wallet Interchange
// Format: value types, transactions, shielded descriptions and the
// wallet/account container.
//
// Every field the producer could not recover is left unset (a nil pointer
// or nil slice) rather than filled with a placeholder, and is omitted from
// the JSON export.
package zewif

import (
	"encoding/hex"
	"math"

	"github.com/cockroachdb/errors"
)

// U256 is a 256-bit value in stored byte order, used for nullifiers,
// commitments and keys.
type U256 [32]byte

// U256FromSlice copies exactly 32 bytes into a U256.
func U256FromSlice(b []byte) (U256, error) {
	var u U256
	if len(b) != len(u) {
		return u, errors.Wrapf(ErrInvalidLength, "u256 needs 32 bytes, got %d", len(b))
	}
	copy(u[:], b)
	return u, nil
}

// U256FromHex parses a 64-character hex string.
func U256FromHex(s string) (U256, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return U256{}, errors.Wrapf(ErrInvalidHex, "u256: %v", err)
	}
	return U256FromSlice(b)
}

// String returns the hex encoding.
func (u U256) String() string { return hex.EncodeToString(u[:]) }

// MarshalText implements encoding.TextMarshaler.
func (u U256) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// Blob32 is an opaque 32-byte value.
type Blob32 [32]byte

// Blob32FromSlice copies exactly 32 bytes into a Blob32.
func Blob32FromSlice(b []byte) (Blob32, error) {
	var blob Blob32
	if len(b) != len(blob) {
		return blob, errors.Wrapf(ErrInvalidLength, "blob32 needs 32 bytes, got %d", len(b))
	}
	copy(blob[:], b)
	return blob, nil
}

// Bytes returns a copy of the blob.
func (b Blob32) Bytes() []byte {
	out := make([]byte, len(b))
	copy(out, b[:])
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (b Blob32) MarshalText() ([]byte, error) { return []byte(hex.EncodeToString(b[:])), nil }

// Data is a variable-length byte string.
type Data []byte

// DataFromSlice returns a copy of b. A nil slice stays nil.
func DataFromSlice(b []byte) Data {
	if b == nil {
		return nil
	}
	out := make(Data, len(b))
	copy(out, b)
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (d Data) MarshalText() ([]byte, error) { return []byte(hex.EncodeToString(d)), nil }

const (
	// CoinZats is the number of zatoshis in one ZEC.
	CoinZats = 100_000_000

	// MaxMoney is the largest representable amount in zatoshis.
	MaxMoney = 21_000_000 * CoinZats
)

// Amount is a value in zatoshis, always within [0, MaxMoney].
type Amount int64

// AmountFromUint64 converts zats to an Amount, failing with
// ErrAmountOutOfRange if it exceeds MaxMoney.
func AmountFromUint64(zats uint64) (Amount, error) {
	if zats > MaxMoney {
		return 0, errors.Wrapf(ErrAmountOutOfRange, "%d zats exceeds %d", zats, uint64(MaxMoney))
	}
	return Amount(zats), nil
}

// Zats returns the amount in zatoshis.
func (a Amount) Zats() int64 { return int64(a) }

// BlockHeight is a block height.
type BlockHeight uint32

// BlockHeightFromUint64 converts h, reporting false if it does not fit.
func BlockHeightFromUint64(h uint64) (BlockHeight, bool) {
	if h > math.MaxUint32 {
		return 0, false
	}
	return BlockHeight(h), true
}

// SecondsSinceEpoch is a Unix timestamp in seconds.
type SecondsSinceEpoch uint64
