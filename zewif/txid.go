package zewif

import (
	"bytes"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	"github.com/cockroachdb/errors"
)

// TxID identifies a transaction in internal byte order.
type TxID [32]byte

// TxIDFromSlice copies exactly 32 bytes into a TxID.
func TxIDFromSlice(b []byte) (TxID, error) {
	var id TxID
	if len(b) != len(id) {
		return id, errors.Wrapf(ErrInvalidLength, "txid needs 32 bytes, got %d", len(b))
	}
	copy(id[:], b)
	return id, nil
}

// String returns the byte-reversed hex form.
func (id TxID) String() string { return chainhash.Hash(id).String() }

// MarshalText implements encoding.TextMarshaler.
func (id TxID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// Compare orders IDs by internal byte order.
func (id TxID) Compare(other TxID) int { return bytes.Compare(id[:], other[:]) }
