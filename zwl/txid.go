package zwl

import (
	"bytes"
	"encoding/hex"
	"slices"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	"github.com/cockroachdb/errors"
)

// TxIDLen is the length of a transaction ID in bytes.
const TxIDLen = 32

// TxID identifies a transaction in internal (little-endian) byte order.
type TxID [TxIDLen]byte

// TxIDFromSlice copies b into a TxID.
func TxIDFromSlice(b []byte) (TxID, error) {
	var id TxID
	if len(b) != TxIDLen {
		return id, errors.Wrapf(ErrInvalidTxID, "got %d bytes", len(b))
	}
	copy(id[:], b)
	return id, nil
}

// ParseTxID parses the byte-reversed hex form printed by block explorers.
func ParseTxID(s string) (TxID, error) {
	var id TxID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, errors.Wrapf(ErrInvalidTxID, "decode hex: %v", err)
	}
	if len(b) != TxIDLen {
		return id, errors.Wrapf(ErrInvalidTxID, "got %d bytes", len(b))
	}
	slices.Reverse(b)
	copy(id[:], b)
	return id, nil
}

// String returns the byte-reversed hex form.
func (id TxID) String() string {
	return chainhash.Hash(id).String()
}

// Bytes returns a copy of the ID in internal byte order.
func (id TxID) Bytes() []byte {
	b := make([]byte, TxIDLen)
	copy(b, id[:])
	return b
}

// Compare orders IDs by internal byte order.
func (id TxID) Compare(other TxID) int {
	return bytes.Compare(id[:], other[:])
}

// NullifierLen is the length of a Sapling nullifier in bytes.
const NullifierLen = 32

// Nullifier is a Sapling note nullifier.
type Nullifier [NullifierLen]byte

// NullifierFromSlice copies b into a Nullifier.
func NullifierFromSlice(b []byte) (Nullifier, error) {
	var nf Nullifier
	if len(b) != NullifierLen {
		return nf, errors.Wrapf(ErrInvalidNullifier, "got %d bytes", len(b))
	}
	copy(nf[:], b)
	return nf, nil
}

// String returns the nullifier as hex, in stored byte order.
func (nf Nullifier) String() string {
	return hex.EncodeToString(nf[:])
}
