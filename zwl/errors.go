package zwl

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidTxID indicates a transaction ID is not 32 bytes.
	ErrInvalidTxID = errors.New("zwl: transaction ID must be 32 bytes")

	// ErrInvalidNullifier indicates a nullifier is not 32 bytes.
	ErrInvalidNullifier = errors.New("zwl: nullifier must be 32 bytes")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("zwl: required parameter is nil")
)
