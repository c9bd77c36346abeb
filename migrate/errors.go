package migrate

import (
	"fmt"

	"github.com/bitfsorg/zwl-zewif-go/zewif"
	"github.com/bitfsorg/zwl-zewif-go/zwl"
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidSeedLength indicates the wallet seed is not exactly 32 bytes.
	ErrInvalidSeedLength = errors.New("migrate: seed must be 32 bytes")

	// ErrUnsupportedChain indicates the wallet's chain name is not recognized.
	ErrUnsupportedChain = errors.New("migrate: unsupported chain name")

	// ErrAmountOutOfRange indicates a transparent value exceeds the
	// interchange amount range.
	ErrAmountOutOfRange = zewif.ErrAmountOutOfRange

	// ErrUnrepresentableInput indicates a transparent record cannot become
	// an input. It is consumed internally and never returned by Migrate.
	ErrUnrepresentableInput = errors.New("migrate: transparent input not representable")

	// ErrNotSupported indicates a conversion this module does not implement.
	// Conversions failing with it are recorded as gaps, not returned.
	ErrNotSupported = errors.New("migrate: not supported")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("migrate: required parameter is nil")
)

// UnsupportedChainError carries the chain name that could not be mapped.
type UnsupportedChainError struct {
	Name string
}

func (e *UnsupportedChainError) Error() string {
	return fmt.Sprintf("migrate: unsupported chain name %q", e.Name)
}

// Is reports whether target is ErrUnsupportedChain.
func (e *UnsupportedChainError) Is(target error) bool {
	return target == ErrUnsupportedChain
}

// TransactionError attributes a failure to the transaction that caused it.
type TransactionError struct {
	TxID zwl.TxID
	Err  error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("migrate: transaction %s: %v", e.TxID, e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }
