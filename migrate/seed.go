package migrate

import (
	"github.com/bitfsorg/zwl-zewif-go/zewif"
	"github.com/cockroachdb/errors"
)

// SeedLen is the length of a ZecWallet Lite HD seed.
const SeedLen = 32

// ConvertSeedMaterial wraps the wallet's raw seed as pre-BIP39 seed
// material. Any length other than SeedLen, including zero, fails with
// ErrInvalidSeedLength.
func ConvertSeedMaterial(seed []byte) (*zewif.SeedMaterial, error) {
	if len(seed) != SeedLen {
		return nil, errors.Wrapf(ErrInvalidSeedLength, "got %d bytes", len(seed))
	}
	blob, err := zewif.Blob32FromSlice(seed)
	if err != nil {
		return nil, err
	}
	return zewif.NewPreBIP39Seed(blob), nil
}
