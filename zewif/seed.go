package zewif

import (
	"github.com/bsv-blockchain/go-sdk/compat/bip39"
)

// SeedMaterialKind distinguishes the forms a wallet's root secret can take.
type SeedMaterialKind string

const (
	// SeedBIP39Mnemonic is a BIP39 mnemonic phrase.
	SeedBIP39Mnemonic SeedMaterialKind = "bip39_mnemonic"
	// SeedPreBIP39 is a raw 32-byte seed from wallets that predate BIP39
	// mnemonics.
	SeedPreBIP39 SeedMaterialKind = "pre_bip39_seed"
)

// SeedMaterial is the root secret of a wallet. Exactly one of Mnemonic and
// Seed is set, according to Kind.
type SeedMaterial struct {
	Kind     SeedMaterialKind `json:"kind"`
	Mnemonic string           `json:"mnemonic,omitempty"`
	Seed     *Blob32          `json:"seed,omitempty"`
}

// NewPreBIP39Seed wraps a raw 32-byte seed.
func NewPreBIP39Seed(seed Blob32) *SeedMaterial {
	return &SeedMaterial{Kind: SeedPreBIP39, Seed: &seed}
}

// NewBIP39Mnemonic wraps a mnemonic after checking its word list and checksum.
func NewBIP39Mnemonic(mnemonic string) (*SeedMaterial, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	return &SeedMaterial{Kind: SeedBIP39Mnemonic, Mnemonic: mnemonic}, nil
}
