package migrate

import (
	"github.com/bitfsorg/zwl-zewif-go/zewif"
	"github.com/bitfsorg/zwl-zewif-go/zwl"
	"github.com/cockroachdb/errors"
)

// Capability names a family of interchange fields the source wallet cannot
// supply.
type Capability int

const (
	CapTransparentInputs Capability = iota
	CapRawTransaction
	CapSpendIndex
	CapSpendProof
	CapAnchorHeight
	CapOutputIndex
	CapEphemeralKey
	CapEncCiphertext
	CapTreePosition
	CapWitness
	CapOrchardActions
	CapSproutJoinSplits
	CapMultiAccount
)

var capabilityNames = map[Capability]string{
	CapTransparentInputs: "transparent inputs",
	CapRawTransaction:    "raw transaction data",
	CapSpendIndex:        "sapling spend index",
	CapSpendProof:        "sapling spend proof",
	CapAnchorHeight:      "sapling anchor height",
	CapOutputIndex:       "sapling output index",
	CapEphemeralKey:      "sapling ephemeral key",
	CapEncCiphertext:     "sapling note ciphertext",
	CapTreePosition:      "note commitment tree position",
	CapWitness:           "note witness",
	CapOrchardActions:    "orchard actions",
	CapSproutJoinSplits:  "sprout joinsplits",
	CapMultiAccount:      "multi-account attribution",
}

// String returns a human-readable name.
func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return "unknown capability"
}

// Unsupported returns an error marking c as not implemented.
func Unsupported(c Capability) error {
	return errors.Wrapf(ErrNotSupported, "%s", c)
}

// OrchardConverter produces Orchard action descriptions for a transaction.
type OrchardConverter interface {
	ConvertOrchard(txid zwl.TxID, tx *zwl.WalletTx) ([]zewif.OrchardActionDescription, error)
}

// SproutConverter produces Sprout JoinSplit descriptions for a transaction.
type SproutConverter interface {
	ConvertSprout(txid zwl.TxID, tx *zwl.WalletTx) ([]zewif.JoinSplitDescription, error)
}

// NoOrchard is the shipped OrchardConverter. ZecWallet Lite keeps Orchard
// notes outside its transaction records, so there is nothing to convert yet.
type NoOrchard struct{}

// ConvertOrchard always fails with ErrNotSupported.
func (NoOrchard) ConvertOrchard(zwl.TxID, *zwl.WalletTx) ([]zewif.OrchardActionDescription, error) {
	return nil, Unsupported(CapOrchardActions)
}

// NoSprout is the shipped SproutConverter; the wallet never tracked Sprout.
type NoSprout struct{}

// ConvertSprout always fails with ErrNotSupported.
func (NoSprout) ConvertSprout(zwl.TxID, *zwl.WalletTx) ([]zewif.JoinSplitDescription, error) {
	return nil, Unsupported(CapSproutJoinSplits)
}
