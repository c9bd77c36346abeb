package migrate

import (
	"github.com/bitfsorg/zwl-zewif-go/zewif"
	"github.com/bitfsorg/zwl-zewif-go/zwl"
	"github.com/cockroachdb/errors"
)

// UtxoRole is the part a transparent record could play in the migrated tx.
type UtxoRole int

const (
	// UtxoInputCandidate is an output with no known spender.
	UtxoInputCandidate UtxoRole = iota
	// UtxoSpentOutput is an output the wallet saw spent later.
	UtxoSpentOutput
)

// String returns the role name.
func (r UtxoRole) String() string {
	if r == UtxoSpentOutput {
		return "spent-output"
	}
	return "input-candidate"
}

// ClassifyUtxo decides the role of u from its spent-by marker. The role is
// informational; every record is offered to both conversions.
func ClassifyUtxo(u *zwl.Utxo) UtxoRole {
	if u.IsSpent() {
		return UtxoSpentOutput
	}
	return UtxoInputCandidate
}

// UtxoAsInput converts u to a transparent input.
//
// A wallet record never holds the previous outpoint, unlocking script or
// sequence number an input needs, so this always fails with
// ErrUnrepresentableInput and callers skip the record.
func UtxoAsInput(u *zwl.Utxo) (zewif.TxIn, error) {
	return zewif.TxIn{}, errors.Wrapf(ErrUnrepresentableInput,
		"%s:%d has no outpoint, script sig or sequence", u.TxID, u.OutputIndex)
}

// UtxoAsOutput converts u to a transparent output holding its value and a
// copy of its locking script.
func UtxoAsOutput(u *zwl.Utxo) (zewif.TxOut, error) {
	value, err := zewif.AmountFromUint64(u.Value)
	if err != nil {
		return zewif.TxOut{}, err
	}
	script := zewif.ScriptFromData(zewif.DataFromSlice(u.Script))
	return zewif.NewTxOut(value, script), nil
}
