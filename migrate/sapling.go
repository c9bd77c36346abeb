package migrate

import (
	"encoding/hex"

	"github.com/bitfsorg/zwl-zewif-go/zewif"
	"github.com/bitfsorg/zwl-zewif-go/zwl"
	"github.com/cockroachdb/errors"
)

// SaplingResult holds the descriptions reconciled from a transaction's notes.
type SaplingResult struct {
	Spends  []zewif.SaplingSpendDescription
	Outputs []zewif.SaplingOutputDescription

	// UnsetAnchors counts spends whose witness height did not fit a
	// block height and so carry no anchor height.
	UnsetAnchors int
}

// ReconcileSaplingNotes matches notes against the nullifiers a transaction
// revealed.
//
// A note whose nullifier is in spent yields a spend description with its
// value, anchor height and nullifier. Every note, spent or not, also yields
// an output description with its commitment and memo. Both lists follow the
// order of notes. Spend index, proof, output index, ephemeral key,
// ciphertext, tree position and witness are never set.
func ReconcileSaplingNotes(notes []zwl.SaplingNoteData, spent []zwl.Nullifier) (SaplingResult, error) {
	var res SaplingResult

	spentSet := make(map[zwl.Nullifier]struct{}, len(spent))
	for _, nf := range spent {
		spentSet[nf] = struct{}{}
	}

	for i := range notes {
		note := &notes[i]
		if _, ok := spentSet[note.Nullifier]; !ok {
			continue
		}
		desc, anchored, err := spendDescription(note)
		if err != nil {
			return SaplingResult{}, errors.Wrapf(err, "sapling spend %d", i)
		}
		if !anchored {
			res.UnsetAnchors++
		}
		res.Spends = append(res.Spends, desc)
	}

	for i := range notes {
		desc, err := outputDescription(&notes[i])
		if err != nil {
			return SaplingResult{}, errors.Wrapf(err, "sapling output %d", i)
		}
		res.Outputs = append(res.Outputs, desc)
	}

	return res, nil
}

func spendDescription(note *zwl.SaplingNoteData) (zewif.SaplingSpendDescription, bool, error) {
	var desc zewif.SaplingSpendDescription

	value, err := zewif.AmountFromUint64(note.Note.Value)
	if err != nil {
		return desc, false, err
	}
	desc.Value = &value

	height, anchored := zewif.BlockHeightFromUint64(note.Witnesses.TopHeight)
	if anchored {
		desc.AnchorHeight = &height
	}

	nf, err := zewif.U256FromHex(hex.EncodeToString(note.Nullifier[:]))
	if err != nil {
		return desc, false, err
	}
	desc.Nullifier = &nf

	return desc, anchored, nil
}

func outputDescription(note *zwl.SaplingNoteData) (zewif.SaplingOutputDescription, error) {
	var desc zewif.SaplingOutputDescription

	cmu := note.Note.Commitment()
	commitment, err := zewif.U256FromHex(hex.EncodeToString(cmu[:]))
	if err != nil {
		return desc, err
	}
	desc.Commitment = &commitment

	if note.Memo != nil {
		memo := zewif.DataFromSlice(note.Memo)
		desc.Memo = &memo
	}

	return desc, nil
}
