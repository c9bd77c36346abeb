package migrate

import (
	"bytes"
	"math"
	"testing"

	"github.com/bitfsorg/zwl-zewif-go/zewif"
	"github.com/bitfsorg/zwl-zewif-go/zwl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileSaplingNotes_SpentNoteYieldsBoth(t *testing.T) {
	note := testNote(1000, 0xa1, 0xc1, nil)

	res, err := ReconcileSaplingNotes([]zwl.SaplingNoteData{note}, []zwl.Nullifier{testNullifier(0xa1)})
	require.NoError(t, err)
	require.Len(t, res.Spends, 1)
	require.Len(t, res.Outputs, 1)

	spend := res.Spends[0]
	require.NotNil(t, spend.Value)
	assert.Equal(t, int64(1000), spend.Value.Zats())
	require.NotNil(t, spend.AnchorHeight)
	assert.Equal(t, zewif.BlockHeight(2_100_000), *spend.AnchorHeight)
	require.NotNil(t, spend.Nullifier)
	assert.Equal(t, note.Nullifier[:], spend.Nullifier[:])
	assert.Nil(t, spend.SpendIndex)
	assert.Nil(t, spend.ZKProof)

	out := res.Outputs[0]
	require.NotNil(t, out.Commitment)
	assert.Equal(t, bytes.Repeat([]byte{0xc1}, 32), out.Commitment[:])
	assert.Nil(t, out.Memo)
}

func TestReconcileSaplingNotes_UnspentNoteYieldsOutputOnly(t *testing.T) {
	notes := []zwl.SaplingNoteData{testNote(1000, 0xa1, 0xc1, nil)}

	res, err := ReconcileSaplingNotes(notes, []zwl.Nullifier{testNullifier(0xff)})
	require.NoError(t, err)
	assert.Empty(t, res.Spends)
	assert.Len(t, res.Outputs, 1)

	res, err = ReconcileSaplingNotes(notes, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Spends)
	assert.Len(t, res.Outputs, 1)
}

func TestReconcileSaplingNotes_UnrecoverableFieldsUnset(t *testing.T) {
	res, err := ReconcileSaplingNotes([]zwl.SaplingNoteData{testNote(1, 1, 2, nil)}, nil)
	require.NoError(t, err)
	require.Len(t, res.Outputs, 1)

	out := res.Outputs[0]
	assert.Nil(t, out.OutputIndex)
	assert.Nil(t, out.EphemeralKey)
	assert.Nil(t, out.EncCiphertext)
	assert.Nil(t, out.NoteCommitmentTreePosition)
	assert.Nil(t, out.Witness)
}

func TestReconcileSaplingNotes_Memo(t *testing.T) {
	memo := zwl.Memo(append([]byte("hello"), make([]byte, zwl.MemoLen-5)...))
	res, err := ReconcileSaplingNotes([]zwl.SaplingNoteData{testNote(1, 1, 2, memo)}, nil)
	require.NoError(t, err)

	require.Len(t, res.Outputs, 1)
	require.NotNil(t, res.Outputs[0].Memo)
	assert.Equal(t, []byte(memo), []byte(*res.Outputs[0].Memo))
	assert.Len(t, *res.Outputs[0].Memo, zwl.MemoLen)
}

func TestReconcileSaplingNotes_PreservesOrder(t *testing.T) {
	notes := []zwl.SaplingNoteData{
		testNote(1, 0x01, 0xc1, nil),
		testNote(2, 0x02, 0xc2, nil),
		testNote(3, 0x03, 0xc3, nil),
		testNote(4, 0x04, 0xc4, nil),
	}
	// Spent set order differs from note order.
	spent := []zwl.Nullifier{testNullifier(0x04), testNullifier(0x02)}

	res, err := ReconcileSaplingNotes(notes, spent)
	require.NoError(t, err)

	require.Len(t, res.Spends, 2)
	assert.Equal(t, int64(2), res.Spends[0].Value.Zats())
	assert.Equal(t, int64(4), res.Spends[1].Value.Zats())

	require.Len(t, res.Outputs, 4)
	for i, out := range res.Outputs {
		assert.Equal(t, byte(0xc1+i), out.Commitment[0])
	}
}

func TestReconcileSaplingNotes_IgnoresNoteSpentMarker(t *testing.T) {
	note := testNote(1, 0x01, 0xc1, nil)
	spender := testTxID(7)
	note.Spent = &spender

	res, err := ReconcileSaplingNotes([]zwl.SaplingNoteData{note}, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Spends, "spend status comes only from the nullifier set")
}

func TestReconcileSaplingNotes_AnchorOverflowLeftUnset(t *testing.T) {
	note := testNote(1, 0x01, 0xc1, nil)
	note.Witnesses.TopHeight = math.MaxUint32 + 1

	res, err := ReconcileSaplingNotes([]zwl.SaplingNoteData{note}, []zwl.Nullifier{note.Nullifier})
	require.NoError(t, err)
	require.Len(t, res.Spends, 1)
	assert.Nil(t, res.Spends[0].AnchorHeight)
	assert.NotNil(t, res.Spends[0].Nullifier)
	assert.Equal(t, 1, res.UnsetAnchors)
}

func TestReconcileSaplingNotes_ValueOutOfRange(t *testing.T) {
	note := testNote(zewif.MaxMoney+1, 0x01, 0xc1, nil)
	_, err := ReconcileSaplingNotes([]zwl.SaplingNoteData{note}, []zwl.Nullifier{note.Nullifier})
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
}
