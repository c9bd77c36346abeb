package migrate

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/bitfsorg/zwl-zewif-go/zwl"
	"github.com/stretchr/testify/require"
)

const p2pkhHex = "76a91462553d6a85afe7753cbe8dc57c7f34f6a8efd79f88ac"

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func testTxID(b byte) zwl.TxID {
	var id zwl.TxID
	id[0] = b
	id[31] = 0xee
	return id
}

func testNullifier(b byte) zwl.Nullifier {
	var nf zwl.Nullifier
	for i := range nf {
		nf[i] = b
	}
	return nf
}

func testSeed() []byte {
	return bytes.Repeat([]byte{0x5e}, SeedLen)
}

func testNote(value uint64, nfByte, cmuByte byte, memo zwl.Memo) zwl.SaplingNoteData {
	var cmu [32]byte
	for i := range cmu {
		cmu[i] = cmuByte
	}
	return zwl.SaplingNoteData{
		Note:      zwl.Note{Value: value, Cmu: cmu},
		Nullifier: testNullifier(nfByte),
		Witnesses: zwl.WitnessCache{TopHeight: 2_100_000},
		Memo:      memo,
	}
}

// testWallet builds a mainnet wallet with one confirmed transparent-only tx
// and one pending tx with a spent and an unspent note.
func testWallet(t *testing.T) *zwl.Wallet {
	t.Helper()
	w := zwl.NewWallet("main", testSeed())
	w.Birthday = 1_000_000

	spender := testTxID(0x02)
	w.AddTransaction(&zwl.WalletTx{
		TxID:     testTxID(0x01),
		Datetime: 1700000000,
		Utxos: []zwl.Utxo{
			{TxID: testTxID(0x01), Value: 5000, Script: mustHex(t, p2pkhHex)},
			{TxID: testTxID(0x01), OutputIndex: 1, Value: 7000, Script: mustHex(t, p2pkhHex), Spent: &spender},
		},
	})
	w.AddTransaction(&zwl.WalletTx{
		TxID:        testTxID(0x02),
		Unconfirmed: true,
		SNotes: []zwl.SaplingNoteData{
			testNote(1000, 0xa1, 0xc1, zwl.Memo(bytes.Repeat([]byte{0xf6}, zwl.MemoLen))),
			testNote(2000, 0xa2, 0xc2, nil),
		},
		SSpentNullifiers: []zwl.Nullifier{testNullifier(0xa1)},
	})
	return w
}
