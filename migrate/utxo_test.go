package migrate

import (
	"testing"

	"github.com/bitfsorg/zwl-zewif-go/zewif"
	"github.com/bitfsorg/zwl-zewif-go/zwl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyUtxo(t *testing.T) {
	u := zwl.Utxo{Value: 1}
	assert.Equal(t, UtxoInputCandidate, ClassifyUtxo(&u))

	spender := testTxID(9)
	u.Spent = &spender
	assert.Equal(t, UtxoSpentOutput, ClassifyUtxo(&u))
}

func TestUtxoAsInput_AlwaysFails(t *testing.T) {
	spender := testTxID(9)
	height := int32(100)
	utxos := []zwl.Utxo{
		{},
		{Value: 5000, Script: mustHex(t, p2pkhHex)},
		{Value: zewif.MaxMoney, Script: []byte{0x6a}, Spent: &spender, SpentAtHeight: &height},
		{Value: 1, UnconfirmedSpent: &zwl.UnconfirmedSpend{TxID: spender, Height: 5}},
	}

	for i := range utxos {
		_, err := UtxoAsInput(&utxos[i])
		assert.ErrorIs(t, err, ErrUnrepresentableInput, "utxo %d", i)
	}
}

func TestUtxoAsOutput(t *testing.T) {
	script := mustHex(t, p2pkhHex)
	u := zwl.Utxo{Value: 5000, Script: script}

	out, err := UtxoAsOutput(&u)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), out.Value.Zats())
	assert.Equal(t, script, out.ScriptPubKey.Bytes())
	assert.Equal(t, zewif.ScriptP2PKH, out.ScriptPubKey.Class())

	// The output owns its script bytes.
	script[0] = 0x00
	assert.Equal(t, byte(0x76), out.ScriptPubKey[0])
}

func TestUtxoAsOutput_SpentRecordStillConverts(t *testing.T) {
	spender := testTxID(9)
	u := zwl.Utxo{Value: 42, Script: []byte{0x51}, Spent: &spender}

	out, err := UtxoAsOutput(&u)
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.Value.Zats())
}

func TestUtxoAsOutput_AmountOutOfRange(t *testing.T) {
	u := zwl.Utxo{Value: zewif.MaxMoney + 1}
	_, err := UtxoAsOutput(&u)
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
}
