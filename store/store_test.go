package store

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/bitfsorg/zwl-zewif-go/migrate"
	"github.com/bitfsorg/zwl-zewif-go/zewif"
	"github.com/bitfsorg/zwl-zewif-go/zwl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

const testPassphrase = "correct horse battery staple"

func tempBoltStore(t *testing.T) *BoltStore {
	t.Helper()
	s, err := OpenBoltStore(filepath.Join(t.TempDir(), "zwl.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// stores runs fn against every Store implementation.
func stores(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Run("bolt", func(t *testing.T) { fn(t, tempBoltStore(t)) })
	t.Run("mem", func(t *testing.T) { fn(t, NewMemStore()) })
}

func testTxID(b byte) zwl.TxID {
	var id zwl.TxID
	id[0] = b
	return id
}

// migratedTop migrates a small mainnet wallet with transparent and Sapling
// activity.
func migratedTop(t *testing.T) *zewif.Top {
	t.Helper()

	w := zwl.NewWallet("main", bytes.Repeat([]byte{0x5e}, migrate.SeedLen))
	w.Birthday = 1_000_000

	spender := testTxID(0x02)
	w.AddTransaction(&zwl.WalletTx{
		TxID:     testTxID(0x01),
		Datetime: 1700000000,
		Utxos: []zwl.Utxo{
			{Value: 5000, Script: []byte{0x76, 0xa9, 0x14}},
			{OutputIndex: 1, Value: 0, Script: []byte{0x6a}, Spent: &spender},
		},
	})

	var nf zwl.Nullifier
	nf[0] = 0xa1
	w.AddTransaction(&zwl.WalletTx{
		TxID:        testTxID(0x02),
		Unconfirmed: true,
		SNotes: []zwl.SaplingNoteData{{
			Note:      zwl.Note{Value: 0, Cmu: [32]byte{0xc1}},
			Nullifier: nf,
			Witnesses: zwl.WitnessCache{TopHeight: 0},
			Memo:      zwl.Memo(bytes.Repeat([]byte{0xf6}, zwl.MemoLen)),
		}},
		SSpentNullifiers: []zwl.Nullifier{nf},
	})

	top, err := migrate.New().Migrate(context.Background(), w)
	require.NoError(t, err)
	return top
}

func TestStore_RoundTrip(t *testing.T) {
	stores(t, func(t *testing.T, s Store) {
		top := migratedTop(t)
		require.NoError(t, s.PutTop(top, PutOptions{}))

		ids, err := s.ListTransactionIDs()
		require.NoError(t, err)
		assert.Equal(t, top.SortedTxIDs(), ids)

		for _, id := range ids {
			got, err := s.GetTransaction(id)
			require.NoError(t, err)
			assert.Equal(t, top.Transactions[id], got)
		}

		wallets, err := s.GetWallets("")
		require.NoError(t, err)
		assert.Equal(t, top.Wallets, wallets)
	})
}

func TestStore_ZeroValuesSurvive(t *testing.T) {
	stores(t, func(t *testing.T, s Store) {
		require.NoError(t, s.PutTop(migratedTop(t), PutOptions{}))

		tx, err := s.GetTransaction(zewif.TxID(testTxID(0x02)))
		require.NoError(t, err)
		require.NotNil(t, tx.Status)
		assert.Equal(t, zewif.Pending, *tx.Status)
		require.Len(t, tx.SaplingSpends, 1)
		require.NotNil(t, tx.SaplingSpends[0].Value)
		require.NotNil(t, tx.SaplingSpends[0].AnchorHeight)
		assert.Zero(t, *tx.SaplingSpends[0].AnchorHeight)
	})
}

func TestStore_PutTopIsIdempotent(t *testing.T) {
	stores(t, func(t *testing.T, s Store) {
		top := migratedTop(t)
		require.NoError(t, s.PutTop(top, PutOptions{}))
		require.NoError(t, s.PutTop(migratedTop(t), PutOptions{}))

		ids, err := s.ListTransactionIDs()
		require.NoError(t, err)
		assert.Len(t, ids, 2)

		wallets, err := s.GetWallets("")
		require.NoError(t, err)
		require.Len(t, wallets, 1)
		assert.Equal(t, top.Wallets[0].ID, wallets[0].ID)
	})
}

func TestStore_TxNotFound(t *testing.T) {
	stores(t, func(t *testing.T, s Store) {
		_, err := s.GetTransaction(zewif.TxID{0xff})
		assert.ErrorIs(t, err, ErrTxNotFound)
	})
}

func TestStore_NilTop(t *testing.T) {
	stores(t, func(t *testing.T, s Store) {
		assert.ErrorIs(t, s.PutTop(nil, PutOptions{}), ErrNilParam)
	})
}

func TestStore_SealedSeed(t *testing.T) {
	stores(t, func(t *testing.T, s Store) {
		top := migratedTop(t)
		require.NoError(t, s.PutTop(top, PutOptions{Passphrase: testPassphrase}))

		_, err := s.GetWallets("")
		assert.ErrorIs(t, err, ErrPassphraseRequired)

		_, err = s.GetWallets("wrong")
		assert.ErrorIs(t, err, ErrDecryptionFailed)

		wallets, err := s.GetWallets(testPassphrase)
		require.NoError(t, err)
		require.Len(t, wallets, 1)
		require.NotNil(t, wallets[0].SeedMaterial)
		assert.Equal(t, top.Wallets[0].SeedMaterial, wallets[0].SeedMaterial)
	})
}

func TestStore_NoSeedNeedsNoPassphrase(t *testing.T) {
	stores(t, func(t *testing.T, s Store) {
		top, err := migrate.ToZewif(zwl.NewWallet("testnet", bytes.Repeat([]byte{0x5e}, migrate.SeedLen)))
		require.NoError(t, err)
		top.Wallets[0].SetSeedMaterial(nil)
		require.NoError(t, s.PutTop(top, PutOptions{Passphrase: testPassphrase}))

		wallets, err := s.GetWallets("")
		require.NoError(t, err)
		require.Len(t, wallets, 1)
		assert.Nil(t, wallets[0].SeedMaterial)
		assert.Equal(t, zewif.Test, wallets[0].Network)
	})
}

func TestDecodeTx_RejectsOutOfRangeAmount(t *testing.T) {
	_, err := decodeTx([]byte(`{"outputs":[{"value":-5,"script_pubkey":"51"}]}`))
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestBoltStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "zwl.db")
	top := migratedTop(t)

	s, err := OpenBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, s.PutTop(top, PutOptions{}))
	require.NoError(t, s.Close())

	s, err = OpenBoltStore(path)
	require.NoError(t, err)
	defer s.Close()

	ids, err := s.ListTransactionIDs()
	require.NoError(t, err)
	assert.Equal(t, top.SortedTxIDs(), ids)
}

func TestBoltStore_SealedBytesOnDisk(t *testing.T) {
	s := tempBoltStore(t)
	top := migratedTop(t)
	require.NoError(t, s.PutTop(top, PutOptions{Passphrase: testPassphrase}))

	seed := top.Wallets[0].SeedMaterial.Seed.Bytes()
	var found bool
	err := s.db.View(func(btx *bbolt.Tx) error {
		return btx.Bucket(bucketWallets).ForEach(func(_, v []byte) error {
			found = found || bytes.Contains(v, seed)
			return nil
		})
	})
	require.NoError(t, err)
	assert.False(t, found, "plaintext seed must not be stored when sealing")
}
