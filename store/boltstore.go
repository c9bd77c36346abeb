package store

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/bitfsorg/zwl-zewif-go/zewif"
	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

var (
	bucketWallets      = []byte("wallets")
	bucketTransactions = []byte("transactions")
)

// BoltStore persists containers in a bbolt database. Wallets are keyed by
// ID, transactions by txid in internal byte order.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, errors.Wrap(err, "store: create directory")
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "store: open bolt db")
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketWallets, bucketTransactions} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return errors.Wrapf(err, "store: create bucket %q", name)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// PutTop writes all wallets and transactions of top in one bbolt transaction.
func (s *BoltStore) PutTop(top *zewif.Top, opts PutOptions) error {
	wallets, txs, err := encodeTop(top, opts)
	if err != nil {
		return err
	}

	return s.db.Update(func(btx *bbolt.Tx) error {
		wb := btx.Bucket(bucketWallets)
		for id, data := range wallets {
			if err := wb.Put(id[:], data); err != nil {
				return errors.Wrap(err, "store: put wallet")
			}
		}
		tb := btx.Bucket(bucketTransactions)
		for id, data := range txs {
			if err := tb.Put(id[:], data); err != nil {
				return errors.Wrapf(err, "store: put transaction %s", id)
			}
		}
		return nil
	})
}

// GetTransaction retrieves a transaction by ID.
func (s *BoltStore) GetTransaction(id zewif.TxID) (*zewif.Transaction, error) {
	var tx *zewif.Transaction
	err := s.db.View(func(btx *bbolt.Tx) error {
		data := btx.Bucket(bucketTransactions).Get(id[:])
		if data == nil {
			return ErrTxNotFound
		}
		var err error
		tx, err = decodeTx(data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// ListTransactionIDs returns all stored transaction IDs in ascending order.
func (s *BoltStore) ListTransactionIDs() ([]zewif.TxID, error) {
	var ids []zewif.TxID
	err := s.db.View(func(btx *bbolt.Tx) error {
		return btx.Bucket(bucketTransactions).ForEach(func(k, _ []byte) error {
			id, err := zewif.TxIDFromSlice(k)
			if err != nil {
				return errors.Wrapf(ErrCorruptRecord, "transaction key: %v", err)
			}
			ids = append(ids, id)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetWallets returns all stored wallets ordered by ID.
func (s *BoltStore) GetWallets(passphrase string) ([]*zewif.Wallet, error) {
	var raw [][]byte
	err := s.db.View(func(btx *bbolt.Tx) error {
		return btx.Bucket(bucketWallets).ForEach(func(_, v []byte) error {
			raw = append(raw, bytes.Clone(v))
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "store: list wallets")
	}

	wallets := make([]*zewif.Wallet, 0, len(raw))
	for _, data := range raw {
		w, err := decodeWallet(data, passphrase)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, nil
}
