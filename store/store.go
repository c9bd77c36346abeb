// Package store persists migrated interchange containers. Seed material can
// be sealed under a passphrase (Argon2id + AES-256-GCM) before it is written.
package store

import (
	"bytes"
	"slices"
	"sync"

	"github.com/bitfsorg/zwl-zewif-go/zewif"
	"github.com/cockroachdb/errors"
)

// PutOptions controls how a container is written.
type PutOptions struct {
	// Passphrase seals seed material when non-empty.
	Passphrase string
}

// Store persists migrated containers. Writing a wallet or transaction that
// already exists replaces it, so re-running a migration is safe.
type Store interface {
	// PutTop writes all wallets and transactions of top atomically.
	PutTop(top *zewif.Top, opts PutOptions) error

	// GetTransaction retrieves a transaction by ID.
	GetTransaction(id zewif.TxID) (*zewif.Transaction, error)

	// ListTransactionIDs returns all stored transaction IDs in ascending order.
	ListTransactionIDs() ([]zewif.TxID, error)

	// GetWallets returns all stored wallets ordered by ID, opening sealed
	// seeds with passphrase.
	GetWallets(passphrase string) ([]*zewif.Wallet, error)

	// Close releases the store.
	Close() error
}

// encodeTop prepares every record of top before anything is written, so a
// failure leaves the store untouched.
func encodeTop(top *zewif.Top, opts PutOptions) (map[[16]byte][]byte, map[zewif.TxID][]byte, error) {
	if top == nil {
		return nil, nil, errors.Wrap(ErrNilParam, "top")
	}

	wallets := make(map[[16]byte][]byte, len(top.Wallets))
	for _, w := range top.Wallets {
		if w == nil {
			return nil, nil, errors.Wrap(ErrNilParam, "wallet")
		}
		rec, err := toWalletRecord(w, opts.Passphrase)
		if err != nil {
			return nil, nil, err
		}
		data, err := encodeGob(rec)
		if err != nil {
			return nil, nil, errors.Wrap(err, "store: encode wallet")
		}
		wallets[rec.ID] = data
	}

	txs := make(map[zewif.TxID][]byte, len(top.Transactions))
	for id, tx := range top.Transactions {
		if tx == nil {
			return nil, nil, errors.Wrapf(ErrNilParam, "transaction %s", id)
		}
		data, err := encodeTx(tx)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "store: encode transaction %s", id)
		}
		txs[id] = data
	}
	return wallets, txs, nil
}

func decodeWallet(data []byte, passphrase string) (*zewif.Wallet, error) {
	var rec walletRecord
	if err := decodeGob(data, &rec); err != nil {
		return nil, errors.Wrapf(ErrCorruptRecord, "wallet: %v", err)
	}
	return rec.toWallet(passphrase)
}

// MemStore is an in-memory Store. It encodes records exactly as BoltStore
// does, so sealing behaves the same.
type MemStore struct {
	mu      sync.RWMutex
	wallets map[[16]byte][]byte
	txs     map[zewif.TxID][]byte
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		wallets: make(map[[16]byte][]byte),
		txs:     make(map[zewif.TxID][]byte),
	}
}

// PutTop writes all wallets and transactions of top.
func (s *MemStore) PutTop(top *zewif.Top, opts PutOptions) error {
	wallets, txs, err := encodeTop(top, opts)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, data := range wallets {
		s.wallets[id] = data
	}
	for id, data := range txs {
		s.txs[id] = data
	}
	return nil
}

// GetTransaction retrieves a transaction by ID.
func (s *MemStore) GetTransaction(id zewif.TxID) (*zewif.Transaction, error) {
	s.mu.RLock()
	data, ok := s.txs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrTxNotFound
	}
	return decodeTx(data)
}

// ListTransactionIDs returns all stored transaction IDs in ascending order.
func (s *MemStore) ListTransactionIDs() ([]zewif.TxID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]zewif.TxID, 0, len(s.txs))
	for id := range s.txs {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, zewif.TxID.Compare)
	return ids, nil
}

// GetWallets returns all stored wallets ordered by ID.
func (s *MemStore) GetWallets(passphrase string) ([]*zewif.Wallet, error) {
	s.mu.RLock()
	keys := make([][16]byte, 0, len(s.wallets))
	for k := range s.wallets {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b [16]byte) int { return bytes.Compare(a[:], b[:]) })
	raw := make([][]byte, len(keys))
	for i, k := range keys {
		raw[i] = s.wallets[k]
	}
	s.mu.RUnlock()

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

// Close is a no-op.
func (s *MemStore) Close() error { return nil }
