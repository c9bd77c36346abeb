// Package zwl models the in-memory state of a ZecWallet Lite wallet as
// produced by its file decoder.
//
// The types here are read-only inputs to a migration: they carry only what
// the wallet file retains. Notably a transparent Utxo never carries an
// outpoint being spent, an unlocking script or a sequence number, and notes
// never carry ciphertexts, proofs or output indices.
package zwl

import "slices"

// Wallet is a decoded ZecWallet Lite wallet.
type Wallet struct {
	Version   uint64
	ChainName string // "main", "testnet", "regtest" and aliases
	Birthday  uint64

	// Seed is the decrypted 32-byte HD seed supplied by the key material
	// provider. Migration requires exactly 32 bytes.
	Seed []byte

	Transactions map[TxID]*WalletTx
}

// NewWallet creates an empty wallet for the given chain.
func NewWallet(chainName string, seed []byte) *Wallet {
	return &Wallet{
		ChainName:    chainName,
		Seed:         seed,
		Transactions: make(map[TxID]*WalletTx),
	}
}

// AddTransaction records tx under its own TxID, replacing any previous entry.
func (w *Wallet) AddTransaction(tx *WalletTx) {
	if w.Transactions == nil {
		w.Transactions = make(map[TxID]*WalletTx)
	}
	w.Transactions[tx.TxID] = tx
}

// SortedTxIDs returns the wallet's transaction IDs in ascending byte order.
func (w *Wallet) SortedTxIDs() []TxID {
	ids := make([]TxID, 0, len(w.Transactions))
	for id := range w.Transactions {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, TxID.Compare)
	return ids
}
