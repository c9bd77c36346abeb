package zewif

import (
	"slices"

	"github.com/google/uuid"
)

// idNamespace scopes deterministic IDs generated by this package.
var idNamespace = uuid.MustParse("6f1c0c2e-6a55-5b1e-9f38-2f7d2f1b0e5a")

// DeriveID returns a name-based (SHA-1, version 5) UUID for the given
// components, so the same input always maps to the same ID.
func DeriveID(parent uuid.UUID, components ...[]byte) uuid.UUID {
	if parent == uuid.Nil {
		parent = idNamespace
	}
	var data []byte
	for _, c := range components {
		data = append(data, c...)
		data = append(data, 0)
	}
	return uuid.NewSHA1(parent, data)
}

// Account groups addresses and the transactions relevant to them.
type Account struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	RelevantTransactions []TxID    `json:"relevant_transactions,omitempty"`
}

// NewAccount creates an empty account.
func NewAccount(id uuid.UUID, name string) *Account {
	return &Account{ID: id, Name: name}
}

// AddRelevantTransaction records txid once, keeping the list sorted.
func (a *Account) AddRelevantTransaction(txid TxID) {
	i, found := slices.BinarySearchFunc(a.RelevantTransactions, txid, TxID.Compare)
	if found {
		return
	}
	a.RelevantTransactions = slices.Insert(a.RelevantTransactions, i, txid)
}

// Wallet is one wallet in an interchange container.
type Wallet struct {
	ID           uuid.UUID     `json:"id"`
	Network      Network       `json:"network"`
	SeedMaterial *SeedMaterial `json:"seed_material,omitempty"`
	Accounts     []*Account    `json:"accounts,omitempty"`
}

// NewWallet creates an empty wallet.
func NewWallet(id uuid.UUID, network Network) *Wallet {
	return &Wallet{ID: id, Network: network}
}

// SetSeedMaterial attaches the wallet's root secret.
func (w *Wallet) SetSeedMaterial(sm *SeedMaterial) { w.SeedMaterial = sm }

// AddAccount appends an account.
func (w *Wallet) AddAccount(a *Account) { w.Accounts = append(w.Accounts, a) }

// Top is the interchange container: wallets plus the transactions they
// reference.
type Top struct {
	Wallets      []*Wallet             `json:"wallets"`
	Transactions map[TxID]*Transaction `json:"transactions"`
}

// NewTop creates an empty container.
func NewTop() *Top {
	return &Top{Transactions: make(map[TxID]*Transaction)}
}

// AddWallet appends a wallet.
func (t *Top) AddWallet(w *Wallet) { t.Wallets = append(t.Wallets, w) }

// SetTransactions replaces the transaction map.
func (t *Top) SetTransactions(txs map[TxID]*Transaction) { t.Transactions = txs }

// SortedTxIDs returns the container's transaction IDs in ascending order.
func (t *Top) SortedTxIDs() []TxID {
	ids := make([]TxID, 0, len(t.Transactions))
	for id := range t.Transactions {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, TxID.Compare)
	return ids
}
