package zwl

// WalletTx is a transaction as recorded in the wallet's history.
type WalletTx struct {
	TxID        TxID
	BlockHeight uint32
	Unconfirmed bool

	// Datetime is seconds since the Unix epoch; 0 means unknown.
	Datetime uint64

	// Utxos are the transparent outputs this wallet received in the tx.
	Utxos []Utxo

	SNotes []SaplingNoteData

	// SSpentNullifiers lists nullifiers this transaction revealed.
	SSpentNullifiers []Nullifier

	TotalTransparentValueSpent uint64
	TotalSaplingValueSpent     uint64
}

// UnconfirmedSpend marks an output spent by a not-yet-mined transaction.
type UnconfirmedSpend struct {
	TxID   TxID
	Height uint32
}

// Utxo is a transparent output tracked by the wallet.
//
// Only the value/script pair and bookkeeping about who spent it are kept.
type Utxo struct {
	Address     string
	TxID        TxID
	OutputIndex uint64
	Script      []byte
	Value       uint64
	Height      int32

	// Spent is the spending transaction, or nil if no spend is known.
	Spent            *TxID
	SpentAtHeight    *int32
	UnconfirmedSpent *UnconfirmedSpend
}

// IsSpent reports whether the wallet knows of a transaction spending u.
func (u *Utxo) IsSpent() bool {
	return u.Spent != nil
}
