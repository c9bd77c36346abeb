package zewif

import "github.com/cockroachdb/errors"

// TransactionStatus is the confirmation state of a transaction.
type TransactionStatus int

const (
	Pending TransactionStatus = iota
	Confirmed
	Failed
)

// String returns the status name.
func (s TransactionStatus) String() string {
	switch s {
	case Pending:
		return "pending"
	case Confirmed:
		return "confirmed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s TransactionStatus) MarshalText() ([]byte, error) {
	if s < Pending || s > Failed {
		return nil, errors.Newf("zewif: invalid transaction status %d", int(s))
	}
	return []byte(s.String()), nil
}

// OutPoint references an output of a previous transaction.
type OutPoint struct {
	TxID  TxID   `json:"txid"`
	Index uint32 `json:"index"`
}

// TxIn is a transparent input.
type TxIn struct {
	PreviousOutput OutPoint `json:"previous_output"`
	ScriptSig      Script   `json:"script_sig"`
	Sequence       uint32   `json:"sequence"`
}

// TxOut is a transparent output.
type TxOut struct {
	Value        Amount `json:"value"`
	ScriptPubKey Script `json:"script_pubkey"`
}

// NewTxOut builds a transparent output.
func NewTxOut(value Amount, scriptPubKey Script) TxOut {
	return TxOut{Value: value, ScriptPubKey: scriptPubKey}
}

// Transaction is a wallet transaction in interchange form.
//
// Optional fields stay nil until their setter is called. Optional byte
// strings are pointers: Data encodes as text, and a nil slice would still
// be written as "".
type Transaction struct {
	ID        TxID               `json:"txid"`
	Status    *TransactionStatus `json:"status,omitempty"`
	Timestamp *SecondsSinceEpoch `json:"timestamp,omitempty"`
	RawData   *Data              `json:"raw,omitempty"`

	Inputs  []TxIn  `json:"inputs,omitempty"`
	Outputs []TxOut `json:"outputs,omitempty"`

	SaplingSpends    []SaplingSpendDescription  `json:"sapling_spends,omitempty"`
	SaplingOutputs   []SaplingOutputDescription `json:"sapling_outputs,omitempty"`
	OrchardActions   []OrchardActionDescription `json:"orchard_actions,omitempty"`
	SproutJoinSplits []JoinSplitDescription     `json:"sprout_joinsplits,omitempty"`
}

// NewTransaction returns an empty transaction with the given ID.
func NewTransaction(id TxID) *Transaction {
	return &Transaction{ID: id}
}

// SetStatus sets the confirmation status.
func (t *Transaction) SetStatus(s TransactionStatus) { t.Status = &s }

// SetTimestamp sets the transaction time.
func (t *Transaction) SetTimestamp(ts SecondsSinceEpoch) { t.Timestamp = &ts }

// AddInput appends a transparent input.
func (t *Transaction) AddInput(in TxIn) { t.Inputs = append(t.Inputs, in) }

// AddOutput appends a transparent output.
func (t *Transaction) AddOutput(out TxOut) { t.Outputs = append(t.Outputs, out) }

// AddSaplingSpend appends a Sapling spend description.
func (t *Transaction) AddSaplingSpend(d SaplingSpendDescription) {
	t.SaplingSpends = append(t.SaplingSpends, d)
}

// AddSaplingOutput appends a Sapling output description.
func (t *Transaction) AddSaplingOutput(d SaplingOutputDescription) {
	t.SaplingOutputs = append(t.SaplingOutputs, d)
}
