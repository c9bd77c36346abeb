package zwl

// DiversifierLen is the length of a Sapling diversifier.
const DiversifierLen = 11

// MemoLen is the length of an encoded Sapling memo field.
const MemoLen = 512

// Memo holds the encoded memo bytes of a note. A nil Memo means none.
type Memo []byte

// Rseed is the note's commitment randomness, either rcm (pre-ZIP 212) or
// the rseed it is derived from (post-ZIP 212).
type Rseed struct {
	AfterZIP212 bool
	Bytes       [32]byte
}

// Note is a Sapling note plaintext.
type Note struct {
	Value       uint64
	Diversifier [DiversifierLen]byte
	PkD         [32]byte
	Rseed       Rseed

	// Cmu is the note commitment, derived by the decoder from the fields
	// above.
	Cmu [32]byte
}

// Commitment returns the note commitment.
func (n *Note) Commitment() [32]byte {
	return n.Cmu
}

// WitnessCache holds the incremental witnesses kept for a note.
type WitnessCache struct {
	// TopHeight is the block height of the most recent witness.
	TopHeight uint64
	Witnesses [][]byte
}

// SaplingNoteData is a Sapling note received by the wallet.
type SaplingNoteData struct {
	Diversifier [DiversifierLen]byte
	Note        Note
	Witnesses   WitnessCache
	Nullifier   Nullifier

	// Spent is not authoritative; spend status is decided by the spending
	// transaction's nullifier list.
	Spent *TxID

	Memo            Memo
	IsChange        bool
	HaveSpendingKey bool
}
