package zewif

// SaplingSpendDescription describes a Sapling note consumed by a transaction.
type SaplingSpendDescription struct {
	SpendIndex   *uint32      `json:"spend_index,omitempty"`
	Value        *Amount      `json:"value,omitempty"`
	AnchorHeight *BlockHeight `json:"anchor_height,omitempty"`
	Nullifier    *U256        `json:"nullifier,omitempty"`
	ZKProof      *Data        `json:"zkproof,omitempty"`
}

// SaplingOutputDescription describes a Sapling note created by a transaction.
type SaplingOutputDescription struct {
	OutputIndex   *uint32 `json:"output_index,omitempty"`
	Commitment    *U256   `json:"commitment,omitempty"`
	EphemeralKey  *U256   `json:"ephemeral_key,omitempty"`
	EncCiphertext *Data   `json:"enc_ciphertext,omitempty"`

	// Memo is the raw encoded memo field; nil means no memo.
	Memo *Data `json:"memo,omitempty"`

	NoteCommitmentTreePosition *uint32 `json:"note_commitment_tree_position,omitempty"`
	Witness                    *Data   `json:"witness,omitempty"`
}
