package zewif

// OrchardActionDescription describes an Orchard action.
type OrchardActionDescription struct {
	ActionIndex  *uint32 `json:"action_index,omitempty"`
	Nullifier    *U256   `json:"nullifier,omitempty"`
	Commitment   *U256   `json:"commitment,omitempty"`
	EphemeralKey *U256   `json:"ephemeral_key,omitempty"`
	Memo         *Data   `json:"memo,omitempty"`
}

// JoinSplitDescription describes a Sprout JoinSplit.
type JoinSplitDescription struct {
	Anchor      *U256   `json:"anchor,omitempty"`
	Nullifiers  []U256  `json:"nullifiers,omitempty"`
	Commitments []U256  `json:"commitments,omitempty"`
	VPubOld     *Amount `json:"vpub_old,omitempty"`
	VPubNew     *Amount `json:"vpub_new,omitempty"`
}
