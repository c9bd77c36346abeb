package migrate

import (
	"github.com/bitfsorg/zwl-zewif-go/zewif"
	"github.com/bitfsorg/zwl-zewif-go/zwl"
	"github.com/cockroachdb/errors"
)

// ConvertTransaction migrates one wallet transaction. Failures are returned
// as *TransactionError naming txid.
func (m *Migrator) ConvertTransaction(txid zwl.TxID, tx *zwl.WalletTx) (*zewif.Transaction, error) {
	return m.convertTransaction(txid, tx, nil)
}

func (m *Migrator) convertTransaction(txid zwl.TxID, tx *zwl.WalletTx, report *Report) (*zewif.Transaction, error) {
	if tx == nil {
		return nil, &TransactionError{TxID: txid, Err: ErrNilParam}
	}

	ztx := zewif.NewTransaction(zewif.TxID(txid))
	report.omit(CapRawTransaction, 1)

	if tx.Unconfirmed {
		ztx.SetStatus(zewif.Pending)
	} else {
		ztx.SetStatus(zewif.Confirmed)
	}

	if tx.Datetime > 0 {
		ztx.SetTimestamp(zewif.SecondsSinceEpoch(tx.Datetime))
	}

	skipped := 0
	for i := range tx.Utxos {
		in, err := UtxoAsInput(&tx.Utxos[i])
		if err != nil {
			if errors.Is(err, ErrUnrepresentableInput) {
				skipped++
				continue
			}
			return nil, &TransactionError{TxID: txid, Err: err}
		}
		ztx.AddInput(in)
	}

	for i := range tx.Utxos {
		u := &tx.Utxos[i]
		out, err := UtxoAsOutput(u)
		if err != nil {
			return nil, &TransactionError{TxID: txid, Err: errors.Wrapf(err, "transparent output %d", i)}
		}
		m.log.Debug().
			Str("txid", txid.String()).
			Int("index", i).
			Str("role", ClassifyUtxo(u).String()).
			Str("class", string(out.ScriptPubKey.Class())).
			Int64("value", out.Value.Zats()).
			Msg("transparent output")
		ztx.AddOutput(out)
	}

	sapling, err := ReconcileSaplingNotes(tx.SNotes, tx.SSpentNullifiers)
	if err != nil {
		return nil, &TransactionError{TxID: txid, Err: err}
	}
	for _, d := range sapling.Spends {
		ztx.AddSaplingSpend(d)
	}
	for _, d := range sapling.Outputs {
		ztx.AddSaplingOutput(d)
	}
	if sapling.UnsetAnchors > 0 {
		m.log.Warn().
			Str("txid", txid.String()).
			Int("spends", sapling.UnsetAnchors).
			Msg("witness height exceeds block height range; anchor height left unset")
	}

	actions, err := m.orchard.ConvertOrchard(txid, tx)
	switch {
	case errors.Is(err, ErrNotSupported):
		report.omit(CapOrchardActions, 1)
	case err != nil:
		return nil, &TransactionError{TxID: txid, Err: err}
	default:
		ztx.OrchardActions = actions
	}

	joinSplits, err := m.sprout.ConvertSprout(txid, tx)
	switch {
	case errors.Is(err, ErrNotSupported):
		report.omit(CapSproutJoinSplits, 1)
	case err != nil:
		return nil, &TransactionError{TxID: txid, Err: err}
	default:
		ztx.SproutJoinSplits = joinSplits
	}

	if report != nil {
		report.TransparentOutputs += len(ztx.Outputs)
		report.SkippedTransparentInputs += skipped
		report.SaplingSpends += len(sapling.Spends)
		report.SaplingOutputs += len(sapling.Outputs)
	}
	report.omit(CapTransparentInputs, skipped)
	report.omit(CapSpendIndex, len(sapling.Spends))
	report.omit(CapSpendProof, len(sapling.Spends))
	report.omit(CapAnchorHeight, sapling.UnsetAnchors)
	for _, c := range []Capability{CapOutputIndex, CapEphemeralKey, CapEncCiphertext, CapTreePosition, CapWitness} {
		report.omit(c, len(sapling.Outputs))
	}

	m.log.Debug().
		Str("txid", txid.String()).
		Stringer("status", ztx.Status).
		Int("outputs", len(ztx.Outputs)).
		Int("sapling_spends", len(ztx.SaplingSpends)).
		Int("sapling_outputs", len(ztx.SaplingOutputs)).
		Msg("transaction migrated")

	return ztx, nil
}
