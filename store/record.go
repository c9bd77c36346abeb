package store

import (
	"bytes"
	"encoding/gob"

	"github.com/bitfsorg/zwl-zewif-go/zewif"
	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
)

// walletRecord is the stored form of a wallet. The seed secret is either
// plain or sealed, never both.
type walletRecord struct {
	ID       [16]byte
	Network  string
	SeedKind string
	Secret   []byte
	Sealed   bool
	Accounts []accountRecord
}

type accountRecord struct {
	ID    [16]byte
	Name  string
	TxIDs [][32]byte
}

func toWalletRecord(w *zewif.Wallet, passphrase string) (*walletRecord, error) {
	rec := &walletRecord{ID: w.ID, Network: w.Network.String()}

	if sm := w.SeedMaterial; sm != nil {
		rec.SeedKind = string(sm.Kind)
		switch sm.Kind {
		case zewif.SeedPreBIP39:
			if sm.Seed != nil {
				rec.Secret = sm.Seed.Bytes()
			}
		case zewif.SeedBIP39Mnemonic:
			rec.Secret = []byte(sm.Mnemonic)
		}
		if passphrase != "" && len(rec.Secret) > 0 {
			sealed, err := Seal(rec.Secret, passphrase)
			if err != nil {
				return nil, err
			}
			rec.Secret, rec.Sealed = sealed, true
		}
	}

	for _, a := range w.Accounts {
		ar := accountRecord{ID: a.ID, Name: a.Name}
		for _, id := range a.RelevantTransactions {
			ar.TxIDs = append(ar.TxIDs, id)
		}
		rec.Accounts = append(rec.Accounts, ar)
	}
	return rec, nil
}

func (rec *walletRecord) toWallet(passphrase string) (*zewif.Wallet, error) {
	network, err := zewif.ParseNetwork(rec.Network)
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptRecord, "wallet network: %v", err)
	}
	w := zewif.NewWallet(rec.ID, network)

	if rec.SeedKind != "" {
		secret := rec.Secret
		if rec.Sealed {
			if passphrase == "" {
				return nil, ErrPassphraseRequired
			}
			if secret, err = Open(rec.Secret, passphrase); err != nil {
				return nil, err
			}
		}
		sm, err := seedMaterial(zewif.SeedMaterialKind(rec.SeedKind), secret)
		if err != nil {
			return nil, err
		}
		w.SetSeedMaterial(sm)
	}

	for _, ar := range rec.Accounts {
		a := zewif.NewAccount(ar.ID, ar.Name)
		for _, id := range ar.TxIDs {
			a.AddRelevantTransaction(id)
		}
		w.AddAccount(a)
	}
	return w, nil
}

func seedMaterial(kind zewif.SeedMaterialKind, secret []byte) (*zewif.SeedMaterial, error) {
	switch kind {
	case zewif.SeedPreBIP39:
		blob, err := zewif.Blob32FromSlice(secret)
		if err != nil {
			return nil, errors.Wrapf(ErrCorruptRecord, "seed: %v", err)
		}
		return zewif.NewPreBIP39Seed(blob), nil
	case zewif.SeedBIP39Mnemonic:
		sm, err := zewif.NewBIP39Mnemonic(string(secret))
		if err != nil {
			return nil, errors.Wrapf(ErrCorruptRecord, "mnemonic: %v", err)
		}
		return sm, nil
	}
	return nil, errors.Wrapf(ErrCorruptRecord, "unknown seed kind %q", kind)
}

func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// Transactions are stored as JSON: gob drops zero values behind pointers,
// which would turn a Pending status or a zero amount into "unset".
func encodeTx(tx *zewif.Transaction) ([]byte, error) {
	return json.Marshal(tx)
}

func decodeTx(data []byte) (*zewif.Transaction, error) {
	var tx zewif.Transaction
	if err := json.Unmarshal(data, &tx); err != nil {
		return nil, errors.Wrapf(ErrCorruptRecord, "transaction: %v", err)
	}
	return &tx, nil
}
