package zewif

import (
	"encoding/hex"
	"io"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *U256) UnmarshalText(text []byte) error {
	v, err := U256FromHex(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Blob32) UnmarshalText(text []byte) error {
	raw, err := hex.DecodeString(string(text))
	if err != nil {
		return errors.Wrapf(ErrInvalidHex, "blob32: %v", err)
	}
	v, err := Blob32FromSlice(raw)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields nil.
func (d *Data) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = nil
		return nil
	}
	raw, err := hex.DecodeString(string(text))
	if err != nil {
		return errors.Wrapf(ErrInvalidHex, "data: %v", err)
	}
	*d = raw
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Script) UnmarshalText(text []byte) error {
	return (*Data)(s).UnmarshalText(text)
}

// UnmarshalText parses the byte-reversed hex form produced by String.
func (id *TxID) UnmarshalText(text []byte) error {
	if len(text) != 2*len(id) {
		return errors.Wrapf(ErrInvalidLength, "txid needs %d hex characters, got %d", 2*len(id), len(text))
	}
	h, err := chainhash.NewHashFromHex(string(text))
	if err != nil {
		return errors.Wrapf(ErrInvalidHex, "txid: %v", err)
	}
	*id = TxID(*h)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Network) UnmarshalText(text []byte) error {
	v, err := ParseNetwork(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *TransactionStatus) UnmarshalText(text []byte) error {
	for _, v := range []TransactionStatus{Pending, Confirmed, Failed} {
		if v.String() == string(text) {
			*s = v
			return nil
		}
	}
	return errors.Newf("zewif: invalid transaction status %q", text)
}

// UnmarshalJSON rejects amounts outside [0, MaxMoney].
func (a *Amount) UnmarshalJSON(b []byte) error {
	var zats int64
	if err := json.Unmarshal(b, &zats); err != nil {
		return errors.Wrapf(ErrAmountOutOfRange, "%s: %v", b, err)
	}
	if zats < 0 {
		return errors.Wrapf(ErrAmountOutOfRange, "%d zats is negative", zats)
	}
	v, err := AmountFromUint64(uint64(zats))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// DecodeJSON reads a container written by EncodeJSON.
func DecodeJSON(r io.Reader) (*Top, error) {
	var top Top
	if err := json.NewDecoder(r).Decode(&top); err != nil {
		return nil, errors.Wrap(err, "zewif: decode json")
	}
	if top.Transactions == nil {
		top.Transactions = make(map[TxID]*Transaction)
	}
	return &top, nil
}
