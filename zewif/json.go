package zewif

import (
	"io"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
)

// EncodeJSON writes top as indented JSON. Map keys are emitted in sorted
// order, so equal containers always encode to identical bytes.
func EncodeJSON(w io.Writer, top *Top) error {
	if top == nil {
		return errors.New("zewif: nil container")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(top); err != nil {
		return errors.Wrap(err, "zewif: encode json")
	}
	return nil
}

// MarshalJSON returns the indented JSON encoding of top.
func MarshalJSON(top *Top) ([]byte, error) {
	if top == nil {
		return nil, errors.New("zewif: nil container")
	}
	b, err := json.MarshalIndent(top, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "zewif: encode json")
	}
	return b, nil
}
