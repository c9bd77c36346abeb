package zewif

import (
	"encoding/hex"

	"github.com/bsv-blockchain/go-sdk/script"
)

// ScriptClass is the standard form of a transparent locking script.
type ScriptClass string

const (
	ScriptP2PKH       ScriptClass = "p2pkh"
	ScriptP2SH        ScriptClass = "p2sh"
	ScriptNullData    ScriptClass = "nulldata"
	ScriptNonStandard ScriptClass = "nonstandard"
)

// Script is an opaque transparent script.
type Script Data

// ScriptFromData wraps d as a script.
func ScriptFromData(d Data) Script { return Script(d) }

// Bytes returns the raw script bytes.
func (s Script) Bytes() []byte { return []byte(s) }

// Class recognizes the standard script templates Zcash shares with Bitcoin.
func (s Script) Class() ScriptClass {
	sc := script.NewFromBytes(s)
	switch {
	case sc.IsP2PKH():
		return ScriptP2PKH
	case sc.IsP2SH():
		return ScriptP2SH
	case sc.IsData():
		return ScriptNullData
	default:
		return ScriptNonStandard
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Script) MarshalText() ([]byte, error) { return []byte(hex.EncodeToString(s)), nil }
