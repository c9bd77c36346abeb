package zewif

import "github.com/cockroachdb/errors"

// Network identifies a Zcash network.
type Network int

const (
	Main Network = iota
	Test
	Regtest
)

// String returns the canonical name.
func (n Network) String() string {
	switch n {
	case Main:
		return "main"
	case Test:
		return "test"
	case Regtest:
		return "regtest"
	default:
		return "unknown"
	}
}

// ParseNetwork parses a canonical network name as returned by String.
func ParseNetwork(s string) (Network, error) {
	switch s {
	case "main":
		return Main, nil
	case "test":
		return Test, nil
	case "regtest":
		return Regtest, nil
	}
	return 0, errors.Wrapf(ErrUnknownNetwork, "%q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (n Network) MarshalText() ([]byte, error) { return []byte(n.String()), nil }
