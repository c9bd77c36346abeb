// Package migrate converts a ZecWallet Lite wallet into the Zcash Wallet
// Interchange Format.
//
// The conversion is lossy by construction. ZecWallet Lite keeps transparent
// activity as value/script pairs and Sapling notes as plaintexts, so inputs,
// proofs, ciphertexts, indices and witnesses cannot be rebuilt. Those fields
// are left unset and counted in the Report; nothing is synthesized.
package migrate

import (
	"context"
	"encoding/binary"

	"github.com/bitfsorg/zwl-zewif-go/zewif"
	"github.com/bitfsorg/zwl-zewif-go/zwl"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// chainNetworks maps ZecWallet Lite chain names to networks.
var chainNetworks = map[string]zewif.Network{
	"zs":      zewif.Main,
	"mainnet": zewif.Main,
	"main":    zewif.Main,
	"testnet": zewif.Test,
	"regtest": zewif.Regtest,
}

// NetworkForChain maps a wallet chain name to its network. Unknown names
// fail with an *UnsupportedChainError.
func NetworkForChain(chainName string) (zewif.Network, error) {
	n, ok := chainNetworks[chainName]
	if !ok {
		return 0, &UnsupportedChainError{Name: chainName}
	}
	return n, nil
}

// Migrator converts wallets. It holds no per-run state and may be shared
// between goroutines.
type Migrator struct {
	log      zerolog.Logger
	accounts AccountAssigner
	orchard  OrchardConverter
	sprout   SproutConverter
}

// Option configures a Migrator.
type Option func(*Migrator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Migrator) { m.log = log }
}

// WithAccountAssigner replaces the single-account assignment.
func WithAccountAssigner(a AccountAssigner) Option {
	return func(m *Migrator) {
		if a != nil {
			m.accounts = a
		}
	}
}

// WithAccountName names the single default account.
func WithAccountName(name string) Option {
	return WithAccountAssigner(SingleAccount{Name: name})
}

// WithOrchardConverter installs an Orchard conversion.
func WithOrchardConverter(c OrchardConverter) Option {
	return func(m *Migrator) {
		if c != nil {
			m.orchard = c
		}
	}
}

// WithSproutConverter installs a Sprout conversion.
func WithSproutConverter(c SproutConverter) Option {
	return func(m *Migrator) {
		if c != nil {
			m.sprout = c
		}
	}
}

// New creates a Migrator.
func New(opts ...Option) *Migrator {
	m := &Migrator{
		log:      zerolog.Nop(),
		accounts: SingleAccount{Name: DefaultAccountName},
		orchard:  NoOrchard{},
		sprout:   NoSprout{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ToZewif migrates w with a default Migrator.
func ToZewif(w *zwl.Wallet) (*zewif.Top, error) {
	return New().Migrate(context.Background(), w)
}

// Migrate converts w into an interchange container holding one wallet and
// all of w's transactions. The first failing transaction aborts the run and
// no container is returned.
func (m *Migrator) Migrate(ctx context.Context, w *zwl.Wallet) (*zewif.Top, error) {
	top, _, err := m.MigrateWithReport(ctx, w)
	return top, err
}

// MigrateWithReport is Migrate, additionally returning what was converted
// and what had to be omitted.
func (m *Migrator) MigrateWithReport(ctx context.Context, w *zwl.Wallet) (*zewif.Top, *Report, error) {
	if w == nil {
		return nil, nil, ErrNilParam
	}

	network, err := NetworkForChain(w.ChainName)
	if err != nil {
		return nil, nil, err
	}

	seed, err := ConvertSeedMaterial(w.Seed)
	if err != nil {
		return nil, nil, err
	}

	report := newReport()
	report.Network = network

	txids := w.SortedTxIDs()
	wallet := zewif.NewWallet(walletID(network, w, txids), network)
	if seed != nil {
		wallet.SetSeedMaterial(seed)
	}

	m.log.Info().
		Stringer("network", network).
		Int("transactions", len(txids)).
		Bool("seed", seed != nil).
		Msg("migrating wallet")

	migrated := make(map[zewif.TxID]*zewif.Transaction, len(txids))
	relevant := make([]zewif.TxID, 0, len(txids))
	for _, txid := range txids {
		if err := ctx.Err(); err != nil {
			return nil, nil, errors.Wrap(err, "migrate: cancelled")
		}
		ztx, err := m.convertTransaction(txid, w.Transactions[txid], report)
		if err != nil {
			return nil, nil, err
		}
		migrated[ztx.ID] = ztx
		relevant = append(relevant, ztx.ID)
	}
	report.Transactions = len(migrated)

	accounts, err := m.accounts.AssignAccounts(wallet, relevant)
	if err != nil {
		return nil, nil, errors.Wrap(err, "migrate: assign accounts")
	}
	for _, a := range accounts {
		wallet.AddAccount(a)
	}
	if _, single := m.accounts.(SingleAccount); single {
		report.omit(CapMultiAccount, 1)
	}

	top := zewif.NewTop()
	top.AddWallet(wallet)
	top.SetTransactions(migrated)

	m.log.Info().
		Int("transactions", report.Transactions).
		Int("transparent_outputs", report.TransparentOutputs).
		Int("skipped_transparent_inputs", report.SkippedTransparentInputs).
		Int("sapling_spends", report.SaplingSpends).
		Int("sapling_outputs", report.SaplingOutputs).
		Msg("wallet migrated")

	return top, report, nil
}

// walletID derives a stable wallet ID from public wallet facts, so that
// migrating the same wallet twice yields the same ID. The seed is not used.
func walletID(network zewif.Network, w *zwl.Wallet, txids []zwl.TxID) uuid.UUID {
	var birthday [8]byte
	binary.BigEndian.PutUint64(birthday[:], w.Birthday)

	parts := [][]byte{[]byte("zwl"), []byte(network.String()), birthday[:]}
	for _, id := range txids {
		parts = append(parts, id.Bytes())
	}
	return zewif.DeriveID(uuid.Nil, parts...)
}
