package migrate

import (
	"github.com/bitfsorg/zwl-zewif-go/zewif"
)

// DefaultAccountName is the name given to the single migrated account.
const DefaultAccountName = "Default Account"

// AccountAssigner decides which accounts a migrated wallet has and which
// transactions are relevant to each.
type AccountAssigner interface {
	AssignAccounts(wallet *zewif.Wallet, txids []zewif.TxID) ([]*zewif.Account, error)
}

// SingleAccount places every transaction in one account. It is the only
// assignment mode this module supports.
type SingleAccount struct {
	Name string
}

// AssignAccounts returns one account, identified deterministically from the
// wallet ID, holding all txids.
func (a SingleAccount) AssignAccounts(wallet *zewif.Wallet, txids []zewif.TxID) ([]*zewif.Account, error) {
	if wallet == nil {
		return nil, ErrNilParam
	}
	name := a.Name
	if name == "" {
		name = DefaultAccountName
	}
	acct := zewif.NewAccount(zewif.DeriveID(wallet.ID, []byte("account"), []byte{0}), name)
	for _, id := range txids {
		acct.AddRelevantTransaction(id)
	}
	return []*zewif.Account{acct}, nil
}
