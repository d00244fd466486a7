package ledger

import (
	"context"
	"errors"

	"github.com/uptrace/bun"
)

var ErrInsufficientFunds = errors.New("ledger: insufficient funds")

type TransferArgs struct {
	FromIdentity string
	FromType     string
	ToIdentity   string
	ToType       string
	Amount       int64
	InvoiceID    int64
	EntryType    string
}

// Ledger is the value-movement collaborator. A Transfer either fully succeeds
// or fully fails; implementations that share the engine's database may join
// its transaction through the passed IDB, external implementations ignore it.
type Ledger interface {
	Transfer(ctx context.Context, db bun.IDB, args TransferArgs) error
	Balance(ctx context.Context, db bun.IDB, identity string, accountType string) (int64, error)
	Deposit(ctx context.Context, db bun.IDB, identity string, amount int64) error
}
