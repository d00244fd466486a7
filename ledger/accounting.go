package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/escrowhub/escrowhub.go/common"
	"github.com/escrowhub/escrowhub.go/db/models"
	"github.com/uptrace/bun"
)

// Accounting is the built-in double-entry ledger. Funds enter through an
// identity's incoming account (which is allowed to go negative, it mirrors
// the outside world) and move between current and escrow accounts from there.
type Accounting struct{}

func NewAccounting() *Accounting {
	return &Accounting{}
}

func (l *Accounting) AccountFor(ctx context.Context, db bun.IDB, identity string, accountType string) (models.Account, error) {
	account := models.Account{}
	err := db.NewSelect().Model(&account).Where("identity = ? AND type = ?", identity, accountType).Limit(1).Scan(ctx)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return account, err
	}
	account = models.Account{Identity: identity, Type: accountType}
	_, err = db.NewInsert().Model(&account).Exec(ctx)
	return account, err
}

func (l *Accounting) Balance(ctx context.Context, db bun.IDB, identity string, accountType string) (int64, error) {
	account, err := l.AccountFor(ctx, db, identity, accountType)
	if err != nil {
		return 0, err
	}
	return l.accountBalance(ctx, db, account.ID)
}

func (l *Accounting) accountBalance(ctx context.Context, db bun.IDB, accountID int64) (int64, error) {
	var credits, debits int64
	err := db.NewSelect().Model((*models.TransactionEntry)(nil)).
		ColumnExpr("coalesce(sum(amount), 0)").
		Where("credit_account_id = ?", accountID).
		Scan(ctx, &credits)
	if err != nil {
		return 0, err
	}
	err = db.NewSelect().Model((*models.TransactionEntry)(nil)).
		ColumnExpr("coalesce(sum(amount), 0)").
		Where("debit_account_id = ?", accountID).
		Scan(ctx, &debits)
	if err != nil {
		return 0, err
	}
	return credits - debits, nil
}

func (l *Accounting) Transfer(ctx context.Context, db bun.IDB, args TransferArgs) error {
	if args.Amount <= 0 {
		return fmt.Errorf("ledger: invalid transfer amount %d", args.Amount)
	}
	debitAccount, err := l.AccountFor(ctx, db, args.FromIdentity, args.FromType)
	if err != nil {
		return err
	}
	creditAccount, err := l.AccountFor(ctx, db, args.ToIdentity, args.ToType)
	if err != nil {
		return err
	}

	// incoming accounts mirror external funds and may go negative
	if args.FromType != common.AccountTypeIncoming {
		balance, err := l.accountBalance(ctx, db, debitAccount.ID)
		if err != nil {
			return err
		}
		if balance < args.Amount {
			return ErrInsufficientFunds
		}
	}

	entry := models.TransactionEntry{
		InvoiceID:       args.InvoiceID,
		CreditAccountID: creditAccount.ID,
		DebitAccountID:  debitAccount.ID,
		Amount:          args.Amount,
		EntryType:       args.EntryType,
	}
	_, err = db.NewInsert().Model(&entry).Exec(ctx)
	return err
}

// Deposit funds an identity's current account. This is how value enters the
// ledger, the escrow engine itself only moves funds that are already here.
func (l *Accounting) Deposit(ctx context.Context, db bun.IDB, identity string, amount int64) error {
	return l.Transfer(ctx, db, TransferArgs{
		FromIdentity: identity,
		FromType:     common.AccountTypeIncoming,
		ToIdentity:   identity,
		ToType:       common.AccountTypeCurrent,
		Amount:       amount,
		EntryType:    common.EntryTypeDeposit,
	})
}
