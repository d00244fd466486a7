package service

import (
	"context"
	"fmt"

	"github.com/escrowhub/escrowhub.go/common"
)

func (svc *EscrowService) CurrentBalance(ctx context.Context, identity string) (int64, error) {
	return svc.Ledger.Balance(ctx, svc.DB, identity, common.AccountTypeCurrent)
}

// Deposit funds an identity's current account. Exposed on the admin surface,
// this is the only way value enters the ledger.
func (svc *EscrowService) Deposit(ctx context.Context, identity string, amount int64) error {
	if identity == "" || amount <= 0 {
		return fmt.Errorf("%w: deposit needs an identity and a positive amount", ErrInvalidInvoice)
	}
	return svc.Ledger.Deposit(ctx, svc.DB, identity, amount)
}
