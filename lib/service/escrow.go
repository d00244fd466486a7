package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/escrowhub/escrowhub.go/common"
	"github.com/escrowhub/escrowhub.go/db/models"
	"github.com/escrowhub/escrowhub.go/ledger"
	"github.com/escrowhub/escrowhub.go/lib/events"
	"github.com/uptrace/bun"
)

// FeeSplit computes the platform cut for a settled invoice. The fee rounds
// down, fee + toEmitter always equals amount.
func FeeSplit(amount, feePercent int64) (fee, toEmitter int64) {
	fee = amount * feePercent / 100
	return fee, amount - fee
}

// PayInvoice moves the exact invoice amount from the designated client into
// escrow custody. Partial or excess payments are rejected outright.
func (svc *EscrowService) PayInvoice(ctx context.Context, callerID string, invoiceID, paidAmount int64) (*models.Invoice, error) {
	invoice, err := svc.FindInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if callerID != invoice.ClientID {
		return nil, ErrNotAuthorized
	}
	if invoice.Status != common.InvoiceStatusPending {
		return nil, ErrStateConflict
	}
	if paidAmount != invoice.Amount {
		return nil, ErrAmountMismatch
	}

	invoice.Status = common.InvoiceStatusPaid
	invoice.PaymentTimestamp = bun.NullTime{Time: time.Now()}

	err = svc.transact(ctx, invoice, common.InvoiceStatusPending, func(tx bun.Tx) error {
		return svc.Ledger.Transfer(ctx, tx, ledger.TransferArgs{
			FromIdentity: invoice.ClientID,
			FromType:     common.AccountTypeCurrent,
			ToIdentity:   common.EscrowIdentity,
			ToType:       common.AccountTypeEscrow,
			Amount:       invoice.Amount,
			InvoiceID:    invoice.ID,
			EntryType:    common.EntryTypeEscrowIn,
		})
	})
	if err != nil {
		return nil, err
	}

	svc.publishEvent(events.Event{
		Type:      common.EventPaymentMade,
		InvoiceID: invoice.ID,
		Amount:    invoice.Amount,
	})
	return invoice, nil
}

// ConfirmPayment settles a paid invoice on the client's say-so: the platform
// fee goes to the treasury, the remainder to the emitter.
func (svc *EscrowService) ConfirmPayment(ctx context.Context, callerID string, invoiceID int64) (*models.Invoice, error) {
	invoice, err := svc.FindInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if callerID != invoice.ClientID {
		return nil, ErrNotAuthorized
	}
	if invoice.Status != common.InvoiceStatusPaid {
		return nil, ErrStateConflict
	}

	fee, toEmitter, err := svc.settle(ctx, invoice, common.InvoiceStatusValidated)
	if err != nil {
		return nil, err
	}

	svc.publishEvent(events.Event{
		Type:            common.EventPaymentConfirmed,
		InvoiceID:       invoice.ID,
		AmountToEmitter: toEmitter,
		Fee:             fee,
	})
	return invoice, nil
}

// AutoReleasePayment settles a paid invoice once its deadline has elapsed.
// Any caller may trigger it, the deadline is the only guard.
func (svc *EscrowService) AutoReleasePayment(ctx context.Context, invoiceID int64) (*models.Invoice, error) {
	invoice, err := svc.FindInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != common.InvoiceStatusPaid {
		return nil, ErrStateConflict
	}
	setting, err := svc.Settings(ctx)
	if err != nil {
		return nil, err
	}
	deadline := invoice.PaymentTimestamp.Time.Add(setting.PaymentTimeout())
	if time.Now().Before(deadline) {
		return nil, ErrTimeoutNotReached
	}

	fee, toEmitter, err := svc.settle(ctx, invoice, common.InvoiceStatusReleased)
	if err != nil {
		return nil, err
	}

	svc.publishEvent(events.Event{
		Type:            common.EventPaymentReleased,
		InvoiceID:       invoice.ID,
		AmountToEmitter: toEmitter,
		Fee:             fee,
	})
	return invoice, nil
}

// DisputeByClient and DisputeByEmitter freeze a paid invoice until the
// arbitrator resolves it. No funds move.
func (svc *EscrowService) DisputeByClient(ctx context.Context, callerID string, invoiceID int64) (*models.Invoice, error) {
	return svc.dispute(ctx, callerID, invoiceID, common.DisputantClient)
}

func (svc *EscrowService) DisputeByEmitter(ctx context.Context, callerID string, invoiceID int64) (*models.Invoice, error) {
	return svc.dispute(ctx, callerID, invoiceID, common.DisputantEmitter)
}

func (svc *EscrowService) dispute(ctx context.Context, callerID string, invoiceID int64, disputant string) (*models.Invoice, error) {
	invoice, err := svc.FindInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	owner := invoice.ClientID
	if disputant == common.DisputantEmitter {
		owner = invoice.EmitterID
	}
	if callerID != owner {
		return nil, ErrNotAuthorized
	}
	if invoice.Status != common.InvoiceStatusPaid {
		return nil, ErrStateConflict
	}

	invoice.Status = common.InvoiceStatusDisputed
	err = svc.transact(ctx, invoice, common.InvoiceStatusPaid, nil)
	if err != nil {
		return nil, err
	}

	svc.publishEvent(events.Event{
		Type:      common.EventPaymentDisputed,
		InvoiceID: invoice.ID,
		Disputant: disputant,
	})
	return invoice, nil
}

// ResolveDispute is the arbitrator's call. Releasing to the emitter pays out
// the full amount with no fee deducted and terminates the invoice. Releasing
// to the client refunds the full amount and reopens the invoice for a fresh
// payment cycle.
func (svc *EscrowService) ResolveDispute(ctx context.Context, callerID string, invoiceID int64, releaseToEmitter bool) (*models.Invoice, error) {
	invoice, err := svc.FindInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	setting, err := svc.Settings(ctx)
	if err != nil {
		return nil, err
	}
	if callerID != setting.ArbitratorID {
		return nil, ErrNotAuthorized
	}
	if invoice.Status != common.InvoiceStatusDisputed {
		return nil, ErrStateConflict
	}

	args := ledger.TransferArgs{
		FromIdentity: common.EscrowIdentity,
		FromType:     common.AccountTypeEscrow,
		Amount:       invoice.Amount,
		InvoiceID:    invoice.ID,
	}
	if releaseToEmitter {
		invoice.Status = common.InvoiceStatusReleased
		args.ToIdentity = invoice.EmitterID
		args.ToType = common.AccountTypeCurrent
		args.EntryType = common.EntryTypeEscrowOut
	} else {
		invoice.Status = common.InvoiceStatusPending
		invoice.PaymentTimestamp = bun.NullTime{}
		args.ToIdentity = invoice.ClientID
		args.ToType = common.AccountTypeCurrent
		args.EntryType = common.EntryTypeRefund
	}

	err = svc.transact(ctx, invoice, common.InvoiceStatusDisputed, func(tx bun.Tx) error {
		return svc.Ledger.Transfer(ctx, tx, args)
	})
	if err != nil {
		return nil, err
	}

	svc.publishEvent(events.Event{
		Type:              common.EventDisputeResolved,
		InvoiceID:         invoice.ID,
		ReleasedToEmitter: releaseToEmitter,
	})
	return invoice, nil
}

// settle performs the fee-split payout for confirm and auto-release.
func (svc *EscrowService) settle(ctx context.Context, invoice *models.Invoice, newStatus string) (fee, toEmitter int64, err error) {
	setting, err := svc.Settings(ctx)
	if err != nil {
		return 0, 0, err
	}
	fee, toEmitter = FeeSplit(invoice.Amount, setting.PlatformFeePercent)

	invoice.Status = newStatus
	err = svc.transact(ctx, invoice, common.InvoiceStatusPaid, func(tx bun.Tx) error {
		if fee > 0 {
			err := svc.Ledger.Transfer(ctx, tx, ledger.TransferArgs{
				FromIdentity: common.EscrowIdentity,
				FromType:     common.AccountTypeEscrow,
				ToIdentity:   setting.TreasuryID,
				ToType:       common.AccountTypeCurrent,
				Amount:       fee,
				InvoiceID:    invoice.ID,
				EntryType:    common.EntryTypeFee,
			})
			if err != nil {
				return err
			}
		}
		return svc.Ledger.Transfer(ctx, tx, ledger.TransferArgs{
			FromIdentity: common.EscrowIdentity,
			FromType:     common.AccountTypeEscrow,
			ToIdentity:   invoice.EmitterID,
			ToType:       common.AccountTypeCurrent,
			Amount:       toEmitter,
			InvoiceID:    invoice.ID,
			EntryType:    common.EntryTypeEscrowOut,
		})
	})
	if err != nil {
		return 0, 0, err
	}
	return fee, toEmitter, nil
}

// transact runs one state transition as an all-or-nothing unit: stage the new
// status with the compare-and-update guard, perform the transfer, commit only
// if both succeeded. A failure at any point rolls the whole operation back,
// leaving status and funds untouched and the operation safe to retry.
func (svc *EscrowService) transact(ctx context.Context, invoice *models.Invoice, expectedStatus string, transfer func(tx bun.Tx) error) error {
	tx, err := svc.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	if err := svc.commitTransition(ctx, tx, invoice, expectedStatus); err != nil {
		tx.Rollback()
		return err
	}
	if transfer != nil {
		if err := transfer(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: %w", ErrTransferFailed, err)
		}
	}
	return tx.Commit()
}
