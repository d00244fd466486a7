package service

import (
	"context"
	"errors"
	"time"

	"github.com/escrowhub/escrowhub.go/common"
	"github.com/escrowhub/escrowhub.go/db/models"
)

// StartAutoReleaseRoutine periodically settles paid invoices whose deadline
// has elapsed. Runs until the context is cancelled.
func (svc *EscrowService) StartAutoReleaseRoutine(ctx context.Context) error {
	interval := time.Duration(svc.Config.AutoReleaseInterval) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := svc.ReleaseOverduePayments(ctx); err != nil {
				svc.Logger.Errorf("Auto-release scan failed: %v", err)
			}
		}
	}
}

// ReleaseOverduePayments runs one auto-release scan. A candidate settled by a
// concurrent confirmation in the meantime simply loses the compare-and-update
// race and is skipped, that is not an error condition.
func (svc *EscrowService) ReleaseOverduePayments(ctx context.Context) error {
	setting, err := svc.Settings(ctx)
	if err != nil {
		return err
	}
	cutoff := time.Now().Add(-setting.PaymentTimeout())

	candidates := []models.Invoice{}
	err = svc.DB.NewSelect().Model(&candidates).
		Where("status = ?", common.InvoiceStatusPaid).
		Where("payment_timestamp <= ?", cutoff).
		Scan(ctx)
	if err != nil {
		return err
	}
	if len(candidates) > 0 {
		svc.Logger.Infof("Found %d overdue invoices", len(candidates))
	}

	for _, invoice := range candidates {
		_, err := svc.AutoReleasePayment(ctx, invoice.ID)
		switch {
		case err == nil:
			svc.Logger.Infof("Auto-released invoice invoice_id:%v amount:%v", invoice.ID, invoice.Amount)
		case errors.Is(err, ErrStateConflict), errors.Is(err, ErrTimeoutNotReached):
			// settled or disputed concurrently, skip
			svc.Logger.Debugf("Skipping invoice invoice_id:%v: %v", invoice.ID, err)
		default:
			svc.Logger.Errorf("Auto-release failed invoice_id:%v error: %v", invoice.ID, err)
		}
	}
	return nil
}
