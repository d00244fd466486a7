package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/escrowhub/escrowhub.go/common"
	"github.com/escrowhub/escrowhub.go/db/models"
	"github.com/escrowhub/escrowhub.go/lib/events"
	"github.com/uptrace/bun"
)

// CreateInvoice registers a new pending invoice owned by the calling emitter.
// The primary key gives ids that are unique and monotonic even under
// concurrent creation.
func (svc *EscrowService) CreateInvoice(ctx context.Context, emitterID, clientID string, amount int64, memo string) (*models.Invoice, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInvoice)
	}
	if clientID == "" || emitterID == "" || clientID == emitterID {
		return nil, fmt.Errorf("%w: invoice needs distinct client and emitter", ErrInvalidInvoice)
	}
	invoice := &models.Invoice{
		ClientID:  clientID,
		EmitterID: emitterID,
		Amount:    amount,
		Memo:      memo,
		Status:    common.InvoiceStatusPending,
	}
	_, err := svc.DB.NewInsert().Model(invoice).Exec(ctx)
	if err != nil {
		return nil, err
	}
	svc.publishEvent(events.Event{
		Type:      common.EventInvoiceCreated,
		InvoiceID: invoice.ID,
		ClientID:  invoice.ClientID,
		EmitterID: invoice.EmitterID,
		Amount:    invoice.Amount,
	})
	return invoice, nil
}

func (svc *EscrowService) FindInvoice(ctx context.Context, invoiceID int64) (*models.Invoice, error) {
	invoice := &models.Invoice{}
	err := svc.DB.NewSelect().Model(invoice).Where("id = ?", invoiceID).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return invoice, nil
}

// InvoicesFor lists the invoices where the caller is the client or the
// emitter, newest first.
func (svc *EscrowService) InvoicesFor(ctx context.Context, callerID string) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	err := svc.DB.NewSelect().Model(&invoices).
		Where("client_id = ? OR emitter_id = ?", callerID, callerID).
		Order("id DESC").
		Scan(ctx)
	return invoices, err
}

// commitTransition is the only path by which an invoice's status or payment
// timestamp changes. The update is applied iff the stored status still equals
// expectedStatus; losing that race surfaces as ErrStateConflict. Running it
// inside the operation's transaction also takes the row lock, so concurrent
// operations on the same invoice serialize while distinct invoices do not
// contend.
func (svc *EscrowService) commitTransition(ctx context.Context, tx bun.IDB, invoice *models.Invoice, expectedStatus string) error {
	res, err := tx.NewUpdate().Model(invoice).
		Column("status", "payment_timestamp", "updated_at").
		WherePK().
		Where("status = ?", expectedStatus).
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStateConflict
	}
	return nil
}
