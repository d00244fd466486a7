package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/escrowhub/escrowhub.go/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseOverduePaymentsSettlesOverdueOnly(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	overdue := createPaidInvoice(t, svc, 100)
	backdatePayment(t, svc, overdue.ID, 8*24*time.Hour)

	fresh := createPaidInvoice(t, svc, 100)

	require.NoError(t, svc.ReleaseOverduePayments(ctx))

	released, err := svc.FindInvoice(ctx, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, common.InvoiceStatusReleased, released.Status)

	untouched, err := svc.FindInvoice(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, common.InvoiceStatusPaid, untouched.Status)

	// default 2% fee applies on auto-release too
	emitterBalance, err := svc.CurrentBalance(ctx, testEmitterID)
	require.NoError(t, err)
	assert.Equal(t, int64(98), emitterBalance)
	treasuryBalance, err := svc.CurrentBalance(ctx, testTreasuryID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), treasuryBalance)
}

func TestReleaseOverduePaymentsSkipsDisputed(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	invoice := createPaidInvoice(t, svc, 100)
	backdatePayment(t, svc, invoice.ID, 8*24*time.Hour)
	_, err := svc.DisputeByClient(ctx, testClientID, invoice.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ReleaseOverduePayments(ctx))

	disputed, err := svc.FindInvoice(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, common.InvoiceStatusDisputed, disputed.Status)
}

func TestReleaseOverduePaymentsIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	invoice := createPaidInvoice(t, svc, 100)
	backdatePayment(t, svc, invoice.ID, 8*24*time.Hour)

	require.NoError(t, svc.ReleaseOverduePayments(ctx))
	require.NoError(t, svc.ReleaseOverduePayments(ctx))

	// funds moved exactly once
	emitterBalance, err := svc.CurrentBalance(ctx, testEmitterID)
	require.NoError(t, err)
	assert.Equal(t, int64(98), emitterBalance)
}
