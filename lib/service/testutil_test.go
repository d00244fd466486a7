package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/escrowhub/escrowhub.go/db"
	"github.com/escrowhub/escrowhub.go/db/migrations"
	"github.com/escrowhub/escrowhub.go/db/models"
	"github.com/escrowhub/escrowhub.go/ledger"
	"github.com/escrowhub/escrowhub.go/lib"
	"github.com/escrowhub/escrowhub.go/lib/service"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

const (
	testClientID     = "client-1"
	testEmitterID    = "emitter-1"
	testArbitratorID = "arbitrator-1"
	testTreasuryID   = "treasury-1"
)

func newTestService(t *testing.T) *service.EscrowService {
	t.Helper()

	c := &service.Config{
		DatabaseUri:           "sqlite://:memory:",
		ArbitratorID:          testArbitratorID,
		TreasuryID:            testTreasuryID,
		PlatformFeePercent:    2,
		PaymentTimeoutSeconds: 7 * 24 * 3600,
		AutoReleaseInterval:   1,
	}

	dbConn, err := db.Open(c)
	require.NoError(t, err)
	t.Cleanup(func() { dbConn.Close() })

	ctx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err = migrator.Migrate(ctx)
	require.NoError(t, err)

	svc := &service.EscrowService{
		Config:      c,
		DB:          dbConn,
		Logger:      lib.Logger(""),
		Ledger:      ledger.NewAccounting(),
		EventPubSub: service.NewPubsub(),
	}
	require.NoError(t, svc.InitSettings(ctx))

	return svc
}

func fundClient(t *testing.T, svc *service.EscrowService, identity string, amount int64) {
	t.Helper()
	require.NoError(t, svc.Deposit(context.Background(), identity, amount))
}

func createPaidInvoice(t *testing.T, svc *service.EscrowService, amount int64) *models.Invoice {
	t.Helper()
	ctx := context.Background()
	invoice, err := svc.CreateInvoice(ctx, testEmitterID, testClientID, amount, "")
	require.NoError(t, err)
	fundClient(t, svc, testClientID, amount)
	invoice, err = svc.PayInvoice(ctx, testClientID, invoice.ID, amount)
	require.NoError(t, err)
	return invoice
}

// backdatePayment rewinds an invoice's payment timestamp so deadline paths
// can be exercised without waiting.
func backdatePayment(t *testing.T, svc *service.EscrowService, invoiceID int64, age time.Duration) {
	t.Helper()
	_, err := svc.DB.NewUpdate().Model((*models.Invoice)(nil)).
		Set("payment_timestamp = ?", bun.NullTime{Time: time.Now().Add(-age)}).
		Where("id = ?", invoiceID).
		Exec(context.Background())
	require.NoError(t, err)
}
