package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/escrowhub/escrowhub.go/common"
	"github.com/escrowhub/escrowhub.go/lib/events"
	"github.com/escrowhub/escrowhub.go/lib/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscrowEventsPublishedAfterCommit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	received := make(chan events.Event, 16)
	subID, err := svc.EventPubSub.Subscribe(service.TopicAllEvents, received)
	require.NoError(t, err)
	defer svc.EventPubSub.Unsubscribe(subID, service.TopicAllEvents)

	invoice := createPaidInvoice(t, svc, 100)
	_, err = svc.ConfirmPayment(ctx, testClientID, invoice.ID)
	require.NoError(t, err)

	created := <-received
	assert.Equal(t, common.EventInvoiceCreated, created.Type)
	assert.Equal(t, invoice.ID, created.InvoiceID)

	paid := <-received
	assert.Equal(t, common.EventPaymentMade, paid.Type)
	assert.Equal(t, int64(100), paid.Amount)
	assert.False(t, paid.CreatedAt.IsZero())

	confirmed := <-received
	assert.Equal(t, common.EventPaymentConfirmed, confirmed.Type)
	assert.Equal(t, int64(98), confirmed.AmountToEmitter)
	assert.Equal(t, int64(2), confirmed.Fee)
}

func TestFailedOperationPublishesNothing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	invoice, err := svc.CreateInvoice(ctx, testEmitterID, testClientID, 100, "")
	require.NoError(t, err)

	received := make(chan events.Event, 16)
	subID, err := svc.EventPubSub.Subscribe(service.TopicAllEvents, received)
	require.NoError(t, err)
	defer svc.EventPubSub.Unsubscribe(subID, service.TopicAllEvents)

	// unfunded client, the payment rolls back
	_, err = svc.PayInvoice(ctx, testClientID, invoice.ID, 100)
	require.Error(t, err)

	select {
	case event := <-received:
		t.Fatalf("unexpected event %s for rolled-back payment", event.Type)
	default:
	}
}

func TestEncodeEvent(t *testing.T) {
	svc := newTestService(t)

	var buf bytes.Buffer
	err := svc.EncodeEvent(context.Background(), &buf, events.Event{
		Type:      common.EventPaymentReleased,
		InvoiceID: 7,
		Amount:    50,
	})
	require.NoError(t, err)

	decoded := events.Event{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, common.EventPaymentReleased, decoded.Type)
	assert.Equal(t, int64(7), decoded.InvoiceID)
}
