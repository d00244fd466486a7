package common

const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusDisputed  = "disputed"
	InvoiceStatusReleased  = "released"
	InvoiceStatusValidated = "validated"

	AccountTypeIncoming = "incoming"
	AccountTypeCurrent  = "current"
	AccountTypeEscrow   = "escrow"

	// EscrowIdentity owns the custody account that holds funds between
	// payment and settlement.
	EscrowIdentity = "escrow-custody"

	EntryTypeDeposit   = "deposit"
	EntryTypeEscrowIn  = "escrow_in"
	EntryTypeEscrowOut = "escrow_out"
	EntryTypeFee       = "fee"
	EntryTypeRefund    = "refund"

	EventInvoiceCreated   = "invoice_created"
	EventPaymentMade      = "payment_made"
	EventPaymentConfirmed = "payment_confirmed"
	EventPaymentReleased  = "payment_released"
	EventPaymentDisputed  = "payment_disputed"
	EventDisputeResolved  = "dispute_resolved"

	DisputantClient  = "client"
	DisputantEmitter = "emitter"
)
