package service

import "errors"

var (
	// ErrInvoiceNotFound : unknown invoice id
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrStateConflict : the current status does not permit the requested
	// transition, including losing the race against a concurrent operation
	ErrStateConflict = errors.New("invoice status does not permit this operation")
	// ErrNotAuthorized : the caller lacks the required role for this invoice
	ErrNotAuthorized = errors.New("caller is not permitted to perform this operation")
	// ErrAmountMismatch : payments must match the invoice amount exactly
	ErrAmountMismatch = errors.New("paid amount must match the invoice amount exactly")
	// ErrTimeoutNotReached : auto-release requested before the deadline
	ErrTimeoutNotReached = errors.New("payment timeout has not been reached yet")
	// ErrInvalidSetting : out-of-range fee percent or payment timeout
	ErrInvalidSetting = errors.New("setting value out of range")
	// ErrInvalidInvoice : bad creation parameters
	ErrInvalidInvoice = errors.New("invalid invoice parameters")
	// ErrTransferFailed : the ledger collaborator failed, nothing was
	// committed and the operation is safe to retry
	ErrTransferFailed = errors.New("fund transfer failed")
)
