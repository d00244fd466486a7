package events

import "time"

// Event is the single wire shape for all escrow domain events. Type decides
// which of the optional fields are populated.
type Event struct {
	Type              string    `json:"type"`
	InvoiceID         int64     `json:"invoice_id"`
	ClientID          string    `json:"client_id,omitempty"`
	EmitterID         string    `json:"emitter_id,omitempty"`
	Amount            int64     `json:"amount,omitempty"`
	AmountToEmitter   int64     `json:"amount_to_emitter,omitempty"`
	Fee               int64     `json:"fee,omitempty"`
	Disputant         string    `json:"disputant,omitempty"`
	ReleasedToEmitter bool      `json:"released_to_emitter"`
	CreatedAt         time.Time `json:"created_at"`
}
