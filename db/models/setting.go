package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Setting : single-row escrow settings
//
// The whole row is read and written as one unit so callers always observe a
// consistent snapshot of arbitrator, treasury, fee and timeout.
type Setting struct {
	ID                    int64        `json:"-" bun:",pk"`
	ArbitratorID          string       `json:"arbitrator_id" bun:",notnull"`
	TreasuryID            string       `json:"treasury_id" bun:",notnull"`
	PlatformFeePercent    int64        `json:"platform_fee_percent" bun:",notnull"`
	PaymentTimeoutSeconds int64        `json:"payment_timeout_seconds" bun:",notnull"`
	UpdatedAt             bun.NullTime `json:"updated_at"`
}

func (s *Setting) PaymentTimeout() time.Duration {
	return time.Duration(s.PaymentTimeoutSeconds) * time.Second
}

func (s *Setting) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		s.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Setting)(nil)
