package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Invoice : Invoice Model
type Invoice struct {
	ID               int64        `json:"id" bun:",pk,autoincrement"`
	ClientID         string       `json:"client_id" bun:",notnull"`
	EmitterID        string       `json:"emitter_id" bun:",notnull"`
	Amount           int64        `json:"amount" bun:",notnull" validate:"gt=0"`
	Memo             string       `json:"memo" bun:",nullzero"`
	Status           string       `json:"status" bun:",notnull,default:'pending'"`
	PaymentTimestamp bun.NullTime `json:"payment_timestamp"`
	CreatedAt        time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt        bun.NullTime `json:"updated_at"`
}

func (i *Invoice) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		i.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Invoice)(nil)
