package service

import (
	"github.com/escrowhub/escrowhub.go/ledger"
	"github.com/escrowhub/escrowhub.go/rabbitmq"
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

type EscrowService struct {
	Config         *Config
	DB             *bun.DB
	Logger         *lecho.Logger
	Ledger         ledger.Ledger
	EventPubSub    *Pubsub
	RabbitMQClient rabbitmq.Client
}
