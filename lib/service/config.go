package service

type Config struct {
	DatabaseUri             string  `envconfig:"DATABASE_URI" required:"true"`
	DatabaseMaxConns        int     `envconfig:"DATABASE_MAX_CONNS" default:"10"`
	DatabaseMaxIdleConns    int     `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	DatabaseConnMaxLifetime int     `envconfig:"DATABASE_CONN_MAX_LIFETIME" default:"1800"` // 30 minutes
	SentryDSN               string  `envconfig:"SENTRY_DSN"`
	SentryTracesSampleRate  float64 `envconfig:"SENTRY_TRACES_SAMPLE_RATE"`
	LogFilePath             string  `envconfig:"LOG_FILE_PATH"`
	AdminToken              string  `envconfig:"ADMIN_TOKEN"`
	Host                    string  `envconfig:"HOST" default:"localhost:3000"`
	Port                    int     `envconfig:"PORT" default:"3000"`
	DefaultRateLimit        int     `envconfig:"DEFAULT_RATE_LIMIT" default:"10"`
	StrictRateLimit         int     `envconfig:"STRICT_RATE_LIMIT" default:"10"`
	BurstRateLimit          int     `envconfig:"BURST_RATE_LIMIT" default:"1"`
	EnablePrometheus        bool    `envconfig:"ENABLE_PROMETHEUS" default:"false"`
	PrometheusPort          int     `envconfig:"PROMETHEUS_PORT" default:"9092"`

	// bootstrap defaults for the settings row, applied only on first start
	ArbitratorID          string `envconfig:"ARBITRATOR_ID" required:"true"`
	TreasuryID            string `envconfig:"TREASURY_ID" required:"true"`
	PlatformFeePercent    int64  `envconfig:"PLATFORM_FEE_PERCENT" default:"2"`
	PaymentTimeoutSeconds int64  `envconfig:"PAYMENT_TIMEOUT_SECONDS" default:"604800"` // 7 days

	AutoReleaseInterval int64 `envconfig:"AUTO_RELEASE_INTERVAL" default:"60"` // in seconds

	RabbitMQUri                 string `envconfig:"RABBITMQ_URI"`
	RabbitMQEscrowEventExchange string `envconfig:"RABBITMQ_ESCROW_EVENT_EXCHANGE" default:"escrow_events"`
}
