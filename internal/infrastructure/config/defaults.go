package config

import "time"

const (
	DefaultHTTPPort        = "8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultPollInterval    = 300 * time.Second
	DefaultTopCoins        = 10
	DefaultQuoteCurrency   = "usd"
	DefaultPGMaxConns      = 5
	DefaultPGMinConns      = 1
)
