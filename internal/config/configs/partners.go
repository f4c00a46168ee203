package configs

import (
	"net/url"
	"time"
)

// Partners holds the endpoints of the external reward and notification
// services. Every request carries ServiceToken in the X-Service-Token
// header.
type Partners struct {
	TokenURL  url.URL `env:"TOKEN_URL" envDefault:"http://localhost:8081"`
	LedgerURL url.URL `env:"LEDGER_URL" envDefault:"http://localhost:8082"`
	NotifyURL url.URL `env:"NOTIFY_URL" envDefault:"http://localhost:8083"`

	ServiceToken string `env:"SERVICE_TOKEN"`
	// Timeout bounds every partner request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
	// RatePerSecond throttles each partner client. Zero disables throttling.
	RatePerSecond float64 `env:"RATE_PER_SECOND" envDefault:"20"`
	// CoinReason is the ledger transaction reason for coin awards.
	CoinReason string `env:"COIN_REASON" envDefault:"giveaway_reward"`
}
