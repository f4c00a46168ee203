package partner

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"promo-scheduler/internal/core/domain"
)

// LedgerClient implements port.CoinLedger against the coin ledger partner.
type LedgerClient struct {
	c *client
}

// NewLedgerClient creates a coin ledger client rooted at base.
func NewLedgerClient(base url.URL, opts Options) *LedgerClient {
	return &LedgerClient{c: newClient(base, opts)}
}

// GetBalance returns the spendable balance of a coin source.
func (l *LedgerClient) GetBalance(ctx context.Context, sourceID string) (int64, error) {
	var resp struct {
		Balance int64 `json:"balance"`
	}
	path := "/api/v1/sources/" + url.PathEscape(sourceID) + "/balance"
	if err := l.c.doJSON(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

type transactionRequest struct {
	SourceID  string `json:"source_id"`
	UserID    string `json:"user_id"`
	Amount    int64  `json:"amount"`
	Reason    string `json:"reason"`
	Reference string `json:"reference"`
}

// CreateTransaction moves coins from the source to the user. The ledger
// answers 402 when the source cannot cover the amount.
func (l *LedgerClient) CreateTransaction(ctx context.Context, tx domain.CoinTransaction) (string, error) {
	var resp struct {
		TransactionID string `json:"transaction_id"`
	}
	err := l.c.doJSON(ctx, http.MethodPost, "/api/v1/transactions", nil, transactionRequest(tx), &resp)
	var serr *StatusError
	if errors.As(err, &serr) && serr.Code == http.StatusPaymentRequired {
		return "", errors.Join(domain.ErrInsufficientCoins, err)
	}
	if err != nil {
		return "", err
	}
	if resp.TransactionID == "" {
		return "", fmt.Errorf("ledger returned no transaction id for %s", tx.UserID)
	}
	return resp.TransactionID, nil
}
