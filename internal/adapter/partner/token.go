package partner

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"promo-scheduler/internal/core/domain"
)

// TokenClient implements port.TokenDistributor against the token partner.
type TokenClient struct {
	c *client
}

// NewTokenClient creates a token distribution client rooted at base.
func NewTokenClient(base url.URL, opts Options) *TokenClient {
	return &TokenClient{c: newClient(base, opts)}
}

type distributionRequest struct {
	PoolID            string    `json:"pool_id"`
	CampaignID        int64     `json:"campaign_id"`
	ValidFrom         time.Time `json:"valid_from"`
	ValidUntil        time.Time `json:"valid_until"`
	QuantityPerWinner int64     `json:"quantity_per_winner"`
	UserIDs           []string  `json:"user_ids"`
}

type distributionResponse struct {
	Success               bool   `json:"success"`
	DistributionReference string `json:"distribution_reference"`
	Error                 string `json:"error,omitempty"`
}

// ErrDistributionRejected is returned when the partner answers 2xx but
// reports the distribution as unsuccessful.
var ErrDistributionRejected = errors.New("token distribution rejected")

// Distribute sends one batch to every user in req.UserIDs.
func (t *TokenClient) Distribute(ctx context.Context, req domain.TokenDistributionRequest) (string, error) {
	header := http.Header{}
	if req.IdempotencyKey != "" {
		header.Set("Idempotency-Key", req.IdempotencyKey)
	}
	var resp distributionResponse
	err := t.c.doJSON(ctx, http.MethodPost, "/api/v1/distributions", header, distributionRequest{
		PoolID:            req.PoolID,
		CampaignID:        req.CampaignID,
		ValidFrom:         req.ValidFrom.UTC(),
		ValidUntil:        req.ValidUntil.UTC(),
		QuantityPerWinner: req.QuantityPerWinner,
		UserIDs:           req.UserIDs,
	}, &resp)
	if err != nil {
		return "", err
	}
	if !resp.Success || resp.DistributionReference == "" {
		return "", fmt.Errorf("%w: %s", ErrDistributionRejected, resp.Error)
	}
	return resp.DistributionReference, nil
}
