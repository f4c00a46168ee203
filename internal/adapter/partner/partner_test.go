package partner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo-scheduler/internal/core/domain"
)

func serverURL(t *testing.T, srv *httptest.Server) url.URL {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return *u
}

func TestTokenClientDistribute(t *testing.T) {
	var got distributionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/distributions", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Service-Token"))
		assert.Equal(t, "key-1", r.Header.Get("Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(distributionResponse{Success: true, DistributionReference: "dist-9"})
	}))
	defer srv.Close()

	c := NewTokenClient(serverURL(t, srv), Options{ServiceToken: "secret"})
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	ref, err := c.Distribute(context.Background(), domain.TokenDistributionRequest{
		PoolID:            "pool-1",
		CampaignID:        3,
		ValidFrom:         from,
		ValidUntil:        from.AddDate(0, 1, 0),
		QuantityPerWinner: 10,
		UserIDs:           []string{"u1", "u2"},
		IdempotencyKey:    "key-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "dist-9", ref)
	assert.Equal(t, "pool-1", got.PoolID)
	assert.Equal(t, int64(10), got.QuantityPerWinner)
	assert.Equal(t, []string{"u1", "u2"}, got.UserIDs)
}

func TestTokenClientRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(distributionResponse{Success: false, Error: "pool closed"})
	}))
	defer srv.Close()

	_, err := NewTokenClient(serverURL(t, srv), Options{}).Distribute(context.Background(), domain.TokenDistributionRequest{})
	require.ErrorIs(t, err, ErrDistributionRejected)
	assert.NotErrorIs(t, err, domain.ErrTransientExternal)
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		transient bool
	}{
		{"server error", http.StatusBadGateway, true},
		{"throttled", http.StatusTooManyRequests, true},
		{"bad request", http.StatusBadRequest, false},
		{"not found", http.StatusNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			_, err := NewLedgerClient(serverURL(t, srv), Options{}).GetBalance(context.Background(), "src")
			require.Error(t, err)
			assert.Equal(t, tt.transient, errors.Is(err, domain.ErrTransientExternal))

			var serr *StatusError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.status, serr.Code)
			assert.Equal(t, "nope", serr.Body)
		})
	}
}

func TestTimeoutIsTransient(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewLedgerClient(serverURL(t, srv), Options{Timeout: 50 * time.Millisecond})
	_, err := c.GetBalance(context.Background(), "src")
	require.ErrorIs(t, err, domain.ErrTransientExternal)
}

func TestLedgerClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/sources/{id}/balance", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "coin src", r.PathValue("id"))
		_, _ = w.Write([]byte(`{"balance": 120}`))
	})
	mux.HandleFunc("POST /api/v1/transactions", func(w http.ResponseWriter, r *http.Request) {
		var req transactionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Amount > 120 {
			http.Error(w, "insufficient funds", http.StatusPaymentRequired)
			return
		}
		_, _ = w.Write([]byte(`{"transaction_id": "tx-` + req.UserID + `"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewLedgerClient(serverURL(t, srv), Options{})
	ctx := context.Background()

	balance, err := c.GetBalance(ctx, "coin src")
	require.NoError(t, err)
	assert.Equal(t, int64(120), balance)

	id, err := c.CreateTransaction(ctx, domain.CoinTransaction{SourceID: "coin src", UserID: "u1", Amount: 100, Reason: "giveaway_reward"})
	require.NoError(t, err)
	assert.Equal(t, "tx-u1", id)

	_, err = c.CreateTransaction(ctx, domain.CoinTransaction{SourceID: "coin src", UserID: "u2", Amount: 500})
	require.ErrorIs(t, err, domain.ErrInsufficientCoins)
}

func TestLedgerBalanceEscapesSourceID(t *testing.T) {
	var rawPath string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/sources/{id}/balance", func(w http.ResponseWriter, r *http.Request) {
		rawPath = r.URL.EscapedPath()
		assert.Equal(t, "team/a", r.PathValue("id"))
		_, _ = w.Write([]byte(`{"balance": 7}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	balance, err := NewLedgerClient(serverURL(t, srv), Options{}).GetBalance(context.Background(), "team/a")
	require.NoError(t, err)
	assert.Equal(t, int64(7), balance)
	assert.Equal(t, "/api/v1/sources/team%2Fa/balance", rawPath)
}

func TestNotifyClient(t *testing.T) {
	var got notificationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/base/api/v1/notifications", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	base := serverURL(t, srv)
	base.Path = "/base/"
	err := NewNotifyClient(base, Options{RatePerSecond: 5}).Notify(context.Background(), domain.Notification{
		CampaignID: 7,
		Template:   domain.TemplateCampaignStarted,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, int64(7), got.CampaignID)
	assert.Empty(t, got.UserID)
	assert.Equal(t, domain.TemplateCampaignStarted, got.Template)
}
