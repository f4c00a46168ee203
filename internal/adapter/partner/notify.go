package partner

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"promo-scheduler/internal/core/domain"
)

// NotifyClient implements port.Notifier against the notification gateway.
type NotifyClient struct {
	c *client
}

// NewNotifyClient creates a notification client rooted at base.
func NewNotifyClient(base url.URL, opts Options) *NotifyClient {
	return &NotifyClient{c: newClient(base, opts)}
}

type notificationRequest struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id,omitempty"`
	CampaignID int64             `json:"campaign_id,omitempty"`
	Template   string            `json:"template"`
	Data       map[string]string `json:"data,omitempty"`
}

// Notify submits one notification. Delivery is up to the gateway.
func (n *NotifyClient) Notify(ctx context.Context, msg domain.Notification) error {
	return n.c.doJSON(ctx, http.MethodPost, "/api/v1/notifications", nil, notificationRequest{
		ID:         uuid.NewString(),
		UserID:     msg.UserID,
		CampaignID: msg.CampaignID,
		Template:   msg.Template,
		Data:       msg.Data,
	}, nil)
}
