package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/soroscan/soroscan-go/pkg/soroapi"
	"github.com/soroscan/soroscan-go/pkg/soroapi/result"
)

var (
	// ErrMissingWebhookURL is returned by CreateWebhook when no delivery URL
	// is given.
	ErrMissingWebhookURL = errors.New("webhook URL is required")
	// ErrMissingWebhookTriggers is returned by CreateWebhook when the
	// trigger set is empty.
	ErrMissingWebhookTriggers = errors.New("at least one webhook trigger is required")
	// ErrInvalidWebhookStatus is returned by UpdateWebhook when the requested
	// status is neither active nor paused. The failed state is assigned by
	// the server alone and can't be requested.
	ErrInvalidWebhookStatus = errors.New("webhook status can only be set to active or paused")
)

// CreateWebhook subscribes a new webhook. The returned record carries the
// server-assigned identifier and the signing secret; the secret may not be
// returned by later lookups, so store it now.
func (c *Client) CreateWebhook(ctx context.Context, req soroapi.WebhookRequest) (result.Webhook, error) {
	if req.URL == "" {
		return result.Webhook{}, ErrMissingWebhookURL
	}
	if len(req.Triggers) == 0 {
		return result.Webhook{}, ErrMissingWebhookTriggers
	}
	var wh result.Webhook
	err := c.performRequest(ctx, http.MethodPost, "/v1/webhooks", nil, req, &wh)
	if err != nil {
		return result.Webhook{}, err
	}
	return wh, nil
}

// GetWebhooks retrieves all webhooks visible to the configured credential.
func (c *Client) GetWebhooks(ctx context.Context) (soroapi.WebhookList, error) {
	var list soroapi.WebhookList
	err := c.performRequest(ctx, http.MethodGet, "/v1/webhooks", nil, nil, &list)
	if err != nil {
		return soroapi.WebhookList{}, err
	}
	return list, nil
}

// GetWebhook retrieves a single webhook by its identifier.
func (c *Client) GetWebhook(ctx context.Context, id string) (result.Webhook, error) {
	var wh result.Webhook
	err := c.performRequest(ctx, http.MethodGet, "/v1/webhooks/"+url.PathEscape(id), nil, nil, &wh)
	if err != nil {
		return result.Webhook{}, err
	}
	return wh, nil
}

// UpdateWebhook applies a partial update to a webhook, returning the updated
// record. Fields left at their zero value are unchanged server-side. Only
// StatusActive and StatusPaused can be requested, anything else fails with
// ErrInvalidWebhookStatus before any request is made.
func (c *Client) UpdateWebhook(ctx context.Context, id string, upd soroapi.WebhookUpdate) (result.Webhook, error) {
	switch upd.Status {
	case "", result.StatusActive, result.StatusPaused:
	default:
		return result.Webhook{}, ErrInvalidWebhookStatus
	}
	var wh result.Webhook
	err := c.performRequest(ctx, http.MethodPatch, "/v1/webhooks/"+url.PathEscape(id), nil, upd, &wh)
	if err != nil {
		return result.Webhook{}, err
	}
	return wh, nil
}

// DeleteWebhook removes a webhook. The removal is terminal, any later call
// against the identifier fails with a NOT_FOUND API error.
func (c *Client) DeleteWebhook(ctx context.Context, id string) error {
	return c.performRequest(ctx, http.MethodDelete, "/v1/webhooks/"+url.PathEscape(id), nil, nil, nil)
}
