package result

import "time"

// WebhookStatus is the delivery state of a webhook subscription.
type WebhookStatus string

const (
	// StatusActive means deliveries are being attempted.
	StatusActive WebhookStatus = "active"
	// StatusPaused means deliveries are suspended at the caller's request.
	StatusPaused WebhookStatus = "paused"
	// StatusFailed means the server disabled the subscription after repeated
	// delivery failures. It can't be requested by the client; reactivate a
	// failed webhook by updating its status back to StatusActive.
	StatusFailed WebhookStatus = "failed"
)

// Webhook is a subscription pushing event notifications to a caller-supplied
// endpoint.
type Webhook struct {
	// ID is the server-assigned subscription identifier.
	ID string `json:"id"`
	// URL is the delivery endpoint.
	URL string `json:"url"`
	// Triggers lists the event kinds the subscription fires on.
	Triggers []string `json:"triggers"`
	// ContractID is set when the subscription is narrowed to one contract.
	ContractID string `json:"contractId,omitempty"`
	// Status is the current delivery state.
	Status WebhookStatus `json:"status"`
	// Secret is the HMAC key deliveries are signed with. The server is only
	// guaranteed to return it in the subscription response, it may be omitted
	// from later lookups.
	Secret string `json:"secret,omitempty"`
	// CreatedAt is the subscription creation time.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time of the last change to the subscription.
	UpdatedAt time.Time `json:"updatedAt"`
}
