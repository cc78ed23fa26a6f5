package soroapi

import (
	"github.com/soroscan/soroscan-go/pkg/soroapi/result"
)

// WebhookRequest is the body of a webhook subscription request. URL and at
// least one trigger are required, the rest is optional.
type WebhookRequest struct {
	// URL is the HTTPS endpoint deliveries are pushed to.
	URL string `json:"url"`
	// Triggers lists the event kinds the subscription fires on.
	Triggers []string `json:"triggers"`
	// ContractID optionally narrows the subscription to a single contract.
	ContractID string `json:"contractId,omitempty"`
	// Secret optionally overrides the server-generated signing secret.
	Secret string `json:"secret,omitempty"`
}

// WebhookUpdate is the body of a partial webhook update. Nil/empty fields are
// left unchanged by the server. Status may only be set to StatusActive or
// StatusPaused, the failed state is assigned by the server alone.
type WebhookUpdate struct {
	URL      string               `json:"url,omitempty"`
	Triggers []string             `json:"triggers,omitempty"`
	Status   result.WebhookStatus `json:"status,omitempty"`
}

// WebhookList is the response of the webhook listing endpoint. Unlike the
// other list endpoints it's a flat list without cursors.
type WebhookList struct {
	Items      []result.Webhook `json:"items"`
	TotalCount int              `json:"totalCount"`
}
