package models

// CreateEndpointRequest contains fields for registering a webhook endpoint
type CreateEndpointRequest struct {
	ID          string            `json:"id"`
	TenantID    string            `json:"tenant_id"`
	URL         string            `json:"url"`
	Events      []string          `json:"events"`
	Secret      string            `json:"secret"`
	TimeoutS    int               `json:"timeout_s,omitempty"`
	VerifySSL   *bool             `json:"verify_ssl,omitempty"`
	MaxAttempts int               `json:"max_attempts,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

// UpdateEndpointRequest contains the mutable endpoint fields
type UpdateEndpointRequest struct {
	URL         *string           `json:"url,omitempty"`
	Events      []string          `json:"events,omitempty"`
	Secret      *string           `json:"secret,omitempty"`
	Active      *bool             `json:"active,omitempty"`
	TimeoutS    *int              `json:"timeout_s,omitempty"`
	VerifySSL   *bool             `json:"verify_ssl,omitempty"`
	MaxAttempts *int              `json:"max_attempts,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

// DeliveryStats summarizes an endpoint's recent delivery health
type DeliveryStats struct {
	Attempts    int `json:"attempts"`
	DeadLetters int `json:"dead_letters"`
}
