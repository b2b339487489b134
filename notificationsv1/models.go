package notificationsv1

// Built-in alert source providers. Providers returned by the Findings API
// ListProviders call may be used as well. ALL cannot be combined with other
// providers.
const (
	ProviderVulnerabilityAdvisor = "VA"
	ProviderNetworkInsights      = "NA"
	ProviderActivityInsights     = "ATA"
	ProviderCertificateManager   = "CERT"
	ProviderAll                  = "ALL"
)

// FindingTypeAll selects every finding type of a provider.
const FindingTypeAll = "ALL"

// NotificationChannelAlertSourceItem selects the findings a channel
// forwards.
type NotificationChannelAlertSourceItem struct {
	ProviderName string   `json:"provider_name"`
	FindingTypes []string `json:"finding_types,omitzero"`
}

// ChannelAlertSource is an alert source as reported by the service.
type ChannelAlertSource struct {
	ProviderName *string  `json:"provider_name,omitempty"`
	FindingTypes []string `json:"finding_types,omitempty"`
}

// ChannelSeverity reports which severities a channel forwards.
type ChannelSeverity struct {
	Critical *bool `json:"critical,omitempty"`
	High     *bool `json:"high,omitempty"`
	Medium   *bool `json:"medium,omitempty"`
	Low      *bool `json:"low,omitempty"`
}

// ChannelResponseDefinition is a notification channel.
type ChannelResponseDefinition struct {
	ChannelID   *string              `json:"channel_id,omitempty"`
	Name        *string              `json:"name,omitempty"`
	Description *string              `json:"description,omitempty"`
	Type        *string              `json:"type,omitempty"`
	Severity    *ChannelSeverity     `json:"severity,omitempty"`
	Endpoint    *string              `json:"endpoint,omitempty"`
	Enabled     *bool                `json:"enabled,omitempty"`
	AlertSource []ChannelAlertSource `json:"alert_source,omitempty"`
	Frequency   *string              `json:"frequency,omitempty"`
}

// ListChannelsResponse lists channels.
type ListChannelsResponse struct {
	Channels []ChannelResponseDefinition `json:"channels,omitempty"`
}

// GetChannelResponse wraps a single channel.
type GetChannelResponse struct {
	Channel *ChannelResponseDefinition `json:"channel,omitempty"`
}

// CreateChannelsResponse is returned for a created channel.
type CreateChannelsResponse struct {
	ChannelID  *string `json:"channel_id,omitempty"`
	StatusCode *int64  `json:"status_code,omitempty"`
}

// UpdateChannelResponse is returned for an updated channel.
type UpdateChannelResponse struct {
	ChannelID  *string `json:"channel_id,omitempty"`
	StatusCode *int64  `json:"status_code,omitempty"`
}

// DeleteChannelResponse is returned for a deleted channel.
type DeleteChannelResponse struct {
	ChannelID *string `json:"channel_id,omitempty"`
	Message   *string `json:"message,omitempty"`
}

// BulkDeleteChannelsResponse is returned for a bulk delete.
type BulkDeleteChannelsResponse struct {
	Message *string `json:"message,omitempty"`
}

// TestChannelResponse is the outcome of a channel test.
type TestChannelResponse struct {
	Test *string `json:"test,omitempty"`
}

// PublicKeyResponse holds the PEM encoded key notifications are signed with.
type PublicKeyResponse struct {
	PublicKey string `json:"public_key"`
}
