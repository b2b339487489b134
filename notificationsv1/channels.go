package notificationsv1

import (
	"context"
	"net/http"

	"github.com/ibm-cloud-security/go-secadvisor"
)

// Channel types and severities accepted by CreateNotificationChannel.
const (
	CreateNotificationChannelTypeWebhook = "Webhook"

	CreateNotificationChannelSeverityLow      = "low"
	CreateNotificationChannelSeverityMedium   = "medium"
	CreateNotificationChannelSeverityHigh     = "high"
	CreateNotificationChannelSeverityCritical = "critical"
)

// Channel types and severities accepted by UpdateNotificationChannel.
const (
	UpdateNotificationChannelTypeWebhook = "Webhook"

	UpdateNotificationChannelSeverityLow      = "low"
	UpdateNotificationChannelSeverityMedium   = "medium"
	UpdateNotificationChannelSeverityHigh     = "high"
	UpdateNotificationChannelSeverityCritical = "critical"
)

const (
	channelsURL = "/v1/{account_id}/notifications/channels"
	channelURL  = "/v1/{account_id}/notifications/channels/{channel_id}"
)

var (
	listAllChannelsOp = secadvisor.Operation{
		ID:          "listAllChannels",
		Method:      http.MethodGet,
		URLTemplate: channelsURL,
	}
	createNotificationChannelOp = secadvisor.Operation{
		ID:          "createNotificationChannel",
		Method:      http.MethodPost,
		URLTemplate: channelsURL,
		ContentType: secadvisor.MediaTypeJSON,
	}
	deleteNotificationChannelsOp = secadvisor.Operation{
		ID:          "deleteNotificationChannels",
		Method:      http.MethodDelete,
		URLTemplate: channelsURL,
		ContentType: secadvisor.MediaTypeJSON,
	}
	deleteNotificationChannelOp = secadvisor.Operation{
		ID:          "deleteNotificationChannel",
		Method:      http.MethodDelete,
		URLTemplate: channelURL,
	}
	getNotificationChannelOp = secadvisor.Operation{
		ID:          "getNotificationChannel",
		Method:      http.MethodGet,
		URLTemplate: channelURL,
	}
	updateNotificationChannelOp = secadvisor.Operation{
		ID:          "updateNotificationChannel",
		Method:      http.MethodPut,
		URLTemplate: channelURL,
		ContentType: secadvisor.MediaTypeJSON,
	}
	testNotificationChannelOp = secadvisor.Operation{
		ID:          "testNotificationChannel",
		Method:      http.MethodGet,
		URLTemplate: "/v1/{account_id}/notifications/channels/{channel_id}/test",
	}
	getPublicKeyOp = secadvisor.Operation{
		ID:          "getPublicKey",
		Method:      http.MethodGet,
		URLTemplate: "/v1/{account_id}/notifications/public_key",
	}
)

// ListAllChannelsOptions are the parameters of ListAllChannels.
type ListAllChannelsOptions struct {
	AccountID *string `validate:"required" param:"accountId"`

	Limit *int64
	Skip  *int64

	Headers map[string]string
}

// CreateNotificationChannelOptions are the parameters of
// CreateNotificationChannel.
type CreateNotificationChannelOptions struct {
	AccountID *string `validate:"required" param:"accountId"`
	Name      *string `validate:"required" param:"name"`
	Type      *string `validate:"required" param:"type"`

	// Endpoint is the callback URL receiving the notifications.
	Endpoint *string `validate:"required" param:"endpoint"`

	Description *string
	Severity    []string
	Enabled     *bool
	AlertSource []NotificationChannelAlertSourceItem

	Headers map[string]string
}

// DeleteNotificationChannelsOptions are the parameters of
// DeleteNotificationChannels.
type DeleteNotificationChannelsOptions struct {
	AccountID *string `validate:"required" param:"accountId"`

	// Body holds the IDs of the channels to delete.
	Body []string `validate:"required" param:"body"`

	Headers map[string]string
}

// DeleteNotificationChannelOptions are the parameters of
// DeleteNotificationChannel.
type DeleteNotificationChannelOptions struct {
	AccountID *string `validate:"required" param:"accountId"`
	ChannelID *string `validate:"required" param:"channelId"`

	Headers map[string]string
}

// GetNotificationChannelOptions are the parameters of GetNotificationChannel.
type GetNotificationChannelOptions struct {
	AccountID *string `validate:"required" param:"accountId"`
	ChannelID *string `validate:"required" param:"channelId"`

	Headers map[string]string
}

// UpdateNotificationChannelOptions are the parameters of
// UpdateNotificationChannel.
type UpdateNotificationChannelOptions struct {
	AccountID *string `validate:"required" param:"accountId"`
	ChannelID *string `validate:"required" param:"channelId"`
	Name      *string `validate:"required" param:"name"`
	Type      *string `validate:"required" param:"type"`
	Endpoint  *string `validate:"required" param:"endpoint"`

	Description *string
	Severity    []string
	Enabled     *bool
	AlertSource []NotificationChannelAlertSourceItem

	Headers map[string]string
}

// TestNotificationChannelOptions are the parameters of
// TestNotificationChannel.
type TestNotificationChannelOptions struct {
	AccountID *string `validate:"required" param:"accountId"`
	ChannelID *string `validate:"required" param:"channelId"`

	Headers map[string]string
}

// GetPublicKeyOptions are the parameters of GetPublicKey.
type GetPublicKeyOptions struct {
	AccountID *string `validate:"required" param:"accountId"`

	Headers map[string]string
}

// ChannelBody is the request body of CreateNotificationChannel and
// UpdateNotificationChannel. The service reads the alert sources from the
// camel-cased alertSource key.
type ChannelBody struct {
	Name        *string                              `json:"name"`
	Type        *string                              `json:"type"`
	Endpoint    *string                              `json:"endpoint"`
	Description *string                              `json:"description,omitempty"`
	Severity    []string                             `json:"severity,omitzero"`
	Enabled     *bool                                `json:"enabled,omitempty"`
	AlertSource []NotificationChannelAlertSourceItem `json:"alertSource,omitzero"`
}

type listAllChannelsQuery struct {
	Limit *int64 `schema:"limit,omitempty"`
	Skip  *int64 `schema:"skip,omitempty"`
}

// ListAllChannels lists the notification channels of an account.
func (n *NotificationsV1) ListAllChannels(ctx context.Context, opts *ListAllChannelsOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*ListChannelsResponse], error) {
	if opts == nil {
		opts = &ListAllChannelsOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := n.service.Build(&listAllChannelsOp, secadvisor.RequestInput{
		Path: map[string]string{"account_id": *opts.AccountID},
		Query: &listAllChannelsQuery{
			Limit: opts.Limit,
			Skip:  opts.Skip,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*ListChannelsResponse](ctx, n.service, req)
}

// CreateNotificationChannel creates a notification channel.
func (n *NotificationsV1) CreateNotificationChannel(ctx context.Context, opts *CreateNotificationChannelOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*CreateChannelsResponse], error) {
	if opts == nil {
		opts = &CreateNotificationChannelOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := n.service.Build(&createNotificationChannelOp, secadvisor.RequestInput{
		Path: map[string]string{"account_id": *opts.AccountID},
		Body: &ChannelBody{
			Name:        opts.Name,
			Type:        opts.Type,
			Endpoint:    opts.Endpoint,
			Description: opts.Description,
			Severity:    opts.Severity,
			Enabled:     opts.Enabled,
			AlertSource: opts.AlertSource,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*CreateChannelsResponse](ctx, n.service, req)
}

// DeleteNotificationChannels removes several channels at once.
func (n *NotificationsV1) DeleteNotificationChannels(ctx context.Context, opts *DeleteNotificationChannelsOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*BulkDeleteChannelsResponse], error) {
	if opts == nil {
		opts = &DeleteNotificationChannelsOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := n.service.Build(&deleteNotificationChannelsOp, secadvisor.RequestInput{
		Path:    map[string]string{"account_id": *opts.AccountID},
		Body:    opts.Body,
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*BulkDeleteChannelsResponse](ctx, n.service, req)
}

// DeleteNotificationChannel removes a channel.
func (n *NotificationsV1) DeleteNotificationChannel(ctx context.Context, opts *DeleteNotificationChannelOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*DeleteChannelResponse], error) {
	if opts == nil {
		opts = &DeleteNotificationChannelOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := n.service.Build(&deleteNotificationChannelOp, secadvisor.RequestInput{
		Path: map[string]string{
			"account_id": *opts.AccountID,
			"channel_id": *opts.ChannelID,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*DeleteChannelResponse](ctx, n.service, req)
}

// GetNotificationChannel retrieves a channel.
func (n *NotificationsV1) GetNotificationChannel(ctx context.Context, opts *GetNotificationChannelOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*GetChannelResponse], error) {
	if opts == nil {
		opts = &GetNotificationChannelOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := n.service.Build(&getNotificationChannelOp, secadvisor.RequestInput{
		Path: map[string]string{
			"account_id": *opts.AccountID,
			"channel_id": *opts.ChannelID,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*GetChannelResponse](ctx, n.service, req)
}

// UpdateNotificationChannel replaces an existing channel.
func (n *NotificationsV1) UpdateNotificationChannel(ctx context.Context, opts *UpdateNotificationChannelOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*UpdateChannelResponse], error) {
	if opts == nil {
		opts = &UpdateNotificationChannelOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := n.service.Build(&updateNotificationChannelOp, secadvisor.RequestInput{
		Path: map[string]string{
			"account_id": *opts.AccountID,
			"channel_id": *opts.ChannelID,
		},
		Body: &ChannelBody{
			Name:        opts.Name,
			Type:        opts.Type,
			Endpoint:    opts.Endpoint,
			Description: opts.Description,
			Severity:    opts.Severity,
			Enabled:     opts.Enabled,
			AlertSource: opts.AlertSource,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*UpdateChannelResponse](ctx, n.service, req)
}

// TestNotificationChannel sends a test notification through a channel.
func (n *NotificationsV1) TestNotificationChannel(ctx context.Context, opts *TestNotificationChannelOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*TestChannelResponse], error) {
	if opts == nil {
		opts = &TestNotificationChannelOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := n.service.Build(&testNotificationChannelOp, secadvisor.RequestInput{
		Path: map[string]string{
			"account_id": *opts.AccountID,
			"channel_id": *opts.ChannelID,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*TestChannelResponse](ctx, n.service, req)
}

// GetPublicKey retrieves the public key notifications are signed with.
func (n *NotificationsV1) GetPublicKey(ctx context.Context, opts *GetPublicKeyOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*PublicKeyResponse], error) {
	if opts == nil {
		opts = &GetPublicKeyOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := n.service.Build(&getPublicKeyOp, secadvisor.RequestInput{
		Path:    map[string]string{"account_id": *opts.AccountID},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*PublicKeyResponse](ctx, n.service, req)
}
