package notificationsv1

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ibm-cloud-security/go-secadvisor"
)

// Service defaults.
const (
	DefaultServiceURL  = "https://us-south.secadvisor.cloud.ibm.com/notifications"
	DefaultServiceName = "notifications_api"
)

// API is the Notifications API surface.
//
//go:generate mockery --name=API --output=mocks --outpkg=mocks --filename=notifications_api.go
type API interface {
	// ListAllChannels lists the notification channels of an account.
	ListAllChannels(ctx context.Context, opts *ListAllChannelsOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*ListChannelsResponse], error)

	// CreateNotificationChannel creates a notification channel.
	CreateNotificationChannel(ctx context.Context, opts *CreateNotificationChannelOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*CreateChannelsResponse], error)

	// DeleteNotificationChannels removes several channels at once.
	DeleteNotificationChannels(ctx context.Context, opts *DeleteNotificationChannelsOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*BulkDeleteChannelsResponse], error)

	// DeleteNotificationChannel removes a channel.
	DeleteNotificationChannel(ctx context.Context, opts *DeleteNotificationChannelOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*DeleteChannelResponse], error)

	// GetNotificationChannel retrieves a channel.
	GetNotificationChannel(ctx context.Context, opts *GetNotificationChannelOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*GetChannelResponse], error)

	// UpdateNotificationChannel replaces an existing channel.
	UpdateNotificationChannel(ctx context.Context, opts *UpdateNotificationChannelOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*UpdateChannelResponse], error)

	// TestNotificationChannel sends a test notification through a channel.
	TestNotificationChannel(ctx context.Context, opts *TestNotificationChannelOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*TestChannelResponse], error)

	// GetPublicKey retrieves the key used to sign notifications.
	GetPublicKey(ctx context.Context, opts *GetPublicKeyOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*PublicKeyResponse], error)
}

var _ API = (*NotificationsV1)(nil)

// NotificationsV1 is the Notifications API client. It is safe for concurrent
// use.
type NotificationsV1 struct {
	service *secadvisor.BaseService
}

// New creates a Notifications client. An authenticator must be supplied with
// secadvisor.WithAuthenticator.
func New(opts ...secadvisor.ServiceOption) (*NotificationsV1, error) {
	service, err := secadvisor.NewBaseService(DefaultServiceName, DefaultServiceURL, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not create notifications client")
	}
	return &NotificationsV1{service: service}, nil
}

// NewFromEnvironment creates a Notifications client configured from the
// environment and the credentials file. Explicit options take precedence.
func NewFromEnvironment(opts ...secadvisor.ServiceOption) (*NotificationsV1, error) {
	service, err := secadvisor.NewBaseServiceFromEnvironment(DefaultServiceName, DefaultServiceURL, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not create notifications client")
	}
	return &NotificationsV1{service: service}, nil
}

// Service returns the underlying service configuration.
func (n *NotificationsV1) Service() *secadvisor.BaseService {
	return n.service
}

// ServiceURL returns the API base URL.
func (n *NotificationsV1) ServiceURL() string {
	return n.service.ServiceURL()
}

// SetServiceURL replaces the API base URL.
func (n *NotificationsV1) SetServiceURL(serviceURL string) error {
	return n.service.SetServiceURL(serviceURL)
}
