package secadvisor

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ibm-cloud-security/go-secadvisor/internal/auth"
)

// Default configuration values.
const defaultTimeout = 30 * time.Second

// BaseService holds the configuration shared by the API clients and hands
// request descriptors to its executor. It is safe for concurrent use.
type BaseService struct {
	name             string
	defaultHeaders   map[string]string
	authenticator    Authenticator
	executor         Executor
	transactionIDs   bool
	newTransactionID func() string

	mu         sync.RWMutex
	serviceURL string
}

// NewBaseService creates a service named name. defaultURL is used unless
// WithServiceURL is given. An authenticator is required.
func NewBaseService(name, defaultURL string, opts ...ServiceOption) (*BaseService, error) {
	cfg := newServiceConfig(name, defaultURL, opts...)
	return newBaseService(cfg)
}

// NewBaseServiceFromEnvironment is NewBaseService with the service URL and
// authenticator taken from external configuration when the options do not
// set them. See the package documentation for the variables read.
func NewBaseServiceFromEnvironment(name, defaultURL string, opts ...ServiceOption) (*BaseService, error) {
	cfg := newServiceConfig(name, defaultURL, opts...)

	props, err := auth.Load(cfg.serviceName)
	if err != nil {
		return nil, errors.Wrap(err, "could not load external configuration")
	}

	if cfg.authenticator == nil {
		a, err := authenticatorFromProperties(props)
		if err != nil {
			return nil, err
		}
		cfg.authenticator = a
	}

	if !cfg.explicitURL && props.URL != "" {
		cfg.serviceURL = props.URL
	}

	if props.DisableSSL && cfg.httpClient == nil {
		cfg.httpClient = &http.Client{
			Timeout: cfg.timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // opted in through DISABLE_SSL
			},
		}
	}

	return newBaseService(cfg)
}

func newServiceConfig(name, defaultURL string, opts ...ServiceOption) *serviceConfig {
	cfg := &serviceConfig{
		serviceName: name,
		timeout:     defaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.serviceURL == "" {
		cfg.serviceURL = defaultURL
	} else {
		cfg.explicitURL = true
	}

	return cfg
}

func newBaseService(cfg *serviceConfig) (*BaseService, error) {
	if cfg.authenticator == nil {
		return nil, ErrNoAuthenticator
	}
	if err := cfg.authenticator.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid authenticator")
	}

	if err := checkServiceURL(cfg.serviceURL); err != nil {
		return nil, err
	}

	executor := cfg.executor
	if executor == nil {
		httpClient := cfg.httpClient
		if httpClient == nil {
			httpClient = &http.Client{
				Timeout: cfg.timeout,
			}
		}
		executor = newHTTPExecutor(httpClient, cfg.logger, cfg.userAgent)
	}

	headers := make(map[string]string, len(cfg.headers))
	for k, v := range cfg.headers {
		headers[k] = v
	}

	return &BaseService{
		name:             cfg.serviceName,
		defaultHeaders:   headers,
		authenticator:    cfg.authenticator,
		executor:         executor,
		transactionIDs:   cfg.transactionIDs,
		newTransactionID: uuid.NewString,
		serviceURL:       cfg.serviceURL,
	}, nil
}

func checkServiceURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrapf(ErrInvalidServiceURL, "%q: %v", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return errors.Wrapf(ErrInvalidServiceURL, "%q", raw)
	}
	return nil
}

// ServiceName returns the service name.
func (s *BaseService) ServiceName() string {
	return s.name
}

// ServiceURL returns the configured API base URL.
func (s *BaseService) ServiceURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.serviceURL
}

// SetServiceURL replaces the API base URL. A URL without a scheme or host
// is rejected with ErrInvalidServiceURL and the current URL is kept.
func (s *BaseService) SetServiceURL(serviceURL string) error {
	if err := checkServiceURL(serviceURL); err != nil {
		return err
	}
	s.mu.Lock()
	s.serviceURL = serviceURL
	s.mu.Unlock()
	return nil
}

// Authenticator returns the configured authenticator.
func (s *BaseService) Authenticator() Authenticator {
	return s.authenticator
}

// Configuration returns a snapshot of the service configuration.
func (s *BaseService) Configuration() *Configuration {
	return &Configuration{
		ServiceName:   s.name,
		ServiceURL:    s.ServiceURL(),
		Authenticator: s.authenticator,
	}
}

// Execute hands req to the executor together with the service configuration.
func (s *BaseService) Execute(ctx context.Context, req *RequestDescriptor) (*RawResponse, error) {
	return s.executor.Execute(ctx, s.Configuration(), req)
}
