package secadvisor

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ServiceOption configures a BaseService.
type ServiceOption func(*serviceConfig)

type serviceConfig struct {
	serviceName    string
	serviceURL     string
	explicitURL    bool
	authenticator  Authenticator
	httpClient     *http.Client
	timeout        time.Duration
	userAgent      string
	headers        map[string]string
	logger         logrus.FieldLogger
	executor       Executor
	transactionIDs bool
}

// WithServiceName overrides the service name used for external
// configuration lookup and the analytics header.
func WithServiceName(name string) ServiceOption {
	return func(c *serviceConfig) {
		c.serviceName = name
	}
}

// WithServiceURL sets the API base URL.
func WithServiceURL(url string) ServiceOption {
	return func(c *serviceConfig) {
		c.serviceURL = url
	}
}

// WithAuthenticator sets the authenticator applied to every request.
func WithAuthenticator(a Authenticator) ServiceOption {
	return func(c *serviceConfig) {
		c.authenticator = a
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ServiceOption {
	return func(c *serviceConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the default request timeout.
// Note: This option is ignored when WithHTTPClient is used;
// set the timeout directly on the provided client instead.
func WithTimeout(d time.Duration) ServiceOption {
	return func(c *serviceConfig) {
		c.timeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) ServiceOption {
	return func(c *serviceConfig) {
		c.userAgent = ua
	}
}

// WithHeaders sets default headers included with every request.
func WithHeaders(headers map[string]string) ServiceOption {
	return func(c *serviceConfig) {
		if c.headers == nil {
			c.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithLogger sets the logger used by the HTTP executor.
func WithLogger(logger logrus.FieldLogger) ServiceOption {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

// WithExecutor replaces the HTTP executor. WithHTTPClient, WithTimeout,
// WithUserAgent and WithLogger only affect the default executor.
func WithExecutor(e Executor) ServiceOption {
	return func(c *serviceConfig) {
		c.executor = e
	}
}

// WithTransactionIDs adds a generated Transaction-Id header to every request
// that does not carry one from the caller.
func WithTransactionIDs() ServiceOption {
	return func(c *serviceConfig) {
		c.transactionIDs = true
	}
}

// RequestOption configures individual API requests.
type RequestOption func(*requestConfig)

type requestConfig struct {
	headers http.Header
}

func newRequestConfig() *requestConfig {
	return &requestConfig{
		headers: make(http.Header),
	}
}

func (r *requestConfig) apply(opts ...RequestOption) {
	for _, opt := range opts {
		opt(r)
	}
}

// WithHeader adds a custom header to a request.
func WithHeader(key, value string) RequestOption {
	return func(r *requestConfig) {
		r.headers.Set(key, value)
	}
}

// WithRequestHeaders adds multiple custom headers to a request.
func WithRequestHeaders(headers map[string]string) RequestOption {
	return func(r *requestConfig) {
		for k, v := range headers {
			r.headers.Set(k, v)
		}
	}
}

// WithTransactionID sets the Transaction-Id header for tracing.
func WithTransactionID(id string) RequestOption {
	return WithHeader(HeaderTransactionID, id)
}
