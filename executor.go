package secadvisor

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ibm-cloud-security/go-secadvisor/internal/api"
)

// Configuration is the read-only view of a service handed to the executor
// with every request.
type Configuration struct {
	ServiceName   string
	ServiceURL    string
	Authenticator Authenticator
}

// Executor performs the network call for a request descriptor. Failed calls,
// including HTTP error statuses, are reported through the error.
type Executor interface {
	Execute(ctx context.Context, cfg *Configuration, req *RequestDescriptor) (*RawResponse, error)
}

// httpExecutor is the default Executor backed by net/http.
type httpExecutor struct {
	transport *api.Transport
}

func newHTTPExecutor(httpClient *http.Client, logger logrus.FieldLogger, userAgent string) *httpExecutor {
	transport := api.NewTransport(httpClient, logger)
	if userAgent != "" {
		transport.UserAgent = userAgent
	}
	return &httpExecutor{transport: transport}
}

func (e *httpExecutor) Execute(ctx context.Context, cfg *Configuration, req *RequestDescriptor) (*RawResponse, error) {
	if l, ok := e.transport.Logger.(logrus.Ext1FieldLogger); ok {
		l.Tracef("executing %s", req)
	}

	resp, err := e.transport.Do(ctx, &api.Request{
		Method:        req.Method,
		BaseURL:       cfg.ServiceURL,
		PathTemplate:  req.URLTemplate,
		PathParams:    req.PathParams,
		Query:         req.Query,
		Body:          req.Body,
		Headers:       req.Headers,
		Authenticator: cfg.Authenticator,
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, parseError(resp.StatusCode, resp.Status, resp.Body, resp.Headers)
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}
