// Package api provides the low-level HTTP transport used to execute
// Security Advisor API requests.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultMaxBodySize = 10 * 1024 * 1024 // 10MB
	defaultUserAgent   = "go-secadvisor/1.0"
)

// Sentinel errors returned while building the outgoing request.
var (
	ErrEmptyPathParam      = errors.New("path parameter is empty")
	ErrUnresolvedPathParam = errors.New("unresolved path parameter")
)

// Authenticator decorates an outgoing request with credentials.
type Authenticator interface {
	Authenticate(req *http.Request) error
}

// Transport handles HTTP communication with the Security Advisor APIs.
type Transport struct {
	HTTPClient *http.Client
	UserAgent  string
	Logger     logrus.FieldLogger
}

// NewTransport creates a Transport with the given configuration.
// A nil httpClient gets a client with the default timeout, a nil logger
// discards everything.
func NewTransport(httpClient *http.Client, logger logrus.FieldLogger) *Transport {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultHTTPTimeout,
		}
	}
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	return &Transport{
		HTTPClient: httpClient,
		UserAgent:  defaultUserAgent,
		Logger:     logger,
	}
}

// Request represents an API request ready to be sent.
type Request struct {
	Method        string
	BaseURL       string
	PathTemplate  string
	PathParams    map[string]string
	Query         url.Values
	Body          any
	Headers       http.Header
	Authenticator Authenticator
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
	Headers    http.Header
}

// Do executes an API request and returns the raw response. Status codes are
// not interpreted here.
func (t *Transport) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := t.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	log := t.Logger.WithFields(logrus.Fields{
		"method": httpReq.Method,
		"url":    httpReq.URL.String(),
	})
	log.Debug("sending request")
	started := time.Now()

	httpResp, err := t.HTTPClient.Do(httpReq)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return nil, errors.Wrap(err, "could not perform request")
	}
	defer func() { _ = httpResp.Body.Close() }()

	// Limit response body size to prevent memory exhaustion
	limitedReader := io.LimitReader(httpResp.Body, defaultMaxBodySize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, errors.Wrap(err, "could not read response body")
	}

	if int64(len(body)) > defaultMaxBodySize {
		return nil, errors.Errorf("response too large: exceeds %d bytes", defaultMaxBodySize)
	}

	log.WithFields(logrus.Fields{
		"status":   httpResp.StatusCode,
		"duration": time.Since(started),
	}).Debug("received response")

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Body:       body,
		Headers:    httpResp.Header,
	}, nil
}

// ExpandPath substitutes every {name} placeholder of template with the
// path-escaped value from params.
func ExpandPath(template string, params map[string]string) (string, error) {
	expanded := template
	for name, value := range params {
		placeholder := "{" + name + "}"
		if !strings.Contains(expanded, placeholder) {
			continue
		}
		if value == "" {
			return "", errors.Wrapf(ErrEmptyPathParam, "%s", name)
		}
		expanded = strings.ReplaceAll(expanded, placeholder, url.PathEscape(value))
	}

	if i := strings.IndexByte(expanded, '{'); i >= 0 {
		end := strings.IndexByte(expanded[i:], '}')
		if end > 0 {
			return "", errors.Wrapf(ErrUnresolvedPathParam, "%s", expanded[i+1:i+end])
		}
	}

	return expanded, nil
}

func (t *Transport) buildRequest(ctx context.Context, req *Request) (*http.Request, error) {
	path, err := ExpandPath(req.PathTemplate, req.PathParams)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(strings.TrimSuffix(req.BaseURL, "/") + path)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse request URL")
	}
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	bodyReader, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, "could not build request")
	}

	httpReq.Header.Set("User-Agent", t.UserAgent)
	for key, values := range req.Headers {
		httpReq.Header[key] = append([]string(nil), values...)
	}

	if req.Authenticator != nil {
		if err := req.Authenticator.Authenticate(httpReq); err != nil {
			return nil, errors.Wrap(err, "could not authenticate request")
		}
	}

	return httpReq, nil
}

// encodeBody sends strings, byte slices and readers as-is and everything
// else as JSON.
func encodeBody(body any) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case io.Reader:
		return b, nil
	case []byte:
		return bytes.NewReader(b), nil
	case string:
		return strings.NewReader(b), nil
	case *string:
		if b == nil {
			return nil, nil
		}
		return strings.NewReader(*b), nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "could not serialize request body")
	}
	return bytes.NewReader(data), nil
}
