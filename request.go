package secadvisor

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
)

// Media types used by the Security Advisor APIs.
const (
	MediaTypeJSON    = "application/json"
	MediaTypeGraphQL = "application/graphql"
)

// Header names set by the builder.
const (
	HeaderAccept          = "Accept"
	HeaderContentType     = "Content-Type"
	HeaderSDKAnalytics    = "X-IBMCloud-SDK-Analytics"
	HeaderTransactionID   = "Transaction-Id"
	HeaderReplaceIfExists = "Replace-If-Exists"
)

var queryEncoder = schema.NewEncoder()

// Operation is the static definition of one REST call.
type Operation struct {
	// ID is the operation identifier reported in the analytics header.
	ID string

	Method      string
	URLTemplate string

	// ContentType is sent for operations with a JSON request body.
	ContentType string
}

// RequestInput carries the per-call values mapped by an operation.
type RequestInput struct {
	// Path maps URL template placeholders to raw values.
	Path map[string]string

	// Query is a struct with `schema` tags; nil pointer fields tagged
	// omitempty are left out.
	Query any

	// Body is serialized by the executor. Strings and byte slices are sent
	// verbatim, anything else as JSON.
	Body any

	// Derived holds headers computed from operation parameters.
	Derived http.Header

	// Headers are the caller overrides from the options struct.
	Headers map[string]string

	// Options are per-call request options, applied after Headers.
	Options []RequestOption
}

// RequestDescriptor is the assembled request for one call, before
// transmission. It is built fresh per call and not modified afterwards.
type RequestDescriptor struct {
	Operation   string
	Method      string
	URLTemplate string
	PathParams  map[string]string
	Query       url.Values
	Body        any
	Headers     http.Header
}

// String renders the descriptor for trace logging.
func (d *RequestDescriptor) String() string {
	return litter.Options{HidePrivateFields: true, Compact: true}.Sdump(d)
}

// Build assembles the descriptor for op. Headers are merged in this order,
// later entries winning: operation headers, service defaults, derived
// headers, caller headers, request options.
func (s *BaseService) Build(op *Operation, in RequestInput) (*RequestDescriptor, error) {
	query := url.Values{}
	if in.Query != nil {
		if err := queryEncoder.Encode(in.Query, query); err != nil {
			return nil, errors.Wrapf(err, "could not encode query for %s", op.ID)
		}
	}

	path := make(map[string]string, len(in.Path))
	for k, v := range in.Path {
		path[k] = v
	}

	headers := http.Header{}
	headers.Set(HeaderSDKAnalytics, s.analytics(op))
	headers.Set(HeaderAccept, MediaTypeJSON)
	if op.ContentType != "" {
		headers.Set(HeaderContentType, op.ContentType)
	}

	for k, v := range s.defaultHeaders {
		headers.Set(k, v)
	}
	if s.transactionIDs {
		headers.Set(HeaderTransactionID, s.newTransactionID())
	}

	for k, values := range in.Derived {
		headers[http.CanonicalHeaderKey(k)] = append([]string(nil), values...)
	}

	for k, v := range in.Headers {
		headers.Set(k, v)
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(in.Options...)
	for k, values := range reqCfg.headers {
		headers[k] = append([]string(nil), values...)
	}

	return &RequestDescriptor{
		Operation:   op.ID,
		Method:      op.Method,
		URLTemplate: op.URLTemplate,
		PathParams:  path,
		Query:       query,
		Body:        in.Body,
		Headers:     headers,
	}, nil
}

func (s *BaseService) analytics(op *Operation) string {
	return fmt.Sprintf("service_name=%s;service_version=V1;operation_id=%s",
		strings.ReplaceAll(s.name, "-", "_"), op.ID)
}
