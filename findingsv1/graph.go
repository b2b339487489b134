package findingsv1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ibm-cloud-security/go-secadvisor"
)

// Graph query content types.
const (
	GraphContentTypeGraphQL = secadvisor.MediaTypeGraphQL
	GraphContentTypeJSON    = secadvisor.MediaTypeJSON
)

var postGraphOp = secadvisor.Operation{
	ID:          "postGraph",
	Method:      http.MethodPost,
	URLTemplate: "/v1/{account_id}/graph",
}

// PostGraphOptions are the parameters of PostGraph.
type PostGraphOptions struct {
	AccountID *string `validate:"required" param:"accountId"`

	// Body is the query, sent verbatim.
	Body *string `validate:"required" param:"body"`

	// ContentType is GraphContentTypeGraphQL or GraphContentTypeJSON.
	ContentType *string

	Headers map[string]string
}

// PostGraph runs a findings graph query. The result is the raw JSON document
// returned by the service.
func (f *FindingsV1) PostGraph(ctx context.Context, opts *PostGraphOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[json.RawMessage], error) {
	if opts == nil {
		opts = &PostGraphOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	var derived http.Header
	if opts.ContentType != nil {
		derived = http.Header{secadvisor.HeaderContentType: {*opts.ContentType}}
	}

	req, err := f.service.Build(&postGraphOp, secadvisor.RequestInput{
		Path:    map[string]string{"account_id": *opts.AccountID},
		Body:    *opts.Body,
		Derived: derived,
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[json.RawMessage](ctx, f.service, req)
}
