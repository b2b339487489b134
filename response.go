package secadvisor

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// Empty is the result type of operations that return no data.
type Empty struct{}

// RawResponse is what an Executor hands back for a completed request.
type RawResponse struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
}

// Response is an operation response with its decoded result.
type Response[T any] struct {
	Result     T
	StatusCode int
	Status     string
	Headers    http.Header
	RawBody    []byte
}

// Invoke hands req to the service executor and decodes the JSON body into T.
// Executor errors are returned unmodified. Exactly one of the response and
// the error is non-nil.
func Invoke[T any](ctx context.Context, s *BaseService, req *RequestDescriptor) (*Response[T], error) {
	raw, err := s.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := &Response[T]{
		StatusCode: raw.StatusCode,
		Status:     raw.Status,
		Headers:    raw.Headers,
		RawBody:    raw.Body,
	}

	if _, empty := any(&resp.Result).(*Empty); empty || len(raw.Body) == 0 {
		return resp, nil
	}

	if err := json.Unmarshal(raw.Body, &resp.Result); err != nil {
		return nil, errors.Wrapf(err, "could not parse %s response", req.Operation)
	}

	return resp, nil
}
