package findingsv1

import (
	"context"
	"net/http"

	"github.com/ibm-cloud-security/go-secadvisor"
)

var listProvidersOp = secadvisor.Operation{
	ID:          "listProviders",
	Method:      http.MethodGet,
	URLTemplate: "/v1/{account_id}/providers",
}

// ListProvidersOptions are the parameters of ListProviders. Providers are
// sorted by ID; StartProviderID and EndProviderID bound the range.
type ListProvidersOptions struct {
	AccountID *string `validate:"required" param:"accountId"`

	Limit           *int64
	Skip            *int64
	StartProviderID *string
	EndProviderID   *string

	Headers map[string]string
}

type listProvidersQuery struct {
	Limit           *int64  `schema:"limit,omitempty"`
	Skip            *int64  `schema:"skip,omitempty"`
	StartProviderID *string `schema:"start_provider_id,omitempty"`
	EndProviderID   *string `schema:"end_provider_id,omitempty"`
}

// ListProviders lists the providers of an account.
func (f *FindingsV1) ListProviders(ctx context.Context, opts *ListProvidersOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APIListProvidersResponse], error) {
	if opts == nil {
		opts = &ListProvidersOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := f.service.Build(&listProvidersOp, secadvisor.RequestInput{
		Path: map[string]string{"account_id": *opts.AccountID},
		Query: &listProvidersQuery{
			Limit:           opts.Limit,
			Skip:            opts.Skip,
			StartProviderID: opts.StartProviderID,
			EndProviderID:   opts.EndProviderID,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*APIListProvidersResponse](ctx, f.service, req)
}
