package findingsv1

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/ibm-cloud-security/go-secadvisor"
)

const (
	occurrencesURL = "/v1/{account_id}/providers/{provider_id}/occurrences"
	occurrenceURL  = "/v1/{account_id}/providers/{provider_id}/occurrences/{occurrence_id}"
)

var (
	createOccurrenceOp = secadvisor.Operation{
		ID:          "createOccurrence",
		Method:      http.MethodPost,
		URLTemplate: occurrencesURL,
		ContentType: secadvisor.MediaTypeJSON,
	}
	listOccurrencesOp = secadvisor.Operation{
		ID:          "listOccurrences",
		Method:      http.MethodGet,
		URLTemplate: occurrencesURL,
	}
	listNoteOccurrencesOp = secadvisor.Operation{
		ID:          "listNoteOccurrences",
		Method:      http.MethodGet,
		URLTemplate: "/v1/{account_id}/providers/{provider_id}/notes/{note_id}/occurrences",
	}
	getOccurrenceOp = secadvisor.Operation{
		ID:          "getOccurrence",
		Method:      http.MethodGet,
		URLTemplate: occurrenceURL,
	}
	updateOccurrenceOp = secadvisor.Operation{
		ID:          "updateOccurrence",
		Method:      http.MethodPut,
		URLTemplate: occurrenceURL,
		ContentType: secadvisor.MediaTypeJSON,
	}
	deleteOccurrenceOp = secadvisor.Operation{
		ID:          "deleteOccurrence",
		Method:      http.MethodDelete,
		URLTemplate: occurrenceURL,
	}
)

// CreateOccurrenceOptions are the parameters of CreateOccurrence.
type CreateOccurrenceOptions struct {
	AccountID  *string `validate:"required" param:"accountId"`
	ProviderID *string `validate:"required" param:"providerId"`

	// NoteName is "{account_id}/providers/{provider_id}/notes/{note_id}".
	NoteName *string `validate:"required" param:"noteName"`
	Kind     *string `validate:"required" param:"kind"`
	ID       *string `validate:"required" param:"id"`

	ResourceURL *string
	Remediation *string
	CreateTime  *time.Time
	UpdateTime  *time.Time
	Context     *Context
	Finding     *Finding
	Kpi         *Kpi

	// ReplaceIfExists is sent as the Replace-If-Exists header.
	ReplaceIfExists *bool

	Headers map[string]string
}

// ListOccurrencesOptions are the parameters of ListOccurrences.
type ListOccurrencesOptions struct {
	AccountID  *string `validate:"required" param:"accountId"`
	ProviderID *string `validate:"required" param:"providerId"`

	PageSize  *int64
	PageToken *string

	Headers map[string]string
}

// ListNoteOccurrencesOptions are the parameters of ListNoteOccurrences.
type ListNoteOccurrencesOptions struct {
	AccountID  *string `validate:"required" param:"accountId"`
	ProviderID *string `validate:"required" param:"providerId"`
	NoteID     *string `validate:"required" param:"noteId"`

	PageSize  *int64
	PageToken *string

	Headers map[string]string
}

// GetOccurrenceOptions are the parameters of GetOccurrence.
type GetOccurrenceOptions struct {
	AccountID    *string `validate:"required" param:"accountId"`
	ProviderID   *string `validate:"required" param:"providerId"`
	OccurrenceID *string `validate:"required" param:"occurrenceId"`

	Headers map[string]string
}

// UpdateOccurrenceOptions are the parameters of UpdateOccurrence.
type UpdateOccurrenceOptions struct {
	AccountID    *string `validate:"required" param:"accountId"`
	ProviderID   *string `validate:"required" param:"providerId"`
	OccurrenceID *string `validate:"required" param:"occurrenceId"`
	NoteName     *string `validate:"required" param:"noteName"`
	Kind         *string `validate:"required" param:"kind"`
	ID           *string `validate:"required" param:"id"`

	ResourceURL *string
	Remediation *string
	CreateTime  *time.Time
	UpdateTime  *time.Time
	Context     *Context
	Finding     *Finding
	Kpi         *Kpi

	Headers map[string]string
}

// DeleteOccurrenceOptions are the parameters of DeleteOccurrence.
type DeleteOccurrenceOptions struct {
	AccountID    *string `validate:"required" param:"accountId"`
	ProviderID   *string `validate:"required" param:"providerId"`
	OccurrenceID *string `validate:"required" param:"occurrenceId"`

	Headers map[string]string
}

// OccurrenceBody is the request body of CreateOccurrence and
// UpdateOccurrence. Nil fields are left out of the serialized document.
type OccurrenceBody struct {
	NoteName    *string    `json:"note_name"`
	Kind        *string    `json:"kind"`
	ID          *string    `json:"id"`
	ResourceURL *string    `json:"resource_url,omitempty"`
	Remediation *string    `json:"remediation,omitempty"`
	CreateTime  *time.Time `json:"create_time,omitempty"`
	UpdateTime  *time.Time `json:"update_time,omitempty"`
	Context     *Context   `json:"context,omitempty"`
	Finding     *Finding   `json:"finding,omitempty"`
	Kpi         *Kpi       `json:"kpi,omitempty"`
}

// CreateOccurrence creates an occurrence for a provider. With
// ReplaceIfExists set to true an existing occurrence with the same ID is
// replaced instead of failing with a conflict.
func (f *FindingsV1) CreateOccurrence(ctx context.Context, opts *CreateOccurrenceOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APIOccurrence], error) {
	if opts == nil {
		opts = &CreateOccurrenceOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	var derived http.Header
	if opts.ReplaceIfExists != nil {
		derived = http.Header{secadvisor.HeaderReplaceIfExists: {strconv.FormatBool(*opts.ReplaceIfExists)}}
	}

	req, err := f.service.Build(&createOccurrenceOp, secadvisor.RequestInput{
		Path: map[string]string{
			"account_id":  *opts.AccountID,
			"provider_id": *opts.ProviderID,
		},
		Body: &OccurrenceBody{
			NoteName:    opts.NoteName,
			Kind:        opts.Kind,
			ID:          opts.ID,
			ResourceURL: opts.ResourceURL,
			Remediation: opts.Remediation,
			CreateTime:  opts.CreateTime,
			UpdateTime:  opts.UpdateTime,
			Context:     opts.Context,
			Finding:     opts.Finding,
			Kpi:         opts.Kpi,
		},
		Derived: derived,
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*APIOccurrence](ctx, f.service, req)
}

// ListOccurrences lists the occurrences of a provider, one page per call.
func (f *FindingsV1) ListOccurrences(ctx context.Context, opts *ListOccurrencesOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APIListOccurrencesResponse], error) {
	if opts == nil {
		opts = &ListOccurrencesOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := f.service.Build(&listOccurrencesOp, secadvisor.RequestInput{
		Path: map[string]string{
			"account_id":  *opts.AccountID,
			"provider_id": *opts.ProviderID,
		},
		Query: &pageQuery{
			PageSize:  opts.PageSize,
			PageToken: opts.PageToken,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*APIListOccurrencesResponse](ctx, f.service, req)
}

// ListNoteOccurrences lists the occurrences attached to a note, one page per
// call.
func (f *FindingsV1) ListNoteOccurrences(ctx context.Context, opts *ListNoteOccurrencesOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APIListNoteOccurrencesResponse], error) {
	if opts == nil {
		opts = &ListNoteOccurrencesOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := f.service.Build(&listNoteOccurrencesOp, secadvisor.RequestInput{
		Path: map[string]string{
			"account_id":  *opts.AccountID,
			"provider_id": *opts.ProviderID,
			"note_id":     *opts.NoteID,
		},
		Query: &pageQuery{
			PageSize:  opts.PageSize,
			PageToken: opts.PageToken,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*APIListNoteOccurrencesResponse](ctx, f.service, req)
}

// GetOccurrence retrieves a single occurrence.
func (f *FindingsV1) GetOccurrence(ctx context.Context, opts *GetOccurrenceOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APIOccurrence], error) {
	if opts == nil {
		opts = &GetOccurrenceOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := f.service.Build(&getOccurrenceOp, secadvisor.RequestInput{
		Path: map[string]string{
			"account_id":    *opts.AccountID,
			"provider_id":   *opts.ProviderID,
			"occurrence_id": *opts.OccurrenceID,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*APIOccurrence](ctx, f.service, req)
}

// UpdateOccurrence replaces an existing occurrence.
func (f *FindingsV1) UpdateOccurrence(ctx context.Context, opts *UpdateOccurrenceOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APIOccurrence], error) {
	if opts == nil {
		opts = &UpdateOccurrenceOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := f.service.Build(&updateOccurrenceOp, secadvisor.RequestInput{
		Path: map[string]string{
			"account_id":    *opts.AccountID,
			"provider_id":   *opts.ProviderID,
			"occurrence_id": *opts.OccurrenceID,
		},
		Body: &OccurrenceBody{
			NoteName:    opts.NoteName,
			Kind:        opts.Kind,
			ID:          opts.ID,
			ResourceURL: opts.ResourceURL,
			Remediation: opts.Remediation,
			CreateTime:  opts.CreateTime,
			UpdateTime:  opts.UpdateTime,
			Context:     opts.Context,
			Finding:     opts.Finding,
			Kpi:         opts.Kpi,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*APIOccurrence](ctx, f.service, req)
}

// DeleteOccurrence removes an occurrence.
func (f *FindingsV1) DeleteOccurrence(ctx context.Context, opts *DeleteOccurrenceOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[secadvisor.Empty], error) {
	if opts == nil {
		opts = &DeleteOccurrenceOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := f.service.Build(&deleteOccurrenceOp, secadvisor.RequestInput{
		Path: map[string]string{
			"account_id":    *opts.AccountID,
			"provider_id":   *opts.ProviderID,
			"occurrence_id": *opts.OccurrenceID,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[secadvisor.Empty](ctx, f.service, req)
}
