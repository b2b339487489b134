package findingsv1

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/ibm-cloud-security/go-secadvisor"
)

// Service defaults.
const (
	DefaultServiceURL  = "https://us-south.secadvisor.cloud.ibm.com/findings"
	DefaultServiceName = "findings-api"
)

// API is the Findings API surface.
//
//go:generate mockery --name=API --output=mocks --outpkg=mocks --filename=findings_api.go
type API interface {
	// PostGraph runs a findings graph query.
	PostGraph(ctx context.Context, opts *PostGraphOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[json.RawMessage], error)

	// CreateNote creates a note for a provider.
	CreateNote(ctx context.Context, opts *CreateNoteOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APINote], error)

	// ListNotes lists the notes of a provider.
	ListNotes(ctx context.Context, opts *ListNotesOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APIListNotesResponse], error)

	// GetNote retrieves a single note.
	GetNote(ctx context.Context, opts *GetNoteOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APINote], error)

	// UpdateNote replaces an existing note.
	UpdateNote(ctx context.Context, opts *UpdateNoteOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APINote], error)

	// DeleteNote removes a note.
	DeleteNote(ctx context.Context, opts *DeleteNoteOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[secadvisor.Empty], error)

	// GetOccurrenceNote retrieves the note an occurrence belongs to.
	GetOccurrenceNote(ctx context.Context, opts *GetOccurrenceNoteOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APINote], error)

	// CreateOccurrence creates an occurrence for a provider.
	CreateOccurrence(ctx context.Context, opts *CreateOccurrenceOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APIOccurrence], error)

	// ListOccurrences lists the occurrences of a provider.
	ListOccurrences(ctx context.Context, opts *ListOccurrencesOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APIListOccurrencesResponse], error)

	// ListNoteOccurrences lists the occurrences attached to a note.
	ListNoteOccurrences(ctx context.Context, opts *ListNoteOccurrencesOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APIListNoteOccurrencesResponse], error)

	// GetOccurrence retrieves a single occurrence.
	GetOccurrence(ctx context.Context, opts *GetOccurrenceOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APIOccurrence], error)

	// UpdateOccurrence replaces an existing occurrence.
	UpdateOccurrence(ctx context.Context, opts *UpdateOccurrenceOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APIOccurrence], error)

	// DeleteOccurrence removes an occurrence.
	DeleteOccurrence(ctx context.Context, opts *DeleteOccurrenceOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[secadvisor.Empty], error)

	// ListProviders lists the providers of an account.
	ListProviders(ctx context.Context, opts *ListProvidersOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APIListProvidersResponse], error)
}

var _ API = (*FindingsV1)(nil)

// FindingsV1 is the Findings API client. It is safe for concurrent use.
type FindingsV1 struct {
	service *secadvisor.BaseService
}

// New creates a Findings client. An authenticator must be supplied with
// secadvisor.WithAuthenticator.
func New(opts ...secadvisor.ServiceOption) (*FindingsV1, error) {
	service, err := secadvisor.NewBaseService(DefaultServiceName, DefaultServiceURL, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not create findings client")
	}
	return &FindingsV1{service: service}, nil
}

// NewFromEnvironment creates a Findings client configured from the
// environment and the credentials file. Explicit options take precedence.
func NewFromEnvironment(opts ...secadvisor.ServiceOption) (*FindingsV1, error) {
	service, err := secadvisor.NewBaseServiceFromEnvironment(DefaultServiceName, DefaultServiceURL, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not create findings client")
	}
	return &FindingsV1{service: service}, nil
}

// Service returns the underlying service configuration.
func (f *FindingsV1) Service() *secadvisor.BaseService {
	return f.service
}

// ServiceURL returns the API base URL.
func (f *FindingsV1) ServiceURL() string {
	return f.service.ServiceURL()
}

// SetServiceURL replaces the API base URL.
func (f *FindingsV1) SetServiceURL(serviceURL string) error {
	return f.service.SetServiceURL(serviceURL)
}
