package findingsv1

import (
	"context"
	"net/http"
	"time"

	"github.com/ibm-cloud-security/go-secadvisor"
)

const (
	notesURL = "/v1/{account_id}/providers/{provider_id}/notes"
	noteURL  = "/v1/{account_id}/providers/{provider_id}/notes/{note_id}"
)

var (
	createNoteOp = secadvisor.Operation{
		ID:          "createNote",
		Method:      http.MethodPost,
		URLTemplate: notesURL,
		ContentType: secadvisor.MediaTypeJSON,
	}
	listNotesOp = secadvisor.Operation{
		ID:          "listNotes",
		Method:      http.MethodGet,
		URLTemplate: notesURL,
	}
	getNoteOp = secadvisor.Operation{
		ID:          "getNote",
		Method:      http.MethodGet,
		URLTemplate: noteURL,
	}
	updateNoteOp = secadvisor.Operation{
		ID:          "updateNote",
		Method:      http.MethodPut,
		URLTemplate: noteURL,
		ContentType: secadvisor.MediaTypeJSON,
	}
	deleteNoteOp = secadvisor.Operation{
		ID:          "deleteNote",
		Method:      http.MethodDelete,
		URLTemplate: noteURL,
	}
	getOccurrenceNoteOp = secadvisor.Operation{
		ID:          "getOccurrenceNote",
		Method:      http.MethodGet,
		URLTemplate: "/v1/{account_id}/providers/{provider_id}/occurrences/{occurrence_id}/note",
	}
)

// CreateNoteOptions are the parameters of CreateNote.
type CreateNoteOptions struct {
	AccountID        *string   `validate:"required" param:"accountId"`
	ProviderID       *string   `validate:"required" param:"providerId"`
	ShortDescription *string   `validate:"required" param:"shortDescription"`
	LongDescription  *string   `validate:"required" param:"longDescription"`
	Kind             *string   `validate:"required" param:"kind"`
	ID               *string   `validate:"required" param:"id"`
	ReportedBy       *Reporter `validate:"required" param:"reportedBy"`

	RelatedURL     []APINoteRelatedURL
	ExpirationTime *time.Time
	CreateTime     *time.Time
	UpdateTime     *time.Time
	Shared         *bool
	Finding        *FindingType
	Kpi            *KpiType
	Card           *Card
	Section        *Section

	Headers map[string]string
}

// ListNotesOptions are the parameters of ListNotes.
type ListNotesOptions struct {
	AccountID  *string `validate:"required" param:"accountId"`
	ProviderID *string `validate:"required" param:"providerId"`

	PageSize  *int64
	PageToken *string

	Headers map[string]string
}

// GetNoteOptions are the parameters of GetNote.
type GetNoteOptions struct {
	AccountID  *string `validate:"required" param:"accountId"`
	ProviderID *string `validate:"required" param:"providerId"`
	NoteID     *string `validate:"required" param:"noteId"`

	Headers map[string]string
}

// UpdateNoteOptions are the parameters of UpdateNote.
type UpdateNoteOptions struct {
	AccountID        *string   `validate:"required" param:"accountId"`
	ProviderID       *string   `validate:"required" param:"providerId"`
	NoteID           *string   `validate:"required" param:"noteId"`
	ShortDescription *string   `validate:"required" param:"shortDescription"`
	LongDescription  *string   `validate:"required" param:"longDescription"`
	Kind             *string   `validate:"required" param:"kind"`
	ID               *string   `validate:"required" param:"id"`
	ReportedBy       *Reporter `validate:"required" param:"reportedBy"`

	RelatedURL     []APINoteRelatedURL
	ExpirationTime *time.Time
	CreateTime     *time.Time
	UpdateTime     *time.Time
	Shared         *bool
	Finding        *FindingType
	Kpi            *KpiType
	Card           *Card
	Section        *Section

	Headers map[string]string
}

// DeleteNoteOptions are the parameters of DeleteNote.
type DeleteNoteOptions struct {
	AccountID  *string `validate:"required" param:"accountId"`
	ProviderID *string `validate:"required" param:"providerId"`
	NoteID     *string `validate:"required" param:"noteId"`

	Headers map[string]string
}

// GetOccurrenceNoteOptions are the parameters of GetOccurrenceNote.
type GetOccurrenceNoteOptions struct {
	AccountID    *string `validate:"required" param:"accountId"`
	ProviderID   *string `validate:"required" param:"providerId"`
	OccurrenceID *string `validate:"required" param:"occurrenceId"`

	Headers map[string]string
}

// NoteBody is the request body of CreateNote and UpdateNote. Nil fields are
// left out of the serialized document.
type NoteBody struct {
	ShortDescription *string             `json:"short_description"`
	LongDescription  *string             `json:"long_description"`
	Kind             *string             `json:"kind"`
	ID               *string             `json:"id"`
	ReportedBy       *Reporter           `json:"reported_by"`
	RelatedURL       []APINoteRelatedURL `json:"related_url,omitzero"`
	ExpirationTime   *time.Time          `json:"expiration_time,omitempty"`
	CreateTime       *time.Time          `json:"create_time,omitempty"`
	UpdateTime       *time.Time          `json:"update_time,omitempty"`
	Shared           *bool               `json:"shared,omitempty"`
	Finding          *FindingType        `json:"finding,omitempty"`
	Kpi              *KpiType            `json:"kpi,omitempty"`
	Card             *Card               `json:"card,omitempty"`
	Section          *Section            `json:"section,omitempty"`
}

// pageQuery is the paging query shared by the list operations.
type pageQuery struct {
	PageSize  *int64  `schema:"page_size,omitempty"`
	PageToken *string `schema:"page_token,omitempty"`
}

// CreateNote creates a note for a provider.
func (f *FindingsV1) CreateNote(ctx context.Context, opts *CreateNoteOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APINote], error) {
	if opts == nil {
		opts = &CreateNoteOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := f.service.Build(&createNoteOp, secadvisor.RequestInput{
		Path: map[string]string{
			"account_id":  *opts.AccountID,
			"provider_id": *opts.ProviderID,
		},
		Body: &NoteBody{
			ShortDescription: opts.ShortDescription,
			LongDescription:  opts.LongDescription,
			Kind:             opts.Kind,
			ID:               opts.ID,
			ReportedBy:       opts.ReportedBy,
			RelatedURL:       opts.RelatedURL,
			ExpirationTime:   opts.ExpirationTime,
			CreateTime:       opts.CreateTime,
			UpdateTime:       opts.UpdateTime,
			Shared:           opts.Shared,
			Finding:          opts.Finding,
			Kpi:              opts.Kpi,
			Card:             opts.Card,
			Section:          opts.Section,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*APINote](ctx, f.service, req)
}

// ListNotes lists the notes of a provider, one page per call.
func (f *FindingsV1) ListNotes(ctx context.Context, opts *ListNotesOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APIListNotesResponse], error) {
	if opts == nil {
		opts = &ListNotesOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := f.service.Build(&listNotesOp, secadvisor.RequestInput{
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

	return secadvisor.Invoke[*APIListNotesResponse](ctx, f.service, req)
}

// GetNote retrieves a single note.
func (f *FindingsV1) GetNote(ctx context.Context, opts *GetNoteOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APINote], error) {
	if opts == nil {
		opts = &GetNoteOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := f.service.Build(&getNoteOp, secadvisor.RequestInput{
		Path: map[string]string{
			"account_id":  *opts.AccountID,
			"provider_id": *opts.ProviderID,
			"note_id":     *opts.NoteID,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*APINote](ctx, f.service, req)
}

// UpdateNote replaces an existing note.
func (f *FindingsV1) UpdateNote(ctx context.Context, opts *UpdateNoteOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APINote], error) {
	if opts == nil {
		opts = &UpdateNoteOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := f.service.Build(&updateNoteOp, secadvisor.RequestInput{
		Path: map[string]string{
			"account_id":  *opts.AccountID,
			"provider_id": *opts.ProviderID,
			"note_id":     *opts.NoteID,
		},
		Body: &NoteBody{
			ShortDescription: opts.ShortDescription,
			LongDescription:  opts.LongDescription,
			Kind:             opts.Kind,
			ID:               opts.ID,
			ReportedBy:       opts.ReportedBy,
			RelatedURL:       opts.RelatedURL,
			ExpirationTime:   opts.ExpirationTime,
			CreateTime:       opts.CreateTime,
			UpdateTime:       opts.UpdateTime,
			Shared:           opts.Shared,
			Finding:          opts.Finding,
			Kpi:              opts.Kpi,
			Card:             opts.Card,
			Section:          opts.Section,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[*APINote](ctx, f.service, req)
}

// DeleteNote removes a note.
func (f *FindingsV1) DeleteNote(ctx context.Context, opts *DeleteNoteOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[secadvisor.Empty], error) {
	if opts == nil {
		opts = &DeleteNoteOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := f.service.Build(&deleteNoteOp, secadvisor.RequestInput{
		Path: map[string]string{
			"account_id":  *opts.AccountID,
			"provider_id": *opts.ProviderID,
			"note_id":     *opts.NoteID,
		},
		Headers: opts.Headers,
		Options: reqOpts,
	})
	if err != nil {
		return nil, err
	}

	return secadvisor.Invoke[secadvisor.Empty](ctx, f.service, req)
}

// GetOccurrenceNote retrieves the note an occurrence belongs to.
func (f *FindingsV1) GetOccurrenceNote(ctx context.Context, opts *GetOccurrenceNoteOptions, reqOpts ...secadvisor.RequestOption) (*secadvisor.Response[*APINote], error) {
	if opts == nil {
		opts = &GetOccurrenceNoteOptions{}
	}
	if err := secadvisor.ValidateRequired(opts); err != nil {
		return nil, err
	}

	req, err := f.service.Build(&getOccurrenceNoteOp, secadvisor.RequestInput{
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

	return secadvisor.Invoke[*APINote](ctx, f.service, req)
}
