package findingsv1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibm-cloud-security/go-secadvisor"
	"github.com/ibm-cloud-security/go-secadvisor/findingsv1"
)

var (
	sp = secadvisor.StringPtr
	ip = secadvisor.Int64Ptr
	bp = secadvisor.BoolPtr
)

func TestMissingRequiredParameters(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		missing string
		nilOpts func(c *findingsv1.FindingsV1) error
		empty   func(c *findingsv1.FindingsV1) error
	}{
		{
			name:    "PostGraph",
			missing: "accountId, body",
			nilOpts: func(c *findingsv1.FindingsV1) error { _, err := c.PostGraph(ctx, nil); return err },
			empty: func(c *findingsv1.FindingsV1) error {
				_, err := c.PostGraph(ctx, &findingsv1.PostGraphOptions{ContentType: sp(findingsv1.GraphContentTypeGraphQL)})
				return err
			},
		},
		{
			name:    "CreateNote",
			missing: "accountId, providerId, shortDescription, longDescription, kind, id, reportedBy",
			nilOpts: func(c *findingsv1.FindingsV1) error { _, err := c.CreateNote(ctx, nil); return err },
			empty: func(c *findingsv1.FindingsV1) error {
				_, err := c.CreateNote(ctx, &findingsv1.CreateNoteOptions{Shared: bp(true)})
				return err
			},
		},
		{
			name:    "ListNotes",
			missing: "accountId, providerId",
			nilOpts: func(c *findingsv1.FindingsV1) error { _, err := c.ListNotes(ctx, nil); return err },
			empty: func(c *findingsv1.FindingsV1) error {
				_, err := c.ListNotes(ctx, &findingsv1.ListNotesOptions{PageSize: ip(10)})
				return err
			},
		},
		{
			name:    "GetNote",
			missing: "accountId, providerId, noteId",
			nilOpts: func(c *findingsv1.FindingsV1) error { _, err := c.GetNote(ctx, nil); return err },
			empty: func(c *findingsv1.FindingsV1) error {
				_, err := c.GetNote(ctx, &findingsv1.GetNoteOptions{})
				return err
			},
		},
		{
			name:    "UpdateNote",
			missing: "accountId, providerId, noteId, shortDescription, longDescription, kind, id, reportedBy",
			nilOpts: func(c *findingsv1.FindingsV1) error { _, err := c.UpdateNote(ctx, nil); return err },
			empty: func(c *findingsv1.FindingsV1) error {
				_, err := c.UpdateNote(ctx, &findingsv1.UpdateNoteOptions{})
				return err
			},
		},
		{
			name:    "DeleteNote",
			missing: "accountId, providerId, noteId",
			nilOpts: func(c *findingsv1.FindingsV1) error { _, err := c.DeleteNote(ctx, nil); return err },
			empty: func(c *findingsv1.FindingsV1) error {
				_, err := c.DeleteNote(ctx, &findingsv1.DeleteNoteOptions{})
				return err
			},
		},
		{
			name:    "GetOccurrenceNote",
			missing: "accountId, providerId, occurrenceId",
			nilOpts: func(c *findingsv1.FindingsV1) error { _, err := c.GetOccurrenceNote(ctx, nil); return err },
			empty: func(c *findingsv1.FindingsV1) error {
				_, err := c.GetOccurrenceNote(ctx, &findingsv1.GetOccurrenceNoteOptions{})
				return err
			},
		},
		{
			name:    "CreateOccurrence",
			missing: "accountId, providerId, noteName, kind, id",
			nilOpts: func(c *findingsv1.FindingsV1) error { _, err := c.CreateOccurrence(ctx, nil); return err },
			empty: func(c *findingsv1.FindingsV1) error {
				_, err := c.CreateOccurrence(ctx, &findingsv1.CreateOccurrenceOptions{ReplaceIfExists: bp(true)})
				return err
			},
		},
		{
			name:    "ListOccurrences",
			missing: "accountId, providerId",
			nilOpts: func(c *findingsv1.FindingsV1) error { _, err := c.ListOccurrences(ctx, nil); return err },
			empty: func(c *findingsv1.FindingsV1) error {
				_, err := c.ListOccurrences(ctx, &findingsv1.ListOccurrencesOptions{})
				return err
			},
		},
		{
			name:    "ListNoteOccurrences",
			missing: "accountId, providerId, noteId",
			nilOpts: func(c *findingsv1.FindingsV1) error { _, err := c.ListNoteOccurrences(ctx, nil); return err },
			empty: func(c *findingsv1.FindingsV1) error {
				_, err := c.ListNoteOccurrences(ctx, &findingsv1.ListNoteOccurrencesOptions{})
				return err
			},
		},
		{
			name:    "GetOccurrence",
			missing: "accountId, providerId, occurrenceId",
			nilOpts: func(c *findingsv1.FindingsV1) error { _, err := c.GetOccurrence(ctx, nil); return err },
			empty: func(c *findingsv1.FindingsV1) error {
				_, err := c.GetOccurrence(ctx, &findingsv1.GetOccurrenceOptions{})
				return err
			},
		},
		{
			name:    "UpdateOccurrence",
			missing: "accountId, providerId, occurrenceId, noteName, kind, id",
			nilOpts: func(c *findingsv1.FindingsV1) error { _, err := c.UpdateOccurrence(ctx, nil); return err },
			empty: func(c *findingsv1.FindingsV1) error {
				_, err := c.UpdateOccurrence(ctx, &findingsv1.UpdateOccurrenceOptions{})
				return err
			},
		},
		{
			name:    "DeleteOccurrence",
			missing: "accountId, providerId, occurrenceId",
			nilOpts: func(c *findingsv1.FindingsV1) error { _, err := c.DeleteOccurrence(ctx, nil); return err },
			empty: func(c *findingsv1.FindingsV1) error {
				_, err := c.DeleteOccurrence(ctx, &findingsv1.DeleteOccurrenceOptions{})
				return err
			},
		},
		{
			name:    "ListProviders",
			missing: "accountId",
			nilOpts: func(c *findingsv1.FindingsV1) error { _, err := c.ListProviders(ctx, nil); return err },
			empty: func(c *findingsv1.FindingsV1) error {
				_, err := c.ListProviders(ctx, &findingsv1.ListProvidersOptions{Limit: ip(5)})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, exec := newTestClient(t)

			for _, call := range []func(*findingsv1.FindingsV1) error{tt.nilOpts, tt.empty} {
				err := call(client)
				require.Error(t, err)
				assert.Equal(t, "Missing required parameters: "+tt.missing, err.Error())
				assert.ErrorIs(t, err, secadvisor.ErrMissingParameters)
			}
			assert.Zero(t, exec.count(), "executor must not be called")
		})
	}
}

func TestRequiredFieldsOnly(t *testing.T) {
	ctx := context.Background()
	reporter := &findingsv1.Reporter{ID: "r", Title: "t"}

	tests := []struct {
		name     string
		call     func(c *findingsv1.FindingsV1) error
		method   string
		template string
		path     map[string]string
		body     any
	}{
		{
			name: "PostGraph",
			call: func(c *findingsv1.FindingsV1) error {
				_, err := c.PostGraph(ctx, &findingsv1.PostGraphOptions{AccountID: sp("a"), Body: sp("{ notes { id } }")})
				return err
			},
			method:   http.MethodPost,
			template: "/v1/{account_id}/graph",
			path:     map[string]string{"account_id": "a"},
			body:     "{ notes { id } }",
		},
		{
			name: "ListNotes",
			call: func(c *findingsv1.FindingsV1) error {
				_, err := c.ListNotes(ctx, &findingsv1.ListNotesOptions{AccountID: sp("a"), ProviderID: sp("p")})
				return err
			},
			method:   http.MethodGet,
			template: "/v1/{account_id}/providers/{provider_id}/notes",
			path:     map[string]string{"account_id": "a", "provider_id": "p"},
		},
		{
			name: "GetNote",
			call: func(c *findingsv1.FindingsV1) error {
				_, err := c.GetNote(ctx, &findingsv1.GetNoteOptions{AccountID: sp("a"), ProviderID: sp("p"), NoteID: sp("n")})
				return err
			},
			method:   http.MethodGet,
			template: "/v1/{account_id}/providers/{provider_id}/notes/{note_id}",
			path:     map[string]string{"account_id": "a", "provider_id": "p", "note_id": "n"},
		},
		{
			name: "UpdateNote",
			call: func(c *findingsv1.FindingsV1) error {
				_, err := c.UpdateNote(ctx, &findingsv1.UpdateNoteOptions{
					AccountID: sp("a"), ProviderID: sp("p"), NoteID: sp("n"),
					ShortDescription: sp("s"), LongDescription: sp("l"),
					Kind: sp(findingsv1.NoteKindKpi), ID: sp("n"), ReportedBy: reporter,
				})
				return err
			},
			method:   http.MethodPut,
			template: "/v1/{account_id}/providers/{provider_id}/notes/{note_id}",
			path:     map[string]string{"account_id": "a", "provider_id": "p", "note_id": "n"},
			body: &findingsv1.NoteBody{
				ShortDescription: sp("s"), LongDescription: sp("l"),
				Kind: sp(findingsv1.NoteKindKpi), ID: sp("n"), ReportedBy: reporter,
			},
		},
		{
			name: "DeleteNote",
			call: func(c *findingsv1.FindingsV1) error {
				_, err := c.DeleteNote(ctx, &findingsv1.DeleteNoteOptions{AccountID: sp("a"), ProviderID: sp("p"), NoteID: sp("n")})
				return err
			},
			method:   http.MethodDelete,
			template: "/v1/{account_id}/providers/{provider_id}/notes/{note_id}",
			path:     map[string]string{"account_id": "a", "provider_id": "p", "note_id": "n"},
		},
		{
			name: "GetOccurrenceNote",
			call: func(c *findingsv1.FindingsV1) error {
				_, err := c.GetOccurrenceNote(ctx, &findingsv1.GetOccurrenceNoteOptions{AccountID: sp("a"), ProviderID: sp("p"), OccurrenceID: sp("o")})
				return err
			},
			method:   http.MethodGet,
			template: "/v1/{account_id}/providers/{provider_id}/occurrences/{occurrence_id}/note",
			path:     map[string]string{"account_id": "a", "provider_id": "p", "occurrence_id": "o"},
		},
		{
			name: "CreateOccurrence",
			call: func(c *findingsv1.FindingsV1) error {
				_, err := c.CreateOccurrence(ctx, &findingsv1.CreateOccurrenceOptions{
					AccountID: sp("a"), ProviderID: sp("p"), NoteName: sp("a/providers/p/notes/n"),
					Kind: sp(findingsv1.NoteKindFinding), ID: sp("o"),
				})
				return err
			},
			method:   http.MethodPost,
			template: "/v1/{account_id}/providers/{provider_id}/occurrences",
			path:     map[string]string{"account_id": "a", "provider_id": "p"},
			body: &findingsv1.OccurrenceBody{
				NoteName: sp("a/providers/p/notes/n"), Kind: sp(findingsv1.NoteKindFinding), ID: sp("o"),
			},
		},
		{
			name: "ListOccurrences",
			call: func(c *findingsv1.FindingsV1) error {
				_, err := c.ListOccurrences(ctx, &findingsv1.ListOccurrencesOptions{AccountID: sp("a"), ProviderID: sp("p")})
				return err
			},
			method:   http.MethodGet,
			template: "/v1/{account_id}/providers/{provider_id}/occurrences",
			path:     map[string]string{"account_id": "a", "provider_id": "p"},
		},
		{
			name: "ListNoteOccurrences",
			call: func(c *findingsv1.FindingsV1) error {
				_, err := c.ListNoteOccurrences(ctx, &findingsv1.ListNoteOccurrencesOptions{AccountID: sp("a"), ProviderID: sp("p"), NoteID: sp("n")})
				return err
			},
			method:   http.MethodGet,
			template: "/v1/{account_id}/providers/{provider_id}/notes/{note_id}/occurrences",
			path:     map[string]string{"account_id": "a", "provider_id": "p", "note_id": "n"},
		},
		{
			name: "GetOccurrence",
			call: func(c *findingsv1.FindingsV1) error {
				_, err := c.GetOccurrence(ctx, &findingsv1.GetOccurrenceOptions{AccountID: sp("a"), ProviderID: sp("p"), OccurrenceID: sp("o")})
				return err
			},
			method:   http.MethodGet,
			template: "/v1/{account_id}/providers/{provider_id}/occurrences/{occurrence_id}",
			path:     map[string]string{"account_id": "a", "provider_id": "p", "occurrence_id": "o"},
		},
		{
			name: "UpdateOccurrence",
			call: func(c *findingsv1.FindingsV1) error {
				_, err := c.UpdateOccurrence(ctx, &findingsv1.UpdateOccurrenceOptions{
					AccountID: sp("a"), ProviderID: sp("p"), OccurrenceID: sp("o"),
					NoteName: sp("a/providers/p/notes/n"), Kind: sp(findingsv1.NoteKindKpi), ID: sp("o"),
				})
				return err
			},
			method:   http.MethodPut,
			template: "/v1/{account_id}/providers/{provider_id}/occurrences/{occurrence_id}",
			path:     map[string]string{"account_id": "a", "provider_id": "p", "occurrence_id": "o"},
			body: &findingsv1.OccurrenceBody{
				NoteName: sp("a/providers/p/notes/n"), Kind: sp(findingsv1.NoteKindKpi), ID: sp("o"),
			},
		},
		{
			name: "DeleteOccurrence",
			call: func(c *findingsv1.FindingsV1) error {
				_, err := c.DeleteOccurrence(ctx, &findingsv1.DeleteOccurrenceOptions{AccountID: sp("a"), ProviderID: sp("p"), OccurrenceID: sp("o")})
				return err
			},
			method:   http.MethodDelete,
			template: "/v1/{account_id}/providers/{provider_id}/occurrences/{occurrence_id}",
			path:     map[string]string{"account_id": "a", "provider_id": "p", "occurrence_id": "o"},
		},
		{
			name: "ListProviders",
			call: func(c *findingsv1.FindingsV1) error {
				_, err := c.ListProviders(ctx, &findingsv1.ListProvidersOptions{AccountID: sp("a")})
				return err
			},
			method:   http.MethodGet,
			template: "/v1/{account_id}/providers",
			path:     map[string]string{"account_id": "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, exec := newTestClient(t)

			require.NoError(t, tt.call(client))
			require.Equal(t, 1, exec.count())

			req := exec.last(t)
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.template, req.URLTemplate)
			assert.Equal(t, tt.path, req.PathParams)
			assert.Empty(t, req.Query)
			assert.Equal(t, tt.body, req.Body)
			assert.Equal(t, "application/json", req.Headers.Get("Accept"))
		})
	}
}

func TestCreateNote(t *testing.T) {
	client, exec := newTestClient(t)
	exec.body = []byte(`{
		"id": "n1",
		"kind": "FINDING",
		"short_description": "s",
		"long_description": "l",
		"reported_by": {"id": "r", "title": "t"},
		"create_time": "2020-06-01T10:00:00.000Z"
	}`)

	resp, err := client.CreateNote(context.Background(), &findingsv1.CreateNoteOptions{
		AccountID:        sp("a"),
		ProviderID:       sp("p"),
		ShortDescription: sp("s"),
		LongDescription:  sp("l"),
		Kind:             sp(findingsv1.NoteKindFinding),
		ID:               sp("n1"),
		ReportedBy:       &findingsv1.Reporter{ID: "r", Title: "t"},
	})
	require.NoError(t, err)

	req := exec.last(t)
	assert.Equal(t, "createNote", req.Operation)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v1/{account_id}/providers/{provider_id}/notes", req.URLTemplate)
	assert.Equal(t, map[string]string{"account_id": "a", "provider_id": "p"}, req.PathParams)
	assert.Equal(t, "application/json", req.Headers.Get("Content-Type"))
	assert.Equal(t,
		"service_name=findings_api;service_version=V1;operation_id=createNote",
		req.Headers.Get("X-IBMCloud-SDK-Analytics"))

	body, ok := req.Body.(*findingsv1.NoteBody)
	require.True(t, ok)
	assert.Nil(t, body.RelatedURL)
	assert.Nil(t, body.Shared)
	assert.Nil(t, body.Finding)

	data, err := json.Marshal(req.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"short_description": "s",
		"long_description": "l",
		"kind": "FINDING",
		"id": "n1",
		"reported_by": {"id": "r", "title": "t"}
	}`, string(data))

	assert.Equal(t, "n1", resp.Result.ID)
	assert.Equal(t, findingsv1.NoteKindFinding, resp.Result.Kind)
	require.NotNil(t, resp.Result.ReportedBy)
	assert.Equal(t, "r", resp.Result.ReportedBy.ID)
	require.NotNil(t, resp.Result.CreateTime)
	assert.Equal(t, time.Date(2020, 6, 1, 10, 0, 0, 0, time.UTC), resp.Result.CreateTime.UTC())
}

func TestCreateNote_AllFields(t *testing.T) {
	client, exec := newTestClient(t)
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := client.CreateNote(context.Background(), &findingsv1.CreateNoteOptions{
		AccountID:        sp("a"),
		ProviderID:       sp("p"),
		ShortDescription: sp("Certificates"),
		LongDescription:  sp("Certificate findings"),
		Kind:             sp(findingsv1.NoteKindCard),
		ID:               sp("cert-card"),
		ReportedBy:       &findingsv1.Reporter{ID: "r", Title: "t", URL: sp("https://example.com")},
		RelatedURL:       []findingsv1.APINoteRelatedURL{{Label: sp("docs"), URL: sp("https://example.com/docs")}},
		ExpirationTime:   &expires,
		Shared:           bp(false),
		Card: &findingsv1.Card{
			Section:          "Insights",
			Title:            "Certificates",
			Subtitle:         "Expiring",
			FindingNoteNames: []string{"a/providers/p/notes/expired"},
			Elements: []findingsv1.CardElement{
				{
					Kind: findingsv1.CardElementKindNumeric,
					Text: "Expired",
					ValueType: &findingsv1.ValueType{
						Kind:             findingsv1.ValueTypeKindFindingCount,
						FindingNoteNames: []string{"a/providers/p/notes/expired"},
						Text:             "count",
					},
				},
			},
		},
	})
	require.NoError(t, err)

	data, err := json.Marshal(exec.last(t).Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"short_description": "Certificates",
		"long_description": "Certificate findings",
		"kind": "CARD",
		"id": "cert-card",
		"reported_by": {"id": "r", "title": "t", "url": "https://example.com"},
		"related_url": [{"label": "docs", "url": "https://example.com/docs"}],
		"expiration_time": "2030-01-01T00:00:00Z",
		"shared": false,
		"card": {
			"section": "Insights",
			"title": "Certificates",
			"subtitle": "Expiring",
			"finding_note_names": ["a/providers/p/notes/expired"],
			"elements": [{
				"kind": "NUMERIC",
				"text": "Expired",
				"value_type": {
					"kind": "FINDING_COUNT",
					"finding_note_names": ["a/providers/p/notes/expired"],
					"text": "count"
				}
			}]
		}
	}`, string(data))
}

func TestUpdateNote_EmptyRelatedURL(t *testing.T) {
	client, exec := newTestClient(t)

	_, err := client.UpdateNote(context.Background(), &findingsv1.UpdateNoteOptions{
		AccountID:        sp("a"),
		ProviderID:       sp("p"),
		NoteID:           sp("n1"),
		ShortDescription: sp("s"),
		LongDescription:  sp("l"),
		Kind:             sp(findingsv1.NoteKindFinding),
		ID:               sp("n1"),
		ReportedBy:       &findingsv1.Reporter{ID: "r", Title: "t"},
		RelatedURL:       []findingsv1.APINoteRelatedURL{},
		Finding:          &findingsv1.FindingType{Severity: findingsv1.SeverityLow, NextSteps: []findingsv1.RemediationStep{}},
	})
	require.NoError(t, err)

	data, err := json.Marshal(exec.last(t).Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"short_description": "s",
		"long_description": "l",
		"kind": "FINDING",
		"id": "n1",
		"reported_by": {"id": "r", "title": "t"},
		"related_url": [],
		"finding": {"severity": "LOW", "next_steps": []}
	}`, string(data))
}

func TestPostGraph(t *testing.T) {
	t.Run("content type header", func(t *testing.T) {
		client, exec := newTestClient(t)
		exec.body = []byte(`{"data":{"notes":[]}}`)

		resp, err := client.PostGraph(context.Background(), &findingsv1.PostGraphOptions{
			AccountID:   sp("a"),
			Body:        sp("{ notes { id } }"),
			ContentType: sp(findingsv1.GraphContentTypeGraphQL),
		})
		require.NoError(t, err)

		req := exec.last(t)
		assert.Equal(t, "application/graphql", req.Headers.Get("Content-Type"))
		assert.Equal(t, "{ notes { id } }", req.Body)
		assert.JSONEq(t, `{"data":{"notes":[]}}`, string(resp.Result))
	})

	t.Run("caller header wins over content type", func(t *testing.T) {
		client, exec := newTestClient(t)

		_, err := client.PostGraph(context.Background(), &findingsv1.PostGraphOptions{
			AccountID:   sp("a"),
			Body:        sp("{}"),
			ContentType: sp(findingsv1.GraphContentTypeGraphQL),
			Headers:     map[string]string{"Content-Type": "application/json"},
		})
		require.NoError(t, err)
		assert.Equal(t, "application/json", exec.last(t).Headers.Get("Content-Type"))
	})

	t.Run("no content type by default", func(t *testing.T) {
		client, exec := newTestClient(t)

		_, err := client.PostGraph(context.Background(), &findingsv1.PostGraphOptions{AccountID: sp("a"), Body: sp("{}")})
		require.NoError(t, err)
		assert.Empty(t, exec.last(t).Headers.Get("Content-Type"))
	})
}

func TestCreateOccurrence_ReplaceIfExists(t *testing.T) {
	tests := []struct {
		name  string
		value *bool
		want  []string
	}{
		{"true", bp(true), []string{"true"}},
		{"false", bp(false), []string{"false"}},
		{"unset", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, exec := newTestClient(t)

			_, err := client.CreateOccurrence(context.Background(), &findingsv1.CreateOccurrenceOptions{
				AccountID:       sp("a"),
				ProviderID:      sp("p"),
				NoteName:        sp("a/providers/p/notes/n"),
				Kind:            sp(findingsv1.NoteKindFinding),
				ID:              sp("o"),
				ReplaceIfExists: tt.value,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, exec.last(t).Headers.Values("Replace-If-Exists"))
		})
	}

	t.Run("caller header wins", func(t *testing.T) {
		client, exec := newTestClient(t)

		_, err := client.CreateOccurrence(context.Background(), &findingsv1.CreateOccurrenceOptions{
			AccountID:       sp("a"),
			ProviderID:      sp("p"),
			NoteName:        sp("a/providers/p/notes/n"),
			Kind:            sp(findingsv1.NoteKindFinding),
			ID:              sp("o"),
			ReplaceIfExists: bp(false),
			Headers:         map[string]string{"Replace-If-Exists": "true"},
		})
		require.NoError(t, err)
		assert.Equal(t, "true", exec.last(t).Headers.Get("Replace-If-Exists"))
	})
}

func TestCreateOccurrence_Finding(t *testing.T) {
	client, exec := newTestClient(t)

	_, err := client.CreateOccurrence(context.Background(), &findingsv1.CreateOccurrenceOptions{
		AccountID:   sp("a"),
		ProviderID:  sp("p"),
		NoteName:    sp("a/providers/p/notes/n"),
		Kind:        sp(findingsv1.NoteKindFinding),
		ID:          sp("o"),
		ResourceURL: sp("https://example.com/resource"),
		Context:     &findingsv1.Context{Region: sp("us-south"), ResourceName: sp("cluster-1")},
		Finding: &findingsv1.Finding{
			Severity:  sp(findingsv1.SeverityHigh),
			Certainty: sp(findingsv1.CertaintyMedium),
			NetworkConnection: &findingsv1.NetworkConnection{
				Client: &findingsv1.SocketAddress{Address: "10.0.0.1", Port: ip(443)},
			},
		},
	})
	require.NoError(t, err)

	data, err := json.Marshal(exec.last(t).Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"note_name": "a/providers/p/notes/n",
		"kind": "FINDING",
		"id": "o",
		"resource_url": "https://example.com/resource",
		"context": {"region": "us-south", "resource_name": "cluster-1"},
		"finding": {
			"severity": "HIGH",
			"certainty": "MEDIUM",
			"network_connection": {"client": {"address": "10.0.0.1", "port": 443}}
		}
	}`, string(data))
}

func TestListQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("ListNotes paging", func(t *testing.T) {
		client, exec := newTestClient(t)

		_, err := client.ListNotes(ctx, &findingsv1.ListNotesOptions{
			AccountID:  sp("a"),
			ProviderID: sp("p"),
			PageSize:   ip(0),
			PageToken:  sp("next"),
		})
		require.NoError(t, err)
		assert.Equal(t, url.Values{"page_size": {"0"}, "page_token": {"next"}}, exec.last(t).Query)
	})

	t.Run("ListNoteOccurrences paging", func(t *testing.T) {
		client, exec := newTestClient(t)

		_, err := client.ListNoteOccurrences(ctx, &findingsv1.ListNoteOccurrencesOptions{
			AccountID:  sp("a"),
			ProviderID: sp("p"),
			NoteID:     sp("n"),
			PageSize:   ip(25),
		})
		require.NoError(t, err)
		assert.Equal(t, url.Values{"page_size": {"25"}}, exec.last(t).Query)
	})

	t.Run("ListProviders range", func(t *testing.T) {
		client, exec := newTestClient(t)

		_, err := client.ListProviders(ctx, &findingsv1.ListProvidersOptions{
			AccountID:       sp("a"),
			Limit:           ip(10),
			Skip:            ip(20),
			StartProviderID: sp("a-provider"),
			EndProviderID:   sp("z-provider"),
		})
		require.NoError(t, err)
		assert.Equal(t, url.Values{
			"limit":             {"10"},
			"skip":              {"20"},
			"start_provider_id": {"a-provider"},
			"end_provider_id":   {"z-provider"},
		}, exec.last(t).Query)
	})
}

func TestEmptyAccountIDIsNotMissing(t *testing.T) {
	client, exec := newTestClient(t)

	_, err := client.ListProviders(context.Background(), &findingsv1.ListProvidersOptions{AccountID: sp("")})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"account_id": ""}, exec.last(t).PathParams)
}

func TestHeaderPrecedence(t *testing.T) {
	client, exec := newTestClient(t,
		secadvisor.WithHeaders(map[string]string{"Accept": "application/json", "X-Team": "secops"}),
	)

	_, err := client.GetNote(context.Background(), &findingsv1.GetNoteOptions{
		AccountID:  sp("a"),
		ProviderID: sp("p"),
		NoteID:     sp("n"),
		Headers:    map[string]string{"Accept": "x/y"},
	}, secadvisor.WithTransactionID("tx-1"))
	require.NoError(t, err)

	req := exec.last(t)
	assert.Equal(t, "x/y", req.Headers.Get("Accept"))
	assert.Equal(t, "secops", req.Headers.Get("X-Team"))
	assert.Equal(t, "tx-1", req.Headers.Get("Transaction-Id"))
}

func TestConcurrentCalls(t *testing.T) {
	client, exec := newTestClient(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.GetOccurrence(context.Background(), &findingsv1.GetOccurrenceOptions{
				AccountID:    sp("a"),
				ProviderID:   sp("p"),
				OccurrenceID: sp(string(rune('a' + i))),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, exec.count())
	seen := make(map[string]bool)
	for _, req := range exec.calls {
		seen[req.PathParams["occurrence_id"]] = true
	}
	assert.Len(t, seen, 20)
}
