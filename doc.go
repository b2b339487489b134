// Package secadvisor holds the shared core of the IBM Cloud Security Advisor
// clients in the findingsv1 and notificationsv1 packages.
//
// # Features
//
//   - One client per API surface, composed over a shared BaseService
//   - Typed options structs with required-parameter validation
//   - Injectable request executor for tests and custom transports
//   - Typed errors for precise error handling
//   - Functional options for flexible configuration
//
// # Quick Start
//
//	findings, err := findingsv1.New(
//	    secadvisor.WithAuthenticator(&secadvisor.BearerTokenAuthenticator{BearerToken: token}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := findings.ListNotes(ctx, &findingsv1.ListNotesOptions{
//	    AccountID:  secadvisor.StringPtr(accountID),
//	    ProviderID: secadvisor.StringPtr("my-provider"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, note := range resp.Result.Notes {
//	    fmt.Println(note.ID)
//	}
//
// # External Configuration
//
// NewFromEnvironment reads the service URL and credentials from the process
// environment and from a credentials file. Keys are prefixed with the service
// name upper-cased, for example FINDINGS_API_AUTH_TYPE or
// NOTIFICATIONS_API_URL. The credentials file is taken from
// IBM_CREDENTIALS_FILE, then ./ibm-credentials.env, then
// $HOME/ibm-credentials.env. Environment variables take precedence.
//
// # Error Handling
//
// Missing required parameters are reported before any request is sent:
//
//	_, err := findings.GetNote(ctx, &findingsv1.GetNoteOptions{})
//	// err.Error() == "Missing required parameters: accountId, providerId, noteId"
//	errors.Is(err, secadvisor.ErrMissingParameters) // true
//
// API failures use typed errors that can be inspected with errors.As:
//
//	_, err := findings.GetNote(ctx, opts)
//	if err != nil {
//	    var notFound *secadvisor.NotFoundError
//	    if errors.As(err, &notFound) {
//	        // Handle not found
//	    }
//	}
package secadvisor
