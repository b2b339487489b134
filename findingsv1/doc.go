// Package findingsv1 is the client for the IBM Cloud Security Advisor
// Findings API: notes, occurrences, providers and the findings graph.
//
// A note describes a kind of finding, KPI, card or section reported by a
// provider. Occurrences are instances of a note, for example one finding on
// one resource.
//
//	client, err := findingsv1.NewFromEnvironment()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.CreateOccurrence(ctx, &findingsv1.CreateOccurrenceOptions{
//	    AccountID:       secadvisor.StringPtr(accountID),
//	    ProviderID:      secadvisor.StringPtr("my-provider"),
//	    NoteName:        secadvisor.StringPtr(accountID + "/providers/my-provider/notes/my-note"),
//	    Kind:            secadvisor.StringPtr(findingsv1.NoteKindFinding),
//	    ID:              secadvisor.StringPtr("occurrence-1"),
//	    ReplaceIfExists: secadvisor.BoolPtr(true),
//	})
package findingsv1
