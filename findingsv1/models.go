package findingsv1

import "time"

// Note kinds. The kind selects which of the note and occurrence details are set.
const (
	NoteKindFinding        = "FINDING"
	NoteKindKpi            = "KPI"
	NoteKindCard           = "CARD"
	NoteKindCardConfigured = "CARD_CONFIGURED"
	NoteKindSection        = "SECTION"
)

// Severity levels of a finding.
const (
	SeverityLow      = "LOW"
	SeverityMedium   = "MEDIUM"
	SeverityHigh     = "HIGH"
	SeverityCritical = "CRITICAL"
)

// Certainty levels of a finding.
const (
	CertaintyLow    = "LOW"
	CertaintyMedium = "MEDIUM"
	CertaintyHigh   = "HIGH"
)

// Card element kinds.
const (
	CardElementKindNumeric    = "NUMERIC"
	CardElementKindBreakdown  = "BREAKDOWN"
	CardElementKindTimeSeries = "TIME_SERIES"
)

// Value type kinds of a card element.
const (
	ValueTypeKindKpi          = "KPI"
	ValueTypeKindFindingCount = "FINDING_COUNT"
)

// KpiAggregationSum sums the values of the KPI occurrences.
const KpiAggregationSum = "SUM"

// Reporter is the entity reporting a note.
type Reporter struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	URL   *string `json:"url,omitempty"`
}

// APINoteRelatedURL is a labelled link attached to a note.
type APINoteRelatedURL struct {
	Label *string `json:"label,omitempty"`
	URL   *string `json:"url,omitempty"`
}

// RemediationStep is a remediation step title and its link.
type RemediationStep struct {
	Title *string `json:"title,omitempty"`
	URL   *string `json:"url,omitempty"`
}

// FindingType holds the finding details of a note.
type FindingType struct {
	Severity  string            `json:"severity"`
	NextSteps []RemediationStep `json:"next_steps,omitzero"`
}

// KpiType holds the KPI details of a note.
type KpiType struct {
	AggregationType string `json:"aggregation_type"`
}

// Card holds the card details of a note.
type Card struct {
	Section               string        `json:"section"`
	Title                 string        `json:"title"`
	Subtitle              string        `json:"subtitle"`
	Order                 *int64        `json:"order,omitempty"`
	FindingNoteNames      []string      `json:"finding_note_names"`
	RequiresConfiguration *bool         `json:"requires_configuration,omitempty"`
	BadgeText             *string       `json:"badge_text,omitempty"`
	BadgeImage            *string       `json:"badge_image,omitempty"`
	Elements              []CardElement `json:"elements"`
}

// CardElement is one element of a card. Kind selects the variant:
// NUMERIC elements set ValueType, BREAKDOWN and TIME_SERIES elements set
// ValueTypes, and TIME_SERIES elements may set DefaultInterval.
type CardElement struct {
	Kind             string      `json:"kind"`
	DefaultTimeRange *string     `json:"default_time_range,omitempty"`
	Text             string      `json:"text"`
	ValueType        *ValueType  `json:"value_type,omitempty"`
	ValueTypes       []ValueType `json:"value_types,omitzero"`
	DefaultInterval  *string     `json:"default_interval,omitempty"`
}

// ValueType is the value source of a card element. KPI values name a KPI
// note, FINDING_COUNT values name the finding notes whose occurrences are
// counted.
type ValueType struct {
	Kind             string   `json:"kind"`
	KpiNoteName      *string  `json:"kpi_note_name,omitempty"`
	FindingNoteNames []string `json:"finding_note_names,omitzero"`
	Text             string   `json:"text"`
}

// Section holds the section details of a note.
type Section struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

// APINote is a note as stored by the service.
type APINote struct {
	ShortDescription string              `json:"short_description"`
	LongDescription  string              `json:"long_description"`
	Kind             string              `json:"kind"`
	RelatedURL       []APINoteRelatedURL `json:"related_url,omitempty"`
	ExpirationTime   *time.Time          `json:"expiration_time,omitempty"`
	CreateTime       *time.Time          `json:"create_time,omitempty"`
	UpdateTime       *time.Time          `json:"update_time,omitempty"`
	ID               string              `json:"id"`
	Shared           *bool               `json:"shared,omitempty"`
	ReportedBy       *Reporter           `json:"reported_by,omitempty"`
	Finding          *FindingType        `json:"finding,omitempty"`
	Kpi              *KpiType            `json:"kpi,omitempty"`
	Card             *Card               `json:"card,omitempty"`
	Section          *Section            `json:"section,omitempty"`
}

// Context locates the resource an occurrence applies to.
type Context struct {
	Region          *string `json:"region,omitempty"`
	ResourceCRN     *string `json:"resource_crn,omitempty"`
	ResourceID      *string `json:"resource_id,omitempty"`
	ResourceName    *string `json:"resource_name,omitempty"`
	ResourceType    *string `json:"resource_type,omitempty"`
	ServiceCRN      *string `json:"service_crn,omitempty"`
	ServiceName     *string `json:"service_name,omitempty"`
	EnvironmentName *string `json:"environment_name,omitempty"`
	ComponentName   *string `json:"component_name,omitempty"`
	ToolchainID     *string `json:"toolchain_id,omitempty"`
}

// SocketAddress is one end of a network connection.
type SocketAddress struct {
	Address string `json:"address"`
	Port    *int64 `json:"port,omitempty"`
}

// NetworkConnection describes the connection a finding was observed on.
type NetworkConnection struct {
	Direction *string        `json:"direction,omitempty"`
	Protocol  *string        `json:"protocol,omitempty"`
	Client    *SocketAddress `json:"client,omitempty"`
	Server    *SocketAddress `json:"server,omitempty"`
}

// DataTransferred counts the traffic between client and server.
type DataTransferred struct {
	ClientBytes   *int64 `json:"client_bytes,omitempty"`
	ServerBytes   *int64 `json:"server_bytes,omitempty"`
	ClientPackets *int64 `json:"client_packets,omitempty"`
	ServerPackets *int64 `json:"server_packets,omitempty"`
}

// Finding holds the details of a finding occurrence. NextSteps override the
// note's remediation steps.
type Finding struct {
	Severity          *string            `json:"severity,omitempty"`
	Certainty         *string            `json:"certainty,omitempty"`
	NextSteps         []RemediationStep  `json:"next_steps,omitzero"`
	NetworkConnection *NetworkConnection `json:"network_connection,omitempty"`
	DataTransferred   *DataTransferred   `json:"data_transferred,omitempty"`
}

// Kpi holds the value of a KPI occurrence.
type Kpi struct {
	Value float64  `json:"value"`
	Total *float64 `json:"total,omitempty"`
}

// APIOccurrence is an occurrence as stored by the service.
type APIOccurrence struct {
	ResourceURL *string    `json:"resource_url,omitempty"`
	NoteName    string     `json:"note_name"`
	Kind        string     `json:"kind"`
	Remediation *string    `json:"remediation,omitempty"`
	CreateTime  *time.Time `json:"create_time,omitempty"`
	UpdateTime  *time.Time `json:"update_time,omitempty"`
	ID          string     `json:"id"`
	Context     *Context   `json:"context,omitempty"`
	Finding     *Finding   `json:"finding,omitempty"`
	Kpi         *Kpi       `json:"kpi,omitempty"`
}

// APIProvider identifies a findings provider.
type APIProvider struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// APIListNotesResponse is one page of notes. An empty NextPageToken means
// there are no more results.
type APIListNotesResponse struct {
	Notes         []APINote `json:"notes,omitempty"`
	NextPageToken *string   `json:"next_page_token,omitempty"`
}

// APIListOccurrencesResponse is one page of occurrences.
type APIListOccurrencesResponse struct {
	Occurrences   []APIOccurrence `json:"occurrences,omitempty"`
	NextPageToken *string         `json:"next_page_token,omitempty"`
}

// APIListNoteOccurrencesResponse is one page of the occurrences of a note.
type APIListNoteOccurrencesResponse struct {
	Occurrences   []APIOccurrence `json:"occurrences,omitempty"`
	NextPageToken *string         `json:"next_page_token,omitempty"`
}

// APIListProvidersResponse lists providers.
type APIListProvidersResponse struct {
	Providers []APIProvider `json:"providers,omitempty"`
}
