// Package domain defines the candidate entity and the canonical label values
// the pipeline policies compare against.
package domain

import "time"

// Canonical label values from the candidate database. Matching is exact;
// "1st Priority" or "Hot" do not count.
const (
	// LabelHot is the single select value that marks a hot candidate.
	LabelHot = "🔥 Hot Candidate"
	// PriorityFirst marks top-priority candidates.
	PriorityFirst = "1st"
	// StratificationHigh marks the highest stratification tier.
	StratificationHigh = "H"

	StatusCompanyRejected   = "Company Rejected"
	StatusCandidateRejected = "Candidate Rejected"
	StatusAccepted          = "Accepted"

	InterviewStatusCompleted = "Completed"

	// PlaceholderName is used when the source title field is empty.
	PlaceholderName = "Unnamed Candidate"
)

// Candidate is an immutable snapshot of one record from the candidate
// database. It is rebuilt from the remote store on every request and never
// mutated or cached.
type Candidate struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Role            *string `json:"role"`
	Status          *string `json:"status"`
	Priority        *string `json:"priority"`
	Stratification  *string `json:"stratification"`
	InterviewStatus *string `json:"interviewStatus"`

	HotCandidate bool `json:"hotCandidate"`

	HoursSinceLastActivity *float64 `json:"hoursSinceLastActivity"`
	AIScore                *float64 `json:"aiScore"`
	HumanScore             *float64 `json:"humanScore"`

	DateAdded     *string `json:"dateAdded"`
	AIProcessedAt *string `json:"aiProcessedAt"`
	CVVerifiedAt  *string `json:"cvVerifiedByLynn"`

	PassedHumanFilter bool `json:"passedHumanFilter"`

	LinkedinProfile *string `json:"linkedinProfile"`
	NotionURL       string  `json:"notionUrl"`

	// HoursSinceAIReview is hours between the aggregation's reference time
	// and AIProcessedAt, rounded to the nearest integer. Nil when the
	// candidate has not been AI-processed.
	HoursSinceAIReview *int `json:"hoursSinceAiReview"`
}

// timestampLayouts are the formats the candidate database emits: full
// RFC 3339 timestamps and bare dates.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseTimestamp parses an optional ISO-8601 date or date-time string.
// Returns false for nil, empty, or unparseable input.
func ParseTimestamp(s *string) (time.Time, bool) {
	if s == nil || *s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AddedAt returns the parsed DateAdded timestamp.
func (c Candidate) AddedAt() (time.Time, bool) {
	return ParseTimestamp(c.DateAdded)
}

// AIProcessedTime returns the parsed AIProcessedAt timestamp.
func (c Candidate) AIProcessedTime() (time.Time, bool) {
	return ParseTimestamp(c.AIProcessedAt)
}
