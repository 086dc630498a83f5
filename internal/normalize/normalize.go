// Package normalize maps raw candidate-database records onto the flat
// Candidate entity. Extraction is total: a missing field, an empty value, or
// an unrecognized property kind resolves to null, never to an error.
package normalize

import (
	"math"
	"strings"
	"time"

	"github.com/Brommah/hvc/internal/domain"
	"github.com/Brommah/hvc/internal/notion"
)

// Candidate builds a Candidate from one raw page. now is the aggregation
// reference time, captured once per request so derived hour fields are
// consistent across the whole dataset.
func Candidate(page notion.Page, now time.Time) domain.Candidate {
	props := page.Properties

	c := domain.Candidate{
		ID:        page.ID,
		Name:      domain.PlaceholderName,
		NotionURL: page.URL,
	}

	if name := textValue(props[PropName]); name != nil {
		c.Name = *name
	}

	c.Role = selectValue(props[PropRole])
	c.Status = selectValue(props[PropStatus])
	c.Priority = selectValue(props[PropPriority])
	c.Stratification = selectValue(props[PropStratification])
	c.InterviewStatus = selectValue(props[PropInterviewStatus])

	// Exact label match only; prefix or substring matches do not count.
	if hot := selectValue(props[PropHot]); hot != nil && *hot == domain.LabelHot {
		c.HotCandidate = true
	}

	c.HoursSinceLastActivity = numberValue(props[PropHoursSinceActivity])
	c.AIScore = numberValue(props[PropAIScore])
	c.HumanScore = numberValue(props[PropHumanScore])

	c.DateAdded = dateValue(props[PropDateAdded])
	if c.DateAdded == nil && page.CreatedTime != "" {
		created := page.CreatedTime
		c.DateAdded = &created
	}
	c.AIProcessedAt = dateValue(props[PropAIProcessedAt])
	c.CVVerifiedAt = dateValue(props[PropCVVerified])

	c.PassedHumanFilter = checkboxValue(props[PropPassedHumanFilter])
	c.LinkedinProfile = urlValue(props[PropLinkedIn])

	c.HoursSinceAIReview = HoursSince(c.AIProcessedAt, now)

	return c
}

// Candidates normalizes a full fetched record set.
func Candidates(pages []notion.Page, now time.Time) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(pages))
	for _, page := range pages {
		out = append(out, Candidate(page, now))
	}
	return out
}

// HoursSince returns the whole hours elapsed from an optional ISO timestamp
// to now, rounded to the nearest integer. Nil input yields nil. Future
// timestamps yield negative values; the model does not clamp.
func HoursSince(ts *string, now time.Time) *int {
	t, ok := domain.ParseTimestamp(ts)
	if !ok {
		return nil
	}
	hours := int(math.Round(now.Sub(t).Hours()))
	return &hours
}

// selectValue extracts the selected label of a select property, unwrapping
// string-typed formulas.
func selectValue(p notion.Property) *string {
	switch p.Type {
	case kindSelect:
		if p.Select == nil || p.Select.Name == "" {
			return nil
		}
		name := p.Select.Name
		return &name
	case kindFormula:
		return formulaString(p.Formula)
	default:
		return nil
	}
}

// textValue concatenates the plain-text segments of a title or rich_text
// property. Returns nil when the result is empty.
func textValue(p notion.Property) *string {
	var segments []notion.RichText
	switch p.Type {
	case kindTitle:
		segments = p.Title
	case kindRichText:
		segments = p.RichText
	case kindFormula:
		return formulaString(p.Formula)
	default:
		return nil
	}

	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.PlainText)
	}
	if b.Len() == 0 {
		return nil
	}
	s := b.String()
	return &s
}

// numberValue extracts a numeric property, unwrapping number-typed formulas.
func numberValue(p notion.Property) *float64 {
	switch p.Type {
	case kindNumber:
		return p.Number
	case kindFormula:
		if p.Formula != nil && p.Formula.Type == kindNumber {
			return p.Formula.Number
		}
		return nil
	default:
		return nil
	}
}

// checkboxValue extracts a boolean property. A field absent from the schema
// (zero-value Property) defaults to false.
func checkboxValue(p notion.Property) bool {
	switch p.Type {
	case kindCheckbox:
		return p.Checkbox != nil && *p.Checkbox
	case kindFormula:
		if p.Formula != nil && p.Formula.Type == kindBoolean && p.Formula.Boolean != nil {
			return *p.Formula.Boolean
		}
		return false
	default:
		return false
	}
}

// dateValue extracts the ISO start of a date property, unwrapping date-typed
// formulas.
func dateValue(p notion.Property) *string {
	switch p.Type {
	case kindDate:
		return dateStart(p.Date)
	case kindFormula:
		if p.Formula != nil && p.Formula.Type == kindDate {
			return dateStart(p.Formula.Date)
		}
		return nil
	default:
		return nil
	}
}

// urlValue extracts a URL property.
func urlValue(p notion.Property) *string {
	if p.Type != kindURL || p.URL == nil || *p.URL == "" {
		return nil
	}
	return p.URL
}

func dateStart(d *notion.DateValue) *string {
	if d == nil || d.Start == "" {
		return nil
	}
	start := d.Start
	return &start
}

func formulaString(f *notion.Formula) *string {
	if f == nil || f.Type != kindString || f.String == nil || *f.String == "" {
		return nil
	}
	return f.String
}
