// Package forms implements the competition-creation form: a pure form value,
// a validation function that tags each violated rule, and a submission
// controller that drives the create call with a single busy flag.
package forms

import (
	"time"
)

// Form field names. Validation results are keyed by these.
const (
	FieldTitle                = "title"
	FieldShortDescription     = "short_description"
	FieldDescription          = "description"
	FieldDifficulty           = "difficulty"
	FieldEvaluationMetric     = "evaluation_metric"
	FieldStartDate            = "start_date"
	FieldEndDate              = "end_date"
	FieldMaxTeamSize          = "max_team_size"
	FieldDailySubmissionLimit = "daily_submission_limit"
)

// FormState holds the raw form values. Dates stay strings until submit time
// because the user edits them as text; empty means unset.
type FormState struct {
	Title                string
	ShortDescription     string
	Description          string
	Difficulty           string
	EvaluationMetric     string
	StartDate            string
	EndDate              string
	MaxTeamSize          int
	DailySubmissionLimit int
	IsPublic             bool
}

// NewFormState returns a form with the documented defaults.
func NewFormState() FormState {
	return FormState{
		Difficulty:           "intermediate",
		MaxTeamSize:          1,
		DailySubmissionLimit: 5,
		IsPublic:             true,
	}
}

// Date layouts accepted from the date inputs.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate parses a form date value. ok is false for empty or malformed
// input.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CompetitionDraft is the payload sent to the create operation. Dates are
// normalized to RFC 3339 UTC timestamps. Built only at submit time from a
// valid form; never mutated afterwards.
type CompetitionDraft struct {
	Title                string `json:"title"`
	ShortDescription     string `json:"short_description"`
	Description          string `json:"description"`
	Difficulty           string `json:"difficulty"`
	EvaluationMetric     string `json:"evaluation_metric"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	MaxTeamSize          int    `json:"max_team_size"`
	DailySubmissionLimit int    `json:"daily_submission_limit"`
	IsPublic             bool   `json:"is_public"`
}

// BuildDraft converts a form into the wire payload. The form must already
// have passed validation; unparseable dates come out zero-valued.
func BuildDraft(form FormState) CompetitionDraft {
	draft := CompetitionDraft{
		Title:                form.Title,
		ShortDescription:     form.ShortDescription,
		Description:          form.Description,
		Difficulty:           form.Difficulty,
		EvaluationMetric:     form.EvaluationMetric,
		MaxTeamSize:          form.MaxTeamSize,
		DailySubmissionLimit: form.DailySubmissionLimit,
		IsPublic:             form.IsPublic,
	}
	if t, ok := parseDate(form.StartDate); ok {
		draft.StartDate = t.UTC().Format(time.RFC3339)
	}
	if t, ok := parseDate(form.EndDate); ok {
		draft.EndDate = t.UTC().Format(time.RFC3339)
	}
	return draft
}
