package forms

import (
	"time"
)

// Rule identifies which constraint a field violated, so the UI can show a
// message specific to the failure rather than a generic "invalid".
type Rule string

const (
	RuleRequired      Rule = "required"
	RuleTooShort      Rule = "too_short"
	RuleTooLong       Rule = "too_long"
	RuleOutOfRange    Rule = "out_of_range"
	RuleInvalidChoice Rule = "invalid_choice"
	RuleInvalidDate   Rule = "invalid_date"
)

// Violations is the outcome of validating a FormState: at most one rule tag
// per field, plus the single form-level date-order error that belongs to
// neither date field alone.
type Violations struct {
	Fields             map[string]Rule
	EndDateBeforeStart bool
}

// Valid reports whether the form may be submitted.
func (v Violations) Valid() bool {
	return len(v.Fields) == 0 && !v.EndDateBeforeStart
}

// Rule returns the violated rule for a field, if any.
func (v Violations) Rule(field string) (Rule, bool) {
	r, ok := v.Fields[field]
	return r, ok
}

var validDifficulties = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

// Validate checks every field constraint and the cross-field date order.
// Pure: no form registry, no mutation, same input always yields the same
// violations.
func Validate(form FormState) Violations {
	v := Violations{Fields: make(map[string]Rule)}

	checkLength(&v, FieldTitle, form.Title, 3, 255)
	checkLength(&v, FieldShortDescription, form.ShortDescription, 10, 500)
	checkLength(&v, FieldDescription, form.Description, 10, 0)

	switch {
	case form.Difficulty == "":
		v.Fields[FieldDifficulty] = RuleRequired
	case !validDifficulties[form.Difficulty]:
		v.Fields[FieldDifficulty] = RuleInvalidChoice
	}

	checkLength(&v, FieldEvaluationMetric, form.EvaluationMetric, 1, 100)

	start, startOK := checkDate(&v, FieldStartDate, form.StartDate)
	end, endOK := checkDate(&v, FieldEndDate, form.EndDate)

	if form.MaxTeamSize < 1 || form.MaxTeamSize > 10 {
		v.Fields[FieldMaxTeamSize] = RuleOutOfRange
	}
	if form.DailySubmissionLimit < 1 || form.DailySubmissionLimit > 100 {
		v.Fields[FieldDailySubmissionLimit] = RuleOutOfRange
	}

	// The cross-field check only fires once both dates parse. Strict after:
	// equal dates are rejected, same-day competitions are not allowed.
	if startOK && endOK && !end.After(start) {
		v.EndDateBeforeStart = true
	}

	return v
}

// checkLength tags required/too_short/too_long for a text field. max zero
// means unbounded.
func checkLength(v *Violations, field, value string, min, max int) {
	switch {
	case value == "":
		v.Fields[field] = RuleRequired
	case len(value) < min:
		v.Fields[field] = RuleTooShort
	case max > 0 && len(value) > max:
		v.Fields[field] = RuleTooLong
	}
}

// checkDate tags required/invalid_date and returns the parsed value for the
// cross-field comparison.
func checkDate(v *Violations, field, value string) (time.Time, bool) {
	if value == "" {
		v.Fields[field] = RuleRequired
		return time.Time{}, false
	}
	parsed, ok := parseDate(value)
	if !ok {
		v.Fields[field] = RuleInvalidDate
		return time.Time{}, false
	}
	return parsed, true
}
