package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func errorCodes(res ValidationResult) []string {
	codes := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		codes = append(codes, e.Code)
	}
	return codes
}

func TestValidateSubmissionValid(t *testing.T) {
	csv := "id,prediction\n1,0.5\n2,0.7\n3,1.0\n"
	res := ValidateSubmission([]byte(csv), "id", "prediction")

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.Equal(t, []string{"1", "2", "3"}, res.IDs)
	assert.Equal(t, []float64{0.5, 0.7, 1.0}, res.Predictions)
}

func TestValidateSubmissionHeaderNormalization(t *testing.T) {
	// Header matching is case-insensitive and whitespace-tolerant.
	csv := "ID, Prediction\n1,0.5\n"
	res := ValidateSubmission([]byte(csv), "id", "prediction")
	assert.True(t, res.Valid)
}

func TestValidateSubmissionExtraColumnsIgnored(t *testing.T) {
	csv := "id,name,prediction\n1,alice,0.5\n2,bob,0.7\n"
	res := ValidateSubmission([]byte(csv), "id", "prediction")
	assert.True(t, res.Valid)
	assert.Equal(t, []float64{0.5, 0.7}, res.Predictions)
}

func TestValidateSubmissionMissingColumn(t *testing.T) {
	csv := "id,value\n1,0.5\n"
	res := ValidateSubmission([]byte(csv), "id", "prediction")

	assert.False(t, res.Valid)
	assert.Equal(t, []string{"MISSING_COLUMN"}, errorCodes(res))
	assert.Contains(t, res.Errors[0].Message, "prediction")
}

func TestValidateSubmissionBothColumnsMissing(t *testing.T) {
	csv := "a,b\n1,2\n"
	res := ValidateSubmission([]byte(csv), "id", "prediction")

	assert.False(t, res.Valid)
	assert.Equal(t, []string{"MISSING_COLUMN", "MISSING_COLUMN"}, errorCodes(res))
}

func TestValidateSubmissionDuplicateID(t *testing.T) {
	csv := "id,prediction\n1,0.5\n1,0.6\n"
	res := ValidateSubmission([]byte(csv), "id", "prediction")

	assert.False(t, res.Valid)
	assert.Equal(t, []string{"DUPLICATE_ID"}, errorCodes(res))
	assert.Equal(t, 3, res.Errors[0].Row)
}

func TestValidateSubmissionNonNumericPrediction(t *testing.T) {
	csv := "id,prediction\n1,high\n2,0.5\n"
	res := ValidateSubmission([]byte(csv), "id", "prediction")

	assert.False(t, res.Valid)
	assert.Equal(t, []string{"INVALID_VALUE"}, errorCodes(res))
	assert.Equal(t, 2, res.Errors[0].Row)
}

func TestValidateSubmissionEmptyID(t *testing.T) {
	csv := "id,prediction\n,0.5\n"
	res := ValidateSubmission([]byte(csv), "id", "prediction")

	assert.False(t, res.Valid)
	assert.Equal(t, []string{"EMPTY_ID"}, errorCodes(res))
}

func TestValidateSubmissionEmptyFile(t *testing.T) {
	res := ValidateSubmission(nil, "id", "prediction")
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"CSV_PARSE_ERROR"}, errorCodes(res))
}

func TestValidateSubmissionHeaderOnly(t *testing.T) {
	res := ValidateSubmission([]byte("id,prediction\n"), "id", "prediction")
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"NO_ROWS"}, errorCodes(res))
}

func TestValidateSubmissionErrorCap(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("id,prediction\n")
	for i := 0; i < 100; i++ {
		sb.WriteString("1,0.5\n") // every row after the first is a duplicate
	}
	res := ValidateSubmission([]byte(sb.String()), "id", "prediction")

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, maxReportedErrors)
}

func TestErrorSummary(t *testing.T) {
	res := ValidationResult{Errors: []ValidationError{
		{Message: "one"}, {Message: "two"}, {Message: "three"}, {Message: "four"},
	}}
	assert.Equal(t, "one; two; three", res.ErrorSummary())
}
