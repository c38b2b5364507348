package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ValidationError is a single problem found in a submission file.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Row     int    `json:"row,omitempty"`
}

// ValidationResult carries the outcome of parsing a submission CSV. IDs and
// Predictions are aligned and only meaningful when Valid is true.
type ValidationResult struct {
	Valid       bool
	Errors      []ValidationError
	IDs         []string
	Predictions []float64
}

const maxReportedErrors = 20

// ValidateSubmission parses a prediction CSV and checks its structure:
// required columns present, every prediction numeric, no duplicate ids.
func ValidateSubmission(content []byte, idColumn, predictionColumn string) ValidationResult {
	res := ValidationResult{}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		res.Errors = append(res.Errors, ValidationError{
			Code:    "CSV_PARSE_ERROR",
			Message: "File is empty or not a valid CSV",
		})
		return res
	}

	idIdx, predIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.ToLower(h)) {
		case idColumn:
			idIdx = i
		case predictionColumn:
			predIdx = i
		}
	}
	if idIdx < 0 {
		res.Errors = append(res.Errors, ValidationError{
			Code:    "MISSING_COLUMN",
			Message: "Missing required column: " + idColumn,
		})
	}
	if predIdx < 0 {
		res.Errors = append(res.Errors, ValidationError{
			Code:    "MISSING_COLUMN",
			Message: "Missing required column: " + predictionColumn,
		})
	}
	if len(res.Errors) > 0 {
		return res
	}

	seen := make(map[string]bool)
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			res.Errors = append(res.Errors, ValidationError{
				Code:    "CSV_PARSE_ERROR",
				Message: fmt.Sprintf("Malformed row: %v", err),
				Row:     row,
			})
			continue
		}

		id := strings.TrimSpace(record[idIdx])
		if id == "" {
			res.Errors = append(res.Errors, ValidationError{
				Code:    "EMPTY_ID",
				Message: "Empty id value",
				Row:     row,
			})
			continue
		}
		if seen[id] {
			res.Errors = append(res.Errors, ValidationError{
				Code:    "DUPLICATE_ID",
				Message: "Duplicate id: " + id,
				Row:     row,
			})
			continue
		}
		seen[id] = true

		pred, err := strconv.ParseFloat(strings.TrimSpace(record[predIdx]), 64)
		if err != nil {
			res.Errors = append(res.Errors, ValidationError{
				Code:    "INVALID_VALUE",
				Message: fmt.Sprintf("Non-numeric prediction %q", record[predIdx]),
				Row:     row,
			})
			continue
		}

		res.IDs = append(res.IDs, id)
		res.Predictions = append(res.Predictions, pred)

		if len(res.Errors) >= maxReportedErrors {
			break
		}
	}

	if len(res.IDs) == 0 && len(res.Errors) == 0 {
		res.Errors = append(res.Errors, ValidationError{
			Code:    "NO_ROWS",
			Message: "Submission contains no data rows",
		})
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// ErrorSummary joins the first few validation errors for user display.
func (r ValidationResult) ErrorSummary() string {
	msgs := make([]string, 0, 3)
	for i, e := range r.Errors {
		if i == 3 {
			break
		}
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}
