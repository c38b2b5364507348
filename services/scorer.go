package services

import (
	"errors"
	"fmt"
	"os"
)

// LoadSolution reads a truth-set CSV into an id -> target map. The file must
// have id and target columns; targets must be numeric.
func LoadSolution(path string) (map[string]float64, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res := ValidateSubmission(content, "id", "target")
	if !res.Valid {
		return nil, errors.New("invalid solution file: " + res.ErrorSummary())
	}
	solution := make(map[string]float64, len(res.IDs))
	for i, id := range res.IDs {
		solution[id] = res.Predictions[i]
	}
	return solution, nil
}

// ValidateTruthSet checks an uploaded truth-set CSV before storing it.
func ValidateTruthSet(content []byte) error {
	res := ValidateSubmission(content, "id", "target")
	if !res.Valid {
		return errors.New("CSV must have 'id' and 'target' columns with numeric targets: " + res.ErrorSummary())
	}
	return nil
}

// ScoreSubmission aligns a validated submission against the solution and
// applies the metric. Every solution id must be predicted exactly once.
func ScoreSubmission(result ValidationResult, solution map[string]float64, metric string) (float64, error) {
	fn, err := GetMetric(metric)
	if err != nil {
		return 0, err
	}

	predictions := make([]float64, 0, len(solution))
	actuals := make([]float64, 0, len(solution))
	for i, id := range result.IDs {
		actual, ok := solution[id]
		if !ok {
			return 0, fmt.Errorf("unexpected id in submission: %s", id)
		}
		predictions = append(predictions, result.Predictions[i])
		actuals = append(actuals, actual)
	}
	if len(predictions) != len(solution) {
		return 0, fmt.Errorf("submission has %d rows, expected %d", len(predictions), len(solution))
	}

	return fn(predictions, actuals)
}
