package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// MetricFunc scores predictions against actual values. Classification metrics
// interpret values as integer labels.
type MetricFunc func(predictions, actuals []float64) (float64, error)

var metricFunctions = map[string]MetricFunc{
	"auc_roc":  AUCROC,
	"roc_auc":  AUCROC,
	"rmse":     RMSE,
	"mae":      MAE,
	"accuracy": Accuracy,
	"f1":       F1,
	"f1_score": F1,
}

// Metrics where a lower score ranks higher.
var lowerIsBetter = map[string]bool{
	"rmse": true,
	"mae":  true,
}

var ErrUnknownMetric = errors.New("unknown metric")

func normalizeMetricName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}

// GetMetric resolves a metric name to its scoring function.
func GetMetric(name string) (MetricFunc, error) {
	fn, ok := metricFunctions[normalizeMetricName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, name)
	}
	return fn, nil
}

// IsLowerBetter reports whether smaller scores rank higher for the metric.
func IsLowerBetter(name string) bool {
	return lowerIsBetter[normalizeMetricName(name)]
}

// IsKnownMetric reports whether the name resolves to a scoring function.
func IsKnownMetric(name string) bool {
	_, ok := metricFunctions[normalizeMetricName(name)]
	return ok
}

func checkLengths(predictions, actuals []float64, metric string) error {
	if len(predictions) != len(actuals) {
		return errors.New("predictions and actuals must have the same length")
	}
	if len(predictions) == 0 {
		return fmt.Errorf("cannot calculate %s for empty arrays", metric)
	}
	return nil
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// RMSE is root mean squared error; lower is better.
func RMSE(predictions, actuals []float64) (float64, error) {
	if err := checkLengths(predictions, actuals, "RMSE"); err != nil {
		return 0, err
	}
	var sum float64
	for i, p := range predictions {
		d := p - actuals[i]
		sum += d * d
	}
	return round6(math.Sqrt(sum / float64(len(predictions)))), nil
}

// MAE is mean absolute error; lower is better.
func MAE(predictions, actuals []float64) (float64, error) {
	if err := checkLengths(predictions, actuals, "MAE"); err != nil {
		return 0, err
	}
	var sum float64
	for i, p := range predictions {
		sum += math.Abs(p - actuals[i])
	}
	return round6(sum / float64(len(predictions))), nil
}

// Accuracy is the fraction of exactly matching labels.
func Accuracy(predictions, actuals []float64) (float64, error) {
	if err := checkLengths(predictions, actuals, "accuracy"); err != nil {
		return 0, err
	}
	correct := 0
	for i, p := range predictions {
		if p == actuals[i] {
			correct++
		}
	}
	return round6(float64(correct) / float64(len(predictions))), nil
}

// F1 is the binary-classification F1 score on 0/1 labels.
func F1(predictions, actuals []float64) (float64, error) {
	if err := checkLengths(predictions, actuals, "F1"); err != nil {
		return 0, err
	}
	var tp, fp, fn float64
	for i, p := range predictions {
		a := actuals[i]
		switch {
		case p == 1 && a == 1:
			tp++
		case p == 1 && a == 0:
			fp++
		case p == 0 && a == 1:
			fn++
		}
	}
	if tp == 0 {
		return 0, nil
	}
	precision := tp / (tp + fp)
	recall := tp / (tp + fn)
	if precision+recall == 0 {
		return 0, nil
	}
	return round6(2 * precision * recall / (precision + recall)), nil
}

// AUCROC computes area under the ROC curve via the Mann-Whitney U statistic.
// Actuals must contain both classes.
func AUCROC(predictions, actuals []float64) (float64, error) {
	if err := checkLengths(predictions, actuals, "AUC-ROC"); err != nil {
		return 0, err
	}

	var nPos, nNeg float64
	for _, a := range actuals {
		if a == 1 {
			nPos++
		} else {
			nNeg++
		}
	}
	if nPos == 0 || nNeg == 0 {
		return 0, errors.New("AUC-ROC requires both positive and negative samples")
	}

	type pair struct {
		pred   float64
		actual float64
	}
	paired := make([]pair, len(predictions))
	for i := range predictions {
		paired[i] = pair{predictions[i], actuals[i]}
	}
	sort.Slice(paired, func(i, j int) bool { return paired[i].pred > paired[j].pred })

	// Count negative samples seen after each positive in prediction order.
	var auc, cumPos float64
	for _, p := range paired {
		if p.actual == 1 {
			cumPos++
		} else {
			auc += cumPos
		}
	}
	return round6(auc / (nPos * nNeg)), nil
}
