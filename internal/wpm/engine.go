// Package wpm implements the Weighted Product Method for ranking alternatives
// scored on benefit and cost criteria.
//
// The engine is a pure function of its input: it holds no state, never mutates
// the slices it is given and is safe for concurrent use.
package wpm

import (
	"fmt"
	"math"
	"sort"
)

// WeightSumTolerance is the absolute tolerance applied to the 100% weight sum.
const WeightSumTolerance = 1e-9

// EvaluateCriteria is Evaluate with weights and types taken from criteria.
func EvaluateCriteria(alternatives []Alternative, criteria []Criterion) (*Outcome, error) {
	weights := make([]float64, len(criteria))
	types := make([]CriterionType, len(criteria))
	for j, c := range criteria {
		weights[j] = c.Weight
		types[j] = c.Type
	}
	return Evaluate(alternatives, weights, types)
}

// Evaluate scores every alternative and selects the best one.
//
// weights are percentages that must sum to 100. Every value must be strictly
// positive. With no alternatives or no criteria the outcome is empty and no
// error is returned. The best alternative is the first one whose score is
// strictly greater than every score before it, so ties keep the earlier one.
func Evaluate(alternatives []Alternative, weights []float64, types []CriterionType) (*Outcome, error) {
	if len(weights) != len(types) {
		return nil, shapeError("%d weights for %d criterion types", len(weights), len(types))
	}

	numCriteria := len(weights)
	if len(alternatives) == 0 || numCriteria == 0 {
		return &Outcome{Scores: ScoreResult{}, Results: []AlternativeResult{}}, nil
	}

	if err := validateShape(alternatives, numCriteria); err != nil {
		return nil, err
	}
	if err := ValidateWeights(weights); err != nil {
		return nil, err
	}

	// All values are checked before any alternative is scored.
	minValues := make([]float64, numCriteria)
	maxValues := make([]float64, numCriteria)
	for j := range minValues {
		minValues[j] = math.Inf(1)
		maxValues[j] = math.Inf(-1)
	}
	for _, alt := range alternatives {
		for j, v := range alt.Values {
			if !(v > 0) {
				return nil, &ValidationError{
					Kind:        KindNonPositiveValue,
					Alternative: alt.Name,
					Criterion:   j + 1,
					Message: fmt.Sprintf("criterion values must not be zero or negative: alternative %q, criterion %d",
						alt.Name, j+1),
				}
			}
			minValues[j] = math.Min(minValues[j], v)
			maxValues[j] = math.Max(maxValues[j], v)
		}
	}

	exponents := make([]float64, numCriteria)
	for j, w := range weights {
		exponents[j] = w / 100
	}

	outcome := &Outcome{
		Scores:  make(ScoreResult, len(alternatives)),
		Results: make([]AlternativeResult, len(alternatives)),
	}

	highest := -1.0
	for i, alt := range alternatives {
		factors := make([]FactorResult, numCriteria)
		score := 1.0
		for j, v := range alt.Values {
			processed := v
			if types[j].IsCost() {
				processed = minValues[j] / v
			}
			contribution := math.Pow(processed, exponents[j])
			factors[j] = FactorResult{
				Criterion:    j + 1,
				Raw:          v,
				Processed:    processed,
				Exponent:     exponents[j],
				Contribution: contribution,
			}
			score *= contribution
		}

		outcome.Scores[alt.Name] = score
		outcome.Results[i] = AlternativeResult{Name: alt.Name, Score: score, Factors: factors}

		if score > highest {
			highest = score
			outcome.Best = alt.Name
			outcome.selected = true
		}
	}

	assignRanks(outcome.Results)
	return outcome, nil
}

// ValidateWeights checks that percentage weights sum to 100 and each lies in [0, 100].
// The sum is checked first.
func ValidateWeights(weights []float64) error {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	// Negated so that a NaN sum fails.
	if !(math.Abs(sum-100) <= WeightSumTolerance) {
		return &ValidationError{
			Kind:    KindWeightSumInvalid,
			Message: fmt.Sprintf("criterion weights must sum to 100%% (got %g%%)", sum),
		}
	}
	for j, w := range weights {
		if w < 0 || w > 100 {
			return &ValidationError{
				Kind:      KindWeightOutOfRange,
				Criterion: j + 1,
				Message:   fmt.Sprintf("criterion %d weight %g%% is outside [0, 100]", j+1, w),
			}
		}
	}
	return nil
}

func validateShape(alternatives []Alternative, numCriteria int) error {
	seen := make(map[string]struct{}, len(alternatives))
	for _, alt := range alternatives {
		if len(alt.Values) != numCriteria {
			e := shapeError("alternative %q has %d values for %d criteria", alt.Name, len(alt.Values), numCriteria)
			e.Alternative = alt.Name
			return e
		}
		if _, dup := seen[alt.Name]; dup {
			return &ValidationError{
				Kind:        KindDuplicateAlternative,
				Alternative: alt.Name,
				Message:     fmt.Sprintf("alternative name %q is used more than once", alt.Name),
			}
		}
		seen[alt.Name] = struct{}{}
	}
	return nil
}

// assignRanks sets 1-based ranks by descending score. Equal scores rank in input order.
func assignRanks(results []AlternativeResult) {
	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return results[order[a]].Score > results[order[b]].Score
	})
	for rank, idx := range order {
		results[idx].Rank = rank + 1
	}
}
