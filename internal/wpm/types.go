package wpm

import (
	"fmt"
	"strings"
)

// CriterionType marks whether higher (benefit) or lower (cost) values are preferable.
type CriterionType string

const (
	Benefit CriterionType = "benefit"
	Cost    CriterionType = "cost"
)

// UnmarshalText accepts "benefit" or "cost" in any case. An empty type is a benefit.
func (t *CriterionType) UnmarshalText(text []byte) error {
	switch CriterionType(strings.ToLower(strings.TrimSpace(string(text)))) {
	case Benefit, "":
		*t = Benefit
	case Cost:
		*t = Cost
	default:
		return fmt.Errorf("unknown criterion type %q (want benefit or cost)", string(text))
	}
	return nil
}

// IsCost reports whether lower values of the criterion are preferable.
func (t CriterionType) IsCost() bool {
	return t == Cost
}

// Criterion is one evaluation dimension. Weight is a percentage.
type Criterion struct {
	Name   string        `json:"name" yaml:"name"`
	Weight float64       `json:"weight" yaml:"weight"`
	Type   CriterionType `json:"type" yaml:"type"`
}

// Alternative is one candidate option. Values align positionally with the criteria.
type Alternative struct {
	Name   string    `json:"name" yaml:"name"`
	Values []float64 `json:"values" yaml:"values"`
}

// ScoreResult maps alternative name to its WPM score.
type ScoreResult map[string]float64

// FactorResult captures one criterion's contribution to an alternative's score.
type FactorResult struct {
	Criterion    int     `json:"criterion"`
	Raw          float64 `json:"raw"`
	Processed    float64 `json:"processed"`
	Exponent     float64 `json:"exponent"`
	Contribution float64 `json:"contribution"`
}

// AlternativeResult is the scoring output for a single alternative.
type AlternativeResult struct {
	Name    string         `json:"name"`
	Score   float64        `json:"score"`
	Rank    int            `json:"rank"`
	Factors []FactorResult `json:"factors"`
}

// Outcome is the ranking produced by Evaluate. Results keep the input order.
type Outcome struct {
	Scores  ScoreResult         `json:"scores"`
	Best    string              `json:"best_alternative,omitempty"`
	Results []AlternativeResult `json:"results"`

	selected bool
}

// HasBest reports whether a best alternative was selected. It is false for
// empty input and when no score is comparable (every score NaN).
func (o *Outcome) HasBest() bool {
	return o.selected
}

// BestScore returns the score of the best alternative, or 0 when there is none.
func (o *Outcome) BestScore() float64 {
	if !o.HasBest() {
		return 0
	}
	return o.Scores[o.Best]
}
