// Package matrix holds the editable decision matrix exchanged with the engine:
// the file format of tallyctl, the request body of the HTTP API and the
// sizing reconciliation applied when the number of rows or columns changes.
package matrix

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Tally/internal/wpm"
)

// Matrix is a decision matrix: criteria as columns, alternatives as rows.
type Matrix struct {
	Criteria     []wpm.Criterion   `json:"criteria" yaml:"criteria"`
	Alternatives []wpm.Alternative `json:"alternatives" yaml:"alternatives"`
}

// Size returns the number of alternatives and criteria.
func (m Matrix) Size() (alternatives, criteria int) {
	return len(m.Alternatives), len(m.Criteria)
}

// Types returns the criterion types in column order.
func (m Matrix) Types() []wpm.CriterionType {
	types := make([]wpm.CriterionType, len(m.Criteria))
	for j, c := range m.Criteria {
		types[j] = c.Type
	}
	return types
}

// Evaluate runs the weighted product method over the matrix.
func (m Matrix) Evaluate() (*wpm.Outcome, error) {
	return wpm.EvaluateCriteria(m.Alternatives, m.Criteria)
}

// DefaultAlternativeName is the generated name of the i-th (0-based) alternative.
func DefaultAlternativeName(i int) string {
	return fmt.Sprintf("Alternative %d", i+1)
}

// DefaultCriterionName is the generated name of the j-th (0-based) criterion.
func DefaultCriterionName(j int) string {
	return fmt.Sprintf("Criterion %d", j+1)
}

// New returns a blank matrix. Weights are split evenly, every criterion is a
// benefit and every value is 0. Counts below 1 are raised to 1.
func New(numAlternatives, numCriteria int) Matrix {
	numAlternatives, numCriteria = clampCount(numAlternatives), clampCount(numCriteria)

	m := Matrix{
		Criteria:     make([]wpm.Criterion, numCriteria),
		Alternatives: make([]wpm.Alternative, numAlternatives),
	}
	weight := 100 / float64(numCriteria)
	for j := range m.Criteria {
		m.Criteria[j] = wpm.Criterion{Name: DefaultCriterionName(j), Weight: weight, Type: wpm.Benefit}
	}
	for i := range m.Alternatives {
		m.Alternatives[i] = wpm.Alternative{Name: DefaultAlternativeName(i), Values: make([]float64, numCriteria)}
	}
	return m
}

// Resize reconciles prev with a new sizing and returns a fresh matrix.
//
// Existing names, weights, types and values are kept where their slot still
// exists. Missing or empty names get the generated default, new weights and
// values are 0 and new criteria are benefits. Counts below 1 are raised to 1.
// prev is not modified.
func Resize(prev Matrix, numAlternatives, numCriteria int) Matrix {
	numAlternatives, numCriteria = clampCount(numAlternatives), clampCount(numCriteria)

	m := Matrix{
		Criteria:     make([]wpm.Criterion, numCriteria),
		Alternatives: make([]wpm.Alternative, numAlternatives),
	}

	for j := range m.Criteria {
		c := wpm.Criterion{Name: DefaultCriterionName(j), Type: wpm.Benefit}
		if j < len(prev.Criteria) {
			old := prev.Criteria[j]
			if old.Name != "" {
				c.Name = old.Name
			}
			c.Weight = old.Weight
			if old.Type != "" {
				c.Type = old.Type
			}
		}
		m.Criteria[j] = c
	}

	for i := range m.Alternatives {
		alt := wpm.Alternative{Name: DefaultAlternativeName(i), Values: make([]float64, numCriteria)}
		if i < len(prev.Alternatives) {
			old := prev.Alternatives[i]
			if old.Name != "" {
				alt.Name = old.Name
			}
			copy(alt.Values, old.Values)
		}
		m.Alternatives[i] = alt
	}
	return m
}

func clampCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Load reads a decision matrix from a YAML (.yaml, .yml) or JSON (.json) file.
func Load(path string) (Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Matrix{}, fmt.Errorf("read matrix: %w", err)
	}

	var m Matrix
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return Matrix{}, fmt.Errorf("parse matrix: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return Matrix{}, fmt.Errorf("parse matrix: %w", err)
		}
	default:
		return Matrix{}, fmt.Errorf("unsupported matrix file extension %q", filepath.Ext(path))
	}
	return m, nil
}

// Save writes m as YAML to path.
func Save(path string, m Matrix) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode matrix: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write matrix: %w", err)
	}
	return nil
}

// FormatScore renders a score with a fixed number of decimals. A negative
// precision falls back to DefaultPrecision.
func FormatScore(score float64, precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return fmt.Sprintf("%.*f", precision, score)
}

// DefaultPrecision is the number of decimals scores are displayed with.
const DefaultPrecision = 6
