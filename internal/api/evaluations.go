package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Tally/internal/config"
	"github.com/MikeSquared-Agency/Tally/internal/hermes"
	"github.com/MikeSquared-Agency/Tally/internal/matrix"
	"github.com/MikeSquared-Agency/Tally/internal/metrics"
	"github.com/MikeSquared-Agency/Tally/internal/wpm"
)

type EvaluationHandler struct {
	events *hermes.Publisher
	stats  *Stats
	cfg    config.EvaluationConfig
	logger *slog.Logger
}

func NewEvaluationHandler(events *hermes.Publisher, stats *Stats, cfg config.EvaluationConfig, logger *slog.Logger) *EvaluationHandler {
	return &EvaluationHandler{events: events, stats: stats, cfg: cfg, logger: logger}
}

type EvaluationResponse struct {
	EvaluationID    string                  `json:"evaluation_id"`
	Scores          wpm.ScoreResult         `json:"scores"`
	DisplayScores   map[string]string       `json:"display_scores"`
	BestAlternative *string                 `json:"best_alternative,omitempty"`
	BestScore       *float64                `json:"best_score,omitempty"`
	Results         []wpm.AlternativeResult `json:"results"`
	ParetoFrontier  []string                `json:"pareto_frontier,omitempty"`
}

type ValidationErrorResponse struct {
	EvaluationID string `json:"evaluation_id"`
	Error        string `json:"error"`
	Kind         string `json:"kind"`
	Alternative  string `json:"alternative,omitempty"`
	Criterion    int    `json:"criterion,omitempty"`
}

// Evaluate handles POST /api/v1/evaluations
func (h *EvaluationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var m matrix.Matrix
	if !decodeJSON(w, r, &m) {
		return
	}

	numAlternatives, numCriteria := m.Size()
	if !withinLimits(w, h.cfg, numAlternatives, numCriteria) {
		return
	}

	id := uuid.New().String()
	start := time.Now()
	outcome, err := m.Evaluate()
	metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
	metrics.AlternativesPerEvaluation.Observe(float64(numAlternatives))

	if err != nil {
		ve, ok := wpm.AsValidationError(err)
		if !ok {
			h.logger.Error("evaluation failed", "evaluation_id", id, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		h.reject(w, id, ve)
		return
	}

	resp := EvaluationResponse{
		EvaluationID:  id,
		Scores:        outcome.Scores,
		DisplayScores: make(map[string]string, len(outcome.Scores)),
		Results:       outcome.Results,
	}
	for name, score := range outcome.Scores {
		resp.DisplayScores[name] = matrix.FormatScore(score, h.cfg.ScorePrecision)
	}
	if outcome.HasBest() {
		best, score := outcome.Best, outcome.BestScore()
		resp.BestAlternative = &best
		resp.BestScore = &score
	}
	if h.cfg.ParetoEnabled {
		resp.ParetoFrontier = wpm.Frontier(m.Alternatives, m.Types())
	}

	if outcome.HasBest() {
		metrics.EvaluationsTotal.WithLabelValues(metrics.OutcomeCompleted).Inc()
	} else {
		metrics.EvaluationsTotal.WithLabelValues(metrics.OutcomeEmpty).Inc()
	}
	h.stats.recordCompleted(!outcome.HasBest())
	h.events.Completed(hermes.EvaluationCompletedEvent{
		EvaluationID:    id,
		Alternatives:    numAlternatives,
		Criteria:        numCriteria,
		BestAlternative: outcome.Best,
		BestScore:       outcome.BestScore(),
		Timestamp:       time.Now().UTC(),
	})
	h.logger.Info("evaluation completed",
		"evaluation_id", id,
		"alternatives", numAlternatives,
		"criteria", numCriteria,
		"best", outcome.Best,
	)

	writeJSON(w, http.StatusOK, resp)
}

func (h *EvaluationHandler) reject(w http.ResponseWriter, id string, ve *wpm.ValidationError) {
	kind := string(ve.Kind)
	metrics.EvaluationsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
	metrics.ValidationErrorsTotal.WithLabelValues(kind).Inc()
	h.stats.recordRejected(kind)
	h.events.Rejected(hermes.EvaluationRejectedEvent{
		EvaluationID: id,
		Kind:         kind,
		Error:        ve.Error(),
		Timestamp:    time.Now().UTC(),
	})
	h.logger.Warn("evaluation rejected", "evaluation_id", id, "kind", kind, "error", ve.Error())

	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		EvaluationID: id,
		Error:        ve.Error(),
		Kind:         kind,
		Alternative:  ve.Alternative,
		Criterion:    ve.Criterion,
	})
}
