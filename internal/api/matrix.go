package api

import (
	"fmt"
	"net/http"

	"github.com/MikeSquared-Agency/Tally/internal/config"
	"github.com/MikeSquared-Agency/Tally/internal/matrix"
)

type MatrixHandler struct {
	limits config.EvaluationConfig
}

func NewMatrixHandler(limits config.EvaluationConfig) *MatrixHandler {
	return &MatrixHandler{limits: limits}
}

type TemplateRequest struct {
	Alternatives int `json:"alternatives"`
	Criteria     int `json:"criteria"`
}

type ResizeRequest struct {
	Matrix       matrix.Matrix `json:"matrix"`
	Alternatives int           `json:"alternatives"`
	Criteria     int           `json:"criteria"`
}

// Template handles POST /api/v1/matrix
func (h *MatrixHandler) Template(w http.ResponseWriter, r *http.Request) {
	var req TemplateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !withinLimits(w, h.limits, req.Alternatives, req.Criteria) {
		return
	}
	writeJSON(w, http.StatusOK, matrix.New(req.Alternatives, req.Criteria))
}

// Resize handles POST /api/v1/matrix/resize
func (h *MatrixHandler) Resize(w http.ResponseWriter, r *http.Request) {
	var req ResizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !withinLimits(w, h.limits, req.Alternatives, req.Criteria) {
		return
	}
	writeJSON(w, http.StatusOK, matrix.Resize(req.Matrix, req.Alternatives, req.Criteria))
}

// withinLimits writes a 413 and returns false when the matrix is too large.
func withinLimits(w http.ResponseWriter, limits config.EvaluationConfig, alternatives, criteria int) bool {
	if alternatives > limits.MaxAlternatives || criteria > limits.MaxCriteria {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf(
			"matrix of %d alternatives x %d criteria exceeds limit of %d x %d",
			alternatives, criteria, limits.MaxAlternatives, limits.MaxCriteria))
		return false
	}
	return true
}
