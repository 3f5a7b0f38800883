package api

import (
	"net/http"
	"sync"
	"time"
)

// Stats counts evaluations served by this process. It is not persisted.
type Stats struct {
	mu               sync.Mutex
	completed        int
	empty            int
	rejectedByKind   map[string]int
	lastEvaluationAt time.Time
}

type StatsSnapshot struct {
	Completed        int            `json:"completed"`
	Empty            int            `json:"empty"`
	Rejected         int            `json:"rejected"`
	RejectedByKind   map[string]int `json:"rejected_by_kind"`
	LastEvaluationAt *time.Time     `json:"last_evaluation_at,omitempty"`
}

func NewStats() *Stats {
	return &Stats{rejectedByKind: make(map[string]int)}
}

func (s *Stats) recordCompleted(empty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if empty {
		s.empty++
	} else {
		s.completed++
	}
	s.lastEvaluationAt = time.Now()
}

func (s *Stats) recordRejected(kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectedByKind[kind]++
	s.lastEvaluationAt = time.Now()
}

func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := StatsSnapshot{
		Completed:      s.completed,
		Empty:          s.empty,
		RejectedByKind: make(map[string]int, len(s.rejectedByKind)),
	}
	for k, v := range s.rejectedByKind {
		snap.RejectedByKind[k] = v
		snap.Rejected += v
	}
	if !s.lastEvaluationAt.IsZero() {
		t := s.lastEvaluationAt
		snap.LastEvaluationAt = &t
	}
	return snap
}

type AdminHandler struct {
	stats *Stats
}

func NewAdminHandler(stats *Stats) *AdminHandler {
	return &AdminHandler{stats: stats}
}

// Stats handles GET /api/v1/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.stats.Snapshot())
}
