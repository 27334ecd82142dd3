package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/strainwise/strainwise/internal/domain"
)

// recommender is the consumer interface for the recommendation pipeline (ISP).
type recommender interface {
	GetRecommendations(ctx context.Context, req domain.RecommendationRequest) ([]domain.AnnotatedStrain, error)
}

// strainReader is the consumer interface for the strain catalog (ISP).
type strainReader interface {
	All() []domain.Strain
	ByID(id string) (domain.Strain, error)
	TopRated(n int) []domain.Strain
}

// priorityLister exposes the curated priority subset (ISP).
type priorityLister interface {
	Current() []domain.Strain
}

// pinger reports backing-store liveness for the health endpoint.
type pinger interface {
	Ping(ctx context.Context) error
}

// ErrorCode identifies an API error class.
type ErrorCode string

const (
	CodeBadRequest    ErrorCode = "bad_request"
	CodeNotFound      ErrorCode = "strain_not_found"
	CodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body for every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

const defaultTopLimit = 10

// Server exposes the recommendation pipeline over HTTP.
type Server struct {
	recommender recommender
	catalog     strainReader
	priority    priorityLister
	cache       pinger
	logger      *zap.Logger
}

// NewServer creates an HTTP API server. cache may be nil when no cache store
// is configured.
func NewServer(rec recommender, catalog strainReader, priority priorityLister, cache pinger, logger *zap.Logger) *Server {
	return &Server{
		recommender: rec,
		catalog:     catalog,
		priority:    priority,
		cache:       cache,
		logger:      logger,
	}
}

// Routes mounts all API routes on r.
func (s *Server) Routes(r chi.Router) {
	r.Post("/api/recommendations", s.PostRecommendations)
	r.Get("/api/strains", s.ListStrains)
	r.Get("/api/strains/top", s.TopStrains)
	r.Get("/api/strains/{id}", s.GetStrain)
	r.Get("/healthz", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// PostRecommendations handles POST /api/recommendations.
func (s *Server) PostRecommendations(w http.ResponseWriter, r *http.Request) {
	var req domain.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Mood == "" || req.ExperienceLevel == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Mood and experience level are required")
		return
	}

	recs, err := s.recommender.GetRecommendations(r.Context(), req)
	if err != nil {
		s.logger.Error("Recommendation pipeline failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

// ListStrains handles GET /api/strains.
func (s *Server) ListStrains(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.All())
}

// TopStrains handles GET /api/strains/top. Serves the curated priority
// subset; limits above its size fall back to top-rated catalog entries.
func (s *Server) TopStrains(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	list := s.priority.Current()
	if limit <= len(list) {
		writeJSON(w, http.StatusOK, list[:limit])
		return
	}
	writeJSON(w, http.StatusOK, s.catalog.TopRated(limit))
}

// GetStrain handles GET /api/strains/{id}.
func (s *Server) GetStrain(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	strain, err := s.catalog.ByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrStrainNotFound) {
			writeError(w, http.StatusNotFound, CodeNotFound, "Strain not found: "+id)
			return
		}
		s.logger.Error("Catalog lookup failed", zap.String("strain_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, strain)
}

// HealthCheck handles GET /healthz. The cache is optional infrastructure, so
// an unreachable cache degrades the reported status without failing the endpoint.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}

	if s.cache != nil {
		if err := s.cache.Ping(r.Context()); err != nil {
			s.logger.Warn("Cache health check failed", zap.Error(err))
			status["cache"] = "unavailable"
		} else {
			status["cache"] = "ok"
		}
	}

	writeJSON(w, http.StatusOK, status)
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
