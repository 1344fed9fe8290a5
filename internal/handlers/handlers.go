package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"feedback-browser/internal/logger"
	"feedback-browser/internal/middleware"
	"feedback-browser/internal/models"
	"feedback-browser/internal/repository"
)

const defaultMaxBodySize = 1 << 20

// Grouper sends filtered feedback to the grouping collaborator.
type Grouper interface {
	Group(ctx context.Context, feedback []models.Feedback) ([]models.Feedback, error)
}

type Handler struct {
	feedbackRepo repository.FeedbackRepository
	grouper      Grouper
	maxBodySize  int64
}

// New builds the HTTP handlers. A non-positive maxBodySize uses 1 MiB.
func New(repo repository.FeedbackRepository, grouper Grouper, maxBodySize int64) *Handler {
	if maxBodySize <= 0 {
		maxBodySize = defaultMaxBodySize
	}
	return &Handler{
		feedbackRepo: repo,
		grouper:      grouper,
		maxBodySize:  maxBodySize,
	}
}

// Routes registers every endpoint on r. The bare /query and /groups paths
// are kept for clients built against the first version of the API.
func (h *Handler) Routes(r *mux.Router) {
	// Full paths on the root router: a GET route on an /api subrouter would
	// turn method mismatches on its POST routes into 404s.
	r.HandleFunc("/api/query", h.Query).Methods("POST")
	r.HandleFunc("/api/groups", h.Groups).Methods("POST")
	r.HandleFunc("/api/filters", h.GetFilters).Methods("GET")
	r.HandleFunc("/api/feedback/{id:[0-9]+}", h.GetFeedback).Methods("GET")

	r.HandleFunc("/query", h.Query).Methods("POST")
	r.HandleFunc("/groups", h.Groups).Methods("POST")
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, msg string, details any) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}

func requestLogger(r *http.Request) *slog.Logger {
	return logger.WithRequest(middleware.RequestIDFromContext(r.Context()))
}
