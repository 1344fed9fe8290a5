package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"feedback-browser/internal/filter"
	"feedback-browser/internal/grouping"
	"feedback-browser/internal/models"
)

// AllFeedbackGroup names the single group the grouped view returns.
const AllFeedbackGroup = "All feedback"

type queryRequest struct {
	Filters json.RawMessage `json:"filters"`
}

type queryResponse struct {
	Data []models.Feedback `json:"data"`
}

type groupsResponse struct {
	Data []models.Group `json:"data"`
}

// Query returns the feedback matching the posted filters as {"data": [...]}.
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	feedback, ok := h.filteredFeedback(w, r)
	if !ok {
		return
	}

	requestLogger(r).Debug("feedback filtered", slog.Int("record_count", len(feedback)))
	writeJSON(w, http.StatusOK, queryResponse{Data: feedback})
}

// Groups filters like Query, forwards the result to the grouping service and
// wraps its reply in a single "All feedback" group.
func (h *Handler) Groups(w http.ResponseWriter, r *http.Request) {
	feedback, ok := h.filteredFeedback(w, r)
	if !ok {
		return
	}

	grouped, err := h.grouper.Group(r.Context(), feedback)
	if err != nil {
		requestLogger(r).Error("grouping failed",
			slog.Int("record_count", len(feedback)),
			slog.String("error", err.Error()),
		)
		status := http.StatusBadGateway
		if !errors.Is(err, grouping.ErrCollaborator) {
			status = http.StatusInternalServerError
		}
		writeError(w, status, "grouping service failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, groupsResponse{Data: []models.Group{
		{Name: AllFeedbackGroup, Feedback: grouped},
	}})
}

// filteredFeedback decodes the request filters and applies them to the stored
// feedback. On failure it writes the error response and returns false.
func (h *Handler) filteredFeedback(w http.ResponseWriter, r *http.Request) ([]models.Feedback, bool) {
	set, status, resp := h.decodeFilters(w, r)
	if resp != nil {
		writeJSON(w, status, resp)
		return nil, false
	}

	all, err := h.feedbackRepo.GetAll(r.Context())
	if err != nil {
		requestLogger(r).Error("loading feedback failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to load feedback", nil)
		return nil, false
	}

	feedback, err := filter.Apply(all, set)
	if err != nil {
		// Constraints are validated while decoding, so what is left here is bad stored data.
		requestLogger(r).Error("filtering feedback failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to filter feedback", err.Error())
		return nil, false
	}
	return feedback, true
}

func (h *Handler) decodeFilters(w http.ResponseWriter, r *http.Request) (filter.ConstraintSet, int, *errorResponse) {
	var req queryRequest
	body := http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, http.StatusRequestEntityTooLarge, &errorResponse{
				Error: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			}
		}
		return nil, http.StatusBadRequest, &errorResponse{Error: "invalid request body", Details: err.Error()}
	}

	set, violations, err := filter.Decode(req.Filters)
	if len(violations) > 0 {
		return nil, http.StatusBadRequest, &errorResponse{Error: "invalid filters", Details: violations}
	}
	if err != nil {
		return nil, http.StatusBadRequest, &errorResponse{Error: "invalid filters", Details: err.Error()}
	}
	return set, 0, nil
}
