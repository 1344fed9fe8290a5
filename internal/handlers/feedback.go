package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/gorilla/mux"

	"feedback-browser/internal/filter"
	"feedback-browser/internal/repository"
)

// FilterColumn describes one column the filter bar can constrain.
type FilterColumn struct {
	Key    string   `json:"key"`
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Values []string `json:"values,omitempty"`
}

func (h *Handler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid feedback ID", nil)
		return
	}

	f, err := h.feedbackRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			writeError(w, http.StatusNotFound, "feedback not found", nil)
			return
		}
		requestLogger(r).Error("loading feedback failed", slog.Int("feedback_id", id), slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to load feedback", nil)
		return
	}

	writeJSON(w, http.StatusOK, f)
}

// GetFilters lists the filterable columns. Select columns carry the values
// present in the data, falling back to every allowed value when none are stored.
func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	fields := filter.Fields()
	columns := make([]FilterColumn, 0, len(fields))

	for _, field := range fields {
		col := FilterColumn{
			Key:  string(field),
			Name: field.DisplayName(),
			Type: field.Kind().String(),
		}

		if field.Kind() == filter.KindDiscrete {
			values, err := h.feedbackRepo.DistinctValues(r.Context(), string(field))
			if err != nil {
				requestLogger(r).Error("listing filter values failed", slog.String("field", string(field)), slog.String("error", err.Error()))
				writeError(w, http.StatusInternalServerError, "failed to list filter values", nil)
				return
			}
			if len(values) == 0 {
				values = field.AllowedValues()
			}
			col.Values = sortByAllowedOrder(values, field.AllowedValues())
		}

		columns = append(columns, col)
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": columns})
}

// sortByAllowedOrder orders values the way the enum declares them.
func sortByAllowedOrder(values, allowed []string) []string {
	rank := make(map[string]int, len(allowed))
	for i, v := range allowed {
		rank[v] = i
	}
	out := append([]string(nil), values...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iok := rank[out[i]]
		rj, jok := rank[out[j]]
		if iok != jok {
			return iok
		}
		return ri < rj
	})
	return out
}
