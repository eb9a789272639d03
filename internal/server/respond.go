package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"smart-meal-planner/internal/llm"
	"smart-meal-planner/internal/plan"
	"smart-meal-planner/internal/planner"
	"smart-meal-planner/internal/snapshot"
)

type errorBody struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorBody{Error: msg})
}

// respondPlannerError maps the generation and session error taxonomy to
// HTTP statuses. Upstream model failures are 502s: the request was
// fine, the provider was not.
func (s *Server) respondPlannerError(w http.ResponseWriter, err error) {
	var (
		authErr      *llm.AuthError
		transportErr *llm.TransportError
		emptyErr     *llm.EmptyResponseError
		malformedErr *planner.MalformedResponseError
		validErr     *plan.ValidationError
	)

	switch {
	case errors.Is(err, planner.ErrGenerationInFlight),
		errors.Is(err, planner.ErrDayInFlight),
		errors.Is(err, planner.ErrStaleResult),
		errors.Is(err, planner.ErrDiscarded):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, planner.ErrNoPlan):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &authErr):
		respondError(w, http.StatusBadGateway, err.Error())
	case errors.As(err, &transportErr), errors.As(err, &emptyErr),
		errors.As(err, &malformedErr), errors.As(err, &validErr):
		respondError(w, http.StatusBadGateway, err.Error())
	default:
		s.logger.Error("unhandled planner error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// respondSnapshotError maps persistence errors; a rejected or missing
// token is the caller's problem.
func (s *Server) respondSnapshotError(w http.ResponseWriter, err error) {
	var authErr *snapshot.AuthError
	if errors.As(err, &authErr) {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}
	s.logger.Error("snapshot store error", zap.Error(err))
	respondError(w, http.StatusBadGateway, err.Error())
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
