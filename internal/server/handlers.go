package server

import (
	"net/http"

	"smart-meal-planner/internal/plan"
	"smart-meal-planner/internal/planner"
)

// planResponse is the envelope every plan endpoint answers with.
type planResponse struct {
	State        planner.State        `json:"state"`
	Plan         *plan.WeeklyPlanData `json:"plan,omitempty"`
	Regenerating []string             `json:"regenerating,omitempty"`
}

func newPlanResponse(sess *planner.Session) planResponse {
	return planResponse{
		State:        sess.State(),
		Plan:         sess.Current(),
		Regenerating: sess.RegeneratingDays(),
	}
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var prefs plan.Preferences
	if err := decodeBody(r, &prefs); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := plan.ValidatePreferences(prefs); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess := s.session(r)
	if _, err := sess.GenerateWeek(r.Context(), prefs); err != nil {
		s.respondPlannerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newPlanResponse(sess))
}

type dayRequest struct {
	Day string `json:"day"`
}

func (s *Server) handleRegenerateDay(w http.ResponseWriter, r *http.Request) {
	var req dayRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !plan.IsWeekday(req.Day) {
		respondError(w, http.StatusBadRequest, "unknown weekday: "+req.Day)
		return
	}

	sess := s.session(r)
	if _, err := sess.RegenerateDay(r.Context(), req.Day); err != nil {
		s.respondPlannerError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newPlanResponse(sess))
}

func (s *Server) handleCancelDay(w http.ResponseWriter, r *http.Request) {
	var req dayRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !plan.IsWeekday(req.Day) {
		respondError(w, http.StatusBadRequest, "unknown weekday: "+req.Day)
		return
	}

	sess := s.session(r)
	sess.CancelDay(req.Day)
	respondJSON(w, http.StatusOK, newPlanResponse(sess))
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newPlanResponse(s.session(r)))
}

func (s *Server) handleDiscardPlan(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)
	sess.Discard()
	respondJSON(w, http.StatusOK, newPlanResponse(sess))
}
