package server

import (
	"errors"
	"net/http"

	"smart-meal-planner/internal/export"
	"smart-meal-planner/internal/plan"
	"smart-meal-planner/internal/planner"
)

type exportRequest struct {
	Target string `json:"target,omitempty"`
	Name   string `json:"name,omitempty"`
}

// currentPlan fetches the session's plan for exporting; exporting an
// empty session is a 404.
func (s *Server) currentPlan(r *http.Request) (*plan.WeeklyPlanData, *plan.Preferences, error) {
	sess := s.session(r)
	current := sess.Current()
	if current == nil {
		return nil, nil, planner.ErrNoPlan
	}
	prefs, ok := sess.Preferences()
	if !ok {
		return current, nil, nil
	}
	return current, &prefs, nil
}

func (s *Server) handleExportMarkdown(w http.ResponseWriter, r *http.Request) {
	current, prefs, err := s.currentPlan(r)
	if err != nil {
		s.respondPlannerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="meal-plan.md"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.Markdown(*current, prefs, s.now())))
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	current, _, err := s.currentPlan(r)
	if err != nil {
		s.respondPlannerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="shopping-list.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.ShoppingListCSV(current.ShoppingList)))
}

func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if r.ContentLength > 0 {
		if err := decodeBody(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	current, prefs, err := s.currentPlan(r)
	if err != nil {
		s.respondPlannerError(w, err)
		return
	}

	var out []byte
	switch req.Target {
	case "", "plan":
		out, err = export.PlanJSON(*current, prefs, req.Name, s.now())
	case "recipes":
		out, err = export.RecipesJSON(current.Recipes, req.Name, s.now())
	case "list":
		out, err = export.ListJSON(current.ShoppingList, req.Name, s.now())
	default:
		respondError(w, http.StatusBadRequest, "unknown export target: "+req.Target)
		return
	}
	if err != nil {
		s.respondPlannerError(w, errors.New("export failed: "+err.Error()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="meal-plan.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
