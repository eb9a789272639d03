package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"smart-meal-planner/internal/plan"
	"smart-meal-planner/internal/planner"
	"smart-meal-planner/internal/snapshot"
)

type saveSnapshotRequest struct {
	Name     string       `json:"name,omitempty"`
	RecipeID string       `json:"recipeId,omitempty"`
	Recipe   *plan.Recipe `json:"recipe,omitempty"`
}

type savedResponse struct {
	ID string `json:"id"`
}

// snapshotKind parses the {kind} path segment and checks the store is
// configured at all.
func (s *Server) snapshotKind(w http.ResponseWriter, r *http.Request) (snapshot.Kind, bool) {
	if s.store == nil {
		respondError(w, http.StatusServiceUnavailable, "snapshot storage is not configured")
		return "", false
	}
	kind, ok := snapshot.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		respondError(w, http.StatusNotFound, "unknown snapshot kind")
		return "", false
	}
	return kind, true
}

func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	kind, ok := s.snapshotKind(w, r)
	if !ok {
		return
	}
	token := bearerToken(r)

	var (
		out any
		err error
	)
	switch kind {
	case snapshot.KindPlan:
		out, err = s.store.ListPlans(r.Context(), token)
	case snapshot.KindRecipe:
		out, err = s.store.ListRecipes(r.Context(), token)
	case snapshot.KindList:
		out, err = s.store.ListLists(r.Context(), token)
	}
	if err != nil {
		s.respondSnapshotError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleSaveSnapshot(w http.ResponseWriter, r *http.Request) {
	kind, ok := s.snapshotKind(w, r)
	if !ok {
		return
	}
	token := bearerToken(r)

	var req saveSnapshotRequest
	if r.ContentLength > 0 {
		if err := decodeBody(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	var (
		id  string
		err error
	)
	switch kind {
	case snapshot.KindPlan:
		sess := s.session(r)
		current := sess.Current()
		if current == nil {
			s.respondPlannerError(w, planner.ErrNoPlan)
			return
		}
		prefs, _ := sess.Preferences()
		id, err = s.store.SavePlan(r.Context(), token, req.Name, prefs, *current)
	case snapshot.KindRecipe:
		rec, ok := s.recipeToSave(r, req)
		if !ok {
			respondError(w, http.StatusBadRequest, "recipe or recipeId required")
			return
		}
		id, err = s.store.SaveRecipe(r.Context(), token, rec)
	case snapshot.KindList:
		sess := s.session(r)
		current := sess.Current()
		if current == nil {
			s.respondPlannerError(w, planner.ErrNoPlan)
			return
		}
		id, err = s.store.SaveList(r.Context(), token, req.Name, current.ShoppingList)
	}
	if err != nil {
		s.respondSnapshotError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, savedResponse{ID: id})
}

// recipeToSave resolves the recipe payload: either inline, or by id
// against the session's current plan.
func (s *Server) recipeToSave(r *http.Request, req saveSnapshotRequest) (plan.Recipe, bool) {
	if req.Recipe != nil {
		return *req.Recipe, true
	}
	if req.RecipeID == "" {
		return plan.Recipe{}, false
	}
	current := s.session(r).Current()
	if current == nil {
		return plan.Recipe{}, false
	}
	return current.RecipeByID(req.RecipeID)
}

func (s *Server) handleDeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	kind, ok := s.snapshotKind(w, r)
	if !ok {
		return
	}
	token := bearerToken(r)
	id := chi.URLParam(r, "id")

	var err error
	switch kind {
	case snapshot.KindPlan:
		err = s.store.DeletePlan(r.Context(), token, id)
	case snapshot.KindRecipe:
		err = s.store.DeleteRecipe(r.Context(), token, id)
	case snapshot.KindList:
		err = s.store.DeleteList(r.Context(), token, id)
	}
	if err != nil {
		s.respondSnapshotError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
