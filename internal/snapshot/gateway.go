package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"smart-meal-planner/internal/config"
	"smart-meal-planner/internal/plan"
)

const (
	plansTable   = "saved_plans"
	recipesTable = "saved_recipes"
	listsTable   = "saved_lists"
)

// AuthError means the persistence identity could not be resolved:
// missing token, or the auth service rejected it.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "persistence auth error: " + e.Reason
}

// Gateway stores named snapshots of plans, recipes and shopping lists
// in Supabase, scoped to the authenticated user. The identity is
// re-resolved against the auth service on every call rather than
// cached, so a sign-out racing an in-flight save surfaces as an auth
// error instead of writing under a dead identity.
type Gateway struct {
	client *supabase.Client
}

// NewGateway creates a gateway backed by the configured Supabase
// project.
func NewGateway(cfg *config.Config) (*Gateway, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}
	return &Gateway{client: client}, nil
}

// resolveUser exchanges a bearer token for the owning user id.
func (g *Gateway) resolveUser(token string) (string, error) {
	if token == "" {
		return "", &AuthError{Reason: "no access token provided"}
	}
	user, err := g.client.Auth.WithToken(token).GetUser()
	if err != nil {
		return "", &AuthError{Reason: fmt.Sprintf("token rejected: %v", err)}
	}
	return user.ID.String(), nil
}

// SavePlan stores a named plan snapshot and fans its recipes out into
// individually addressable recipe snapshots linked by the plan id.
func (g *Gateway) SavePlan(ctx context.Context, token, name string, prefs plan.Preferences, data plan.WeeklyPlanData) (string, error) {
	userID, err := g.resolveUser(token)
	if err != nil {
		return "", err
	}

	row := NewSavedPlan(userID, name, prefs, data)
	now := time.Now().UTC()
	row.CreatedAt = now
	row.UpdatedAt = now

	var inserted []SavedPlan
	if err := g.insert(plansTable, row, &inserted); err != nil {
		return "", fmt.Errorf("failed to save plan: %w", err)
	}
	if len(inserted) == 0 {
		return "", fmt.Errorf("failed to save plan: no row returned")
	}
	planID := inserted[0].ID

	for _, rec := range data.Recipes {
		recipeRow := SavedRecipe{
			UserID:    userID,
			PlanID:    planID,
			Recipe:    rec,
			CreatedAt: now,
		}
		if err := g.insert(recipesTable, recipeRow, nil); err != nil {
			// The plan itself is saved; a failed fan-out row is not
			// fatal, matching the save contract.
			continue
		}
	}

	return planID, nil
}

// ListPlans returns the user's plan snapshots, most recently updated
// first.
func (g *Gateway) ListPlans(ctx context.Context, token string) ([]SavedPlan, error) {
	userID, err := g.resolveUser(token)
	if err != nil {
		return nil, err
	}

	data, _, err := g.client.From(plansTable).
		Select("*", "", false).
		Eq("user_id", userID).
		Order("updated_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	var plans []SavedPlan
	if err := json.Unmarshal(data, &plans); err != nil {
		return nil, fmt.Errorf("failed to decode plans: %w", err)
	}
	return plans, nil
}

// DeletePlan removes one of the user's plan snapshots and its fanned-out
// recipe rows.
func (g *Gateway) DeletePlan(ctx context.Context, token, id string) error {
	userID, err := g.resolveUser(token)
	if err != nil {
		return err
	}

	if _, _, err := g.client.From(recipesTable).
		Delete("", "").
		Eq("plan_id", id).
		Eq("user_id", userID).
		Execute(); err != nil {
		return fmt.Errorf("failed to delete plan recipes: %w", err)
	}

	if _, _, err := g.client.From(plansTable).
		Delete("", "").
		Eq("id", id).
		Eq("user_id", userID).
		Execute(); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}

// SaveRecipe stores a single recipe snapshot not linked to any plan.
func (g *Gateway) SaveRecipe(ctx context.Context, token string, rec plan.Recipe) (string, error) {
	userID, err := g.resolveUser(token)
	if err != nil {
		return "", err
	}

	row := SavedRecipe{
		UserID:    userID,
		Recipe:    rec,
		CreatedAt: time.Now().UTC(),
	}
	var inserted []SavedRecipe
	if err := g.insert(recipesTable, row, &inserted); err != nil {
		return "", fmt.Errorf("failed to save recipe: %w", err)
	}
	if len(inserted) == 0 {
		return "", fmt.Errorf("failed to save recipe: no row returned")
	}
	return inserted[0].ID, nil
}

// ListRecipes returns the user's recipe snapshots, newest first.
func (g *Gateway) ListRecipes(ctx context.Context, token string) ([]SavedRecipe, error) {
	userID, err := g.resolveUser(token)
	if err != nil {
		return nil, err
	}

	data, _, err := g.client.From(recipesTable).
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	var recipes []SavedRecipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}
	return recipes, nil
}

// DeleteRecipe removes one of the user's recipe snapshots.
func (g *Gateway) DeleteRecipe(ctx context.Context, token, id string) error {
	userID, err := g.resolveUser(token)
	if err != nil {
		return err
	}

	if _, _, err := g.client.From(recipesTable).
		Delete("", "").
		Eq("id", id).
		Eq("user_id", userID).
		Execute(); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

// SaveList stores a named shopping list snapshot.
func (g *Gateway) SaveList(ctx context.Context, token, name string, list []plan.ShoppingListCategory) (string, error) {
	userID, err := g.resolveUser(token)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	row := SavedList{
		UserID:       userID,
		Name:         name,
		ShoppingList: list,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	var inserted []SavedList
	if err := g.insert(listsTable, row, &inserted); err != nil {
		return "", fmt.Errorf("failed to save list: %w", err)
	}
	if len(inserted) == 0 {
		return "", fmt.Errorf("failed to save list: no row returned")
	}
	return inserted[0].ID, nil
}

// ListLists returns the user's shopping list snapshots, most recently
// updated first.
func (g *Gateway) ListLists(ctx context.Context, token string) ([]SavedList, error) {
	userID, err := g.resolveUser(token)
	if err != nil {
		return nil, err
	}

	data, _, err := g.client.From(listsTable).
		Select("*", "", false).
		Eq("user_id", userID).
		Order("updated_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping lists: %w", err)
	}

	var lists []SavedList
	if err := json.Unmarshal(data, &lists); err != nil {
		return nil, fmt.Errorf("failed to decode shopping lists: %w", err)
	}
	return lists, nil
}

// DeleteList removes one of the user's shopping list snapshots.
func (g *Gateway) DeleteList(ctx context.Context, token, id string) error {
	userID, err := g.resolveUser(token)
	if err != nil {
		return err
	}

	if _, _, err := g.client.From(listsTable).
		Delete("", "").
		Eq("id", id).
		Eq("user_id", userID).
		Execute(); err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	return nil
}

// insert writes one row and, when out is non-nil, decodes the
// representation returned by PostgREST into it.
func (g *Gateway) insert(table string, row any, out any) error {
	data, _, err := g.client.From(table).
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return err
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode inserted row: %w", err)
		}
	}
	return nil
}
