package planner

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"

	"smart-meal-planner/internal/llm"
	"smart-meal-planner/internal/plan"
	"smart-meal-planner/internal/prompt"
)

// MockTextGenerator answers with canned payloads and records what it
// was asked.
type MockTextGenerator struct {
	mu           sync.Mutex
	calls        int
	temperatures []float64
	weeklyJSON   string
	dayJSON      map[string]string
	err          error
}

func (m *MockTextGenerator) GenerateContent(ctx context.Context, system, user string, temperature float64) (llm.ContentResponse, error) {
	m.mu.Lock()
	m.calls++
	m.temperatures = append(m.temperatures, temperature)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return llm.ContentResponse{}, err
	}
	if m.err != nil {
		return llm.ContentResponse{}, m.err
	}

	if strings.Contains(system, "ONE specific day") {
		for day, payload := range m.dayJSON {
			if strings.Contains(system, day) {
				return llm.ContentResponse{Content: payload}, nil
			}
		}
		return llm.ContentResponse{Content: `{}`}, nil
	}
	return llm.ContentResponse{
		Content: m.weeklyJSON,
		Usage:   llm.TokenUsage{PromptTokens: 100, CompletionTokens: 50, Model: "mock"},
	}, nil
}

func dayPayload(t *testing.T, day, dinner string) string {
	t.Helper()
	id := prompt.DayRecipeID(day)
	payload, err := json.Marshal(plan.DayRegeneration{
		DayPlan: plan.DayPlan{Day: day, Breakfast: "Eggs", Lunch: "Salad",
			Dinner: dinner, DinnerRecipeID: id},
		Recipe: plan.Recipe{ID: id, Name: dinner, PrepTime: "45 min",
			Ingredients: []string{"Flour"}, Instructions: []string{"Cook"}},
	})
	if err != nil {
		t.Fatalf("failed to marshal day payload: %v", err)
	}
	return string(payload)
}

func validPrefs() plan.Preferences {
	return plan.Preferences{
		Location:    "Tbilisi, Georgia",
		Budget:      "225",
		Currency:    "GEL",
		PeopleCount: 2,
		Equipment:   []string{"Stovetop", "Microwave", "Blender"},
	}
}

func newTestService(t *testing.T, gen llm.TextGenerator) *Service {
	t.Helper()
	return NewService(gen, nil, zap.NewNop())
}

func TestGenerateWeeklyPlan(t *testing.T) {
	mock := &MockTextGenerator{weeklyJSON: mustJSON(t, makeWeekly())}
	svc := newTestService(t, mock)

	weekly, err := svc.GenerateWeeklyPlan(context.Background(), validPrefs())
	if err != nil {
		t.Fatalf("GenerateWeeklyPlan failed: %v", err)
	}
	if len(weekly.Recipes) != 7 {
		t.Errorf("expected 7 recipes, got %d", len(weekly.Recipes))
	}
	if mock.temperatures[0] != weeklyTemperature {
		t.Errorf("weekly temperature = %v, want %v", mock.temperatures[0], weeklyTemperature)
	}
}

func TestGenerateWeeklyPlanRejectsInvalidPreferences(t *testing.T) {
	mock := &MockTextGenerator{weeklyJSON: mustJSON(t, makeWeekly())}
	svc := newTestService(t, mock)

	_, err := svc.GenerateWeeklyPlan(context.Background(), plan.Preferences{})
	if err == nil {
		t.Fatal("invalid preferences were accepted")
	}
	if mock.calls != 0 {
		t.Error("generation endpoint was called despite invalid preferences")
	}
}

func TestRegenerateDayUsesHigherTemperature(t *testing.T) {
	mock := &MockTextGenerator{
		dayJSON: map[string]string{"Wednesday": dayPayload(t, "Wednesday", "Khinkali")},
	}
	svc := newTestService(t, mock)

	regen, err := svc.RegenerateDay(context.Background(), validPrefs(), "Wednesday")
	if err != nil {
		t.Fatalf("RegenerateDay failed: %v", err)
	}
	if regen.Recipe.ID != "wed-dinner" {
		t.Errorf("recipe id = %s, want wed-dinner", regen.Recipe.ID)
	}
	if mock.temperatures[0] != dayTemperature {
		t.Errorf("day temperature = %v, want %v", mock.temperatures[0], dayTemperature)
	}
}

func TestGenerateWeeklyPlanPropagatesGenerationErrors(t *testing.T) {
	wantErr := &llm.TransportError{StatusCode: 500, Body: "boom"}
	svc := newTestService(t, &MockTextGenerator{err: wantErr})

	_, err := svc.GenerateWeeklyPlan(context.Background(), validPrefs())
	var terr *llm.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("want *llm.TransportError, got %v", err)
	}
}
