package planner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"smart-meal-planner/internal/llm"
	"smart-meal-planner/internal/metrics"
	"smart-meal-planner/internal/plan"
	"smart-meal-planner/internal/prompt"
)

// Sampling temperatures per call shape: full-week generation favors
// consistency with the stated constraints, single-day regeneration runs
// hotter so the replacement visibly differs from the replaced day.
const (
	weeklyTemperature = 0.7
	dayTemperature    = 0.85
)

// Service turns preferences into validated plans: it builds the
// instruction pair, calls the generation endpoint once and decodes the
// result.
type Service struct {
	textGen llm.TextGenerator
	metrics *metrics.Store
	logger  *zap.Logger
}

// NewService creates a new generation service. The metrics store may be
// nil when usage recording is disabled.
func NewService(textGen llm.TextGenerator, metricsStore *metrics.Store, logger *zap.Logger) *Service {
	return &Service{
		textGen: textGen,
		metrics: metricsStore,
		logger:  logger,
	}
}

// GenerateWeeklyPlan creates a full weekly plan from the given
// preferences.
func (s *Service) GenerateWeeklyPlan(ctx context.Context, prefs plan.Preferences) (*plan.WeeklyPlanData, error) {
	if err := plan.ValidatePreferences(prefs); err != nil {
		return nil, err
	}

	instr, err := prompt.BuildWeekly(prefs)
	if err != nil {
		return nil, fmt.Errorf("failed to build weekly instructions: %w", err)
	}

	start := time.Now()
	resp, err := s.textGen.GenerateContent(ctx, instr.System, instr.User, weeklyTemperature)
	if err != nil {
		return nil, err
	}
	s.record("WeeklyPlan", resp.Usage, time.Since(start))

	weekly, err := DecodeWeeklyPlan(resp.Content)
	if err != nil {
		return nil, err
	}
	return weekly, nil
}

// RegenerateDay creates a replacement for a single weekday of an
// existing plan.
func (s *Service) RegenerateDay(ctx context.Context, prefs plan.Preferences, day string) (*plan.DayRegeneration, error) {
	instr, err := prompt.BuildDay(prefs, day)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := s.textGen.GenerateContent(ctx, instr.System, instr.User, dayTemperature)
	if err != nil {
		return nil, err
	}
	s.record("RegenerateDay", resp.Usage, time.Since(start))

	regen, err := DecodeDayRegeneration(resp.Content, day)
	if err != nil {
		return nil, err
	}
	return regen, nil
}

func (s *Service) record(operation string, usage llm.TokenUsage, latency time.Duration) {
	if s.metrics == nil {
		return
	}
	if err := s.metrics.Record(operation, usage, latency); err != nil {
		s.logger.Warn("failed to record usage metrics",
			zap.String("operation", operation),
			zap.Error(err),
		)
	}
}
