package planner

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"smart-meal-planner/internal/plan"
)

// State is the lifecycle state of a planning session.
type State string

const (
	StateEmpty      State = "EMPTY"
	StateGenerating State = "GENERATING"
	StateReady      State = "READY"
)

var (
	// ErrGenerationInFlight is returned when a full-week generation is
	// already outstanding for the session.
	ErrGenerationInFlight = errors.New("a full-week generation is already in progress")
	// ErrNoPlan is returned when a regeneration is requested without a
	// previously generated plan.
	ErrNoPlan = errors.New("no weekly plan held by this session")
	// ErrDayInFlight is returned when the requested day already has an
	// outstanding regeneration.
	ErrDayInFlight = errors.New("a regeneration for this day is already in progress")
	// ErrStaleResult is returned when a result arrives after it was
	// cancelled or superseded; it is never merged.
	ErrStaleResult = errors.New("regeneration result is stale and was discarded")
	// ErrDiscarded is returned when the session was discarded while a
	// generation was outstanding.
	ErrDiscarded = errors.New("session was discarded during generation")
)

// Session owns one user's current plan and drives the lifecycle
// Empty -> Generating -> Ready, with independent per-day regenerations
// on top of Ready. All transitions go through one mutex; merges always
// read the latest held plan, so concurrent regenerations of different
// days commute. Per-day sequence numbers fence stale results: a result
// older than the newest request for its day is dropped, never merged.
type Session struct {
	svc *Service

	mu        sync.Mutex
	state     State
	prefs     plan.Preferences
	current   *plan.WeeklyPlanData
	epoch     uint64
	genCancel context.CancelFunc
	dayCancel map[string]context.CancelFunc
	daySeq    map[string]uint64
}

// NewSession creates an empty session backed by the given service.
func NewSession(svc *Service) *Session {
	return &Session{
		svc:       svc,
		state:     StateEmpty,
		dayCancel: make(map[string]context.CancelFunc),
		daySeq:    make(map[string]uint64),
	}
}

// State returns the session's lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the currently held plan, or nil. The returned value
// must be treated as read-only; mutation happens only through merges.
func (s *Session) Current() *plan.WeeklyPlanData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Preferences returns the preferences the current plan was generated
// from.
func (s *Session) Preferences() (plan.Preferences, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs, s.state == StateReady || s.state == StateGenerating
}

// RegeneratingDays lists the weekdays with an outstanding regeneration.
func (s *Session) RegeneratingDays() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	days := make([]string, 0, len(s.dayCancel))
	for _, d := range plan.Weekdays {
		if _, ok := s.dayCancel[d]; ok {
			days = append(days, d)
		}
	}
	return days
}

// GenerateWeek runs a full-week generation. At most one may be in
// flight per session. On success the session holds the new plan; on
// failure it is left Empty with no partial plan committed.
func (s *Session) GenerateWeek(ctx context.Context, prefs plan.Preferences) (*plan.WeeklyPlanData, error) {
	s.mu.Lock()
	if s.state == StateGenerating {
		s.mu.Unlock()
		return nil, ErrGenerationInFlight
	}
	s.cancelAllLocked()
	s.epoch++
	epoch := s.epoch
	genCtx, cancel := context.WithCancel(ctx)
	s.genCancel = cancel
	s.state = StateGenerating
	s.prefs = prefs
	s.current = nil
	s.mu.Unlock()

	weekly, err := s.svc.GenerateWeeklyPlan(genCtx, prefs)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return nil, ErrDiscarded
	}
	s.genCancel = nil
	if err != nil {
		s.state = StateEmpty
		s.current = nil
		return nil, err
	}
	s.state = StateReady
	s.current = weekly
	return weekly, nil
}

// RegenerateDay replaces one weekday of the held plan. Regenerations of
// different days may run concurrently; a second request for the same
// day while one is outstanding is rejected. On failure the held plan is
// left fully intact.
func (s *Session) RegenerateDay(ctx context.Context, day string) (*plan.WeeklyPlanData, error) {
	if !plan.IsWeekday(day) {
		return nil, fmt.Errorf("unknown weekday %q", day)
	}

	s.mu.Lock()
	if s.state != StateReady || s.current == nil {
		s.mu.Unlock()
		return nil, ErrNoPlan
	}
	if _, inFlight := s.dayCancel[day]; inFlight {
		s.mu.Unlock()
		return nil, ErrDayInFlight
	}
	s.daySeq[day]++
	seq := s.daySeq[day]
	epoch := s.epoch
	prefs := s.prefs
	dayCtx, cancel := context.WithCancel(ctx)
	s.dayCancel[day] = cancel
	s.mu.Unlock()

	regen, err := s.svc.RegenerateDay(dayCtx, prefs, day)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq == s.daySeq[day] {
		delete(s.dayCancel, day)
	}
	if err != nil {
		return nil, err
	}
	if s.epoch != epoch || seq != s.daySeq[day] || s.state != StateReady || s.current == nil {
		return nil, ErrStaleResult
	}

	merged := plan.MergeDay(*s.current, regen.DayPlan, regen.Recipe)
	s.current = &merged
	return &merged, nil
}

// CancelDay cancels an outstanding regeneration for the given day and
// frees its in-flight marker. The cancelled call's result, should it
// still arrive, is fenced off and never merged.
func (s *Session) CancelDay(day string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, ok := s.dayCancel[day]; ok {
		cancel()
		delete(s.dayCancel, day)
		s.daySeq[day]++
	}
}

// Discard drops the current plan and cancels everything in flight,
// returning the session to Empty.
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAllLocked()
	s.epoch++
	s.state = StateEmpty
	s.current = nil
	s.prefs = plan.Preferences{}
}

func (s *Session) cancelAllLocked() {
	if s.genCancel != nil {
		s.genCancel()
		s.genCancel = nil
	}
	for day, cancel := range s.dayCancel {
		cancel()
		delete(s.dayCancel, day)
		s.daySeq[day]++
	}
}
