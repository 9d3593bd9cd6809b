package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type StatsService struct {
	logs     repository.WorkoutLogsRepositoryI
	plans    repository.PlansRepositoryI
	defaults StatsOptions
	now      func() time.Time
}

type StatsOption func(*StatsService)

// WithClock replaces time.Now as the anchor of windows and series.
func WithClock(now func() time.Time) StatsOption {
	return func(s *StatsService) {
		s.now = now
	}
}

func WithStatsDefaults(def StatsOptions) StatsOption {
	return func(s *StatsService) {
		s.defaults = def.withDefaults(StatsOptions{})
	}
}

func NewStatsService(logsRepo repository.WorkoutLogsRepositoryI, plansRepo repository.PlansRepositoryI, opts ...StatsOption) *StatsService {
	if logsRepo == nil || plansRepo == nil {
		log.Fatal("provided nil repository for stats service")
	}
	s := &StatsService{
		logs:     logsRepo,
		plans:    plansRepo,
		defaults: StatsOptions{}.withDefaults(StatsOptions{}),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetStats is read only: it reads caller's logs with their results in one
// statement and aggregates them in memory.
func (ss *StatsService) GetStats(ctx context.Context, uid uuid.UUID, opts StatsOptions) (*entity.Stats, error) {
	if err := validateStruct(&opts); err != nil {
		return nil, err
	}
	opts = opts.withDefaults(ss.defaults)
	logs, err := ss.logs.ListByUserID(ctx, uid)
	if err != nil {
		return nil, repoError("workout logs", err)
	}
	plansCount, err := ss.plans.CountByUserID(ctx, uid)
	if err != nil {
		return nil, repoError("plans", err)
	}
	stats := ComputeStats(logs, ss.now(), opts)
	stats.TotalPlans = plansCount
	return &stats, nil
}
