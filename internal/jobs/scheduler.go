package jobs

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"

	"finboard/internal/services"
)

const cardsRefreshInterval = 5 * time.Minute

// Scheduler runs the background jobs that keep the dashboard caches warm.
type Scheduler struct {
	scheduler    gocron.Scheduler
	dashboardSvc services.DashboardService
	log          zerolog.Logger
}

func NewScheduler(dashboardSvc services.DashboardService, log zerolog.Logger) (*Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	s := &Scheduler{
		scheduler:    scheduler,
		dashboardSvc: dashboardSvc,
		log:          log,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(cardsRefreshInterval),
		gocron.NewTask(s.refreshCards),
		gocron.WithName("dashboard-cards-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.log.Info().Msg("starting background job scheduler")
	s.scheduler.Start()
}

func (s *Scheduler) Stop() error {
	s.log.Info().Msg("stopping background job scheduler")
	return s.scheduler.Shutdown()
}

// refreshCards recomputes the dashboard cards from the store; Cards writes
// the result through to the cache.
func (s *Scheduler) refreshCards() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.dashboardSvc.Cards(ctx, true); err != nil {
		s.log.Warn().Err(err).Msg("dashboard cards refresh failed")
	}
}
