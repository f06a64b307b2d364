package services

import (
	"context"
	"errors"
	"log"
	"time"

	"ems-gateway/internal/adapters/persistence/repositories"
	"ems-gateway/internal/adapters/upstream"
	"ems-gateway/internal/config"
	"ems-gateway/internal/pkg/metrics"
	"ems-gateway/internal/pkg/secretbox"

	"github.com/robfig/cron/v3"
)

// CronService runs the session maintenance jobs: sweeping expired rows
// and silently revalidating stored tokens against the EMS API.
type CronService struct {
	repo repositories.SessionRepository
	api  *upstream.Client
	box  *secretbox.Box
	cfg  *config.Config
	cron *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(repo repositories.SessionRepository, api *upstream.Client, cfg *config.Config) *CronService {
	return &CronService{
		repo: repo,
		api:  api,
		box:  secretbox.New(cfg.Session.Secret),
		cfg:  cfg,
		cron: cron.New(),
	}
}

// Start schedules the jobs and launches the cron runner
func (s *CronService) Start() {
	if _, err := s.cron.AddFunc(s.cfg.Session.SweepCron, s.sweep); err != nil {
		log.Printf("❌ Invalid sweep schedule %q: %v", s.cfg.Session.SweepCron, err)
	}
	if _, err := s.cron.AddFunc(s.cfg.Session.RevalidateCron, s.revalidate); err != nil {
		log.Printf("❌ Invalid revalidate schedule %q: %v", s.cfg.Session.RevalidateCron, err)
	}

	s.cron.Start()
	log.Println("🚀 Session maintenance jobs scheduled")
}

// Stop stops the cron runner, waiting for a running job to finish
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Session maintenance jobs stopped")
}

// sweep deletes expired sessions and refreshes the active-session gauge
func (s *CronService) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		log.Printf("⚠️ Session sweep failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("🧹 Swept %d expired sessions", deleted)
	}

	if active, err := s.repo.CountActive(ctx); err == nil {
		metrics.SetActiveSessions(active)
	}
}

// revalidate pings the EMS API with each stored token and drops sessions
// the upstream no longer accepts. Transport failures leave the session
// alone: an unreachable upstream is not a revoked token.
func (s *CronService) revalidate() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	sessions, err := s.repo.ListActive(ctx)
	if err != nil {
		log.Printf("⚠️ Session revalidation failed to list sessions: %v", err)
		return
	}

	dropped := 0
	for _, row := range sessions {
		tok, err := s.box.Open(row.TokenSealed)
		if err != nil {
			_ = s.repo.Delete(ctx, row.ID)
			dropped++
			continue
		}

		if _, err := s.api.Me(ctx, tok); err != nil {
			var httpErr *upstream.HTTPError
			if errors.As(err, &httpErr) && (httpErr.Status == 401 || httpErr.Status == 403) {
				_ = s.repo.Delete(ctx, row.ID)
				dropped++
			}
		}
	}

	if dropped > 0 {
		log.Printf("🧹 Revalidation dropped %d stale sessions", dropped)
	}
}
