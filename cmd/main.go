package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
	"github.com/talentflow/talentflow/internal/clients/baserow"
	"github.com/talentflow/talentflow/internal/clients/google"
	"github.com/talentflow/talentflow/internal/clients/webhook"
	"github.com/talentflow/talentflow/internal/config"
	"github.com/talentflow/talentflow/internal/logger"
	"github.com/talentflow/talentflow/internal/metrics"
	"github.com/talentflow/talentflow/internal/repositories"
	"github.com/talentflow/talentflow/internal/server"
	"github.com/talentflow/talentflow/internal/services"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.Register()

	storage := baserow.NewClient(cfg.Baserow.BaseURL, cfg.Baserow.APIKey)
	if cfg.Baserow.MaxRequestsPerSecond > 0 {
		storage.SetRateLimit(cfg.Baserow.MaxRequestsPerSecond)
	}

	users := repositories.NewUsersRepository(storage, cfg.Baserow.Tables.Users)
	jobs := repositories.NewJobsRepository(storage, cfg.Baserow.Tables.Jobs)
	candidates := repositories.NewCandidatesRepository(storage,
		cfg.Baserow.Tables.Candidates, cfg.Baserow.Tables.WhatsappCandidates)
	schedules := repositories.NewSchedulesRepository(storage, cfg.Baserow.Tables.Schedules)

	googleClient := google.NewClient(cfg.Google.ClientID, cfg.Google.ClientSecret,
		cfg.Google.RedirectURI, cfg.Google.TimeZone)

	bus := EventBus.New()

	if _, err := services.NewNotifier(bus, webhook.NewAutomationClient(cfg.Webhooks.ScheduleURL)); err != nil {
		log.Fatalf("can't create notifier: %v", err)
	}

	if cfg.Cleaner.RetentionDays > 0 {
		cleaner, err := services.NewSchedulesCleaner(schedules, cfg.Cleaner.RetentionDays)
		if err != nil {
			log.Fatalf("can't create schedules cleaner: %v", err)
		}
		defer cleaner.Stop()
	}

	api := server.NewAPI(
		services.NewAuthService(users, cfg.Session.TTL),
		services.NewGoogleAuthService(googleClient, users),
		services.NewScheduleService(bus, users, schedules, googleClient),
		services.NewCandidateService(candidates, jobs),
		services.NewJobService(jobs),
		services.NewScreeningService(webhook.NewScreeningClient(cfg.Webhooks.ScreeningURL)),
	)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.NewRouter(api, cfg.Server.FrontendOrigin),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("server listening on port %d", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown error: %v", err)
	}

	log.Info("Services stopped.")
}
