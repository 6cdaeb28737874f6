package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobboard/internal/api"
	"github.com/maxaizer/jobboard/internal/auth"
	"github.com/maxaizer/jobboard/internal/config"
	"github.com/maxaizer/jobboard/internal/logger"
	"github.com/maxaizer/jobboard/internal/metrics"
	"github.com/maxaizer/jobboard/internal/repositories"
	"github.com/maxaizer/jobboard/internal/services"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// reconcileSchedule runs the back-reference repair pass nightly.
const reconcileSchedule = "0 3 * * *"

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	users := repositories.NewUserRepository(dbContext.DB)
	jobs := repositories.NewJobRepository(dbContext.DB)
	applications := repositories.NewApplicationRepository(dbContext.DB)

	bus := EventBus.New()

	if _, err = services.NewActivityLogger(bus); err != nil {
		log.Fatalf("can't create activity logger: %v", err)
	}

	reconciler, err := services.NewReconciler(users, jobs, applications, reconcileSchedule)
	if err != nil {
		log.Fatalf("can't create reconciler: %v", err)
	}
	defer reconciler.Stop()

	if err = reconciler.RunOnce(ctx); err != nil {
		log.Errorf("startup reconciliation pass failed: %v", err)
	}

	tokens, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatalf("can't create token issuer: %v", err)
	}

	server := api.NewServer(api.Deps{
		Config:       cfg.Server,
		AppName:      cfg.Logger.AppName,
		Tokens:       tokens,
		Auth:         auth.NewService(users, tokens),
		Jobs:         services.NewJobService(bus, jobs, users, applications),
		Applications: services.NewApplicationService(bus, applications, jobs, users, cfg.Auth.BlockOwnerApplications),
	})

	go func() {
		if err := server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()
	log.Infof("server listening on port %d", cfg.Server.Port)

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown failed: %v", err)
	}
	log.Info("Services stopped.")
}
