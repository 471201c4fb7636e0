package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/safetyplan/actionplan/internal/auth"
	"github.com/safetyplan/actionplan/internal/config"
	"github.com/safetyplan/actionplan/internal/service/actionplan"
	"github.com/safetyplan/actionplan/internal/service/catalog"
	"github.com/safetyplan/actionplan/internal/service/notify"
	"github.com/safetyplan/actionplan/internal/transport/middleware"
	"github.com/safetyplan/actionplan/internal/transport/rest"
)

// Run starts the HTTP API and blocks until ctx is cancelled, then shuts the
// server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Backend),
	)

	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, store, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// NewHandler wires services, handlers and the middleware chain on top of an
// opened store.
func NewHandler(cfg *config.Config, logger *slog.Logger, store *Store, limiter *middleware.RateLimiter) http.Handler {
	catalogSvc := catalog.NewService(logger, store.Records, cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL)
	planSvc := actionplan.NewService(logger, store.Records, catalogSvc, store.Tx, cfg.Notify.Location)

	// Preview never sends, so the server needs no SMTP settings.
	notifySvc := notify.NewService(logger, store.Records, catalogSvc, nil, notify.Config{
		AdminRecipients: config.ParseRecipientList(cfg.Mail.AdminRecipientsRaw),
		SubjectPrefix:   cfg.Mail.SubjectPrefix,
		AppURL:          cfg.Notify.AppURL,
	})

	verifier := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, 0)

	router := rest.NewRouter(
		rest.NewHealthHandler(store.Health, BuildVersion()),
		rest.NewActionPlanHandler(planSvc, logger),
		rest.NewNotificationHandler(notifySvc, cfg.Notify.Location, logger),
	)

	var rateLimit middleware.Middleware
	if cfg.Server.RateLimit > 0 && limiter != nil {
		rateLimit = limiter.Limit(cfg.Server.RateLimit)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimit,
		middleware.Auth(verifier),
	)(router)
}
