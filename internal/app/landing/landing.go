// Package landing assembles the landing-page API: storage, cache,
// broker, services, HTTP routes and the admin bootstrap.
package landing

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/mentesana/landing-api/internal/cache"
	"github.com/mentesana/landing-api/internal/config"
	"github.com/mentesana/landing-api/internal/lib/jwt"
	librabbitmq "github.com/mentesana/landing-api/internal/lib/rabbitmq"
	"github.com/mentesana/landing-api/internal/lib/sl"
	"github.com/mentesana/landing-api/internal/migrations"
	"github.com/mentesana/landing-api/internal/rabbitmq"
	authservice "github.com/mentesana/landing-api/internal/services/auth"
	inscriptionservice "github.com/mentesana/landing-api/internal/services/inscription"
	metricsservice "github.com/mentesana/landing-api/internal/services/metrics"
	userservice "github.com/mentesana/landing-api/internal/services/user"
	"github.com/mentesana/landing-api/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	amqp   *amqp.Connection
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	// The broker is optional: without it leads are still stored,
	// only the admin email notification is skipped.
	var notifier inscriptionservice.Notifier
	var amqpConn *amqp.Connection
	if cfg.RabbitMQURL != "" {
		amqpConn, err = rabbitmq.Connect(cfg.RabbitMQURL, cfg.ConnRetries, cfg.ConnDelay)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(amqpConn, rabbitmq.GetNotificationQueues())
		if err != nil {
			amqpConn.Close()
			return nil, err
		}
		notifier = librabbitmq.NewLeadNotifier(ch)
	} else {
		logger.Warn("rabbitmq url is empty, lead notifications disabled")
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.New(db, jwtMaker)
	userService := userservice.New(db, logger)
	inscriptionService := inscriptionservice.New(db, cacheRedis, notifier, logger)
	metricsService := metricsservice.New(db, cacheRedis, logger)

	if err := ensureAdmin(ctx, db, cfg.Admin, logger); err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, db,
		authService, userService, inscriptionService, metricsService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		amqp:   amqpConn,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.amqp != nil {
			if closeErr := a.amqp.Close(); closeErr != nil {
				a.logger.Error("failed to close amqp connection", sl.Err(closeErr))
			}
		}
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", sl.Err(closeErr))
		}
		return err
	}
}
