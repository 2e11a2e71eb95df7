package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "fastshift/internal/app"
	"fastshift/internal/entities"
	"fastshift/internal/handlers/rest/healthcheck_head"
	"fastshift/internal/handlers/rest/parcel_assign_patch"
	"fastshift/internal/handlers/rest/parcel_delete"
	"fastshift/internal/handlers/rest/parcel_get"
	"fastshift/internal/handlers/rest/parcel_post"
	"fastshift/internal/handlers/rest/parcel_status_patch"
	"fastshift/internal/handlers/rest/parcels_get"
	"fastshift/internal/handlers/rest/parcels_ready_get"
	"fastshift/internal/handlers/rest/payment_intent_post"
	"fastshift/internal/handlers/rest/payments_get"
	"fastshift/internal/handlers/rest/payments_post"
	"fastshift/internal/handlers/rest/ping_get"
	"fastshift/internal/handlers/rest/rider_completed_get"
	"fastshift/internal/handlers/rest/rider_parcels_get"
	"fastshift/internal/handlers/rest/rider_patch"
	"fastshift/internal/handlers/rest/rider_post"
	"fastshift/internal/handlers/rest/riders_active_get"
	"fastshift/internal/handlers/rest/riders_pending_get"
	"fastshift/internal/handlers/rest/user_role_get"
	"fastshift/internal/handlers/rest/user_role_patch"
	"fastshift/internal/handlers/rest/users_post"
	"fastshift/internal/handlers/rest/users_search_get"
	"fastshift/internal/pkg/config"
	"fastshift/internal/pkg/dotenv"
	"fastshift/internal/pkg/kafka"
	metrics_system "fastshift/internal/pkg/metrics"
	"fastshift/internal/pkg/middlewares/authn"
	"fastshift/internal/pkg/middlewares/authz"
	"fastshift/internal/pkg/middlewares/graceful_shutdown"
	"fastshift/internal/pkg/middlewares/metrics"
	"fastshift/internal/pkg/middlewares/rate_limiter"
	"fastshift/internal/pkg/middlewares/timeout"
	"fastshift/internal/pkg/postgres"
	"fastshift/pkg/logger"
	"fastshift/pkg/logger/zap_adapter"
	"fastshift/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting fastshift application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	producer, err := kafka.NewProducer(ctx, log, strings.Split(cfg.Kafka.Brokers, ","), cfg.Kafka.Sarama.Version)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// цепочки авторизации: authed = валидный токен, admin/rider = токен + свежая роль из базы
	authed := authn.Middleware(log, app.TokenVerifier)
	admin := func(h http.Handler) http.Handler {
		return authed(authz.RequireRole(log, app.ServiceUser, entities.RoleAdmin)(h))
	}
	riderOnly := func(h http.Handler) http.Handler {
		return authed(authz.RequireRole(log, app.ServiceUser, entities.RoleRider)(h))
	}

	router.Handle("/parcels", parcel_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/parcels", authed(parcels_get.New(log, app.ServiceParcel))).Methods("GET")
	router.Handle("/parcels/paid-not-collected", admin(parcels_ready_get.New(log, app.ServiceParcel))).Methods("GET")
	router.Handle("/parcels/{id}", parcel_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/parcels/{id}", admin(parcel_delete.New(log, app.ServiceParcel))).Methods("DELETE")
	router.Handle("/parcels/{id}/assign", admin(parcel_assign_patch.New(log, app.ServiceRider))).Methods("PATCH")
	router.Handle("/parcel/status/{id}", riderOnly(parcel_status_patch.New(log, app.ServiceParcel))).Methods("PATCH")

	router.Handle("/create-payment-intent", payment_intent_post.New(log, app.ServicePayment)).Methods("POST")
	router.Handle("/payments", payments_post.New(log, app.ServicePayment)).Methods("POST")
	router.Handle("/payments", authed(payments_get.New(log, app.ServicePayment))).Methods("GET")

	router.Handle("/users", users_post.New(log, app.ServiceUser)).Methods("POST")
	router.Handle("/users/role", user_role_get.New(log, app.ServiceUser)).Methods("GET")
	router.Handle("/users/search", admin(users_search_get.New(log, app.ServiceUser))).Methods("GET")
	router.Handle("/users/{email}/role", admin(user_role_patch.New(log, app.ServiceUser))).Methods("PATCH")

	router.Handle("/riders", authed(rider_post.New(log, app.ServiceRider))).Methods("POST")
	router.Handle("/riders/pending", admin(riders_pending_get.New(log, app.ServiceRider))).Methods("GET")
	router.Handle("/riders/active", admin(riders_active_get.New(log, app.ServiceRider))).Methods("GET")
	router.Handle("/riders/{id}", admin(rider_patch.New(log, app.ServiceRider))).Methods("PATCH")

	router.Handle("/rider/parcels", riderOnly(rider_parcels_get.New(log, app.ServiceParcel))).Methods("GET")
	router.Handle("/rider/completed-parcels", riderOnly(rider_completed_get.New(log, app.ServiceEarnings))).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
