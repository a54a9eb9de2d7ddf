package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/groceryroom/internal/auth"
	"github.com/mmynk/groceryroom/internal/cache"
	"github.com/mmynk/groceryroom/internal/config"
	"github.com/mmynk/groceryroom/internal/ledger"
	"github.com/mmynk/groceryroom/internal/lock/redislock"
	"github.com/mmynk/groceryroom/internal/metrics"
	"github.com/mmynk/groceryroom/internal/middleware"
	"github.com/mmynk/groceryroom/internal/service"
	"github.com/mmynk/groceryroom/internal/storage"
	"github.com/mmynk/groceryroom/internal/storage/mysql"
	"github.com/mmynk/groceryroom/internal/storage/sqlite"
	"github.com/mmynk/groceryroom/pkg/logging"
	"github.com/mmynk/groceryroom/pkg/proto/protoconnect"
)

const shutdownTimeout = 10 * time.Second

// store is a storage backend that can report its health.
type store interface {
	storage.Store
	Ping(ctx context.Context) error
}

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer st.Close()
	slog.Info("Storage initialized", "driver", cfg.DBDriver)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		slog.Info("Redis connected", "address", cfg.RedisAddr)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	ledgerMetrics := metrics.NewLedger(reg)
	rpcMetrics := metrics.NewRPC(reg)

	locker, err := newLocker(cfg, rdb)
	if err != nil {
		return fmt.Errorf("failed to initialize ledger lock: %w", err)
	}
	slog.Info("Ledger lock initialized", "backend", cfg.LockBackend, "wait", cfg.LockWait)

	led := ledger.New(st,
		ledger.WithLocker(locker),
		ledger.WithMetrics(ledgerMetrics),
		ledger.WithLogger(slog.Default()),
	)

	var ledgerOpts []service.LedgerServiceOption
	if rdb != nil {
		ledgerOpts = append(ledgerOpts, service.WithDebtCache(cache.New(rdb, cfg.CacheTTL)))
		slog.Info("Debt cache enabled", "ttl", cfg.CacheTTL)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, 24*time.Hour)
	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(rpcMetrics),
		middleware.RequireAuth(jwtManager),
	)

	mux := http.NewServeMux()
	ledgerPath, ledgerHandler := protoconnect.NewLedgerServiceHandler(service.NewLedgerService(st, led, ledgerOpts...), interceptors)
	mux.Handle(ledgerPath, ledgerHandler)
	groupPath, groupHandler := protoconnect.NewGroupServiceHandler(service.NewGroupService(st), interceptors)
	mux.Handle(groupPath, groupHandler)
	mux.HandleFunc("/healthz", healthHandler(st))

	api := &http.Server{
		Addr: ":" + cfg.Port,
		// Wrap with h2c for HTTP/2 without TLS (required for Connect)
		Handler:           h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	metricsSrv := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", api.Addr, "url", "http://localhost"+api.Addr)
		return serve(api)
	})
	g.Go(func() error {
		slog.Info("Metrics server starting", "address", metricsSrv.Addr)
		return serve(metricsSrv)
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return errors.Join(api.Shutdown(shutdownCtx), metricsSrv.Shutdown(shutdownCtx))
	})
	return g.Wait()
}

func serve(srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server on %s: %w", srv.Addr, err)
	}
	return nil
}

func openStore(cfg *config.Config) (store, error) {
	if cfg.DBDriver == config.DriverMySQL {
		s, err := mysql.New(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	s, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newLocker(cfg *config.Config, rdb *redis.Client) (ledger.Locker, error) {
	if cfg.LockBackend != config.LockRedis {
		return ledger.NewLocalLocker(cfg.LockWait), nil
	}
	opts := redislock.DefaultOptions()
	if tries := int(cfg.LockWait / opts.RetryDelay); tries > 0 {
		opts.Tries = tries
	}
	l, err := redislock.New(rdb, opts)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func healthHandler(st store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := st.Ping(ctx); err != nil {
			slog.Warn("Health check failed", "error", err)
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
