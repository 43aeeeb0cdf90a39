package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/masterbook/internal/config"
	"github.com/mmynk/masterbook/internal/metrics"
	"github.com/mmynk/masterbook/internal/middleware"
	"github.com/mmynk/masterbook/internal/service"
	"github.com/mmynk/masterbook/internal/storage"
	"github.com/mmynk/masterbook/internal/storage/memory"
	"github.com/mmynk/masterbook/internal/storage/redis"
	"github.com/mmynk/masterbook/internal/storage/sqlite"
	"github.com/mmynk/masterbook/internal/store"
	"github.com/mmynk/masterbook/pkg/api/apiconnect"
)

const shutdownTimeout = 10 * time.Second

// run serves until ctx is cancelled, then drains requests, flushes pending
// snapshot writes and closes the backend.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	kv, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer kv.Close()
	slog.Info("Storage initialized", "backend", cfg.Backend)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	rec := metrics.NewCollector(reg)

	stores := newStores(kv, cfg, storeOptions(cfg, logger, rec)...)
	if err := stores.load(ctx); err != nil {
		return err
	}
	defer stores.flush()

	srv := &http.Server{
		Addr: cfg.Addr,
		// Wrap with h2c for HTTP/2 without TLS (required for Connect)
		Handler:           h2c.NewHandler(newRouter(stores, reg, rec), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

func openBackend(ctx context.Context, cfg config.Config) (storage.KV, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return sqlite.New(cfg.DBPath)
	case config.BackendRedis:
		return redis.New(ctx, &goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.Prefix)
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// storeOptions is the option set every store is built with.
func storeOptions(cfg config.Config, logger *slog.Logger, rec metrics.Recorder) []store.Option {
	return []store.Option{
		store.WithLogger(logger),
		store.WithMetrics(rec),
		store.WithWriteTimeout(cfg.WriteTimeout),
	}
}

type stores struct {
	masters  *store.MasterStore
	posts    *store.PostStore
	groups   *store.GroupStore
	calendar *store.CalendarStore
	profile  *store.ProfileStore
}

// newStores builds every store on kv. Groups and events only get the backend
// when their persistence switch is on.
func newStores(kv storage.KV, cfg config.Config, opts ...store.Option) *stores {
	var groupsKV, eventsKV storage.KV
	if cfg.PersistGroups {
		groupsKV = kv
	}
	if cfg.PersistEvents {
		eventsKV = kv
	}
	return &stores{
		masters:  store.NewMasterStore(kv, opts...),
		posts:    store.NewPostStore(kv, opts...),
		groups:   store.NewGroupStore(groupsKV, opts...),
		calendar: store.NewCalendarStore(eventsKV, opts...),
		profile:  store.NewProfileStore(kv, opts...),
	}
}

// load reads every snapshot concurrently. Stores swallow their own load
// failures, so the only error is a cancelled context.
func (s *stores) load(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, load := range []func(context.Context){
		s.masters.Load,
		s.posts.Load,
		s.groups.Load,
		s.calendar.Load,
		s.profile.Load,
	} {
		g.Go(func() error {
			load(ctx)
			return ctx.Err()
		})
	}
	return g.Wait()
}

func (s *stores) flush() {
	s.masters.Flush()
	s.posts.Flush()
	s.groups.Flush()
	s.calendar.Flush()
}

func newRouter(s *stores, gatherer prometheus.Gatherer, rec metrics.Recorder) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(loggingMiddleware)
	r.Use(corsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler(gatherer))

	opts := connect.WithInterceptors(middleware.LoggingInterceptor(rec))
	r.Mount(apiconnect.NewMasterServiceHandler(service.NewMasterService(s.masters), opts))
	r.Mount(apiconnect.NewPostServiceHandler(service.NewPostService(s.posts), opts))
	r.Mount(apiconnect.NewGroupServiceHandler(service.NewGroupService(s.groups, s.masters), opts))
	r.Mount(apiconnect.NewArticleServiceHandler(service.NewArticleService(), opts))
	r.Mount(apiconnect.NewProfileServiceHandler(service.NewProfileService(s.profile), opts))
	r.Mount(apiconnect.NewCalendarServiceHandler(service.NewCalendarService(s.calendar), opts))

	return r
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
