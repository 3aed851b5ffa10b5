package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/2beens/fitsync/internal/catalog"
	"github.com/2beens/fitsync/internal/config"
	"github.com/2beens/fitsync/internal/coursesync"
	"github.com/2beens/fitsync/internal/events"
	"github.com/2beens/fitsync/internal/fitapi"
	"github.com/2beens/fitsync/internal/session"
	"github.com/2beens/fitsync/internal/telemetry/metrics"
	"github.com/2beens/fitsync/internal/telemetry/tracing"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// stale catalog entries are kept this long, to be served while the API is down
const catalogRetention = 24 * time.Hour

// engine holds every service of one fitsync process.
type engine struct {
	cfg            *config.Config
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	redisClient    *redis.Client
	otelShutdown   func()

	bus     *events.Bus
	client  *fitapi.Client
	session *session.Manager
	catalog *catalog.Repository
	courses *coursesync.Service
}

func newEngine(ctx context.Context, cfg *config.Config) (*engine, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitsync", "engine", promRegistry)

	var rdb *redis.Client
	if cfg.CacheBackend == config.CacheBackendRedis {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       0, // use default DB
		})

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	otelShutdown, err := tracing.HoneycombSetup(cfg.TracingEnabled, "fitsync", rdb)
	if err != nil {
		return nil, fmt.Errorf("tracing setup: %w", err)
	}

	tracedHttpClient := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	client := fitapi.NewClient(cfg.APIURL, tracedHttpClient, metricsManager)

	bus := events.NewBus(metricsManager)

	sessions, err := session.NewManager(session.NewFileStore(cfg.SessionPath), client, bus, metricsManager)
	if err != nil {
		otelShutdown()
		return nil, err
	}
	client.SetTokenSource(sessions)

	var store catalog.Store
	if rdb != nil {
		store = catalog.NewRedisStore(rdb, catalogRetention)
	} else {
		store = catalog.NewFreecacheStore(cfg.CacheSizeMB, catalogRetention)
	}

	repo := catalog.NewRepository(catalog.RepositoryParams{
		API:               client,
		Store:             store,
		CourseTTL:         cfg.CourseCacheTTL,
		WorkoutTTL:        cfg.WorkoutCacheTTL,
		DetailConcurrency: cfg.DetailFetchConcurrency,
		MetricsManager:    metricsManager,
	})

	courses := coursesync.NewService(coursesync.ServiceParams{
		Catalog:      repo,
		API:          client,
		Session:      sessions,
		Bus:          bus,
		UserCacheTTL: cfg.UserCacheTTL,
	})

	return &engine{
		cfg:            cfg,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		redisClient:    rdb,
		otelShutdown:   otelShutdown,
		bus:            bus,
		client:         client,
		session:        sessions,
		catalog:        repo,
		courses:        courses,
	}, nil
}

func (e *engine) close() {
	e.courses.Close()
	e.otelShutdown()

	if e.redisClient != nil {
		if err := e.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	sentry.Flush(2 * time.Second)
}

// withEngine runs fn with a fresh engine and tears it down afterwards.
func withEngine(ctx context.Context, fn func(e *engine) error) error {
	e, err := newEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer e.close()

	return fn(e)
}
