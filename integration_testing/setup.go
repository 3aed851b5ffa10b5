//go:build integration

package integration_testing

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"time"

	"github.com/2beens/fitsync/internal/catalog"
	"github.com/2beens/fitsync/internal/coursesync"
	"github.com/2beens/fitsync/internal/events"
	"github.com/2beens/fitsync/internal/fitapi"
	"github.com/2beens/fitsync/internal/server"
	"github.com/2beens/fitsync/internal/session"
	"github.com/2beens/fitsync/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const loginPerMin = 3

// Suite runs the whole engine against a fake fitness API, with the catalog
// cached in a dockerized redis.
type Suite struct {
	RedisClient *redis.Client
	API         *fakeAPI
	Session     *session.Manager
	BFF         *httptest.Server

	dockerPool *dockertest.Pool
	courses    *coursesync.Service
	server     *server.Server
	teardown   []func()
}

func newSuite(sessionDir string) (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	suite.RedisClient = redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort("localhost", redisPort),
	})
	if err := suite.dockerPool.Retry(func() error {
		return suite.RedisClient.Ping(context.Background()).Err()
	}); err != nil {
		suite.cleanup()
		log.Fatalf("redis not reachable: %s", err)
	}
	suite.teardown = append(suite.teardown, func() {
		suite.RedisClient.Close()
	})

	suite.API = newFakeAPI()
	upstream := httptest.NewServer(suite.API.router())
	suite.teardown = append(suite.teardown, upstream.Close)

	if err := suite.engineSetup(upstream.URL, filepath.Join(sessionDir, "session.json")); err != nil {
		suite.cleanup()
		log.Fatalf("engine setup: %s", err)
	}

	return suite
}

func (s *Suite) engineSetup(apiURL, sessionPath string) error {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitsync", "integration", promRegistry)

	client := fitapi.NewClient(apiURL, &http.Client{Timeout: 5 * time.Second}, metricsManager)
	bus := events.NewBus(metricsManager)

	sessions, err := session.NewManager(session.NewFileStore(sessionPath), client, bus, metricsManager)
	if err != nil {
		return fmt.Errorf("new session manager: %w", err)
	}
	client.SetTokenSource(sessions)
	s.Session = sessions

	repo := catalog.NewRepository(catalog.RepositoryParams{
		API:            client,
		Store:          catalog.NewRedisStore(s.RedisClient, time.Hour),
		CourseTTL:      time.Minute,
		WorkoutTTL:     time.Minute,
		MetricsManager: metricsManager,
	})

	s.courses = coursesync.NewService(coursesync.ServiceParams{
		Catalog:      repo,
		API:          client,
		Session:      sessions,
		Bus:          bus,
		UserCacheTTL: time.Minute,
	})

	s.server = server.NewServer(server.NewServerParams{
		Catalog:        repo,
		Courses:        s.courses,
		Session:        sessions,
		Bus:            bus,
		RateLimiter:    redis_rate.NewLimiter(s.RedisClient),
		LoginPerMin:    loginPerMin,
		MetricsManager: metricsManager,
		PromRegistry:   promRegistry,
	})
	s.BFF = httptest.NewServer(s.server.Router())

	return nil
}

func (s *Suite) cleanup() {
	if s.BFF != nil {
		s.BFF.Close()
	}
	if s.server != nil {
		s.server.Close()
	}
	if s.courses != nil {
		s.courses.Close()
	}
	for i := len(s.teardown) - 1; i >= 0; i-- {
		s.teardown[i]()
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "fitsync-redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}
