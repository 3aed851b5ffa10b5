package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitsync/internal/events"
	"github.com/2beens/fitsync/internal/middleware"
	"github.com/2beens/fitsync/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

const loginRateLimitPerMin = 5

type NewServerParams struct {
	Catalog        catalogService
	Courses        courseService
	Session        sessionService
	Bus            *events.Bus
	RateLimiter    middleware.RequestRateLimiter // nil disables login rate limiting
	LoginPerMin    int
	AllowedOrigins []string
	MetricsManager *metrics.Manager
	PromRegistry   *prometheus.Registry
}

// Server is the local backend-for-frontend: UI processes read engine views
// over HTTP and follow changes on the /events websocket.
type Server struct {
	httpServer *http.Server
	handler    *Handler
	session    sessionService
	hub        *Hub

	rateLimiter    middleware.RequestRateLimiter
	loginPerMin    int
	allowedOrigins []string

	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry

	unsubscribe func()
	stopHub     chan struct{}
	hubStopped  chan struct{}
}

func NewServer(params NewServerParams) *Server {
	s := &Server{
		handler:        NewHandler(params.Catalog, params.Courses, params.Session),
		session:        params.Session,
		rateLimiter:    params.RateLimiter,
		loginPerMin:    params.LoginPerMin,
		allowedOrigins: params.AllowedOrigins,
		metricsManager: params.MetricsManager,
		promRegistry:   params.PromRegistry,
		stopHub:        make(chan struct{}),
		hubStopped:     make(chan struct{}),
	}
	if s.loginPerMin <= 0 {
		s.loginPerMin = loginRateLimitPerMin
	}

	s.hub = NewHub(func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || middleware.OriginAllowed(origin, s.allowedOrigins...)
	}, s.metricsManager)

	go func() {
		defer close(s.hubStopped)
		s.hub.Run(s.stopHub)
	}()
	if params.Bus != nil {
		s.unsubscribe = params.Bus.Subscribe(s.hub.Relay)
	}

	return s
}

// Router builds the BFF routes with the middleware chain applied.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitsync-bff"))

	requireSession := middleware.RequireSession(s.session)

	r.HandleFunc("/courses", s.handler.handleGetCourses).Methods("GET", "OPTIONS").Name("courses")
	r.HandleFunc("/courses/{id}", s.handler.handleGetCourse).Methods("GET", "OPTIONS").Name("course")
	r.HandleFunc("/courses/{id}/workouts", s.handler.handleGetCourseWorkouts).Methods("GET", "OPTIONS").Name("course-workouts")
	r.HandleFunc("/courses/{id}/summary", s.handler.handleGetCourseSummary).Methods("GET", "OPTIONS").Name("course-summary")
	r.HandleFunc("/courses/{id}/progress", s.handler.handleGetCourseProgress).Methods("GET", "OPTIONS").Name("course-progress")

	r.Handle("/courses/{id}/workouts/{wid}", requireSession(http.HandlerFunc(s.handler.handleSaveProgress))).Methods("PATCH", "OPTIONS").Name("save-progress")
	r.Handle("/courses/{id}/workouts/{wid}/reset", requireSession(http.HandlerFunc(s.handler.handleResetWorkout))).Methods("PATCH", "OPTIONS").Name("reset-workout")
	r.Handle("/courses/{id}/reset", requireSession(http.HandlerFunc(s.handler.handleResetCourse))).Methods("PATCH", "OPTIONS").Name("reset-course")

	r.HandleFunc("/me", s.handler.handleGetMe).Methods("GET", "OPTIONS").Name("me")
	r.HandleFunc("/me/courses", s.handler.handleGetMyCourses).Methods("GET", "OPTIONS").Name("my-courses")
	r.HandleFunc("/me/summaries", s.handler.handleGetMySummaries).Methods("GET", "OPTIONS").Name("my-summaries")
	r.Handle("/me/courses/{id}", requireSession(http.HandlerFunc(s.handler.handleEnroll))).Methods("POST", "OPTIONS").Name("enroll")
	r.Handle("/me/courses/{id}", requireSession(http.HandlerFunc(s.handler.handleUnenroll))).Methods("DELETE", "OPTIONS").Name("unenroll")

	var login http.Handler = http.HandlerFunc(s.handler.handleLogin)
	if s.rateLimiter != nil {
		// rate limit the login endpoint to prevent credential stuffing through the local server
		login = middleware.RateLimit(s.rateLimiter, "login", s.loginPerMin, s.metricsManager)(login)
	}
	r.Handle("/auth/login", login).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/auth/register", s.handler.handleRegister).Methods("POST", "OPTIONS").Name("register")
	r.HandleFunc("/auth/logout", s.handler.handleLogout).Methods("POST", "OPTIONS").Name("logout")

	r.HandleFunc("/events", s.hub.ServeWS).Methods("GET").Name("events")
	if s.promRegistry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{})).Methods("GET").Name("metrics")
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.allowedOrigins...))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:           s.Router(),
		Addr:              ipAndPort,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		// no WriteTimeout: /events connections are long lived
		ConnState: s.connStateMetrics,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("bff server, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// Close stops relaying events and disconnects the websocket clients.
func (s *Server) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	select {
	case <-s.stopHub:
	default:
		close(s.stopHub)
	}
	<-s.hubStopped
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)
	s.Close()

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
	}
	log.Warnln("server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
