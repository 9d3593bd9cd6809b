package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/fittrack/internal/metrics"
	"github.com/limbo/fittrack/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultRequestTimeout = 10 * time.Second
	shutdownTimeout       = 15 * time.Second
)

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	plansService   service.PlansServiceI
	logsService    service.WorkoutLogsServiceI
	statsService   service.StatsServiceI
	jwtService     JWTServiceI
	metrics        *metrics.Manager
	metricsHandler http.Handler
	requestTimeout time.Duration
}

type ServicesList struct {
	UserService        service.UserServiceI
	PlansService       service.PlansServiceI
	WorkoutLogsService service.WorkoutLogsServiceI
	StatsService       service.StatsServiceI
	JwtService         JWTServiceI
	// Metrics must be registered in Registry. Both are created when nil.
	Metrics        *metrics.Manager
	Registry       *prometheus.Registry
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	reg := servicesOptions.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	manager := servicesOptions.Metrics
	if manager == nil {
		manager = metrics.NewManager("fittrack", "api", reg)
	}
	timeout := servicesOptions.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		plansService:   servicesOptions.PlansService,
		logsService:    servicesOptions.WorkoutLogsService,
		statsService:   servicesOptions.StatsService,
		jwtService:     servicesOptions.JwtService,
		metrics:        manager,
		metricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		requestTimeout: timeout,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Method(http.MethodGet, "/metrics", s.metricsHandler)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/plans", s.ListPlans)
			r.Post("/plans", s.CreatePlan)
			r.Get("/plans/{id}", s.GetPlan)
			r.Put("/plans/{id}", s.UpdatePlan)
			r.Delete("/plans/{id}", s.DeletePlan)
			r.Get("/plans/{id}/exercises", s.ListExercises)
			r.Post("/plans/{id}/exercises", s.CreateExercise)

			r.Put("/exercises/{id}", s.UpdateExercise)
			r.Delete("/exercises/{id}", s.DeleteExercise)

			r.Get("/logs", s.ListLogs)
			r.Post("/logs", s.RecordWorkout)
			r.Get("/logs/{id}", s.GetLog)

			r.Get("/stats", s.GetStats)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
		IdleTimeout:       2 * time.Minute,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// requestContext is detached from the client connection so a disconnect
// can't interrupt a store call half way.
func (s *Server) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.requestTimeout)
}
