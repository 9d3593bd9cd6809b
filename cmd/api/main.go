// @title Fittrack API
// @description API for workout tracker "Fittrack"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/limbo/fittrack/internal/api"
	"github.com/limbo/fittrack/internal/metrics"
	"github.com/limbo/fittrack/internal/migrate"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/cleanup"
	"github.com/limbo/fittrack/pkg/config"
	jwtservice "github.com/limbo/fittrack/pkg/jwt_service"
	"github.com/limbo/fittrack/pkg/logging"
	"github.com/limbo/fittrack/pkg/tracing"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	_, closeLog := logging.Setup(logging.Options{
		Level: cfg.GetStringOr("LOG_LEVEL", "info"),
		JSON:  cfg.GetBool("LOG_FORMAT_JSON", false),
		File:  cfg.GetString("LOG_FILE"),
	})
	cleanup.Register(&cleanup.Job{Name: "closing log file", F: closeLog})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracingEnabled := cfg.GetBool("TRACING_ENABLED", false)
	if tracingEnabled {
		shutdown, err := tracing.Setup("fittrack", os.Stdout)
		if err != nil {
			log.Fatal("setting up tracing: ", err)
		}
		cleanup.Register(&cleanup.Job{
			Name: "flushing traces",
			F: func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return shutdown(ctx)
			},
		})
	}

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
	if err := migrate.Up(dbCfg.ConnString(), cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
		log.Fatal(err)
	}
	startCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	pool, err := repository.NewPool(startCtx, &dbCfg, repository.PoolOptions{
		MaxConns: int32(cfg.GetInt("DB_MAX_CONNS", 10)),
		Tracing:  tracingEnabled,
	})
	cancel()
	if err != nil {
		log.Fatal(err)
	}

	promRegistry := metrics.SetupPrometheus(pgxpoolprometheus.NewCollector(pool, map[string]string{"db_name": dbCfg.DB}))
	metricsManager := metrics.NewManager("fittrack", "api", promRegistry)

	queryTimeout := repository.WithQueryTimeout(cfg.GetDuration("DB_QUERY_TIMEOUT", 5*time.Second))
	usersRepo := repository.NewUsersRepo(pool, queryTimeout)
	plansRepo := repository.NewPlansRepo(pool, queryTimeout)
	exercisesRepo := repository.NewExercisesRepo(pool, queryTimeout)
	logsRepo := repository.NewWorkoutLogsRepo(pool, queryTimeout)

	guard := service.NewOwnershipGuard(plansRepo, exercisesRepo, logsRepo)
	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo),
		PlansService:       service.NewPlansService(plansRepo, exercisesRepo, guard),
		WorkoutLogsService: service.NewWorkoutLogsService(logsRepo, exercisesRepo, guard, service.WithWorkoutObserver(metricsManager)),
		StatsService: service.NewStatsService(logsRepo, plansRepo, service.WithStatsDefaults(service.StatsOptions{
			WindowDays: cfg.GetInt("STATS_WINDOW_DAYS", service.DefaultWindowDays),
			Buckets:    cfg.GetInt("STATS_BUCKETS", service.DefaultBuckets),
		})),
		JwtService:     jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
		Metrics:        metricsManager,
		Registry:       promRegistry,
		RequestTimeout: cfg.GetDuration("REQUEST_TIMEOUT", 10*time.Second),
	})

	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	if err = cleanup.CleanUp(); err != nil {
		log.Println("cleanup error: " + err.Error())
	}
}
