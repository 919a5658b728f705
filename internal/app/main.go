package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"

	kafkabroker "github.com/nutscript/helix-logs/internal/broker/kafka"
	"github.com/nutscript/helix-logs/internal/cache"
	"github.com/nutscript/helix-logs/internal/config"
	v1 "github.com/nutscript/helix-logs/internal/controller/http/v1"
	"github.com/nutscript/helix-logs/internal/metrics"
	"github.com/nutscript/helix-logs/internal/repo"
	"github.com/nutscript/helix-logs/internal/repo/sqlitedb"
	"github.com/nutscript/helix-logs/internal/service"
	errorsUtils "github.com/nutscript/helix-logs/pkg/errors"
	"github.com/nutscript/helix-logs/pkg/httpserver"
	"github.com/nutscript/helix-logs/pkg/logger"
	"github.com/nutscript/helix-logs/pkg/postgres"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Repositories. The production schema is owned by the game server;
	// migrations only provision a local development database.
	var repositories *repo.Repositories

	switch cfg.DB.Driver {
	case "postgres":
		if cfg.PG.Migrate {
			Migrate(cfg.PG.URL)
		}

		log.Info("Connecting to log DB")
		logPG, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
		if err != nil {
			log.Fatal(errorsUtils.WrapPathErr(err))
		}
		defer logPG.Close()

		adminURL := cfg.Admin.URL
		if adminURL == "" {
			adminURL = cfg.PG.URL
		}

		log.Info("Connecting to admin DB")
		adminPG, err := postgres.New(adminURL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
		if err != nil {
			log.Fatal(errorsUtils.WrapPathErr(err))
		}
		defer adminPG.Close()

		repositories, err = repo.NewRepositories(logPG, adminPG, cfg.Admin.Mod)
		if err != nil {
			log.Fatal(errorsUtils.WrapPathErr(err))
		}

	case "sqlite":
		log.Infof("Opening sqlite database %s", cfg.DB.SQLitePath)
		db, err := sqlitedb.New(cfg.DB.SQLitePath)
		if err != nil {
			log.Fatal(errorsUtils.WrapPathErr(err))
		}
		defer db.Close()

		rankRepo, err := sqlitedb.NewRankRepo(db, cfg.Admin.Mod)
		if err != nil {
			log.Fatal(errorsUtils.WrapPathErr(err))
		}

		repositories = &repo.Repositories{
			Log:  sqlitedb.NewLogRepo(db),
			Rank: rankRepo,
		}

	default:
		log.Fatalf("Unknown db driver: %s", cfg.DB.Driver)
	}

	// Cache
	var store cache.Store
	if cfg.Redis.Addr != "" {
		log.Info("Connecting to redis cache")
		redisStore := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password)
		defer redisStore.Close()
		store = redisStore
	} else {
		log.Warn("No redis address configured, using in-process cache")
		store = cache.NewMemory()
	}

	// Metrics
	counters := metrics.New()

	// Services
	services := service.NewServices(service.ServicesDependencies{
		Repos:        repositories,
		Cache:        store,
		Counters:     counters,
		AllowedRanks: cfg.Admin.AllowedRanks,
	})

	// Audit stream
	var audit *kafkabroker.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		log.Info("Starting audit producer")
		audit = kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer audit.Close()
	}

	// HTTP server
	log.Infof("Starting HTTP server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	handler := echo.New()
	handler.Use(echoprometheus.NewMiddleware(cfg.App.Name))
	v1.NewRouter(handler, v1.Deps{
		Services: services,
		Counters: counters,
		Audit:    audit,
	})
	httpServer := httpserver.New(handler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
}
