package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type (
	Config struct {
		App        App        `yaml:"app"`
		HTTP       HTTP       `yaml:"http"`
		Log        Log        `yaml:"logger"`
		DB         DB         `yaml:"db"`
		PG         PG         `yaml:"postgres"`
		Admin      Admin      `yaml:"admin"`
		Redis      Redis      `yaml:"redis"`
		Kafka      Kafka      `yaml:"kafka"`
		Prometheus Prometheus `yaml:"prometheus"`
	}

	App struct {
		Name    string `yaml:"name" env:"APP_NAME" env-default:"helix-logs"`
		Version string `yaml:"version" env:"APP_VERSION" env-default:"1.0.0"`
	}

	HTTP struct {
		Port string `yaml:"port" env:"HTTP_PORT" env-default:"3000"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	// DB selects the log-store backend: "postgres" for a live server
	// database, "sqlite" for a copied-over embedded file.
	DB struct {
		Driver     string `yaml:"driver" env:"DB_DRIVER" env-default:"postgres"`
		SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"helix.db"`
	}

	PG struct {
		URL         string `yaml:"url" env:"PG_URL"`
		MaxPoolSize int    `yaml:"max_pool_size" env:"PG_MAX_POOL_SIZE" env-default:"4"`
		Migrate     bool   `yaml:"migrate" env:"PG_MIGRATE" env-default:"false"`
	}

	// Admin points at the admin-mod database. URL may be empty, in
	// which case the rank table is read through the log-store pool's
	// connection string.
	Admin struct {
		Mod          string   `yaml:"mod" env:"ADMIN_MOD" env-default:"sam"`
		URL          string   `yaml:"url" env:"ADMIN_PG_URL"`
		AllowedRanks []string `yaml:"allowed_ranks" env:"ALLOWED_RANKS" env-default:"admin,superadmin"`
	}

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
	}

	Kafka struct {
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS"`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"helix-logs.audit"`
	}

	Prometheus struct {
		Port string `yaml:"port" env:"PROMETHEUS_PORT" env-default:"9090"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		// Config file is optional, env alone is enough.
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config - New - ReadEnv: %w", err)
		}
	}

	return cfg, nil
}
