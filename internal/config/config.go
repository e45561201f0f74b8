package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"credo"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"credo"`
	}

	// Fraud is the external fraud-check service. When URL is empty the
	// service falls back to the in-memory gate.
	Fraud struct {
		URL     string        `envconfig:"FRAUD_URL"`
		Token   string        `envconfig:"FRAUD_TOKEN"`
		Timeout time.Duration `envconfig:"FRAUD_TIMEOUT" default:"5s"`
	}

	// Source is the external order API polled by the sync job.
	Source struct {
		URL     string        `envconfig:"ORDER_SOURCE_URL"`
		Timeout time.Duration `envconfig:"ORDER_SOURCE_TIMEOUT" default:"10s"`
	}

	Sync struct {
		Interval time.Duration `envconfig:"SYNC_INTERVAL" default:"1m"`
	}

	Kafka struct {
		Brokers []string `envconfig:"KAFKA_BROKERS"`
		Topic   string   `envconfig:"KAFKA_TOPIC" default:"orders"`
		GroupID string   `envconfig:"KAFKA_GROUP_ID" default:"credo"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
