package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"groupbuy/internal/config/configs"
)

// Config is the service configuration, read from the environment. Each
// section is parsed under its own prefix; defaults live on the section
// types in the configs package.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	// Psql is only dialled when the engine storage is "postgres".
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Redis configs.Redis `envPrefix:"REDIS_"`

	AMQP configs.AMQP `envPrefix:"AMQP_"`

	Engine configs.Engine `envPrefix:"ENGINE_"`
}

// Load parses the environment into a Config and checks the engine settings
// that have no usable zero value.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return cfg, err
	}
	if err = cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.Engine.JoinRetries < 1 {
		errs = append(errs, errors.New("ENGINE_JOIN_RETRIES must be at least 1"))
	}
	if c.Engine.SweepBatch < 1 {
		errs = append(errs, errors.New("ENGINE_SWEEP_BATCH must be at least 1"))
	}
	if c.Redis.Enabled && c.Redis.Channel == "" {
		errs = append(errs, errors.New("REDIS_CHANNEL is required when redis is enabled"))
	}
	return errors.Join(errs...)
}
