package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service *svcConfig
	Redis   *redisConfig
}

type svcConfig struct {
	Address      string        `envconfig:"FINCALC_ADDRESS" default:":8080"`
	LogLevel     string        `envconfig:"FINCALC_LOG_LEVEL" default:"info"`
	ReadTimeout  time.Duration `envconfig:"FINCALC_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"FINCALC_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout  time.Duration `envconfig:"FINCALC_IDLE_TIMEOUT" default:"60s"`

	RateLimitRequests int           `envconfig:"FINCALC_RATE_LIMIT_REQUESTS" default:"60"`
	RateLimitWindow   time.Duration `envconfig:"FINCALC_RATE_LIMIT_WINDOW" default:"1m"`
}

type redisConfig struct {
	// Address empty means results are cached in process memory only.
	Address string        `envconfig:"FINCALC_REDIS_ADDRESS" default:""`
	TTL     time.Duration `envconfig:"FINCALC_REDIS_TTL" default:"1h"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}
