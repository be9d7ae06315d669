package config

import "github.com/caarlos0/env/v11"

// envConfig mirrors Config for environment parsing. Unset variables leave the
// corresponding Config fields untouched.
type envConfig struct {
	DatabaseDriver string `env:"SCHEDULER_DB_DRIVER"`
	DatabaseDSN    string `env:"SCHEDULER_DB_DSN"`
	LogLevel       string `env:"SCHEDULER_LOG_LEVEL"`
}

func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.DatabaseDriver != "" {
		config.DatabaseDriver = c.DatabaseDriver
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
