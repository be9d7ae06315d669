// Package config handles scheduler configuration: defaults, optional JSON
// file, environment variables, and command-line flags, applied in that order.
package config

// Config holds runtime settings for the scheduler CLI.
//
// Fields:
//   - DatabaseDriver: "sqlite" (default, local file) or "pgx" (PostgreSQL).
//   - DatabaseDSN: file path for sqlite, connection string for pgx.
//   - LogLevel: debug | info | warn | error, for the stderr log.
type Config struct {
	DatabaseDriver string
	DatabaseDSN    string
	LogLevel       string
}

// LoadDefaults populates Config with local-development defaults: a sqlite
// store next to the binary and info-level logging.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "scheduler.db"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
