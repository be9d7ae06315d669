package config

import (
	"encoding/json"
	"os"

	"github.com/Zetpete/Vaccine-Scheduler/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON configuration file. Absent
// fields keep their previous (default) values.
type jsonConfig struct {
	DatabaseDriver string `json:"database_driver"`
	DatabaseDSN    string `json:"database_dsn"`
	LogLevel       string `json:"log_level"`
}

// parseJSON overlays values from the JSON file named by the -c/-config flag,
// if any. An unreadable or malformed file is a fatal misconfiguration.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
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
