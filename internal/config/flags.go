package config

import (
	"flag"
	"os"

	"github.com/Zetpete/Vaccine-Scheduler/internal/flagx"
)

// parseFlags overlays selected Config fields from command-line flags.
//
// Supported flags:
//
//	-b string   database backend: "sqlite" or "pgx"
//	-d string   database DSN (file path for sqlite)
//	-l string   log level: debug | info | warn | error
//
// Arguments are filtered to the flags handled here so the -c/-config flag
// consumed by the JSON layer does not trip the parser.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDriver, "b", config.DatabaseDriver, "database backend (sqlite or pgx)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
