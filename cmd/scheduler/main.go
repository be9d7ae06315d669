package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/Zetpete/Vaccine-Scheduler/internal/buildinfo"
	"github.com/Zetpete/Vaccine-Scheduler/internal/cli"
	"github.com/Zetpete/Vaccine-Scheduler/internal/config"
	"github.com/Zetpete/Vaccine-Scheduler/internal/logging"
	"github.com/Zetpete/Vaccine-Scheduler/internal/repositories/repomanager"
	"github.com/Zetpete/Vaccine-Scheduler/internal/service"
)

func main() {
	buildinfo.Print(os.Stderr)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	db, repos, err := repomanager.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	logger.Info(ctx, "store opened", "driver", cfg.DatabaseDriver, "dsn", cfg.DatabaseDSN)

	app := cli.NewApp(
		service.NewAccounts(db, repos),
		service.NewSchedule(db, repos),
		service.NewAppointments(db, repos),
		logger,
		os.Stdout,
	)
	app.Run(ctx, bufio.NewScanner(os.Stdin))
}
