// Command migrate applies the database schema.
//
//	migrate -config config/example.yaml up
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gestobra/internal/config"
	"gestobra/internal/infrastructure/storage/postgres/migrations"
	"gestobra/pkg/logger"
)

func main() {
	configPath := flag.String("config", os.Getenv("GESTOBRA_CONFIG"), "path to a YAML config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: migrate [-config file] up|down|status\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cmd := migrations.Up
	if flag.NArg() > 0 {
		cmd = migrations.Command(flag.Arg(0))
	}
	switch cmd {
	case migrations.Up, migrations.Down, migrations.Status:
	default:
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.App.LogLevel, Development: true})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := logger.WithLogger(context.Background(), log)
	if err := migrations.Run(ctx, cfg.Postgres.DSN, cmd); err != nil {
		log.Fatalw("migration failed", "command", cmd, "error", err)
	}
	log.Infow("migration finished", "command", cmd)
}
