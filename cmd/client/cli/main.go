package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/avoskan/taskdeck/internal/buildinfo"
	"github.com/avoskan/taskdeck/internal/client/cli"
	"github.com/avoskan/taskdeck/internal/client/config"
	"github.com/avoskan/taskdeck/internal/logging"
	"github.com/joho/godotenv"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// a missing .env is not an error, environment variables still apply
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
