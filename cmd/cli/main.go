package main

import (
	"context"
	"log"

	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/cli"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/config"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app := cli.NewApp(cfg, logger)
	app.Run(ctx)
}
