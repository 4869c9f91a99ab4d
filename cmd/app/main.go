package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"shipping/cmd"
	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/pkg/metrics"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	metrics.Register()

	app := cmd.NewCompositionRoot(configs)

	if configs.ExchangeDir != "" {
		jobManager := app.CreateJobManager(configs.ExchangeDir, logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting background jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:    os.Getenv("HTTP_PORT"),
		ExchangeDir: os.Getenv("EXCHANGE_DIR"),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	return config
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentCommandHandler(),
		app.CreateGetShipmentQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
