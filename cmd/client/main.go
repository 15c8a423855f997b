package main

import (
	"fmt"

	"github.com/docchat/docchat/internal/api"
	"github.com/docchat/docchat/internal/client"
	"github.com/docchat/docchat/internal/config"
	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/internal/service"
	"github.com/docchat/docchat/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("docchat-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverClient, err := api.New(api.Config{BaseURL: cfg.BackendURL, Timeout: cfg.RequestTimeout}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend client")
	}

	services := service.NewClientServices(serverClient, log)

	ui, err := tui.New(services, !cfg.DisableStreaming, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
