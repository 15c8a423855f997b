package main

import (
	"github.com/docchat/docchat/internal/config"
	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/internal/stubserver"
)

func main() {
	log := logger.NewLogger("docchat-stubserver")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	handler := stubserver.NewHandler(cfg, log)
	server := stubserver.NewServer(handler.Init(), cfg, log)
	server.RunServer()
}
