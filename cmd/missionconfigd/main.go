package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alexisjeriha/mission-config-contract-tests/internal/config"
	"github.com/alexisjeriha/mission-config-contract-tests/internal/handlers"
	"github.com/alexisjeriha/mission-config-contract-tests/internal/store"
)

func main() {
	var configPath = flag.String("config", "", "path to config file (default: "+config.DefaultConfigPath+" if present)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	st := store.New(cfg.MaxMissions)
	router := handlers.NewRouter(handlers.NewAPIHandler(st, logger))

	address := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info("starting mission config service",
		zap.String("address", address),
		zap.Int("max_missions", cfg.MaxMissions))
	if err := router.Run(address); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
