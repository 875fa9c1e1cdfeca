package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/emobies/emobies-api/config"
	"github.com/emobies/emobies-api/logging"
	"github.com/emobies/emobies-api/router"
	"github.com/emobies/emobies-api/server"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.App.Mode)

	logger := logging.NewLogger(cfg.Log.Level)
	r := router.InitRouter(logger)
	srv := server.NewServer(cfg.App.Name, cfg.Addr(), r, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Server exiting")
}
