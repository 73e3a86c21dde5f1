package main

import (
	"fmt"
	"os"

	"github.com/2741538125/sky-takeout/configs"
	"github.com/2741538125/sky-takeout/middlewares"
	"github.com/2741538125/sky-takeout/pkg/cache"
	"github.com/2741538125/sky-takeout/routes"
	"github.com/2741538125/sky-takeout/ws"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("invalid LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		logger.Fatalf("database: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		logger.Fatalf("migrate: %v", err)
	}
	if err := configs.SeedAdmin(); err != nil {
		logger.Fatalf("seed admin: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		logger.Fatalf("seed lookups: %v", err)
	}
	db := configs.DB()

	// Cache-invalidation sink; disabled when AMQP_URL is unset
	invalidator, err := cache.NewAMQPInvalidator(cfg.AMQPURL, cfg.AMQPExchange, logger)
	if err != nil {
		logger.WithError(err).Warn("cache invalidation broker unavailable, continuing without it")
	}
	var inv cache.Invalidator
	if invalidator != nil {
		inv = invalidator
	}

	// Merchant reminder socket
	hub := ws.NewOrderHub(logger)
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Static("/uploads", "./"+cfg.UploadDir)
	routes.RegisterRoutes(r, db, cfg, inv, hub, logger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Infof("server running at %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatal(err)
	}
}
