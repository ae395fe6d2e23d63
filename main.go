package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"flowermarket-backend/configs"
	"flowermarket-backend/logger"
	"flowermarket-backend/middlewares"
	"flowermarket-backend/pkg/rabbitmq"
	"flowermarket-backend/routes"
	"flowermarket-backend/services"
	"flowermarket-backend/utils"
)

func main() {
	cfg := configs.LoadConfig()

	logger.Init(cfg.Env)
	defer logger.Sync()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("connect db failed: %v", err)
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedVendor(); err != nil {
		log.Fatalf("seed vendor failed: %v", err)
	}

	if err := utils.EnsureDir(cfg.UploadDir); err != nil {
		log.Fatalf("create upload dir failed: %v", err)
	}

	// Order events are optional; without a broker the portal still runs.
	var events services.OrderEventPublisher
	if cfg.RabbitMQURL != "" {
		mq, err := rabbitmq.NewClient(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("connect rabbitmq failed: %v", err)
		}
		defer mq.Close()
		events = mq
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded product images
	r.Static("/uploads", "./"+cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, events)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.L().Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
