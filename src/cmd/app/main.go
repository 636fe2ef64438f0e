package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"quotation-service/src/internal/config"
	"quotation-service/src/internal/delivery/http/middleware"
	"quotation-service/src/pkg/log"
)

func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "QUOTATION_SERVICE")
	viperConfig.SetDefault("app.origin_id", 1)
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("storage.dir", "./uploads")
	viperConfig.SetDefault("copomex.base_url", "https://api.copomex.com")
	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis(viperConfig, logger)
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	app.Use(middleware.NewLogger())
	config.Bootstrap(&config.BootstrapConfig{
		DB:       db,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Redis:    redisClient,
		Mailer:   config.NewMailer(viperConfig),
		Sms:      config.NewSmsSender(viperConfig),
		Geocoder: config.NewGeocoder(viperConfig, redisClient, logger),
	})

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	go func() {
		<-quit
		logger.Info("main", "Server quotation-service is shutting down...", "graceful", "")

		_, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
		close(done)
	}()

	webPort := viperConfig.GetInt("web.port")
	if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
		logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
	}

	<-done
	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
