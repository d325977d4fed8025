package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/timmy/moodmeme/internal/api"
	"github.com/timmy/moodmeme/internal/config"
	"github.com/timmy/moodmeme/internal/logger"
	"github.com/timmy/moodmeme/internal/service"
)

func main() {
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	if missing := cfg.MissingCredentials(); len(missing) > 0 {
		appLogger.Warnf("Missing credentials, upstream calls will use fallbacks: %s", strings.Join(missing, ", "))
	}

	classifierService := service.NewClassifierService(&service.ClassifierConfig{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Timeout:  cfg.LLM.Timeout,
	})

	imgflipService := service.NewImgflipService(&service.ImgflipConfig{
		Username:    cfg.Imgflip.Username,
		Password:    cfg.Imgflip.Password,
		Endpoint:    cfg.Imgflip.Endpoint,
		FallbackURL: cfg.Imgflip.FallbackURL,
		Timeout:     cfg.Imgflip.Timeout,
	})

	analyzeService := service.NewAnalyzeService(
		classifierService,
		service.NewKeywordCorrector(),
		imgflipService,
	)

	router := api.SetupRouter(analyzeService, cfg, appLogger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		appLogger.WithFields(logger.Fields{
			"port":  cfg.Server.Port,
			"mode":  cfg.Server.Mode,
			"model": classifierService.GetModel(),
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}
