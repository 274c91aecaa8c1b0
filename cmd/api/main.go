package main

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/docs"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/config"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/handler"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/logger"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/planner"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/service"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/sources"
)

// @title Campaign Planning Service API
// @version 1.0
// @description API for generating multi-channel marketing campaign plans
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.ServiceEnvironment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.ServiceEnvironment),
		zap.String("port", cfg.ServiceAPIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.ServiceHost

	// Fixture-backed source provider; swap for real integrations here.
	provider := sources.NewStatic()

	p := planner.New(provider)

	planService := service.NewPlanService(p, cfg.ValidateFinalPlan, cfg.DefaultTimezone, log)

	frameDelay := time.Duration(cfg.StreamFrameDelayMS) * time.Millisecond
	h := handler.NewHandler(planService, frameDelay, log)

	addr := fmt.Sprintf(":%s", cfg.ServiceAPIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
