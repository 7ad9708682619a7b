package main

import (
	"context"
	"equistore-backend/internal/client"
	"equistore-backend/internal/config"
	"equistore-backend/internal/repository"
	"equistore-backend/internal/server"
	"equistore-backend/internal/service"
	"equistore-backend/internal/storage"
	"equistore-backend/internal/telemetry"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const cartSweepInterval = time.Hour

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger, err := telemetry.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := client.InitSqliteClient(cfg.Database.Path)
	if err != nil {
		logger.Fatal("connect to database", zap.Error(err))
	}

	receiptStore, err := storage.NewDiskReceiptStore(cfg.Upload.Dir)
	if err != nil {
		logger.Fatal("init receipt store", zap.Error(err))
	}

	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)

	orderService := service.NewOrderService(orderRepo)
	cartService := service.NewCartService(cartRepo, logger)
	adminService := service.NewAdminService(cfg.Admin.Password, cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
	receiptService := service.NewReceiptService(receiptStore, orderService, cfg.BaseURL)

	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	defer sweepCancel()
	go cartService.RunExpirySweep(sweepCtx, cartSweepInterval)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(orderService, cartService, adminService, receiptService, cfg.Upload.Dir, logger)

	logger.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")
	sweepCancel()

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		logger.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}
