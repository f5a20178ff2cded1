package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"odyssey-voice/internal/bot"
	"odyssey-voice/internal/config"
	"odyssey-voice/internal/logger"
	"odyssey-voice/internal/metrics"
	"odyssey-voice/internal/storage"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Setup(cfg); err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	if err := storage.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	botService, err := bot.Initialize(cfg, storage.GetDB())
	if err != nil {
		log.Fatalf("Failed to initialize bot: %v", err)
	}

	metrics.Serve(cfg)

	if err := botService.Start(); err != nil {
		log.Fatalf("Failed to connect to gateway: %v", err)
	}
	log.Println("Gateway connection established")

	// One catch-up sweep picks up channels that emptied or disappeared while
	// the process was down, then the periodic sweeper takes over.
	botService.Engine.Sweep(ctx)
	botService.Engine.StartSweeper(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Printf("Received signal: %v, shutting down...", sig)

	cancel()
	botService.Stop()
	log.Println("Bot gracefully stopped")
}
