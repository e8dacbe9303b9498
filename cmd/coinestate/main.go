package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/finsterfurz/coinestateV2/internal/api"
	"github.com/finsterfurz/coinestateV2/internal/config"
	"github.com/finsterfurz/coinestateV2/internal/database"
	"github.com/finsterfurz/coinestateV2/internal/hooks"
	"github.com/finsterfurz/coinestateV2/internal/logging"
	"github.com/finsterfurz/coinestateV2/internal/services"
	"github.com/finsterfurz/coinestateV2/internal/wallet"
)

// Build information (set via ldflags)
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)

func main() {
	var showVersion = flag.Bool("version", false, "Show version information")
	var debug = flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *showVersion {
		log.Printf("CoinEstate Session Server\n")
		log.Printf("Version: %s\n", Version)
		log.Printf("Commit: %s\n", CommitHash)
		log.Printf("Built: %s\n", BuildTime)
		return
	}

	cfg := config.Load()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	cfg.Validate(logger)

	db, err := database.New(cfg.DatabasePath, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	networkService := services.NewNetworkService(db.DB)
	if err := networkService.Seed(cfg.Networks); err != nil {
		logger.Fatal("failed to seed networks", zap.Error(err))
	}

	endpoints := make(map[uint64]string, len(cfg.Networks))
	for _, n := range cfg.Networks {
		endpoints[n.ChainID] = n.RPC
	}
	provider, err := wallet.NewRPCProvider(cfg.PrivateKey, endpoints, cfg.Networks[0].ChainID, nil)
	if err != nil {
		logger.Fatal("failed to initialize wallet provider", zap.Error(err))
	}
	defer provider.Close()

	notificationService := services.NewNotificationService()
	notificationService.AddSink(services.NewZapSink(logger))

	txService := services.NewTransactionService(db.DB)

	hookService := services.NewHookService()
	if err := hookService.AddHook(hooks.NewAuditHook(logger)); err != nil {
		logger.Fatal("failed to register audit hook", zap.Error(err))
	}

	sessionService := services.NewSessionService(
		provider,
		networkService,
		notificationService,
		txService,
		hookService,
		cfg,
		logger,
		nil,
	)
	sessionService.Start()
	defer sessionService.Close()

	apiServer := api.NewAPIServer(sessionService, networkService, notificationService, txService, cfg, logger)
	port, err := apiServer.Start()
	if err != nil {
		logger.Fatal("failed to start API server", zap.Error(err))
	}
	logger.Info("api server started", zap.Int("port", port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := apiServer.Shutdown(); err != nil {
		logger.Error("api shutdown failed", zap.Error(err))
	}
}
