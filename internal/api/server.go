package api

import (
	"fmt"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/finsterfurz/coinestateV2/internal/api/middleware"
	"github.com/finsterfurz/coinestateV2/internal/config"
	"github.com/finsterfurz/coinestateV2/internal/services"
)

type APIServer struct {
	app      *fiber.App
	session  services.SessionService
	networks services.NetworkService
	notifier services.NotificationService
	txs      services.TransactionService
	cfg      *config.Config
	log      *zap.Logger
	port     int
}

func NewAPIServer(
	session services.SessionService,
	networks services.NetworkService,
	notifier services.NotificationService,
	txs services.TransactionService,
	cfg *config.Config,
	log *zap.Logger,
) *APIServer {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Add middleware
	app.Use(cors.New())
	app.Use(middleware.LoggerMiddleware(log))

	server := &APIServer{
		app:      app,
		session:  session,
		networks: networks,
		notifier: notifier,
		txs:      txs,
		cfg:      cfg,
		log:      log,
	}
	server.setupRoutes()
	return server
}

func (s *APIServer) setupRoutes() {
	// Session lifecycle
	s.app.Get("/api/session", s.handleSessionState)
	s.app.Post("/api/session/connect", s.handleConnect)
	s.app.Post("/api/session/disconnect", s.handleDisconnect)
	s.app.Post("/api/session/network", s.handleSwitchNetwork)
	s.app.Post("/api/session/refresh", s.handleRefresh)

	// Read-only ownership surface
	s.app.Get("/api/quote", s.handleQuote)
	s.app.Get("/api/info", s.handleInfo)
	s.app.Get("/api/profits/pending", s.handlePendingProfits)
	s.app.Get("/api/networks", s.handleNetworks)
	s.app.Get("/api/notifications", s.handleNotifications)
	s.app.Get("/api/transactions", s.handleTransactions)

	// Token issuance for the guarded routes
	s.app.Post("/api/auth/token", s.handleAuthToken)

	// Mutating on-chain operations, guarded when a JWT secret is configured
	guarded := s.app.Group("/api", middleware.AuthMiddleware(s.cfg.JWTSecret, s.log))
	guarded.Post("/purchase", s.handlePurchase)
	guarded.Post("/vote", s.handleVote)
	guarded.Post("/profits/claim", s.handleClaimProfits)

	// Health check
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})
}

// Start starts the server on the configured port, or a random available one
// when the port is 0.
func (s *APIServer) Start() (int, error) {
	port := s.cfg.APIPort
	if port == 0 {
		listener, err := net.Listen("tcp", ":0")
		if err != nil {
			return 0, fmt.Errorf("failed to find available port: %w", err)
		}
		port = listener.Addr().(*net.TCPAddr).Port
		listener.Close()
	}
	s.port = port

	go func() {
		if err := s.app.Listen(fmt.Sprintf(":%d", port)); err != nil {
			s.log.Error("api server stopped", zap.Error(err))
		}
	}()

	return port, nil
}

func (s *APIServer) Shutdown() error {
	return s.app.Shutdown()
}

func (s *APIServer) GetPort() int {
	return s.port
}

// App exposes the fiber app for handler tests.
func (s *APIServer) App() *fiber.App {
	return s.app
}
