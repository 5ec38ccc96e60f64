package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/beastfit-api/internal/config"
	"github.com/harentsoaR/beastfit-api/internal/handlers"
	"github.com/harentsoaR/beastfit-api/internal/logging"
	"github.com/harentsoaR/beastfit-api/internal/services"
	"github.com/harentsoaR/beastfit-api/internal/store"
	"github.com/harentsoaR/beastfit-api/internal/utils"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Store ---
	st, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	adminHash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin, err := store.BootstrapAdmin(ctx, st, cfg.AdminEmail, adminHash)
	if err != nil {
		return err
	}
	logger.Info(ctx, "admin account ready", "user_id", admin.ID, "email", admin.Email)

	// --- Services ---
	var staff services.Notifier = services.NewLogNotifier(logger)
	if cfg.ResendAPIKey != "" && cfg.StaffEmail != "" {
		staff = services.NewEmailNotifier(cfg.ResendAPIKey, cfg.FromEmail, cfg.StaffEmail)
		logger.Info(ctx, "staff notifications by email", "to", cfg.StaffEmail)
	}
	notificationSvc := services.NewNotificationService(logger, staff, cfg.TextbeltAPIKey)

	// --- Handlers & router ---
	h := handlers.NewHandler(st, notificationSvc, logger, handlers.SessionConfig{
		Secret:       []byte(cfg.JWTSecret),
		TTL:          cfg.SessionTTL,
		SecureCookie: cfg.CookieSecure,
	})
	gin.SetMode(gin.ReleaseMode)
	r := handlers.NewRouter(h, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting server", "port", cfg.Port, "store", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	notificationSvc.Wait()
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, logger logging.Logger) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMongo:
		if cfg.MongoURI == "" {
			return nil, nil, errors.New("MONGO_URI is required for the mongo store")
		}
		client, err := store.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		logger.Info(ctx, "connected to MongoDB", "database", cfg.MongoDatabase)

		ms := store.NewMongoStore(client.Database(cfg.MongoDatabase))
		if err := ms.EnsureIndexes(ctx); err != nil {
			logger.Warn(ctx, "failed to create indexes", "error", err)
		}
		return ms, disconnect(client, logger), nil
	default:
		if cfg.StoreBackend != config.BackendMemory {
			logger.Warn(ctx, "unknown store backend, using memory", "backend", cfg.StoreBackend)
		}
		return store.NewMemoryStore(), func() {}, nil
	}
}

func disconnect(client *mongo.Client, logger logging.Logger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Error(ctx, "mongo disconnect", "error", err)
		}
	}
}
