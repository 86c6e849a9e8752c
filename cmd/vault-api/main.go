package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimitrije/sharevault/internal/config"
	"github.com/dimitrije/sharevault/internal/database"
	"github.com/dimitrije/sharevault/internal/handlers"
	authmw "github.com/dimitrije/sharevault/internal/middleware"
	"github.com/dimitrije/sharevault/internal/services"
	"github.com/dimitrije/sharevault/internal/sse"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hub := sse.NewHub()
	go hub.Run()
	defer hub.Stop()

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry)
	accountService := services.NewAccountService(db)
	assetService := services.NewAssetService(db)
	coinService := services.NewCoinService(db)
	shareService := services.NewShareService(db)
	vaultService := services.NewVaultService(db, hub, logger)

	accountHandler := handlers.NewAccountHandler(accountService, assetService)
	coinHandler := handlers.NewCoinHandler(coinService)
	shareHandler := handlers.NewShareHandler(shareService)
	vaultHandler := handlers.NewVaultHandler(vaultService, cfg.EventsPageLimit)
	sseHandler := handlers.NewSSEHandler(hub, vaultService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", authmw.AdminCapHeader},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	api.Get("/health", func(c *drift.Context) {
		if err := db.Pool.Ping(c.Request.Context()); err != nil {
			_ = c.JSON(503, map[string]string{"status": "unavailable"})
			return
		}
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	protected := api.Group("")
	protected.Use(authmw.Auth(jwtService))

	protected.Get("/accounts/me", accountHandler.GetMe)
	protected.Get("/assets", accountHandler.ListAssets)

	protected.Get("/coins", coinHandler.List)
	protected.Get("/coins/:coinId", coinHandler.Get)
	protected.Post("/coins/:coinId/split", coinHandler.Split)
	protected.Post("/coins/:coinId/merge", coinHandler.Merge)
	protected.Post("/coins/:coinId/transfer", coinHandler.Transfer)

	protected.Get("/shares", shareHandler.List)
	protected.Get("/shares/:shareId", shareHandler.Get)
	protected.Post("/shares/:shareId/split", shareHandler.Split)
	protected.Post("/shares/:shareId/merge", shareHandler.Merge)
	protected.Post("/shares/:shareId/transfer", shareHandler.Transfer)

	protected.Get("/admin-caps", vaultHandler.AdminCaps)

	protected.Get("/vaults", vaultHandler.List)
	protected.Post("/vaults", vaultHandler.Create)
	protected.Get("/vaults/:vaultId", vaultHandler.Get)
	protected.Get("/vaults/:vaultId/values", vaultHandler.Values)
	protected.Post("/vaults/:vaultId/deposit", vaultHandler.Deposit)
	protected.Post("/vaults/:vaultId/withdraw", vaultHandler.Withdraw)
	protected.Get("/vaults/:vaultId/events", vaultHandler.Events)

	protected.Get("/vaults/:vaultId/stream", sseHandler.Stream)
	protected.Post("/sse/:clientId/subscribe/:vaultId", sseHandler.Subscribe)
	protected.Post("/sse/:clientId/unsubscribe/:vaultId", sseHandler.Unsubscribe)

	admin := protected.Group("/vaults/:vaultId")
	admin.Use(authmw.AdminCap(vaultService))
	admin.Get("/holders", vaultHandler.Holders)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info("server starting", "addr", addr, "env", cfg.Env)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
}
